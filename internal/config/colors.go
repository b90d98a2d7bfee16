package config

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for selections, titles, highlights)
	Accent string `yaml:"accent"`

	// Semantic colors
	Create string `yaml:"create"` // Green - creation forms
	Edit   string `yaml:"edit"`   // Blue - edit forms
	Delete string `yaml:"delete"` // Red - delete confirmations
	Done   string `yaml:"done"`   // Completed todo markers

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Notification colors (foreground/background pairs)
	InfoFg  string `yaml:"info_fg"`
	InfoBg  string `yaml:"info_bg"`
	ErrorFg string `yaml:"error_fg"`
	ErrorBg string `yaml:"error_bg"`
}

// DefaultColorScheme returns the default color scheme (purple theme)
func DefaultColorScheme() ColorScheme {
	return ColorScheme{
		Preset: "default",

		// Primary
		Accent: "#874BFD",

		// Semantic
		Create: "#5FD75F",
		Edit:   "#5F87D7",
		Delete: "#FF5F5F",
		Done:   "#5FD75F",

		// Text
		Title:  "#D75FD7",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		// Notifications
		InfoFg:  "#00AFFF",
		InfoBg:  "#00005F",
		ErrorFg: "#FF0000",
		ErrorBg: "#5F0000",
	}
}

// MonochromeColorScheme returns a black and white color scheme
func MonochromeColorScheme() ColorScheme {
	return ColorScheme{
		Preset: "monochrome",

		Accent: "#FFFFFF",

		Create: "#FFFFFF",
		Edit:   "#FFFFFF",
		Delete: "#FFFFFF",
		Done:   "#AAAAAA",

		Title:  "#FFFFFF",
		Subtle: "#777777",
		Normal: "#CCCCCC",

		InfoFg:  "#FFFFFF",
		InfoBg:  "#333333",
		ErrorFg: "#000000",
		ErrorBg: "#FFFFFF",
	}
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) ColorScheme {
	switch name {
	case "monochrome":
		return MonochromeColorScheme()
	case "default", "":
		return DefaultColorScheme()
	default:
		return DefaultColorScheme()
	}
}

// ApplyDefaults fills in missing color values using the preset as base.
// If a preset is named, it is loaded first and custom values override it.
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)

	if c.Accent == "" {
		c.Accent = preset.Accent
	}
	if c.Create == "" {
		c.Create = preset.Create
	}
	if c.Edit == "" {
		c.Edit = preset.Edit
	}
	if c.Delete == "" {
		c.Delete = preset.Delete
	}
	if c.Done == "" {
		c.Done = preset.Done
	}
	if c.Title == "" {
		c.Title = preset.Title
	}
	if c.Subtle == "" {
		c.Subtle = preset.Subtle
	}
	if c.Normal == "" {
		c.Normal = preset.Normal
	}
	if c.InfoFg == "" {
		c.InfoFg = preset.InfoFg
	}
	if c.InfoBg == "" {
		c.InfoBg = preset.InfoBg
	}
	if c.ErrorFg == "" {
		c.ErrorFg = preset.ErrorFg
	}
	if c.ErrorBg == "" {
		c.ErrorBg = preset.ErrorBg
	}
}

// MergeFrom copies every non-empty value from the other scheme,
// letting an external theme file override the config file.
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" {
		c.Preset = other.Preset
	}
	if other.Accent != "" {
		c.Accent = other.Accent
	}
	if other.Create != "" {
		c.Create = other.Create
	}
	if other.Edit != "" {
		c.Edit = other.Edit
	}
	if other.Delete != "" {
		c.Delete = other.Delete
	}
	if other.Done != "" {
		c.Done = other.Done
	}
	if other.Title != "" {
		c.Title = other.Title
	}
	if other.Subtle != "" {
		c.Subtle = other.Subtle
	}
	if other.Normal != "" {
		c.Normal = other.Normal
	}
	if other.InfoFg != "" {
		c.InfoFg = other.InfoFg
	}
	if other.InfoBg != "" {
		c.InfoBg = other.InfoBg
	}
	if other.ErrorFg != "" {
		c.ErrorFg = other.ErrorFg
	}
	if other.ErrorBg != "" {
		c.ErrorBg = other.ErrorBg
	}
}
