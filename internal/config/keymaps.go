package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Todos
	AddTodo    string `yaml:"add_todo"`
	EditTodo   string `yaml:"edit_todo"`
	DeleteTodo string `yaml:"delete_todo"`
	ToggleTodo string `yaml:"toggle_todo"`
	ViewTodo   string `yaml:"view_todo"`

	// Forms
	SaveForm string `yaml:"save_form"`

	// Navigation
	PrevTodo    string `yaml:"prev_todo"`
	NextTodo    string `yaml:"next_todo"`
	CycleFilter string `yaml:"cycle_filter"`
	Refresh     string `yaml:"refresh"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Todos
		AddTodo:    "a",
		EditTodo:   "e",
		DeleteTodo: "d",
		ToggleTodo: "x",
		ViewTodo:   "v",

		// Forms
		SaveForm: "ctrl+s",

		// Navigation
		PrevTodo:    "k",
		NextTodo:    "j",
		CycleFilter: "f",
		Refresh:     "r",

		// Other
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.AddTodo == "" {
		k.AddTodo = defaults.AddTodo
	}
	if k.EditTodo == "" {
		k.EditTodo = defaults.EditTodo
	}
	if k.DeleteTodo == "" {
		k.DeleteTodo = defaults.DeleteTodo
	}
	if k.ToggleTodo == "" {
		k.ToggleTodo = defaults.ToggleTodo
	}
	if k.ViewTodo == "" {
		k.ViewTodo = defaults.ViewTodo
	}
	if k.SaveForm == "" {
		k.SaveForm = defaults.SaveForm
	}
	if k.PrevTodo == "" {
		k.PrevTodo = defaults.PrevTodo
	}
	if k.NextTodo == "" {
		k.NextTodo = defaults.NextTodo
	}
	if k.CycleFilter == "" {
		k.CycleFilter = defaults.CycleFilter
	}
	if k.Refresh == "" {
		k.Refresh = defaults.Refresh
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
