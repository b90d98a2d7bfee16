package tui

import (
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/lista/internal/config"
)

// styles holds every lipgloss style the views use. They are built once
// from the color scheme to avoid recomputing on every redraw.
type styles struct {
	title    lipgloss.Style
	subtle   lipgloss.Style
	normal   lipgloss.Style
	selected lipgloss.Style
	done     lipgloss.Style

	// Dialog boxes, color-coded by intent: green to create, blue to
	// edit, red to delete.
	createBox lipgloss.Style
	editBox   lipgloss.Style
	deleteBox lipgloss.Style
	helpBox   lipgloss.Style

	infoBanner  lipgloss.Style
	errorBanner lipgloss.Style
}

func newStyles(scheme config.ColorScheme) styles {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 2)

	return styles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(scheme.Title)),

		subtle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(scheme.Subtle)),

		normal: lipgloss.NewStyle().
			Foreground(lipgloss.Color(scheme.Normal)),

		selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(scheme.Accent)),

		done: lipgloss.NewStyle().
			Foreground(lipgloss.Color(scheme.Done)).
			Strikethrough(true),

		createBox: box.BorderForeground(lipgloss.Color(scheme.Create)),
		editBox:   box.BorderForeground(lipgloss.Color(scheme.Edit)),
		deleteBox: box.BorderForeground(lipgloss.Color(scheme.Delete)),
		helpBox:   box.BorderForeground(lipgloss.Color(scheme.Accent)),

		infoBanner: lipgloss.NewStyle().
			Foreground(lipgloss.Color(scheme.InfoFg)).
			Background(lipgloss.Color(scheme.InfoBg)).
			Bold(true).
			Padding(0, 1),

		errorBanner: lipgloss.NewStyle().
			Foreground(lipgloss.Color(scheme.ErrorFg)).
			Background(lipgloss.Color(scheme.ErrorBg)).
			Bold(true).
			Padding(0, 1),
	}
}
