package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/lista/internal/models"
)

// View renders the current state of the application.
// Implements the "View" part of the Model-View-Update pattern.
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	// Wait for the terminal size before drawing anything.
	if m.width == 0 {
		view.Content = "Loading..."
		return view
	}

	// The list is always the base layer; forms, confirmations and help
	// float above it as centered modals.
	layers := []*lipgloss.Layer{lipgloss.NewLayer(m.viewList())}

	var modal string
	switch m.mode {
	case modeForm:
		modal = m.viewForm()
	case modeConfirmDelete:
		modal = m.viewConfirmDelete()
	case modeHelp:
		modal = m.viewHelp()
	}
	if modal != "" {
		layers = append(layers, centeredLayer(modal, m.width, m.height))
	}

	view.Content = lipgloss.NewCanvas(layers...).Render()
	return view
}

// centeredLayer positions content in the middle of the screen.
func centeredLayer(content string, screenWidth, screenHeight int) *lipgloss.Layer {
	x := max((screenWidth-lipgloss.Width(content))/2, 0)
	y := max((screenHeight-lipgloss.Height(content))/2, 0)
	return lipgloss.NewLayer(content).X(x).Y(y)
}

// ============================================================================
// LIST VIEW
// ============================================================================

func (m Model) viewList() string {
	var b strings.Builder

	b.WriteString(m.styles.title.Render("lista"))
	b.WriteString(m.styles.subtle.Render("  " + m.filter.String()))
	b.WriteString("\n")
	b.WriteString(m.styles.subtle.Render(fmt.Sprintf(
		"%d total · %d completed · %d pending",
		m.stats.Total, m.stats.Completed, m.stats.Pending,
	)))
	b.WriteString("\n\n")

	if len(m.todos) == 0 {
		b.WriteString(m.styles.subtle.Render(m.emptyMessage()))
		b.WriteString("\n")
	} else {
		for i, t := range m.todos {
			b.WriteString(m.renderRow(i, t))
			b.WriteString("\n")
		}
	}

	if detail := m.renderDetail(); detail != "" {
		b.WriteString("\n")
		b.WriteString(detail)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusLine())
	return b.String()
}

func (m Model) renderRow(i int, t *models.Todo) string {
	marker := "[ ]"
	if t.Completed {
		marker = "[x]"
	}

	line := marker + " " + t.Title
	switch {
	case i == m.cursor:
		return m.styles.selected.Render("> " + line)
	case t.Completed:
		return "  " + m.styles.done.Render(line)
	default:
		return "  " + m.styles.normal.Render(line)
	}
}

// renderDetail shows the selected todo's timestamps and its description
// rendered as markdown.
func (m Model) renderDetail() string {
	current := m.currentTodo()
	if current == nil {
		return ""
	}

	meta := m.styles.subtle.Render(fmt.Sprintf(
		"created %s  updated %s",
		current.CreatedAt.Local().Format("2006-01-02 15:04"),
		current.UpdatedAt.Local().Format("2006-01-02 15:04"),
	))

	if current.Description == "" {
		return meta + "\n" + m.styles.subtle.Italic(true).Render("No description")
	}

	wrapWidth := max(min(m.width-4, 80), 20)
	return meta + "\n" + renderMarkdown(current.Description, wrapWidth)
}

func (m Model) emptyMessage() string {
	switch m.filter {
	case filterPending:
		return "Nothing pending"
	case filterCompleted:
		return "Nothing completed yet"
	default:
		return fmt.Sprintf("No todos yet. Press %q to add one", m.keys.AddTodo)
	}
}

// renderStatusLine shows the active notification if there is one,
// otherwise the key hints.
func (m Model) renderStatusLine() string {
	if m.notification != "" {
		if m.notificationLevel == levelError {
			return m.styles.errorBanner.Render(m.notification)
		}
		return m.styles.infoBanner.Render(m.notification)
	}

	km := m.keys
	return m.styles.subtle.Render(fmt.Sprintf(
		"%s: add  %s: edit  %s: toggle  %s: delete  %s: filter  %s: help  %s: quit",
		km.AddTodo, km.EditTodo, km.ToggleTodo, km.DeleteTodo,
		km.CycleFilter, km.ShowHelp, km.Quit,
	))
}

// ============================================================================
// MODALS
// ============================================================================

func (m Model) viewForm() string {
	formTitle := "New Todo"
	box := m.styles.createBox
	if m.editingID != 0 {
		formTitle = "Edit Todo"
		box = m.styles.editBox
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		m.styles.title.Render(formTitle),
		"",
		m.styles.subtle.Render("Title"),
		m.titleInput.View(),
		"",
		m.styles.subtle.Render("Description"),
		m.descInput.View(),
		"",
		m.styles.subtle.Render(fmt.Sprintf(
			"%s: save  tab: switch field  esc: cancel", m.keys.SaveForm,
		)),
	)

	return box.Width(min(m.width*3/4, 72)).Render(content)
}

func (m Model) viewConfirmDelete() string {
	current := m.currentTodo()
	if current == nil {
		return ""
	}

	return m.styles.deleteBox.
		Width(50).
		Render(fmt.Sprintf("Delete '%s'?\n\n[y]es  [n]o", current.Title))
}

func (m Model) viewHelp() string {
	km := m.keys
	text := fmt.Sprintf(`lista - Keyboard Shortcuts

TODOS
  %s     Add new todo
  %s     Edit selected todo
  %s     Toggle done
  %s     Delete selected todo
  %s     View selected todo

NAVIGATION
  %s     Move up
  %s     Move down
  %s     Cycle filter (all, pending, completed)
  %s     Reload from the database

OTHER
  %s     Show this help
  %s     Quit

Press esc to close`,
		km.AddTodo, km.EditTodo, km.ToggleTodo, km.DeleteTodo, km.ViewTodo,
		km.PrevTodo, km.NextTodo, km.CycleFilter, km.Refresh,
		km.ShowHelp, km.Quit,
	)

	return m.styles.helpBox.Width(50).Render(text)
}
