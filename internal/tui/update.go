package tui

import (
	"errors"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/lista/internal/services/todo"
)

// Update handles all messages and updates the model accordingly.
// Implements the "Update" part of the Model-View-Update pattern.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeForm:
			return m.updateForm(msg)
		case modeConfirmDelete:
			return m.updateConfirmDelete(msg)
		case modeHelp:
			return m.updateHelp(msg)
		default:
			return m.updateList(msg)
		}
	}

	return m, nil
}

// ============================================================================
// LIST MODE
// ============================================================================

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.clearNotification()

	key := msg.String()
	km := m.keys

	switch key {
	case km.Quit, "ctrl+c":
		return m, tea.Quit

	case km.ShowHelp:
		m.mode = modeHelp
		return m, nil

	case km.PrevTodo, "up":
		if m.cursor > 0 {
			m.cursor--
		} else if len(m.todos) > 0 {
			m.notify(levelInfo, "Already at the first todo")
		}
		return m, nil

	case km.NextTodo, "down":
		if m.cursor < len(m.todos)-1 {
			m.cursor++
		} else if len(m.todos) > 0 {
			m.notify(levelInfo, "Already at the last todo")
		}
		return m, nil

	case km.AddTodo:
		return m.openCreateForm()

	case km.EditTodo, km.ViewTodo:
		return m.openEditForm()

	case km.ToggleTodo:
		return m.toggleCurrent()

	case km.DeleteTodo:
		if m.currentTodo() == nil {
			m.notify(levelError, "No todo selected to delete")
			return m, nil
		}
		m.mode = modeConfirmDelete
		return m, nil

	case km.CycleFilter:
		m.filter = m.filter.next()
		m.cursor = 0
		m.reload()
		return m, nil

	case km.Refresh:
		m.reload()
		return m, nil
	}

	return m, nil
}

func (m Model) toggleCurrent() (tea.Model, tea.Cmd) {
	current := m.currentTodo()
	if current == nil {
		m.notify(levelError, "No todo selected to toggle")
		return m, nil
	}

	ctx, cancel := m.dbContext()
	defer cancel()
	if _, err := m.svc.ToggleTodo(ctx, current.ID); err != nil {
		m.notifyDBError("Toggling todo", err)
		return m, nil
	}

	m.reload()
	return m, nil
}

// ============================================================================
// FORM MODE
// ============================================================================

func newTitleInput(value string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "What needs doing?"
	if value != "" {
		ti.SetValue(value)
	}
	return ti
}

func newDescriptionInput(value string) textarea.Model {
	ta := textarea.New()
	ta.Placeholder = "Details (markdown supported)"
	ta.CharLimit = 1000
	ta.SetHeight(5)
	if value != "" {
		ta.SetValue(value)
	}
	return ta
}

func (m Model) openCreateForm() (tea.Model, tea.Cmd) {
	m.editingID = 0
	m.titleInput = newTitleInput("")
	m.descInput = newDescriptionInput("")
	m.focusDesc = false
	m.mode = modeForm
	return m, m.titleInput.Focus()
}

func (m Model) openEditForm() (tea.Model, tea.Cmd) {
	current := m.currentTodo()
	if current == nil {
		m.notify(levelError, "No todo selected to edit")
		return m, nil
	}

	// Read the row back instead of trusting the cached list, in case
	// another client changed it since the last reload.
	ctx, cancel := m.dbContext()
	defer cancel()
	fresh, err := m.svc.GetTodoByID(ctx, current.ID)
	if err != nil {
		m.notifyDBError("Loading todo", err)
		return m, nil
	}

	m.editingID = fresh.ID
	m.titleInput = newTitleInput(fresh.Title)
	m.descInput = newDescriptionInput(fresh.Description)
	m.focusDesc = false
	m.mode = modeForm
	return m, m.titleInput.Focus()
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeList
		return m, nil

	case m.keys.SaveForm:
		return m.saveForm()

	case "tab", "shift+tab":
		return m.toggleFormFocus()

	case "enter":
		// Enter on the single-line title moves on to the description.
		// The textarea handles enter itself to insert a newline.
		if !m.focusDesc {
			return m.toggleFormFocus()
		}
	}

	// Everything else goes to the focused field.
	var cmd tea.Cmd
	if m.focusDesc {
		m.descInput, cmd = m.descInput.Update(msg)
	} else {
		m.titleInput, cmd = m.titleInput.Update(msg)
	}
	return m, cmd
}

func (m Model) toggleFormFocus() (tea.Model, tea.Cmd) {
	m.focusDesc = !m.focusDesc
	if m.focusDesc {
		m.titleInput.Blur()
		return m, m.descInput.Focus()
	}
	m.descInput.Blur()
	return m, m.titleInput.Focus()
}

func (m Model) saveForm() (tea.Model, tea.Cmd) {
	title := strings.TrimSpace(m.titleInput.Value())
	if title == "" {
		m.notify(levelError, "Title is required")
		return m, nil
	}
	description := strings.TrimSpace(m.descInput.Value())

	ctx, cancel := m.dbContext()
	defer cancel()

	var err error
	if m.editingID == 0 {
		_, err = m.svc.CreateTodo(ctx, todo.CreateTodoRequest{
			Title:       title,
			Description: description,
		})
	} else {
		_, err = m.svc.UpdateTodo(ctx, todo.UpdateTodoRequest{
			ID:          m.editingID,
			Title:       &title,
			Description: &description,
		})
	}
	if err != nil {
		switch {
		case errors.Is(err, todo.ErrTitleTooLong), errors.Is(err, todo.ErrDescriptionTooLong):
			m.notify(levelError, err.Error())
		default:
			m.notifyDBError("Saving todo", err)
		}
		return m, nil
	}

	m.mode = modeList
	if m.editingID == 0 {
		m.notify(levelInfo, fmt.Sprintf("Created %q", title))
	} else {
		m.notify(levelInfo, fmt.Sprintf("Saved %q", title))
	}
	m.reload()
	return m, nil
}

// ============================================================================
// DELETE CONFIRMATION MODE
// ============================================================================

func (m Model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		return m.deleteCurrent()
	case "n", "esc", m.keys.Quit:
		m.mode = modeList
		return m, nil
	}
	return m, nil
}

func (m Model) deleteCurrent() (tea.Model, tea.Cmd) {
	m.mode = modeList

	current := m.currentTodo()
	if current == nil {
		return m, nil
	}

	ctx, cancel := m.dbContext()
	defer cancel()
	deleted, err := m.svc.DeleteTodo(ctx, current.ID)
	if err != nil {
		m.notifyDBError("Deleting todo", err)
		return m, nil
	}

	if deleted {
		m.notify(levelInfo, fmt.Sprintf("Deleted %q", current.Title))
	} else {
		// Another client got there first. The refreshed list is all
		// the user needs to see.
		m.notify(levelInfo, "Todo was already deleted")
	}
	m.reload()
	return m, nil
}

// ============================================================================
// HELP MODE
// ============================================================================

func (m Model) updateHelp(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case m.keys.ShowHelp, m.keys.Quit, "esc", "enter":
		m.mode = modeList
	}
	return m, nil
}
