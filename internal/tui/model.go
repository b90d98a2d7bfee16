// Package tui implements the terminal client. It follows the
// Model-View-Update pattern: Model holds all state, Update reacts to
// input, View renders the current state.
package tui

import (
	"context"
	"log/slog"
	"time"

	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/lista/internal/config"
	"github.com/thenoetrevino/lista/internal/models"
	"github.com/thenoetrevino/lista/internal/services/todo"
)

// mode identifies which screen currently owns keyboard input.
type mode int

const (
	modeList mode = iota
	modeForm
	modeConfirmDelete
	modeHelp
)

// filter selects which slice of the list is shown.
type filter int

const (
	filterAll filter = iota
	filterPending
	filterCompleted
)

// next cycles all -> pending -> completed -> all.
func (f filter) next() filter {
	switch f {
	case filterAll:
		return filterPending
	case filterPending:
		return filterCompleted
	default:
		return filterAll
	}
}

func (f filter) String() string {
	switch f {
	case filterPending:
		return "pending"
	case filterCompleted:
		return "completed"
	default:
		return "all"
	}
}

// notificationLevel controls how the status line is styled.
type notificationLevel int

const (
	levelInfo notificationLevel = iota
	levelError
)

// Model represents the full state of the terminal client.
type Model struct {
	svc    todo.Service
	keys   config.KeyMappings
	styles styles

	todos  []*models.Todo
	stats  models.TodoStats
	cursor int
	filter filter

	mode mode

	// Form state. editingID is zero while creating a new todo.
	titleInput textinput.Model
	descInput  textarea.Model
	focusDesc  bool
	editingID  int

	notification      string
	notificationLevel notificationLevel

	width  int
	height int
}

// NewModel creates the model and loads the initial list synchronously,
// so the first frame already shows data.
func NewModel(svc todo.Service, cfg *config.Config) Model {
	m := Model{
		svc:    svc,
		keys:   cfg.KeyMappings,
		styles: newStyles(cfg.ColorScheme),
	}
	m.reload()
	return m
}

// Init implements tea.Model. All loading happens in NewModel.
func (m Model) Init() tea.Cmd {
	return nil
}

// dbContext bounds a single database call so a stuck disk cannot
// freeze the UI forever.
func (m Model) dbContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 5*time.Second)
}

// reload refreshes the visible list and the stats from the store,
// honoring the active filter.
func (m *Model) reload() {
	ctx, cancel := m.dbContext()
	defer cancel()

	var (
		todos []*models.Todo
		err   error
	)
	switch m.filter {
	case filterPending:
		todos, err = m.svc.GetPendingTodos(ctx)
	case filterCompleted:
		todos, err = m.svc.GetCompletedTodos(ctx)
	default:
		todos, err = m.svc.GetAllTodos(ctx)
	}
	if err != nil {
		m.notifyDBError("Loading todos", err)
		return
	}

	stats, err := m.svc.GetTodoStats(ctx)
	if err != nil {
		m.notifyDBError("Loading stats", err)
		return
	}

	m.todos = todos
	m.stats = stats
	m.clampCursor()
}

// currentTodo returns the todo under the cursor, or nil when the
// visible list is empty.
func (m Model) currentTodo() *models.Todo {
	if len(m.todos) == 0 || m.cursor >= len(m.todos) {
		return nil
	}
	return m.todos[m.cursor]
}

// clampCursor keeps the selection inside the list after reloads that
// shrink it, such as toggling under a filter or deleting the last row.
func (m *Model) clampCursor() {
	if m.cursor >= len(m.todos) {
		m.cursor = len(m.todos) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) notify(level notificationLevel, message string) {
	m.notification = message
	m.notificationLevel = level
}

func (m *Model) clearNotification() {
	m.notification = ""
	m.notificationLevel = levelInfo
}

// notifyDBError logs the underlying error and shows a short message.
// The error detail goes to the log file, not the screen.
func (m *Model) notifyDBError(action string, err error) {
	slog.Error(action+" failed", "error", err)
	m.notify(levelError, action+" failed")
}
