package web

import (
	"errors"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/thenoetrevino/lista/internal/models"
	todoservice "github.com/thenoetrevino/lista/internal/services/todo"
)

// htmxCDN is served when no local htmx copy is configured
const htmxCDN = "https://unpkg.com/htmx.org@1.9.12/dist/htmx.min.js"

// Filter names accepted in the ?filter= query parameter
const (
	filterAll       = "all"
	filterPending   = "pending"
	filterCompleted = "completed"
)

// indexData feeds both the full page and the todo-list fragment
type indexData struct {
	Todos  []*models.Todo
	Stats  models.TodoStats
	Filter string
}

// editData feeds the inline edit form fragment
type editData struct {
	Todo   *models.Todo
	Filter string
}

func normalizeFilter(raw string) string {
	switch raw {
	case filterPending, filterCompleted:
		return raw
	default:
		return filterAll
	}
}

// isHTMX reports whether htmx issued the request, in which case only
// the relevant fragment is rendered.
func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") != ""
}

func parseID(r *http.Request) (int, error) {
	return strconv.Atoi(r.PathValue("id"))
}

// loadIndexData gathers the todo list for the given filter plus the
// stats line shown above it.
func (s *Server) loadIndexData(r *http.Request) (indexData, error) {
	filter := normalizeFilter(r.URL.Query().Get("filter"))

	var todos []*models.Todo
	var err error
	switch filter {
	case filterCompleted:
		todos, err = s.app.TodoService.GetCompletedTodos(r.Context())
	case filterPending:
		todos, err = s.app.TodoService.GetPendingTodos(r.Context())
	default:
		todos, err = s.app.TodoService.GetAllTodos(r.Context())
	}
	if err != nil {
		return indexData{}, err
	}

	stats, err := s.app.TodoService.GetTodoStats(r.Context())
	if err != nil {
		return indexData{}, err
	}

	return indexData{Todos: todos, Stats: stats, Filter: filter}, nil
}

// writeServiceError maps service errors onto HTTP status codes
func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		http.Error(w, "todo not found", http.StatusNotFound)
	case errors.Is(err, todoservice.ErrInvalidTodoID),
		errors.Is(err, todoservice.ErrTitleTooLong),
		errors.Is(err, todoservice.ErrDescriptionTooLong):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		s.log.Error("request failed",
			"error", err,
			"path", r.URL.Path,
			"request_id", requestID(r.Context()),
		)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// respondWithList re-renders the todo list for htmx callers and falls
// back to a redirect for plain form submissions.
func (s *Server) respondWithList(w http.ResponseWriter, r *http.Request) {
	if !isHTMX(r) {
		http.Redirect(w, r, "/?filter="+normalizeFilter(r.URL.Query().Get("filter")), http.StatusSeeOther)
		return
	}

	data, err := s.loadIndexData(r)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.render(w, "todo-list", data)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data, err := s.loadIndexData(r)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	if isHTMX(r) {
		s.render(w, "todo-list", data)
		return
	}
	s.render(w, "index.html", data)
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form", http.StatusBadRequest)
		return
	}

	title := strings.TrimSpace(r.FormValue("title"))
	if title == "" {
		http.Error(w, "title is required", http.StatusUnprocessableEntity)
		return
	}
	description := strings.TrimSpace(r.FormValue("description"))

	_, err := s.app.TodoService.CreateTodo(r.Context(), todoservice.CreateTodoRequest{
		Title:       title,
		Description: description,
	})
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	s.respondWithList(w, r)
}

func (s *Server) handleEditForm(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, "invalid todo id", http.StatusBadRequest)
		return
	}

	todo, err := s.app.TodoService.GetTodoByID(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	s.render(w, "edit-form", editData{
		Todo:   todo,
		Filter: normalizeFilter(r.URL.Query().Get("filter")),
	})
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, "invalid todo id", http.StatusBadRequest)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form", http.StatusBadRequest)
		return
	}

	title := strings.TrimSpace(r.FormValue("title"))
	if title == "" {
		http.Error(w, "title is required", http.StatusUnprocessableEntity)
		return
	}
	description := strings.TrimSpace(r.FormValue("description"))

	_, err = s.app.TodoService.UpdateTodo(r.Context(), todoservice.UpdateTodoRequest{
		ID:          id,
		Title:       &title,
		Description: &description,
	})
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	s.respondWithList(w, r)
}

func (s *Server) handleToggle(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, "invalid todo id", http.StatusBadRequest)
		return
	}

	if _, err := s.app.TodoService.ToggleTodo(r.Context(), id); err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	s.respondWithList(w, r)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, "invalid todo id", http.StatusBadRequest)
		return
	}

	// A todo already removed by the other client is not an error; the
	// refreshed list is the right answer either way.
	if _, err := s.app.TodoService.DeleteTodo(r.Context(), id); err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	s.respondWithList(w, r)
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (s *Server) handleReadyz(w http.ResponseWriter, r *http.Request) {
	if err := s.db.PingContext(r.Context()); err != nil {
		http.Error(w, "database not ready", http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ready"))
}

// handleHTMX serves a local htmx copy when one is configured, otherwise
// sends the browser to the CDN.
func (s *Server) handleHTMX(w http.ResponseWriter, r *http.Request) {
	if s.cfg.HTMXSrc != "" {
		if _, err := os.Stat(s.cfg.HTMXSrc); err == nil {
			http.ServeFile(w, r, s.cfg.HTMXSrc)
			return
		}
		s.log.Warn("configured htmx_src missing, falling back to CDN", "path", s.cfg.HTMXSrc)
	}
	http.Redirect(w, r, htmxCDN, http.StatusFound)
}
