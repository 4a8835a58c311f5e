package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Joseda-hg/lazyboard/internal/board"
	"github.com/Joseda-hg/lazyboard/internal/fetch"
	"github.com/Joseda-hg/lazyboard/internal/model"
	"github.com/Joseda-hg/lazyboard/internal/tasks"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type tasksResponse struct {
	Filter model.StatusFilter `json:"filter"`
	Tasks  []model.Task       `json:"tasks"`
	Stats  model.TaskStats    `json:"stats"`
}

type addTaskRequest struct {
	Text string `json:"text"`
}

func (s *Server) apiPosts(w http.ResponseWriter, r *http.Request) {
	q, page, err := postsParams(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "INVALID_PAGE", err.Error())
		return
	}
	if err := s.ensurePosts(r.Context()); err != nil {
		s.writeAPIError(w, err)
		return
	}

	result, err := s.posts.View(q, page)
	if err != nil {
		s.writeAPIError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) apiPost(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		writeJSONError(w, http.StatusNotFound, "NOT_FOUND", err.Error())
		return
	}
	post, err := s.posts.Post(r.Context(), id)
	if err != nil {
		s.writeAPIError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, post)
}

func (s *Server) apiReloadPosts(w http.ResponseWriter, r *http.Request) {
	if err := s.posts.Load(r.Context()); err != nil {
		s.writeAPIError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.posts.Snapshot().Page)
}

func (s *Server) apiTasks(w http.ResponseWriter, r *http.Request) {
	status, err := model.ParseStatusFilter(r.URL.Query().Get("status"))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "INVALID_FILTER", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, s.tasksPayload(status))
}

func (s *Server) apiAddTask(w http.ResponseWriter, r *http.Request) {
	var req addTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "INVALID_BODY", "request body must be JSON with a text field")
		return
	}
	created, err := s.tasks.Add(r.Context(), req.Text)
	if err != nil {
		s.writeAPIError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) apiToggleTask(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		writeJSONError(w, http.StatusNotFound, "NOT_FOUND", err.Error())
		return
	}
	if err := s.tasks.Toggle(r.Context(), id); err != nil {
		s.writeAPIError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.tasksPayload(model.StatusAll))
}

func (s *Server) apiDeleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		writeJSONError(w, http.StatusNotFound, "NOT_FOUND", err.Error())
		return
	}
	if err := s.tasks.Delete(r.Context(), id); err != nil {
		s.writeAPIError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.tasksPayload(model.StatusAll))
}

func (s *Server) apiTheme(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]model.Theme{"theme": s.theme.Theme()})
}

func (s *Server) apiToggleTheme(w http.ResponseWriter, r *http.Request) {
	next, err := s.theme.Toggle(r.Context())
	if err != nil {
		s.writeAPIError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]model.Theme{"theme": next})
}

func (s *Server) tasksPayload(status model.StatusFilter) tasksResponse {
	return tasksResponse{
		Filter: status,
		Tasks:  s.tasks.Filtered(status),
		Stats:  s.tasks.Stats(),
	}
}

// ensurePosts performs the first fetch lazily when nothing has been loaded.
// The fetch is shared by every later request, so it must outlive the one
// that triggered it. Returns board.ErrFetchInFlight while another request
// is still loading.
func (s *Server) ensurePosts(ctx context.Context) error {
	if s.posts.Snapshot().Loaded {
		return nil
	}
	return s.posts.Load(context.WithoutCancel(ctx))
}

func (s *Server) writeAPIError(w http.ResponseWriter, err error) {
	status, code := classifyError(err)
	if status >= 500 {
		s.logger.Error("request failed", "error", err.Error(), "code", code)
	}
	writeJSONError(w, status, code, err.Error())
}

func classifyError(err error) (int, string) {
	var validationErr *tasks.ValidationError
	var transportErr *fetch.TransportError
	var parseErr *fetch.ParseError
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, "VALIDATION_FAILED"
	case errors.As(err, &transportErr):
		if transportErr.StatusCode == http.StatusNotFound {
			return http.StatusNotFound, "NOT_FOUND"
		}
		return http.StatusBadGateway, "FETCH_FAILED"
	case errors.As(err, &parseErr):
		return http.StatusBadGateway, "PARSE_FAILED"
	case errors.Is(err, board.ErrFetchInFlight):
		return http.StatusConflict, "FETCH_IN_FLIGHT"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR"
	}
}

func postsParams(r *http.Request) (string, int, error) {
	q := r.URL.Query().Get("q")
	page := 1
	if value := strings.TrimSpace(r.URL.Query().Get("page")); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil || parsed < 1 {
			return "", 0, fmt.Errorf("page must be a positive integer")
		}
		page = parsed
	}
	return q, page, nil
}

func parseID(value string) (int64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("missing id")
	}
	return strconv.ParseInt(value, 10, 64)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeJSONError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorBody{Code: code, Message: message})
}
