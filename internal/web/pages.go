package web

import (
	"bytes"
	"errors"
	"html/template"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Joseda-hg/lazyboard/internal/board"
	"github.com/Joseda-hg/lazyboard/internal/model"
)

type layoutData struct {
	Title string
	Theme model.Theme
	Path  string
}

type postsPageData struct {
	layoutData
	Query   string
	Page    model.Page[model.Post]
	Links   []pageLink
	Loading bool
	Error   string
}

type postPageData struct {
	layoutData
	Post model.Post
}

type tasksPageData struct {
	layoutData
	Filter  model.StatusFilter
	Filters []model.StatusFilter
	Tasks   []model.Task
	Stats   model.TaskStats
	Error   string
}

func (s *Server) layout(title string, r *http.Request) layoutData {
	return layoutData{Title: title, Theme: s.theme.Theme(), Path: r.URL.RequestURI()}
}

func (s *Server) postsPage(w http.ResponseWriter, r *http.Request) {
	data := postsPageData{layoutData: s.layout("Posts", r)}
	q, page, err := postsParams(r)
	if err != nil {
		page = 1
	}
	data.Query = q

	if err := s.ensurePosts(r.Context()); errors.Is(err, board.ErrFetchInFlight) {
		data.Loading = true
	} else if err != nil {
		data.Error = err.Error()
	} else if result, err := s.posts.View(q, page); err != nil {
		data.Error = err.Error()
	} else {
		data.Page = result
		data.Links = pageLinks(result)
	}

	s.render(w, postsTemplate, data)
}

func (s *Server) postPage(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	post, err := s.posts.Post(r.Context(), id)
	if err != nil {
		status, _ := classifyError(err)
		http.Error(w, err.Error(), status)
		return
	}
	s.render(w, postTemplate, postPageData{layoutData: s.layout(post.Title, r), Post: post})
}

func (s *Server) tasksPage(w http.ResponseWriter, r *http.Request) {
	s.renderTasks(w, r, http.StatusOK, "")
}

func (s *Server) renderTasks(w http.ResponseWriter, r *http.Request, status int, message string) {
	filter, err := model.ParseStatusFilter(r.URL.Query().Get("status"))
	if err != nil {
		filter = model.StatusAll
	}
	data := tasksPageData{
		layoutData: s.layout("Tasks", r),
		Filter:     filter,
		Filters:    []model.StatusFilter{model.StatusAll, model.StatusActive, model.StatusCompleted},
		Tasks:      s.tasks.Filtered(filter),
		Stats:      s.tasks.Stats(),
		Error:      message,
	}
	s.renderStatus(w, tasksTemplate, status, data)
}

func (s *Server) addTaskForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if _, err := s.tasks.Add(r.Context(), r.PostFormValue("text")); err != nil {
		status, _ := classifyError(err)
		if status >= 500 {
			s.logger.Error("add task", "error", err.Error())
		}
		s.renderTasks(w, r, status, err.Error())
		return
	}
	s.redirectBack(w, r, "/tasks")
}

func (s *Server) toggleTaskForm(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if err := s.tasks.Toggle(r.Context(), id); err != nil {
		s.logger.Error("toggle task", "task_id", id, "error", err.Error())
		s.renderTasks(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	s.redirectBack(w, r, "/tasks")
}

func (s *Server) deleteTaskForm(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if err := s.tasks.Delete(r.Context(), id); err != nil {
		s.logger.Error("delete task", "task_id", id, "error", err.Error())
		s.renderTasks(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	s.redirectBack(w, r, "/tasks")
}

func (s *Server) toggleThemeForm(w http.ResponseWriter, r *http.Request) {
	if _, err := s.theme.Toggle(r.Context()); err != nil {
		s.logger.Error("toggle theme", "error", err.Error())
	}
	s.redirectBack(w, r, "/")
}

// redirectBack sends the browser to the form's "next" field when it names a
// local path, otherwise to fallback.
func (s *Server) redirectBack(w http.ResponseWriter, r *http.Request, fallback string) {
	target := fallback
	if next := r.PostFormValue("next"); next != "" {
		if parsed, err := url.Parse(next); err == nil && parsed.Host == "" && parsed.Scheme == "" && len(parsed.Path) > 0 && parsed.Path[0] == '/' {
			target = parsed.RequestURI()
		}
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (s *Server) render(w http.ResponseWriter, tmpl *template.Template, data any) {
	s.renderStatus(w, tmpl, http.StatusOK, data)
}

func (s *Server) renderStatus(w http.ResponseWriter, tmpl *template.Template, status int, data any) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		s.logger.Error("render template", "template", tmpl.Name(), "error", err.Error())
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
