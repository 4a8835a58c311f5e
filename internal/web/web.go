package web

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Joseda-hg/lazyboard/internal/board"
	"github.com/Joseda-hg/lazyboard/internal/model"
	"github.com/Joseda-hg/lazyboard/internal/query"
	"github.com/Joseda-hg/lazyboard/internal/theme"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var (
	postsTemplate = template.Must(template.New("layout.tmpl").Funcs(templateFuncs).ParseFS(templateFS, "templates/layout.tmpl", "templates/posts.tmpl"))
	postTemplate  = template.Must(template.New("layout.tmpl").Funcs(templateFuncs).ParseFS(templateFS, "templates/layout.tmpl", "templates/post.tmpl"))
	tasksTemplate = template.Must(template.New("layout.tmpl").Funcs(templateFuncs).ParseFS(templateFS, "templates/layout.tmpl", "templates/tasks.tmpl"))
)

var templateFuncs = template.FuncMap{
	"add": func(a, b int) int { return a + b },
}

type StatusRecorder interface {
	RecordHTTPStatus(statusCode int)
}

type Deps struct {
	Posts   *board.Posts
	Tasks   *board.Tasks
	Theme   *theme.Context
	Logger  *slog.Logger
	Metrics StatusRecorder
	// MetricsHandler serves /metrics when set.
	MetricsHandler http.Handler
	RateLimit      RateLimiterConfig
}

type Server struct {
	posts          *board.Posts
	tasks          *board.Tasks
	theme          *theme.Context
	logger         *slog.Logger
	metrics        StatusRecorder
	metricsHandler http.Handler
	limiter        *RateLimiter
}

func NewServer(deps Deps) *Server {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	limit := deps.RateLimit
	if limit.Rate == 0 {
		limit = DefaultRateLimiterConfig()
	}
	return &Server{
		posts:          deps.Posts,
		tasks:          deps.Tasks,
		theme:          deps.Theme,
		logger:         logger,
		metrics:        deps.Metrics,
		metricsHandler: deps.MetricsHandler,
		limiter:        NewRateLimiter(limit, logger),
	}
}

func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(newLoggingMiddleware(s.logger, s.metrics))
	r.Use(newRecoveryMiddleware(s.logger))

	r.Get("/", s.postsPage)
	r.Get("/posts/{id}", s.postPage)
	r.Get("/tasks", s.tasksPage)

	r.Group(func(r chi.Router) {
		r.Use(s.limiter.Middleware())
		r.Post("/tasks", s.addTaskForm)
		r.Post("/tasks/{id}/toggle", s.toggleTaskForm)
		r.Post("/tasks/{id}/delete", s.deleteTaskForm)
		r.Post("/theme/toggle", s.toggleThemeForm)
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/posts", s.apiPosts)
		r.Get("/posts/{id}", s.apiPost)
		r.Get("/tasks", s.apiTasks)
		r.Get("/theme", s.apiTheme)

		r.Group(func(r chi.Router) {
			r.Use(s.limiter.Middleware())
			r.Post("/posts/reload", s.apiReloadPosts)
			r.Post("/tasks", s.apiAddTask)
			r.Post("/tasks/{id}/toggle", s.apiToggleTask)
			r.Delete("/tasks/{id}", s.apiDeleteTask)
			r.Post("/theme/toggle", s.apiToggleTheme)
		})
	})

	if s.metricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", s.metricsHandler)
	}

	return r
}

type pageLink struct {
	Number  int
	Gap     bool
	Current bool
}

func pageLinks(page model.Page[model.Post]) []pageLink {
	window := query.PageWindow(page.CurrentPage, page.TotalPages)
	links := make([]pageLink, 0, len(window))
	for _, number := range window {
		if number == 0 {
			links = append(links, pageLink{Gap: true})
			continue
		}
		links = append(links, pageLink{Number: number, Current: number == page.CurrentPage})
	}
	return links
}
