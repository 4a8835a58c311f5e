package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/Joseda-hg/lazyboard/internal/board"
	"github.com/Joseda-hg/lazyboard/internal/config"
	"github.com/Joseda-hg/lazyboard/internal/db"
	"github.com/Joseda-hg/lazyboard/internal/fetch"
	"github.com/Joseda-hg/lazyboard/internal/metrics"
	"github.com/Joseda-hg/lazyboard/internal/theme"
	"github.com/Joseda-hg/lazyboard/internal/web"
)

type globalOptions struct {
	configPath string
	dbPath     string
	logLevel   string
	logJSON    bool
	logFile    string
}

type app struct {
	// cfg is what the process runs with; fileCfg is what gets written back.
	cfg      config.Config
	fileCfg  config.Config
	cfgPath  string
	logger   *slog.Logger
	logClose io.Closer

	sqlDB    *sql.DB
	registry *prometheus.Registry
	metrics  *metrics.Collector
	client   *fetch.Client

	posts *board.Posts
	tasks *board.Tasks
	theme *theme.Context
}

// openApp loads configuration and wires every component. logTo receives the
// log output unless --log-file overrides it.
func openApp(ctx context.Context, opts globalOptions, logTo io.Writer) (*app, error) {
	cfgPath := opts.configPath
	if cfgPath == "" {
		defaultPath, err := config.DefaultConfigPath()
		if err != nil {
			return nil, err
		}
		cfgPath = defaultPath
	}

	fileCfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	if opts.dbPath != "" {
		fileCfg.DBPath = opts.dbPath
	}
	if fileCfg.DBPath == "" {
		fileCfg.DBPath = filepath.Join(filepath.Dir(cfgPath), "lazyboard.db")
	}
	cfg := config.ApplyEnv(fileCfg)
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgPath, err)
	}

	a := &app{cfg: cfg, fileCfg: fileCfg, cfgPath: cfgPath}
	if err := a.setupLogger(opts, logTo); err != nil {
		return nil, err
	}

	if err := config.EnsureDir(cfg.DBPath); err != nil {
		a.Close()
		return nil, err
	}
	a.sqlDB, err = db.Open(cfg.DBPath)
	if err != nil {
		a.Close()
		return nil, err
	}
	kv := db.NewSQLiteKV(a.sqlDB)

	a.registry = prometheus.NewRegistry()
	a.registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	a.metrics = metrics.NewCollector(a.registry)

	httpClient := &http.Client{Timeout: time.Duration(cfg.FetchTimeout)}
	a.client = fetch.NewClient(cfg.APIBaseURL, httpClient, a.logger, a.metrics)

	a.posts, err = board.NewPosts(a.client, cfg.PerPage)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.tasks = board.NewTasks(ctx, db.NewTaskRepository(kv, a.logger), a.metrics)
	a.theme, err = theme.Load(ctx, db.NewThemeStore(kv), theme.PrefersDarkFromEnv)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("load theme: %w", err)
	}

	a.logger.Debug("app ready",
		slog.String("config", cfgPath),
		slog.String("db", cfg.DBPath),
		slog.String("api", a.client.BaseURL()),
	)
	return a, nil
}

func (a *app) setupLogger(opts globalOptions, logTo io.Writer) error {
	level, err := config.ParseLevel(a.cfg.LogLevel)
	if err != nil {
		return err
	}

	w := logTo
	if opts.logFile != "" {
		if err := config.EnsureDir(opts.logFile); err != nil {
			return err
		}
		file, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		w = file
		a.logClose = file
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler = slog.NewTextHandler(w, handlerOpts)
	if opts.logJSON {
		handler = slog.NewJSONHandler(w, handlerOpts)
	}
	a.logger = slog.New(handler)
	slog.SetDefault(a.logger)
	return nil
}

// saveWebFlags applies the --web and --port flags and writes them back
// together with the db path. Environment overrides and --log-level only
// last for this run.
func (a *app) saveWebFlags(webEnabled bool, port int) error {
	if webEnabled {
		a.cfg.WebEnabled = true
		a.fileCfg.WebEnabled = true
	}
	if port != 0 {
		a.cfg.WebPort = port
		a.fileCfg.WebPort = port
	}
	return config.Save(a.cfgPath, a.fileCfg)
}

func (a *app) webHandler() http.Handler {
	server := web.NewServer(web.Deps{
		Posts:          a.posts,
		Tasks:          a.tasks,
		Theme:          a.theme,
		Logger:         a.logger,
		Metrics:        a.metrics,
		MetricsHandler: metrics.Handler(a.registry),
		RateLimit:      web.DefaultRateLimiterConfig(),
	})
	return server.Handler()
}

func (a *app) Close() {
	if a.sqlDB != nil {
		_ = a.sqlDB.Close()
	}
	if a.logClose != nil {
		_ = a.logClose.Close()
	}
}
