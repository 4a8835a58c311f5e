package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Joseda-hg/lazyboard/internal/tui"
)

var Version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}
	var (
		webEnabled bool
		webOnly    bool
		port       int
	)

	rootCmd := &cobra.Command{
		Use:           "lazyboard",
		Short:         "Browse remote posts and keep a local task list from the terminal",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if webOnly {
				return runServe(cmd.Context(), *opts, port)
			}
			return runTUI(cmd.Context(), *opts, webEnabled, port)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file path")
	flags.StringVar(&opts.dbPath, "db", "", "sqlite db path")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.BoolVar(&opts.logJSON, "log-json", false, "write logs as JSON")
	flags.StringVar(&opts.logFile, "log-file", "", "append logs to this file")

	rootCmd.Flags().BoolVar(&webEnabled, "web", false, "also run the web server")
	rootCmd.Flags().BoolVar(&webOnly, "web-only", false, "run the web server only")
	rootCmd.Flags().IntVar(&port, "port", 0, "web server port")

	rootCmd.AddCommand(serveCmd(opts))
	rootCmd.AddCommand(postsCmd(opts))
	rootCmd.AddCommand(tasksCmd(opts))
	return rootCmd
}

func runTUI(ctx context.Context, opts globalOptions, webEnabled bool, port int) error {
	// the terminal belongs to the TUI, so logs go to a file unless told otherwise
	if opts.logFile == "" {
		opts.logFile = defaultLogFile(opts.configPath)
	}

	a, err := openApp(ctx, opts, os.Stderr)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.saveWebFlags(webEnabled, port); err != nil {
		return err
	}

	if a.cfg.WebEnabled {
		server := a.newHTTPServer()
		go func() {
			a.logger.Info("web server starting", slog.String("addr", server.Addr))
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				a.logger.Error("web server error", slog.String("error", err.Error()))
			}
		}()
		defer shutdown(a, server)
	}

	return tui.Run(ctx, tui.Deps{
		Posts:  a.posts,
		Tasks:  a.tasks,
		Theme:  a.theme,
		Logger: a.logger,
	})
}

func runServe(ctx context.Context, opts globalOptions, port int) error {
	a, err := openApp(ctx, opts, os.Stderr)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.saveWebFlags(true, port); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := a.newHTTPServer()
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("web server starting", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("web server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdown(a, server)
	return nil
}

func (a *app) newHTTPServer() *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf(":%d", a.cfg.WebPort),
		Handler:      a.webHandler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

func shutdown(a *app, server *http.Server) {
	a.logger.Info("shutting down web server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		a.logger.Error("web server shutdown", slog.String("error", err.Error()))
	}
}

func defaultLogFile(configPath string) string {
	if configPath != "" {
		return filepath.Join(filepath.Dir(configPath), "lazyboard.log")
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "lazyboard.log")
	}
	return filepath.Join(dir, "lazyboard", "lazyboard.log")
}

func serveCmd(opts *globalOptions) *cobra.Command {
	var port int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web UI and JSON API",
		Long: `Run the web UI and JSON API without the terminal UI.

Examples:
  lazyboard serve --port 8080
  lazyboard serve --log-json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), *opts, port)
		},
	}
	cmd.Flags().IntVar(&port, "port", 0, "web server port")
	return cmd
}
