package main

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/Joseda-hg/lazyboard/internal/config"
)

func TestSaveWebFlagsKeepsEnvOutOfConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.json")
	t.Setenv("LAZYBOARD_API_BASE_URL", "http://localhost:9")
	t.Setenv("LAZYBOARD_PER_PAGE", "3")

	a, err := openApp(context.Background(), globalOptions{
		configPath: cfgPath,
		dbPath:     filepath.Join(dir, "board.db"),
		logLevel:   "error",
	}, io.Discard)
	if err != nil {
		t.Fatalf("open app: %v", err)
	}
	defer a.Close()

	if err := a.saveWebFlags(true, 9090); err != nil {
		t.Fatalf("save: %v", err)
	}
	if a.cfg.APIBaseURL != "http://localhost:9" || a.cfg.WebPort != 9090 || !a.cfg.WebEnabled {
		t.Fatalf("runtime config missing overrides: %+v", a.cfg)
	}

	saved, err := config.Load(cfgPath)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	defaults := config.Default()
	if saved.APIBaseURL != defaults.APIBaseURL || saved.PerPage != defaults.PerPage {
		t.Fatalf("env overrides leaked into the file: %+v", saved)
	}
	if saved.LogLevel != defaults.LogLevel {
		t.Fatalf("--log-level leaked into the file: %q", saved.LogLevel)
	}
	if !saved.WebEnabled || saved.WebPort != 9090 || saved.DBPath != filepath.Join(dir, "board.db") {
		t.Fatalf("flag overrides not saved: %+v", saved)
	}
}
