// Package theme holds the light/dark preference. The Context is passed to
// whoever renders; there is no package-level state.
package theme

import (
	"context"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/Joseda-hg/lazyboard/internal/model"
)

type Store interface {
	Get(ctx context.Context) (model.Theme, bool, error)
	Set(ctx context.Context, theme model.Theme) error
}

type Context struct {
	mu      sync.RWMutex
	store   Store
	current model.Theme
}

// Load restores the saved theme. Without one it asks prefersDark, which
// stands in for the OS-level dark mode signal.
func Load(ctx context.Context, store Store, prefersDark func() bool) (*Context, error) {
	saved, ok, err := store.Get(ctx)
	if err != nil {
		return nil, err
	}

	current := saved
	if !ok {
		current = model.ThemeLight
		if prefersDark != nil && prefersDark() {
			current = model.ThemeDark
		}
		// the resolved theme is written back like every later change
		if err := store.Set(ctx, current); err != nil {
			return nil, err
		}
	}

	return &Context{store: store, current: current}, nil
}

func (c *Context) Theme() model.Theme {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

func (c *Context) Toggle(ctx context.Context) (model.Theme, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	next := c.current.Opposite()
	if err := c.store.Set(ctx, next); err != nil {
		return c.current, err
	}
	c.current = next
	return next, nil
}

func (c *Context) Set(ctx context.Context, theme model.Theme) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.store.Set(ctx, theme); err != nil {
		return err
	}
	c.current = theme
	return nil
}

// PrefersDarkFromEnv reads LAZYBOARD_PREFERS_DARK, then falls back to the
// COLORFGBG convention used by many terminals ("fg;bg", dark bg is 0-6 or 8).
func PrefersDarkFromEnv() bool {
	if value := strings.TrimSpace(os.Getenv("LAZYBOARD_PREFERS_DARK")); value != "" {
		dark, err := strconv.ParseBool(value)
		return err == nil && dark
	}
	return prefersDarkFromColorFGBG(os.Getenv("COLORFGBG"))
}

func prefersDarkFromColorFGBG(value string) bool {
	parts := strings.Split(strings.TrimSpace(value), ";")
	if len(parts) < 2 {
		return false
	}
	bg, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return false
	}
	return (bg >= 0 && bg <= 6) || bg == 8
}
