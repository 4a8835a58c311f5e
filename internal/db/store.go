package db

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Joseda-hg/lazyboard/internal/model"
)

const (
	TasksKey = "tasks"
	ThemeKey = "theme"
)

// TaskRepository persists the whole task list under a single key.
type TaskRepository struct {
	kv     KV
	key    string
	logger *slog.Logger
}

func NewTaskRepository(kv KV, logger *slog.Logger) *TaskRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &TaskRepository{kv: kv, key: TasksKey, logger: logger}
}

// Load returns the persisted tasks. A missing, unreadable or corrupt value is
// indistinguishable from a first run and yields an empty list.
func (r *TaskRepository) Load(ctx context.Context) []model.Task {
	raw, ok, err := r.kv.Get(ctx, r.key)
	if err != nil {
		r.logger.Warn("read stored tasks", slog.String("key", r.key), slog.String("error", err.Error()))
		return []model.Task{}
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return []model.Task{}
	}

	var tasks []model.Task
	if err := json.Unmarshal([]byte(raw), &tasks); err != nil {
		r.logger.Warn("discarding unparsable stored tasks", slog.String("key", r.key), slog.String("error", err.Error()))
		return []model.Task{}
	}
	if tasks == nil {
		return []model.Task{}
	}
	if hasDuplicateIDs(tasks) {
		r.logger.Warn("discarding stored tasks with duplicate ids", slog.String("key", r.key))
		return []model.Task{}
	}
	return tasks
}

// Save replaces the stored list with tasks.
func (r *TaskRepository) Save(ctx context.Context, tasks []model.Task) error {
	if tasks == nil {
		tasks = []model.Task{}
	}
	payload, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}
	if err := r.kv.Set(ctx, r.key, string(payload)); err != nil {
		return fmt.Errorf("save tasks: %w", err)
	}
	return nil
}

func hasDuplicateIDs(tasks []model.Task) bool {
	seen := make(map[int64]struct{}, len(tasks))
	for _, task := range tasks {
		if _, ok := seen[task.ID]; ok {
			return true
		}
		seen[task.ID] = struct{}{}
	}
	return false
}

type ThemeStore struct {
	kv  KV
	key string
}

func NewThemeStore(kv KV) *ThemeStore {
	return &ThemeStore{kv: kv, key: ThemeKey}
}

// Get reports ok=false when nothing valid is stored.
func (s *ThemeStore) Get(ctx context.Context) (model.Theme, bool, error) {
	raw, ok, err := s.kv.Get(ctx, s.key)
	if err != nil || !ok {
		return "", false, err
	}
	theme := model.Theme(strings.TrimSpace(raw))
	if !theme.Valid() {
		return "", false, nil
	}
	return theme, true, nil
}

func (s *ThemeStore) Set(ctx context.Context, theme model.Theme) error {
	if !theme.Valid() {
		return fmt.Errorf("unknown theme %q", theme)
	}
	return s.kv.Set(ctx, s.key, string(theme))
}
