// Package tasks implements the task list mutations. Every function takes the
// current sequence and returns a new one; the input slice is never modified.
package tasks

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/Joseda-hg/lazyboard/internal/model"
)

var ErrEmptyText = errors.New("task text is required")

// ValidationError reports user input that was rejected before any state
// change.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IDSource hands out task ids from the creation clock in milliseconds.
// Ids only grow, so an id is never reissued after its task is deleted.
type IDSource struct {
	mu   sync.Mutex
	last int64
}

func NewIDSource(existing []model.Task) *IDSource {
	source := &IDSource{}
	for _, task := range existing {
		if task.ID > source.last {
			source.last = task.ID
		}
	}
	return source
}

func (s *IDSource) Next(now time.Time) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := now.UnixMilli()
	if id <= s.last {
		id = s.last + 1
	}
	s.last = id
	return id
}

func AddTask(existing []model.Task, text string, ids *IDSource, now time.Time) ([]model.Task, model.Task, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return existing, model.Task{}, &ValidationError{Field: "text", Err: ErrEmptyText}
	}

	task := model.Task{
		ID:        ids.Next(now),
		Text:      trimmed,
		Completed: false,
		CreatedAt: now,
	}

	result := make([]model.Task, 0, len(existing)+1)
	result = append(result, existing...)
	result = append(result, task)
	return result, task, nil
}

func ToggleTask(existing []model.Task, id int64) []model.Task {
	result := make([]model.Task, len(existing))
	copy(result, existing)
	for i := range result {
		if result[i].ID == id {
			result[i].Completed = !result[i].Completed
		}
	}
	return result
}

func DeleteTask(existing []model.Task, id int64) []model.Task {
	result := make([]model.Task, 0, len(existing))
	for _, task := range existing {
		if task.ID == id {
			continue
		}
		result = append(result, task)
	}
	return result
}

func FilterByStatus(tasks []model.Task, status model.StatusFilter) []model.Task {
	switch status {
	case model.StatusActive, model.StatusCompleted:
	default:
		return tasks
	}

	wantCompleted := status == model.StatusCompleted
	result := make([]model.Task, 0, len(tasks))
	for _, task := range tasks {
		if task.Completed == wantCompleted {
			result = append(result, task)
		}
	}
	return result
}

func Stats(tasks []model.Task) model.TaskStats {
	stats := model.TaskStats{Total: len(tasks)}
	for _, task := range tasks {
		if task.Completed {
			stats.Completed++
		} else {
			stats.Active++
		}
	}
	return stats
}

func Find(tasks []model.Task, id int64) (model.Task, bool) {
	for _, task := range tasks {
		if task.ID == id {
			return task, true
		}
	}
	return model.Task{}, false
}
