package tasks

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/Joseda-hg/lazyboard/internal/model"
)

var baseTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func TestAddTaskRejectsBlankText(t *testing.T) {
	ids := NewIDSource(nil)
	for _, text := range []string{"", "   ", "\n\t"} {
		result, _, err := AddTask([]model.Task{}, text, ids, baseTime)
		if err == nil {
			t.Fatalf("expected error for %q", text)
		}
		var validationErr *ValidationError
		if !errors.As(err, &validationErr) {
			t.Fatalf("expected ValidationError, got %T", err)
		}
		if !errors.Is(err, ErrEmptyText) {
			t.Fatalf("expected ErrEmptyText, got %v", err)
		}
		if len(result) != 0 {
			t.Fatalf("expected sequence unchanged, got %d tasks", len(result))
		}
	}
}

func TestAddTaskAppendsTrimmedActiveTask(t *testing.T) {
	ids := NewIDSource(nil)
	existing := []model.Task{{ID: 1, Text: "first"}}

	result, created, err := AddTask(existing, "  Buy milk  ", ids, baseTime)
	if err != nil {
		t.Fatalf("add task: %v", err)
	}
	if len(result) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(result))
	}
	if len(existing) != 1 {
		t.Fatalf("expected input to be left alone")
	}
	if created.Text != "Buy milk" || created.Completed {
		t.Fatalf("unexpected task: %+v", created)
	}
	if !created.CreatedAt.Equal(baseTime) {
		t.Fatalf("expected createdAt %v, got %v", baseTime, created.CreatedAt)
	}
	if result[1] != created {
		t.Fatalf("expected new task at the end")
	}
}

func TestIDSourceNeverRepeats(t *testing.T) {
	ids := NewIDSource([]model.Task{{ID: baseTime.UnixMilli() + 5}})

	seen := map[int64]struct{}{}
	var last int64
	for i := 0; i < 10; i++ {
		id := ids.Next(baseTime)
		if _, ok := seen[id]; ok {
			t.Fatalf("id %d issued twice", id)
		}
		if id <= last {
			t.Fatalf("expected increasing ids, got %d after %d", id, last)
		}
		seen[id] = struct{}{}
		last = id
	}
	if last <= baseTime.UnixMilli()+5 {
		t.Fatalf("expected ids above the seeded maximum, got %d", last)
	}
}

func TestToggleTwiceRestoresOriginal(t *testing.T) {
	original := []model.Task{
		{ID: 1, Text: "a"},
		{ID: 2, Text: "b", Completed: true},
	}

	once := ToggleTask(original, 1)
	if !once[0].Completed {
		t.Fatalf("expected task 1 to be completed")
	}
	if original[0].Completed {
		t.Fatalf("expected input to be left alone")
	}

	twice := ToggleTask(once, 1)
	if !reflect.DeepEqual(twice, original) {
		t.Fatalf("expected %v, got %v", original, twice)
	}
}

func TestToggleAndDeleteUnknownIDAreNoOps(t *testing.T) {
	original := []model.Task{{ID: 1, Text: "a"}, {ID: 2, Text: "b"}}

	if got := ToggleTask(original, 99); !reflect.DeepEqual(got, original) {
		t.Fatalf("toggle unknown id changed tasks: %v", got)
	}
	if got := DeleteTask(original, 99); !reflect.DeepEqual(got, original) {
		t.Fatalf("delete unknown id changed tasks: %v", got)
	}
}

func TestDeleteTaskRemovesOnlyMatch(t *testing.T) {
	original := []model.Task{{ID: 1}, {ID: 2}, {ID: 3}}
	got := DeleteTask(original, 2)
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
		t.Fatalf("unexpected result: %v", got)
	}
	if len(original) != 3 || original[1].ID != 2 {
		t.Fatalf("expected input to be left alone")
	}
}

func TestFilterByStatusAndStats(t *testing.T) {
	list := []model.Task{
		{ID: 1, Completed: false},
		{ID: 2, Completed: true},
		{ID: 3, Completed: false},
	}

	if got := FilterByStatus(list, model.StatusAll); len(got) != 3 {
		t.Fatalf("expected all 3 tasks, got %d", len(got))
	}
	active := FilterByStatus(list, model.StatusActive)
	if len(active) != 2 || active[0].ID != 1 || active[1].ID != 3 {
		t.Fatalf("unexpected active tasks: %v", active)
	}
	completed := FilterByStatus(list, model.StatusCompleted)
	if len(completed) != 1 || completed[0].ID != 2 {
		t.Fatalf("unexpected completed tasks: %v", completed)
	}

	stats := Stats(list)
	if stats != (model.TaskStats{Total: 3, Active: 2, Completed: 1}) {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}
