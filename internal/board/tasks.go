package board

import (
	"context"
	"sync"
	"time"

	"github.com/Joseda-hg/lazyboard/internal/model"
	"github.com/Joseda-hg/lazyboard/internal/tasks"
)

type TaskRepository interface {
	Load(ctx context.Context) []model.Task
	Save(ctx context.Context, tasks []model.Task) error
}

type MutationRecorder interface {
	RecordTaskMutation(op string)
}

// Tasks owns the in-memory task list. Each mutation swaps in a new slice and
// writes the complete list back to the repository.
type Tasks struct {
	mu      sync.RWMutex
	repo    TaskRepository
	metrics MutationRecorder
	ids     *tasks.IDSource
	now     func() time.Time

	list   []model.Task
	filter model.StatusFilter
}

func NewTasks(ctx context.Context, repo TaskRepository, metrics MutationRecorder) *Tasks {
	list := repo.Load(ctx)
	return &Tasks{
		repo:    repo,
		metrics: metrics,
		ids:     tasks.NewIDSource(list),
		now:     time.Now,
		list:    list,
		filter:  model.StatusAll,
	}
}

func (t *Tasks) Add(ctx context.Context, text string) (model.Task, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	next, created, err := tasks.AddTask(t.list, text, t.ids, t.now())
	if err != nil {
		return model.Task{}, err
	}
	return created, t.commit(ctx, "add", next)
}

func (t *Tasks) Toggle(ctx context.Context, id int64) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.commit(ctx, "toggle", tasks.ToggleTask(t.list, id))
}

func (t *Tasks) Delete(ctx context.Context, id int64) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.commit(ctx, "delete", tasks.DeleteTask(t.list, id))
}

// commit installs next even when saving fails; the caller reports the error.
func (t *Tasks) commit(ctx context.Context, op string, next []model.Task) error {
	t.list = next
	if t.metrics != nil {
		t.metrics.RecordTaskMutation(op)
	}
	return t.repo.Save(ctx, next)
}

// SetFilter changes the status filter. Unlike a post search it has no page
// to reset.
func (t *Tasks) SetFilter(status model.StatusFilter) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.filter = status
}

func (t *Tasks) Filter() model.StatusFilter {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.filter
}

func (t *Tasks) Visible() []model.Task {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return tasks.FilterByStatus(t.list, t.filter)
}

func (t *Tasks) Filtered(status model.StatusFilter) []model.Task {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return tasks.FilterByStatus(t.list, status)
}

func (t *Tasks) All() []model.Task {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.list
}

func (t *Tasks) Get(id int64) (model.Task, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return tasks.Find(t.list, id)
}

func (t *Tasks) Stats() model.TaskStats {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return tasks.Stats(t.list)
}
