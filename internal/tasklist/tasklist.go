// Package tasklist holds the ordered pomodoro task sequence and persists it
// under a single key after every mutation.
package tasklist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/sandeepkv93/pomod/internal/model"
	"github.com/sandeepkv93/pomod/internal/storage"
)

var ErrTaskNotFound = errors.New("tasklist: task not found")

// Controls describes which list affordances are visible.
type Controls struct {
	ShowAddFirst  bool
	ShowAdd       bool
	ShowDeleteAll bool
}

// CycleResult reports what a completed work cycle did to the head task.
type CycleResult struct {
	Task    model.Task
	Removed bool
	Applied bool
}

type List struct {
	tasks  []model.Task
	store  storage.Store
	logger *log.Logger
}

func New(store storage.Store, logger *log.Logger) *List {
	return &List{store: store, logger: logger}
}

// Load replaces the in-memory sequence with the persisted one. An absent or
// malformed payload yields an empty list.
func (l *List) Load(ctx context.Context) []model.Task {
	l.tasks = nil
	if l.store == nil {
		return l.Tasks()
	}
	raw, err := l.store.Get(ctx, storage.KeyTasks)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			l.warn("read tasks failed", "err", err)
		}
		return l.Tasks()
	}
	if strings.TrimSpace(raw) == "" || strings.TrimSpace(raw) == "null" {
		return l.Tasks()
	}
	var decoded []model.Task
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		l.warn("tasks payload malformed; starting empty", "err", err)
		return l.Tasks()
	}
	l.tasks = decoded
	return l.Tasks()
}

func (l *List) Tasks() []model.Task {
	out := make([]model.Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

func (l *List) Len() int { return len(l.tasks) }

func (l *List) Get(id string) (model.Task, bool) {
	idx := l.indexOf(id)
	if idx < 0 {
		return model.Task{}, false
	}
	return l.tasks[idx], true
}

// Head is the task that receives the next completed work cycle.
func (l *List) Head() (model.Task, bool) {
	if len(l.tasks) == 0 {
		return model.Task{}, false
	}
	return l.tasks[0], true
}

func (l *List) Add(ctx context.Context, task model.Task) (model.Task, error) {
	if err := task.Validate(); err != nil {
		return model.Task{}, err
	}
	l.tasks = append(l.tasks, task)
	return task, l.persist(ctx)
}

// Update applies patch to the task with the same id. A task whose new total
// equals its completed pomodoros is finished and leaves the list, the same
// way CompleteHeadCycle drops it.
func (l *List) Update(ctx context.Context, patch model.TaskPatch) (model.Task, error) {
	idx := l.indexOf(patch.ID)
	if idx < 0 {
		return model.Task{}, fmt.Errorf("%w: %s", ErrTaskNotFound, patch.ID)
	}
	merged := l.tasks[idx].Merge(patch)
	if err := merged.Validate(); err != nil {
		return model.Task{}, err
	}
	if merged.Done() {
		l.tasks = append(l.tasks[:idx], l.tasks[idx+1:]...)
		return merged, l.persist(ctx)
	}
	l.tasks[idx] = merged
	return merged, l.persist(ctx)
}

// Remove deletes the task with id. A missing id leaves the list untouched
// and reports removed=false.
func (l *List) Remove(ctx context.Context, id string) (bool, error) {
	idx := l.indexOf(id)
	if idx < 0 {
		return false, l.persist(ctx)
	}
	l.tasks = append(l.tasks[:idx], l.tasks[idx+1:]...)
	return true, l.persist(ctx)
}

func (l *List) RemoveAll(ctx context.Context) error {
	l.tasks = l.tasks[:0]
	return l.persist(ctx)
}

// CompleteHeadCycle credits one pomodoro to the head task and drops it once
// its target is reached.
func (l *List) CompleteHeadCycle(ctx context.Context) (CycleResult, error) {
	if len(l.tasks) == 0 {
		return CycleResult{}, nil
	}
	l.tasks[0].Pomodoros++
	res := CycleResult{Task: l.tasks[0], Applied: true}
	if res.Task.Done() {
		l.tasks = l.tasks[1:]
		res.Removed = true
	}
	return res, l.persist(ctx)
}

func (l *List) Controls() Controls {
	n := len(l.tasks)
	return Controls{
		ShowAddFirst:  n == 0,
		ShowAdd:       n > 0,
		ShowDeleteAll: n > 1,
	}
}

func (l *List) indexOf(id string) int {
	for i, task := range l.tasks {
		if task.ID == id {
			return i
		}
	}
	return -1
}

func (l *List) persist(ctx context.Context) error {
	if l.store == nil {
		return nil
	}
	tasks := l.tasks
	if tasks == nil {
		tasks = []model.Task{}
	}
	payload, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}
	if err := l.store.Set(ctx, storage.KeyTasks, string(payload)); err != nil {
		l.warn("persist tasks failed", "err", err)
		return fmt.Errorf("persist tasks: %w", err)
	}
	return nil
}

func (l *List) warn(msg string, kv ...any) {
	if l.logger != nil {
		l.logger.Warn(msg, kv...)
	}
}
