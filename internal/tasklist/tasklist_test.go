package tasklist

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/sandeepkv93/pomod/internal/model"
	"github.com/sandeepkv93/pomod/internal/storage"
)

func newTask(id string, total int) model.Task {
	return model.Task{ID: id, Name: "task " + id, Description: "desc " + id, TotalPomodoros: total}
}

func TestAddAppendsAndPersists(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	list := New(store, nil)

	if _, err := list.Add(ctx, newTask("a", 1)); err != nil {
		t.Fatalf("add a: %v", err)
	}
	if _, err := list.Add(ctx, newTask("b", 2)); err != nil {
		t.Fatalf("add b: %v", err)
	}

	reloaded := New(store, nil).Load(ctx)
	if len(reloaded) != 2 || reloaded[0].ID != "a" || reloaded[1].ID != "b" {
		t.Fatalf("unexpected persisted order: %#v", reloaded)
	}
}

func TestAddRejectsInvalidTask(t *testing.T) {
	list := New(storage.NewMemoryStore(), nil)
	_, err := list.Add(context.Background(), model.Task{ID: "x", Name: "bad", TotalPomodoros: 0})
	if !errors.Is(err, model.ErrInvalidTotal) {
		t.Fatalf("expected ErrInvalidTotal, got %v", err)
	}
	if list.Len() != 0 {
		t.Fatalf("invalid task should not be stored, len=%d", list.Len())
	}
}

func TestUpdateChangesOnlyProvidedFields(t *testing.T) {
	ctx := context.Background()
	list := New(storage.NewMemoryStore(), nil)
	orig := newTask("a", 3)
	orig.Pomodoros = 1
	if _, err := list.Add(ctx, orig); err != nil {
		t.Fatalf("add: %v", err)
	}

	name := "X"
	got, err := list.Update(ctx, model.TaskPatch{ID: "a", Name: &name})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Name != "X" || got.Description != orig.Description || got.TotalPomodoros != 3 || got.Pomodoros != 1 {
		t.Fatalf("unexpected merged task: %#v", got)
	}
}

func TestUpdateToCompletedTotalRemovesTask(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	list := New(store, nil)
	done := newTask("a", 3)
	done.Pomodoros = 2
	for _, task := range []model.Task{done, newTask("b", 1)} {
		if _, err := list.Add(ctx, task); err != nil {
			t.Fatalf("add %s: %v", task.ID, err)
		}
	}

	total := 2
	got, err := list.Update(ctx, model.TaskPatch{ID: "a", TotalPomodoros: &total})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !got.Done() || got.Progress() != "2/2" {
		t.Fatalf("expected finished task back, got %#v", got)
	}
	if _, ok := list.Get("a"); ok {
		t.Fatal("finished task should leave the list")
	}
	reloaded := New(store, nil).Load(ctx)
	if len(reloaded) != 1 || reloaded[0].ID != "b" {
		t.Fatalf("unexpected persisted tasks: %#v", reloaded)
	}
}

func TestUpdateMissingTask(t *testing.T) {
	list := New(storage.NewMemoryStore(), nil)
	name := "nope"
	_, err := list.Update(context.Background(), model.TaskPatch{ID: "ghost", Name: &name})
	if !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestRemoveThenLoadExcludesTask(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	list := New(store, nil)
	for _, id := range []string{"a", "b", "c"} {
		if _, err := list.Add(ctx, newTask(id, 1)); err != nil {
			t.Fatalf("add %s: %v", id, err)
		}
	}

	removed, err := list.Remove(ctx, "b")
	if err != nil || !removed {
		t.Fatalf("remove b: removed=%v err=%v", removed, err)
	}
	removed, err = list.Remove(ctx, "ghost")
	if err != nil || removed {
		t.Fatalf("remove ghost should be a no-op, removed=%v err=%v", removed, err)
	}

	for _, task := range New(store, nil).Load(ctx) {
		if task.ID == "b" {
			t.Fatalf("removed task survived reload")
		}
	}
}

func TestRemoveAll(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	list := New(store, nil)
	_, _ = list.Add(ctx, newTask("a", 1))
	_, _ = list.Add(ctx, newTask("b", 1))
	if err := list.RemoveAll(ctx); err != nil {
		t.Fatalf("remove all: %v", err)
	}
	raw, err := store.Get(ctx, storage.KeyTasks)
	if err != nil || raw != "[]" {
		t.Fatalf("expected empty persisted list, got %q err=%v", raw, err)
	}
}

func TestLoadHandlesAbsentAndMalformed(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	if got := New(store, nil).Load(ctx); len(got) != 0 {
		t.Fatalf("expected empty list for absent key, got %#v", got)
	}

	_ = store.Set(ctx, storage.KeyTasks, "{definitely not json")
	if got := New(store, nil).Load(ctx); len(got) != 0 {
		t.Fatalf("expected empty list for malformed payload, got %#v", got)
	}

	_ = store.Set(ctx, storage.KeyTasks, "null")
	if got := New(store, nil).Load(ctx); len(got) != 0 {
		t.Fatalf("expected empty list for null payload, got %#v", got)
	}
}

func TestCompleteHeadCycleRemovesFinishedTask(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	list := New(store, nil)
	_, _ = list.Add(ctx, newTask("a", 2))
	_, _ = list.Add(ctx, newTask("b", 1))

	res, err := list.CompleteHeadCycle(ctx)
	if err != nil {
		t.Fatalf("first cycle: %v", err)
	}
	if !res.Applied || res.Removed || res.Task.Pomodoros != 1 {
		t.Fatalf("unexpected first cycle result: %#v", res)
	}

	res, err = list.CompleteHeadCycle(ctx)
	if err != nil {
		t.Fatalf("second cycle: %v", err)
	}
	if !res.Removed || res.Task.ID != "a" {
		t.Fatalf("expected a to be removed, got %#v", res)
	}

	persisted := New(store, nil).Load(ctx)
	if len(persisted) != 1 || persisted[0].ID != "b" {
		t.Fatalf("expected only b persisted, got %#v", persisted)
	}
}

func TestCompleteHeadCycleOnEmptyList(t *testing.T) {
	store := storage.NewMemoryStore()
	res, err := New(store, nil).CompleteHeadCycle(context.Background())
	if err != nil || res.Applied {
		t.Fatalf("expected no-op, got %#v err=%v", res, err)
	}
	if store.Writes() != 0 {
		t.Fatalf("expected no writes, got %d", store.Writes())
	}
}

func TestControlsVisibility(t *testing.T) {
	ctx := context.Background()
	list := New(storage.NewMemoryStore(), nil)
	if c := list.Controls(); !c.ShowAddFirst || c.ShowAdd || c.ShowDeleteAll {
		t.Fatalf("unexpected empty controls: %#v", c)
	}
	_, _ = list.Add(ctx, newTask("a", 1))
	if c := list.Controls(); c.ShowAddFirst || !c.ShowAdd || c.ShowDeleteAll {
		t.Fatalf("unexpected single controls: %#v", c)
	}
	_, _ = list.Add(ctx, newTask("b", 1))
	if c := list.Controls(); !c.ShowDeleteAll {
		t.Fatalf("expected delete-all with two tasks: %#v", c)
	}
}

func TestListOverSQLiteStore(t *testing.T) {
	ctx := context.Background()
	store, err := storage.OpenSQLite(filepath.Join(t.TempDir(), "tasks.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer store.Close()

	list := New(store, nil)
	_, _ = list.Add(ctx, newTask("a", 2))
	if _, err := list.CompleteHeadCycle(ctx); err != nil {
		t.Fatalf("cycle: %v", err)
	}
	got := New(store, nil).Load(ctx)
	if len(got) != 1 || got[0].Pomodoros != 1 {
		t.Fatalf("unexpected sqlite-backed list: %#v", got)
	}
}
