package theme

import (
	"context"
	"testing"

	"github.com/sandeepkv93/pomod/internal/model"
	"github.com/sandeepkv93/pomod/internal/storage"
)

func fixed(t model.Theme) Detector {
	return func() (model.Theme, bool) { return t, true }
}

func TestResolvePrecedence(t *testing.T) {
	ctx := context.Background()

	if got := NewManager(nil, nil, nil).Resolve(ctx); got != model.ThemeLight {
		t.Fatalf("expected light fallback, got %q", got)
	}

	store := storage.NewMemoryStore()
	if got := NewManager(store, fixed(model.ThemeDark), nil).Resolve(ctx); got != model.ThemeDark {
		t.Fatalf("expected system dark, got %q", got)
	}

	_ = store.Set(ctx, storage.KeyTheme, "light")
	if got := NewManager(store, fixed(model.ThemeDark), nil).Resolve(ctx); got != model.ThemeLight {
		t.Fatalf("expected stored override light, got %q", got)
	}
}

func TestToggleTwiceRestoresAndPersistsLastChoice(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	m := NewManager(store, fixed(model.ThemeDark), nil)
	start := m.Resolve(ctx)

	first := m.Toggle(ctx)
	if first == start {
		t.Fatalf("toggle did not flip theme")
	}
	second := m.Toggle(ctx)
	if second != start {
		t.Fatalf("double toggle should restore %q, got %q", start, second)
	}

	raw, err := store.Get(ctx, storage.KeyTheme)
	if err != nil || raw != string(second) {
		t.Fatalf("override should reflect last choice, got %q err=%v", raw, err)
	}

	// On reload the override beats a conflicting system preference.
	reloaded := NewManager(store, fixed(model.ThemeLight), nil)
	if got := reloaded.Resolve(ctx); got != model.ThemeDark {
		t.Fatalf("expected override dark over system light, got %q", got)
	}
}

func TestSystemChangedRespectsOverride(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	m := NewManager(store, fixed(model.ThemeLight), nil)
	m.Resolve(ctx)

	if !m.SystemChanged(ctx, model.ThemeDark) || m.Current() != model.ThemeDark {
		t.Fatalf("expected system change to apply dark, got %q", m.Current())
	}
	if !m.TakeTransition() {
		t.Fatal("expected transition flag after system change")
	}
	if m.TakeTransition() {
		t.Fatal("transition flag should clear after take")
	}

	m.Toggle(ctx)
	if m.SystemChanged(ctx, model.ThemeDark) {
		t.Fatal("system change must be ignored once an override exists")
	}
	if m.Current() != model.ThemeLight {
		t.Fatalf("expected override light to stay, got %q", m.Current())
	}
}

func TestSystemChangedIgnoresSameTheme(t *testing.T) {
	ctx := context.Background()
	m := NewManager(storage.NewMemoryStore(), fixed(model.ThemeLight), nil)
	m.Resolve(ctx)
	if m.SystemChanged(ctx, model.ThemeLight) {
		t.Fatal("unchanged system theme should not count as a change")
	}
	if m.TakeTransition() {
		t.Fatal("unchanged system theme must not raise the transition flag")
	}
	if m.Redetect(ctx) {
		t.Fatal("redetect with the same answer should be a no-op")
	}
}

func TestRedetectUsesDetector(t *testing.T) {
	ctx := context.Background()
	sys := model.ThemeLight
	m := NewManager(storage.NewMemoryStore(), func() (model.Theme, bool) { return sys, true }, nil)
	m.Resolve(ctx)
	sys = model.ThemeDark
	if !m.Redetect(ctx) || m.Current() != model.ThemeDark {
		t.Fatalf("expected redetect to apply dark, got %q", m.Current())
	}
}

func TestToggleLabelDescribesOtherTheme(t *testing.T) {
	m := NewManager(nil, fixed(model.ThemeDark), nil)
	m.Resolve(context.Background())
	if m.ToggleLabel() != "Use light-mode" {
		t.Fatalf("unexpected label %q", m.ToggleLabel())
	}
	if m.ToggleIcon() != "☼" {
		t.Fatalf("unexpected icon %q", m.ToggleIcon())
	}
}
