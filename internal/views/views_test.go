package views

import (
	"strings"
	"testing"

	"github.com/sandeepkv93/pomod/internal/model"
)

func TestPaletteFollowsTheme(t *testing.T) {
	if PaletteFor(model.ThemeDark) == PaletteFor(model.ThemeLight) {
		t.Fatal("light and dark palettes must differ")
	}
	p := PaletteFor(model.ThemeLight)
	if p.PhaseColor(true) != p.Break || p.PhaseColor(false) != p.Work {
		t.Fatal("phase colors mismatch")
	}
}

func TestTaskListControls(t *testing.T) {
	s := NewStyles(model.ThemeLight)
	empty := RenderTaskListPanel(s, TaskListPanelData{Empty: true, ShowAddFirst: true})
	if !strings.Contains(empty, "Add your first task") || strings.Contains(empty, "Delete all") {
		t.Fatalf("unexpected empty panel: %q", empty)
	}
	many := RenderTaskListPanel(s, TaskListPanelData{ListView: "rows", ShowAdd: true, ShowDeleteAll: true})
	if strings.Contains(many, "first task") || !strings.Contains(many, "Delete all") {
		t.Fatalf("unexpected populated panel: %q", many)
	}
}

func TestTimerPanelCancelState(t *testing.T) {
	s := NewStyles(model.ThemeDark)
	idle := RenderTimerPanel(s, TimerPanelData{Phase: "work", Clock: "25:00", StartLabel: "Start"})
	if !strings.Contains(idle, "25:00") || strings.Contains(idle, "[c] Cancel") {
		t.Fatalf("idle timer should disable cancel: %q", idle)
	}
	running := RenderTimerPanel(s, TimerPanelData{Phase: "work", Clock: "24:59", StartLabel: "Pause", CancelEnabled: true})
	if !strings.Contains(running, "[c] Cancel") || !strings.Contains(running, "Pause") {
		t.Fatalf("running timer should enable cancel: %q", running)
	}
}

func TestRenderAppShowsDialogInsteadOfPanes(t *testing.T) {
	s := NewStyles(model.ThemeLight)
	out := RenderApp(s, AppData{Header: "pomod", TimerPane: "TIMER", TasksPane: "TASKS", Dialog: "DIALOG"})
	if !strings.Contains(out, "DIALOG") || strings.Contains(out, "TIMER") {
		t.Fatalf("dialog should replace panes: %q", out)
	}
	out = RenderApp(s, AppData{Header: "pomod", TimerPane: "TIMER", TasksPane: "TASKS", StatusLine: "boom", StatusIsError: true})
	if !strings.Contains(out, "TIMER") || !strings.Contains(out, "error: boom") {
		t.Fatalf("unexpected layout: %q", out)
	}
}

func TestRenderMarkdownEmpty(t *testing.T) {
	if got := RenderMarkdown("   ", model.ThemeDark, 40); got != "" {
		t.Fatalf("expected empty render, got %q", got)
	}
	if got := RenderMarkdown("**focus**", model.ThemeLight, 40); !strings.Contains(got, "focus") {
		t.Fatalf("expected rendered text, got %q", got)
	}
}
