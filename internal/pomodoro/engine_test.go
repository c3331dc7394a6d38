package pomodoro

import (
	"testing"
	"time"
)

func tickN(e *Engine, n int) []Event {
	var events []Event
	for i := 0; i < n; i++ {
		if ev := e.Tick(); ev.Kind != EventNone {
			events = append(events, ev)
		}
	}
	return events
}

func TestNewEngineDefaults(t *testing.T) {
	e := NewEngine(Durations{})
	if e.Status() != StatusIdle || e.Phase() != PhaseWork {
		t.Fatalf("unexpected initial state: %s/%s", e.Status(), e.Phase())
	}
	if e.Display() != "25:00" {
		t.Fatalf("expected 25:00, got %s", e.Display())
	}
	if e.StartLabel() != "Start" || e.CancelEnabled() {
		t.Fatalf("unexpected idle controls: label=%s cancel=%v", e.StartLabel(), e.CancelEnabled())
	}
}

func TestStartPauseResume(t *testing.T) {
	e := NewEngine(DefaultDurations())
	if !e.Start() {
		t.Fatal("first start should report firstStart")
	}
	if e.StartLabel() != "Pause" || !e.CancelEnabled() {
		t.Fatalf("unexpected running controls: %s", e.StartLabel())
	}
	tickN(e, 10)
	if e.Display() != "24:50" {
		t.Fatalf("expected 24:50 after 10 ticks, got %s", e.Display())
	}

	if !e.Pause() || e.StartLabel() != "Resume" {
		t.Fatalf("expected paused with Resume label, got %s", e.StartLabel())
	}
	tickN(e, 5)
	if e.Display() != "24:50" {
		t.Fatalf("paused clock moved: %s", e.Display())
	}

	if e.Start() {
		t.Fatal("resume must not report firstStart")
	}
	tickN(e, 1)
	if e.Display() != "24:49" {
		t.Fatalf("expected 24:49 after resume, got %s", e.Display())
	}
}

func TestWorkCompletionMovesToBreak(t *testing.T) {
	e := NewEngine(DefaultDurations())
	e.Start()
	events := tickN(e, int(DefaultWork/time.Second))
	if len(events) != 1 || events[0].Kind != EventWorkCompleted {
		t.Fatalf("expected one work completion, got %#v", events)
	}
	if e.Phase() != PhaseBreak || e.Display() != "05:00" || !e.Running() {
		t.Fatalf("expected running break at 05:00, got %s %s running=%v", e.Phase(), e.Display(), e.Running())
	}
	if e.Pomodoros() != 1 || e.Breaks() != 0 {
		t.Fatalf("unexpected counters: %d/%d", e.Pomodoros(), e.Breaks())
	}

	events = tickN(e, int(DefaultBreak/time.Second))
	if len(events) != 1 || events[0].Kind != EventBreakCompleted {
		t.Fatalf("expected one break completion, got %#v", events)
	}
	if e.Phase() != PhaseWork || e.Display() != "25:00" || e.Breaks() != 1 {
		t.Fatalf("expected work at 25:00, got %s %s", e.Phase(), e.Display())
	}
}

func TestCancelAlwaysResetsToWork(t *testing.T) {
	e := NewEngine(Durations{Work: 3 * time.Second, Break: 2 * time.Second})
	e.Start()
	tickN(e, 4) // into break
	if e.Phase() != PhaseBreak {
		t.Fatalf("expected break phase, got %s", e.Phase())
	}
	e.Cancel()
	if e.Status() != StatusIdle || e.Phase() != PhaseWork || e.Display() != "00:03" || e.CancelEnabled() {
		t.Fatalf("unexpected state after cancel: %s %s %s", e.Status(), e.Phase(), e.Display())
	}

	def := NewEngine(DefaultDurations())
	def.Start()
	def.Pause()
	def.Cancel()
	if def.Display() != "25:00" {
		t.Fatalf("cancel from paused should reset to 25:00, got %s", def.Display())
	}
	if !def.Start() || def.Phase() != PhaseWork {
		t.Fatal("start after cancel should be a fresh work session")
	}
}

func TestTickIgnoredWhenIdle(t *testing.T) {
	e := NewEngine(DefaultDurations())
	if ev := e.Tick(); ev.Kind != EventNone || e.Display() != "25:00" {
		t.Fatalf("idle tick changed state: %#v %s", ev, e.Display())
	}
}

func TestProgressAndFormatClock(t *testing.T) {
	e := NewEngine(Durations{Work: 10 * time.Second, Break: time.Second})
	e.Start()
	tickN(e, 5)
	if p := e.Progress(); p != 0.5 {
		t.Fatalf("expected progress 0.5, got %v", p)
	}
	if FormatClock(-time.Second) != "00:00" || FormatClock(61*time.Second) != "01:01" {
		t.Fatal("unexpected clock formatting")
	}
}
