// Package pomodoro implements the work/break countdown state machine. It has
// no clock of its own; callers feed it one Tick per elapsed second.
package pomodoro

import (
	"fmt"
	"time"
)

const (
	DefaultWork  = 25 * time.Minute
	DefaultBreak = 5 * time.Minute
)

type Phase string

const (
	PhaseWork  Phase = "work"
	PhaseBreak Phase = "break"
)

type Status string

const (
	StatusIdle    Status = "idle"
	StatusRunning Status = "running"
	StatusPaused  Status = "paused"
)

type EventKind string

const (
	EventNone           EventKind = ""
	EventWorkCompleted  EventKind = "work_completed"
	EventBreakCompleted EventKind = "break_completed"
)

// Event is returned from Tick when a phase runs out.
type Event struct {
	Kind EventKind
	Next Phase
}

type Durations struct {
	Work  time.Duration
	Break time.Duration
}

func DefaultDurations() Durations {
	return Durations{Work: DefaultWork, Break: DefaultBreak}
}

type Engine struct {
	durations Durations
	phase     Phase
	status    Status
	remaining time.Duration
	pomodoros int
	breaks    int
}

func NewEngine(d Durations) *Engine {
	if d.Work <= 0 {
		d.Work = DefaultWork
	}
	if d.Break <= 0 {
		d.Break = DefaultBreak
	}
	return &Engine{
		durations: d,
		phase:     PhaseWork,
		status:    StatusIdle,
		remaining: d.Work,
	}
}

// Start begins a session from Idle or resumes from Paused. firstStart is true
// only for the Idle transition.
func (e *Engine) Start() (firstStart bool) {
	switch e.status {
	case StatusIdle:
		e.phase = PhaseWork
		e.remaining = e.durations.Work
		e.status = StatusRunning
		return true
	case StatusPaused:
		e.status = StatusRunning
	}
	return false
}

func (e *Engine) Pause() bool {
	if e.status != StatusRunning {
		return false
	}
	e.status = StatusPaused
	return true
}

// Cancel returns to Idle from any state with a fresh work clock.
func (e *Engine) Cancel() {
	e.status = StatusIdle
	e.phase = PhaseWork
	e.remaining = e.durations.Work
}

// Tick advances the clock by one second while running.
func (e *Engine) Tick() Event {
	if e.status != StatusRunning {
		return Event{}
	}
	e.remaining -= time.Second
	if e.remaining > 0 {
		return Event{}
	}
	if e.phase == PhaseWork {
		e.pomodoros++
		e.phase = PhaseBreak
		e.remaining = e.durations.Break
		return Event{Kind: EventWorkCompleted, Next: PhaseBreak}
	}
	e.breaks++
	e.phase = PhaseWork
	e.remaining = e.durations.Work
	return Event{Kind: EventBreakCompleted, Next: PhaseWork}
}

func (e *Engine) Phase() Phase             { return e.phase }
func (e *Engine) Status() Status           { return e.status }
func (e *Engine) Remaining() time.Duration { return e.remaining }
func (e *Engine) Running() bool            { return e.status == StatusRunning }
func (e *Engine) Pomodoros() int           { return e.pomodoros }
func (e *Engine) Breaks() int              { return e.breaks }
func (e *Engine) Durations() Durations     { return e.durations }
func (e *Engine) CancelEnabled() bool      { return e.status != StatusIdle }

func (e *Engine) PhaseTotal() time.Duration {
	if e.phase == PhaseBreak {
		return e.durations.Break
	}
	return e.durations.Work
}

// StartLabel is the caption of the start/pause control.
func (e *Engine) StartLabel() string {
	switch e.status {
	case StatusRunning:
		return "Pause"
	case StatusPaused:
		return "Resume"
	default:
		return "Start"
	}
}

// Progress is the elapsed fraction of the current phase.
func (e *Engine) Progress() float64 {
	total := e.PhaseTotal()
	if total <= 0 {
		return 0
	}
	p := float64(total-e.remaining) / float64(total)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Display formats the remaining time as MM:SS.
func (e *Engine) Display() string {
	return FormatClock(e.remaining)
}

func FormatClock(d time.Duration) string {
	totalSec := int(d / time.Second)
	if totalSec < 0 {
		totalSec = 0
	}
	return fmt.Sprintf("%02d:%02d", totalSec/60, totalSec%60)
}
