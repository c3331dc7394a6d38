package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidTotal    = errors.New("model: invalid total pomodoros")
	ErrInvalidProgress = errors.New("model: invalid completed pomodoros")
)

type Task struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	TotalPomodoros int    `json:"totalPomodoros"`
	Pomodoros      int    `json:"pomodoros"`
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("model: task id is required")
	}
	if strings.TrimSpace(t.Name) == "" {
		return errors.New("model: task name is required")
	}
	if t.TotalPomodoros < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidTotal, t.TotalPomodoros)
	}
	if t.Pomodoros < 0 || t.Pomodoros > t.TotalPomodoros {
		return fmt.Errorf("%w: %d of %d", ErrInvalidProgress, t.Pomodoros, t.TotalPomodoros)
	}
	return nil
}

// Done reports whether every planned pomodoro has been completed.
func (t Task) Done() bool {
	return t.TotalPomodoros-t.Pomodoros <= 0
}

// Progress renders the completed/total counter shown next to each task.
func (t Task) Progress() string {
	return fmt.Sprintf("%d/%d", t.Pomodoros, t.TotalPomodoros)
}

// TaskPatch carries a partial edit. Nil fields keep the stored value.
type TaskPatch struct {
	ID             string
	Name           *string
	Description    *string
	TotalPomodoros *int
}

func (t Task) Merge(p TaskPatch) Task {
	out := t
	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.Description != nil {
		out.Description = *p.Description
	}
	if p.TotalPomodoros != nil {
		out.TotalPomodoros = *p.TotalPomodoros
	}
	return out
}
