package dialog

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/pomod/internal/model"
)

func TestOpenAddShowsBlankForm(t *testing.T) {
	c := NewController()
	c.OpenAdd()
	if c.Active() != KindTask || c.Form.Mode != ModeAdd {
		t.Fatalf("expected add form open, got %q/%q", c.Active(), c.Form.Mode)
	}
	name, desc, total := c.Form.Values()
	if name != "" || desc != "" || total != "1" {
		t.Fatalf("expected blank defaults, got %q %q %q", name, desc, total)
	}
	if c.Form.Title != "Add Task" || c.Form.Caption != "Add a pomodoro task." {
		t.Fatalf("unexpected labels: %q %q", c.Form.Title, c.Form.Caption)
	}
}

func TestOpenEditPrefillsAndSubmitsPatch(t *testing.T) {
	c := NewController()
	c.OpenEdit(model.Task{ID: "abc", Name: "Write docs", Description: "all of them", TotalPomodoros: 3, Pomodoros: 1})
	if c.Form.Mode != ModeEdit || c.Form.TaskID != "abc" || c.Form.Title != "Edit Task" || c.Form.Caption != "Write docs" {
		t.Fatalf("unexpected edit form: %#v", c.Form)
	}

	c.Form.SetField(FieldName, "Write better docs")
	sub, err := c.Form.Submit()
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	patch := sub.Patch()
	if patch.ID != "abc" || *patch.Name != "Write better docs" || *patch.Description != "all of them" || *patch.TotalPomodoros != 3 {
		t.Fatalf("unexpected patch: %#v", patch)
	}
}

func TestSubmitValidation(t *testing.T) {
	c := NewController()
	c.OpenAdd()
	if _, err := c.Form.Submit(); !errors.Is(err, ErrNameRequired) {
		t.Fatalf("expected ErrNameRequired, got %v", err)
	}
	c.Form.SetField(FieldName, "Plan sprint")
	c.Form.SetField(FieldTotal, "0")
	if _, err := c.Form.Submit(); !errors.Is(err, ErrInvalidTotal) {
		t.Fatalf("expected ErrInvalidTotal, got %v", err)
	}
	if c.Form.Err == "" {
		t.Fatal("expected inline error text")
	}
	c.Form.SetField(FieldTotal, "4")
	sub, err := c.Form.Submit()
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	task := sub.NewTask("id-1")
	if task.ID != "id-1" || task.Name != "Plan sprint" || task.TotalPomodoros != 4 || task.Pomodoros != 0 {
		t.Fatalf("unexpected task: %#v", task)
	}

	c.CloseForm()
	if _, err := c.Form.Submit(); !errors.Is(err, ErrNotOpen) {
		t.Fatalf("expected ErrNotOpen, got %v", err)
	}
}

func TestCloseResetsToAddDefaults(t *testing.T) {
	c := NewController()
	c.OpenEdit(model.Task{ID: "abc", Name: "Old", TotalPomodoros: 2})
	c.CloseForm()
	if c.Form.Open || c.Form.Mode != ModeAdd || c.Form.TaskID != "" || c.Form.Title != "Add Task" {
		t.Fatalf("form not reset: %#v", c.Form)
	}
	name, _, total := c.Form.Values()
	if name != "" || total != "1" {
		t.Fatalf("fields not reset: %q %q", name, total)
	}
}

func TestTypingGoesToFocusedField(t *testing.T) {
	c := NewController()
	c.OpenAdd()
	c.Form, _ = c.Form.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Read")})
	c.Form.NextField()
	c.Form.NextField()
	if c.Form.Focused() != FieldTotal {
		t.Fatalf("expected total focused, got %d", c.Form.Focused())
	}
	c.Form.PrevField()
	if c.Form.Focused() != FieldDescription {
		t.Fatalf("expected description focused, got %d", c.Form.Focused())
	}
	name, _, _ := c.Form.Values()
	if name != "Read" {
		t.Fatalf("expected typed name, got %q", name)
	}
}

func TestConfirmFlows(t *testing.T) {
	c := NewController()
	c.OpenAdd()
	c.OpenDeleteOne("t1")
	if c.Active() != KindConfirm || c.Form.Open {
		t.Fatalf("dialogs must be exclusive, active=%q", c.Active())
	}
	if c.Confirm.Description != "This will permanently delete this task." {
		t.Fatalf("unexpected description: %q", c.Confirm.Description)
	}
	got, ok := c.Proceed()
	if !ok || got.Action != ActionSingle || got.TaskID != "t1" {
		t.Fatalf("unexpected proceed: %#v ok=%v", got, ok)
	}
	if c.Active() != KindNone {
		t.Fatal("proceed should close the dialog")
	}

	c.OpenDeleteAll()
	c.CloseConfirm()
	if _, ok := c.Proceed(); ok {
		t.Fatal("proceed after cancel must do nothing")
	}
}
