// Package dialog holds the add/edit task form and the destructive
// confirmation prompt. Only one of them is open at a time.
package dialog

import (
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/pomod/internal/model"
)

var (
	ErrNameRequired = errors.New("dialog: task name is required")
	ErrInvalidTotal = errors.New("dialog: total pomodoros must be a whole number of at least 1")
	ErrNotOpen      = errors.New("dialog: form is not open")
)

type Mode string

const (
	ModeAdd  Mode = "add"
	ModeEdit Mode = "edit"
)

const (
	addTitle   = "Add Task"
	addCaption = "Add a pomodoro task."
	editTitle  = "Edit Task"
)

type Field int

const (
	FieldName Field = iota
	FieldDescription
	FieldTotal
	fieldCount
)

// Submission is the validated content of the form.
type Submission struct {
	Mode           Mode
	TaskID         string
	Name           string
	Description    string
	TotalPomodoros int
}

// NewTask builds a fresh record for add mode once an id is known.
func (s Submission) NewTask(id string) model.Task {
	return model.Task{
		ID:             id,
		Name:           s.Name,
		Description:    s.Description,
		TotalPomodoros: s.TotalPomodoros,
	}
}

// Patch builds the partial update for edit mode.
func (s Submission) Patch() model.TaskPatch {
	name, desc, total := s.Name, s.Description, s.TotalPomodoros
	return model.TaskPatch{ID: s.TaskID, Name: &name, Description: &desc, TotalPomodoros: &total}
}

type TaskForm struct {
	Open    bool
	Mode    Mode
	TaskID  string
	Title   string
	Caption string
	Err     string
	// Pending is set while an add waits for its id.
	Pending bool
	focus   Field
	name    textinput.Model
	desc    textarea.Model
	total   textinput.Model
}

func NewTaskForm() TaskForm {
	name := textinput.New()
	name.Prompt = "name> "
	name.Placeholder = "What are you working on?"
	name.CharLimit = 120
	name.Width = 42

	desc := textarea.New()
	desc.Placeholder = "Description (markdown)"
	desc.ShowLineNumbers = false
	desc.SetWidth(48)
	desc.SetHeight(4)
	desc.CharLimit = 2000

	total := textinput.New()
	total.Prompt = "pomodoros> "
	total.CharLimit = 3
	total.Width = 6

	f := TaskForm{name: name, desc: desc, total: total}
	f.reset()
	return f
}

// OpenAdd shows a blank form.
func (f *TaskForm) OpenAdd() {
	f.reset()
	f.Open = true
	f.focusField(FieldName)
}

// OpenEdit pre-fills the form from task and remembers its id.
func (f *TaskForm) OpenEdit(task model.Task) {
	f.reset()
	f.Open = true
	f.Mode = ModeEdit
	f.TaskID = task.ID
	f.Title = editTitle
	f.Caption = task.Name
	f.name.SetValue(task.Name)
	f.desc.SetValue(task.Description)
	f.total.SetValue(strconv.Itoa(task.TotalPomodoros))
	f.focusField(FieldName)
}

// Close hides the form and restores add-mode defaults.
func (f *TaskForm) Close() {
	f.reset()
}

func (f *TaskForm) ConfirmLabel() string { return f.Title }

func (f *TaskForm) Focused() Field { return f.focus }

func (f *TaskForm) NextField() {
	f.focusField((f.focus + 1) % fieldCount)
}

func (f *TaskForm) PrevField() {
	f.focusField((f.focus + fieldCount - 1) % fieldCount)
}

// SetField overwrites one input.
func (f *TaskForm) SetField(field Field, value string) {
	switch field {
	case FieldName:
		f.name.SetValue(value)
	case FieldDescription:
		f.desc.SetValue(value)
	case FieldTotal:
		f.total.SetValue(value)
	}
}

func (f TaskForm) Values() (name, description, total string) {
	return f.name.Value(), f.desc.Value(), f.total.Value()
}

// Update routes a key to the focused input.
func (f TaskForm) Update(msg tea.Msg) (TaskForm, tea.Cmd) {
	var cmd tea.Cmd
	switch f.focus {
	case FieldName:
		f.name, cmd = f.name.Update(msg)
	case FieldDescription:
		f.desc, cmd = f.desc.Update(msg)
	case FieldTotal:
		f.total, cmd = f.total.Update(msg)
	}
	return f, cmd
}

// Submit validates the form. The form stays open; callers close it after the
// store accepted the change.
func (f *TaskForm) Submit() (Submission, error) {
	if !f.Open {
		return Submission{}, ErrNotOpen
	}
	name := strings.TrimSpace(f.name.Value())
	if name == "" {
		f.Err = ErrNameRequired.Error()
		return Submission{}, ErrNameRequired
	}
	total, err := strconv.Atoi(strings.TrimSpace(f.total.Value()))
	if err != nil || total < 1 {
		f.Err = ErrInvalidTotal.Error()
		return Submission{}, ErrInvalidTotal
	}
	f.Err = ""
	return Submission{
		Mode:           f.Mode,
		TaskID:         f.TaskID,
		Name:           name,
		Description:    strings.TrimSpace(f.desc.Value()),
		TotalPomodoros: total,
	}, nil
}

func (f TaskForm) NameView() string        { return f.name.View() }
func (f TaskForm) DescriptionView() string { return f.desc.View() }
func (f TaskForm) TotalView() string       { return f.total.View() }

func (f *TaskForm) reset() {
	f.Open = false
	f.Mode = ModeAdd
	f.TaskID = ""
	f.Title = addTitle
	f.Caption = addCaption
	f.Err = ""
	f.Pending = false
	f.name.SetValue("")
	f.desc.SetValue("")
	f.total.SetValue("1")
	f.focusField(FieldName)
	f.name.Blur()
}

func (f *TaskForm) focusField(field Field) {
	f.focus = field
	f.name.Blur()
	f.desc.Blur()
	f.total.Blur()
	switch field {
	case FieldName:
		f.name.Focus()
	case FieldDescription:
		f.desc.Focus()
	case FieldTotal:
		f.total.Focus()
	}
}
