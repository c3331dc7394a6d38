package dialog

import "github.com/sandeepkv93/pomod/internal/model"

type Action string

const (
	ActionSingle Action = "single"
	ActionAll    Action = "all"
)

const (
	singleDescription = "This will permanently delete this task."
	allDescription    = "This action will permanently delete all of your tasks."
)

type Confirm struct {
	Open        bool
	Action      Action
	TaskID      string
	Description string
}

// Kind names the dialog that currently owns the keyboard.
type Kind string

const (
	KindNone    Kind = ""
	KindTask    Kind = "task"
	KindConfirm Kind = "confirm"
)

type Controller struct {
	Form    TaskForm
	Confirm Confirm
}

func NewController() Controller {
	return Controller{Form: NewTaskForm()}
}

func (c Controller) Active() Kind {
	switch {
	case c.Form.Open:
		return KindTask
	case c.Confirm.Open:
		return KindConfirm
	default:
		return KindNone
	}
}

func (c *Controller) OpenAdd() {
	c.CloseConfirm()
	c.Form.OpenAdd()
}

func (c *Controller) OpenEdit(task model.Task) {
	c.CloseConfirm()
	c.Form.OpenEdit(task)
}

func (c *Controller) CloseForm() {
	c.Form.Close()
}

// OpenDeleteOne asks before removing a single task.
func (c *Controller) OpenDeleteOne(taskID string) {
	c.Form.Close()
	c.Confirm = Confirm{Open: true, Action: ActionSingle, TaskID: taskID, Description: singleDescription}
}

// OpenDeleteAll asks before emptying the list.
func (c *Controller) OpenDeleteAll() {
	c.Form.Close()
	c.Confirm = Confirm{Open: true, Action: ActionAll, Description: allDescription}
}

// Proceed closes the confirmation and returns what the user agreed to.
func (c *Controller) Proceed() (Confirm, bool) {
	if !c.Confirm.Open {
		return Confirm{}, false
	}
	out := c.Confirm
	c.CloseConfirm()
	return out, true
}

func (c *Controller) CloseConfirm() {
	c.Confirm = Confirm{}
}
