package update

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/pomod/internal/dialog"
	"github.com/sandeepkv93/pomod/internal/model"
	"github.com/sandeepkv93/pomod/internal/tasklist"
	"github.com/sandeepkv93/pomod/internal/views"
)

type taskItem struct {
	task model.Task
}

func (i taskItem) FilterValue() string { return i.task.Name }
func (i taskItem) Title() string       { return i.task.Name }

func (i taskItem) Description() string {
	done := "in progress"
	if i.task.Pomodoros == 0 {
		done = "not started"
	}
	return fmt.Sprintf("%s pomodoros, %s", i.task.Progress(), done)
}

// selectedTask resolves the highlighted row back to its record.
func (m Model) selectedTask() (model.Task, bool) {
	item, ok := m.taskList.SelectedItem().(taskItem)
	if !ok {
		return model.Task{}, false
	}
	return m.tasks.Get(item.task.ID)
}

// taskAt resolves a 1-based list position.
func (m Model) taskAt(pos int) (model.Task, bool) {
	tasks := m.tasks.Tasks()
	if pos < 1 || pos > len(tasks) {
		return model.Task{}, false
	}
	return tasks[pos-1], true
}

func (m Model) openEditSelected() Model {
	task, ok := m.selectedTask()
	if !ok {
		m.Status = StatusBar{Text: "no task selected"}
		return m
	}
	m.dialogs.OpenEdit(task)
	return m
}

func (m Model) openDeleteSelected() Model {
	task, ok := m.selectedTask()
	if !ok {
		m.Status = StatusBar{Text: "no task selected"}
		return m
	}
	m.dialogs.OpenDeleteOne(task.ID)
	return m
}

func (m Model) openDeleteAll() Model {
	if !m.tasks.Controls().ShowDeleteAll {
		m.Status = StatusBar{Text: "delete all needs more than one task"}
		return m
	}
	m.dialogs.OpenDeleteAll()
	return m
}

// submitForm validates the open form. Adds wait for an id; edits apply now.
func (m Model) submitForm() (Model, tea.Cmd) {
	if m.dialogs.Form.Pending {
		return m, nil
	}
	sub, err := m.dialogs.Form.Submit()
	if err != nil {
		return m, nil
	}
	if sub.Mode == dialog.ModeAdd {
		m.dialogs.Form.Pending = true
		return m, newTaskIDCmd(m, sub)
	}
	updated, err := m.tasks.Update(m.ctx, sub.Patch())
	if err != nil {
		m.logger.Warn("update task failed", "id", sub.TaskID, "err", err)
		m.setError(err)
		if errors.Is(err, tasklist.ErrTaskNotFound) {
			m.dialogs.CloseForm()
		}
		return m, nil
	}
	m.dialogs.CloseForm()
	if updated.Done() {
		m.Status = StatusBar{Text: "finished " + updated.Name}
		return m, nil
	}
	m.Status = StatusBar{Text: "updated " + updated.Name}
	return m, nil
}

func newTaskIDCmd(m Model, sub dialog.Submission) tea.Cmd {
	ids, ctx := m.ids, m.ctx
	return func() tea.Msg {
		id, err := ids.NewID(ctx)
		return TaskIDMsg{ID: id, Submission: sub, Err: err}
	}
}

func (m Model) onTaskID(msg TaskIDMsg) Model {
	m.dialogs.Form.Pending = false
	if msg.Err != nil {
		m.logger.Error("generate task id failed", "err", msg.Err)
		m.setError(fmt.Errorf("generate task id: %w", msg.Err))
		return m
	}
	added, err := m.tasks.Add(m.ctx, msg.Submission.NewTask(msg.ID))
	if err != nil {
		m.logger.Warn("add task failed", "err", err)
		m.setError(err)
		return m
	}
	if m.dialogs.Active() == dialog.KindTask && m.dialogs.Form.Mode == dialog.ModeAdd {
		m.dialogs.CloseForm()
	}
	m.Status = StatusBar{Text: "added " + added.Name}
	return m
}

// proceedConfirm runs the destructive action the user agreed to.
func (m Model) proceedConfirm() Model {
	c, ok := m.dialogs.Proceed()
	if !ok {
		return m
	}
	switch c.Action {
	case dialog.ActionSingle:
		removed, err := m.tasks.Remove(m.ctx, c.TaskID)
		if err != nil {
			m.setError(err)
			return m
		}
		if removed {
			m.Status = StatusBar{Text: "task deleted"}
		}
	case dialog.ActionAll:
		if err := m.tasks.RemoveAll(m.ctx); err != nil {
			m.setError(err)
			return m
		}
		m.Status = StatusBar{Text: "all tasks deleted"}
	}
	return m
}

// syncTaskList rebuilds the list rows and the id to row index.
func (m *Model) syncTaskList() {
	tasks := m.tasks.Tasks()
	items := make([]list.Item, 0, len(tasks))
	rows := make(map[string]int, len(tasks))
	for i, task := range tasks {
		items = append(items, taskItem{task: task})
		rows[task.ID] = i
	}
	selectedID := ""
	if item, ok := m.taskList.SelectedItem().(taskItem); ok {
		selectedID = item.task.ID
	}
	m.taskList.SetItems(items)
	m.rows = rows
	if idx, ok := rows[selectedID]; ok {
		m.taskList.Select(idx)
	} else if len(items) > 0 && m.taskList.Index() >= len(items) {
		m.taskList.Select(len(items) - 1)
	}
}

// syncDetail renders the selected description into the viewport when it
// changed.
func (m *Model) syncDetail() {
	task, ok := m.selectedTask()
	if !ok {
		m.detail.SetContent("")
		m.detailKey = ""
		return
	}
	key := task.ID + "\x00" + task.Description + "\x00" + string(m.theme.Current())
	if key == m.detailKey {
		return
	}
	m.detailKey = key
	m.detail.SetContent(views.RenderMarkdown(task.Description, m.theme.Current(), m.detail.Width))
	m.detail.GotoTop()
}
