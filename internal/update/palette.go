package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/pomod/internal/commands"
	"github.com/sandeepkv93/pomod/internal/dialog"
)

func (m Model) openPalette() Model {
	m.Palette = CommandPaletteState{Active: true}
	m.commandIn.SetValue("")
	m.commandIn.Focus()
	return m
}

func (m Model) closePalette() Model {
	m.Palette = CommandPaletteState{}
	m.commandIn.SetValue("")
	m.commandIn.Blur()
	return m
}

func (m Model) handlePaletteKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m = m.closePalette()
		m.Status = StatusBar{Text: "command palette closed"}
		return m, nil
	case "enter":
		m.Palette.Input = m.commandIn.Value()
		return m.executePaletteCommand()
	}
	var cmd tea.Cmd
	m.commandIn, cmd = m.commandIn.Update(msg)
	m.Palette.Input = m.commandIn.Value()
	return m, cmd
}

func (m Model) executePaletteCommand() (Model, tea.Cmd) {
	raw := strings.TrimSpace(m.Palette.Input)
	m = m.closePalette()
	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}

	var follow tea.Cmd
	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			sub := dialog.Submission{Mode: dialog.ModeAdd, Name: a.Name, TotalPomodoros: a.TotalPomodoros}
			follow = newTaskIDCmd(m, sub)
			return commands.Result{Message: fmt.Sprintf("adding %s (x%d)", a.Name, a.TotalPomodoros)}, nil
		},
		Edit: func(a commands.TargetArgs) (commands.Result, error) {
			task, ok := m.taskAt(a.Position)
			if !ok {
				return commands.Result{}, noTaskAt(a.Position)
			}
			m.dialogs.OpenEdit(task)
			return commands.Result{Message: "editing " + task.Name}, nil
		},
		Delete: func(a commands.TargetArgs) (commands.Result, error) {
			task, ok := m.taskAt(a.Position)
			if !ok {
				return commands.Result{}, noTaskAt(a.Position)
			}
			m.dialogs.OpenDeleteOne(task.ID)
			return commands.Result{Message: "confirm delete of " + task.Name}, nil
		},
		Clear: func() (commands.Result, error) {
			if m.tasks.Len() == 0 {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "task list is already empty"}
			}
			m.dialogs.OpenDeleteAll()
			return commands.Result{Message: "confirm delete of all tasks"}, nil
		},
		Start: func() (commands.Result, error) {
			m, follow = m.startTimer()
			return commands.Result{Message: m.Status.Text}, nil
		},
		Pause: func() (commands.Result, error) {
			if !m.engine.Running() {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "timer is not running"}
			}
			m, follow = m.pauseTimer()
			return commands.Result{Message: m.Status.Text}, nil
		},
		Cancel: func() (commands.Result, error) {
			if !m.engine.CancelEnabled() {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "timer is idle"}
			}
			m, follow = m.cancelTimer()
			return commands.Result{Message: m.Status.Text}, nil
		},
		Theme: func() (commands.Result, error) {
			m = m.toggleTheme()
			return commands.Result{Message: m.Status.Text}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.logger.Debug("palette command failed", "input", raw, "err", err)
		return m, nil
	}
	m.Status = StatusBar{Text: res.Message}
	return m, follow
}

func noTaskAt(pos int) error {
	return &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("no task at position %d", pos)}
}
