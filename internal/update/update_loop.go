package update

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/pomod/internal/dialog"
)

func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(m.engine.Display())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	prev := m.Status
	next, cmd := m.update(msg)
	next.syncBubbleData()
	if next.Status != prev {
		if expire := next.expireStatus(); expire != nil {
			cmd = tea.Batch(cmd, expire)
		}
	}
	return next, cmd
}

// expireStatus numbers the status just set and schedules its removal.
// Errors and empty statuses stay until something replaces them.
func (m *Model) expireStatus() tea.Cmd {
	m.statusSeq++
	if m.statusTTL <= 0 || m.Status.Text == "" || m.Status.IsError {
		return nil
	}
	seq := m.statusSeq
	return tea.Tick(m.statusTTL, func(time.Time) tea.Msg {
		return ClearStatusMsg{Seq: seq}
	})
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = typed.Width, typed.Height
		m.resize()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(typed)
	case tea.FocusMsg:
		if n := m.center.DismissAll(); n > 0 {
			m.logger.Debug("dismissed notifications", "count", n)
		}
		if m.theme.Redetect(m.ctx) {
			m = m.afterSystemTheme()
		}
		return m, nil
	case SystemThemeMsg:
		if m.theme.SystemChanged(m.ctx, typed.Theme) {
			m = m.afterSystemTheme()
		}
		return m, nil
	case TickMsg:
		return m.onTick(typed)
	case TaskIDMsg:
		return m.onTaskID(typed), nil
	case ClearStatusMsg:
		if typed.Seq == m.statusSeq && !m.Status.IsError {
			m.Status = StatusBar{}
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m.quit()
	}
	switch m.dialogs.Active() {
	case dialog.KindTask:
		return m.handleFormKey(msg)
	case dialog.KindConfirm:
		return m.handleConfirmKey(msg), nil
	}
	if m.Palette.Active {
		return m.handlePaletteKey(msg)
	}

	k := m.keys
	switch {
	case key.Matches(msg, k.Quit):
		return m.quit()
	case key.Matches(msg, k.StartPause):
		return m.startOrPause()
	case key.Matches(msg, k.Cancel):
		return m.cancelTimer()
	case key.Matches(msg, k.Add):
		m.dialogs.OpenAdd()
		return m, nil
	case key.Matches(msg, k.Edit):
		return m.openEditSelected(), nil
	case key.Matches(msg, k.DeleteAll):
		return m.openDeleteAll(), nil
	case key.Matches(msg, k.Delete):
		return m.openDeleteSelected(), nil
	case key.Matches(msg, k.Theme):
		return m.toggleTheme(), nil
	case key.Matches(msg, k.Palette):
		return m.openPalette(), nil
	case key.Matches(msg, k.Help):
		m.HelpVisible = !m.HelpVisible
		return m, nil
	}

	var cmd tea.Cmd
	m.taskList, cmd = m.taskList.Update(msg)
	return m, cmd
}

func (m Model) handleFormKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	k := m.keys
	switch {
	case key.Matches(msg, k.Close):
		m.dialogs.CloseForm()
		return m, nil
	case key.Matches(msg, k.NextField):
		m.dialogs.Form.NextField()
		return m, nil
	case key.Matches(msg, k.PrevField):
		m.dialogs.Form.PrevField()
		return m, nil
	case key.Matches(msg, k.Submit) && m.dialogs.Form.Focused() != dialog.FieldDescription:
		return m.submitForm()
	case msg.String() == "ctrl+s":
		return m.submitForm()
	}
	var cmd tea.Cmd
	m.dialogs.Form, cmd = m.dialogs.Form.Update(msg)
	return m, cmd
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) Model {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		return m.proceedConfirm()
	case key.Matches(msg, m.keys.Deny):
		m.dialogs.CloseConfirm()
	}
	return m
}

func (m Model) quit() (Model, tea.Cmd) {
	m.disarmTicker()
	m.Quitting = true
	return m, tea.Quit
}

func (m Model) View() string {
	if m.Quitting {
		return ""
	}
	return m.render()
}
