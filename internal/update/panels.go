package update

import (
	"strings"

	"github.com/sandeepkv93/pomod/internal/dialog"
	"github.com/sandeepkv93/pomod/internal/pomodoro"
	"github.com/sandeepkv93/pomod/internal/views"
)

func (m Model) render() string {
	s := m.styles
	header := appName + "  " + s.Muted.Render(m.theme.ToggleIcon()+" "+m.theme.ToggleLabel()+" [t]")
	return views.RenderApp(s, views.AppData{
		Header:        header,
		TimerPane:     m.renderTimerPane(),
		TasksPane:     m.renderTasksPane(),
		DetailPane:    m.renderDetailPane(),
		Dialog:        m.renderDialog(),
		Palette:       views.RenderCommandPalette(m.Palette.Active, m.commandIn.View()),
		StatusLine:    m.Status.Text,
		StatusIsError: m.Status.IsError,
		Help:          m.renderHelpView(),
		Width:         m.width,
		Height:        m.height,
	})
}

func (m Model) renderTimerPane() string {
	e := m.engine
	head := ""
	if task, ok := m.tasks.Head(); ok {
		head = task.Name + " (" + task.Progress() + ")"
	}
	return views.RenderTimerPanel(m.styles, views.TimerPanelData{
		Phase:         phaseLabel(e.Phase()),
		IsBreak:       e.Phase() == pomodoro.PhaseBreak,
		Clock:         e.Display(),
		ProgressView:  m.progressBar.ViewAs(e.Progress()),
		StartLabel:    e.StartLabel(),
		CancelEnabled: e.CancelEnabled(),
		Pomodoros:     e.Pomodoros(),
		Breaks:        e.Breaks(),
		HeadTask:      head,
	})
}

func (m Model) renderTasksPane() string {
	c := m.tasks.Controls()
	return views.RenderTaskListPanel(m.styles, views.TaskListPanelData{
		ListView:      m.taskList.View(),
		Empty:         m.tasks.Len() == 0,
		ShowAddFirst:  c.ShowAddFirst,
		ShowAdd:       c.ShowAdd,
		ShowDeleteAll: c.ShowDeleteAll,
	})
}

func (m Model) renderDetailPane() string {
	task, ok := m.selectedTask()
	if !ok || strings.TrimSpace(task.Description) == "" {
		return ""
	}
	return m.styles.Selected.Render(task.Name) + "\n" + m.detail.View()
}

func (m Model) renderDialog() string {
	switch m.dialogs.Active() {
	case dialog.KindTask:
		f := m.dialogs.Form
		_, desc, _ := f.Values()
		return views.RenderTaskForm(m.styles, views.TaskFormData{
			Title:           f.Title,
			Caption:         f.Caption,
			NameView:        f.NameView(),
			DescriptionView: f.DescriptionView(),
			TotalView:       f.TotalView(),
			Preview:         views.RenderMarkdown(desc, m.theme.Current(), 48),
			ConfirmLabel:    f.ConfirmLabel(),
			Err:             f.Err,
		})
	case dialog.KindConfirm:
		return views.RenderConfirm(m.styles, views.ConfirmData{Description: m.dialogs.Confirm.Description})
	}
	return ""
}

func (m *Model) resize() {
	half := m.width/2 - 6
	if half < 28 {
		half = 28
	}
	listHeight := m.height - 14
	if listHeight < 6 {
		listHeight = 6
	}
	m.taskList.SetSize(half, listHeight)
	m.barWidth = half - 4
	m.progressBar.Width = m.barWidth
	m.detail.Width = 2*half + 4
	m.detail.Height = 6
	m.detailKey = ""
}

func (m *Model) syncBubbleData() {
	m.syncTaskList()
	m.syncDetail()
}

func phaseLabel(p pomodoro.Phase) string {
	if p == pomodoro.PhaseBreak {
		return "Break"
	}
	return "Work"
}
