package update

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/pomod/internal/pomodoro"
	"github.com/sandeepkv93/pomod/internal/scheduler"
)

func (m Model) startOrPause() (Model, tea.Cmd) {
	if m.engine.Running() {
		return m.pauseTimer()
	}
	return m.startTimer()
}

func (m Model) startTimer() (Model, tea.Cmd) {
	if m.engine.Running() {
		return m, nil
	}
	first := m.engine.Start()
	if first {
		perm := m.center.RequestPermission()
		m.logger.Debug("session started", "permission", perm)
		m.Status = StatusBar{Text: "work session started"}
	} else {
		m.Status = StatusBar{Text: "timer resumed"}
	}
	return m, tea.Batch(m.armTicker(), tea.SetWindowTitle(m.engine.Display()))
}

func (m Model) pauseTimer() (Model, tea.Cmd) {
	if !m.engine.Pause() {
		return m, nil
	}
	m.disarmTicker()
	m.Status = StatusBar{Text: "timer paused"}
	return m, nil
}

func (m Model) cancelTimer() (Model, tea.Cmd) {
	if !m.engine.CancelEnabled() {
		return m, nil
	}
	m.disarmTicker()
	m.engine.Cancel()
	m.applyTheme()
	m.Status = StatusBar{Text: "timer cancelled"}
	return m, tea.SetWindowTitle(m.engine.Display())
}

func (m Model) onTick(msg TickMsg) (Model, tea.Cmd) {
	if msg.Gen != m.tickGen || !m.engine.Running() {
		return m, nil
	}
	ev := m.engine.Tick()
	switch ev.Kind {
	case pomodoro.EventWorkCompleted:
		m.completeWorkCycle()
		m.applyTheme()
	case pomodoro.EventBreakCompleted:
		m.logger.Info("break completed", "breaks", m.engine.Breaks())
		m.center.Notify(notifyTitle, workBody)
		m.Status = StatusBar{Text: "break over, back to work"}
		m.applyTheme()
	}
	return m, tea.Batch(tea.SetWindowTitle(m.engine.Display()), m.nextTick())
}

// completeWorkCycle credits the head task and announces the break.
func (m *Model) completeWorkCycle() {
	res, err := m.tasks.CompleteHeadCycle(m.ctx)
	if err != nil {
		m.logger.Error("persist work cycle failed", "err", err)
		m.setError(err)
	}
	m.logger.Info("work completed", "pomodoros", m.engine.Pomodoros(), "task", res.Task.ID, "removed", res.Removed)
	m.center.Notify(notifyTitle, breakBody)
	if err != nil {
		return
	}
	switch {
	case res.Removed:
		m.Status = StatusBar{Text: "finished " + res.Task.Name + ", time for a break"}
	case res.Applied:
		m.Status = StatusBar{Text: res.Task.Name + " " + res.Task.Progress() + ", time for a break"}
	default:
		m.Status = StatusBar{Text: "pomodoro complete, time for a break"}
	}
}

// armTicker replaces any running ticker with a fresh generation.
func (m *Model) armTicker() tea.Cmd {
	m.disarmTicker()
	t, err := scheduler.NewTicker(m.tickInterval, 1)
	if err != nil {
		m.logger.Error("arm ticker failed", "err", err)
		m.setError(err)
		return nil
	}
	t.Start()
	m.ticker = t
	return m.nextTick()
}

// disarmTicker stops the ticker and bumps the generation so in-flight ticks
// are ignored.
func (m *Model) disarmTicker() {
	m.tickGen++
	if m.ticker != nil {
		m.ticker.Stop()
		m.ticker = nil
	}
}

func (m Model) nextTick() tea.Cmd {
	if m.ticker == nil {
		return nil
	}
	return waitForTickCmd(m.ticker.C(), m.tickGen)
}

func waitForTickCmd(ch <-chan scheduler.Tick, gen uint64) tea.Cmd {
	return func() tea.Msg {
		tick, ok := <-ch
		if !ok {
			return nil
		}
		return TickMsg{Gen: gen, At: tick.At}
	}
}
