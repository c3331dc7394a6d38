package update

func (m *Model) setError(err error) {
	m.LastError = err
	m.Status = StatusBar{Text: err.Error(), IsError: true}
}

func (m Model) toggleTheme() Model {
	next := m.theme.Toggle(m.ctx)
	m.applyTheme()
	m.logger.Info("theme toggled", "theme", next)
	m.Status = StatusBar{Text: "switched to " + string(next) + " mode"}
	return m
}

// afterSystemTheme repaints after the system preference changed underneath
// us and surfaces the one-shot transition notice.
func (m Model) afterSystemTheme() Model {
	m.applyTheme()
	if m.theme.TakeTransition() {
		m.Status = StatusBar{Text: "theme changed to " + string(m.theme.Current()) + " (system)"}
	}
	return m
}
