// Package theme resolves and persists the light/dark appearance.
package theme

import (
	"context"
	"errors"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/sandeepkv93/pomod/internal/model"
	"github.com/sandeepkv93/pomod/internal/storage"
)

// Detector reports the system preference. ok=false means unknown.
type Detector func() (model.Theme, bool)

// TerminalDetector queries the terminal background through lipgloss. It must
// run before the TUI takes over the terminal.
func TerminalDetector() Detector {
	dark := lipgloss.HasDarkBackground()
	return func() (model.Theme, bool) {
		if dark {
			return model.ThemeDark, true
		}
		return model.ThemeLight, true
	}
}

type Manager struct {
	store      storage.Store
	detect     Detector
	logger     *log.Logger
	current    model.Theme
	transition bool
}

func NewManager(store storage.Store, detect Detector, logger *log.Logger) *Manager {
	return &Manager{store: store, detect: detect, logger: logger, current: model.ThemeLight}
}

// Resolve picks the stored override, else the system preference, else light,
// and applies it.
func (m *Manager) Resolve(ctx context.Context) model.Theme {
	if override, ok := m.Override(ctx); ok {
		m.current = override
		return m.current
	}
	if sys, ok := m.system(); ok {
		m.current = sys
		return m.current
	}
	m.current = model.ThemeLight
	return m.current
}

func (m *Manager) Current() model.Theme { return m.current }

// Override returns the persisted user choice, if any.
func (m *Manager) Override(ctx context.Context) (model.Theme, bool) {
	if m.store == nil {
		return "", false
	}
	raw, err := m.store.Get(ctx, storage.KeyTheme)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) && m.logger != nil {
			m.logger.Warn("read theme failed", "err", err)
		}
		return "", false
	}
	t, ok := model.ParseTheme(raw)
	if !ok && m.logger != nil {
		m.logger.Warn("ignoring unknown stored theme", "value", raw)
	}
	return t, ok
}

// Toggle flips the applied theme and records it as the user override.
func (m *Manager) Toggle(ctx context.Context) model.Theme {
	m.current = m.current.Invert()
	m.transition = false
	if m.store != nil {
		if err := m.store.Set(ctx, storage.KeyTheme, string(m.current)); err != nil && m.logger != nil {
			m.logger.Error("persist theme failed", "err", err)
		}
	}
	return m.current
}

// SystemChanged re-applies the system theme unless the user has chosen one.
// It reports whether the applied theme was changed; an unchanged preference
// is ignored.
func (m *Manager) SystemChanged(ctx context.Context, sys model.Theme) bool {
	if _, ok := m.Override(ctx); ok {
		return false
	}
	if !sys.IsValid() || sys == m.current {
		return false
	}
	m.transition = true
	m.current = sys
	return true
}

// Redetect asks the detector again and applies the answer as a system change.
func (m *Manager) Redetect(ctx context.Context) bool {
	sys, ok := m.system()
	if !ok {
		return false
	}
	return m.SystemChanged(ctx, sys)
}

// TakeTransition reports and clears the pending transition flag.
func (m *Manager) TakeTransition() bool {
	t := m.transition
	m.transition = false
	return t
}

func (m *Manager) ToggleIcon() string  { return m.current.Invert().Icon() }
func (m *Manager) ToggleLabel() string { return m.current.SwitchLabel() }

func (m *Manager) system() (model.Theme, bool) {
	if m.detect == nil {
		return "", false
	}
	return m.detect()
}
