package update

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/sandeepkv93/pomod/internal/dialog"
	"github.com/sandeepkv93/pomod/internal/views"
)

type keyMap struct {
	StartPause key.Binding
	Cancel     key.Binding
	Add        key.Binding
	Edit       key.Binding
	Delete     key.Binding
	DeleteAll  key.Binding
	Theme      key.Binding
	Palette    key.Binding
	Help       key.Binding
	Quit       key.Binding
	NextField  key.Binding
	PrevField  key.Binding
	Submit     key.Binding
	Close      key.Binding
	Confirm    key.Binding
	Deny       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		StartPause: key.NewBinding(key.WithKeys(" ", "s"), key.WithHelp("space", "start/pause")),
		Cancel:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "cancel timer")),
		Add:        key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add task")),
		Edit:       key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit task")),
		Delete:     key.NewBinding(key.WithKeys("d", "x"), key.WithHelp("d", "delete task")),
		DeleteAll:  key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "delete all")),
		Theme:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "toggle theme")),
		Palette:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "command")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		NextField:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		PrevField:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous field")),
		Submit:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Close:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Confirm:    key.NewBinding(key.WithKeys("y", "enter"), key.WithHelp("y", "continue")),
		Deny:       key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n", "cancel")),
	}
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

// contextBindings lists what the keyboard does right now.
func (m Model) contextBindings() []key.Binding {
	k := m.keys
	switch m.dialogs.Active() {
	case dialog.KindTask:
		return []key.Binding{k.Submit, k.NextField, k.PrevField, k.Close}
	case dialog.KindConfirm:
		return []key.Binding{k.Confirm, k.Deny}
	}
	if m.Palette.Active {
		return []key.Binding{k.Submit, k.Close}
	}
	out := []key.Binding{k.StartPause}
	if m.engine.CancelEnabled() {
		out = append(out, k.Cancel)
	}
	controls := m.tasks.Controls()
	out = append(out, k.Add)
	if controls.ShowAdd {
		out = append(out, k.Edit, k.Delete)
	}
	if controls.ShowDeleteAll {
		out = append(out, k.DeleteAll)
	}
	k.Theme.SetHelp("t", m.theme.ToggleIcon()+" "+m.theme.ToggleLabel())
	return append(out, k.Theme, k.Palette, k.Help, k.Quit)
}

func (m Model) renderHelpView() string {
	bindings := m.contextBindings()
	if !m.HelpVisible {
		return m.helpModel.ShortHelpView(bindings)
	}
	plain := []string{
		"palette: /add NAME [xN]  /edit N  /delete N  /clear",
		"         /start  /pause  /cancel  /theme",
	}
	m.helpModel.ShowAll = true
	return views.RenderHelpPanel(views.HelpPanelData{
		Bindings: plain,
		HelpView: m.helpModel.View(helpKeyMap{short: bindings, full: chunk(bindings, 4)}),
	})
}

func chunk(bindings []key.Binding, size int) [][]key.Binding {
	var out [][]key.Binding
	for len(bindings) > size {
		out = append(out, bindings[:size])
		bindings = bindings[size:]
	}
	if len(bindings) > 0 {
		out = append(out, bindings)
	}
	return out
}
