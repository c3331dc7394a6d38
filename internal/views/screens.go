package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type TimerPanelData struct {
	Phase         string
	IsBreak       bool
	Clock         string
	ProgressView  string
	StartLabel    string
	CancelEnabled bool
	Pomodoros     int
	Breaks        int
	HeadTask      string
}

type TaskListPanelData struct {
	ListView      string
	Empty         bool
	ShowAddFirst  bool
	ShowAdd       bool
	ShowDeleteAll bool
}

type TaskFormData struct {
	Title           string
	Caption         string
	NameView        string
	DescriptionView string
	TotalView       string
	Preview         string
	ConfirmLabel    string
	Err             string
}

type ConfirmData struct {
	Description string
}

type HelpPanelData struct {
	Bindings []string
	HelpView string
}

func RenderTimerPanel(s Styles, data TimerPanelData) string {
	phase := s.Work.Render(strings.ToUpper(data.Phase))
	if data.IsBreak {
		phase = s.Break.Render(strings.ToUpper(data.Phase))
	}
	var b strings.Builder
	b.WriteString(phase + "\n\n")
	b.WriteString(s.Clock.Render(data.Clock) + "\n\n")
	b.WriteString(data.ProgressView + "\n\n")

	cancel := s.ButtonDisabled.Render("Cancel")
	if data.CancelEnabled {
		cancel = s.Button.Render("[c] Cancel")
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, s.Button.Render("[space] "+data.StartLabel), "  ", cancel) + "\n\n")
	b.WriteString(s.Muted.Render(fmt.Sprintf("pomodoros: %d  breaks: %d", data.Pomodoros, data.Breaks)))
	if data.HeadTask != "" {
		b.WriteString("\n" + s.Muted.Render("now: ") + data.HeadTask)
	}
	return b.String()
}

func RenderTaskListPanel(s Styles, data TaskListPanelData) string {
	var b strings.Builder
	if data.Empty {
		b.WriteString(s.Muted.Render("No tasks yet.") + "\n")
	} else {
		b.WriteString(data.ListView + "\n")
	}
	var actions []string
	if data.ShowAddFirst {
		actions = append(actions, s.Button.Render("[a] Add your first task"))
	}
	if data.ShowAdd {
		actions = append(actions, s.Button.Render("[a] Add task"))
	}
	if data.ShowDeleteAll {
		actions = append(actions, s.Button.Render("[D] Delete all"))
	}
	b.WriteString(strings.Join(actions, "  "))
	return strings.TrimRight(b.String(), "\n")
}

func RenderTaskForm(s Styles, data TaskFormData) string {
	var b strings.Builder
	b.WriteString(s.Header.Render(data.Title) + "\n")
	b.WriteString(s.Muted.Render(data.Caption) + "\n\n")
	b.WriteString(data.NameView + "\n\n")
	b.WriteString(data.DescriptionView + "\n\n")
	b.WriteString(data.TotalView + "\n")
	if data.Preview != "" {
		b.WriteString("\n" + s.Muted.Render("preview") + "\n" + data.Preview + "\n")
	}
	if data.Err != "" {
		b.WriteString("\n" + s.Error.Render(data.Err) + "\n")
	}
	b.WriteString("\n" + s.Footer.Render(fmt.Sprintf("[enter] %s  [tab] next field  [esc] cancel", data.ConfirmLabel)))
	return b.String()
}

func RenderConfirm(s Styles, data ConfirmData) string {
	return fmt.Sprintf("%s\n\n%s\n\n%s",
		s.Header.Render("Are you sure?"),
		data.Description,
		s.Footer.Render("[y] Continue  [n] Cancel"),
	)
}

func RenderCommandPalette(active bool, inputView string) string {
	if !active {
		return ""
	}
	return inputView
}

func RenderHelpPanel(data HelpPanelData) string {
	if len(data.Bindings) == 0 {
		return data.HelpView
	}
	return strings.Join(data.Bindings, "\n") + "\n" + data.HelpView
}
