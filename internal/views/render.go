package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/sandeepkv93/pomod/internal/model"
)

type AppData struct {
	Header        string
	TimerPane     string
	TasksPane     string
	DetailPane    string
	Dialog        string
	Palette       string
	StatusLine    string
	StatusIsError bool
	Help          string
	Width         int
	Height        int
}

// RenderApp lays out the screen. An open dialog replaces the panes.
func RenderApp(s Styles, data AppData) string {
	lines := []string{s.Header.Render(data.Header)}

	if data.Dialog != "" {
		body := s.Dialog.Render(data.Dialog)
		if data.Width > 0 && data.Height > 0 {
			body = lipgloss.Place(data.Width, max(data.Height-4, lipgloss.Height(body)), lipgloss.Center, lipgloss.Center, body)
		}
		lines = append(lines, body)
	} else {
		left := s.Panel.Width(paneWidth(data.Width)).Render(data.TimerPane)
		right := s.Panel.Width(paneWidth(data.Width)).Render(data.TasksPane)
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, left, right))
		if strings.TrimSpace(data.DetailPane) != "" {
			lines = append(lines, s.Panel.Width(2*paneWidth(data.Width)+2).Render(data.DetailPane))
		}
	}

	if data.Palette != "" {
		lines = append(lines, data.Palette)
	}
	if data.StatusLine != "" {
		if data.StatusIsError {
			lines = append(lines, s.Error.Render("error: "+data.StatusLine))
		} else {
			lines = append(lines, s.Status.Render(data.StatusLine))
		}
	}
	if data.Help != "" {
		lines = append(lines, s.Footer.Render(data.Help))
	}
	return strings.Join(lines, "\n")
}

func paneWidth(total int) int {
	if total <= 0 {
		return 40
	}
	w := total/2 - 4
	if w < 30 {
		return 30
	}
	return w
}

// RenderMarkdown renders a task description with the glamour style matching
// theme. Rendering failures fall back to the raw text.
func RenderMarkdown(md string, theme model.Theme, width int) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	if width <= 0 {
		width = 80
	}
	style := "light"
	if theme == model.ThemeDark {
		style = "dark"
	}
	r, err := glamour.NewTermRenderer(glamour.WithStandardStyle(style), glamour.WithWordWrap(width))
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
