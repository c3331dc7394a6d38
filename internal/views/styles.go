package views

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/sandeepkv93/pomod/internal/model"
)

// Palette is the set of colors one theme paints with.
type Palette struct {
	Foreground string
	Muted      string
	Work       string
	Break      string
	Border     string
	Error      string
	Selected   string
}

var (
	lightPalette = Palette{
		Foreground: "#1f2328",
		Muted:      "#6e7781",
		Work:       "#cf222e",
		Break:      "#1a7f37",
		Border:     "#d0d7de",
		Error:      "#a40e26",
		Selected:   "#0969da",
	}
	darkPalette = Palette{
		Foreground: "#e6edf3",
		Muted:      "#8b949e",
		Work:       "#ff7b72",
		Break:      "#3fb950",
		Border:     "#30363d",
		Error:      "#f85149",
		Selected:   "#58a6ff",
	}
)

func PaletteFor(theme model.Theme) Palette {
	if theme == model.ThemeDark {
		return darkPalette
	}
	return lightPalette
}

// PhaseColor is the accent used for the clock and progress bar.
func (p Palette) PhaseColor(isBreak bool) string {
	if isBreak {
		return p.Break
	}
	return p.Work
}

type Styles struct {
	Theme          model.Theme
	Palette        Palette
	Header         lipgloss.Style
	Muted          lipgloss.Style
	Work           lipgloss.Style
	Break          lipgloss.Style
	Clock          lipgloss.Style
	Panel          lipgloss.Style
	Dialog         lipgloss.Style
	Status         lipgloss.Style
	Error          lipgloss.Style
	Footer         lipgloss.Style
	Selected       lipgloss.Style
	Button         lipgloss.Style
	ButtonDisabled lipgloss.Style
}

func NewStyles(theme model.Theme) Styles {
	p := PaletteFor(theme)
	fg := lipgloss.Color(p.Foreground)
	return Styles{
		Theme:          theme,
		Palette:        p,
		Header:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.Work)),
		Muted:          lipgloss.NewStyle().Foreground(lipgloss.Color(p.Muted)),
		Work:           lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.Work)),
		Break:          lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.Break)),
		Clock:          lipgloss.NewStyle().Bold(true).Foreground(fg).Padding(0, 2),
		Panel:          lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(p.Border)).Padding(0, 1),
		Dialog:         lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color(p.Work)).Padding(1, 2),
		Status:         lipgloss.NewStyle().Foreground(lipgloss.Color(p.Break)),
		Error:          lipgloss.NewStyle().Foreground(lipgloss.Color(p.Error)),
		Footer:         lipgloss.NewStyle().Foreground(lipgloss.Color(p.Muted)),
		Selected:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.Selected)),
		Button:         lipgloss.NewStyle().Foreground(fg).Border(lipgloss.NormalBorder(), false, false, true, false).BorderForeground(lipgloss.Color(p.Border)),
		ButtonDisabled: lipgloss.NewStyle().Foreground(lipgloss.Color(p.Muted)).Faint(true),
	}
}
