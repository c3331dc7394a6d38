package model

import (
	"fmt"
	"strings"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func (t Theme) IsValid() bool {
	switch t {
	case ThemeLight, ThemeDark:
		return true
	default:
		return false
	}
}

func (t Theme) Invert() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

func (t Theme) Icon() string {
	if t == ThemeDark {
		return "☾"
	}
	return "☼"
}

func ParseTheme(raw string) (Theme, bool) {
	t := Theme(strings.ToLower(strings.TrimSpace(raw)))
	return t, t.IsValid()
}

// SwitchLabel describes the action of moving away from t.
func (t Theme) SwitchLabel() string {
	return fmt.Sprintf("Use %s-mode", t.Invert())
}
