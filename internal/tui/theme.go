package tui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Palette of the default theme.
var (
	accentPrimary = lipgloss.AdaptiveColor{Light: "#02838C", Dark: "#02A9B5"}
	accentBright  = lipgloss.AdaptiveColor{Light: "#026B73", Dark: "#3CD3DE"}
	textNormal    = lipgloss.AdaptiveColor{Light: "#1F2933", Dark: "#E4E7EB"}
	textMuted     = lipgloss.AdaptiveColor{Light: "#616E7C", Dark: "#9AA5B1"}
)

// currentTheme holds the theme used by prompts. Nil means the default theme.
var currentTheme *huh.Theme

// SetTheme sets the current theme by name.
// Empty or unknown names select the default theme.
func SetTheme(name string) {
	currentTheme = GetTheme(name)
}

// currentThemeOrDefault returns the theme prompts should use.
func currentThemeOrDefault() *huh.Theme {
	if currentTheme == nil {
		return defaultTheme()
	}
	return currentTheme
}

// resetTheme resets the current theme to the default.
func resetTheme() {
	currentTheme = nil
}

func defaultTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Base = t.Focused.Base.BorderForeground(accentPrimary)
	t.Focused.Title = t.Focused.Title.Foreground(accentPrimary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(textMuted)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(accentBright)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(accentBright)
	t.Focused.UnselectedOption = t.Focused.UnselectedOption.Foreground(textNormal)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())
	return t
}
