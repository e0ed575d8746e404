package tui

import (
	"errors"

	"github.com/charmbracelet/huh"
)

// ErrNoChoices is returned when a selection prompt has nothing to offer.
var ErrNoChoices = errors.New("nothing to select")

// runFormFn runs a form; replaced in tests.
var runFormFn = func(form *huh.Form) error {
	return form.Run()
}

// SelectKey asks the user to pick one version key.
func SelectKey(title string, keys []string) (string, error) {
	if len(keys) == 0 {
		return "", ErrNoChoices
	}

	selected := keys[0]
	field := huh.NewSelect[string]().
		Title(title).
		Options(huh.NewOptions(keys...)...).
		Value(&selected)

	form := huh.NewForm(huh.NewGroup(field)).WithTheme(currentThemeOrDefault())
	if err := runFormFn(form); err != nil {
		return "", err
	}
	return selected, nil
}
