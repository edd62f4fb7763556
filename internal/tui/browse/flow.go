package browse

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	huh "github.com/charmbracelet/huh"
	"github.com/jakoblorz/go-envmodules/internal/tui"
	"github.com/jakoblorz/go-envmodules/internal/view"
)

// Run starts the browser full-screen and blocks until the user quits
func Run(v *view.SyncedView, opts ...Option) error {
	program := tea.NewProgram(NewModel(v, opts...), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("module browser failed: %w", err)
	}
	return nil
}

// PickModule asks the user to choose one module.
// It returns "" with a nil error when the user aborts.
func PickModule(title string, modules []string) (string, error) {
	if len(modules) == 0 {
		return "", fmt.Errorf("no modules available")
	}

	choice := ""

	keyMap := huh.NewDefaultKeyMap()
	keyMap.Select.Filter.SetEnabled(true)
	keyMap.Select.Submit.SetKeys("enter")
	keyMap.Select.Submit.SetHelp("enter", "select")

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Options(huh.NewOptions(modules...)...).
				Height(min(len(modules)+2, 15)).
				Value(&choice),
		).
			Title(title).
			Description("Type / to filter."),
	).
		WithTheme(tui.NewHuhTheme()).
		WithShowHelp(true).
		WithKeyMap(keyMap)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", nil
		}
		return "", err
	}

	return choice, nil
}

// ConfirmRestore asks before the default module set replaces the loaded one
func ConfirmRestore() (bool, error) {
	confirmed := false

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Restore Modules").
				Description("Replace the loaded modules with the default set?").
				Affirmative("Restore").
				Negative("Cancel").
				Value(&confirmed),
		),
	).
		WithTheme(tui.NewHuhTheme())

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}

	return confirmed, nil
}
