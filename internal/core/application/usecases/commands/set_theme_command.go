package commands

import (
	"errors"

	"faithcafe/internal/pkg/errs"
	"faithcafe/internal/pkg/guard"
)

var ErrSetThemeCommandIsNotConstructed = errors.New(
	"SetThemeCommand must be created via NewSetThemeCommand constructor",
)

var validThemes = map[string]struct{}{
	"light": {},
	"dark":  {},
}

// SetThemeCommand stores the storefront theme preference.
type SetThemeCommand struct { //nolint:recvcheck //using for validation
	theme string

	guard guard.ConstructorGuard
}

// NewSetThemeCommand creates a theme command. Only "light" and "dark" are
// recognized.
func NewSetThemeCommand(theme string) (SetThemeCommand, error) {
	cmd := SetThemeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setTheme(theme); err != nil {
		return SetThemeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetThemeCommand) Validate() error {
	return c.guard.Validate(ErrSetThemeCommandIsNotConstructed)
}

// Theme returns the requested theme.
func (c SetThemeCommand) Theme() string {
	return c.theme
}

func (c *SetThemeCommand) setTheme(theme string) error {
	if theme == "" {
		return errs.NewValueIsRequiredError("theme")
	}
	if _, ok := validThemes[theme]; !ok {
		return errs.NewValueIsInvalidError("theme")
	}
	c.theme = theme
	return nil
}
