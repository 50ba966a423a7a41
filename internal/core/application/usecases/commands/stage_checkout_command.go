package commands

import (
	"errors"

	"faithcafe/internal/pkg/errs"
	"faithcafe/internal/pkg/guard"
)

var ErrStageCheckoutCommandIsNotConstructed = errors.New(
	"StageCheckoutCommand must be created via NewStageCheckoutCommand constructor",
)

// StageCheckoutCommand records which cart lines the customer ticked for
// checkout. The staged selection survives until an order is placed or the
// selection is replaced.
type StageCheckoutCommand struct { //nolint:recvcheck //using for validation
	itemNames []string

	guard guard.ConstructorGuard
}

// NewStageCheckoutCommand creates a staging command. At least one line must
// be selected.
func NewStageCheckoutCommand(itemNames []string) (StageCheckoutCommand, error) {
	cmd := StageCheckoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setItemNames(itemNames); err != nil {
		return StageCheckoutCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StageCheckoutCommand) Validate() error {
	return c.guard.Validate(ErrStageCheckoutCommandIsNotConstructed)
}

// ItemNames returns the selected cart line names.
func (c StageCheckoutCommand) ItemNames() []string {
	names := make([]string, len(c.itemNames))
	copy(names, c.itemNames)
	return names
}

func (c *StageCheckoutCommand) setItemNames(itemNames []string) error {
	if len(itemNames) == 0 {
		return errs.NewValueIsRequiredError("itemNames")
	}
	c.itemNames = make([]string, len(itemNames))
	copy(c.itemNames, itemNames)
	return nil
}
