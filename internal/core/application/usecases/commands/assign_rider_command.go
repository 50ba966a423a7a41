package commands

import (
	"errors"

	"faithcafe/internal/core/domain/model/kernel"
	"faithcafe/internal/pkg/errs"
	"faithcafe/internal/pkg/guard"
)

var ErrAssignRiderCommandIsNotConstructed = errors.New(
	"AssignRiderCommand must be created via NewAssignRiderCommand constructor",
)

// AssignRiderCommand puts a named rider on an order. The rider must be
// available and the order must not already carry one.
type AssignRiderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.OrderID
	riderName string

	guard guard.ConstructorGuard
}

// NewAssignRiderCommand creates an assignment command.
func NewAssignRiderCommand(orderID kernel.OrderID, riderName string) (AssignRiderCommand, error) {
	cmd := AssignRiderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setRiderName(riderName),
	); err != nil {
		return AssignRiderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignRiderCommand) Validate() error {
	return c.guard.Validate(ErrAssignRiderCommandIsNotConstructed)
}

// OrderID returns the order to assign to.
func (c AssignRiderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// RiderName returns the rider being assigned.
func (c AssignRiderCommand) RiderName() string {
	return c.riderName
}

func (c *AssignRiderCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AssignRiderCommand) setRiderName(riderName string) error {
	if riderName == "" {
		return errs.NewValueIsRequiredError("riderName")
	}
	c.riderName = riderName
	return nil
}
