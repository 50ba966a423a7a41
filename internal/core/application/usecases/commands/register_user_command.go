package commands

import (
	"errors"

	"faithcafe/internal/pkg/errs"
	"faithcafe/internal/pkg/guard"
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

// RegisterUserCommand represents a request to create a customer account.
// New registrations always get the customer role; staff and admin accounts
// are provisioned through fixtures.
//
// Example:
//
//	cmd, err := NewRegisterUserCommand("maria", "secret", "maria@faithcafe.ph",
//	    "12 Mabini St", "+63 912 000 1111")
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	username      string
	password      string
	email         string
	address       string
	contactNumber string

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a registration command. Username, password
// and email are required; address and contact number are optional and can be
// filled in later at checkout.
func NewRegisterUserCommand(username, password, email, address, contactNumber string) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUsername(username),
		cmd.setPassword(password),
		cmd.setEmail(email),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	cmd.address = address
	cmd.contactNumber = contactNumber
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// Username returns the requested username.
func (c RegisterUserCommand) Username() string {
	return c.username
}

// Password returns the chosen password.
func (c RegisterUserCommand) Password() string {
	return c.password
}

// Email returns the account email.
func (c RegisterUserCommand) Email() string {
	return c.email
}

// Address returns the optional delivery address.
func (c RegisterUserCommand) Address() string {
	return c.address
}

// ContactNumber returns the optional contact number.
func (c RegisterUserCommand) ContactNumber() string {
	return c.contactNumber
}

func (c *RegisterUserCommand) setUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	c.username = username
	return nil
}

func (c *RegisterUserCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	c.password = password
	return nil
}

func (c *RegisterUserCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}
