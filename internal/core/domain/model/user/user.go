// Package user holds the account entity and its role enumeration.
//
// Accounts are looked up by username; usernames and emails are unique across
// the collection, which the repositories enforce at registration time.
// Credentials are stored and compared in plaintext; the storefront treats
// authentication as a navigation concern only.
package user

import (
	"errors"
	"fmt"
	"strings"

	"faithcafe/internal/pkg/errs"
	"faithcafe/internal/pkg/guard"
)

// ErrUserIsNotConstructed is returned when a User was not created through
// NewUser or RestoreUser.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

// User is a registered account. The username is the entity key.
type User struct {
	username      string
	password      string
	email         string
	role          Role
	address       string
	contactNumber string

	guard guard.ConstructorGuard
}

// NewUser creates an account with validation. Registration always produces
// customers; staff and admin accounts come from the seed fixture.
func NewUser(username, password, email, address, contactNumber string) (*User, error) {
	return RestoreUser(username, password, email, RoleCustomer, address, contactNumber)
}

// RestoreUser reconstructs an account from persistence, including its role.
func RestoreUser(username, password, email string, role Role, address, contactNumber string) (*User, error) {
	u := &User{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setUsername(username),
		u.setPassword(password),
		u.setEmail(email),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	u.address = address
	u.contactNumber = contactNumber
	return u, nil
}

// Validate ensures the User was created through a constructor.
func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

// Username returns the unique account name.
func (u *User) Username() string {
	return u.username
}

// Email returns the unique account email.
func (u *User) Email() string {
	return u.email
}

// Role returns the account role.
func (u *User) Role() Role {
	return u.role
}

// Address returns the default delivery address.
func (u *User) Address() string {
	return u.address
}

// ContactNumber returns the default contact number.
func (u *User) ContactNumber() string {
	return u.contactNumber
}

// Password returns the stored plaintext password. Only the persistence
// adapters and the login check read it.
func (u *User) Password() string {
	return u.password
}

// CheckPassword compares the candidate against the stored credential.
func (u *User) CheckPassword(candidate string) bool {
	return u.password == candidate
}

// Session is the account record persisted under the currentUser key:
// the full user minus the password.
type Session struct {
	Username      string `json:"username"`
	Email         string `json:"email"`
	Role          string `json:"role"`
	Address       string `json:"address,omitempty"`
	ContactNumber string `json:"contactNumber,omitempty"`
}

// Session strips the credential for persistence alongside browsing state.
func (u *User) Session() Session {
	return Session{
		Username:      u.username,
		Email:         u.email,
		Role:          u.role.String(),
		Address:       u.address,
		ContactNumber: u.contactNumber,
	}
}

func (u *User) setUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return errs.NewValueIsRequiredError("username")
	}
	u.username = username
	return nil
}

func (u *User) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	u.password = password
	return nil
}

func (u *User) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidErrorWithCause("email",
			fmt.Errorf("%q is not an email address", email))
	}
	u.email = email
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
