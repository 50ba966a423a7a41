package queries

import (
	"errors"

	"faithcafe/internal/pkg/guard"
)

var ErrGetUsersQueryIsNotConstructed = errors.New(
	"GetUsersQuery must be created via NewGetUsersQuery constructor",
)

// GetUsersQuery retrieves every registered account for the admin panel.
type GetUsersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUsersQuery creates an account listing query.
func NewGetUsersQuery() GetUsersQuery {
	return GetUsersQuery{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetUsersQuery) Validate() error {
	return q.guard.Validate(ErrGetUsersQueryIsNotConstructed)
}

// UserView is the account read model. Passwords never leave the core.
type UserView struct {
	Username      string
	Email         string
	Role          string
	Address       string
	ContactNumber string
}
