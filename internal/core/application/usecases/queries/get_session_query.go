package queries

import (
	"errors"

	"faithcafe/internal/core/domain/model/user"
	"faithcafe/internal/pkg/guard"
)

var ErrGetSessionQueryIsNotConstructed = errors.New(
	"GetSessionQuery must be created via NewGetSessionQuery constructor",
)

// GetSessionQuery retrieves the logged-in user and the theme preference.
type GetSessionQuery struct {
	guard guard.ConstructorGuard
}

// NewGetSessionQuery creates a parameterless session query.
func NewGetSessionQuery() GetSessionQuery {
	return GetSessionQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetSessionQuery) Validate() error {
	return q.guard.Validate(ErrGetSessionQueryIsNotConstructed)
}

// SessionView is the session read model. CurrentUser is nil when nobody is
// logged in; Theme is empty when no preference was saved.
type SessionView struct {
	CurrentUser *user.Session
	Theme       string
}
