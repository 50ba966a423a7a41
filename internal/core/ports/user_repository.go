// Package ports defines the persistence contracts between the application
// core and the storage adapters. Both the key-value store and the Postgres
// adapter implement these interfaces.
package ports

import (
	"context"

	"faithcafe/internal/core/domain/model/user"
)

// UserRepository is the persistence contract for user aggregates. Users are
// keyed by username.
type UserRepository interface {
	// Add persists a new user. Fails if the username is already taken.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists changes to an existing user.
	Update(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user by username. Returns errs.ErrObjectNotFound if
	// no such user exists.
	Get(ctx context.Context, username string) (*user.User, error)

	// Delete removes the user account. The user's orders are left in place
	// as history.
	Delete(ctx context.Context, username string) error

	// GetAll retrieves every registered user.
	GetAll(ctx context.Context) ([]*user.User, error)
}
