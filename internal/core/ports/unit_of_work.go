package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per request or command so
// concurrent operations stay isolated.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Repositories obtained from
// it are bound to the transaction started by Begin; changes become visible
// to other units only after Commit. The key-value adapter implements this
// with whole-snapshot write-back, the Postgres adapter with a database
// transaction.
type UnitOfWork interface {
	// Begin starts the transaction.
	Begin(ctx context.Context) error

	// Commit writes all tracked changes. Last committer wins on conflict.
	Commit(ctx context.Context) error

	// Rollback discards uncommitted changes. Safe to call after Commit.
	Rollback(ctx context.Context) error

	// UserRepository returns a UserRepository bound to this transaction.
	UserRepository() UserRepository

	// MenuRepository returns a MenuRepository bound to this transaction.
	MenuRepository() MenuRepository

	// OrderRepository returns an OrderRepository bound to this transaction.
	OrderRepository() OrderRepository

	// CartRepository returns a CartRepository bound to this transaction.
	CartRepository() CartRepository

	// SessionRepository returns a SessionRepository bound to this
	// transaction.
	SessionRepository() SessionRepository
}
