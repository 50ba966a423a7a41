// Package commands contains the write operations of the storefront. Each
// command is a guard-validated value created through its constructor, and
// each handler runs inside a unit of work so a failed step leaves the store
// untouched.
package commands

import (
	"context"

	"faithcafe/internal/core/ports"
)

// Unit of Work interfaces segregate transaction management per handler.
// Every handler declares the narrowest combination of repositories it needs.
type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// UserRepoFactory provides the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// MenuRepoFactory provides the menu repository within a transaction.
	MenuRepoFactory interface {
		MenuRepository() ports.MenuRepository
	}

	// OrderRepoFactory provides the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CartRepoFactory provides the cart repository within a transaction.
	CartRepoFactory interface {
		CartRepository() ports.CartRepository
	}

	// SessionRepoFactory provides the session repository within a
	// transaction.
	SessionRepoFactory interface {
		SessionRepository() ports.SessionRepository
	}

	// UserUoW serves account commands. Registration and deletion touch the
	// session as well, so the session repository rides along.
	UserUoW interface {
		TxManager
		UserRepoFactory
		SessionRepoFactory
	}

	// UserUoWFactory creates user unit of work instances.
	UserUoWFactory interface {
		Create() UserUoW
	}

	// MenuUoW serves catalog commands.
	MenuUoW interface {
		TxManager
		MenuRepoFactory
	}

	// MenuUoWFactory creates menu unit of work instances.
	MenuUoWFactory interface {
		Create() MenuUoW
	}

	// CartUoW serves cart mutations. Adding a line snapshots the price from
	// the catalog, so the menu repository rides along.
	CartUoW interface {
		TxManager
		CartRepoFactory
		MenuRepoFactory
	}

	// CartUoWFactory creates cart unit of work instances.
	CartUoWFactory interface {
		Create() CartUoW
	}

	// SessionUoW serves commands that only touch session state.
	SessionUoW interface {
		TxManager
		SessionRepoFactory
	}

	// SessionUoWFactory creates session unit of work instances.
	SessionUoWFactory interface {
		Create() SessionUoW
	}

	// OrderUoW serves order lifecycle commands.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CheckoutUoW serves checkout: it turns selected cart lines into an
	// order and clears the staged selection in one transaction.
	CheckoutUoW interface {
		TxManager
		CartRepoFactory
		OrderRepoFactory
		SessionRepoFactory
	}

	// CheckoutUoWFactory creates checkout unit of work instances.
	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}
)
