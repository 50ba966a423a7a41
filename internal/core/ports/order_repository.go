package ports

import (
	"context"

	"faithcafe/internal/core/domain/model/kernel"
	"faithcafe/internal/core/domain/model/order"
)

// OrderRepository is the persistence contract for order aggregates. Orders
// are append-mostly: they are created at checkout, updated as their status
// moves, and never deleted.
type OrderRepository interface {
	// Add persists a newly placed order.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status and rider changes to an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its identifier.
	Get(ctx context.Context, id kernel.OrderID) (*order.Order, error)

	// GetAll retrieves every order, active and completed.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetByCustomer retrieves all orders placed by the given username.
	GetByCustomer(ctx context.Context, username string) ([]*order.Order, error)
}
