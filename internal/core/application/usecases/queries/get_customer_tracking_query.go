package queries

import (
	"errors"

	"faithcafe/internal/pkg/errs"
	"faithcafe/internal/pkg/guard"
)

var ErrGetCustomerTrackingQueryIsNotConstructed = errors.New(
	"GetCustomerTrackingQuery must be created via NewGetCustomerTrackingQuery constructor",
)

// GetCustomerTrackingQuery retrieves the tracking page for one customer:
// the order currently tracked plus the order history.
type GetCustomerTrackingQuery struct { //nolint:recvcheck //using for validation
	customer string

	guard guard.ConstructorGuard
}

// NewGetCustomerTrackingQuery creates a tracking query for the given
// customer username.
func NewGetCustomerTrackingQuery(customer string) (GetCustomerTrackingQuery, error) {
	q := GetCustomerTrackingQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setCustomer(customer); err != nil {
		return GetCustomerTrackingQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerTrackingQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerTrackingQueryIsNotConstructed)
}

// Customer returns the customer username.
func (q GetCustomerTrackingQuery) Customer() string {
	return q.customer
}

func (q *GetCustomerTrackingQuery) setCustomer(customer string) error {
	if customer == "" {
		return errs.NewValueIsRequiredError("customer")
	}
	q.customer = customer
	return nil
}

// TrackingView is the tracking page read model. Tracked is the most recent
// active order, or the most recent order overall when none is active; it is
// nil when the customer has no orders at all. History holds the remaining
// orders, newest first.
type TrackingView struct {
	Tracked *OrderView
	History []OrderView
}
