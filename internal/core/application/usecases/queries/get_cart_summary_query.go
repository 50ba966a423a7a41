package queries

import (
	"errors"

	"faithcafe/internal/pkg/guard"
)

var ErrGetCartSummaryQueryIsNotConstructed = errors.New(
	"GetCartSummaryQuery must be created via NewGetCartSummaryQuery constructor",
)

// GetCartSummaryQuery retrieves the cart contents, the badge count and the
// staged checkout selection.
type GetCartSummaryQuery struct {
	guard guard.ConstructorGuard
}

// NewGetCartSummaryQuery creates a parameterless cart query.
func NewGetCartSummaryQuery() GetCartSummaryQuery {
	return GetCartSummaryQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetCartSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetCartSummaryQueryIsNotConstructed)
}

// CartLineView is one cart line in the read model.
type CartLineView struct {
	Name     string
	Price    float64
	Quantity int
	Total    float64

	// Selected reports whether the line is staged for checkout.
	Selected bool
}

// CartSummaryView is the cart read model: lines, the badge count and the
// subtotal over all lines.
type CartSummaryView struct {
	Lines     []CartLineView
	ItemCount int
	Subtotal  float64
}
