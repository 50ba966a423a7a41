// Package services holds stateless domain services that work across
// aggregates.
package services

import (
	"faithcafe/internal/core/domain/model/cart"
	"faithcafe/internal/core/domain/model/kernel"
	"faithcafe/internal/core/domain/model/order"
)

// cashShippingFee is the flat delivery fee charged for cash on delivery.
// Card payments ship free.
const cashShippingFee = 30

// Quote is the priced breakdown of a checkout.
type Quote struct {
	Subtotal    kernel.Money
	ShippingFee kernel.Money
	Total       kernel.Money
}

// PricingService computes checkout totals from cart line snapshots and the
// chosen payment method.
type PricingService interface {
	Price(items []cart.Line, payment order.PaymentMethod) (Quote, error)
}

type pricingService struct{}

// NewPricingService creates the checkout pricing service.
func NewPricingService() PricingService {
	return &pricingService{}
}

// Price sums the line totals and applies the shipping fee for the payment
// method. Totals are kept unrounded; rounding happens only at display edges.
func (s *pricingService) Price(items []cart.Line, payment order.PaymentMethod) (Quote, error) {
	if err := payment.Validate(); err != nil {
		return Quote{}, err
	}

	subtotal := kernel.Money{}
	for _, line := range items {
		if err := line.Validate(); err != nil {
			return Quote{}, err
		}
		subtotal = subtotal.Add(line.Total())
	}

	fee := kernel.Money{}
	if payment == order.PaymentCash {
		var err error
		fee, err = kernel.NewMoney(cashShippingFee)
		if err != nil {
			return Quote{}, err
		}
	}

	return Quote{
		Subtotal:    subtotal,
		ShippingFee: fee,
		Total:       subtotal.Add(fee),
	}, nil
}
