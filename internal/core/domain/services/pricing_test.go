package services_test

import (
	"testing"

	"faithcafe/internal/core/domain/model/cart"
	"faithcafe/internal/core/domain/model/kernel"
	"faithcafe/internal/core/domain/model/order"
	"faithcafe/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lines(t *testing.T) []cart.Line {
	t.Helper()

	latte, err := kernel.NewMoney(120)
	require.NoError(t, err)
	muffin, err := kernel.NewMoney(10)
	require.NoError(t, err)

	l1, err := cart.NewLine("Latte", latte, 2)
	require.NoError(t, err)
	l2, err := cart.NewLine("Muffin", muffin, 1)
	require.NoError(t, err)
	return []cart.Line{l1, l2}
}

func TestPricingService_Price(t *testing.T) {
	svc := services.NewPricingService()

	t.Run("cash_adds_flat_shipping_fee", func(t *testing.T) {
		quote, err := svc.Price(lines(t), order.PaymentCash)

		require.NoError(t, err)
		assert.InDelta(t, 250, quote.Subtotal.Amount(), 1e-9)
		assert.InDelta(t, 30, quote.ShippingFee.Amount(), 1e-9)
		assert.InDelta(t, 280, quote.Total.Amount(), 1e-9)
	})

	t.Run("card_ships_free", func(t *testing.T) {
		quote, err := svc.Price(lines(t), order.PaymentCard)

		require.NoError(t, err)
		assert.InDelta(t, 250, quote.Subtotal.Amount(), 1e-9)
		assert.True(t, quote.ShippingFee.IsZero())
		assert.InDelta(t, 250, quote.Total.Amount(), 1e-9)
	})

	t.Run("empty_selection_prices_to_the_fee_alone", func(t *testing.T) {
		quote, err := svc.Price(nil, order.PaymentCash)

		require.NoError(t, err)
		assert.True(t, quote.Subtotal.IsZero())
		assert.InDelta(t, 30, quote.Total.Amount(), 1e-9)
	})

	t.Run("rejects_unknown_payment_method", func(t *testing.T) {
		_, err := svc.Price(lines(t), order.PaymentUnknown)
		require.Error(t, err)
	})

	t.Run("rejects_unconstructed_lines", func(t *testing.T) {
		_, err := svc.Price([]cart.Line{{}}, order.PaymentCash)
		require.ErrorIs(t, err, cart.ErrLineIsNotConstructed)
	})
}
