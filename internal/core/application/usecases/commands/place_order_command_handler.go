package commands

import (
	"context"
	"errors"
	"time"

	"faithcafe/internal/core/domain/model/kernel"
	"faithcafe/internal/core/domain/model/order"
	"faithcafe/internal/core/domain/services"
	"faithcafe/internal/pkg/errs"
)

var (
	// ErrNotLoggedIn is returned when checkout is attempted without a
	// logged-in session.
	ErrNotLoggedIn = errors.New("no user is logged in")

	// ErrCartIsEmpty is returned when checkout finds nothing to order.
	ErrCartIsEmpty = errors.New("cart is empty")
)

// PlaceOrderCommandHandler runs checkout: it prices the staged selection,
// creates the order, removes the ordered lines from the cart and clears the
// staged selection, all in one transaction.
//
// When no selection was staged the whole cart is ordered. Lines that were
// not part of the order stay in the cart untouched.
type PlaceOrderCommandHandler struct {
	uowFactory CheckoutUoWFactory
	pricing    services.PricingService
}

// NewPlaceOrderCommandHandler creates a handler for checkout operations.
func NewPlaceOrderCommandHandler(uowFactory CheckoutUoWFactory, pricing services.PricingService) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		pricing:    pricing,
	}
}

// Handle processes the checkout command and returns the new order's ID.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (kernel.OrderID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.OrderID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.OrderID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	sessionRepo := uow.SessionRepository()

	session, err := sessionRepo.CurrentUser(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return kernel.OrderID{}, ErrNotLoggedIn
	}
	if err != nil {
		return kernel.OrderID{}, err
	}

	cartRepo := uow.CartRepository()
	basket, err := cartRepo.Get(ctx)
	if err != nil {
		return kernel.OrderID{}, err
	}

	selection, err := sessionRepo.CheckoutSelection(ctx)
	if err != nil {
		return kernel.OrderID{}, err
	}

	lines := basket.Lines()
	if len(selection) > 0 {
		if lines, err = basket.Select(selection); err != nil {
			return kernel.OrderID{}, err
		}
	}
	if len(lines) == 0 {
		return kernel.OrderID{}, ErrCartIsEmpty
	}

	quote, err := h.pricing.Price(lines, cmd.PaymentMethod())
	if err != nil {
		return kernel.OrderID{}, err
	}

	address := cmd.DeliveryAddress()
	if address == "" {
		address = session.Address
	}
	contact := cmd.ContactNumber()
	if contact == "" {
		contact = session.ContactNumber
	}

	now := time.Now()
	placed, err := order.NewOrder(
		kernel.NewOrderID(now),
		session.Username,
		lines,
		quote.Subtotal, quote.ShippingFee, quote.Total,
		address, contact,
		cmd.PaymentMethod(),
		now,
	)
	if err != nil {
		return kernel.OrderID{}, err
	}

	if err = uow.OrderRepository().Add(ctx, placed); err != nil {
		return kernel.OrderID{}, err
	}

	basket.RemovePlaced(lines)
	if err = cartRepo.Save(ctx, basket); err != nil {
		return kernel.OrderID{}, err
	}

	if err = sessionRepo.ClearCheckoutSelection(ctx); err != nil {
		return kernel.OrderID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.OrderID{}, err
	}

	return placed.ID(), nil
}
