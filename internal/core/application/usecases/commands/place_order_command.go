package commands

import (
	"errors"

	"faithcafe/internal/core/domain/model/order"
	"faithcafe/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand turns the staged cart selection into an order.
//
// Delivery address and contact number may be left empty, in which case the
// values from the logged-in profile are used. The payment method decides the
// shipping fee: cash on delivery pays the flat fee, card ships free.
//
// Example:
//
//	payment, _ := order.PaymentMethodFromString("cash")
//	cmd, err := NewPlaceOrderCommand("12 Mabini St", "+63 912 000 1111", payment)
//	if err != nil {
//	    return err
//	}
//	orderID, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	deliveryAddress string
	contactNumber   string
	payment         order.PaymentMethod

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a checkout command.
func NewPlaceOrderCommand(deliveryAddress, contactNumber string, payment order.PaymentMethod) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setPayment(payment); err != nil {
		return PlaceOrderCommand{}, err
	}

	cmd.deliveryAddress = deliveryAddress
	cmd.contactNumber = contactNumber
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// DeliveryAddress returns the requested delivery address, possibly empty.
func (c PlaceOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// ContactNumber returns the requested contact number, possibly empty.
func (c PlaceOrderCommand) ContactNumber() string {
	return c.contactNumber
}

// PaymentMethod returns how the order will be paid.
func (c PlaceOrderCommand) PaymentMethod() order.PaymentMethod {
	return c.payment
}

func (c *PlaceOrderCommand) setPayment(payment order.PaymentMethod) error {
	if err := payment.Validate(); err != nil {
		return err
	}
	c.payment = payment
	return nil
}
