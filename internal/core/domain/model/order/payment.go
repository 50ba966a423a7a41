package order

import (
	"fmt"

	"faithcafe/internal/pkg/errs"
)

// PaymentMethod is how the customer settles the order. Cash on delivery
// carries the flat shipping fee; card payments ship free.
type PaymentMethod int

const (
	// PaymentUnknown represents an invalid or undefined payment method.
	PaymentUnknown PaymentMethod = iota

	// PaymentCash is cash on delivery.
	PaymentCash

	// PaymentCard is card payment at checkout.
	PaymentCard
)

func getValidPaymentStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		PaymentCash: "cash",
		PaymentCard: "card",
	}
}

// PaymentMethodFromString parses the persisted payment method name.
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	if s == "" {
		return PaymentUnknown, errs.NewValueIsRequiredError("paymentMethod")
	}
	for method, name := range getValidPaymentStrings() {
		if name == s {
			return method, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause("paymentMethod",
		fmt.Errorf("%q is not a valid payment method", s))
}

// Validate checks that the PaymentMethod is one of the defined values.
func (p PaymentMethod) Validate() error {
	if _, ok := getValidPaymentStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("paymentMethod",
			fmt.Errorf("%d is not a valid payment method", p))
	}
	return nil
}

// String returns the persisted name of the payment method.
func (p PaymentMethod) String() string {
	if s, ok := getValidPaymentStrings()[p]; ok {
		return s
	}
	return "unknown"
}
