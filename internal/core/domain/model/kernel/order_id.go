package kernel

import (
	"fmt"
	"strings"
	"time"

	"faithcafe/internal/pkg/errs"

	"github.com/google/uuid"
)

// orderIDPrefix is carried by every order identifier. It matches the ticket
// numbers printed on customer receipts.
const orderIDPrefix = "FC"

// ErrOrderIDIsNotConstructed indicates a zero-value OrderID that was not
// created through NewOrderID or OrderIDFromString.
var ErrOrderIDIsNotConstructed = errs.NewValueIsRequiredError(
	"OrderID must be created via NewOrderID or OrderIDFromString",
)

// OrderID is the value object identifying an order.
//
// The string form is "FC<6 time-derived digits>-<8 hex digits>". The time
// component keeps identifiers readable and roughly ordered for staff; the
// random suffix makes collisions across sessions a non-issue, which the
// bare time-derived scheme could not guarantee.
//
// The zero value is invalid and fails Validate.
type OrderID struct {
	value string
}

// NewOrderID generates an identifier for an order placed at the given time.
func NewOrderID(now time.Time) OrderID {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return OrderID{
		value: fmt.Sprintf("%s%06d-%s", orderIDPrefix, now.UnixMilli()%1000000, suffix),
	}
}

// OrderIDFromString reconstructs an OrderID from its persisted string form.
// Returns an error for an empty string or a missing prefix.
func OrderIDFromString(s string) (OrderID, error) {
	if s == "" {
		return OrderID{}, errs.NewValueIsRequiredError("orderId")
	}
	if !strings.HasPrefix(s, orderIDPrefix) {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause("orderId",
			fmt.Errorf("%q does not start with %q", s, orderIDPrefix))
	}
	return OrderID{value: s}, nil
}

// Validate reports whether the OrderID was properly constructed.
func (id OrderID) Validate() error {
	if id.value == "" {
		return ErrOrderIDIsNotConstructed
	}
	return nil
}

// String returns the identifier in its persisted form.
func (id OrderID) String() string {
	return id.value
}

// IsEqual compares two identifiers by value.
func (id OrderID) IsEqual(other OrderID) bool {
	return id.value == other.value
}
