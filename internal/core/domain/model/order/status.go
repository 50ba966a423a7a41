package order

import (
	"fmt"

	"faithcafe/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	placed ──> preparing ──> ready ──> pickedup ──> delivered
//	   │           │           │           │
//	   └───────────┴───────────┴───────────┴──> cancelled
//
// Progression is single-step forward; cancelled is reachable from any
// non-terminal state. delivered and cancelled are terminal. The transition
// to ready additionally requires an assigned rider, which the Order
// aggregate enforces.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPlaced is the initial status stamped at checkout.
	StatusPlaced

	// StatusPreparing means the kitchen is working on the order.
	StatusPreparing

	// StatusReady means the order awaits pickup by its assigned rider.
	StatusReady

	// StatusPickedUp means the rider is on the way to the customer.
	StatusPickedUp

	// StatusDelivered is the successful terminal state.
	StatusDelivered

	// StatusCancelled is the abandoned terminal state. Cancelled orders
	// remain in the store as history.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "unknown",
		StatusPlaced:    "placed",
		StatusPreparing: "preparing",
		StatusReady:     "ready",
		StatusPickedUp:  "pickedup",
		StatusDelivered: "delivered",
		StatusCancelled: "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded
	return map[Status]string{
		StatusPlaced:    "placed",
		StatusPreparing: "preparing",
		StatusReady:     "ready",
		StatusPickedUp:  "pickedup",
		StatusDelivered: "delivered",
		StatusCancelled: "cancelled",
	}
}

// StatusFromString parses the persisted status name.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transitions are allowed.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransitionTo validates a transition without performing it.
//
// Allowed moves are the single forward step of the lifecycle and a jump to
// cancelled from any non-terminal state. Backward moves, skipped steps and
// transitions out of a terminal state are rejected.
func (s Status) CanTransitionTo(next Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := next.Validate(); err != nil {
		return err
	}

	if s.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is terminal and cannot transition to %s", s, next))
	}

	if next == StatusCancelled || next == s+1 {
		return nil
	}

	return errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("cannot transition from %s to %s", s, next))
}
