package order

import (
	"errors"
	"sort"
	"time"

	"faithcafe/internal/core/domain/model/cart"
	"faithcafe/internal/core/domain/model/kernel"
	"faithcafe/internal/pkg/errs"
	"faithcafe/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created
	// through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrRiderRequired is returned when an order is moved to ready without
	// an assigned rider. The status stays unchanged.
	ErrRiderRequired = errors.New("rider required")

	// ErrRiderAlreadyAssigned is returned when assigning a rider to an
	// order that already has one.
	ErrRiderAlreadyAssigned = errors.New("rider already assigned")
)

// RiderSnapshot is the rider contact embedded into an order at assignment
// time. It is a copy, not a live reference: later edits to the rider pool
// never propagate into placed orders.
type RiderSnapshot struct {
	name    string
	contact string
}

// NewRiderSnapshot captures a rider's name and contact for embedding.
func NewRiderSnapshot(name, contact string) (RiderSnapshot, error) {
	if name == "" {
		return RiderSnapshot{}, errs.NewValueIsRequiredError("riderName")
	}
	return RiderSnapshot{name: name, contact: contact}, nil
}

// Name returns the rider's name at assignment time.
func (r RiderSnapshot) Name() string {
	return r.name
}

// Contact returns the rider's contact at assignment time.
func (r RiderSnapshot) Contact() string {
	return r.contact
}

// Order is the aggregate root for a placed order. It owns the line-item
// snapshots, the computed totals, the lifecycle status with its per-status
// timestamps, and the optional rider snapshot. Orders are created at
// checkout and never deleted; cancelled orders remain as history.
type Order struct {
	id              kernel.OrderID
	customer        string
	items           []cart.Line
	subtotal        kernel.Money
	shippingFee     kernel.Money
	total           kernel.Money
	status          Status
	orderTime       time.Time
	statusTimes     map[Status]time.Time
	deliveryAddress string
	contactNumber   string
	payment         PaymentMethod
	rider           *RiderSnapshot

	guard guard.ConstructorGuard
}

// NewOrder creates an order in placed status, stamping both the order time
// and the placed timestamp with now.
func NewOrder(
	id kernel.OrderID,
	customer string,
	items []cart.Line,
	subtotal, shippingFee, total kernel.Money,
	deliveryAddress, contactNumber string,
	payment PaymentMethod,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:      StatusPlaced,
		orderTime:   now,
		statusTimes: map[Status]time.Time{StatusPlaced: now},
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(customer),
		o.setItems(items),
		o.setPayment(payment),
	); err != nil {
		return nil, err
	}

	o.subtotal = subtotal
	o.shippingFee = shippingFee
	o.total = total
	o.deliveryAddress = deliveryAddress
	o.contactNumber = contactNumber
	return o, nil
}

// RestoreOrder reconstructs an order from persistence with its full state:
// status, per-status timestamps and the optional rider snapshot.
func RestoreOrder(
	id kernel.OrderID,
	customer string,
	items []cart.Line,
	subtotal, shippingFee, total kernel.Money,
	status Status,
	orderTime time.Time,
	statusTimes map[Status]time.Time,
	deliveryAddress, contactNumber string,
	payment PaymentMethod,
	rider *RiderSnapshot,
) (*Order, error) {
	o, err := NewOrder(id, customer, items, subtotal, shippingFee, total,
		deliveryAddress, contactNumber, payment, orderTime)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	o.status = status

	o.statusTimes = make(map[Status]time.Time, len(statusTimes))
	for s, ts := range statusTimes {
		o.statusTimes[s] = ts
	}
	o.rider = rider
	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// ID returns the order identifier.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// Customer returns the username that placed the order (a weak reference).
func (o *Order) Customer() string {
	return o.customer
}

// Items returns a copy of the line-item snapshots.
func (o *Order) Items() []cart.Line {
	items := make([]cart.Line, len(o.items))
	copy(items, o.items)
	return items
}

// Subtotal returns the sum of line totals at checkout time.
func (o *Order) Subtotal() kernel.Money {
	return o.subtotal
}

// ShippingFee returns the fee applied at checkout.
func (o *Order) ShippingFee() kernel.Money {
	return o.shippingFee
}

// Total returns subtotal plus shipping fee.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// OrderTime returns when the order was placed.
func (o *Order) OrderTime() time.Time {
	return o.orderTime
}

// StatusTime returns the timestamp stamped when the order entered the given
// status, and whether it was ever stamped.
func (o *Order) StatusTime(s Status) (time.Time, bool) {
	ts, ok := o.statusTimes[s]
	return ts, ok
}

// StatusTimes returns a copy of all stamped transition timestamps.
func (o *Order) StatusTimes() map[Status]time.Time {
	times := make(map[Status]time.Time, len(o.statusTimes))
	for s, ts := range o.statusTimes {
		times[s] = ts
	}
	return times
}

// DeliveryAddress returns the address captured at checkout.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// ContactNumber returns the contact captured at checkout.
func (o *Order) ContactNumber() string {
	return o.contactNumber
}

// PaymentMethod returns how the order is paid.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.payment
}

// Rider returns the embedded rider snapshot, or nil if none is assigned.
func (o *Order) Rider() *RiderSnapshot {
	return o.rider
}

// IsActive reports whether the order is still in flight.
func (o *Order) IsActive() bool {
	return !o.status.IsTerminal()
}

// ChangeStatus applies a lifecycle transition and stamps its timestamp.
//
// Moving to ready requires an assigned rider; the transition fails with
// ErrRiderRequired and the status is left unchanged. The caller is
// responsible for releasing the rider back to the pool when the order
// reaches a terminal state; the snapshot itself stays on the order as
// history.
func (o *Order) ChangeStatus(newStatus Status, now time.Time) error {
	if err := o.status.CanTransitionTo(newStatus); err != nil {
		return err
	}

	if newStatus == StatusReady && o.rider == nil {
		return ErrRiderRequired
	}

	o.status = newStatus
	o.statusTimes[newStatus] = now
	return nil
}

// AssignRider embeds the rider snapshot onto the order. Terminal orders and
// orders that already carry a rider reject the assignment.
func (o *Order) AssignRider(snapshot RiderSnapshot) error {
	if o.status.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause("status",
			errors.New("cannot assign a rider to a completed order"))
	}
	if o.rider != nil {
		return ErrRiderAlreadyAssigned
	}

	o.rider = &snapshot
	return nil
}

// SortForBoard orders the staff board in place: active orders before
// completed ones, most recent order time first within each group.
func SortForBoard(orders []*Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		if orders[i].IsActive() != orders[j].IsActive() {
			return orders[i].IsActive()
		}
		return orders[i].orderTime.After(orders[j].orderTime)
	})
}

func (o *Order) setID(id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomer(customer string) error {
	if customer == "" {
		return errs.NewValueIsRequiredError("customer")
	}
	o.customer = customer
	return nil
}

func (o *Order) setItems(items []cart.Line) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, line := range items {
		if err := line.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]cart.Line, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setPayment(payment PaymentMethod) error {
	if err := payment.Validate(); err != nil {
		return err
	}
	o.payment = payment
	return nil
}
