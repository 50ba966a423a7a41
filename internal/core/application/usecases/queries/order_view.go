// Package queries contains the read operations of the storefront. Handlers
// read through the repository ports so the same read models work on top of
// the key-value store and Postgres alike.
package queries

import (
	"time"

	"faithcafe/internal/core/domain/model/order"
)

// OrderLineView is one line item in an order read model.
type OrderLineView struct {
	Name     string
	Price    float64
	Quantity int
	Total    float64
}

// RiderView is the rider contact shown on boards and tracking pages.
type RiderView struct {
	Name    string
	Contact string
}

// OrderView is the shared order read model. Money amounts are rounded to two
// decimals for display.
type OrderView struct {
	ID              string
	Customer        string
	Items           []OrderLineView
	Subtotal        float64
	ShippingFee     float64
	Total           float64
	Status          string
	OrderTime       time.Time
	StatusTimes     map[string]time.Time
	DeliveryAddress string
	ContactNumber   string
	PaymentMethod   string
	Rider           *RiderView
	ETA             string

	// NeedsRider flags active orders that cannot reach ready yet because
	// no rider is assigned.
	NeedsRider bool
}

func newOrderView(aggregate *order.Order) OrderView {
	items := make([]OrderLineView, 0, len(aggregate.Items()))
	for _, line := range aggregate.Items() {
		items = append(items, OrderLineView{
			Name:     line.Name(),
			Price:    line.Price().Round2(),
			Quantity: line.Quantity(),
			Total:    line.Total().Round2(),
		})
	}

	statusTimes := make(map[string]time.Time)
	for s, ts := range aggregate.StatusTimes() {
		statusTimes[s.String()] = ts
	}

	var riderView *RiderView
	if r := aggregate.Rider(); r != nil {
		riderView = &RiderView{Name: r.Name(), Contact: r.Contact()}
	}

	return OrderView{
		ID:              aggregate.ID().String(),
		Customer:        aggregate.Customer(),
		Items:           items,
		Subtotal:        aggregate.Subtotal().Round2(),
		ShippingFee:     aggregate.ShippingFee().Round2(),
		Total:           aggregate.Total().Round2(),
		Status:          aggregate.Status().String(),
		OrderTime:       aggregate.OrderTime(),
		StatusTimes:     statusTimes,
		DeliveryAddress: aggregate.DeliveryAddress(),
		ContactNumber:   aggregate.ContactNumber(),
		PaymentMethod:   aggregate.PaymentMethod().String(),
		Rider:           riderView,
		ETA:             etaForStatus(aggregate.Status()),
		NeedsRider:      aggregate.IsActive() && aggregate.Rider() == nil,
	}
}

// etaForStatus mirrors the delivery estimates shown on the tracking page.
// Anything unrecognized falls back to the widest estimate.
func etaForStatus(s order.Status) string {
	switch s {
	case order.StatusPlaced:
		return "15-20 minutes"
	case order.StatusPreparing:
		return "10-15 minutes"
	case order.StatusReady:
		return "5-10 minutes"
	case order.StatusPickedUp:
		return "Arriving soon"
	case order.StatusDelivered:
		return "Delivered"
	default:
		return "15-20 minutes"
	}
}
