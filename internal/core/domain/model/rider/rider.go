package rider

import (
	"errors"

	"faithcafe/internal/pkg/errs"
	"faithcafe/internal/pkg/guard"
)

// ErrRiderIsNotConstructed is returned when a Rider was not created through
// NewRider or RestoreRider.
var ErrRiderIsNotConstructed = errors.New("Rider must be created via NewRider constructor")

// Rider is a delivery rider in the pool. Every rider carries a numeric id,
// and riders toggle between available and busy as orders are assigned and
// completed. Pool lookups go by name, which is unique within the roster.
type Rider struct {
	id        int
	name      string
	contact   string
	available bool

	guard guard.ConstructorGuard
}

// NewRider creates an available rider.
func NewRider(id int, name, contact string) (*Rider, error) {
	return RestoreRider(id, name, contact, true)
}

// RestoreRider reconstructs a rider with an explicit availability flag.
func RestoreRider(id int, name, contact string, available bool) (*Rider, error) {
	if id <= 0 {
		return nil, errs.NewValueIsRequiredError("id")
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Rider{
		id:        id,
		name:      name,
		contact:   contact,
		available: available,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Rider was created through a constructor.
func (r *Rider) Validate() error {
	if r == nil {
		return ErrRiderIsNotConstructed
	}
	return r.guard.Validate(ErrRiderIsNotConstructed)
}

// ID returns the rider's numeric id.
func (r *Rider) ID() int {
	return r.id
}

// Name returns the rider's name, which also identifies the rider in the pool.
func (r *Rider) Name() string {
	return r.name
}

// Contact returns the rider's contact number.
func (r *Rider) Contact() string {
	return r.contact
}

// IsAvailable reports whether the rider can take a new order.
func (r *Rider) IsAvailable() bool {
	return r.available
}

// MarkBusy takes the rider off the available list.
func (r *Rider) MarkBusy() {
	r.available = false
}

// Release returns the rider to the available list.
func (r *Rider) Release() {
	r.available = true
}
