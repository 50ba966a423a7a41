package rider

import (
	"sync"

	"faithcafe/internal/pkg/errs"
)

// Pool is the process-lifetime rider roster. It is seeded with the default
// riders at startup and is never persisted, so every rider comes back
// available after a restart even if orders from a previous run still carry
// their snapshots.
type Pool struct {
	mu     sync.Mutex
	riders []*Rider
}

type seedRider struct {
	id      int
	name    string
	contact string
}

func defaultRiders() []seedRider {
	return []seedRider{
		{id: 1, name: "Juan Dela Cruz", contact: "+63 912 345 6789"},
		{id: 2, name: "Maria Santos", contact: "+63 923 456 7890"},
		{id: 3, name: "Pedro Reyes", contact: "+63 934 567 8901"},
	}
}

// NewPool creates a pool seeded with the default riders, all available.
func NewPool() *Pool {
	p := &Pool{}
	for _, seed := range defaultRiders() {
		r, err := NewRider(seed.id, seed.name, seed.contact)
		if err != nil {
			// Seeds are compile-time constants with non-empty names.
			panic(err)
		}
		p.riders = append(p.riders, r)
	}
	return p
}

// All returns every rider in the pool, available or not.
func (p *Pool) All() []*Rider {
	p.mu.Lock()
	defer p.mu.Unlock()

	riders := make([]*Rider, len(p.riders))
	copy(riders, p.riders)
	return riders
}

// Available returns the riders that can take a new order.
func (p *Pool) Available() []*Rider {
	p.mu.Lock()
	defer p.mu.Unlock()

	var available []*Rider
	for _, r := range p.riders {
		if r.IsAvailable() {
			available = append(available, r)
		}
	}
	return available
}

// Acquire marks the named rider busy and returns it. It fails if the rider
// does not exist or is already on an order.
func (p *Pool) Acquire(name string) (*Rider, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	r := p.find(name)
	if r == nil {
		return nil, errs.NewObjectNotFoundError("riderName", name)
	}
	if !r.IsAvailable() {
		return nil, errs.NewValueIsInvalidError("riderName")
	}

	r.MarkBusy()
	return r, nil
}

// Release returns the named rider to the available list. Unknown names are
// ignored so orders restored from a previous run can release safely.
func (p *Pool) Release(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if r := p.find(name); r != nil {
		r.Release()
	}
}

func (p *Pool) find(name string) *Rider {
	for _, r := range p.riders {
		if r.Name() == name {
			return r
		}
	}
	return nil
}
