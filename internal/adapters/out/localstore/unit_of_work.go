package localstore

import (
	"context"
	"encoding/json"
	"errors"

	"faithcafe/internal/core/ports"
)

// ErrNoActiveTransaction is returned when Commit is called before Begin.
var ErrNoActiveTransaction = errors.New("no active transaction")

// UnitOfWorkFactory creates key-value units of work sharing one store.
type UnitOfWorkFactory struct {
	store    Store
	fixtures *Fixtures
}

// NewUnitOfWorkFactory creates a factory over the given store. The fixtures
// loader may be nil when no seeding is wanted.
func NewUnitOfWorkFactory(store Store, fixtures *Fixtures) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{
		store:    store,
		fixtures: fixtures,
	}
}

// Create implements ports.UnitOfWorkFactory.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{
		store:    f.store,
		fixtures: f.fixtures,
	}
}

// UnitOfWork implements the transaction boundary over the key-value store.
//
// Collections load whole on first access, with a fixture fill when the
// cache key is still empty. Mutations stay in the working copies until
// Commit writes every dirty collection back wholesale; two units committing
// concurrently resolve by last write wins, the same as two browser tabs.
type UnitOfWork struct {
	store    Store
	fixtures *Fixtures
	began    bool

	users        []userDTO
	usersLoaded  bool
	usersDirty   bool
	menu         []menuItemDTO
	menuLoaded   bool
	menuDirty    bool
	orders       []orderDTO
	ordersLoaded bool
	ordersDirty  bool
	cart         []cartLineDTO
	cartLoaded   bool
	cartDirty    bool

	sessionSets    map[string][]byte
	sessionDeletes map[string]bool
}

// Begin implements ports.UnitOfWork.
func (u *UnitOfWork) Begin(_ context.Context) error {
	if u.began {
		return errors.New("transaction already started")
	}
	u.began = true
	u.sessionSets = make(map[string][]byte)
	u.sessionDeletes = make(map[string]bool)
	return nil
}

// Commit implements ports.UnitOfWork. Dirty collections and staged session
// writes hit the store together; a failed write leaves later writes
// unapplied but already-written keys in place, which the last-write-wins
// model tolerates.
func (u *UnitOfWork) Commit(_ context.Context) error {
	if !u.began {
		return ErrNoActiveTransaction
	}

	if u.usersDirty {
		if err := writeCollection(u.store, keyUsersCache, u.users); err != nil {
			return err
		}
	}
	if u.menuDirty {
		if err := writeCollection(u.store, keyMenuCache, u.menu); err != nil {
			return err
		}
	}
	if u.ordersDirty {
		if err := writeCollection(u.store, keyOrdersCache, u.orders); err != nil {
			return err
		}
	}
	if u.cartDirty {
		if err := writeCollection(u.store, keyCart, u.cart); err != nil {
			return err
		}
	}

	for key, value := range u.sessionSets {
		if err := u.store.Set(key, value); err != nil {
			return err
		}
	}
	for key := range u.sessionDeletes {
		if err := u.store.Delete(key); err != nil {
			return err
		}
	}

	u.reset()
	return nil
}

// Rollback implements ports.UnitOfWork. Safe to call after Commit.
func (u *UnitOfWork) Rollback(_ context.Context) error {
	u.reset()
	return nil
}

// UserRepository implements ports.UnitOfWork.
func (u *UnitOfWork) UserRepository() ports.UserRepository {
	return &userRepository{uow: u}
}

// MenuRepository implements ports.UnitOfWork.
func (u *UnitOfWork) MenuRepository() ports.MenuRepository {
	return &menuRepository{uow: u}
}

// OrderRepository implements ports.UnitOfWork.
func (u *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &orderRepository{uow: u}
}

// CartRepository implements ports.UnitOfWork.
func (u *UnitOfWork) CartRepository() ports.CartRepository {
	return &cartRepository{uow: u}
}

// SessionRepository implements ports.UnitOfWork.
func (u *UnitOfWork) SessionRepository() ports.SessionRepository {
	return &sessionRepository{uow: u}
}

func (u *UnitOfWork) reset() {
	u.began = false
	u.users, u.usersLoaded, u.usersDirty = nil, false, false
	u.menu, u.menuLoaded, u.menuDirty = nil, false, false
	u.orders, u.ordersLoaded, u.ordersDirty = nil, false, false
	u.cart, u.cartLoaded, u.cartDirty = nil, false, false
	u.sessionSets = nil
	u.sessionDeletes = nil
}

func (u *UnitOfWork) loadUsers() error {
	return loadCollection(u, keyUsersCache, &u.usersLoaded, &u.users)
}

func (u *UnitOfWork) loadMenu() error {
	return loadCollection(u, keyMenuCache, &u.menuLoaded, &u.menu)
}

func (u *UnitOfWork) loadOrders() error {
	return loadCollection(u, keyOrdersCache, &u.ordersLoaded, &u.orders)
}

func (u *UnitOfWork) loadCart() error {
	return loadCollection(u, keyCart, &u.cartLoaded, &u.cart)
}

// sessionGet reads a session key through the staged writes.
func (u *UnitOfWork) sessionGet(key string) ([]byte, bool, error) {
	if u.sessionDeletes[key] {
		return nil, false, nil
	}
	if value, ok := u.sessionSets[key]; ok {
		return value, true, nil
	}
	return u.store.Get(key)
}

func (u *UnitOfWork) sessionSet(key string, value []byte) {
	if u.sessionSets == nil {
		u.sessionSets = make(map[string][]byte)
	}
	delete(u.sessionDeletes, key)
	u.sessionSets[key] = value
}

func (u *UnitOfWork) sessionDelete(key string) {
	if u.sessionDeletes == nil {
		u.sessionDeletes = make(map[string]bool)
	}
	delete(u.sessionSets, key)
	u.sessionDeletes[key] = true
}

func loadCollection[T any](u *UnitOfWork, key string, loaded *bool, items *[]T) error {
	if *loaded {
		return nil
	}

	raw, ok, err := u.store.Get(key)
	if err != nil {
		return err
	}
	if !ok {
		if raw, err = u.fixtures.Fill(u.store, key); err != nil {
			return err
		}
	}

	if err = json.Unmarshal(raw, items); err != nil {
		return err
	}
	*loaded = true
	return nil
}

func writeCollection[T any](store Store, key string, items []T) error {
	if items == nil {
		items = make([]T, 0)
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return store.Set(key, raw)
}
