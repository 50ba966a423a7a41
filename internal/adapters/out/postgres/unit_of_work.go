// Package postgres provides the GORM-based implementation of the Unit of
// Work pattern. The Unit of Work maintains a list of aggregates affected by
// a business transaction and coordinates writing out changes atomically.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//
//	if err := uow.OrderRepository().Add(ctx, order); err != nil {
//	    uow.Rollback(ctx)
//	    return err
//	}
//
//	return uow.Commit(ctx)
package postgres

import (
	"context"

	"faithcafe/internal/adapters/out/postgres/menurepo"
	"faithcafe/internal/adapters/out/postgres/orderrepo"
	"faithcafe/internal/adapters/out/postgres/staterepo"
	"faithcafe/internal/adapters/out/postgres/userrepo"
	"faithcafe/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        string
	Aggregate interface{}
}

// Migrate creates or updates the database schema for every table the
// adapter uses.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userrepo.UserDTO{},
		&menurepo.MenuItemDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&staterepo.EntryDTO{},
	)
}

// GormUnitOfWorkFactory creates UnitOfWork instances using a shared GORM
// database connection. Each business operation gets a fresh unit of work
// with proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for business transaction
// management.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// noopTracker discards aggregate tracking. The read-side repositories use
// it: queries never publish changes.
type noopTracker struct{}

func (noopTracker) TrackAggregate(string, interface{}) {}

// UserReader returns a user repository bound to the shared connection,
// outside any transaction. Query handlers hold these.
func (f *GormUnitOfWorkFactory) UserReader() ports.UserRepository {
	return userrepo.NewGormUserRepository(f.db, noopTracker{})
}

// MenuReader returns a menu repository bound to the shared connection,
// outside any transaction.
func (f *GormUnitOfWorkFactory) MenuReader() ports.MenuRepository {
	return menurepo.NewGormMenuRepository(f.db, noopTracker{})
}

// OrderReader returns an order repository bound to the shared connection,
// outside any transaction.
func (f *GormUnitOfWorkFactory) OrderReader() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(f.db, noopTracker{})
}

// CartReader returns a cart repository bound to the shared connection,
// outside any transaction.
func (f *GormUnitOfWorkFactory) CartReader() ports.CartRepository {
	return staterepo.NewGormStateRepository(f.db)
}

// SessionReader returns a session repository bound to the shared
// connection, outside any transaction.
func (f *GormUnitOfWorkFactory) SessionReader() ports.SessionRepository {
	return staterepo.NewGormStateRepository(f.db)
}

// GormUnitOfWork coordinates a database transaction across the storefront
// repositories and tracks the aggregates modified within it.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction. Subsequent repository
// operations execute within it. Calling Begin again on an active unit is a
// no-op rather than a nested transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction. After
// commit the transaction is closed and cannot be reused.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction. After
// a successful Commit the transaction is already closed and Rollback is a
// no-op, so `defer uow.Rollback(ctx)` is safe.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return nil
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// UserRepository provides user persistence operations within the unit of
// work. Operations execute inside the current transaction if one is
// active.
func (uow *GormUnitOfWork) UserRepository() ports.UserRepository {
	return userrepo.NewGormUserRepository(uow.conn(), uow)
}

// MenuRepository provides catalog persistence operations within the unit of
// work.
func (uow *GormUnitOfWork) MenuRepository() ports.MenuRepository {
	return menurepo.NewGormMenuRepository(uow.conn(), uow)
}

// OrderRepository provides order persistence operations within the unit of
// work.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// CartRepository provides cart persistence within the unit of work. The
// cart lives in the client_state table alongside the session keys.
func (uow *GormUnitOfWork) CartRepository() ports.CartRepository {
	return staterepo.NewGormStateRepository(uow.conn())
}

// SessionRepository provides session-state persistence within the unit of
// work.
func (uow *GormUnitOfWork) SessionRepository() ports.SessionRepository {
	return staterepo.NewGormStateRepository(uow.conn())
}

// TrackAggregate registers a domain aggregate as modified within this unit
// of work. Repository implementations call it on Add and Update; the
// tracked aggregates become available for post-commit processing.
func (uow *GormUnitOfWork) TrackAggregate(id string, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}
