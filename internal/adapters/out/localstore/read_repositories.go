package localstore

import (
	"context"

	"faithcafe/internal/core/domain/model/cart"
	"faithcafe/internal/core/domain/model/kernel"
	"faithcafe/internal/core/domain/model/menu"
	"faithcafe/internal/core/domain/model/order"
	"faithcafe/internal/core/domain/model/user"
	"faithcafe/internal/core/ports"
)

// Read repositories serve the query side. Each call runs against a fresh
// unit of work so it always sees the latest committed state. Writes through
// these repositories are not committed anywhere; only the query handlers
// hold them.

// UserReader returns a fresh-loading user repository for queries.
func (f *UnitOfWorkFactory) UserReader() ports.UserRepository {
	return readUserRepository{factory: f}
}

// MenuReader returns a fresh-loading menu repository for queries.
func (f *UnitOfWorkFactory) MenuReader() ports.MenuRepository {
	return readMenuRepository{factory: f}
}

// OrderReader returns a fresh-loading order repository for queries.
func (f *UnitOfWorkFactory) OrderReader() ports.OrderRepository {
	return readOrderRepository{factory: f}
}

// CartReader returns a fresh-loading cart repository for queries.
func (f *UnitOfWorkFactory) CartReader() ports.CartRepository {
	return readCartRepository{factory: f}
}

// SessionReader returns a fresh-loading session repository for queries.
func (f *UnitOfWorkFactory) SessionReader() ports.SessionRepository {
	return readSessionRepository{factory: f}
}

type readUserRepository struct {
	factory *UnitOfWorkFactory
}

func (r readUserRepository) Add(ctx context.Context, aggregate *user.User) error {
	return r.factory.Create().UserRepository().Add(ctx, aggregate)
}

func (r readUserRepository) Update(ctx context.Context, aggregate *user.User) error {
	return r.factory.Create().UserRepository().Update(ctx, aggregate)
}

func (r readUserRepository) Get(ctx context.Context, username string) (*user.User, error) {
	return r.factory.Create().UserRepository().Get(ctx, username)
}

func (r readUserRepository) Delete(ctx context.Context, username string) error {
	return r.factory.Create().UserRepository().Delete(ctx, username)
}

func (r readUserRepository) GetAll(ctx context.Context) ([]*user.User, error) {
	return r.factory.Create().UserRepository().GetAll(ctx)
}

type readMenuRepository struct {
	factory *UnitOfWorkFactory
}

func (r readMenuRepository) Add(ctx context.Context, item *menu.Item) error {
	return r.factory.Create().MenuRepository().Add(ctx, item)
}

func (r readMenuRepository) Update(ctx context.Context, name string, item *menu.Item) error {
	return r.factory.Create().MenuRepository().Update(ctx, name, item)
}

func (r readMenuRepository) Get(ctx context.Context, name string) (*menu.Item, error) {
	return r.factory.Create().MenuRepository().Get(ctx, name)
}

func (r readMenuRepository) Delete(ctx context.Context, name string) error {
	return r.factory.Create().MenuRepository().Delete(ctx, name)
}

func (r readMenuRepository) GetAll(ctx context.Context) ([]*menu.Item, error) {
	return r.factory.Create().MenuRepository().GetAll(ctx)
}

type readOrderRepository struct {
	factory *UnitOfWorkFactory
}

func (r readOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	return r.factory.Create().OrderRepository().Add(ctx, aggregate)
}

func (r readOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	return r.factory.Create().OrderRepository().Update(ctx, aggregate)
}

func (r readOrderRepository) Get(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	return r.factory.Create().OrderRepository().Get(ctx, id)
}

func (r readOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	return r.factory.Create().OrderRepository().GetAll(ctx)
}

func (r readOrderRepository) GetByCustomer(ctx context.Context, username string) ([]*order.Order, error) {
	return r.factory.Create().OrderRepository().GetByCustomer(ctx, username)
}

type readCartRepository struct {
	factory *UnitOfWorkFactory
}

func (r readCartRepository) Get(ctx context.Context) (*cart.Cart, error) {
	return r.factory.Create().CartRepository().Get(ctx)
}

func (r readCartRepository) Save(ctx context.Context, aggregate *cart.Cart) error {
	return r.factory.Create().CartRepository().Save(ctx, aggregate)
}

type readSessionRepository struct {
	factory *UnitOfWorkFactory
}

func (r readSessionRepository) CurrentUser(ctx context.Context) (user.Session, error) {
	return r.factory.Create().SessionRepository().CurrentUser(ctx)
}

func (r readSessionRepository) SetCurrentUser(ctx context.Context, session user.Session) error {
	return r.factory.Create().SessionRepository().SetCurrentUser(ctx, session)
}

func (r readSessionRepository) ClearCurrentUser(ctx context.Context) error {
	return r.factory.Create().SessionRepository().ClearCurrentUser(ctx)
}

func (r readSessionRepository) CheckoutSelection(ctx context.Context) ([]string, error) {
	return r.factory.Create().SessionRepository().CheckoutSelection(ctx)
}

func (r readSessionRepository) SetCheckoutSelection(ctx context.Context, names []string) error {
	return r.factory.Create().SessionRepository().SetCheckoutSelection(ctx, names)
}

func (r readSessionRepository) ClearCheckoutSelection(ctx context.Context) error {
	return r.factory.Create().SessionRepository().ClearCheckoutSelection(ctx)
}

func (r readSessionRepository) Theme(ctx context.Context) (string, error) {
	return r.factory.Create().SessionRepository().Theme(ctx)
}

func (r readSessionRepository) SetTheme(ctx context.Context, theme string) error {
	return r.factory.Create().SessionRepository().SetTheme(ctx, theme)
}
