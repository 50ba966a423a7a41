package localstore

import (
	"context"

	"faithcafe/internal/core/domain/model/kernel"
	"faithcafe/internal/core/domain/model/order"
	"faithcafe/internal/pkg/errs"
)

type orderRepository struct {
	uow *UnitOfWork
}

// Add implements ports.OrderRepository.
func (r *orderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := r.uow.loadOrders(); err != nil {
		return err
	}

	for _, dto := range r.uow.orders {
		if dto.ID == aggregate.ID().String() {
			return errs.NewValueIsInvalidError("id")
		}
	}

	r.uow.orders = append(r.uow.orders, orderToDTO(aggregate))
	r.uow.ordersDirty = true
	return nil
}

// Update implements ports.OrderRepository.
func (r *orderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := r.uow.loadOrders(); err != nil {
		return err
	}

	for i, dto := range r.uow.orders {
		if dto.ID == aggregate.ID().String() {
			r.uow.orders[i] = orderToDTO(aggregate)
			r.uow.ordersDirty = true
			return nil
		}
	}
	return errs.NewObjectNotFoundError("id", aggregate.ID().String())
}

// Get implements ports.OrderRepository.
func (r *orderRepository) Get(_ context.Context, id kernel.OrderID) (*order.Order, error) {
	if err := r.uow.loadOrders(); err != nil {
		return nil, err
	}

	for _, dto := range r.uow.orders {
		if dto.ID == id.String() {
			return dto.toDomain()
		}
	}
	return nil, errs.NewObjectNotFoundError("id", id.String())
}

// GetAll implements ports.OrderRepository.
func (r *orderRepository) GetAll(_ context.Context) ([]*order.Order, error) {
	if err := r.uow.loadOrders(); err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(r.uow.orders))
	for _, dto := range r.uow.orders {
		aggregate, err := dto.toDomain()
		if err != nil {
			return nil, err
		}
		orders = append(orders, aggregate)
	}
	return orders, nil
}

// GetByCustomer implements ports.OrderRepository.
func (r *orderRepository) GetByCustomer(_ context.Context, username string) ([]*order.Order, error) {
	if err := r.uow.loadOrders(); err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0)
	for _, dto := range r.uow.orders {
		if dto.Customer != username {
			continue
		}
		aggregate, err := dto.toDomain()
		if err != nil {
			return nil, err
		}
		orders = append(orders, aggregate)
	}
	return orders, nil
}
