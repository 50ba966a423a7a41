package commands

import (
	"context"

	"faithcafe/internal/core/domain/model/order"
	"faithcafe/internal/core/domain/model/rider"
	"faithcafe/internal/core/ports"
)

// AssignRiderCommandHandler matches an available rider with an order. The
// rider is marked busy in the pool and a contact snapshot is embedded into
// the order; if anything fails after acquisition the rider is released.
type AssignRiderCommandHandler struct {
	uowFactory OrderUoWFactory
	riderPool  *rider.Pool
}

// NewAssignRiderCommandHandler creates a handler for rider assignment.
func NewAssignRiderCommandHandler(uowFactory OrderUoWFactory, riderPool *rider.Pool) AssignRiderCommandHandler {
	return AssignRiderCommandHandler{
		uowFactory: uowFactory,
		riderPool:  riderPool,
	}
}

// Handle processes the assignment command.
func (h AssignRiderCommandHandler) Handle(ctx context.Context, cmd AssignRiderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	assigned, err := h.riderPool.Acquire(cmd.RiderName())
	if err != nil {
		return err
	}

	if err = h.assign(ctx, orderRepo, aggregate, assigned); err != nil {
		h.riderPool.Release(assigned.Name())
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		h.riderPool.Release(assigned.Name())
		return err
	}

	return nil
}

func (h AssignRiderCommandHandler) assign(
	ctx context.Context,
	orderRepo ports.OrderRepository,
	aggregate *order.Order,
	assigned *rider.Rider,
) error {
	snapshot, err := order.NewRiderSnapshot(assigned.Name(), assigned.Contact())
	if err != nil {
		return err
	}

	if err = aggregate.AssignRider(snapshot); err != nil {
		return err
	}

	return orderRepo.Update(ctx, aggregate)
}
