package commands

import (
	"context"
	"time"

	"faithcafe/internal/core/domain/model/rider"
)

// UpdateOrderStatusCommandHandler applies lifecycle transitions. When an
// order reaches delivered or cancelled, its rider goes back to the available
// pool; the snapshot on the order is untouched.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	riderPool  *rider.Pool
}

// NewUpdateOrderStatusCommandHandler creates a handler for status
// transitions.
func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory, riderPool *rider.Pool) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		riderPool:  riderPool,
	}
}

// Handle processes the transition command. Illegal transitions and the
// rider gate on ready surface as domain errors with the order unchanged.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
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

	if err = aggregate.ChangeStatus(cmd.Status(), time.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if cmd.Status().IsTerminal() && aggregate.Rider() != nil {
		h.riderPool.Release(aggregate.Rider().Name())
	}

	return nil
}
