package commands

import (
	"context"

	"orderadmin/internal/core/domain/model/order"
)

// SoftDeleteOrderCommandHandler marks an active order as deleted without removing any rows.
type SoftDeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewSoftDeleteOrderCommandHandler(uowFactory OrderUoWFactory) SoftDeleteOrderCommandHandler {
	return SoftDeleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle soft-deletes the order. Orders that are already soft-deleted are not visible
// in the active scope and therefore yield *errs.ObjectNotFoundError.
func (h *SoftDeleteOrderCommandHandler) Handle(ctx context.Context, cmd SoftDeleteOrderCommand) error {
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
	aggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrderID(), order.ActiveOnly)
	if err != nil {
		return err
	}

	if err = aggregate.SoftDelete(cmd.At()); err != nil {
		return err
	}

	if err = orderRepo.SoftDelete(ctx, aggregate.ID(), cmd.At()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
