package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"orderadmin/internal/core/domain/model/order"
	"orderadmin/internal/core/ports"
	"orderadmin/internal/pkg/errs"

	"go.uber.org/zap"
)

// DeleteOrderPermanentlyCommandHandler removes an order and its details in one transaction.
//
// Example:
//
//	handler := NewDeleteOrderPermanentlyCommandHandler(uowFactory, publisher, DefaultMessages(), logger)
//	cmd, _ := NewDeleteOrderPermanentlyCommand(kernel.MustNewID(42))
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order deletion failed: %w", err)
//	}
type DeleteOrderPermanentlyCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
	messages   Messages
	logger     *zap.Logger
	now        func() time.Time
}

// NewDeleteOrderPermanentlyCommandHandler creates a handler for permanent order deletion.
// The publisher is notified only after a successful commit.
func NewDeleteOrderPermanentlyCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	messages Messages,
	logger *zap.Logger,
) DeleteOrderPermanentlyCommandHandler {
	return DeleteOrderPermanentlyCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		messages:   messages,
		logger:     logger,
		now:        time.Now,
	}
}

// Handle deletes the order named by cmd together with all of its details.
//
// The order row is locked including soft-deleted rows for the rest of the
// transaction; only its identifying columns are read. A missing order yields *errs.ObjectNotFoundError; any storage failure
// yields *errs.PersistenceFailureError. On every error path the transaction is rolled
// back, so either both the details and the order are gone or nothing changed.
func (h *DeleteOrderPermanentlyCommandHandler) Handle(ctx context.Context, cmd DeleteOrderPermanentlyCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	event, err := h.deleteInTransaction(ctx, cmd)
	if err != nil {
		return err
	}

	h.publish(ctx, event)
	return nil
}

// Execute runs Handle and always returns an outcome. A panic inside the unit of
// work becomes a failure outcome after the transaction has been rolled back; once
// the commit went through, the outcome is success whatever the publisher does.
func (h *DeleteOrderPermanentlyCommandHandler) Execute(
	ctx context.Context,
	cmd DeleteOrderPermanentlyCommand,
) DeletionOutcome {
	err := h.Handle(ctx, cmd)
	if err != nil {
		h.logger.Info("order deletion failed",
			zap.Stringer("order_id", cmd.OrderID()),
			zap.Error(err),
		)
	}

	return NewDeletionOutcome(err, h.messages)
}

func (h *DeleteOrderPermanentlyCommandHandler) publish(ctx context.Context, event order.DeletedEvent) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Warn("order deleted but event publisher panicked",
				zap.Stringer("order_id", event.OrderID),
				zap.Any("panic", r),
			)
		}
	}()

	if err := h.publisher.PublishOrderDeleted(ctx, event); err != nil {
		h.logger.Warn("order deleted but event was not published",
			zap.Stringer("order_id", event.OrderID),
			zap.Error(err),
		)
	}
}

func (h *DeleteOrderPermanentlyCommandHandler) deleteInTransaction(
	ctx context.Context,
	cmd DeleteOrderPermanentlyCommand,
) (event order.DeletedEvent, err error) {
	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return order.DeletedEvent{}, errs.NewPersistenceFailureErrorWithCause("begin transaction", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("order deletion panicked",
				zap.Stringer("order_id", cmd.OrderID()),
				zap.Any("panic", r),
			)
			event, err = order.DeletedEvent{}, fmt.Errorf("unexpected failure: %v", r)
		}
	}()

	orderRepo := uow.OrderRepository()
	ref, err := orderRepo.LockForDelete(ctx, cmd.OrderID(), order.IncludeSoftDeleted)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return order.DeletedEvent{}, err
		}
		return order.DeletedEvent{}, errs.NewPersistenceFailureErrorWithCause("lock order", err)
	}

	removed, err := uow.OrderDetailRepository().DeleteByOrder(ctx, ref.ID)
	if err != nil {
		return order.DeletedEvent{}, errs.NewPersistenceFailureErrorWithCause("delete order details", err)
	}

	if err = orderRepo.ForceDelete(ctx, ref.ID); err != nil {
		return order.DeletedEvent{}, errs.NewPersistenceFailureErrorWithCause("delete order", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return order.DeletedEvent{}, errs.NewPersistenceFailureErrorWithCause("commit transaction", err)
	}

	return order.NewDeletedEvent(ref, removed, h.now()), nil
}
