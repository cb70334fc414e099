package commands

import (
	"context"
	"errors"

	"orderadmin/internal/core/domain/model/kernel"
	"orderadmin/internal/pkg/errs"

	"go.uber.org/zap"
)

// PurgeReport summarizes a purge run.
// Skipped counts orders that disappeared between listing and deletion.
type PurgeReport struct {
	Purged  int
	Skipped int
	Failed  int
}

// orderDeleter is satisfied by DeleteOrderPermanentlyCommandHandler.
type orderDeleter interface {
	Handle(ctx context.Context, cmd DeleteOrderPermanentlyCommand) error
}

// PurgeSoftDeletedOrdersCommandHandler hard-deletes stale soft-deleted orders,
// one order per transaction, so a failing order never blocks the rest of the batch.
type PurgeSoftDeletedOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	deleter    orderDeleter
	logger     *zap.Logger
}

func NewPurgeSoftDeletedOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	deleter orderDeleter,
	logger *zap.Logger,
) PurgeSoftDeletedOrdersCommandHandler {
	return PurgeSoftDeletedOrdersCommandHandler{
		uowFactory: uowFactory,
		deleter:    deleter,
		logger:     logger,
	}
}

// Handle lists candidates outside any transaction and deletes each one through
// the permanent deletion handler. Only a failure to list candidates is returned
// as an error; per-order failures are counted and logged.
func (h *PurgeSoftDeletedOrdersCommandHandler) Handle(
	ctx context.Context,
	cmd PurgeSoftDeletedOrdersCommand,
) (PurgeReport, error) {
	if err := cmd.Validate(); err != nil {
		return PurgeReport{}, err
	}

	ids, err := h.uowFactory.Create().OrderRepository().ListSoftDeletedBefore(ctx, cmd.Cutoff(), cmd.BatchSize())
	if err != nil {
		return PurgeReport{}, errs.NewPersistenceFailureErrorWithCause("list soft-deleted orders", err)
	}

	var report PurgeReport
	for _, id := range ids {
		if ctx.Err() != nil {
			return report, ctx.Err()
		}
		h.purgeOne(ctx, id, &report)
	}

	return report, nil
}

func (h *PurgeSoftDeletedOrdersCommandHandler) purgeOne(ctx context.Context, id kernel.ID, report *PurgeReport) {
	cmd, err := NewDeleteOrderPermanentlyCommand(id)
	if err != nil {
		report.Failed++
		return
	}

	err = h.deleter.Handle(ctx, cmd)
	switch {
	case err == nil:
		report.Purged++
	case errors.Is(err, errs.ErrObjectNotFound) && !errors.Is(err, errs.ErrPersistenceFailure):
		report.Skipped++
	default:
		report.Failed++
		h.logger.Warn("purge of soft-deleted order failed",
			zap.Stringer("order_id", id),
			zap.Error(err),
		)
	}
}
