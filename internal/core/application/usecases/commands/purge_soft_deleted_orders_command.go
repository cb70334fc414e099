package commands

import (
	"errors"
	"time"

	"orderadmin/internal/pkg/errs"
	"orderadmin/internal/pkg/guard"
)

const MaxPurgeBatchSize = 1000

var ErrPurgeSoftDeletedOrdersCommandIsNotConstructed = errors.New(
	"PurgeSoftDeletedOrdersCommand must be created via NewPurgeSoftDeletedOrdersCommand constructor",
)

// PurgeSoftDeletedOrdersCommand asks to permanently remove orders that were
// soft-deleted before cutoff, at most batchSize of them per run.
//
// Example:
//
//	cmd, err := NewPurgeSoftDeletedOrdersCommand(time.Now().AddDate(0, 0, -30), 100)
//	if err != nil {
//	    return err
//	}
//	report, err := handler.Handle(ctx, cmd)
type PurgeSoftDeletedOrdersCommand struct { //nolint:recvcheck //using for validation
	cutoff    time.Time
	batchSize int

	guard guard.ConstructorGuard
}

func NewPurgeSoftDeletedOrdersCommand(cutoff time.Time, batchSize int) (PurgeSoftDeletedOrdersCommand, error) {
	command := PurgeSoftDeletedOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCutoff(cutoff),
		command.setBatchSize(batchSize),
	); err != nil {
		return PurgeSoftDeletedOrdersCommand{}, err
	}

	return command, nil
}

func (c PurgeSoftDeletedOrdersCommand) Validate() error {
	return c.guard.Validate(ErrPurgeSoftDeletedOrdersCommandIsNotConstructed)
}

func (c PurgeSoftDeletedOrdersCommand) Cutoff() time.Time {
	return c.cutoff
}

func (c PurgeSoftDeletedOrdersCommand) BatchSize() int {
	return c.batchSize
}

func (c *PurgeSoftDeletedOrdersCommand) setCutoff(cutoff time.Time) error {
	if cutoff.IsZero() {
		return errs.NewValueIsRequiredError("cutoff")
	}

	c.cutoff = cutoff
	return nil
}

func (c *PurgeSoftDeletedOrdersCommand) setBatchSize(batchSize int) error {
	if batchSize <= 0 || batchSize > MaxPurgeBatchSize {
		return errs.NewValueIsOutOfRangeError("batch size", batchSize, 1, MaxPurgeBatchSize)
	}

	c.batchSize = batchSize
	return nil
}
