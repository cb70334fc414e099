package commands

import (
	"errors"
	"time"

	"orderadmin/internal/core/domain/model/kernel"
	"orderadmin/internal/pkg/guard"
)

var ErrSoftDeleteOrderCommandIsNotConstructed = errors.New(
	"SoftDeleteOrderCommand must be created via NewSoftDeleteOrderCommand constructor",
)

// SoftDeleteOrderCommand represents a request to hide an active order from customers
// while keeping it, and its details, available to administrators.
//
// Example:
//
//	cmd, err := NewSoftDeleteOrderCommand(kernel.MustNewID(42), time.Now())
//	if err != nil {
//	    return fmt.Errorf("invalid command: %w", err)
//	}
//
//	handler := NewSoftDeleteOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to soft-delete order: %w", err)
//	}
type SoftDeleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.ID
	at      time.Time

	guard guard.ConstructorGuard
}

// NewSoftDeleteOrderCommand creates a command that soft-deletes the order at the given time.
func NewSoftDeleteOrderCommand(orderID kernel.ID, at time.Time) (SoftDeleteOrderCommand, error) {
	command := SoftDeleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setAt(at),
	); err != nil {
		return SoftDeleteOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSoftDeleteOrderCommandIsNotConstructed if validation fails.
func (c SoftDeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrSoftDeleteOrderCommandIsNotConstructed)
}

func (c SoftDeleteOrderCommand) OrderID() kernel.ID {
	return c.orderID
}

func (c SoftDeleteOrderCommand) At() time.Time {
	return c.at
}

func (c *SoftDeleteOrderCommand) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SoftDeleteOrderCommand) setAt(at time.Time) error {
	if at.IsZero() {
		return ErrDeletionTimeIsRequired
	}

	c.at = at
	return nil
}

// ErrDeletionTimeIsRequired is returned when a soft delete carries no timestamp.
var ErrDeletionTimeIsRequired = errors.New("deletion time is required")
