package commands

import (
	"errors"

	"orderadmin/internal/core/domain/model/kernel"
	"orderadmin/internal/pkg/guard"
)

var ErrDeleteOrderPermanentlyCommandIsNotConstructed = errors.New(
	"DeleteOrderPermanentlyCommand must be created via NewDeleteOrderPermanentlyCommand constructor",
)

// DeleteOrderPermanentlyCommand represents an administrator's request to remove an order
// and every one of its detail lines for good. The order may already be soft-deleted.
//
// Example:
//
//	cmd, err := NewDeleteOrderPermanentlyCommand(kernel.MustNewID(42))
//	if err != nil {
//	    return fmt.Errorf("invalid command: %w", err)
//	}
//
//	outcome := handler.Execute(ctx, cmd)
//	fmt.Println(outcome.Message) // "Delete succeeded !"
type DeleteOrderPermanentlyCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.ID

	guard guard.ConstructorGuard
}

// NewDeleteOrderPermanentlyCommand creates a command for the given order id.
// Returns an error if the id was not built through kernel.NewID.
func NewDeleteOrderPermanentlyCommand(orderID kernel.ID) (DeleteOrderPermanentlyCommand, error) {
	command := DeleteOrderPermanentlyCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return DeleteOrderPermanentlyCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDeleteOrderPermanentlyCommandIsNotConstructed if validation fails.
func (c DeleteOrderPermanentlyCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderPermanentlyCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to delete.
func (c DeleteOrderPermanentlyCommand) OrderID() kernel.ID {
	return c.orderID
}

func (c *DeleteOrderPermanentlyCommand) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
