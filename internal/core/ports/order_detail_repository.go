package ports

import (
	"context"

	"orderadmin/internal/core/domain/model/kernel"
	"orderadmin/internal/core/domain/model/order"
)

// OrderDetailRepository defines the persistence contract for order lines.
// Lines are always addressed through their owning order.
type OrderDetailRepository interface {
	// AddAll persists lines in a single statement.
	AddAll(ctx context.Context, details []*order.Detail) error

	// ListByOrder returns the lines of an order ordered by id.
	ListByOrder(ctx context.Context, orderID kernel.ID) ([]*order.Detail, error)

	// DeleteByOrder removes every line of the order and reports how many were removed.
	DeleteByOrder(ctx context.Context, orderID kernel.ID) (int64, error)

	// CountByOrder returns the number of lines stored for the order.
	CountByOrder(ctx context.Context, orderID kernel.ID) (int64, error)
}
