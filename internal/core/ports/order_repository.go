package ports

import (
	"context"
	"time"

	"orderadmin/internal/core/domain/model/kernel"
	"orderadmin/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Every lookup takes an explicit order.Scope so callers state whether
// soft-deleted orders may be returned.
type OrderRepository interface {
	// Add persists an order created by the purchasing flow.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order visible under scope.
	// Returns *errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.ID, scope order.Scope) (*order.Order, error)

	// GetForUpdate is Get plus a row lock held until the surrounding transaction
	// ends, so concurrent writers of the same order are serialized.
	GetForUpdate(ctx context.Context, id kernel.ID, scope order.Scope) (*order.Order, error)

	// LockForDelete locks the order row visible under scope and returns its ref.
	// Only id, number and deletion time are read, so rows whose other columns no
	// longer restore into a valid order can still be removed.
	// Returns *errs.ObjectNotFoundError when no such order exists.
	LockForDelete(ctx context.Context, id kernel.ID, scope order.Scope) (order.Ref, error)

	// SoftDelete marks an active order as logically deleted at the given time.
	// Returns *errs.ObjectNotFoundError when no active order was updated.
	SoftDelete(ctx context.Context, id kernel.ID, at time.Time) error

	// ForceDelete removes the order row permanently, bypassing soft delete.
	// Returns *errs.ObjectNotFoundError when no row was removed.
	ForceDelete(ctx context.Context, id kernel.ID) error

	// Count returns the number of orders visible under scope.
	Count(ctx context.Context, scope order.Scope) (int64, error)

	// ListSoftDeletedBefore returns up to limit ids of orders soft-deleted before cutoff,
	// oldest deletion first.
	ListSoftDeletedBefore(ctx context.Context, cutoff time.Time, limit int) ([]kernel.ID, error)
}
