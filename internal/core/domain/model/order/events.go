package order

import (
	"time"

	"orderadmin/internal/core/domain/model/kernel"
)

// DeletedEvent records that an order and its details were permanently removed.
// It is published only after the removing transaction has committed.
type DeletedEvent struct {
	OrderID        kernel.ID
	No             string
	DetailsRemoved int64
	WasSoftDeleted bool
	OccurredAt     time.Time
}

// NewDeletedEvent describes the hard deletion of the order behind ref, which had
// detailsRemoved lines.
func NewDeletedEvent(ref Ref, detailsRemoved int64, at time.Time) DeletedEvent {
	return DeletedEvent{
		OrderID:        ref.ID,
		No:             ref.No,
		DetailsRemoved: detailsRemoved,
		WasSoftDeleted: ref.IsSoftDeleted(),
		OccurredAt:     at,
	}
}
