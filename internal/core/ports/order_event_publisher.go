package ports

import (
	"context"

	"orderadmin/internal/core/domain/model/order"
)

// OrderEventPublisher notifies other systems about committed order changes.
type OrderEventPublisher interface {
	PublishOrderDeleted(ctx context.Context, event order.DeletedEvent) error
}
