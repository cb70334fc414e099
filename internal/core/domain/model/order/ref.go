package order

import (
	"time"

	"orderadmin/internal/core/domain/model/kernel"
)

// Ref names a stored order row without restoring the aggregate. Deletion works on
// refs so that rows holding values the aggregate would reject can still be removed.
type Ref struct {
	ID        kernel.ID
	No        string
	DeletedAt *time.Time
}

// IsSoftDeleted reports whether the referenced row carries a deletion time.
func (r Ref) IsSoftDeleted() bool {
	return r.DeletedAt != nil
}

// Ref returns the identifying part of o.
func (o *Order) Ref() Ref {
	return Ref{ID: o.ID(), No: o.No(), DeletedAt: o.DeletedAt()}
}
