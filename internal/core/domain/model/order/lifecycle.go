package order

import (
	"fmt"

	"orderadmin/internal/pkg/errs"
)

// Lifecycle tells whether an order row is live or logically removed.
//
//	Active ──SoftDelete──> SoftDeleted ──(hard delete)──> gone
//
// Hard deletion is not a Lifecycle value: after it the order no longer exists.
type Lifecycle int

const (
	UnknownLifecycle Lifecycle = iota
	Active
	SoftDeleted
)

func (l Lifecycle) Validate() error {
	if l != Active && l != SoftDeleted {
		return errs.NewValueIsInvalidErrorWithCause("lifecycle is invalid", fmt.Errorf("%d is not a valid lifecycle", l))
	}
	return nil
}

func (l Lifecycle) String() string {
	switch l {
	case Active:
		return "Active"
	case SoftDeleted:
		return "Deleted"
	case UnknownLifecycle:
		return "Unknown"
	}
	return "Unknown"
}

// Scope selects which lifecycle states a lookup may return. The zero value is
// ActiveOnly, the standard lookup that hides soft-deleted orders.
type Scope int

const (
	ActiveOnly Scope = iota
	IncludeSoftDeleted
)

// Admits reports whether an order in lifecycle l is visible under the scope.
func (s Scope) Admits(l Lifecycle) bool {
	if s == IncludeSoftDeleted {
		return l == Active || l == SoftDeleted
	}
	return l == Active
}

func (s Scope) String() string {
	if s == IncludeSoftDeleted {
		return "include soft-deleted"
	}
	return "active only"
}
