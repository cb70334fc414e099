package kernel

import (
	"strconv"

	"orderadmin/internal/pkg/errs"
)

// ErrIDIsNotConstructed indicates a zero-value ID, i.e. one not built via NewID or IDFromString.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError("ID must be created via NewID or IDFromString")

// ID is a value object for the storage-assigned integer identity of orders,
// order details, users and products. Valid identifiers are strictly positive.
//
// Example:
//
//	id, err := kernel.NewID(42)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(id) // "42"
type ID struct {
	value int64
}

// NewID builds an identifier from a positive integer.
func NewID(value int64) (ID, error) {
	if value <= 0 {
		return ID{}, errs.NewValueIsOutOfRangeError("id", value, 1, int64(^uint64(0)>>1))
	}
	return ID{value: value}, nil
}

// MustNewID is NewID for literals known to be valid; it panics otherwise.
func MustNewID(value int64) ID {
	id, err := NewID(value)
	if err != nil {
		panic(err)
	}
	return id
}

// IDFromString parses a decimal identifier, typically a path parameter.
func IDFromString(s string) (ID, error) {
	value, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return ID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return NewID(value)
}

// Int64 returns the raw identifier for persistence.
func (id ID) Int64() int64 {
	return id.value
}

func (id ID) String() string {
	return strconv.FormatInt(id.value, 10)
}

func (id ID) IsEqual(other ID) bool {
	return id.value == other.value
}

// Validate returns ErrIDIsNotConstructed for the zero value.
func (id ID) Validate() error {
	if id.value <= 0 {
		return ErrIDIsNotConstructed
	}
	return nil
}
