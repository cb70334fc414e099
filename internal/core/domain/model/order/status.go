package order

import (
	"fmt"

	"orderadmin/internal/pkg/errs"
)

// Status is the business state of an order as recorded by the purchasing flow.
// Administration only reads it; the labels returned by String are what the
// order list and detail views display.
type Status int

const (
	// Unknown (0) catches uninitialized values.
	Unknown Status = iota
	Unpaid
	Paid
	Shipped
	Received
	Completed
	Refunded
	Closed
)

var statusLabels = map[Status]string{
	Unpaid:    "Unpaid",
	Paid:      "Paid",
	Shipped:   "Shipped",
	Received:  "Received",
	Completed: "Completed",
	Refunded:  "Refunded",
	Closed:    "Closed",
}

// Validate rejects Unknown and any value outside the defined set.
func (s Status) Validate() error {
	if _, ok := statusLabels[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the display label; invalid values render as "Unknown".
func (s Status) String() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return "Unknown"
}

// Type is the kind of purchase that produced the order.
type Type int

const (
	UnknownType Type = iota
	Normal
	FlashSale
)

func (t Type) Validate() error {
	if t != Normal && t != FlashSale {
		return errs.NewValueIsInvalidErrorWithCause("type is invalid", fmt.Errorf("%d is not a valid order type", t))
	}
	return nil
}

func (t Type) String() string {
	switch t {
	case Normal:
		return "Normal"
	case FlashSale:
		return "Flash sale"
	case UnknownType:
		return "Unknown"
	}
	return "Unknown"
}
