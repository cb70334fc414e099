package order

import (
	"errors"
	"strings"
	"time"

	"orderadmin/internal/core/domain/model/kernel"
	"orderadmin/internal/pkg/errs"
	"orderadmin/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrOrderAlreadySoftDeleted is returned when soft-deleting an order twice.
	ErrOrderAlreadySoftDeleted = errors.New("order is already soft-deleted")
)

// Consignee is the recipient of the shipment.
type Consignee struct {
	Name    string
	Phone   string
	Address string
}

// Payment holds the payment and refund references recorded by the purchasing flow.
type Payment struct {
	No          string
	PaidAt      *time.Time
	RefundFee   kernel.Money
	RefundTrade string
}

// Snapshot is the full persisted state of an order, used by RestoreOrder.
type Snapshot struct {
	ID        kernel.ID
	No        string
	UserID    kernel.ID
	Total     kernel.Money
	Status    Status
	Type      Type
	Payment   Payment
	Consignee Consignee
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// Order is the aggregate root of a customer purchase.
//
// Order follows these invariants:
//   - id and userID are valid identifiers, no is not blank
//   - status and type are defined values
//   - lifecycle is SoftDeleted exactly when deletedAt is set
type Order struct {
	id        kernel.ID
	no        string
	userID    kernel.ID
	total     kernel.Money
	status    Status
	orderType Type
	payment   Payment
	consignee Consignee
	lifecycle Lifecycle
	createdAt time.Time
	updatedAt time.Time
	deletedAt *time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates a fresh, unpaid, active order.
//
// Example:
//
//	o, err := order.NewOrder(kernel.MustNewID(42), "20240101000042", kernel.MustNewID(7),
//	    kernel.MustMoney("199.00"), order.Normal, order.Consignee{Name: "Li Lei"}, time.Now())
func NewOrder(
	id kernel.ID,
	no string,
	userID kernel.ID,
	total kernel.Money,
	orderType Type,
	consignee Consignee,
	createdAt time.Time,
) (*Order, error) {
	return RestoreOrder(Snapshot{
		ID:        id,
		No:        no,
		UserID:    userID,
		Total:     total,
		Status:    Unpaid,
		Type:      orderType,
		Consignee: consignee,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	})
}

// RestoreOrder rebuilds an order from persisted state, validating every field.
func RestoreOrder(s Snapshot) (*Order, error) {
	o := &Order{
		total:     s.Total,
		payment:   s.Payment,
		consignee: s.Consignee,
		createdAt: s.CreatedAt,
		updatedAt: s.UpdatedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(s.ID),
		o.setNo(s.No),
		o.setUserID(s.UserID),
		o.setStatus(s.Status),
		o.setType(s.Type),
	); err != nil {
		return nil, err
	}

	o.lifecycle = Active
	if s.DeletedAt != nil {
		deletedAt := *s.DeletedAt
		o.deletedAt = &deletedAt
		o.lifecycle = SoftDeleted
	}

	return o, nil
}

// Validate ensures the order was built by a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.ID {
	return o.id
}

func (o *Order) No() string {
	return o.no
}

func (o *Order) UserID() kernel.ID {
	return o.userID
}

func (o *Order) Total() kernel.Money {
	return o.total
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) Type() Type {
	return o.orderType
}

func (o *Order) Payment() Payment {
	return o.payment
}

func (o *Order) Consignee() Consignee {
	return o.consignee
}

func (o *Order) Lifecycle() Lifecycle {
	return o.lifecycle
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

func (o *Order) DeletedAt() *time.Time {
	return o.deletedAt
}

func (o *Order) IsSoftDeleted() bool {
	return o.lifecycle == SoftDeleted
}

func (o *Order) VisibleIn(s Scope) bool {
	return s.Admits(o.lifecycle)
}

// SoftDelete marks the order as logically removed at the given time.
func (o *Order) SoftDelete(at time.Time) error {
	if o.lifecycle == SoftDeleted {
		return ErrOrderAlreadySoftDeleted
	}
	o.lifecycle = SoftDeleted
	o.deletedAt = &at
	o.updatedAt = at
	return nil
}

func (o *Order) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNo(no string) error {
	if strings.TrimSpace(no) == "" {
		return errs.NewValueIsRequiredError("order no")
	}
	o.no = no
	return nil
}

func (o *Order) setUserID(userID kernel.ID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("user id", err)
	}
	o.userID = userID
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setType(orderType Type) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	o.orderType = orderType
	return nil
}
