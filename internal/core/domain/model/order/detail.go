package order

import (
	"errors"
	"fmt"

	"orderadmin/internal/core/domain/model/kernel"
	"orderadmin/internal/pkg/errs"
	"orderadmin/internal/pkg/guard"
)

var ErrDetailIsNotConstructed = errors.New("Detail must be created via NewDetail constructor")

// Detail is one line of an order. It belongs to exactly one order and is
// removed together with it.
type Detail struct {
	id          kernel.ID
	orderID     kernel.ID
	productID   kernel.ID
	price       kernel.Money
	number      int
	isCommented bool

	guard guard.ConstructorGuard
}

// NewDetail validates ownership, product and quantity of a line item.
func NewDetail(
	id, orderID, productID kernel.ID,
	price kernel.Money,
	number int,
	isCommented bool,
) (*Detail, error) {
	d := &Detail{
		price:       price,
		isCommented: isCommented,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setOrderID(orderID),
		d.setProductID(productID),
		d.setNumber(number),
	); err != nil {
		return nil, err
	}

	return d, nil
}

func (d *Detail) Validate() error {
	if d == nil {
		return ErrDetailIsNotConstructed
	}
	return d.guard.Validate(ErrDetailIsNotConstructed)
}

func (d *Detail) ID() kernel.ID {
	return d.id
}

// OrderID is the owning order.
func (d *Detail) OrderID() kernel.ID {
	return d.orderID
}

func (d *Detail) ProductID() kernel.ID {
	return d.productID
}

func (d *Detail) Price() kernel.Money {
	return d.price
}

func (d *Detail) Number() int {
	return d.number
}

func (d *Detail) IsCommented() bool {
	return d.isCommented
}

// Total is the line subtotal, price times number.
func (d *Detail) Total() kernel.Money {
	return d.price.Mul(d.number)
}

// BelongsTo reports whether the line is owned by the given order.
func (d *Detail) BelongsTo(orderID kernel.ID) bool {
	return d.orderID.IsEqual(orderID)
}

func (d *Detail) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Detail) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order id", err)
	}
	d.orderID = orderID
	return nil
}

func (d *Detail) setProductID(productID kernel.ID) error {
	if err := productID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("product id", err)
	}
	d.productID = productID
	return nil
}

func (d *Detail) setNumber(number int) error {
	if number <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("number is invalid", fmt.Errorf("%d is not greater than 0", number))
	}
	d.number = number
	return nil
}

// CommentedLabel is the display text of the commented flag.
func (d *Detail) CommentedLabel() string {
	return CommentedLabel(d.isCommented)
}

// CommentedLabel renders a commented flag read outside the aggregate.
func CommentedLabel(commented bool) string {
	if commented {
		return "Yes"
	}
	return "No"
}
