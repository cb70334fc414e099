// Package detailrepo persists order detail lines. Lines have no soft-delete state of
// their own: they live exactly as long as their order row.
package detailrepo

import (
	"orderadmin/internal/core/domain/model/kernel"
	"orderadmin/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDetailDTO represents one line of an order in the order_details table.
type OrderDetailDTO struct {
	ID          int64           `gorm:"primaryKey"`
	OrderID     int64           `gorm:"index;not null"`
	ProductID   int64           `gorm:"index"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2)"`
	Number      int
	IsCommented bool
}

func (OrderDetailDTO) TableName() string {
	return "order_details"
}

func fromDomain(d *order.Detail) OrderDetailDTO {
	return OrderDetailDTO{
		ID:          d.ID().Int64(),
		OrderID:     d.OrderID().Int64(),
		ProductID:   d.ProductID().Int64(),
		Price:       d.Price().Decimal(),
		Number:      d.Number(),
		IsCommented: d.IsCommented(),
	}
}

func toDomain(dto OrderDetailDTO) (*order.Detail, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.NewID(dto.OrderID)
	if err != nil {
		return nil, err
	}

	productID, err := kernel.NewID(dto.ProductID)
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return order.NewDetail(id, orderID, productID, price, dto.Number, dto.IsCommented)
}
