// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// Orders use a nullable deleted_at column for soft deletion; the repository switches to
// unscoped statements whenever soft-deleted rows must be visible or removed.
package orderrepo

import (
	"time"

	"orderadmin/internal/core/domain/model/kernel"
	"orderadmin/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID               int64           `gorm:"primaryKey"`
	No               string          `gorm:"size:64;uniqueIndex"`
	UserID           int64           `gorm:"index"`
	Total            decimal.Decimal `gorm:"type:decimal(10,2)"`
	Status           int
	Type             int
	PayNo            string     `gorm:"size:64"`
	PayTime          *time.Time `gorm:"column:pay_time"`
	ConsigneeName    string     `gorm:"size:64"`
	ConsigneePhone   string     `gorm:"size:32"`
	ConsigneeAddress string
	PayRefundFee     decimal.Decimal `gorm:"type:decimal(10,2)"`
	PayTradeNo       string          `gorm:"size:64"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// deletionRow holds the columns LockForDelete reads.
type deletionRow struct {
	ID        int64
	No        string
	DeletedAt *time.Time
}

func (r deletionRow) toRef(id kernel.ID) order.Ref {
	return order.Ref{ID: id, No: r.No, DeletedAt: r.DeletedAt}
}

func fromDomain(o *order.Order) OrderDTO {
	var deletedAt gorm.DeletedAt
	if at := o.DeletedAt(); at != nil {
		deletedAt = gorm.DeletedAt{Time: *at, Valid: true}
	}

	return OrderDTO{
		ID:               o.ID().Int64(),
		No:               o.No(),
		UserID:           o.UserID().Int64(),
		Total:            o.Total().Decimal(),
		Status:           int(o.Status()),
		Type:             int(o.Type()),
		PayNo:            o.Payment().No,
		PayTime:          o.Payment().PaidAt,
		ConsigneeName:    o.Consignee().Name,
		ConsigneePhone:   o.Consignee().Phone,
		ConsigneeAddress: o.Consignee().Address,
		PayRefundFee:     o.Payment().RefundFee.Decimal(),
		PayTradeNo:       o.Payment().RefundTrade,
		CreatedAt:        o.CreatedAt(),
		UpdatedAt:        o.UpdatedAt(),
		DeletedAt:        deletedAt,
	}
}

// toDomain reconstructs the aggregate using RestoreOrder, so a corrupt row
// surfaces as a validation error instead of a half-built order.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	userID, err := kernel.NewID(dto.UserID)
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}

	refund, err := kernel.NewMoney(dto.PayRefundFee)
	if err != nil {
		return nil, err
	}

	var deletedAt *time.Time
	if dto.DeletedAt.Valid {
		at := dto.DeletedAt.Time
		deletedAt = &at
	}

	return order.RestoreOrder(order.Snapshot{
		ID:     id,
		No:     dto.No,
		UserID: userID,
		Total:  total,
		Status: order.Status(dto.Status),
		Type:   order.Type(dto.Type),
		Payment: order.Payment{
			No:          dto.PayNo,
			PaidAt:      dto.PayTime,
			RefundFee:   refund,
			RefundTrade: dto.PayTradeNo,
		},
		Consignee: order.Consignee{
			Name:    dto.ConsigneeName,
			Phone:   dto.ConsigneePhone,
			Address: dto.ConsigneeAddress,
		},
		CreatedAt: dto.CreatedAt,
		UpdatedAt: dto.UpdatedAt,
		DeletedAt: deletedAt,
	})
}
