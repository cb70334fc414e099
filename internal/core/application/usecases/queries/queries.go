// Package queries contains read-only operations of the order administration panel.
// Handlers read straight from the database and return flat response structs; soft-deleted
// orders are always part of the result, as administrators need to see them.
package queries

import (
	"context"
	"time"

	"orderadmin/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// UserDirectory resolves the users referenced by orders.
type UserDirectory interface {
	// NamesByIDs returns user names keyed by id; unknown ids are absent.
	NamesByIDs(ctx context.Context, ids []int64) (map[int64]string, error)

	// IDsByNameLike returns ids of users whose name contains fragment.
	IDsByNameLike(ctx context.Context, fragment string) ([]int64, error)
}

// OrderSummary is one order as shown to administrators, with display labels resolved.
type OrderSummary struct {
	ID               int64      `json:"id"`
	No               string     `json:"no"`
	UserID           int64      `json:"user_id"`
	UserName         string     `json:"user_name"`
	Total            string     `json:"total"`
	Status           string     `json:"status"`
	Type             string     `json:"type"`
	PayNo            string     `json:"pay_no"`
	PayTime          *time.Time `json:"pay_time"`
	ConsigneeName    string     `json:"consignee_name"`
	ConsigneePhone   string     `json:"consignee_phone"`
	ConsigneeAddress string     `json:"consignee_address"`
	PayRefundFee     string     `json:"pay_refund_fee"`
	PayTradeNo       string     `json:"pay_trade_no"`
	Lifecycle        string     `json:"lifecycle"`
	Deleted          bool       `json:"deleted"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
	DeletedAt        *time.Time `json:"deleted_at"`
}

// orderRecord maps a row of the orders table. DeletedAt is a plain pointer so
// that GORM applies no soft-delete filtering to these reads.
type orderRecord struct {
	ID               int64
	No               string
	UserID           int64
	Total            decimal.Decimal
	Status           int
	Type             int
	PayNo            string
	PayTime          *time.Time
	ConsigneeName    string
	ConsigneePhone   string
	ConsigneeAddress string
	PayRefundFee     decimal.Decimal
	PayTradeNo       string
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        *time.Time
}

func (r orderRecord) summary(userName string) OrderSummary {
	lifecycle := order.Active
	if r.DeletedAt != nil {
		lifecycle = order.SoftDeleted
	}

	return OrderSummary{
		ID:               r.ID,
		No:               r.No,
		UserID:           r.UserID,
		UserName:         userName,
		Total:            r.Total.StringFixed(2),
		Status:           order.Status(r.Status).String(),
		Type:             order.Type(r.Type).String(),
		PayNo:            r.PayNo,
		PayTime:          r.PayTime,
		ConsigneeName:    r.ConsigneeName,
		ConsigneePhone:   r.ConsigneePhone,
		ConsigneeAddress: r.ConsigneeAddress,
		PayRefundFee:     r.PayRefundFee.StringFixed(2),
		PayTradeNo:       r.PayTradeNo,
		Lifecycle:        lifecycle.String(),
		Deleted:          lifecycle == order.SoftDeleted,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
		DeletedAt:        r.DeletedAt,
	}
}
