package queries

import (
	"context"
	"errors"

	"orderadmin/internal/core/domain/model/kernel"
	"orderadmin/internal/core/domain/model/order"
	"orderadmin/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads a single order for the detail view.
type GetOrderQueryHandler struct {
	db    *gorm.DB
	users UserDirectory
}

func NewGetOrderQueryHandler(db *gorm.DB, users UserDirectory) GetOrderQueryHandler {
	return GetOrderQueryHandler{
		db:    db,
		users: users,
	}
}

type lineRecord struct {
	ID          int64
	ProductID   int64
	ProductName *string
	Price       decimal.Decimal
	Number      int
	IsCommented bool
}

// Handle returns the order and its lines. Soft-deleted orders are returned as well;
// a missing order yields *errs.ObjectNotFoundError. Lines referencing a product that
// no longer exists carry an empty product name.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	db := h.db.WithContext(ctx)
	id := query.OrderID()

	var record orderRecord
	if err := db.Table("orders").Where("id = ?", id.Int64()).Take(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", id)
		}
		return GetOrderQueryResponse{}, err
	}

	var lines []lineRecord
	err := db.Table("order_details AS d").
		Select("d.id, d.product_id, p.name AS product_name, d.price, d.number, d.is_commented").
		Joins("LEFT JOIN products p ON p.id = d.product_id").
		Where("d.order_id = ?", id.Int64()).
		Order("d.id").
		Scan(&lines).Error
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	names, err := h.users.NamesByIDs(ctx, []int64{record.UserID})
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	response := GetOrderQueryResponse{
		OrderSummary: record.summary(names[record.UserID]),
		Details:      make([]OrderLine, 0, len(lines)),
	}
	for _, l := range lines {
		response.Details = append(response.Details, l.orderLine())
	}

	return response, nil
}

func (l lineRecord) orderLine() OrderLine {
	var productName string
	if l.ProductName != nil {
		productName = *l.ProductName
	}

	price := kernel.Money{}
	if m, err := kernel.NewMoney(l.Price); err == nil {
		price = m
	}

	return OrderLine{
		ID:          l.ID,
		ProductID:   l.ProductID,
		ProductName: productName,
		Price:       price.String(),
		Number:      l.Number,
		IsCommented: l.IsCommented,
		Commented:   order.CommentedLabel(l.IsCommented),
		Subtotal:    price.Mul(l.Number).String(),
	}
}
