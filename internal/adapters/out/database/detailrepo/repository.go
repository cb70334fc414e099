package detailrepo

import (
	"context"

	"orderadmin/internal/core/domain/model/kernel"
	"orderadmin/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GormOrderDetailRepository implements OrderDetailRepository using GORM.
type GormOrderDetailRepository struct {
	db *gorm.DB
}

func NewGormOrderDetailRepository(db *gorm.DB) *GormOrderDetailRepository {
	return &GormOrderDetailRepository{db: db}
}

// AddAll inserts all lines with one statement. An empty slice is a no-op.
func (r *GormOrderDetailRepository) AddAll(ctx context.Context, details []*order.Detail) error {
	if len(details) == 0 {
		return nil
	}

	dtos := make([]OrderDetailDTO, 0, len(details))
	for _, d := range details {
		if err := d.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(d))
	}

	return r.db.WithContext(ctx).Create(&dtos).Error
}

func (r *GormOrderDetailRepository) ListByOrder(ctx context.Context, orderID kernel.ID) ([]*order.Detail, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDetailDTO
	if err := r.db.WithContext(ctx).Where("order_id = ?", orderID.Int64()).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	details := make([]*order.Detail, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		details = append(details, d)
	}

	return details, nil
}

// DeleteByOrder removes every line of the order in a single statement.
// Zero removed rows is not an error: an order may have no lines.
func (r *GormOrderDetailRepository) DeleteByOrder(ctx context.Context, orderID kernel.ID) (int64, error) {
	if err := orderID.Validate(); err != nil {
		return 0, err
	}

	result := r.db.WithContext(ctx).Where("order_id = ?", orderID.Int64()).Delete(&OrderDetailDTO{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

func (r *GormOrderDetailRepository) CountByOrder(ctx context.Context, orderID kernel.ID) (int64, error) {
	if err := orderID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&OrderDetailDTO{}).Where("order_id = ?", orderID.Int64()).Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
