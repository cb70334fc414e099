package orderrepo

import (
	"context"
	"errors"
	"time"

	"orderadmin/internal/core/domain/model/kernel"
	"orderadmin/internal/core/domain/model/order"
	"orderadmin/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves an order by ID within the given scope.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.ID, scope order.Scope) (*order.Order, error) {
	return r.get(r.scoped(ctx, scope), id)
}

// GetForUpdate retrieves an order and locks its row until the transaction ends.
// Drivers without row locks, such as SQLite, drop the locking clause; there the
// write lock taken by the first modifying statement serializes transactions instead.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id kernel.ID, scope order.Scope) (*order.Order, error) {
	return r.get(r.scoped(ctx, scope).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

// LockForDelete locks the order row and reads only the columns a deletion needs.
func (r *GormOrderRepository) LockForDelete(ctx context.Context, id kernel.ID, scope order.Scope) (order.Ref, error) {
	if err := id.Validate(); err != nil {
		return order.Ref{}, err
	}

	var row deletionRow
	err := r.scoped(ctx, scope).
		Model(&OrderDTO{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id", "no", "deleted_at").
		Where("id = ?", id.Int64()).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return order.Ref{}, errs.NewObjectNotFoundError("order", id)
		}
		return order.Ref{}, err
	}

	return row.toRef(id), nil
}

// SoftDelete sets deleted_at on an active order.
func (r *GormOrderRepository) SoftDelete(ctx context.Context, id kernel.ID, at time.Time) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", id.Int64()).
		Updates(map[string]any{
			"deleted_at": at,
			"updated_at": at,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id)
	}

	return nil
}

// ForceDelete removes the order row regardless of its soft-delete state.
func (r *GormOrderRepository) ForceDelete(ctx context.Context, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Unscoped().Delete(&OrderDTO{}, "id = ?", id.Int64())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id)
	}

	return nil
}

// Count returns the number of orders visible in scope.
func (r *GormOrderRepository) Count(ctx context.Context, scope order.Scope) (int64, error) {
	var count int64
	if err := r.scoped(ctx, scope).Model(&OrderDTO{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ListSoftDeletedBefore returns ids of orders soft-deleted before cutoff, oldest first.
func (r *GormOrderRepository) ListSoftDeletedBefore(
	ctx context.Context,
	cutoff time.Time,
	limit int,
) ([]kernel.ID, error) {
	var raw []int64
	err := r.db.WithContext(ctx).
		Unscoped().
		Model(&OrderDTO{}).
		Where("deleted_at IS NOT NULL AND deleted_at < ?", cutoff).
		Order("deleted_at ASC, id ASC").
		Limit(limit).
		Pluck("id", &raw).Error
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.ID, 0, len(raw))
	for _, v := range raw {
		id, idErr := kernel.NewID(v)
		if idErr != nil {
			return nil, idErr
		}
		ids = append(ids, id)
	}

	return ids, nil
}

func (r *GormOrderRepository) scoped(ctx context.Context, scope order.Scope) *gorm.DB {
	db := r.db.WithContext(ctx)
	if scope == order.IncludeSoftDeleted {
		return db.Unscoped()
	}
	return db
}

func (r *GormOrderRepository) get(db *gorm.DB, id kernel.ID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := db.First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, err
	}

	return toDomain(dto)
}
