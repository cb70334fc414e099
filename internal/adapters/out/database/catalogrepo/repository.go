package catalogrepo

import (
	"context"

	"orderadmin/internal/pkg/like"

	"gorm.io/gorm"
)

// GormUserDirectory resolves user names straight from the users table.
type GormUserDirectory struct {
	db *gorm.DB
}

func NewGormUserDirectory(db *gorm.DB) *GormUserDirectory {
	return &GormUserDirectory{db: db}
}

// NamesByIDs returns the names of the given users. Unknown ids are absent from the map.
func (d *GormUserDirectory) NamesByIDs(ctx context.Context, ids []int64) (map[int64]string, error) {
	names := make(map[int64]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	var users []UserDTO
	if err := d.db.WithContext(ctx).Select("id", "name").Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}

	for _, u := range users {
		names[u.ID] = u.Name
	}

	return names, nil
}

// IDsByNameLike returns the ids of users whose name contains fragment.
func (d *GormUserDirectory) IDsByNameLike(ctx context.Context, fragment string) ([]int64, error) {
	var ids []int64
	err := d.db.WithContext(ctx).
		Model(&UserDTO{}).
		Where("name"+like.Condition, like.Contains(fragment)).
		Order("id").
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}

	return ids, nil
}

// AddUsers and AddProducts seed reference data for tests and local development.
func AddUsers(ctx context.Context, db *gorm.DB, users ...UserDTO) error {
	if len(users) == 0 {
		return nil
	}
	return db.WithContext(ctx).Create(&users).Error
}

func AddProducts(ctx context.Context, db *gorm.DB, products ...ProductDTO) error {
	if len(products) == 0 {
		return nil
	}
	return db.WithContext(ctx).Create(&products).Error
}
