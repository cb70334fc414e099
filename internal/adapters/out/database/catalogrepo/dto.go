// Package catalogrepo reads the users and products tables that order administration
// only references. Both tables are owned by the storefront; nothing here writes to
// them except test seeding.
package catalogrepo

import "time"

// UserDTO is the subset of the users table needed to label orders.
type UserDTO struct {
	ID        int64  `gorm:"primaryKey"`
	Name      string `gorm:"size:255;index"`
	Email     string `gorm:"size:255"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (UserDTO) TableName() string {
	return "users"
}

// ProductDTO is the subset of the products table needed to label order details.
type ProductDTO struct {
	ID        int64  `gorm:"primaryKey"`
	Name      string `gorm:"size:255"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ProductDTO) TableName() string {
	return "products"
}
