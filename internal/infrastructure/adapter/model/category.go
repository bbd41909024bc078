package model

import (
	"time"
)

// Category represents the database model for categories
type Category struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement"`
	Name          string    `gorm:"type:varchar(100);not null"`
	Slug          string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_categories_slug"`
	Description   string    `gorm:"type:text"`
	ParentID      *uint64   `gorm:"index"`
	Parent        *Category `gorm:"foreignKey:ParentID;references:ID;constraint:OnDelete:SET NULL"`
	EditingUserID *uint64   `gorm:"index:idx_categories_editing_user"`
	EditLockTime  *time.Time
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

// TableName specifies the table name for Category
func (Category) TableName() string {
	return "categories"
}
