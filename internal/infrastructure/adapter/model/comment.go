package model

import (
	"time"
)

// Comment represents the database model for product comments
type Comment struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	ProductID uint64    `gorm:"not null;index:idx_comments_product_created,priority:1"`
	UserID    uint64    `gorm:"not null;index:idx_comments_user"`
	Body      string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null;index:idx_comments_product_created,priority:2"`
	UpdatedAt time.Time `gorm:"not null"`
	Product   *Product  `gorm:"foreignKey:ProductID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for Comment
func (Comment) TableName() string {
	return "comments"
}
