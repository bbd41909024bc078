package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents the database model for products
type Product struct {
	ID              uint64          `gorm:"primaryKey;autoIncrement"`
	Name            string          `gorm:"type:varchar(200);not null"`
	Slug            string          `gorm:"type:varchar(200);not null;uniqueIndex:idx_products_slug"`
	Description     string          `gorm:"type:text"`
	Price           decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	ViewCount       uint64          `gorm:"not null;default:0"`
	VoucherEnabled  bool            `gorm:"not null;default:false"`
	VoucherQuantity int64           `gorm:"not null;default:0;check:chk_products_voucher_quantity,voucher_quantity >= 0"`
	EditingUserID   *uint64         `gorm:"index:idx_products_editing_user"`
	EditLockTime    *time.Time
	CreatedAt       time.Time `gorm:"not null"`
	UpdatedAt       time.Time `gorm:"not null"`
}

// TableName specifies the table name for Product
func (Product) TableName() string {
	return "products"
}
