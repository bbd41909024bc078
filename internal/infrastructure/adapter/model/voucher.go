package model

import (
	"time"
)

// Unique index names; the voucher repository tells pair and code violations apart by them
const (
	VoucherProductUserIndex = "idx_vouchers_product_user"
	VoucherCodeIndex        = "idx_vouchers_code"
)

// Voucher represents the database model for claimed vouchers
type Voucher struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	ProductID uint64    `gorm:"not null;uniqueIndex:idx_vouchers_product_user,priority:1"`
	UserID    uint64    `gorm:"not null;uniqueIndex:idx_vouchers_product_user,priority:2;index:idx_vouchers_user"`
	Code      string    `gorm:"type:varchar(32);not null;uniqueIndex:idx_vouchers_code"`
	CreatedAt time.Time `gorm:"not null"`
	Product   *Product  `gorm:"foreignKey:ProductID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for Voucher
func (Voucher) TableName() string {
	return "vouchers"
}
