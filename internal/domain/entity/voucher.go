package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// VoucherCodePrefix starts every generated voucher code
const VoucherCodePrefix = "VCH-"

// voucherCodeLength is the number of random characters after the prefix
const voucherCodeLength = 12

// Voucher is a single claimed discount code bound to one product and one user
type Voucher struct {
	ID        uint64
	ProductID uint64
	UserID    uint64
	Code      string
	CreatedAt time.Time
}

// NewVoucherCode returns a fresh random code such as VCH-3F9A1C0B7D2E.
// Uniqueness is finally enforced by the store.
func NewVoucherCode() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return VoucherCodePrefix + strings.ToUpper(raw[:voucherCodeLength])
}
