package entity

import (
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/catalog-service/internal/domain/error"
	"github.com/shopspring/decimal"
)

// PriceScale is the number of fractional digits stored for a price
const PriceScale = 2

// Product represents a sellable catalog item with an optional voucher pool
type Product struct {
	ID              uint64
	Name            string
	Slug            string
	Description     string
	Price           decimal.Decimal
	ViewCount       uint64
	CategoryIDs     []uint64
	VoucherEnabled  bool
	VoucherQuantity int64 // Remaining unclaimed vouchers, never negative
	EditLock
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewProduct validates and builds a product that has not been stored yet
func NewProduct(name, slug, description string, price decimal.Decimal, categoryIDs []uint64,
	voucherEnabled bool, voucherQuantity int64) (*Product, error) {
	p := &Product{
		Name:            strings.TrimSpace(name),
		Slug:            strings.TrimSpace(slug),
		Description:     description,
		Price:           price.Round(PriceScale),
		CategoryIDs:     categoryIDs,
		VoucherEnabled:  voucherEnabled,
		VoucherQuantity: voucherQuantity,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks the content fields
func (p *Product) Validate() error {
	if p.Name == "" {
		return errs.NewValidationError("name", "must not be empty")
	}
	if err := ValidateSlug(p.Slug); err != nil {
		return err
	}
	if p.Price.IsNegative() {
		return errs.NewValidationError("price", "must not be negative")
	}
	if p.VoucherQuantity < 0 {
		return errs.NewValidationError("voucher_quantity", "must not be negative")
	}
	return nil
}

// AvailableVouchers returns the number of vouchers a user could still claim
func (p *Product) AvailableVouchers() int64 {
	if !p.VoucherEnabled {
		return 0
	}
	return p.VoucherQuantity
}

// CanIssueVoucher reports whether the pool is enabled and non-empty
func (p *Product) CanIssueVoucher() bool {
	return p.VoucherEnabled && p.VoucherQuantity > 0
}

// ValidateSlug checks that a slug is non-empty and url safe
func ValidateSlug(slug string) error {
	if slug == "" {
		return errs.NewValidationError("slug", "must not be empty")
	}
	for _, r := range slug {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return errs.NewValidationError("slug", "may only contain lowercase letters, digits, '-' and '_'")
		}
	}
	return nil
}
