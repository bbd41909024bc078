package entity

import (
	"errors"
	"testing"

	errs "github.com/amirhossein-jamali/catalog-service/internal/domain/error"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	t.Run("Valid product", func(t *testing.T) {
		p, err := NewProduct(" Phone ", "phone-x", "desc", decimal.RequireFromString("199.999"), []uint64{1}, true, 10)

		require.NoError(t, err)
		assert.Equal(t, "Phone", p.Name)
		assert.Equal(t, "phone-x", p.Slug)
		assert.Equal(t, "200", p.Price.String())
		assert.Equal(t, []uint64{1}, p.CategoryIDs)
		assert.Equal(t, int64(10), p.VoucherQuantity)
		assert.False(t, p.IsSet())
	})

	t.Run("Invalid input", func(t *testing.T) {
		testCases := []struct {
			name     string
			pName    string
			slug     string
			price    string
			quantity int64
			field    string
		}{
			{"Empty name", "", "a", "1", 0, "name"},
			{"Empty slug", "A", "", "1", 0, "slug"},
			{"Bad slug", "A", "Has Space", "1", 0, "slug"},
			{"Negative price", "A", "a", "-1", 0, "price"},
			{"Negative quantity", "A", "a", "1", -1, "voucher_quantity"},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				p, err := NewProduct(tc.pName, tc.slug, "", decimal.RequireFromString(tc.price), nil, false, tc.quantity)

				assert.Nil(t, p)
				assert.True(t, errors.Is(err, errs.ErrInvalidRequest))
				var ve *errs.ValidationError
				require.True(t, errors.As(err, &ve))
				assert.Equal(t, tc.field, ve.Field)
			})
		}
	})
}

func TestProduct_AvailableVouchers(t *testing.T) {
	p := &Product{VoucherEnabled: true, VoucherQuantity: 3}
	assert.Equal(t, int64(3), p.AvailableVouchers())
	assert.True(t, p.CanIssueVoucher())

	p.VoucherEnabled = false
	assert.Equal(t, int64(0), p.AvailableVouchers())
	assert.False(t, p.CanIssueVoucher())

	p.VoucherEnabled = true
	p.VoucherQuantity = 0
	assert.False(t, p.CanIssueVoucher())
}

func TestNewCategory(t *testing.T) {
	c, err := NewCategory("Phones", "phones", "", nil)
	require.NoError(t, err)
	assert.Equal(t, "Phones", c.Name)

	_, err = NewCategory("", "phones", "", nil)
	assert.ErrorIs(t, err, errs.ErrInvalidRequest)

	self := uint64(4)
	existing := &Category{ID: 4, Name: "A", Slug: "a", ParentID: &self}
	assert.ErrorIs(t, existing.Validate(), errs.ErrInvalidRequest)
}

func TestVoucherCode(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		code := NewVoucherCode()
		assert.Regexp(t, `^VCH-[0-9A-F]{12}$`, code)
		seen[code] = struct{}{}
	}
	assert.Len(t, seen, 100)
}
