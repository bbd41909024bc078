package dto

import (
	"time"

	"github.com/amirhossein-jamali/catalog-service/internal/domain/entity"
)

// VoucherResponse represents a claimed voucher
type VoucherResponse struct {
	ID        uint64    `json:"id"`
	Product   uint64    `json:"product"`
	User      uint64    `json:"user"`
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"created_at"`
}

// NewVoucherResponse converts a voucher entity
func NewVoucherResponse(v *entity.Voucher) *VoucherResponse {
	return &VoucherResponse{
		ID:        v.ID,
		Product:   v.ProductID,
		User:      v.UserID,
		Code:      v.Code,
		CreatedAt: v.CreatedAt,
	}
}

// NewVoucherListResponse converts a list of vouchers
func NewVoucherListResponse(vouchers []*entity.Voucher) []*VoucherResponse {
	out := make([]*VoucherResponse, 0, len(vouchers))
	for _, v := range vouchers {
		out = append(out, NewVoucherResponse(v))
	}
	return out
}
