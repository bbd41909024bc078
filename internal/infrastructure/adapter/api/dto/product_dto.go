package dto

import (
	"time"

	"github.com/amirhossein-jamali/catalog-service/internal/domain/entity"
	"github.com/amirhossein-jamali/catalog-service/internal/domain/port/usecase"
)

// CreateProductRequest represents the API request for creating a product
type CreateProductRequest struct {
	Name            string   `json:"name" binding:"required"`
	Slug            string   `json:"slug" binding:"required"`
	Description     string   `json:"description"`
	Price           string   `json:"price" binding:"required"`
	CategoryIDs     []uint64 `json:"category_ids"`
	VoucherEnabled  bool     `json:"voucher_enabled"`
	VoucherQuantity int64    `json:"voucher_quantity" binding:"gte=0"`
}

// UpdateProductRequest represents a partial product update; absent fields are kept
type UpdateProductRequest struct {
	Name           *string   `json:"name"`
	Slug           *string   `json:"slug"`
	Description    *string   `json:"description"`
	Price          *string   `json:"price"`
	CategoryIDs    *[]uint64 `json:"category_ids"`
	VoucherEnabled *bool     `json:"voucher_enabled"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID                uint64     `json:"id"`
	Name              string     `json:"name"`
	Slug              string     `json:"slug"`
	Description       string     `json:"description"`
	Price             string     `json:"price"`
	ViewCount         uint64     `json:"view_count"`
	CategoryIDs       []uint64   `json:"category_ids"`
	VoucherEnabled    bool       `json:"voucher_enabled"`
	VoucherQuantity   int64      `json:"voucher_quantity"`
	AvailableVouchers int64      `json:"available_vouchers"`
	UserHasClaimed    *bool      `json:"user_has_claimed,omitempty"`
	EditingUser       *uint64    `json:"editing_user"`
	EditLockTime      *time.Time `json:"edit_lock_time"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// ToInput converts the request to use case input
func (r CreateProductRequest) ToInput() usecase.CreateProductInput {
	return usecase.CreateProductInput{
		Name:            r.Name,
		Slug:            r.Slug,
		Description:     r.Description,
		Price:           r.Price,
		CategoryIDs:     r.CategoryIDs,
		VoucherEnabled:  r.VoucherEnabled,
		VoucherQuantity: r.VoucherQuantity,
	}
}

// ToInput converts the request to use case input
func (r UpdateProductRequest) ToInput() usecase.UpdateProductInput {
	return usecase.UpdateProductInput{
		Name:           r.Name,
		Slug:           r.Slug,
		Description:    r.Description,
		Price:          r.Price,
		CategoryIDs:    r.CategoryIDs,
		VoucherEnabled: r.VoucherEnabled,
	}
}

// NewProductResponse converts a product entity
func NewProductResponse(p *entity.Product) ProductResponse {
	categoryIDs := p.CategoryIDs
	if categoryIDs == nil {
		categoryIDs = []uint64{}
	}
	return ProductResponse{
		ID:                p.ID,
		Name:              p.Name,
		Slug:              p.Slug,
		Description:       p.Description,
		Price:             p.Price.StringFixed(entity.PriceScale),
		ViewCount:         p.ViewCount,
		CategoryIDs:       categoryIDs,
		VoucherEnabled:    p.VoucherEnabled,
		VoucherQuantity:   p.VoucherQuantity,
		AvailableVouchers: p.AvailableVouchers(),
		EditingUser:       p.EditingUser,
		EditLockTime:      p.EditLockTime,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

// NewProductDetailResponse converts a product as seen by one user
func NewProductDetailResponse(d *usecase.ProductDetail) ProductResponse {
	resp := NewProductResponse(d.Product)
	resp.AvailableVouchers = d.AvailableVouchers
	claimed := d.UserHasClaimed
	resp.UserHasClaimed = &claimed
	return resp
}

// NewProductListResponse converts a page of products
func NewProductListResponse(products []*entity.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, NewProductResponse(p))
	}
	return out
}
