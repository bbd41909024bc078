package persistence

import (
	"context"

	"github.com/amirhossein-jamali/catalog-service/internal/domain/entity"
)

// VoucherRepository defines essential methods to interact with voucher data
type VoucherRepository interface {
	// Create inserts a voucher, filling ID and CreatedAt
	//
	// Possible errors:
	// - ErrVoucherAlreadyClaimed: If (product, user) already has a voucher
	// - ErrVoucherCodeCollision: If the code is already used
	// - ErrProductNotFound: If the product doesn't exist
	Create(ctx context.Context, voucher *entity.Voucher) error

	// GetByProductAndUser returns the voucher a user owns for a product
	//
	// Possible errors:
	// - ErrVoucherNotFound: If none exists
	GetByProductAndUser(ctx context.Context, productID, userID uint64) (*entity.Voucher, error)

	// GetByIDForUser returns a voucher only when it belongs to userID
	//
	// Possible errors:
	// - ErrVoucherNotFound: If it doesn't exist or belongs to another user
	GetByIDForUser(ctx context.Context, id, userID uint64) (*entity.Voucher, error)

	// ExistsForProductAndUser reports whether the user owns a voucher for the product
	ExistsForProductAndUser(ctx context.Context, productID, userID uint64) (bool, error)

	// ListByUser returns the user's vouchers, newest first
	ListByUser(ctx context.Context, userID uint64) ([]*entity.Voucher, error)
}
