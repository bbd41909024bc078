package usecase

import (
	"context"

	"github.com/amirhossein-jamali/catalog-service/internal/domain/entity"
)

// VoucherUseCase allocates vouchers from per-product pools
type VoucherUseCase interface {
	// Claim issues one voucher of productID to userID
	//
	// Possible errors:
	// - ErrProductNotFound
	// - ErrVoucherNotEnabled: the product does not hand out vouchers
	// - AlreadyClaimedError (ErrVoucherAlreadyClaimed): carries the existing voucher
	// - ErrVoucherExhausted: the pool is empty
	Claim(ctx context.Context, productID, userID uint64) (*entity.Voucher, error)

	// ListForUser returns the user's vouchers, newest first
	ListForUser(ctx context.Context, userID uint64) ([]*entity.Voucher, error)

	// GetForUser returns one of the user's vouchers. Vouchers of other users
	// are reported as ErrVoucherNotFound.
	GetForUser(ctx context.Context, id, userID uint64) (*entity.Voucher, error)
}
