package voucher

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/catalog-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/catalog-service/internal/domain/error"
)

// Claim issues one voucher of productID to userID.
//
// The cheap checks run first without locks. The allocation itself runs in one
// transaction holding the product row lock, so the pool never goes below zero
// and concurrent claimants see each other's decrements. The (product, user)
// unique index settles races between two claims of the same user.
func (s *Service) Claim(ctx context.Context, productID, userID uint64) (*entity.Voucher, error) {
	if userID == 0 {
		return nil, errs.ErrUnauthenticated
	}
	if productID == 0 {
		return nil, errs.ErrInvalidEntityID
	}

	if err := s.precheck(ctx, productID, userID); err != nil {
		return nil, err
	}

	for attempt := 1; ; attempt++ {
		voucher, err := s.claimOnce(ctx, productID, userID)
		switch {
		case err == nil:
			s.logger.Info("Voucher claimed", map[string]any{
				"voucher_id": voucher.ID,
				"product_id": productID,
				"user_id":    userID,
				"attempt":    attempt,
			})
			return voucher, nil

		case errors.Is(err, errs.ErrVoucherCodeCollision):
			if attempt >= s.codeAttempts {
				s.logger.Error("Could not generate a unique voucher code", map[string]any{
					"product_id": productID,
					"user_id":    userID,
					"attempts":   attempt,
				})
				return nil, fmt.Errorf("%w: voucher code space exhausted after %d attempts", errs.ErrInternalServer, attempt)
			}
			s.logger.Warn("Voucher code collision, retrying with a new code", map[string]any{
				"product_id": productID,
				"attempt":    attempt,
			})

		case errors.Is(err, errs.ErrVoucherAlreadyClaimed):
			return nil, s.alreadyClaimed(ctx, productID, userID)

		default:
			if errs.IsVoucherError(err) {
				s.logger.Info("Voucher claim refused", map[string]any{
					"product_id": productID,
					"user_id":    userID,
					"reason":     errs.Reason(err),
				})
			}
			return nil, err
		}
	}
}

// precheck rejects claims that cannot succeed without touching any lock
func (s *Service) precheck(ctx context.Context, productID, userID uint64) error {
	product, err := s.uow.GetProductRepository(ctx).GetByID(ctx, productID)
	if err != nil {
		return err
	}
	if !product.VoucherEnabled {
		return errs.ErrVoucherNotEnabled
	}

	existing, err := s.uow.GetVoucherRepository(ctx).GetByProductAndUser(ctx, productID, userID)
	switch {
	case err == nil:
		return errs.NewAlreadyClaimedError(productID, userID, existing)
	case errors.Is(err, errs.ErrVoucherNotFound):
		return nil
	default:
		return err
	}
}

// claimOnce runs the locked allocation with a single generated code
func (s *Service) claimOnce(ctx context.Context, productID, userID uint64) (*entity.Voucher, error) {
	var claimed *entity.Voucher

	err := s.uow.Execute(ctx, func(ctx context.Context) error {
		products := s.uow.GetProductRepository(ctx)

		product, err := products.GetByIDForUpdate(ctx, productID)
		if err != nil {
			return err
		}
		if !product.VoucherEnabled {
			return errs.ErrVoucherNotEnabled
		}
		if !product.CanIssueVoucher() {
			return errs.ErrVoucherExhausted
		}

		voucher := &entity.Voucher{
			ProductID: productID,
			UserID:    userID,
			Code:      s.newCode(),
		}
		if err := s.uow.GetVoucherRepository(ctx).Create(ctx, voucher); err != nil {
			return err
		}
		if err := products.DecrementVoucherQuantity(ctx, productID); err != nil {
			return err
		}

		claimed = voucher
		return nil
	})
	if err != nil {
		return nil, err
	}
	return claimed, nil
}

// alreadyClaimed builds the AlreadyClaimed error, re-reading the winning voucher
// once the losing transaction is rolled back
func (s *Service) alreadyClaimed(ctx context.Context, productID, userID uint64) error {
	existing, err := s.uow.GetVoucherRepository(ctx).GetByProductAndUser(ctx, productID, userID)
	if err != nil {
		s.logger.Warn("Claimed voucher could not be re-read", map[string]any{
			"product_id": productID,
			"user_id":    userID,
			"error":      err.Error(),
		})
		return errs.NewAlreadyClaimedError(productID, userID, nil)
	}
	return errs.NewAlreadyClaimedError(productID, userID, existing)
}
