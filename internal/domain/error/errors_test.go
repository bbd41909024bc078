package error

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBaseErrorTypes(t *testing.T) {
	assert.Equal(t, "product not found", ErrProductNotFound.Error())
	assert.Equal(t, "no vouchers left for this product", ErrVoucherExhausted.Error())
	assert.Equal(t, "entity is being edited by another user", ErrEditLocked.Error())
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"ProductNotFound", ErrProductNotFound, 4041},
		{"CategoryNotFound", ErrCategoryNotFound, 4042},
		{"NotFound", ErrNotFound, 4040},
		{"EditLocked", ErrEditLocked, 4230},
		{"LockNotHeld", ErrLockNotHeld, 4030},
		{"NotOwner", ErrNotOwner, 4031},
		{"CommentNotFound", ErrCommentNotFound, 4044},
		{"TypedOwnership", NewOwnershipError("comment", 1, 2, 3), 4031},
		{"VoucherNotEnabled", ErrVoucherNotEnabled, 4101},
		{"VoucherClaimed", ErrVoucherAlreadyClaimed, 4102},
		{"VoucherExhausted", ErrVoucherExhausted, 4103},
		{"DuplicateSlug", ErrDuplicateSlug, 4091},
		{"InvalidEntityID", ErrInvalidEntityID, 4003},
		{"Unauthenticated", ErrUnauthenticated, 4010},
		{"ConstraintViolation", ErrConstraintViolation, 4005},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrProductNotFound), 4041},
		{"TypedConflict", NewEditLockConflictError("product", 1, 2, time.Now()), 4230},
		{"TypedValidation", NewValidationError("name", "empty"), 4000},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ErrorCode(tc.err))
		})
	}
}

func TestReason(t *testing.T) {
	assert.Equal(t, ReasonVoucherNotEnabled, Reason(ErrVoucherNotEnabled))
	assert.Equal(t, ReasonVoucherExhausted, Reason(fmt.Errorf("claim: %w", ErrVoucherExhausted)))
	assert.Equal(t, ReasonVoucherAlreadyClaimed, Reason(NewAlreadyClaimedError(1, 2, nil)))
	assert.Empty(t, Reason(ErrProductNotFound))
	assert.True(t, IsVoucherError(ErrVoucherExhausted))
	assert.False(t, IsVoucherError(ErrEditLocked))
}

func TestEditLockConflictError(t *testing.T) {
	expiry := time.Date(2024, 5, 1, 10, 5, 0, 0, time.UTC)
	err := NewEditLockConflictError("product", 7, 42, expiry)

	assert.Equal(t, "product 7 is being edited by user 42 until 2024-05-01T10:05:00Z", err.Error())
	assert.True(t, errors.Is(err, ErrEditLocked))
	assert.True(t, IsEditLockedError(fmt.Errorf("update: %w", err)))
	assert.False(t, errors.Is(err, ErrLockNotHeld))

	var conflict *EditLockConflictError
	assert.True(t, errors.As(err, &conflict))
	assert.Equal(t, uint64(42), conflict.Holder)
	assert.Equal(t, expiry, conflict.ExpiresAt)

	fields := conflict.LogFields()
	assert.Equal(t, "edit_lock_conflict", fields["error_type"])
	assert.Equal(t, uint64(7), fields["entity_id"])
	assert.Equal(t, CodeEditLocked, fields["error_code"])
}

func TestLockOwnershipError(t *testing.T) {
	err := NewLockOwnershipError("category", 3, 9, 4)

	assert.Equal(t, "user 9 cannot release category 3: lock held by user 4", err.Error())
	assert.True(t, errors.Is(err, ErrLockNotHeld))
	assert.Equal(t, CodeLockNotHeld, ErrorCode(err))
}

func TestAlreadyClaimedError(t *testing.T) {
	existing := struct{ Code string }{Code: "VCH-ABC"}
	err := NewAlreadyClaimedError(5, 6, existing)

	assert.True(t, errors.Is(err, ErrVoucherAlreadyClaimed))

	var claimed *AlreadyClaimedError
	assert.True(t, errors.As(err, &claimed))
	assert.Equal(t, existing, claimed.Voucher)
	assert.Equal(t, uint64(5), claimed.LogFields()["product_id"])
}

func TestIsNotFoundError(t *testing.T) {
	assert.True(t, IsNotFoundError(ErrNotFound))
	assert.True(t, IsNotFoundError(ErrProductNotFound))
	assert.True(t, IsNotFoundError(fmt.Errorf("x: %w", ErrCategoryNotFound)))
	assert.True(t, IsNotFoundError(ErrVoucherNotFound))
	assert.False(t, IsNotFoundError(ErrEditLocked))
}

func TestLogFields(t *testing.T) {
	fields := LogFields(NewValidationError("slug", "must not be empty"))
	assert.Equal(t, "validation", fields["error_type"])
	assert.Equal(t, "slug", fields["field"])

	plain := LogFields(errors.New("boom"))
	assert.Equal(t, "boom", plain["error"])
	assert.Equal(t, CodeInternalServer, plain["error_code"])
}

func TestOwnershipError(t *testing.T) {
	err := NewOwnershipError("comment", 5, 9, 4)

	assert.Equal(t, "user 9 cannot modify comment 5 owned by user 4", err.Error())
	assert.ErrorIs(t, err, ErrNotOwner)
	assert.NotErrorIs(t, err, ErrLockNotHeld)
	assert.True(t, IsNotFoundError(fmt.Errorf("get: %w", ErrCommentNotFound)))

	fields := LogFields(err)
	assert.Equal(t, "ownership", fields["error_type"])
	assert.Equal(t, uint64(4), fields["owner_id"])
	assert.Equal(t, CodeNotOwner, fields["error_code"])
}
