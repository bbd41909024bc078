package error

import (
	"errors"
	"fmt"
	"time"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidRequest      = 4000
	CodeUnauthenticated     = 4010
	CodeLockNotHeld         = 4030
	CodeNotOwner            = 4031
	CodeNotFound            = 4040
	CodeProductNotFound     = 4041
	CodeCategoryNotFound    = 4042
	CodeVoucherNotFound     = 4043
	CodeCommentNotFound     = 4044
	CodeDuplicateSlug       = 4091
	CodeConcurrentUpdate    = 4092
	CodeConstraintViolation = 4005
	CodeInvalidEntityID     = 4003
	CodeVoucherNotEnabled   = 4101
	CodeVoucherClaimed      = 4102
	CodeVoucherExhausted    = 4103
	CodeEditLocked          = 4230

	// 5xxx - Server errors
	CodeInternalServer     = 5000
	CodeDatabaseConnection = 5030
)

// Machine-readable reasons returned with voucher claim failures
const (
	ReasonVoucherNotEnabled     = "voucher_not_enabled"
	ReasonVoucherAlreadyClaimed = "voucher_already_claimed"
	ReasonVoucherExhausted      = "voucher_exhausted"
)

// Base error types
var (
	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrProductNotFound is returned when the requested product doesn't exist
	ErrProductNotFound = errors.New("product not found")

	// ErrCategoryNotFound is returned when the requested category doesn't exist
	ErrCategoryNotFound = errors.New("category not found")

	// ErrVoucherNotFound is returned when no voucher exists for the lookup
	ErrVoucherNotFound = errors.New("voucher not found")

	// ErrCommentNotFound is returned when the requested comment doesn't exist
	ErrCommentNotFound = errors.New("comment not found")

	// ErrNotOwner is returned when a user changes a resource another user owns
	ErrNotOwner = errors.New("resource belongs to another user")

	// ErrEditLocked is returned when another user holds an active edit lease
	ErrEditLocked = errors.New("entity is being edited by another user")

	// ErrLockNotHeld is returned when a user releases a lease held by someone else
	ErrLockNotHeld = errors.New("edit lock is held by another user")

	// ErrVoucherNotEnabled is returned when claiming on a product without a voucher pool
	ErrVoucherNotEnabled = errors.New("vouchers are not enabled for this product")

	// ErrVoucherAlreadyClaimed is returned when the user already owns a voucher for the product
	ErrVoucherAlreadyClaimed = errors.New("voucher already claimed for this product")

	// ErrVoucherExhausted is returned when the voucher pool is empty
	ErrVoucherExhausted = errors.New("no vouchers left for this product")

	// ErrVoucherCodeCollision is returned when a generated code already exists
	ErrVoucherCodeCollision = errors.New("voucher code collision")

	// ErrDuplicateSlug is returned when the slug is already used by another row
	ErrDuplicateSlug = errors.New("slug already exists")

	// ErrConcurrentUpdate is returned when the store aborted a transaction over a lock race
	ErrConcurrentUpdate = errors.New("concurrent update conflict")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInvalidEntityID is returned when a path id is not a positive integer
	ErrInvalidEntityID = errors.New("entity ID must be a positive integer")

	// ErrUnauthenticated is returned when the caller identity is missing
	ErrUnauthenticated = errors.New("authentication required")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrProductNotFound):
		return CodeProductNotFound
	case errors.Is(err, ErrCategoryNotFound):
		return CodeCategoryNotFound
	case errors.Is(err, ErrVoucherNotFound):
		return CodeVoucherNotFound
	case errors.Is(err, ErrCommentNotFound):
		return CodeCommentNotFound
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrEditLocked):
		return CodeEditLocked
	case errors.Is(err, ErrLockNotHeld):
		return CodeLockNotHeld
	case errors.Is(err, ErrNotOwner):
		return CodeNotOwner
	case errors.Is(err, ErrVoucherNotEnabled):
		return CodeVoucherNotEnabled
	case errors.Is(err, ErrVoucherAlreadyClaimed):
		return CodeVoucherClaimed
	case errors.Is(err, ErrVoucherExhausted):
		return CodeVoucherExhausted
	case errors.Is(err, ErrDuplicateSlug):
		return CodeDuplicateSlug
	case errors.Is(err, ErrConcurrentUpdate):
		return CodeConcurrentUpdate
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	case errors.Is(err, ErrInvalidEntityID):
		return CodeInvalidEntityID
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrUnauthenticated):
		return CodeUnauthenticated
	case errors.Is(err, ErrDatabaseConnection):
		return CodeDatabaseConnection
	default:
		return CodeInternalServer
	}
}

// Reason returns the voucher failure reason for err, or "" for other errors
func Reason(err error) string {
	switch {
	case errors.Is(err, ErrVoucherNotEnabled):
		return ReasonVoucherNotEnabled
	case errors.Is(err, ErrVoucherAlreadyClaimed):
		return ReasonVoucherAlreadyClaimed
	case errors.Is(err, ErrVoucherExhausted):
		return ReasonVoucherExhausted
	default:
		return ""
	}
}

// EditLockConflictError describes an active lease owned by another user
type EditLockConflictError struct {
	Kind      string
	EntityID  uint64
	Holder    uint64
	ExpiresAt time.Time
}

// Error implements the error interface
func (e *EditLockConflictError) Error() string {
	return fmt.Sprintf("%s %d is being edited by user %d until %s",
		e.Kind, e.EntityID, e.Holder, e.ExpiresAt.UTC().Format(time.RFC3339))
}

// Is checks if the target error is an ErrEditLocked
func (e *EditLockConflictError) Is(target error) bool {
	return target == ErrEditLocked
}

// LogFields returns a map of fields for structured logging
func (e *EditLockConflictError) LogFields() map[string]any {
	return map[string]any{
		"error_type":   "edit_lock_conflict",
		"kind":         e.Kind,
		"entity_id":    e.EntityID,
		"editing_user": e.Holder,
		"expires_at":   e.ExpiresAt,
		"error_code":   CodeEditLocked,
	}
}

// NewEditLockConflictError creates a new detailed lock conflict error
func NewEditLockConflictError(kind string, entityID, holder uint64, expiresAt time.Time) error {
	return &EditLockConflictError{
		Kind:      kind,
		EntityID:  entityID,
		Holder:    holder,
		ExpiresAt: expiresAt,
	}
}

// LockOwnershipError is returned when a user releases a lease someone else holds
type LockOwnershipError struct {
	Kind     string
	EntityID uint64
	UserID   uint64
	Holder   uint64
}

// Error implements the error interface
func (e *LockOwnershipError) Error() string {
	return fmt.Sprintf("user %d cannot release %s %d: lock held by user %d",
		e.UserID, e.Kind, e.EntityID, e.Holder)
}

// Is checks if the target error is an ErrLockNotHeld
func (e *LockOwnershipError) Is(target error) bool {
	return target == ErrLockNotHeld
}

// LogFields returns a map of fields for structured logging
func (e *LockOwnershipError) LogFields() map[string]any {
	return map[string]any{
		"error_type":   "lock_ownership",
		"kind":         e.Kind,
		"entity_id":    e.EntityID,
		"user_id":      e.UserID,
		"editing_user": e.Holder,
		"error_code":   CodeLockNotHeld,
	}
}

// NewLockOwnershipError creates a new lock ownership error
func NewLockOwnershipError(kind string, entityID, userID, holder uint64) error {
	return &LockOwnershipError{
		Kind:     kind,
		EntityID: entityID,
		UserID:   userID,
		Holder:   holder,
	}
}

// OwnershipError is returned when a user modifies a resource created by someone else
type OwnershipError struct {
	Resource   string
	ResourceID uint64
	UserID     uint64
	Owner      uint64
}

// Error implements the error interface
func (e *OwnershipError) Error() string {
	return fmt.Sprintf("user %d cannot modify %s %d owned by user %d",
		e.UserID, e.Resource, e.ResourceID, e.Owner)
}

// Is checks if the target error is an ErrNotOwner
func (e *OwnershipError) Is(target error) bool {
	return target == ErrNotOwner
}

// LogFields returns a map of fields for structured logging
func (e *OwnershipError) LogFields() map[string]any {
	return map[string]any{
		"error_type":  "ownership",
		"resource":    e.Resource,
		"resource_id": e.ResourceID,
		"user_id":     e.UserID,
		"owner_id":    e.Owner,
		"error_code":  CodeNotOwner,
	}
}

// NewOwnershipError creates a new ownership error
func NewOwnershipError(resource string, resourceID, userID, owner uint64) error {
	return &OwnershipError{
		Resource:   resource,
		ResourceID: resourceID,
		UserID:     userID,
		Owner:      owner,
	}
}

// AlreadyClaimedError carries the voucher a user already owns for a product.
// Voucher is left as any so this package stays free of entity imports.
type AlreadyClaimedError struct {
	ProductID uint64
	UserID    uint64
	Voucher   any
}

// Error implements the error interface
func (e *AlreadyClaimedError) Error() string {
	return fmt.Sprintf("user %d already claimed a voucher for product %d", e.UserID, e.ProductID)
}

// Is checks if the target error is an ErrVoucherAlreadyClaimed
func (e *AlreadyClaimedError) Is(target error) bool {
	return target == ErrVoucherAlreadyClaimed
}

// LogFields returns a map of fields for structured logging
func (e *AlreadyClaimedError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "voucher_already_claimed",
		"product_id": e.ProductID,
		"user_id":    e.UserID,
		"error_code": CodeVoucherClaimed,
	}
}

// NewAlreadyClaimedError creates a new already-claimed error
func NewAlreadyClaimedError(productID, userID uint64, voucher any) error {
	return &AlreadyClaimedError{
		ProductID: productID,
		UserID:    userID,
		Voucher:   voucher,
	}
}

// ValidationError reports an invalid input field
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// Is checks if the target error is an ErrInvalidRequest
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidRequest
}

// LogFields returns a map of fields for structured logging
func (e *ValidationError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "validation",
		"field":      e.Field,
		"message":    e.Message,
		"error_code": CodeInvalidRequest,
	}
}

// NewValidationError creates a new validation error for field
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrProductNotFound) ||
		errors.Is(err, ErrCategoryNotFound) ||
		errors.Is(err, ErrVoucherNotFound) ||
		errors.Is(err, ErrCommentNotFound)
}

// IsEditLockedError checks if the error is an edit lock conflict
func IsEditLockedError(err error) bool {
	return errors.Is(err, ErrEditLocked)
}

// IsVoucherError checks if the error is a business failure of a voucher claim
func IsVoucherError(err error) bool {
	return Reason(err) != ""
}

// LogFields extracts structured fields from err when it provides them
func LogFields(err error) map[string]any {
	var lf interface{ LogFields() map[string]any }
	if errors.As(err, &lf) {
		return lf.LogFields()
	}
	return map[string]any{"error": err.Error(), "error_code": ErrorCode(err)}
}
