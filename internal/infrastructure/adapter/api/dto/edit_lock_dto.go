package dto

import (
	"fmt"
	"time"

	"github.com/amirhossein-jamali/catalog-service/internal/domain/port/usecase"
)

// Lock response statuses
const (
	LockStatusAllowed   = "allowed"
	LockStatusLocked    = "locked"
	LockStatusReleased  = "released"
	LockStatusForbidden = "forbidden"
	LockStatusSuccess   = "success"
)

// AcquireLockResponse is returned when a lease is granted or renewed
type AcquireLockResponse struct {
	Status              string    `json:"status"`
	Message             string    `json:"message"`
	EditingUser         uint64    `json:"editing_user"`
	LockExpiresAt       time.Time `json:"lock_expires_at"`
	LockDurationSeconds int64     `json:"lock_duration_seconds"`
}

// LockConflictResponse is returned when another user holds the lease
type LockConflictResponse struct {
	Status        string    `json:"status"`
	Message       string    `json:"message"`
	EditingUser   uint64    `json:"editing_user"`
	LockExpiresAt time.Time `json:"lock_expires_at"`
}

// LockMessageResponse carries a status and a message only
type LockMessageResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// LockStatusResponse reports whether the caller may edit
type LockStatusResponse struct {
	CanEdit       bool       `json:"can_edit"`
	EditingUser   *uint64    `json:"editing_user"`
	LockExpiresAt *time.Time `json:"lock_expires_at"`
	IsYou         bool       `json:"is_you"`
}

// ReleaseAllResponse reports how many leases were cleared
type ReleaseAllResponse struct {
	Status        string `json:"status"`
	Message       string `json:"message"`
	ReleasedCount int64  `json:"released_count"`
}

// NewAcquireLockResponse builds the response for a granted or renewed lease
func NewAcquireLockResponse(result *usecase.AcquireResult) AcquireLockResponse {
	message := fmt.Sprintf("You can now edit this %s", result.Kind)
	if result.Renewed {
		message = fmt.Sprintf("You can continue editing this %s", result.Kind)
	}
	return AcquireLockResponse{
		Status:              LockStatusAllowed,
		Message:             message,
		EditingUser:         result.EditingUser,
		LockExpiresAt:       result.ExpiresAt.UTC(),
		LockDurationSeconds: int64(result.Duration.Seconds()),
	}
}

// NewLockStatusResponse converts a use case lock status
func NewLockStatusResponse(status *usecase.LockStatus) LockStatusResponse {
	resp := LockStatusResponse{
		CanEdit:     status.CanEdit,
		EditingUser: status.EditingUser,
		IsYou:       status.IsYou,
	}
	if status.ExpiresAt != nil {
		expires := status.ExpiresAt.UTC()
		resp.LockExpiresAt = &expires
	}
	return resp
}
