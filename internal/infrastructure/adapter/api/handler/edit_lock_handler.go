package handler

import (
	"errors"
	"fmt"
	"net/http"

	domainerr "github.com/amirhossein-jamali/catalog-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/catalog-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/catalog-service/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/catalog-service/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// EditLockHandler serves the edit-lock endpoints of one entity kind
type EditLockHandler struct {
	locks  usecase.EditLockUseCase
	logger coreport.Logger
}

// NewEditLockHandler creates a new edit-lock handler instance
func NewEditLockHandler(locks usecase.EditLockUseCase, logger coreport.Logger) *EditLockHandler {
	return &EditLockHandler{
		locks:  locks,
		logger: logger,
	}
}

// Acquire handles POST /{kind}/:id/editable/me
func (h *EditLockHandler) Acquire(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	result, err := h.locks.Acquire(c.Request.Context(), id, currentUser(c))
	if err != nil {
		var conflict *domainerr.EditLockConflictError
		if errors.As(err, &conflict) {
			c.JSON(http.StatusConflict, dto.LockConflictResponse{
				Status:        dto.LockStatusLocked,
				Message:       fmt.Sprintf("This %s is being edited by another user", h.locks.Kind()),
				EditingUser:   conflict.Holder,
				LockExpiresAt: conflict.ExpiresAt.UTC(),
			})
			return
		}
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAcquireLockResponse(result))
}

// Release handles POST /{kind}/:id/editable/release
func (h *EditLockHandler) Release(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.locks.Release(c.Request.Context(), id, currentUser(c)); err != nil {
		if errors.Is(err, domainerr.ErrLockNotHeld) {
			c.JSON(http.StatusForbidden, dto.LockMessageResponse{
				Status:  dto.LockStatusForbidden,
				Message: fmt.Sprintf("You do not have the edit lock for this %s", h.locks.Kind()),
			})
			return
		}
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.LockMessageResponse{
		Status:  dto.LockStatusReleased,
		Message: "Edit lock released successfully",
	})
}

// Status handles GET /{kind}/:id/editable/maintain
func (h *EditLockHandler) Status(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	status, err := h.locks.Status(c.Request.Context(), id, currentUser(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewLockStatusResponse(status))
}

// ReleaseMine handles POST /{kind}/release-my-locks
func (h *EditLockHandler) ReleaseMine(c *gin.Context) {
	count, err := h.locks.ReleaseAllForUser(c.Request.Context(), currentUser(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ReleaseAllResponse{
		Status:        dto.LockStatusSuccess,
		Message:       fmt.Sprintf("Released %d %s lock(s)", count, h.locks.Kind()),
		ReleasedCount: count,
	})
}
