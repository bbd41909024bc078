package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/amirhossein-jamali/catalog-service/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/catalog-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/catalog-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/catalog-service/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/catalog-service/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/catalog-service/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// StatusCode maps a domain error to an HTTP status
func StatusCode(err error) int {
	var validationErr *domainerr.ValidationError
	switch {
	case errors.As(err, &validationErr),
		errors.Is(err, domainerr.ErrInvalidRequest),
		errors.Is(err, domainerr.ErrInvalidEntityID):
		return http.StatusBadRequest
	case errors.Is(err, domainerr.ErrUnauthenticated):
		return http.StatusUnauthorized
	case domainerr.IsNotFoundError(err):
		return http.StatusNotFound
	case domainerr.IsEditLockedError(err):
		return http.StatusLocked
	case errors.Is(err, domainerr.ErrLockNotHeld),
		errors.Is(err, domainerr.ErrNotOwner):
		return http.StatusForbidden
	case domainerr.IsVoucherError(err):
		return http.StatusBadRequest
	case errors.Is(err, domainerr.ErrDuplicateSlug),
		errors.Is(err, domainerr.ErrConcurrentUpdate),
		errors.Is(err, domainerr.ErrConstraintViolation):
		return http.StatusConflict
	case errors.Is(err, domainerr.ErrDatabaseConnection):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the standard error body. Server errors are logged and
// their details hidden from the client.
func respondError(c *gin.Context, logger coreport.Logger, err error) {
	status := StatusCode(err)
	resp := dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: err.Error(),
		Reason:  domainerr.Reason(err),
	}

	var claimed *domainerr.AlreadyClaimedError
	if errors.As(err, &claimed) {
		if v, ok := claimed.Voucher.(*entity.Voucher); ok && v != nil {
			resp.Voucher = dto.NewVoucherResponse(v)
		}
	}

	if status >= http.StatusInternalServerError {
		fields := domainerr.LogFields(err)
		fields["path"] = c.Request.URL.Path
		fields["request_id"] = coreport.RequestIDFrom(c.Request.Context())
		logger.Error("Request failed", fields)
		resp.Message = http.StatusText(status)
	}

	_ = c.Error(err)
	c.JSON(status, resp)
}

// badRequest writes a 400 for malformed input
func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
		Message: message,
	})
}

// parseID reads a positive integer path parameter, answering 400 otherwise
func parseID(c *gin.Context, param string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidEntityID),
			Message: "Invalid " + param + " format",
		})
		return 0, false
	}
	return id, true
}

// currentUser returns the id set by the Authenticate middleware
func currentUser(c *gin.Context) uint64 {
	id, _ := middleware.UserID(c)
	return id
}

// parsePage reads limit and offset query parameters
func parsePage(c *gin.Context) (usecase.Page, bool) {
	var page usecase.Page
	for _, q := range []struct {
		name string
		dst  *int
	}{{"limit", &page.Limit}, {"offset", &page.Offset}} {
		raw := c.Query(q.name)
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			badRequest(c, "Invalid "+q.name+" parameter")
			return page, false
		}
		*q.dst = v
	}
	return page, true
}
