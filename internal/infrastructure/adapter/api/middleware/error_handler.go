package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	domainerr "github.com/amirhossein-jamali/catalog-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/catalog-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/catalog-service/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// ErrorHandler turns a panicking handler into a 500 with the standard error
// body. The panic is logged with its stack and attached to the context so the
// request logger reports it too.
func ErrorHandler(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			recovered := recover()
			if recovered == nil {
				return
			}

			err := panicError(recovered)
			fields := domainerr.LogFields(err)
			fields["panic"] = fmt.Sprint(recovered)
			fields["stack"] = string(debug.Stack())
			fields["method"] = c.Request.Method
			fields["route"] = c.FullPath()
			fields["request_id"] = coreport.RequestIDFrom(c.Request.Context())
			if userID, ok := UserID(c); ok {
				fields["user_id"] = userID
			}
			logger.Error("Handler panicked", fields)

			_ = c.Error(err)
			if c.Writer.Written() {
				c.Abort()
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrInternalServer),
				Message: http.StatusText(http.StatusInternalServerError),
			})
		}()

		c.Next()
	}
}

// panicError wraps a recovered value as an internal server error
func panicError(recovered any) error {
	if err, ok := recovered.(error); ok {
		return fmt.Errorf("%w: panic: %w", domainerr.ErrInternalServer, err)
	}
	return fmt.Errorf("%w: panic: %v", domainerr.ErrInternalServer, recovered)
}
