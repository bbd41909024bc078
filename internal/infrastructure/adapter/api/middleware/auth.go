package middleware

import (
	"net/http"
	"strconv"

	domainerr "github.com/amirhossein-jamali/catalog-service/internal/domain/error"
	"github.com/amirhossein-jamali/catalog-service/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// UserIDHeader identifies the calling user. Authentication itself happens upstream.
const UserIDHeader = "X-User-ID"

const userIDKey = "userID"

// Authenticate rejects requests without a positive X-User-ID with 401
func Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.ParseUint(c.GetHeader(UserIDHeader), 10, 64)
		if err != nil || userID == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrUnauthenticated),
				Message: "Missing or invalid " + UserIDHeader + " header",
			})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// UserID returns the authenticated user id, if any
func UserID(c *gin.Context) (uint64, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok
}
