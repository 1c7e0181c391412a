package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafaelleal24/commerce/internal/core/domain"
)

const (
	UserIDHeader = "X-USER-ID"
	userIDKey    = "user_id"
)

// RequireUserID rejects requests without a well-formed X-USER-ID header and
// stores the caller id on the gin context.
func RequireUserID() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := domain.NewUserID(c.GetHeader(UserIDHeader))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid " + UserIDHeader + " header"})
			return
		}
		c.Set(userIDKey, userID)
		c.Next()
	}
}

// UserID returns the caller set by RequireUserID, or "" outside of it.
func UserID(c *gin.Context) domain.UserID {
	if v, ok := c.Get(userIDKey); ok {
		if id, ok := v.(domain.UserID); ok {
			return id
		}
	}
	return ""
}
