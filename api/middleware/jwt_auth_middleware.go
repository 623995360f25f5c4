package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/moodtunes/moodtunes-backend/domain"
	"github.com/moodtunes/moodtunes-backend/internal/tokenutil"
)

// JwtAuthMiddleware rejects requests without a valid Bearer access token and
// stores the token's user id under "x-user-id" for the handlers.
func JwtAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		parts := strings.Fields(authHeader)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, domain.ErrorResponse{
				Success: false,
				Message: "missing bearer token",
			})
			return
		}

		token := parts[1]
		authorized, err := tokenutil.IsAuthorized(token, secret)
		if err != nil || !authorized {
			c.AbortWithStatusJSON(http.StatusUnauthorized, domain.ErrorResponse{
				Success: false,
				Message: "invalid or expired token",
			})
			return
		}

		userID, err := tokenutil.ExtractIDFromToken(token, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, domain.ErrorResponse{
				Success: false,
				Message: "invalid or expired token",
			})
			return
		}
		c.Set("x-user-id", userID)
		c.Next()
	}
}

// OptionalJwtAuthMiddleware resolves the user id when a Bearer token is
// supplied but lets anonymous requests through. A token that is present and
// invalid is still rejected.
func OptionalJwtAuthMiddleware(secret string) gin.HandlerFunc {
	authenticate := JwtAuthMiddleware(secret)
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.Next()
			return
		}
		authenticate(c)
	}
}
