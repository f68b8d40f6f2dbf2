package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devconnect/backend/internal/service"
	"github.com/devconnect/backend/internal/types"
)

// TokenValidator is an interface for validating bearer tokens
type TokenValidator interface {
	ValidateToken(token string) (*types.TokenClaims, error)
}

// ContextUserKey is the gin context key the resolved caller id is stored
// under.
const ContextUserKey = "user_id"

// AuthMiddleware creates a middleware that resolves the caller's identity
// from the x-auth-token header or rejects the request.
func AuthMiddleware(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("x-auth-token")
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "no token, authorization denied"})
			return
		}

		claims, err := validator.ValidateToken(token)
		if err != nil {
			msg := "token is not valid"
			if errors.Is(err, service.ErrTokenExpired) {
				msg = "token has expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		c.Set(ContextUserKey, claims.UserID)
		c.Next()
	}
}
