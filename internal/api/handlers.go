package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/devconnect/backend/internal/middleware"
)

// currentUserID reads the identity the auth middleware attached to the
// request. A missing value means a protected route was registered without
// the middleware, so the request is rejected rather than trusted.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(middleware.ContextUserKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no token, authorization denied"})
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no token, authorization denied"})
		return uuid.Nil, false
	}
	return id, true
}

// serverError logs the internal cause and writes the generic 500 body.
// Store faults never leak detail to the caller.
func serverError(c *gin.Context, err error) {
	log.Printf("server error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
}
