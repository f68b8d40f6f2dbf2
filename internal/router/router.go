package router

import (
	"github.com/gin-gonic/gin"

	"github.com/devconnect/backend/internal/api"
	"github.com/devconnect/backend/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(authHandler *api.AuthHandler, profileHandler *api.ProfileHandler) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORS())

	v1 := router.Group("/api/v1")
	authHandler.RegisterRoutes(v1)
	profileHandler.RegisterRoutes(v1)

	return router
}
