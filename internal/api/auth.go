package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devconnect/backend/internal/middleware"
	"github.com/devconnect/backend/internal/service"
	"github.com/devconnect/backend/internal/types"
)

// AuthHandler exposes account registration, sessions and the account
// resource itself.
type AuthHandler struct {
	auth service.IAuthService
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(auth service.IAuthService) *AuthHandler {
	return &AuthHandler{
		auth: auth,
	}
}

// RegisterRoutes wires the account and session endpoints
func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	accounts := router.Group("/accounts")
	{
		accounts.POST("", h.Register)
		accounts.GET("", h.ListUsers)

		me := accounts.Group("/me")
		me.Use(middleware.AuthMiddleware(h.auth))
		{
			me.GET("", h.Me)
			me.DELETE("", h.DeleteAccount)
		}
	}

	router.POST("/sessions", h.Login)
}

// Register creates an account and returns a bearer token.
func (h *AuthHandler) Register(c *gin.Context) {
	var req types.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	token, err := h.auth.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"errors": []FieldError{{Field: "email", Message: "user already exists"}}})
			return
		}
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.TokenResponse{Token: token})
}

// Login authenticates and returns a bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req types.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid credentials"})
			return
		}
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.TokenResponse{Token: token})
}

// Me returns the caller's account, password hash excluded.
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := h.auth.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// ListUsers returns the public account directory.
func (h *AuthHandler) ListUsers(c *gin.Context) {
	users, err := h.auth.ListUsers(c.Request.Context())
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// DeleteAccount removes the caller's account and cascades to the profile.
func (h *AuthHandler) DeleteAccount(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.auth.DeleteAccount(c.Request.Context(), userID); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "account deleted"})
}
