package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/devconnect/backend/internal/middleware"
	"github.com/devconnect/backend/internal/models"
	"github.com/devconnect/backend/internal/service"
	"github.com/devconnect/backend/internal/types"
)

// ProfileHandler exposes profile management, the public profile listings
// and the GitHub repository passthrough.
type ProfileHandler struct {
	profiles service.IProfileService
	github   service.IGithubService
	auth     middleware.TokenValidator
}

// NewProfileHandler creates a new ProfileHandler instance
func NewProfileHandler(profiles service.IProfileService, github service.IGithubService, auth middleware.TokenValidator) *ProfileHandler {
	return &ProfileHandler{
		profiles: profiles,
		github:   github,
		auth:     auth,
	}
}

// RegisterRoutes wires the profile endpoints
func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup) {
	profiles := router.Group("/profiles")

	// Public surface
	profiles.GET("", h.List)
	profiles.GET("/:owner", h.GetByOwner)
	profiles.GET("/:owner/repos", h.GithubRepos)

	// Protected surface
	protected := profiles.Group("")
	protected.Use(middleware.AuthMiddleware(h.auth))
	{
		protected.GET("/me", h.Mine)
		protected.POST("", h.Upsert)
		protected.DELETE("", h.Delete)
		protected.PUT("/experience", h.AddExperience)
		protected.DELETE("/experience/:id", h.RemoveExperience)
		protected.PUT("/education", h.AddEducation)
		protected.DELETE("/education/:id", h.RemoveEducation)
	}
}

// Mine returns the caller's own profile.
func (h *ProfileHandler) Mine(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	view, err := h.profiles.GetByUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "there is no profile for this user"})
			return
		}
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// Upsert creates or updates the caller's profile.
func (h *ProfileHandler) Upsert(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.UpsertProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	profile, err := h.profiles.Upsert(c.Request.Context(), userID, service.ProfileInput{
		Company:        req.Company,
		Website:        req.Website,
		Location:       req.Location,
		Status:         req.Status,
		Skills:         req.Skills,
		Bio:            req.Bio,
		GithubUsername: req.GithubUsername,
		Social: models.SocialLinks{
			Youtube:   req.Youtube,
			Twitter:   req.Twitter,
			Facebook:  req.Facebook,
			Linkedin:  req.Linkedin,
			Instagram: req.Instagram,
		},
	})
	if err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// List returns every profile with owner name and avatar.
func (h *ProfileHandler) List(c *gin.Context) {
	views, err := h.profiles.List(c.Request.Context())
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// GetByOwner returns one profile by its owner's user id.
func (h *ProfileHandler) GetByOwner(c *gin.Context) {
	ownerID, err := uuid.Parse(c.Param("owner"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "profile not found"})
		return
	}

	view, err := h.profiles.GetByUser(c.Request.Context(), ownerID)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "profile not found"})
			return
		}
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// Delete removes the caller's profile, leaving the account in place.
func (h *ProfileHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.profiles.Delete(c.Request.Context(), userID); err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "there is no profile for this user"})
			return
		}
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "profile deleted"})
}

// AddExperience prepends an experience entry to the caller's profile.
func (h *ProfileHandler) AddExperience(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.AddExperienceRequest
	if !bindJSON(c, &req) {
		return
	}

	profile, err := h.profiles.AddExperience(c.Request.Context(), userID, models.Experience{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        req.From,
		To:          req.To,
		Current:     req.Current,
		Description: req.Description,
	})
	if err != nil {
		h.renderEntryError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// RemoveExperience deletes one experience entry by id.
func (h *ProfileHandler) RemoveExperience(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "entry not found"})
		return
	}

	profile, err := h.profiles.RemoveExperience(c.Request.Context(), userID, entryID)
	if err != nil {
		h.renderEntryError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// AddEducation prepends an education entry to the caller's profile.
func (h *ProfileHandler) AddEducation(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.AddEducationRequest
	if !bindJSON(c, &req) {
		return
	}

	profile, err := h.profiles.AddEducation(c.Request.Context(), userID, models.Education{
		School:      req.School,
		Degree:      req.Degree,
		Major:       req.Major,
		From:        req.From,
		To:          req.To,
		Current:     req.Current,
		Description: req.Description,
	})
	if err != nil {
		h.renderEntryError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// RemoveEducation deletes one education entry by id.
func (h *ProfileHandler) RemoveEducation(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "entry not found"})
		return
	}

	profile, err := h.profiles.RemoveEducation(c.Request.Context(), userID, entryID)
	if err != nil {
		h.renderEntryError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// GithubRepos proxies the repository listing for a GitHub username. The
// :owner segment is the GitHub username here, not a user id.
func (h *ProfileHandler) GithubRepos(c *gin.Context) {
	repos, err := h.github.ListRepos(c.Request.Context(), c.Param("owner"))
	if err != nil {
		if errors.Is(err, service.ErrNoRepos) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no github profile found"})
			return
		}
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, repos)
}

func (h *ProfileHandler) renderEntryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrProfileNotFound):
		c.JSON(http.StatusBadRequest, gin.H{"error": "there is no profile for this user"})
	case errors.Is(err, service.ErrEntryNotFound):
		c.JSON(http.StatusBadRequest, gin.H{"error": "entry not found"})
	default:
		serverError(c, err)
	}
}
