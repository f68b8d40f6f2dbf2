package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/devconnect/backend/internal/models"
	"github.com/devconnect/backend/internal/types"
)

// IAuthService defines the interface for account and credential operations
type IAuthService interface {
	Register(ctx context.Context, name, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
	CurrentUser(ctx context.Context, userID uuid.UUID) (*models.User, error)
	ListUsers(ctx context.Context) ([]types.UserSummary, error)
	DeleteAccount(ctx context.Context, userID uuid.UUID) error
}

// IProfileService defines the interface for profile operations
type IProfileService interface {
	Upsert(ctx context.Context, userID uuid.UUID, input ProfileInput) (*models.Profile, error)
	GetByUser(ctx context.Context, userID uuid.UUID) (*types.ProfileView, error)
	List(ctx context.Context) ([]types.ProfileView, error)
	AddExperience(ctx context.Context, userID uuid.UUID, entry models.Experience) (*models.Profile, error)
	RemoveExperience(ctx context.Context, userID, entryID uuid.UUID) (*models.Profile, error)
	AddEducation(ctx context.Context, userID uuid.UUID, entry models.Education) (*models.Profile, error)
	RemoveEducation(ctx context.Context, userID, entryID uuid.UUID) (*models.Profile, error)
	Delete(ctx context.Context, userID uuid.UUID) error
}

// IGithubService defines the interface for the external repository lookup
type IGithubService interface {
	ListRepos(ctx context.Context, username string) ([]types.Repo, error)
}

// Compile-time interface checks
var (
	_ IAuthService    = (*AuthService)(nil)
	_ IProfileService = (*ProfileService)(nil)
	_ IGithubService  = (*GithubService)(nil)
)
