package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/devconnect/backend/internal/models"
	"github.com/devconnect/backend/internal/types"
)

// AuthService owns the account lifecycle: registration, login, lookup and
// deletion (which cascades to the owned profile).
type AuthService struct {
	db     *gorm.DB
	tokens *TokenService
}

// NewAuthService creates a new AuthService instance
func NewAuthService(db *gorm.DB, tokens *TokenService) *AuthService {
	return &AuthService{
		db:     db,
		tokens: tokens,
	}
}

// Register creates an account and returns a freshly issued token. Emails
// are case-insensitive; the stored form is lower case.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	// Check if user already exists
	var existing models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&existing).Error; err == nil {
		return "", ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Avatar:       GravatarURL(email),
	}

	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return "", err
	}

	return s.tokens.Issue(user.ID)
}

// Login checks the credentials and returns a freshly issued token. An
// unknown email and a wrong password produce the same error.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.tokens.Issue(user.ID)
}

// ValidateToken delegates to the token service, satisfying the middleware's
// TokenValidator interface.
func (s *AuthService) ValidateToken(token string) (*types.TokenClaims, error) {
	return s.tokens.ValidateToken(token)
}

// CurrentUser returns the account behind a resolved identity. The password
// hash never leaves the model's JSON encoding anyway, but callers get the
// full record.
func (s *AuthService) CurrentUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// ListUsers returns the public account directory.
func (s *AuthService) ListUsers(ctx context.Context) ([]types.UserSummary, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).Order("created_at").Find(&users).Error; err != nil {
		return nil, err
	}

	summaries := make([]types.UserSummary, len(users))
	for i, u := range users {
		summaries[i] = types.UserSummary{
			ID:     u.ID,
			Name:   u.Name,
			Email:  u.Email,
			Avatar: u.Avatar,
		}
	}
	return summaries, nil
}

// DeleteAccount removes the account and its profile. Deleting an account
// that is already gone reports ErrUserNotFound rather than failing the
// cascade.
func (s *AuthService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	// Profile first, then the account that owns it.
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.Profile{}).Error; err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(&user).Error
}
