package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/devconnect/backend/internal/models"
	"github.com/devconnect/backend/internal/testhelpers"
)

func newAuthService(t *testing.T) (*AuthService, *ProfileService) {
	db := testhelpers.SetupTestDB(t)
	tokens := NewTokenService("test-secret", time.Hour)
	return NewAuthService(db, tokens), NewProfileService(db)
}

func TestRegisterIssuesValidToken(t *testing.T) {
	auth, _ := newAuthService(t)
	ctx := context.Background()

	token, err := auth.Register(ctx, "Ada", "ada@example.com", "password123")
	assert.NoError(t, err)

	claims, err := auth.ValidateToken(token)
	assert.NoError(t, err)

	user, err := auth.CurrentUser(ctx, claims.UserID)
	assert.NoError(t, err)
	assert.Equal(t, "Ada", user.Name)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.Contains(t, user.Avatar, "gravatar.com/avatar/")
	assert.NotEqual(t, "password123", user.PasswordHash)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	auth, _ := newAuthService(t)
	ctx := context.Background()

	_, err := auth.Register(ctx, "Ada", "ada@example.com", "password123")
	assert.NoError(t, err)

	// Same identity with different case is still a duplicate.
	_, err = auth.Register(ctx, "Ada Again", "Ada@Example.com", "password456")
	assert.ErrorIs(t, err, ErrEmailTaken)

	var count int64
	auth.db.Model(&models.User{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestLoginRoundTripsIdentity(t *testing.T) {
	auth, _ := newAuthService(t)
	ctx := context.Background()

	regToken, err := auth.Register(ctx, "Ada", "ada@example.com", "password123")
	assert.NoError(t, err)
	regClaims, err := auth.ValidateToken(regToken)
	assert.NoError(t, err)

	loginToken, err := auth.Login(ctx, "ada@example.com", "password123")
	assert.NoError(t, err)
	loginClaims, err := auth.ValidateToken(loginToken)
	assert.NoError(t, err)
	assert.Equal(t, regClaims.UserID, loginClaims.UserID)
}

func TestLoginWrongPassword(t *testing.T) {
	auth, _ := newAuthService(t)
	ctx := context.Background()

	_, err := auth.Register(ctx, "Ada", "ada@example.com", "password123")
	assert.NoError(t, err)

	token, err := auth.Login(ctx, "ada@example.com", "wrong-password")
	assert.Empty(t, token)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	auth, _ := newAuthService(t)

	token, err := auth.Login(context.Background(), "nobody@example.com", "password123")
	assert.Empty(t, token)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestDeleteAccountCascadesToProfile(t *testing.T) {
	auth, profiles := newAuthService(t)
	ctx := context.Background()

	token, err := auth.Register(ctx, "Ada", "ada@example.com", "password123")
	assert.NoError(t, err)
	claims, err := auth.ValidateToken(token)
	assert.NoError(t, err)

	_, err = profiles.Upsert(ctx, claims.UserID, ProfileInput{Status: "Developer", Skills: "Go"})
	assert.NoError(t, err)

	assert.NoError(t, auth.DeleteAccount(ctx, claims.UserID))

	_, err = profiles.GetByUser(ctx, claims.UserID)
	assert.ErrorIs(t, err, ErrProfileNotFound)

	_, err = auth.CurrentUser(ctx, claims.UserID)
	assert.ErrorIs(t, err, ErrUserNotFound)

	// Deleting again reports not found instead of failing.
	assert.ErrorIs(t, auth.DeleteAccount(ctx, claims.UserID), ErrUserNotFound)
}

func TestListUsersOmitsPasswordHash(t *testing.T) {
	auth, _ := newAuthService(t)
	ctx := context.Background()

	_, err := auth.Register(ctx, "Ada", "ada@example.com", "password123")
	assert.NoError(t, err)
	_, err = auth.Register(ctx, "Grace", "grace@example.com", "password123")
	assert.NoError(t, err)

	users, err := auth.ListUsers(ctx)
	assert.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, "Ada", users[0].Name)
	assert.NotEmpty(t, users[0].Avatar)
}
