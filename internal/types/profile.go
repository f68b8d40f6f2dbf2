package types

import (
	"github.com/google/uuid"

	"github.com/devconnect/backend/internal/models"
)

// ProfileOwner is the subset of account fields exposed alongside a profile.
type ProfileOwner struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Avatar string    `json:"avatar"`
}

// ProfileView is a profile joined with its owner's public fields. The join
// is done explicitly in the profile service rather than through an ORM
// association.
type ProfileView struct {
	models.Profile
	Owner ProfileOwner `json:"owner"`
}

// UserSummary is the public directory entry for an account.
type UserSummary struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	Avatar string    `json:"avatar"`
}

// Repo is one repository as returned by the GitHub lookup.
type Repo struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	HTMLURL     string `json:"html_url"`
	Description string `json:"description"`
	Stars       int    `json:"stargazers_count"`
	Forks       int    `json:"forks_count"`
}
