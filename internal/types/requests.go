package types

import "time"

// RegisterRequest represents the request body for account registration
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest represents the request body for logging in
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse carries a freshly issued bearer token
type TokenResponse struct {
	Token string `json:"token"`
}

// UpsertProfileRequest represents the request body for creating or updating
// the caller's profile. Skills is the raw comma-delimited input; splitting
// happens in the profile service.
type UpsertProfileRequest struct {
	Company        string `json:"company"`
	Website        string `json:"website"`
	Location       string `json:"location"`
	Status         string `json:"status" binding:"required"`
	Skills         string `json:"skills" binding:"required"`
	Bio            string `json:"bio"`
	GithubUsername string `json:"github_username"`
	Youtube        string `json:"youtube"`
	Twitter        string `json:"twitter"`
	Facebook       string `json:"facebook"`
	Linkedin       string `json:"linkedin"`
	Instagram      string `json:"instagram"`
}

// AddExperienceRequest represents the request body for adding an experience
// entry to the caller's profile
type AddExperienceRequest struct {
	Title       string     `json:"title" binding:"required"`
	Company     string     `json:"company" binding:"required"`
	Location    string     `json:"location"`
	From        time.Time  `json:"from" binding:"required"`
	To          *time.Time `json:"to"`
	Current     bool       `json:"current"`
	Description string     `json:"description"`
}

// AddEducationRequest represents the request body for adding an education
// entry to the caller's profile
type AddEducationRequest struct {
	School      string     `json:"school" binding:"required"`
	Degree      string     `json:"degree" binding:"required"`
	Major       string     `json:"major" binding:"required"`
	From        time.Time  `json:"from" binding:"required"`
	To          *time.Time `json:"to"`
	Current     bool       `json:"current"`
	Description string     `json:"description"`
}
