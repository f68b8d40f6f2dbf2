package service

import "errors"

var (
	// ErrEmailTaken is returned when registering with an email that already
	// has an account.
	ErrEmailTaken = errors.New("user already exists")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password; callers cannot tell which half failed.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserNotFound is returned when an account lookup or delete finds
	// nothing.
	ErrUserNotFound = errors.New("user not found")

	// ErrProfileNotFound is returned when the requested user has no profile.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrEntryNotFound is returned when an experience or education entry id
	// is not present in the profile.
	ErrEntryNotFound = errors.New("entry not found")

	// ErrNoRepos is the uniform failure for the GitHub lookup: transport
	// errors and non-200 responses are deliberately not distinguished.
	ErrNoRepos = errors.New("no github profile found")

	// ErrInvalidToken is returned for malformed tokens and bad signatures.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired is returned when a well-formed token is past its
	// expiry.
	ErrTokenExpired = errors.New("token has expired")
)
