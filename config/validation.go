package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that every value the process cannot run without is
// present. The GitHub token is deliberately not required: without it the
// repository proxy still works against the unauthenticated rate limit.
func ValidateConfig(cfg *Config) error {
	var errors []string

	if cfg.JWTSecret == "" {
		errors = append(errors, "JWT_SECRET is required")
	}
	if cfg.DBPassword == "" {
		errors = append(errors, "DB_PASSWORD is required")
	}
	if cfg.TokenTTL <= 0 {
		errors = append(errors, "TOKEN_TTL must be positive")
	}
	if cfg.GithubAPIURL == "" {
		errors = append(errors, "GITHUB_API_URL is required")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errors, "\n"))
	}

	return nil
}
