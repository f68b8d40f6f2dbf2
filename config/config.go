package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application. It is built once at
// process start and passed by reference to whatever needs it.
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// JWT configuration
	JWTSecret string
	TokenTTL  time.Duration

	// GitHub API configuration
	GithubToken  string
	GithubAPIURL string
}

// LoadConfig creates a new Config instance from environment variables.
func LoadConfig() (*Config, error) {
	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_NAME", "devconnect")
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("TOKEN_TTL", "24h")
	viper.SetDefault("GITHUB_API_URL", "https://api.github.com")
	viper.AutomaticEnv()

	ttl, err := time.ParseDuration(viper.GetString("TOKEN_TTL"))
	if err != nil {
		return nil, fmt.Errorf("invalid TOKEN_TTL: %w", err)
	}

	cfg := &Config{
		ServerPort:   viper.GetString("SERVER_PORT"),
		ServerHost:   viper.GetString("SERVER_HOST"),
		DBHost:       viper.GetString("DB_HOST"),
		DBPort:       viper.GetString("DB_PORT"),
		DBUser:       viper.GetString("DB_USER"),
		DBPassword:   viper.GetString("DB_PASSWORD"),
		DBName:       viper.GetString("DB_NAME"),
		DBSSLMode:    viper.GetString("DB_SSL_MODE"),
		JWTSecret:    viper.GetString("JWT_SECRET"),
		TokenTTL:     ttl,
		GithubToken:  viper.GetString("GITHUB_TOKEN"),
		GithubAPIURL: viper.GetString("GITHUB_API_URL"),
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// DSN returns the PostgreSQL connection string for the configured database.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}
