package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/devconnect/backend/config"
	"github.com/devconnect/backend/internal/types"
)

// GithubService proxies repository listings from the GitHub API. It holds
// no state beyond its configuration.
type GithubService struct {
	apiURL string
	token  string
	client *http.Client
}

// NewGithubService creates a new GithubService instance
func NewGithubService(cfg *config.Config) *GithubService {
	return &GithubService{
		apiURL: cfg.GithubAPIURL,
		token:  cfg.GithubToken,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// ListRepos returns the user's five earliest-created repositories. Any
// failure, whether transport-level or a non-200 status, collapses to
// ErrNoRepos; the underlying cause is only logged.
func (s *GithubService) ListRepos(ctx context.Context, username string) ([]types.Repo, error) {
	endpoint := fmt.Sprintf("%s/users/%s/repos?per_page=5&sort=created:asc", s.apiURL, url.PathEscape(username))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if s.token != "" {
		req.Header.Set("Authorization", "token "+s.token)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		log.Printf("github lookup for %s failed: %v", username, err)
		return nil, ErrNoRepos
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("github lookup for %s returned status %d", username, resp.StatusCode)
		return nil, ErrNoRepos
	}

	var repos []types.Repo
	if err := json.NewDecoder(resp.Body).Decode(&repos); err != nil {
		log.Printf("github lookup for %s returned unparseable body: %v", username, err)
		return nil, ErrNoRepos
	}

	return repos, nil
}
