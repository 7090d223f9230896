package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"devconnect/internal/models"
)

// ErrGithubNotFound covers a missing GitHub user or a non-200 upstream reply.
var ErrGithubNotFound = errors.New("no github profile found")

const (
	defaultGithubBaseURL = "https://api.github.com"
	githubReposPerPage   = 5
	githubTimeout        = 10 * time.Second
)

// GithubConfig comes from the loaded configuration; the client id/secret are
// optional and only raise the unauthenticated rate limit.
type GithubConfig struct {
	ClientID     string
	ClientSecret string
	BaseURL      string // overridable for tests
}

type GithubService struct {
	cfg    GithubConfig
	client *http.Client
}

func NewGithubService(cfg GithubConfig) *GithubService {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultGithubBaseURL
	}
	return &GithubService{
		cfg:    cfg,
		client: &http.Client{Timeout: githubTimeout},
	}
}

var _ Github = (*GithubService)(nil)

// Repos fetches the user's five newest public repositories. Failures surface
// immediately; there are no retries.
func (s *GithubService) Repos(ctx context.Context, username string) ([]models.GithubRepo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.reposURL(username), nil)
	if err != nil {
		return nil, fmt.Errorf("build github request for %q: %w", username, err)
	}
	req.Header.Set("User-Agent", "devconnect")
	req.Header.Set("Accept", "application/vnd.github.v3+json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("github request for %q: %w", username, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrGithubNotFound
	}

	var repos []models.GithubRepo
	if err := json.NewDecoder(resp.Body).Decode(&repos); err != nil {
		return nil, fmt.Errorf("decode github response for %q: %w", username, err)
	}
	return repos, nil
}

func (s *GithubService) reposURL(username string) string {
	q := url.Values{}
	q.Set("per_page", fmt.Sprintf("%d", githubReposPerPage))
	q.Set("sort", "created:asc")
	if s.cfg.ClientID != "" {
		q.Set("client_id", s.cfg.ClientID)
	}
	if s.cfg.ClientSecret != "" {
		q.Set("client_secret", s.cfg.ClientSecret)
	}
	return fmt.Sprintf("%s/users/%s/repos?%s", s.cfg.BaseURL, url.PathEscape(username), q.Encode())
}
