package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGithubService_Repos(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		if r.URL.Path != "/users/alice/repos" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"name":"repo-one","html_url":"https://github.com/alice/repo-one","stargazers_count":3,"created_at":"2026-01-02T15:04:05Z"},
			{"name":"repo-two","html_url":"https://github.com/alice/repo-two","description":"second","forks_count":1,"created_at":"2026-02-02T15:04:05Z"}
		]`))
	}))
	defer srv.Close()

	s := NewGithubService(GithubConfig{BaseURL: srv.URL, ClientID: "cid", ClientSecret: "csec"})

	repos, err := s.Repos(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, repos, 2)
	assert.Equal(t, "repo-one", repos[0].Name)
	assert.Equal(t, 3, repos[0].StargazersCount)
	assert.Equal(t, "second", repos[1].Description)

	assert.Equal(t, []string{"5"}, gotQuery["per_page"])
	assert.Equal(t, []string{"created:asc"}, gotQuery["sort"])
	assert.Equal(t, []string{"cid"}, gotQuery["client_id"])
	assert.Equal(t, []string{"csec"}, gotQuery["client_secret"])
}

func TestGithubService_Repos_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	s := NewGithubService(GithubConfig{BaseURL: srv.URL})

	_, err := s.Repos(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrGithubNotFound)
}

func TestGithubService_Repos_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // closed before use: every request fails at the transport

	s := NewGithubService(GithubConfig{BaseURL: srv.URL})

	_, err := s.Repos(context.Background(), "alice")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrGithubNotFound, "transport errors are internal, not a 404")
}
