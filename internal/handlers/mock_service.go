package handlers

import (
	"context"

	"devconnect/internal/models"
	"devconnect/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	registerToken string
	registerErr   error
	loginToken    string
	loginErr      error
	parseID       int
	parseErr      error
	currentUser   *models.User
	currentErr    error

	lastRegister   service.RegisterInput
	lastLoginEmail string
	lastLoginPass  string
	lastParseToken string
	registerCalls  int
	loginCalls     int
}

func (m *mockAuth) Register(_ context.Context, in service.RegisterInput) (string, error) {
	m.registerCalls++
	m.lastRegister = in
	return m.registerToken, m.registerErr
}

func (m *mockAuth) Login(_ context.Context, email, password string) (string, error) {
	m.loginCalls++
	m.lastLoginEmail = email
	m.lastLoginPass = password
	return m.loginToken, m.loginErr
}

func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

func (m *mockAuth) CurrentUser(_ context.Context, _ int) (*models.User, error) {
	return m.currentUser, m.currentErr
}

type mockProfiles struct {
	profile *models.Profile
	list    []models.Profile
	err     error

	lastSaveUserID int
	lastSaveInput  service.ProfileInput
	lastExpInput   service.ExperienceInput
	lastRemovedID  string
	deletedUserID  int
	saveCalls      int
}

func (m *mockProfiles) Me(_ context.Context, _ int) (*models.Profile, error) {
	return m.profile, m.err
}

func (m *mockProfiles) Save(_ context.Context, userID int, in service.ProfileInput) (*models.Profile, error) {
	m.saveCalls++
	m.lastSaveUserID = userID
	m.lastSaveInput = in
	return m.profile, m.err
}

func (m *mockProfiles) List(_ context.Context) ([]models.Profile, error) {
	return m.list, m.err
}

func (m *mockProfiles) GetByUserID(_ context.Context, _ int) (*models.Profile, error) {
	return m.profile, m.err
}

func (m *mockProfiles) DeleteAccount(_ context.Context, userID int) error {
	m.deletedUserID = userID
	return m.err
}

func (m *mockProfiles) AddExperience(_ context.Context, _ int, in service.ExperienceInput) (*models.Profile, error) {
	m.lastExpInput = in
	return m.profile, m.err
}

func (m *mockProfiles) RemoveExperience(_ context.Context, _ int, expID string) (*models.Profile, error) {
	m.lastRemovedID = expID
	return m.profile, m.err
}

type mockGithub struct {
	repos []models.GithubRepo
	err   error

	lastUsername string
}

func (m *mockGithub) Repos(_ context.Context, username string) ([]models.GithubRepo, error) {
	m.lastUsername = username
	return m.repos, m.err
}

// newTestRouter wires a full router around the given service aggregate. A high
// rate limit keeps throttling out of tests that are not about it.
func newTestRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s, nil, 10_000)
	return h.InitRoutes()
}
