package service

import (
	"context"

	"devconnect/internal/models"
	"devconnect/internal/repository"
)

// Authorization covers registration, login and token handling.
type Authorization interface {
	Register(ctx context.Context, in RegisterInput) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	ParseToken(accessToken string) (int, error)
	CurrentUser(ctx context.Context, userID int) (*models.User, error)
}

// Profiles exposes profile documents: merge-updates, experience entries,
// public directory reads and account deletion.
type Profiles interface {
	Me(ctx context.Context, userID int) (*models.Profile, error)
	Save(ctx context.Context, userID int, in ProfileInput) (*models.Profile, error)
	List(ctx context.Context) ([]models.Profile, error)
	GetByUserID(ctx context.Context, userID int) (*models.Profile, error)
	DeleteAccount(ctx context.Context, userID int) error
	AddExperience(ctx context.Context, userID int, in ExperienceInput) (*models.Profile, error)
	RemoveExperience(ctx context.Context, userID int, expID string) (*models.Profile, error)
}

// Github exposes the read-only external repo lookup.
type Github interface {
	Repos(ctx context.Context, username string) ([]models.GithubRepo, error)
}

type Service struct {
	Authorization
	Profiles
	Github
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, authCfg AuthConfig, ghCfg GithubConfig) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Users, authCfg),
		Profiles:      NewProfileService(repos.Profiles, repos.Users),
		Github:        NewGithubService(ghCfg),
	}
}
