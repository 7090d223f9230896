package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"devconnect/internal/models"
	"devconnect/internal/repository"

	"github.com/google/uuid"
)

// Domain errors for profile flows.
var (
	ErrProfileNotFound    = errors.New("profile not found")
	ErrExperienceNotFound = errors.New("experience not found")
)

type ProfileService struct {
	profiles repository.Profiles
	users    repository.Users
}

func NewProfileService(profiles repository.Profiles, users repository.Users) *ProfileService {
	return &ProfileService{profiles: profiles, users: users}
}

// Me returns the caller's own profile.
func (s *ProfileService) Me(ctx context.Context, userID int) (*models.Profile, error) {
	return s.mustGet(ctx, userID)
}

// GetByUserID returns any user's public profile.
func (s *ProfileService) GetByUserID(ctx context.Context, userID int) (*models.Profile, error) {
	return s.mustGet(ctx, userID)
}

// List returns all profiles, newest first.
func (s *ProfileService) List(ctx context.Context) ([]models.Profile, error) {
	return s.profiles.List(ctx)
}

// Save creates the caller's profile or merges the input into the existing one.
// Only non-nil input fields overwrite stored values; absent fields are kept
// as they are, never nulled.
func (s *ProfileService) Save(ctx context.Context, userID int, in ProfileInput) (*models.Profile, error) {
	p, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		p = &models.Profile{Owner: models.ProfileOwner{ID: userID}}
	}

	applyProfileInput(p, in)
	p.UpdatedAt = time.Now().UTC()

	if err := s.profiles.Upsert(ctx, p); err != nil {
		return nil, err
	}
	// Re-read so the response carries the joined owner name/avatar.
	return s.mustGet(ctx, userID)
}

// DeleteAccount removes the caller's profile (if any) and the user record.
func (s *ProfileService) DeleteAccount(ctx context.Context, userID int) error {
	if err := s.profiles.Delete(ctx, userID); err != nil {
		return err
	}
	return s.users.Delete(ctx, userID)
}

// AddExperience prepends a new entry to the caller's work history.
func (s *ProfileService) AddExperience(ctx context.Context, userID int, in ExperienceInput) (*models.Profile, error) {
	p, err := s.mustGet(ctx, userID)
	if err != nil {
		return nil, err
	}

	entry := models.Experience{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Company:     in.Company,
		Location:    in.Location,
		From:        in.From,
		To:          in.To,
		Current:     in.Current,
		Description: in.Description,
	}
	p.Experience = append([]models.Experience{entry}, p.Experience...)
	p.UpdatedAt = time.Now().UTC()

	if err := s.profiles.Upsert(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// RemoveExperience deletes one entry by id. An unknown id is an error, not a
// silent removal of some other entry.
func (s *ProfileService) RemoveExperience(ctx context.Context, userID int, expID string) (*models.Profile, error) {
	p, err := s.mustGet(ctx, userID)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, e := range p.Experience {
		if e.ID == expID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrExperienceNotFound
	}

	p.Experience = append(p.Experience[:idx], p.Experience[idx+1:]...)
	p.UpdatedAt = time.Now().UTC()

	if err := s.profiles.Upsert(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// mustGet loads a profile and converts absence into ErrProfileNotFound.
func (s *ProfileService) mustGet(ctx context.Context, userID int) (*models.Profile, error) {
	p, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProfileNotFound
	}
	return p, nil
}

// applyProfileInput merges present fields into the profile.
func applyProfileInput(p *models.Profile, in ProfileInput) {
	setString(&p.Handle, in.Handle)
	setString(&p.Company, in.Company)
	setString(&p.Website, in.Website)
	setString(&p.Location, in.Location)
	setString(&p.Status, in.Status)
	setString(&p.Bio, in.Bio)
	setString(&p.GithubUsername, in.GithubUsername)

	if in.Skills != nil {
		p.Skills = SplitSkills(*in.Skills)
	}

	setString(&p.Social.Youtube, in.Youtube)
	setString(&p.Social.Twitter, in.Twitter)
	setString(&p.Social.Facebook, in.Facebook)
	setString(&p.Social.Linkedin, in.Linkedin)
	setString(&p.Social.Instagram, in.Instagram)
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// SplitSkills turns a comma-separated skills string into a trimmed list,
// dropping empty items.
func SplitSkills(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
