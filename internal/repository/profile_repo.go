package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"devconnect/internal/models"
)

type ProfileRepository struct {
	db *sql.DB
}

func NewProfileRepository(db *sql.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

var _ Profiles = (*ProfileRepository)(nil)

const (
	upsertProfileSQL = `
		INSERT INTO profiles (user_id, handle, company, website, location, status, bio, github_username, skills, social, experience, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			handle=excluded.handle,
			company=excluded.company,
			website=excluded.website,
			location=excluded.location,
			status=excluded.status,
			bio=excluded.bio,
			github_username=excluded.github_username,
			skills=excluded.skills,
			social=excluded.social,
			experience=excluded.experience,
			updated_at=excluded.updated_at
	`

	selectProfileColumns = `
		SELECT p.user_id, u.name, u.avatar,
		       p.handle, p.company, p.website, p.location, p.status, p.bio, p.github_username,
		       p.skills, p.social, p.experience, p.updated_at
		FROM profiles p
		JOIN users u ON u.id = p.user_id
	`

	selectProfileByUserSQL = selectProfileColumns + ` WHERE p.user_id = ?`
	selectAllProfilesSQL   = selectProfileColumns + ` ORDER BY p.updated_at DESC`

	deleteProfileSQL = `DELETE FROM profiles WHERE user_id = ?`
)

// marshalJSONColumn converts a list-valued field to its TEXT column form.
func marshalJSONColumn(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// unmarshalJSONColumn parses a TEXT column into dst, treating "" as empty.
func unmarshalJSONColumn(s string, dst any) error {
	if s == "" {
		return nil
	}
	return json.Unmarshal([]byte(s), dst)
}

// Upsert inserts the profile row for p.Owner.ID, or replaces it if one exists.
func (r *ProfileRepository) Upsert(ctx context.Context, p *models.Profile) error {
	skillsJSON, err := marshalJSONColumn(p.Skills)
	if err != nil {
		return fmt.Errorf("marshal skills for user id=%d: %w", p.Owner.ID, err)
	}
	socialJSON, err := marshalJSONColumn(p.Social)
	if err != nil {
		return fmt.Errorf("marshal social for user id=%d: %w", p.Owner.ID, err)
	}
	expJSON, err := marshalJSONColumn(p.Experience)
	if err != nil {
		return fmt.Errorf("marshal experience for user id=%d: %w", p.Owner.ID, err)
	}

	updatedAt := p.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}

	_, err = r.db.ExecContext(ctx, upsertProfileSQL,
		p.Owner.ID,
		p.Handle,
		p.Company,
		p.Website,
		p.Location,
		p.Status,
		p.Bio,
		p.GithubUsername,
		skillsJSON,
		socialJSON,
		expJSON,
		updatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("upsert profile for user id=%d: %w", p.Owner.ID, err)
	}
	return nil
}

// GetByUserID fetches one profile joined with its owner. Returns (nil, nil) if not found.
func (r *ProfileRepository) GetByUserID(ctx context.Context, userID int) (*models.Profile, error) {
	row := r.db.QueryRowContext(ctx, selectProfileByUserSQL, userID)
	p, err := scanProfile(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select profile for user id=%d: %w", userID, err)
	}
	return p, nil
}

// List returns all profiles, newest first.
func (r *ProfileRepository) List(ctx context.Context) ([]models.Profile, error) {
	rows, err := r.db.QueryContext(ctx, selectAllProfilesSQL)
	if err != nil {
		return nil, fmt.Errorf("select profiles: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []models.Profile
	for rows.Next() {
		p, err := scanProfile(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan profile row: %w", err)
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate profiles: %w", err)
	}
	return out, nil
}

// Delete removes the profile row for a user. Deleting a missing profile is not an error.
func (r *ProfileRepository) Delete(ctx context.Context, userID int) error {
	if _, err := r.db.ExecContext(ctx, deleteProfileSQL, userID); err != nil {
		return fmt.Errorf("delete profile for user id=%d: %w", userID, err)
	}
	return nil
}

// scanProfile decodes one profile row (shared by QueryRow and Query paths).
func scanProfile(scan func(dest ...any) error) (*models.Profile, error) {
	var (
		p          models.Profile
		skillsJSON string
		socialJSON string
		expJSON    string
	)
	if err := scan(
		&p.Owner.ID,
		&p.Owner.Name,
		&p.Owner.Avatar,
		&p.Handle,
		&p.Company,
		&p.Website,
		&p.Location,
		&p.Status,
		&p.Bio,
		&p.GithubUsername,
		&skillsJSON,
		&socialJSON,
		&expJSON,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if err := unmarshalJSONColumn(skillsJSON, &p.Skills); err != nil {
		return nil, fmt.Errorf("unmarshal skills: %w", err)
	}
	if err := unmarshalJSONColumn(socialJSON, &p.Social); err != nil {
		return nil, fmt.Errorf("unmarshal social: %w", err)
	}
	if err := unmarshalJSONColumn(expJSON, &p.Experience); err != nil {
		return nil, fmt.Errorf("unmarshal experience: %w", err)
	}
	p.UpdatedAt = p.UpdatedAt.UTC()
	return &p, nil
}
