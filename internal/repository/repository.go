package repository

import (
	"context"
	"database/sql"

	"devconnect/internal/models"
	"devconnect/internal/repository/db"
)

// InitDB opens the SQLite store and bootstraps the schema.
func InitDB(path string) (*sql.DB, error) {
	return db.InitDB(path)
}

type Users interface {
	Create(ctx context.Context, u *models.User) (int, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int) (*models.User, error)
	Delete(ctx context.Context, id int) error
}

type Profiles interface {
	Upsert(ctx context.Context, p *models.Profile) error
	GetByUserID(ctx context.Context, userID int) (*models.Profile, error)
	List(ctx context.Context) ([]models.Profile, error)
	Delete(ctx context.Context, userID int) error
}

type Repository struct {
	Users    Users
	Profiles Profiles
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users:    NewUserRepository(db),
		Profiles: NewProfileRepository(db),
	}
}
