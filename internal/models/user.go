package models

import "time"

// User is a registered account. The password hash never leaves the server.
type User struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"` // unique, stored lower-cased
	PasswordHash string    `json:"-"`
	Avatar       string    `json:"avatar"` // gravatar URL derived from email
	CreatedAt    time.Time `json:"created_at"`
}
