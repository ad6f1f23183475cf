package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a row of the users table.
type User struct {
	ID             uuid.UUID `json:"id" db:"id"`                             // Primary key, assigned by the database
	Email          string    `json:"email" db:"email"`                       // Unique login key
	Username       string    `json:"username" db:"username"`                 // Display name
	PasswordHash   string    `json:"-" db:"password"`                        // bcrypt hash, never serialized
	FirstName      string    `json:"first_name" db:"first_name"`             // Derived from username at creation
	LastName       string    `json:"last_name" db:"last_name"`               // Derived from username at creation
	CreatedAt      time.Time `json:"created_at" db:"created_at"`             // Creation timestamp
	LastModifiedAt time.Time `json:"last_modified_at" db:"last_modified_at"` // Refreshed on every mutation
}

// UserData is the public projection returned by registration and login.
// swagger:model UserData
type UserData struct {
	ID       uuid.UUID `json:"id" example:"3f2b6c1e-5d7a-4b8e-9c0d-1a2b3c4d5e6f"`
	Email    string    `json:"email" example:"jane@example.com"`
	Username string    `json:"username" example:"Jane Doe"`
}

// UserProfile is the public projection returned by the user endpoints.
// swagger:model UserProfile
type UserProfile struct {
	ID             uuid.UUID `json:"id" example:"3f2b6c1e-5d7a-4b8e-9c0d-1a2b3c4d5e6f"`
	Email          string    `json:"email" example:"jane@example.com"`
	Username       string    `json:"username" example:"Jane Doe"`
	FirstName      string    `json:"first_name" example:"Jane"`
	LastName       string    `json:"last_name" example:"Doe"`
	CreatedAt      time.Time `json:"created_at"`
	LastModifiedAt time.Time `json:"last_modified_at"`
}

// Data returns the public projection of u.
func (u *User) Data() UserData {
	return UserData{ID: u.ID, Email: u.Email, Username: u.Username}
}

// Profile returns the profile projection of u.
func (u *User) Profile() UserProfile {
	return UserProfile{
		ID:             u.ID,
		Email:          u.Email,
		Username:       u.Username,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		CreatedAt:      u.CreatedAt,
		LastModifiedAt: u.LastModifiedAt,
	}
}

// UserRegisteredEvent is published after a registration commits.
type UserRegisteredEvent struct {
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}
