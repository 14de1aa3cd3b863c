package user

import (
	"time"

	"github.com/google/uuid"
)

// Role is the coarse permission label attached to a user.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User entity. PasswordHash is never serialized outward.
type User struct {
	UID          uuid.UUID `json:"uid" db:"uid"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	FirstName    string    `json:"first_name" db:"first_name"`
	LastName     string    `json:"last_name" db:"last_name"`
	Role         Role      `json:"role" db:"role"`
	IsVerified   bool      `json:"is_verified" db:"is_verified"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
