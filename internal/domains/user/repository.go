package user

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the user data-access contract.
type Repository interface {
	// Create inserts a new user. Returns ErrUserAlreadyExists when the
	// email is taken.
	Create(ctx context.Context, u *User) error

	// FindByEmail is the login/current-user lookup.
	// Returns ErrUserNotFound on a miss.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// FindByUID returns ErrUserNotFound on a miss.
	FindByUID(ctx context.Context, uid uuid.UUID) (*User, error)

	// ExistsByEmail checks signup uniqueness without loading the row.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
