package user

import (
	"context"

	"bookly-backend/pkg/jwt"
)

// Service is the auth/user business-logic contract.
type Service interface {
	// Signup creates an account with the default user role.
	// Returns ErrUserAlreadyExists when the email is taken.
	Signup(ctx context.Context, req SignupRequest) (*UserView, error)

	// Login verifies credentials and issues an access + refresh token
	// pair. Unknown email and wrong password both return
	// ErrInvalidCredentials.
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)

	// Refresh mints a new access token from validated refresh claims.
	Refresh(ctx context.Context, claims *jwt.Claims) (*RefreshResponse, error)

	// Logout revokes the presented access token's jti. The paired
	// refresh token stays valid.
	Logout(ctx context.Context, jti string) error

	// Profile builds the /auth/me view: the user plus owned books.
	Profile(ctx context.Context, u *User) (*UserBooksView, error)
}
