package user

import "errors"

var (
	// ErrUserNotFound when a lookup by uid or email misses.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists when signing up with a taken email.
	ErrUserAlreadyExists = errors.New("user with email already exists")

	// ErrInvalidCredentials covers both unknown email and wrong password.
	// The two cases are deliberately indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
