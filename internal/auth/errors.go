package auth

import "errors"

// Auth subsystem errors. Handlers translate these 1:1 into
// {message, error_code, resolution} bodies, see internal/shared/response.
var (
	ErrInvalidToken            = errors.New("token is invalid or expired")
	ErrRevokedToken            = errors.New("token has been revoked")
	ErrAccessTokenRequired     = errors.New("access token required")
	ErrRefreshTokenRequired    = errors.New("refresh token required")
	ErrInsufficientPermissions = errors.New("insufficient permissions")
)
