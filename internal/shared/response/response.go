package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rs/zerolog/log"

	"bookly-backend/internal/auth"
	"bookly-backend/internal/domains/book"
	"bookly-backend/internal/domains/review"
	"bookly-backend/internal/domains/user"
)

// ErrorBody is the wire shape for every error response.
type ErrorBody struct {
	Message    string `json:"message"`
	ErrorCode  string `json:"error_code"`
	Resolution string `json:"resolution,omitempty"`
}

// Error writes an error body and aborts the request.
func Error(c *gin.Context, status int, message, errorCode string) {
	c.AbortWithStatusJSON(status, ErrorBody{
		Message:   message,
		ErrorCode: errorCode,
	})
}

// ErrorWithResolution additionally tells the caller how to recover.
func ErrorWithResolution(c *gin.Context, status int, message, errorCode, resolution string) {
	c.AbortWithStatusJSON(status, ErrorBody{
		Message:    message,
		ErrorCode:  errorCode,
		Resolution: resolution,
	})
}

// BadRequest is the validation-failure response.
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message, "bad_request")
}

// FromError translates a domain error 1:1 into its fixed status and
// error_code. Anything outside the taxonomy is logged and reported as a
// generic 500 with no detail leaked to the caller.
func FromError(c *gin.Context, err error) {
	var validationErrs validation.Errors
	switch {
	case errors.As(err, &validationErrs):
		BadRequest(c, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		ErrorWithResolution(c, http.StatusUnauthorized,
			"Invalid token", "invalid_token", "Please get a new token")
	case errors.Is(err, auth.ErrRevokedToken):
		ErrorWithResolution(c, http.StatusUnauthorized,
			"Token has been revoked", "revoked_token", "Please get a new token")
	case errors.Is(err, auth.ErrAccessTokenRequired):
		ErrorWithResolution(c, http.StatusUnauthorized,
			"Access token required", "access_token_required", "Please provide an access token")
	case errors.Is(err, auth.ErrRefreshTokenRequired):
		ErrorWithResolution(c, http.StatusForbidden,
			"Refresh token required", "refresh_token_required", "Please provide a refresh token")
	case errors.Is(err, auth.ErrInsufficientPermissions):
		Error(c, http.StatusForbidden,
			"Insufficient permissions", "insufficient_permissions")
	case errors.Is(err, user.ErrInvalidCredentials):
		Error(c, http.StatusBadRequest,
			"Invalid credentials", "invalid_credentials")
	case errors.Is(err, user.ErrUserAlreadyExists):
		Error(c, http.StatusForbidden,
			"User with email already exists", "user_exists")
	case errors.Is(err, user.ErrUserNotFound):
		Error(c, http.StatusNotFound,
			"User not found", "user_not_found")
	case errors.Is(err, book.ErrBookNotFound):
		Error(c, http.StatusNotFound,
			"Book not found", "book_not_found")
	case errors.Is(err, review.ErrReviewNotFound):
		Error(c, http.StatusNotFound,
			"Review not found", "review_not_found")
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("unhandled error")
		Error(c, http.StatusInternalServerError,
			"Oops! Something went wrong", "internal_error")
	}
}
