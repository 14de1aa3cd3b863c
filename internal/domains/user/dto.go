package user

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"

	"bookly-backend/internal/domains/book"
)

// SignupRequest creates a new user account.
type SignupRequest struct {
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Password  string `json:"password" binding:"required"`
}

func (r SignupRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username,
			validation.Required.Error("username is required"),
			validation.Length(1, 20),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("invalid email format"),
			validation.Length(5, 40),
		),
		validation.Field(&r.FirstName,
			validation.Required.Error("first name is required"),
			validation.Length(1, 25),
		),
		validation.Field(&r.LastName,
			validation.Required.Error("last name is required"),
			validation.Length(1, 25),
		),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
			validation.Length(8, 128).Error("password must be 8-128 characters"),
		),
	)
}

// LoginRequest authenticates by email + password.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

// UserView is the public user representation (no password hash).
type UserView struct {
	UID        uuid.UUID `json:"uid"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Role       Role      `json:"role"`
	IsVerified bool      `json:"is_verified"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (u *User) ToView() UserView {
	return UserView{
		UID:        u.UID,
		Username:   u.Username,
		Email:      u.Email,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Role:       u.Role,
		IsVerified: u.IsVerified,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

// UserBooksView is the /auth/me payload: the user plus owned books.
// Books is always non-nil so a fresh account serializes an empty list.
type UserBooksView struct {
	UserView
	Books []book.Book `json:"books"`
}

// TokenUserView is the subject summary echoed back on login.
type TokenUserView struct {
	Email   string    `json:"email"`
	UserUID uuid.UUID `json:"user_uid"`
}

// LoginResponse carries the freshly issued token pair.
type LoginResponse struct {
	Message      string        `json:"message"`
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	User         TokenUserView `json:"user"`
}

// RefreshResponse carries a re-issued access token.
type RefreshResponse struct {
	AccessToken string `json:"access_token"`
}
