package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"bookly-backend/internal/auth"
	"bookly-backend/internal/domains/book"
	"bookly-backend/internal/domains/user"
	"bookly-backend/pkg/hash"
	"bookly-backend/pkg/jwt"
)

// userService implements user.Service.
type userService struct {
	users         user.Repository
	books         book.Repository
	tokens        *jwt.Manager
	blocklist     auth.Blocklist
	accessExpiry  time.Duration
	refreshExpiry time.Duration
}

// NewUserService wires the auth/user business logic. Zero expiries fall
// back to the codec defaults.
func NewUserService(
	users user.Repository,
	books book.Repository,
	tokens *jwt.Manager,
	blocklist auth.Blocklist,
	accessExpiry time.Duration,
	refreshExpiry time.Duration,
) user.Service {
	return &userService{
		users:         users,
		books:         books,
		tokens:        tokens,
		blocklist:     blocklist,
		accessExpiry:  accessExpiry,
		refreshExpiry: refreshExpiry,
	}
}

func (s *userService) Signup(ctx context.Context, req user.SignupRequest) (*user.UserView, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check email exists: %w", err)
	}
	if exists {
		return nil, user.ErrUserAlreadyExists
	}

	passwordHash, err := hash.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	newUser := &user.User{
		UID:          uuid.New(),
		Username:     req.Username,
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         user.RoleUser,
		IsVerified:   false,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(ctx, newUser); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	view := newUser.ToView()
	return &view, nil
}

func (s *userService) Login(ctx context.Context, req user.LoginRequest) (*user.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			// Same failure as a wrong password, no user enumeration
			return nil, user.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !hash.VerifyPassword(req.Password, u.PasswordHash) {
		return nil, user.ErrInvalidCredentials
	}

	accessToken, err := s.tokens.Issue(jwt.TokenUser{
		Email:   u.Email,
		UserUID: u.UID.String(),
		Role:    string(u.Role),
	}, s.accessExpiry, false)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}

	refreshToken, err := s.tokens.Issue(jwt.TokenUser{
		Email:   u.Email,
		UserUID: u.UID.String(),
	}, s.refreshExpiry, true)
	if err != nil {
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}

	return &user.LoginResponse{
		Message:      "Login Successful",
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User: user.TokenUserView{
			Email:   u.Email,
			UserUID: u.UID,
		},
	}, nil
}

func (s *userService) Refresh(ctx context.Context, claims *jwt.Claims) (*user.RefreshResponse, error) {
	if claims == nil || !claims.Refresh {
		return nil, auth.ErrInvalidToken
	}

	accessToken, err := s.tokens.Issue(claims.User, s.accessExpiry, false)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}

	return &user.RefreshResponse{AccessToken: accessToken}, nil
}

func (s *userService) Logout(ctx context.Context, jti string) error {
	if err := s.blocklist.Block(ctx, jti); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

func (s *userService) Profile(ctx context.Context, u *user.User) (*user.UserBooksView, error) {
	books, err := s.books.ListByUser(ctx, u.UID)
	if err != nil {
		return nil, fmt.Errorf("list user books: %w", err)
	}
	if books == nil {
		books = []book.Book{}
	}

	return &user.UserBooksView{
		UserView: u.ToView(),
		Books:    books,
	}, nil
}
