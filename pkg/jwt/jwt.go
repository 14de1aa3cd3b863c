package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"bookly-backend/pkg/logger"
)

// Default token lifetimes. Refresh tokens exist only to mint new access
// tokens, so they live longer.
const (
	AccessTokenExpiry  = time.Hour
	RefreshTokenExpiry = 2 * 24 * time.Hour
)

// TokenUser is the subject summary embedded in every token.
// Refresh tokens carry email and uid only, so Role is omitted when empty.
type TokenUser struct {
	Email   string `json:"email"`
	UserUID string `json:"user_uid"`
	Role    string `json:"role,omitempty"`
}

// Claims is the signed payload. The jti lives in RegisteredClaims.ID and is
// generated fresh per issuance, which is what makes selective revocation
// possible without rotating the signing secret.
type Claims struct {
	User    TokenUser `json:"user"`
	Refresh bool      `json:"refresh"`
	jwt.RegisteredClaims
}

// JTI returns the unique token identifier used as the revocation key.
func (c *Claims) JTI() string {
	return c.ID
}

// Manager signs and verifies tokens with a server secret.
type Manager struct {
	secret []byte
	method jwt.SigningMethod
}

// NewManager creates a codec for the given secret and algorithm identifier
// (e.g. "HS256"). Unknown algorithms fall back to HS256.
func NewManager(secret, algorithm string) *Manager {
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		method = jwt.SigningMethodHS256
	}
	return &Manager{
		secret: []byte(secret),
		method: method,
	}
}

// Issue builds and signs a token for user. A zero expiry selects the default
// for the token kind; a negative expiry produces an already-expired token.
// Every call generates a new jti.
func (m *Manager) Issue(user TokenUser, expiry time.Duration, refresh bool) (string, error) {
	if expiry == 0 {
		expiry = AccessTokenExpiry
		if refresh {
			expiry = RefreshTokenExpiry
		}
	}

	now := time.Now()
	claims := Claims{
		User:    user,
		Refresh: refresh,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(m.method, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Decode verifies signature and expiry and returns the claims, or nil when
// the token is invalid in any way. The reason is logged, not surfaced, so
// callers cannot be used as a validation oracle.
func (m *Manager) Decode(tokenString string) *Claims {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != m.method.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		logger.Warn("token decode failed", err)
		return nil
	}
	if !token.Valid {
		logger.Warn("token rejected", nil)
		return nil
	}

	return claims
}
