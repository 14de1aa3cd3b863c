package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"bookly-backend/internal/auth"
	"bookly-backend/internal/shared/response"
	"bookly-backend/pkg/jwt"
)

// TokenKind selects which token flavor a guard accepts.
type TokenKind int

const (
	TokenKindAccess TokenKind = iota
	TokenKindRefresh
)

// Context key for the validated claims.
const claimsKey = "token_claims"

// TokenGuard validates the bearer token on every request it wraps. One
// function covers both guard variants; kind picks the required token flavor.
//
// Validation order: extract, decode, blocklist lookup, kind check. The kind
// check runs last so a structurally bad token always reads as invalid_token
// regardless of which guard it hit.
func TokenGuard(manager *jwt.Manager, blocklist auth.Blocklist, kind TokenKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			response.FromError(c, auth.ErrInvalidToken)
			return
		}

		claims := manager.Decode(token)
		if claims == nil {
			response.FromError(c, auth.ErrInvalidToken)
			return
		}

		blocked, err := blocklist.IsBlocked(c.Request.Context(), claims.JTI())
		if err != nil {
			response.FromError(c, err)
			return
		}
		if blocked {
			// A revoked jti reads as an invalid token, the caller
			// learns nothing about why.
			response.FromError(c, auth.ErrInvalidToken)
			return
		}

		if kind == TokenKindAccess && claims.Refresh {
			response.FromError(c, auth.ErrAccessTokenRequired)
			return
		}
		if kind == TokenKindRefresh && !claims.Refresh {
			response.FromError(c, auth.ErrRefreshTokenRequired)
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// ClaimsFrom returns the claims set by TokenGuard, or nil outside a guarded
// route.
func ClaimsFrom(c *gin.Context) *jwt.Claims {
	v, exists := c.Get(claimsKey)
	if !exists {
		return nil
	}
	claims, ok := v.(*jwt.Claims)
	if !ok {
		return nil
	}
	return claims
}

// bearerToken extracts the token from "Authorization: Bearer <token>".
func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}

	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}
