package middleware

import (
	"github.com/gin-gonic/gin"

	"bookly-backend/internal/auth"
	"bookly-backend/internal/domains/user"
	"bookly-backend/internal/shared/response"
)

// Context key for the resolved current user.
const currentUserKey = "current_user"

// CurrentUser resolves the token subject against the user store and puts the
// full user row in the request context. Must run after an access-token guard.
func CurrentUser(users user.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := ClaimsFrom(c)
		if claims == nil {
			response.FromError(c, auth.ErrInvalidToken)
			return
		}

		u, err := users.FindByEmail(c.Request.Context(), claims.User.Email)
		if err != nil {
			response.FromError(c, err)
			return
		}

		c.Set(currentUserKey, u)
		c.Next()
	}
}

// UserFrom returns the user set by CurrentUser, or nil outside its scope.
func UserFrom(c *gin.Context) *user.User {
	v, exists := c.Get(currentUserKey)
	if !exists {
		return nil
	}
	u, ok := v.(*user.User)
	if !ok {
		return nil
	}
	return u
}

// Authorized is the pure role membership test the role guard is built on.
func Authorized(role user.Role, allowed []user.Role) bool {
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}

// RequireRoles rejects requests whose current user's role is not in the
// allowed set. The set is bound per route at registration time.
func RequireRoles(allowed ...user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		u := UserFrom(c)
		if u == nil || !Authorized(u.Role, allowed) {
			response.FromError(c, auth.ErrInsufficientPermissions)
			return
		}
		c.Next()
	}
}
