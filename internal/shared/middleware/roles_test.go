package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookly-backend/internal/domains/user"
	"bookly-backend/pkg/jwt"
)

// fakeUserRepo serves users by email.
type fakeUserRepo struct {
	byEmail map[string]*user.User
}

func (f *fakeUserRepo) Create(ctx context.Context, u *user.User) error { return nil }

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) FindByUID(ctx context.Context, uid uuid.UUID) (*user.User, error) {
	for _, u := range f.byEmail {
		if u.UID == uid {
			return u, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, ok := f.byEmail[email]
	return ok, nil
}

func rolesRouter(manager *jwt.Manager, repo user.Repository, allowed ...user.Role) *gin.Engine {
	r := gin.New()
	r.GET("/admin-only",
		TokenGuard(manager, newFakeBlocklist(), TokenKindAccess),
		CurrentUser(repo),
		RequireRoles(allowed...),
		func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"role": UserFrom(c).Role})
		})
	return r
}

func TestAuthorized(t *testing.T) {
	both := []user.Role{user.RoleUser, user.RoleAdmin}

	assert.True(t, Authorized(user.RoleUser, both))
	assert.True(t, Authorized(user.RoleAdmin, both))
	assert.False(t, Authorized(user.RoleUser, []user.Role{user.RoleAdmin}))
	assert.False(t, Authorized(user.RoleAdmin, nil))
}

func TestRequireRoles_RejectsUserForAdminRoute(t *testing.T) {
	manager := jwt.NewManager("test-secret", "HS256")
	repo := &fakeUserRepo{byEmail: map[string]*user.User{
		"a@x.com": {UID: uuid.New(), Email: "a@x.com", Role: user.RoleUser},
	}}
	r := rolesRouter(manager, repo, user.RoleAdmin)

	// Token is perfectly valid, the role is what fails
	token, err := manager.Issue(jwt.TokenUser{Email: "a@x.com", UserUID: "u-1", Role: "user"}, 0, false)
	require.NoError(t, err)

	w := getWithToken(r, "/admin-only", token)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "insufficient_permissions", errorCode(t, w))
}

func TestRequireRoles_AdminPasses(t *testing.T) {
	manager := jwt.NewManager("test-secret", "HS256")
	repo := &fakeUserRepo{byEmail: map[string]*user.User{
		"admin@x.com": {UID: uuid.New(), Email: "admin@x.com", Role: user.RoleAdmin},
	}}
	r := rolesRouter(manager, repo, user.RoleAdmin)

	token, err := manager.Issue(jwt.TokenUser{Email: "admin@x.com", UserUID: "u-2", Role: "admin"}, 0, false)
	require.NoError(t, err)

	w := getWithToken(r, "/admin-only", token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCurrentUser_SubjectGone(t *testing.T) {
	manager := jwt.NewManager("test-secret", "HS256")
	repo := &fakeUserRepo{byEmail: map[string]*user.User{}}
	r := rolesRouter(manager, repo, user.RoleUser, user.RoleAdmin)

	token, err := manager.Issue(jwt.TokenUser{Email: "ghost@x.com", UserUID: "u-3", Role: "user"}, 0, false)
	require.NoError(t, err)

	w := getWithToken(r, "/admin-only", token)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "user_not_found", errorCode(t, w))
}

func getWithToken(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
