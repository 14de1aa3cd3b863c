package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookly-backend/internal/auth"
	"bookly-backend/internal/domains/book"
	"bookly-backend/internal/domains/user"
	userservice "bookly-backend/internal/domains/user/service"
	"bookly-backend/internal/shared/middleware"
	"bookly-backend/pkg/jwt"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeUserRepo struct {
	byEmail map[string]*user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*user.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *user.User) error {
	if _, ok := f.byEmail[u.Email]; ok {
		return user.ErrUserAlreadyExists
	}
	f.byEmail[u.Email] = u
	return nil
}

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

type fakeBookRepo struct{}

func (fakeBookRepo) List(ctx context.Context) ([]book.Book, error) { return nil, nil }
func (fakeBookRepo) ListByUser(ctx context.Context, userUID uuid.UUID) ([]book.Book, error) {
	return nil, nil
}
func (fakeBookRepo) GetByUID(ctx context.Context, uid uuid.UUID) (*book.Book, error) {
	return nil, book.ErrBookNotFound
}
func (fakeBookRepo) Create(ctx context.Context, b *book.Book) error  { return nil }
func (fakeBookRepo) Update(ctx context.Context, b *book.Book) error  { return nil }
func (fakeBookRepo) Delete(ctx context.Context, uid uuid.UUID) error { return nil }

type fakeBlocklist struct {
	blocked map[string]bool
}

func newFakeBlocklist() *fakeBlocklist {
	return &fakeBlocklist{blocked: make(map[string]bool)}
}

func (f *fakeBlocklist) Block(ctx context.Context, jti string) error {
	f.blocked[jti] = true
	return nil
}

func (f *fakeBlocklist) IsBlocked(ctx context.Context, jti string) (bool, error) {
	return f.blocked[jti], nil
}

// newAuthRouter wires the auth routes the way the real router does.
func newAuthRouter(t *testing.T) (*gin.Engine, *fakeBlocklist) {
	t.Helper()

	users := newFakeUserRepo()
	blocklist := newFakeBlocklist()
	manager := jwt.NewManager("test-secret", "HS256")
	svc := userservice.NewUserService(users, fakeBookRepo{}, manager, blocklist, 0, 0)
	h := NewUserHandler(svc)

	accessGuard := middleware.TokenGuard(manager, blocklist, middleware.TokenKindAccess)
	refreshGuard := middleware.TokenGuard(manager, blocklist, middleware.TokenKindRefresh)
	currentUser := middleware.CurrentUser(users)
	anyRole := middleware.RequireRoles(user.RoleAdmin, user.RoleUser)

	r := gin.New()
	authRoutes := r.Group("/api/v1/auth")
	authRoutes.POST("/signup", h.Signup)
	authRoutes.POST("/login", h.Login)
	authRoutes.GET("/refresh_token", refreshGuard, h.Refresh)
	authRoutes.POST("/logout", accessGuard, h.Logout)
	authRoutes.GET("/me", accessGuard, currentUser, anyRole, h.Me)

	return r, blocklist
}

func postJSON(r *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func getWithToken(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	return requestWithToken(r, http.MethodGet, path, token)
}

func postWithToken(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	return requestWithToken(r, http.MethodPost, path, token)
}

func requestWithToken(r *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func signupPayload() map[string]string {
	return map[string]string{
		"username":   "jsmith",
		"email":      "jsmith@example.com",
		"first_name": "John",
		"last_name":  "Smith",
		"password":   "super-secret-1",
	}
}

func TestAuthFlow(t *testing.T) {
	r, _ := newAuthRouter(t)

	// Signup
	w := postJSON(r, "/api/v1/auth/signup", signupPayload())
	require.Equal(t, http.StatusCreated, w.Code)
	assert.NotContains(t, w.Body.String(), "password")

	// Duplicate signup
	w = postJSON(r, "/api/v1/auth/signup", signupPayload())
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "user_exists")

	// Login
	w = postJSON(r, "/api/v1/auth/login", map[string]string{
		"email":    "jsmith@example.com",
		"password": "super-secret-1",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var login struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	require.NotEmpty(t, login.AccessToken)
	require.NotEmpty(t, login.RefreshToken)

	// Current user with an empty book list
	w = getWithToken(r, "/api/v1/auth/me", login.AccessToken)
	require.Equal(t, http.StatusOK, w.Code)

	var me struct {
		Email string      `json:"email"`
		Books []book.Book `json:"books"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &me))
	assert.Equal(t, "jsmith@example.com", me.Email)
	assert.NotNil(t, me.Books)
	assert.Empty(t, me.Books)

	// Refresh mints a fresh access token
	w = getWithToken(r, "/api/v1/auth/refresh_token", login.RefreshToken)
	require.Equal(t, http.StatusOK, w.Code)

	var refreshed struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &refreshed))
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.NotEqual(t, login.AccessToken, refreshed.AccessToken)
}

func TestLogout_RevokesAccessTokenOnly(t *testing.T) {
	r, _ := newAuthRouter(t)

	w := postJSON(r, "/api/v1/auth/signup", signupPayload())
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(r, "/api/v1/auth/login", map[string]string{
		"email":    "jsmith@example.com",
		"password": "super-secret-1",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var login struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))

	w = postWithToken(r, "/api/v1/auth/logout", login.AccessToken)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Logout successful")

	// The access token is now revoked
	w = getWithToken(r, "/api/v1/auth/me", login.AccessToken)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_token")

	// The paired refresh token still works
	w = getWithToken(r, "/api/v1/auth/refresh_token", login.RefreshToken)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSignup_ValidationFailureIs400(t *testing.T) {
	r, _ := newAuthRouter(t)

	payload := signupPayload()
	payload["password"] = "short"

	// Validation runs in the service; the failure still surfaces as a
	// 400, not an internal error.
	w := postJSON(r, "/api/v1/auth/signup", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "bad_request")
}

func TestLogin_InvalidCredentialsCode(t *testing.T) {
	r, _ := newAuthRouter(t)

	w := postJSON(r, "/api/v1/auth/signup", signupPayload())
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(r, "/api/v1/auth/login", map[string]string{
		"email":    "jsmith@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_credentials")
}

func TestRefresh_RejectsAccessToken(t *testing.T) {
	r, _ := newAuthRouter(t)

	manager := jwt.NewManager("test-secret", "HS256")
	token, err := manager.Issue(jwt.TokenUser{Email: "a@x.com", UserUID: uuid.NewString()}, 0, false)
	require.NoError(t, err)

	w := getWithToken(r, "/api/v1/auth/refresh_token", token)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "refresh_token_required")
}

var _ auth.Blocklist = (*fakeBlocklist)(nil)
