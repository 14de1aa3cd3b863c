package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testUser = TokenUser{
	Email:   "a@x.com",
	UserUID: "6a1f6a0e-9c2f-4a39-8d6f-0b9a34e9a111",
	Role:    "user",
}

func TestManager_IssueAccessToken(t *testing.T) {
	m := NewManager("test-secret", "HS256")

	token, err := m.Issue(testUser, 0, false)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims := m.Decode(token)
	require.NotNil(t, claims)
	assert.False(t, claims.Refresh)
	assert.Equal(t, testUser, claims.User)
	assert.NotEmpty(t, claims.JTI())
	assert.WithinDuration(t, time.Now().Add(AccessTokenExpiry), claims.ExpiresAt.Time, 5*time.Second)
}

func TestManager_IssueRefreshToken(t *testing.T) {
	m := NewManager("test-secret", "HS256")

	subject := TokenUser{Email: testUser.Email, UserUID: testUser.UserUID}
	token, err := m.Issue(subject, 0, true)
	require.NoError(t, err)

	claims := m.Decode(token)
	require.NotNil(t, claims)
	assert.True(t, claims.Refresh)
	assert.Empty(t, claims.User.Role)
	assert.WithinDuration(t, time.Now().Add(RefreshTokenExpiry), claims.ExpiresAt.Time, 5*time.Second)
}

func TestManager_JTIUniquePerIssuance(t *testing.T) {
	m := NewManager("test-secret", "HS256")

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		token, err := m.Issue(testUser, time.Minute, false)
		require.NoError(t, err)

		claims := m.Decode(token)
		require.NotNil(t, claims)
		assert.False(t, seen[claims.JTI()], "jti reused across issuances")
		seen[claims.JTI()] = true
	}
}

func TestManager_DecodeFailures(t *testing.T) {
	m := NewManager("test-secret", "HS256")

	// A negative expiry must not fall back to the default lifetime,
	// otherwise this token would still be live.
	expired, err := m.Issue(testUser, -time.Minute, false)
	require.NoError(t, err)

	other := NewManager("other-secret", "HS256")
	foreign, err := other.Issue(testUser, time.Minute, false)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"Expired", expired},
		{"WrongSecret", foreign},
		{"Malformed", "not.a.token"},
		{"Empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, m.Decode(tt.token))
		})
	}
}

func TestManager_CallerExpiryOverride(t *testing.T) {
	m := NewManager("test-secret", "HS256")

	token, err := m.Issue(testUser, 10*time.Minute, true)
	require.NoError(t, err)

	claims := m.Decode(token)
	require.NotNil(t, claims)
	assert.WithinDuration(t, time.Now().Add(10*time.Minute), claims.ExpiresAt.Time, 5*time.Second)
}
