package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_VerifyRoundTrip(t *testing.T) {
	digest, err := HashPassword("password1")
	require.NoError(t, err)
	require.NotEmpty(t, digest)
	assert.NotEqual(t, "password1", digest)

	assert.True(t, VerifyPassword("password1", digest))
	assert.False(t, VerifyPassword("password2", digest))
}

func TestHashPassword_DigestsAreSalted(t *testing.T) {
	first, err := HashPassword("password1")
	require.NoError(t, err)
	second, err := HashPassword("password1")
	require.NoError(t, err)

	// Same plaintext, different salt, different digest
	assert.NotEqual(t, first, second)
	assert.True(t, VerifyPassword("password1", first))
	assert.True(t, VerifyPassword("password1", second))
}

func TestVerifyPassword_MalformedDigest(t *testing.T) {
	tests := []struct {
		name   string
		digest string
	}{
		{"Empty", ""},
		{"Garbage", "not-a-bcrypt-digest"},
		{"Truncated", "$2a$12$abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, VerifyPassword("password1", tt.digest))
		})
	}
}
