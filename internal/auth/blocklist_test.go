package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookly-backend/pkg/jwt"
)

// memoryCache is an in-memory stand-in for the redis-backed cache.
type memoryCache struct {
	entries map[string]time.Duration
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string]time.Duration)}
}

func (m *memoryCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	_, ok := m.entries[key]
	return ok, nil
}

func (m *memoryCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	m.entries[key] = ttl
	return nil
}

func (m *memoryCache) Delete(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		delete(m.entries, k)
	}
	return nil
}

func (m *memoryCache) Exists(ctx context.Context, key string) (bool, error) {
	_, ok := m.entries[key]
	return ok, nil
}

func (m *memoryCache) Ping(ctx context.Context) error { return nil }

func TestBlocklist_BlockAndCheck(t *testing.T) {
	store := newMemoryCache()
	bl := NewBlocklist(store, time.Hour)
	ctx := context.Background()

	blocked, err := bl.IsBlocked(ctx, "some-jti")
	require.NoError(t, err)
	assert.False(t, blocked)

	require.NoError(t, bl.Block(ctx, "some-jti"))

	blocked, err = bl.IsBlocked(ctx, "some-jti")
	require.NoError(t, err)
	assert.True(t, blocked)

	// Other jtis stay unaffected
	blocked, err = bl.IsBlocked(ctx, "another-jti")
	require.NoError(t, err)
	assert.False(t, blocked)
}

func TestBlocklist_TTLCoversRefreshExpiry(t *testing.T) {
	store := newMemoryCache()
	bl := NewBlocklist(store, 0)
	ctx := context.Background()

	require.NoError(t, bl.Block(ctx, "jti-1"))

	ttl, ok := store.entries[blocklistPrefix+"jti-1"]
	require.True(t, ok)
	assert.GreaterOrEqual(t, ttl, jwt.RefreshTokenExpiry)
}
