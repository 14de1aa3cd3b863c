package auth

import (
	"context"
	"fmt"
	"time"

	"bookly-backend/pkg/cache"
	"bookly-backend/pkg/jwt"
)

// Key prefix keeps revoked jtis out of the way of other cache entries.
const blocklistPrefix = "token_blocklist:"

// Blocklist is the token revocation store. Blocking a jti is permanent for
// the token's lifetime; there is no un-revoke operation.
type Blocklist interface {
	// Block revokes a token identifier.
	Block(ctx context.Context, jti string) error

	// IsBlocked reports whether a token identifier has been revoked.
	IsBlocked(ctx context.Context, jti string) (bool, error)
}

type tokenBlocklist struct {
	cache cache.Cache
	ttl   time.Duration
}

// NewBlocklist builds a blocklist over the shared cache. The entry TTL must
// be at least the longest token lifetime so a revoked jti can never outlive
// its blocklist entry; a non-positive ttl defaults to the refresh expiry.
func NewBlocklist(c cache.Cache, ttl time.Duration) Blocklist {
	if ttl <= 0 {
		ttl = jwt.RefreshTokenExpiry
	}
	return &tokenBlocklist{
		cache: c,
		ttl:   ttl,
	}
}

func (b *tokenBlocklist) Block(ctx context.Context, jti string) error {
	if err := b.cache.Set(ctx, blocklistPrefix+jti, "", b.ttl); err != nil {
		return fmt.Errorf("block jti: %w", err)
	}
	return nil
}

func (b *tokenBlocklist) IsBlocked(ctx context.Context, jti string) (bool, error) {
	blocked, err := b.cache.Exists(ctx, blocklistPrefix+jti)
	if err != nil {
		return false, fmt.Errorf("check jti: %w", err)
	}
	return blocked, nil
}
