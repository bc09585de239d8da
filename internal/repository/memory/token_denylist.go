package memory

import (
	"context"
	"time"

	"brokeria-dashboard-be/internal/repository/contract"

	"github.com/patrickmn/go-cache"
)

// TokenDenylist keeps revoked token ids in process memory. Entries expire
// together with the token they revoke, so the map never outgrows the set of
// still-valid sessions.
type TokenDenylist struct {
	cache *cache.Cache
	now   func() time.Time
}

func NewTokenDenylist() *TokenDenylist {
	return &TokenDenylist{
		cache: cache.New(cache.NoExpiration, 10*time.Minute),
		now:   time.Now,
	}
}

var _ contract.TokenDenylist = (*TokenDenylist)(nil)

func (d *TokenDenylist) Revoke(_ context.Context, tokenId string, expiresAt time.Time) error {
	ttl := expiresAt.Sub(d.now())
	if ttl <= 0 {
		// Already expired; signature verification rejects it anyway.
		return nil
	}
	d.cache.Set(tokenId, struct{}{}, ttl)
	return nil
}

func (d *TokenDenylist) IsRevoked(_ context.Context, tokenId string) (bool, error) {
	_, found := d.cache.Get(tokenId)
	return found, nil
}
