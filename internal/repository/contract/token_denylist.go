package contract

import (
	"context"
	"time"
)

// TokenDenylist records revoked session token ids until their natural expiry.
type TokenDenylist interface {
	Revoke(ctx context.Context, tokenId string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenId string) (bool, error)
}
