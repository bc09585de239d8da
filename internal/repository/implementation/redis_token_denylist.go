package implementation

import (
	"context"
	"errors"
	"time"

	"brokeria-dashboard-be/internal/repository/contract"

	"github.com/redis/go-redis/v9"
)

const revokedTokenKeyPrefix = "brokeria:revoked:"

// RedisTokenDenylist shares revocations across server instances.
type RedisTokenDenylist struct {
	rdb *redis.Client
}

func NewRedisTokenDenylist(rdb *redis.Client) contract.TokenDenylist {
	return &RedisTokenDenylist{rdb: rdb}
}

func (d *RedisTokenDenylist) Revoke(ctx context.Context, tokenId string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	return d.rdb.Set(ctx, revokedTokenKeyPrefix+tokenId, 1, ttl).Err()
}

func (d *RedisTokenDenylist) IsRevoked(ctx context.Context, tokenId string) (bool, error) {
	err := d.rdb.Get(ctx, revokedTokenKeyPrefix+tokenId).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
