package tokens

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/VetCareServices/vetclinic-api/internal/config"
)

// Store keeps revoked token IDs until their natural expiry. A logout writes
// the jti here; the auth middleware refuses tokens it finds.
type Store struct {
	rdb *redis.Client
}

func NewStore(cfg *config.Config) *Store {
	return &Store{
		rdb: redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		}),
	}
}

func key(jti string) string {
	return "revoked_token:" + jti
}

func (s *Store) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return s.rdb.Set(ctx, key(jti), "1", ttl).Err()
}

func (s *Store) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := s.rdb.Exists(ctx, key(jti)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
