package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenStore keeps the set of live refresh tokens in Redis.
// Key format: refresh:<jti>, expiring with the token itself.
type TokenStore struct {
	client *redis.Client
}

// NewTokenStore creates a TokenStore wrapping the given Redis client.
func NewTokenStore(client *redis.Client) *TokenStore {
	return &TokenStore{client: client}
}

// Save records a refresh token's JTI for ttl.
func (s *TokenStore) Save(ctx context.Context, jti string, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.key(jti), "1", ttl).Err(); err != nil {
		return fmt.Errorf("save refresh token: %w", err)
	}
	return nil
}

// Consume removes the JTI and reports whether it was present, making
// each refresh token single-use.
func (s *TokenStore) Consume(ctx context.Context, jti string) (bool, error) {
	err := s.client.GetDel(ctx, s.key(jti)).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("consume refresh token: %w", err)
	}
	return true, nil
}

func (s *TokenStore) key(jti string) string {
	return "refresh:" + jti
}
