package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/stormapp/canteen-api/internal/core/domain"
)

// ResetTokenStore keeps password-reset tokens in Redis.
// Key format: reset:<token> → user id, expiring with the token TTL.
type ResetTokenStore struct {
	client *redis.Client
}

// NewResetTokenStore creates a ResetTokenStore wrapping the given Redis client.
func NewResetTokenStore(client *redis.Client) *ResetTokenStore {
	return &ResetTokenStore{client: client}
}

// Save stores token → userID until ttl elapses.
func (s *ResetTokenStore) Save(ctx context.Context, token, userID string, ttl time.Duration) error {
	return s.client.Set(ctx, s.key(token), userID, ttl).Err()
}

// Lookup resolves a token to its user id. An unknown or expired token maps
// to domain.ErrResetTokenInvalid.
func (s *ResetTokenStore) Lookup(ctx context.Context, token string) (string, error) {
	userID, err := s.client.Get(ctx, s.key(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrResetTokenInvalid
		}
		return "", fmt.Errorf("reset token lookup: %w", err)
	}
	return userID, nil
}

// Delete removes a consumed token.
func (s *ResetTokenStore) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, s.key(token)).Err()
}

func (s *ResetTokenStore) key(token string) string {
	return "reset:" + token
}
