package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenRepository keeps issued session tokens in Redis so the auth middleware
// can confirm a bearer token is still live. Logout revokes by deleting the
// lookup entry, which invalidates the token before its JWT expiry.
type TokenRepository struct {
	client *redis.Client
}

func NewTokenRepository(client *redis.Client) *TokenRepository {
	return &TokenRepository{
		client: client,
	}
}

func sessionKey(userID string) string {
	return fmt.Sprintf("session:user:%s", userID)
}

func lookupKey(token string) string {
	return fmt.Sprintf("session:token:%s", token)
}

func (r *TokenRepository) StoreToken(ctx context.Context, userID, token string, ttl time.Duration) error {
	if err := r.client.Set(ctx, sessionKey(userID), token, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}

	// reverse lookup token -> user_id for middleware validation
	if err := r.client.Set(ctx, lookupKey(token), userID, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store token lookup: %w", err)
	}

	return nil
}

// ValidateToken returns the user ID a live token belongs to.
func (r *TokenRepository) ValidateToken(ctx context.Context, token string) (string, error) {
	userID, err := r.client.Get(ctx, lookupKey(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", errors.New("token not found or expired")
		}
		return "", fmt.Errorf("failed to validate token: %w", err)
	}

	return userID, nil
}

func (r *TokenRepository) RevokeToken(ctx context.Context, userID, token string) error {
	if err := r.client.Del(ctx, lookupKey(token), sessionKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}

	return nil
}
