package auth

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

type LoginChecker struct {
	ttl         time.Duration
	redisClient *redis.Client
}

func NewLoginChecker(ttl time.Duration, redisClient *redis.Client) *LoginChecker {
	return &LoginChecker{
		ttl:         ttl,
		redisClient: redisClient,
	}
}

// UserForToken resolves a session token to its user id.
// Unknown and expired tokens yield ok == false and no error.
func (c *LoginChecker) UserForToken(ctx context.Context, token string) (userID string, ok bool, err error) {
	cmd := c.redisClient.Get(ctx, sessionKey(token))
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, err
	}

	userID, createdAt, err := decodeSession(cmd.Val())
	if err != nil {
		return "", false, err
	}

	if time.Since(createdAt) > c.ttl {
		return "", false, nil
	}

	return userID, true, nil
}
