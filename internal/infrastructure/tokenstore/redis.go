package tokenstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/talentbridge/recruitment-client/internal/core/domain"
)

const redisKeyPrefix = "recruit:token:"

// Redis keeps the token under recruit:token:<key>, so several portal
// processes can share one session. A positive ttl makes the slot expire on
// its own.
type Redis struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

// NewRedis wraps an already connected client.
func NewRedis(client *redis.Client, key string, ttl time.Duration) *Redis {
	return &Redis{client: client, key: redisKeyPrefix + key, ttl: ttl}
}

func (r *Redis) Load(ctx context.Context) (string, error) {
	token, err := r.client.Get(ctx, r.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrNoToken
		}
		return "", fmt.Errorf("redis get token: %w", err)
	}
	if token == "" {
		return "", domain.ErrNoToken
	}
	return token, nil
}

func (r *Redis) Save(ctx context.Context, token string) error {
	if err := r.client.Set(ctx, r.key, token, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set token: %w", err)
	}
	return nil
}

func (r *Redis) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		return fmt.Errorf("redis del token: %w", err)
	}
	return nil
}

// Ping reports whether the server is reachable.
func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close releases the underlying connection pool.
func (r *Redis) Close() error {
	return r.client.Close()
}
