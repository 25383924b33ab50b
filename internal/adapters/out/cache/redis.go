// Package cache keeps short-lived lookups in redis.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"messdelivery/internal/core/domain/model/kernel"
	"messdelivery/internal/core/domain/model/profile"

	"github.com/go-redis/redis/v8"
)

const DefaultTTL = 15 * time.Minute

type Config struct {
	Enabled  bool
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// RedisRoleCache stores profile roles under role:{id}. A disabled cache
// misses on every read and drops every write.
type RedisRoleCache struct {
	client  *redis.Client
	enabled bool
	ttl     time.Duration
}

func NewRedisRoleCache(cfg Config) (*RedisRoleCache, error) {
	if !cfg.Enabled {
		return &RedisRoleCache{enabled: false}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisRoleCache{client: client, enabled: true, ttl: ttl}, nil
}

func roleKey(id kernel.UUID) string {
	return fmt.Sprintf("role:%s", id)
}

func (c *RedisRoleCache) GetRole(ctx context.Context, id kernel.UUID) (profile.Role, bool, error) {
	if !c.enabled {
		return profile.UnknownRole, false, nil
	}

	value, err := c.client.Get(ctx, roleKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return profile.UnknownRole, false, nil
	}
	if err != nil {
		return profile.UnknownRole, false, err
	}

	role, err := profile.ParseRole(value)
	if err != nil {
		// stale or foreign value, treat as a miss
		return profile.UnknownRole, false, nil
	}
	return role, true, nil
}

func (c *RedisRoleCache) SetRole(ctx context.Context, id kernel.UUID, role profile.Role) error {
	if !c.enabled {
		return nil
	}
	return c.client.Set(ctx, roleKey(id), role.String(), c.ttl).Err()
}

func (c *RedisRoleCache) Close() error {
	if !c.enabled {
		return nil
	}
	return c.client.Close()
}
