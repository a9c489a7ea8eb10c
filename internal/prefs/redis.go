package prefs

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const darkModeKey = "inventory:prefs:dark_mode"

// RedisStore persists preferences in Redis so they survive restarts.
type RedisStore struct {
	rdb         *redis.Client
	defaultDark bool
}

// NewRedisStore creates a Redis-backed store. defaultDark is returned
// while the key is unset.
func NewRedisStore(addr, password string, db int, defaultDark bool) (*RedisStore, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &RedisStore{rdb: rdb, defaultDark: defaultDark}, nil
}

func (s *RedisStore) DarkMode(ctx context.Context) (bool, error) {
	val, err := s.rdb.Get(ctx, darkModeKey).Result()
	if err == redis.Nil {
		return s.defaultDark, nil
	}
	if err != nil {
		return s.defaultDark, fmt.Errorf("failed to read dark mode flag: %w", err)
	}
	return val == "1", nil
}

func (s *RedisStore) SetDarkMode(ctx context.Context, enabled bool) error {
	val := "0"
	if enabled {
		val = "1"
	}
	if err := s.rdb.Set(ctx, darkModeKey, val, 0).Err(); err != nil {
		return fmt.Errorf("failed to store dark mode flag: %w", err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.rdb.Close()
}
