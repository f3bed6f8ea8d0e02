package otp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/playmixer/unicredit/internal/adapters/store/errstore"
	"github.com/redis/go-redis/v9"
)

type cmdable interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) *redis.StatusCmd
	GetDel(ctx context.Context, key string) *redis.StringCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, ttl time.Duration) *redis.BoolCmd
}

type RedisStore struct {
	store  cmdable
	limit  int64
	window time.Duration
}

func NewRedisStore(ctx context.Context, cfg *Config) (*RedisStore, error) {
	raw := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := raw.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &RedisStore{
		store:  raw,
		limit:  cfg.SendLimit,
		window: cfg.SendWindow,
	}, nil
}

// Allow counts a send attempt in a fixed window. The window starts with the
// first attempt for the phone.
func (s *RedisStore) Allow(ctx context.Context, phone string) (bool, error) {
	if s.limit <= 0 {
		return true, nil
	}

	key := rateKey(phone)
	count, err := s.store.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed increment rate counter: %w", err)
	}
	if count == 1 && s.window > 0 {
		if err := s.store.Expire(ctx, key, s.window).Err(); err != nil {
			return false, fmt.Errorf("failed set rate window: %w", err)
		}
	}

	return count <= s.limit, nil
}

func (s *RedisStore) Save(ctx context.Context, phone, hash string, ttl time.Duration) error {
	if err := s.store.Set(ctx, codeKey(phone), hash, ttl).Err(); err != nil {
		return fmt.Errorf("failed store code: %w", err)
	}
	return nil
}

// Take returns the stored hash and deletes it in the same command.
func (s *RedisStore) Take(ctx context.Context, phone string) (string, error) {
	hash, err := s.store.GetDel(ctx, codeKey(phone)).Result()
	if errors.Is(err, redis.Nil) {
		return "", errstore.ErrNotFoundData
	}
	if err != nil {
		return "", fmt.Errorf("failed load code: %w", err)
	}
	return hash, nil
}
