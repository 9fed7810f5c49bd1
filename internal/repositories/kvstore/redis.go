package kvstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// DefaultKeyPrefix namespaces local keys inside a shared Redis database
const DefaultKeyPrefix = "hydroquest:local:"

// maxUpdateAttempts bounds the optimistic retries of Update
const maxUpdateAttempts = 32

// Config holds configuration for the Redis store
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// KeyPrefix is prepended to every key, DefaultKeyPrefix when empty
	KeyPrefix string
}

// redisStore implements the Store interface using Redis strings
type redisStore struct {
	client *redis.Client
	prefix string
}

// NewRedis creates a new Redis-backed key-value store
func NewRedis(cfg *Config) (*redisStore, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}

	return &redisStore{
		client: cfg.RedisClient,
		prefix: prefix,
	}, nil
}

// Get retrieves the value under key from Redis
func (r *redisStore) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.New("key cannot be empty")
	}

	value, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get %s: %w", key, err)
	}

	return value, nil
}

// Set stores the value under key in Redis with no expiration
func (r *redisStore) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}

	if err := r.client.Set(ctx, r.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	return nil
}

// Delete removes key from Redis
func (r *redisStore) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}

	if err := r.client.Del(ctx, r.prefix+key).Err(); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}

	return nil
}

// Update runs fn inside WATCH/MULTI and retries when the key changed underneath
func (r *redisStore) Update(ctx context.Context, key string, fn UpdateFunc) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}

	if fn == nil {
		return errors.New("update func cannot be nil")
	}

	fullKey := r.prefix + key

	var fnErr error
	txf := func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, fullKey).Bytes()
		found := true
		if errors.Is(err, redis.Nil) {
			current, found = nil, false
		} else if err != nil {
			return err
		}

		next, write, err := fn(current, found)
		if err != nil {
			fnErr = err
			return err
		}

		if !write {
			return nil
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, fullKey, next, 0)
			return nil
		})
		return err
	}

	for attempt := 1; attempt <= maxUpdateAttempts; attempt++ {
		fnErr = nil

		err := r.client.Watch(ctx, txf, fullKey)
		switch {
		case err == nil:
			return nil
		case fnErr != nil:
			return fnErr
		case errors.Is(err, redis.TxFailedErr):
			logrus.WithFields(logrus.Fields{
				"key":     key,
				"attempt": attempt,
			}).Debug("concurrent write, retrying update")
		default:
			return fmt.Errorf("failed to update %s: %w", key, err)
		}
	}

	return fmt.Errorf("failed to update %s: %w", key, ErrConflict)
}
