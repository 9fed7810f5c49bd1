package account

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/hydroquest/internal/models"
	"github.com/redis/go-redis/v9"
)

// Key prefix for Redis
const accountKeyPrefix = "hydroquest:account:"

var (
	// ErrAccountNotFound is returned when no account uses the email
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountExists is returned when the email is already registered
	ErrAccountExists = errors.New("account already exists")
)

// Config holds configuration for the Redis account repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed account repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// CreateAccount stores the account only if the email is unused
func (r *redisRepository) CreateAccount(ctx context.Context, input *CreateAccountInput) error {
	if input == nil || input.Account == nil {
		return errors.New("input and account cannot be nil")
	}

	if input.Account.Email == "" || input.Account.ID == "" {
		return errors.New("account ID and email cannot be empty")
	}

	accountJSON, err := json.Marshal(input.Account)
	if err != nil {
		return fmt.Errorf("failed to marshal account: %w", err)
	}

	created, err := r.client.SetNX(ctx, accountKeyPrefix+input.Account.Email, accountJSON, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to save account: %w", err)
	}

	if !created {
		return ErrAccountExists
	}

	return nil
}

// GetAccountByEmail retrieves an account by its normalized email
func (r *redisRepository) GetAccountByEmail(ctx context.Context, input *GetAccountByEmailInput) (*models.Account, error) {
	if input == nil || input.Email == "" {
		return nil, errors.New("input and email cannot be empty")
	}

	accountJSON, err := r.client.Get(ctx, accountKeyPrefix+input.Email).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	var account models.Account
	if err := json.Unmarshal([]byte(accountJSON), &account); err != nil {
		return nil, fmt.Errorf("failed to unmarshal account: %w", err)
	}

	return &account, nil
}
