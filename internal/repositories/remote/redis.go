package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/KirkDiggler/hydroquest/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for user documents
	userKeyPrefix = "hydroquest:user:"

	fieldStats         = "stats"
	fieldBankGold      = "bankGold"
	fieldLastUpdated   = "lastUpdated"
	fieldDevicesPrefix = "devices."
)

// ErrDocumentNotFound is returned when the account has never synced
var ErrDocumentNotFound = errors.New("remote document not found")

// Config holds configuration for the Redis remote repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using one Redis hash per account
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed remote document repository
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

func userKey(accountID string) string {
	return fmt.Sprintf("%s%s", userKeyPrefix, accountID)
}

// GetDocument reads and decodes every field of the account hash
func (r *redisRepository) GetDocument(ctx context.Context, input *GetDocumentInput) (*models.RemoteDocument, error) {
	if input == nil || input.AccountID == "" {
		return nil, errors.New("input and account ID cannot be empty")
	}

	fields, err := r.client.HGetAll(ctx, userKey(input.AccountID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get remote document: %w", err)
	}

	if len(fields) == 0 {
		return nil, ErrDocumentNotFound
	}

	doc := &models.RemoteDocument{
		Devices: map[string]models.DeviceInfo{},
	}

	for field, value := range fields {
		switch {
		case field == fieldStats:
			var cloud models.CloudStats
			if err := json.Unmarshal([]byte(value), &cloud); err != nil {
				return nil, fmt.Errorf("failed to unmarshal remote stats: %w", err)
			}
			doc.Stats = &cloud
		case field == fieldBankGold:
			bankGold, err := strconv.Atoi(value)
			if err != nil {
				return nil, fmt.Errorf("failed to parse bank gold: %w", err)
			}
			doc.BankGold = bankGold
		case field == fieldLastUpdated:
			lastUpdated, err := time.Parse(time.RFC3339Nano, value)
			if err != nil {
				return nil, fmt.Errorf("failed to parse last updated: %w", err)
			}
			doc.LastUpdated = lastUpdated
		case strings.HasPrefix(field, fieldDevicesPrefix):
			var device models.DeviceInfo
			if err := json.Unmarshal([]byte(value), &device); err != nil {
				return nil, fmt.Errorf("failed to unmarshal device %s: %w", field, err)
			}
			doc.Devices[strings.TrimPrefix(field, fieldDevicesPrefix)] = device
		}
	}

	return doc, nil
}

// MergeDocument sets the supplied fields in one transaction
func (r *redisRepository) MergeDocument(ctx context.Context, input *MergeDocumentInput) (*MergeDocumentOutput, error) {
	if input == nil || input.AccountID == "" {
		return nil, errors.New("input and account ID cannot be empty")
	}

	if input.BankGold != nil && *input.BankGold < 0 {
		return nil, errors.New("bank gold cannot be negative")
	}

	now, err := r.client.Time(ctx).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read server time: %w", err)
	}
	now = now.UTC()

	values := map[string]any{
		fieldLastUpdated: now.Format(time.RFC3339Nano),
	}

	if input.Stats != nil {
		statsJSON, err := json.Marshal(input.Stats)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal remote stats: %w", err)
		}
		values[fieldStats] = statsJSON
	}

	if input.BankGold != nil {
		values[fieldBankGold] = strconv.Itoa(*input.BankGold)
	}

	if input.Device != nil && input.Device.ID != "" {
		deviceJSON, err := json.Marshal(models.DeviceInfo{
			LastUpdated: now,
			Type:        input.Device.Type,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to marshal device: %w", err)
		}
		values[fieldDevicesPrefix+input.Device.ID] = deviceJSON
	}

	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, userKey(input.AccountID), values)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to merge remote document: %w", err)
	}

	return &MergeDocumentOutput{
		LastUpdated: now,
	}, nil
}
