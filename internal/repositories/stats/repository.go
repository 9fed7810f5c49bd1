package stats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/KirkDiggler/hydroquest/internal/models"
	"github.com/KirkDiggler/hydroquest/internal/repositories/kvstore"
	"github.com/sirupsen/logrus"
)

// ErrNotFound is returned when a device-local value has never been written
var ErrNotFound = errors.New("not found")

// Config holds configuration for the stats repository
type Config struct {
	// Store is the local key-value store
	Store kvstore.Store
}

// repository implements the Repository interface on a key-value store
type repository struct {
	store kvstore.Store

	// mu orders in-process writers; the store's Update orders processes
	mu sync.Mutex
}

// New creates a new stats repository
func New(cfg *Config) (*repository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Store == nil {
		return nil, errors.New("store cannot be nil")
	}

	return &repository{
		store: cfg.Store,
	}, nil
}

// GetPlayerState retrieves and migrates the player state
func (r *repository) GetPlayerState(ctx context.Context) (*models.PlayerState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := r.store.Get(ctx, KeyUserStats)
	if err == nil {
		state, changed, err := Migrate(data)
		if err != nil {
			return nil, err
		}
		if !changed {
			return state, nil
		}
	} else if !errors.Is(err, kvstore.ErrNotFound) {
		return nil, fmt.Errorf("failed to get player state: %w", err)
	}

	// Missing or outdated documents are rewritten under the store's lock.
	state, _, err := r.update(ctx, nil)
	if err != nil {
		return nil, err
	}

	return state, nil
}

// SavePlayerState persists the player state
func (r *repository) SavePlayerState(ctx context.Context, input *SavePlayerStateInput) error {
	if input == nil || input.State == nil {
		return errors.New("input and state cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.writeJSON(ctx, KeyUserStats, input.State)
}

// UpdatePlayerState reads the state, applies Mutate and writes it back when changed.
// The read and the write are one atomic step of the store, even across processes.
// Mutate reruns against the newer state when another writer commits first, so it
// must not have side effects.
func (r *repository) UpdatePlayerState(ctx context.Context, input *UpdatePlayerStateInput) (*UpdatePlayerStateOutput, error) {
	if input == nil || input.Mutate == nil {
		return nil, errors.New("input and mutate func cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	state, changed, err := r.update(ctx, input.Mutate)
	if err != nil {
		return nil, err
	}

	return &UpdatePlayerStateOutput{
		State:   state,
		Changed: changed,
	}, nil
}

// update loads, migrates and mutates the player state inside one store update.
// A nil mutate only initializes or migrates the document.
func (r *repository) update(ctx context.Context, mutate MutateFunc) (*models.PlayerState, bool, error) {
	var (
		state       *models.PlayerState
		changed     bool
		initialized bool
		migrated    bool
	)

	err := r.store.Update(ctx, KeyUserStats, func(current []byte, found bool) ([]byte, bool, error) {
		changed, initialized, migrated = false, !found, false

		if found {
			decoded, m, err := Migrate(current)
			if err != nil {
				return nil, false, err
			}
			state, migrated = decoded, m
		} else {
			state = models.NewPlayerState()
		}

		if mutate != nil {
			c, err := mutate(state)
			if err != nil {
				return nil, false, err
			}
			changed = c
		}

		if !changed && !initialized && !migrated {
			return nil, false, nil
		}

		data, err := json.Marshal(state)
		if err != nil {
			return nil, false, fmt.Errorf("failed to marshal %s: %w", KeyUserStats, err)
		}

		return data, true, nil
	})
	if err != nil {
		return nil, false, err
	}

	switch {
	case initialized:
		logrus.Info("initialized default player state")
	case migrated:
		logrus.WithField("schema_version", state.SchemaVersion).Info("migrated player state")
	}

	return state, changed, nil
}

// GetBaseline retrieves the last synced snapshot
func (r *repository) GetBaseline(ctx context.Context) (*models.PlayerState, error) {
	var baseline models.PlayerState
	if err := r.readJSON(ctx, KeyLastSyncedStats, &baseline); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &baseline, nil
}

// SaveBaseline overwrites the last synced snapshot
func (r *repository) SaveBaseline(ctx context.Context, input *SaveBaselineInput) error {
	if input == nil || input.Baseline == nil {
		return errors.New("input and baseline cannot be nil")
	}

	return r.writeJSON(ctx, KeyLastSyncedStats, input.Baseline)
}

// GetDeviceID retrieves the persisted device identifier
func (r *repository) GetDeviceID(ctx context.Context) (string, error) {
	var deviceID string
	if err := r.readJSON(ctx, KeyDeviceID, &deviceID); err != nil {
		return "", err
	}

	return deviceID, nil
}

// SaveDeviceID persists the device identifier
func (r *repository) SaveDeviceID(ctx context.Context, deviceID string) error {
	if deviceID == "" {
		return errors.New("device ID cannot be empty")
	}

	return r.writeJSON(ctx, KeyDeviceID, deviceID)
}

// GetDehydrated retrieves the dehydration flag, false when never set
func (r *repository) GetDehydrated(ctx context.Context) (bool, error) {
	var dehydrated bool
	if err := r.readJSON(ctx, KeyDehydrated, &dehydrated); err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	return dehydrated, nil
}

// SetDehydrated persists the dehydration flag
func (r *repository) SetDehydrated(ctx context.Context, dehydrated bool) error {
	return r.writeJSON(ctx, KeyDehydrated, dehydrated)
}

// GetBankGold retrieves the cached bank balance, 0 when never synced
func (r *repository) GetBankGold(ctx context.Context) (int, error) {
	data, err := r.store.Get(ctx, KeyBankGold)
	if err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get bank gold: %w", err)
	}

	bankGold, err := strconv.Atoi(string(data))
	if err != nil {
		return 0, fmt.Errorf("failed to parse bank gold: %w", err)
	}

	return bankGold, nil
}

// SetBankGold caches the bank balance
func (r *repository) SetBankGold(ctx context.Context, bankGold int) error {
	if err := r.store.Set(ctx, KeyBankGold, []byte(strconv.Itoa(bankGold))); err != nil {
		return fmt.Errorf("failed to set bank gold: %w", err)
	}

	return nil
}

// GetAuthSession retrieves the signed-in user
func (r *repository) GetAuthSession(ctx context.Context) (*models.AuthSession, error) {
	var session models.AuthSession
	if err := r.readJSON(ctx, KeyAuthSession, &session); err != nil {
		return nil, err
	}

	return &session, nil
}

// SaveAuthSession persists the signed-in user
func (r *repository) SaveAuthSession(ctx context.Context, session *models.AuthSession) error {
	if session == nil {
		return errors.New("session cannot be nil")
	}

	return r.writeJSON(ctx, KeyAuthSession, session)
}

// ClearAuthSession forgets the signed-in user
func (r *repository) ClearAuthSession(ctx context.Context) error {
	if err := r.store.Delete(ctx, KeyAuthSession); err != nil {
		return fmt.Errorf("failed to clear auth session: %w", err)
	}

	return nil
}

func (r *repository) readJSON(ctx context.Context, key string, dest any) error {
	data, err := r.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get %s: %w", key, err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", key, err)
	}

	return nil
}

func (r *repository) writeJSON(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}

	if err := r.store.Set(ctx, key, data); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}

	return nil
}
