package stats

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/hydroquest/internal/repositories/stats Repository

import (
	"context"

	"github.com/KirkDiggler/hydroquest/internal/models"
)

// Repository defines the interface for device-local player data persistence
type Repository interface {
	// GetPlayerState retrieves the migrated player state, creating defaults on first use
	GetPlayerState(ctx context.Context) (*models.PlayerState, error)

	// SavePlayerState persists the player state
	SavePlayerState(ctx context.Context, input *SavePlayerStateInput) error

	// UpdatePlayerState runs a serialized read-modify-write of the player state
	UpdatePlayerState(ctx context.Context, input *UpdatePlayerStateInput) (*UpdatePlayerStateOutput, error)

	// GetBaseline retrieves the snapshot of the last successful sync, nil if none
	GetBaseline(ctx context.Context) (*models.PlayerState, error)

	// SaveBaseline overwrites the sync baseline
	SaveBaseline(ctx context.Context, input *SaveBaselineInput) error

	// GetDeviceID retrieves the persisted device identifier or ErrNotFound
	GetDeviceID(ctx context.Context) (string, error)

	// SaveDeviceID persists the device identifier
	SaveDeviceID(ctx context.Context, deviceID string) error

	// GetDehydrated retrieves the dehydration effect flag
	GetDehydrated(ctx context.Context) (bool, error)

	// SetDehydrated persists the dehydration effect flag
	SetDehydrated(ctx context.Context, dehydrated bool) error

	// GetBankGold retrieves the cached remote bank balance
	GetBankGold(ctx context.Context) (int, error)

	// SetBankGold caches the remote bank balance
	SetBankGold(ctx context.Context, bankGold int) error

	// GetAuthSession retrieves the signed-in user or ErrNotFound
	GetAuthSession(ctx context.Context) (*models.AuthSession, error)

	// SaveAuthSession persists the signed-in user
	SaveAuthSession(ctx context.Context, session *models.AuthSession) error

	// ClearAuthSession forgets the signed-in user
	ClearAuthSession(ctx context.Context) error
}
