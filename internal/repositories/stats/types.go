package stats

import "github.com/KirkDiggler/hydroquest/internal/models"

// Keys of the local key-value store
const (
	KeyUserStats       = "userStats"
	KeyDeviceID        = "deviceId"
	KeyLastSyncedStats = "lastSyncedStats"
	KeyDehydrated      = "dehydrated"
	KeyBankGold        = "bankGold"
	KeyAuthSession     = "authSession"
)

// SavePlayerStateInput contains parameters for saving the player state
type SavePlayerStateInput struct {
	State *models.PlayerState
}

// MutateFunc mutates state in place and reports whether anything changed
type MutateFunc func(state *models.PlayerState) (bool, error)

// UpdatePlayerStateInput contains parameters for a read-modify-write
type UpdatePlayerStateInput struct {
	Mutate MutateFunc
}

// UpdatePlayerStateOutput contains the result of a read-modify-write
type UpdatePlayerStateOutput struct {
	// State is the state after Mutate ran
	State *models.PlayerState

	// Changed reports whether the state was written back
	Changed bool
}

// SaveBaselineInput contains parameters for saving the sync baseline
type SaveBaselineInput struct {
	Baseline *models.PlayerState
}
