package cloudsync

import (
	"time"

	"github.com/KirkDiggler/hydroquest/internal/metrics"
	"github.com/KirkDiggler/hydroquest/internal/models"
	"github.com/KirkDiggler/hydroquest/internal/repositories/remote"
	"github.com/KirkDiggler/hydroquest/internal/repositories/stats"
	"github.com/KirkDiggler/hydroquest/internal/services/device"
)

// DefaultDeviceType is recorded for devices that do not configure one
const DefaultDeviceType = "cli"

// Config holds configuration for the sync service
type Config struct {
	// DeviceType is recorded next to the device ID in the remote document
	DeviceType string

	StatsRepo  stats.Repository
	RemoteRepo remote.Repository
	Devices    device.Service

	// Metrics is optional
	Metrics *metrics.Recorder
}

// SyncInput contains parameters for a sync
type SyncInput struct{}

// SyncOutput contains the result of a sync
type SyncOutput struct {
	// State is the merged local state
	State *models.PlayerState

	// RemoteFound is false on the first sync of an account
	RemoteFound bool

	BankGold int

	// LastUpdated is the server time of the push
	LastUpdated time.Time
}

// BankInput contains parameters for a deposit or withdrawal
type BankInput struct {
	Amount int
}

// RefreshBankInput contains parameters for reloading the bank balance
type RefreshBankInput struct{}

// BankOutput contains the balances after a bank operation
type BankOutput struct {
	Gold     int
	BankGold int
}
