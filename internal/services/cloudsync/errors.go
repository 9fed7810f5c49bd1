package cloudsync

// SyncError is a custom error type for sync-related errors
type SyncError string

// Error implements the error interface
func (e SyncError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNotSignedIn      SyncError = "sign in to sync"
	ErrRemoteRead       SyncError = "failed to read cloud data"
	ErrRemotePush       SyncError = "failed to push to cloud"
	ErrBankDesync       SyncError = "cloud sync failed, gold might appear desynced until next refresh"
	ErrInvalidAmount    SyncError = "amount must be greater than zero"
	ErrInsufficientGold SyncError = "not enough gold"
	ErrInsufficientBank SyncError = "not enough gold in bank"
	ErrNilConfig        SyncError = "config cannot be nil"
	ErrNilStatsRepo     SyncError = "stats repository cannot be nil"
	ErrNilRemoteRepo    SyncError = "remote repository cannot be nil"
	ErrNilDeviceService SyncError = "device service cannot be nil"
)
