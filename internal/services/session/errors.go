package session

// SessionError is a custom error type for session-related errors
type SessionError string

// Error implements the error interface
func (e SessionError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidGoal     SessionError = "water goal must be greater than zero and at most 1000 liters"
	ErrInvalidDuration SessionError = "duration must be between one minute and one week"
	ErrMonsterLocked   SessionError = "monster is not unlocked"
	ErrInvalidMonster  SessionError = "monster ID cannot be empty"
	ErrInvalidCost     SessionError = "monster cost cannot be negative"
	ErrUnknownEvent    SessionError = "unknown session event"
	ErrNilConfig       SessionError = "config cannot be nil"
	ErrNilStatsRepo    SessionError = "stats repository cannot be nil"
	ErrNilScheduler    SessionError = "alarm scheduler cannot be nil"
	ErrNilNotifier     SessionError = "notifier cannot be nil"
	ErrNilClock        SessionError = "clock cannot be nil"
	ErrNilCatalog      SessionError = "monster catalog cannot be nil"
)
