package session

import (
	"time"

	"github.com/KirkDiggler/hydroquest/internal/catalog"
	"github.com/KirkDiggler/hydroquest/internal/common/clock"
	"github.com/KirkDiggler/hydroquest/internal/metrics"
	"github.com/KirkDiggler/hydroquest/internal/models"
	"github.com/KirkDiggler/hydroquest/internal/repositories/stats"
	"github.com/KirkDiggler/hydroquest/internal/services/alarm"
	"github.com/KirkDiggler/hydroquest/internal/services/notify"
)

// Config holds configuration for the session service
type Config struct {
	// RateLimitWindowMinutes is stored on every started session
	RateLimitWindowMinutes float64

	// StatsRepo is the serialized access point to the player state
	StatsRepo stats.Repository

	// Scheduler arms the session alarms
	Scheduler alarm.Scheduler

	// Notifier shows reminders and failures
	Notifier notify.Notifier

	// Clock supplies the current time
	Clock clock.Clock

	// Catalog prices monsters
	Catalog *catalog.Catalog

	// Metrics is optional
	Metrics *metrics.Recorder
}

// StartSessionInput contains parameters for starting a session
type StartSessionInput struct {
	// LitersGoal is the volume to drink
	LitersGoal float64

	// DurationMinutes is the time allowed
	DurationMinutes float64

	// MonsterID is the opponent, the last chosen monster when empty
	MonsterID string
}

// StartSessionOutput contains the result of starting a session
type StartSessionOutput struct {
	// Started is false when a session was already running or finished
	Started bool

	Session *models.Session
}

// DrinkInput contains parameters for drinking a cup
type DrinkInput struct{}

// DrinkOutput contains the result of drinking a cup
type DrinkOutput struct {
	// Accepted reports that the cup was counted
	Accepted bool

	// RateLimited reports that the cup was rejected by the rate limiter
	RateLimited bool

	// Won reports that this cup defeated the monster
	Won bool

	// Expired reports that the deadline had passed and the session was lost instead
	Expired bool

	// Cooldown is the wait before the next cup is accepted
	Cooldown time.Duration

	Session *models.Session
}

// GiveUpInput contains parameters for abandoning a session
type GiveUpInput struct{}

// GiveUpOutput contains the result of abandoning a session
type GiveUpOutput struct {
	GaveUp  bool
	Session *models.Session
}

// ResetInput contains parameters for returning to idle
type ResetInput struct{}

// ResetOutput contains the result of returning to idle
type ResetOutput struct {
	Reset   bool
	Session *models.Session
}

// BuyMonsterInput contains parameters for buying a monster
type BuyMonsterInput struct {
	MonsterID string
}

// BuyMonsterOutput contains the result of buying a monster
type BuyMonsterOutput struct {
	// Purchased is false when gold was insufficient or the monster already unlocked
	Purchased bool

	// AlreadyUnlocked distinguishes the two no-op reasons
	AlreadyUnlocked bool

	Monster models.Monster

	// Gold is the balance after the purchase attempt
	Gold int
}

// TickInput contains parameters for the periodic expiry check
type TickInput struct{}

// TickOutput contains the result of the periodic expiry check
type TickOutput struct {
	// Expired reports that the running session was lost on this tick
	Expired bool
}

// GetStatusInput contains parameters for reading the session status
type GetStatusInput struct{}

// GetStatusOutput is a read-only view of the player state
type GetStatusOutput struct {
	State *models.PlayerState

	// Dehydrated is set by reminders and cleared by drinking
	Dehydrated bool

	// RateLimited reports that a drink now would be rejected
	RateLimited bool

	// Cooldown is the wait before the next cup is accepted
	Cooldown time.Duration

	// Remaining is the time left in a running session
	Remaining time.Duration

	// Now is the time the status was computed at
	Now time.Time
}
