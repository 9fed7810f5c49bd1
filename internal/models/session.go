package models

import (
	"math"
	"time"
)

// SessionStatus represents the current state of a hydration session
type SessionStatus string

const (
	// SessionStatusIdle indicates no challenge is in progress
	SessionStatusIdle SessionStatus = "idle"

	// SessionStatusRunning indicates a challenge is in progress
	SessionStatusRunning SessionStatus = "running"

	// SessionStatusWon indicates the monster was defeated before the deadline
	SessionStatusWon SessionStatus = "won"

	// SessionStatusLost indicates the deadline passed or the player gave up
	SessionStatusLost SessionStatus = "lost"
)

const (
	// CupSizeML is the volume of a single drink action
	CupSizeML = 250

	// DefaultRateLimitWindowMinutes is used when a session carries no window
	DefaultRateLimitWindowMinutes = 5.0

	// MinDifficulty and MaxDifficulty bound the difficulty of a session
	MinDifficulty = 1
	MaxDifficulty = 10

	// MaxLitersGoal keeps cup counts and millilitre totals far inside int
	MaxLitersGoal = 1000.0

	// MaxDurationMinutes is one week
	MaxDurationMinutes = 7 * 24 * 60.0
)

// IsFinished reports whether the status is a terminal outcome
func (s SessionStatus) IsFinished() bool {
	return s == SessionStatusWon || s == SessionStatusLost
}

// Session is the single active (or most recently finished) challenge of a player
type Session struct {
	// Status is the state machine discriminator
	Status SessionStatus `json:"status"`

	// StartTime is when the session was started
	StartTime time.Time `json:"startTime"`

	// DurationMinutes is the total time allowed
	DurationMinutes float64 `json:"durationMinutes"`

	// WaterGoalML is the volume the player committed to
	WaterGoalML int `json:"waterGoalML"`

	// TotalCups is ceil(liters * 1000 / CupSizeML) of the requested goal
	TotalCups int `json:"totalCups"`

	// Difficulty is derived from TotalCups when the session starts
	Difficulty int `json:"difficulty"`

	// CupsDrank counts accepted drinks in this session
	CupsDrank int `json:"cupsDrank"`

	// DrinkHistory holds the time of every accepted drink, used for rate limiting
	DrinkHistory []time.Time `json:"drinkHistory"`

	// RateLimitWindow is the rate limiting window in minutes
	RateLimitWindow float64 `json:"rateLimitWindow"`

	// MonsterID is the monster being fought
	MonsterID string `json:"monsterId"`
}

// IsActive reports whether the session is running
func (s *Session) IsActive() bool {
	return s != nil && s.Status == SessionStatusRunning
}

// Deadline returns the moment the session runs out of time
func (s *Session) Deadline() time.Time {
	return s.StartTime.Add(MinutesToDuration(s.DurationMinutes))
}

// Remaining returns the time left before the deadline, never negative
func (s *Session) Remaining(now time.Time) time.Duration {
	remaining := s.Deadline().Sub(now)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Expired reports whether more than DurationMinutes have elapsed since StartTime
func (s *Session) Expired(now time.Time) bool {
	return now.Sub(s.StartTime) > MinutesToDuration(s.DurationMinutes)
}

// Clone returns a deep copy of the session
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	clone := *s
	clone.DrinkHistory = append([]time.Time{}, s.DrinkHistory...)
	return &clone
}

// NewIdleSession returns the session stored on a fresh install
func NewIdleSession() *Session {
	return &Session{
		Status:          SessionStatusIdle,
		DrinkHistory:    []time.Time{},
		RateLimitWindow: DefaultRateLimitWindowMinutes,
		MonsterID:       DefaultMonsterID,
	}
}

// CupsForLiters returns the number of cups needed to drink liters
func CupsForLiters(liters float64) int {
	return int(math.Ceil(liters * 1000 / CupSizeML))
}

// DifficultyForCups maps a cup count onto the 1..10 difficulty scale
func DifficultyForCups(totalCups int) int {
	difficulty := totalCups - 3
	if difficulty < MinDifficulty {
		return MinDifficulty
	}
	if difficulty > MaxDifficulty {
		return MaxDifficulty
	}
	return difficulty
}

// MinutesToDuration converts fractional minutes to a time.Duration
func MinutesToDuration(minutes float64) time.Duration {
	return time.Duration(minutes * float64(time.Minute))
}
