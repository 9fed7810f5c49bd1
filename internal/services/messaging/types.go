package messaging

import (
	"github.com/KirkDiggler/hydroquest/internal/models"
)

// Picker returns an index in [0, n)
type Picker func(n int) int

// Config holds configuration for the messaging service
type Config struct {
	// Picker chooses among the candidate lines, math/rand when nil
	Picker Picker
}

// GetStartMessageInput contains parameters for getting a start message
type GetStartMessageInput struct {
	MonsterName string
	TotalCups   int
}

// GetStartMessageOutput contains the result of getting a start message
type GetStartMessageOutput struct {
	Message string
}

// GetDrinkMessageInput contains parameters for getting a drink message
type GetDrinkMessageInput struct {
	// Accepted reports that the cup was counted
	Accepted bool

	// RateLimited reports that the cup was rejected by the rate limiter
	RateLimited bool

	// Expired reports that the cup came after the deadline
	Expired bool

	// CupsLeft is how many cups remain after this drink
	CupsLeft int
}

// GetDrinkMessageOutput contains the result of getting a drink message
type GetDrinkMessageOutput struct {
	Message string
}

// GetOutcomeMessageInput contains parameters for getting an outcome banner
type GetOutcomeMessageInput struct {
	Status      models.SessionStatus
	MonsterName string
}

// GetOutcomeMessageOutput is the banner of a finished challenge
type GetOutcomeMessageOutput struct {
	Title   string
	Message string

	// Action names the command that moves on from this outcome
	Action string

	// Flavor is an extra randomly chosen line
	Flavor string
}
