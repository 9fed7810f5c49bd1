package session

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/hydroquest/internal/services/session Service

import (
	"context"
)

// Service drives the hydration challenge state machine
type Service interface {
	// StartSession begins a challenge from idle
	StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error)

	// Drink counts a cup unless the rate limiter rejects it
	Drink(ctx context.Context, input *DrinkInput) (*DrinkOutput, error)

	// GiveUp loses the running session
	GiveUp(ctx context.Context, input *GiveUpInput) (*GiveUpOutput, error)

	// Reset returns a finished session to idle
	Reset(ctx context.Context, input *ResetInput) (*ResetOutput, error)

	// BuyMonster spends gold to unlock a monster
	BuyMonster(ctx context.Context, input *BuyMonsterInput) (*BuyMonsterOutput, error)

	// Tick loses a running session whose time has run out
	Tick(ctx context.Context, input *TickInput) (*TickOutput, error)

	// HandleAlarm delivers a fired alarm to the state machine
	HandleAlarm(ctx context.Context, name string) error

	// GetStatus returns the current state without changing it
	GetStatus(ctx context.Context, input *GetStatusInput) (*GetStatusOutput, error)
}
