package messaging

import "context"

// Service picks the player-facing lines shown after each action
type Service interface {
	// GetStartMessage returns a message for a freshly started challenge
	GetStartMessage(ctx context.Context, input *GetStartMessageInput) (*GetStartMessageOutput, error)

	// GetDrinkMessage returns a message for a drink attempt
	GetDrinkMessage(ctx context.Context, input *GetDrinkMessageInput) (*GetDrinkMessageOutput, error)

	// GetOutcomeMessage returns the banner of a finished challenge
	GetOutcomeMessage(ctx context.Context, input *GetOutcomeMessageInput) (*GetOutcomeMessageOutput, error)
}
