// Package messaging holds the flavor text of the game.
package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/KirkDiggler/hydroquest/internal/models"
)

// ErrNotFinished is returned when asking for the outcome of an unfinished session
var ErrNotFinished = errors.New("session is not finished")

var (
	startLines = []string{
		"%s rises from the dunes. Drink %d cups to defeat it!",
		"A wild %s appears! You need %d cups of water.",
		"%s blocks the oasis. %d cups stand between you and victory.",
	}

	drinkLines = []string{
		"Glug glug! %d cups to go.",
		"Direct hit! %d cups left.",
		"The monster flinches. %d more cups!",
		"Refreshing. Only %d cups remain.",
	}

	cooldownLines = []string{
		"Easy there! Your stomach needs a moment.",
		"Sip, don't chug. Try again after the cooldown.",
		"Too fast! The water needs time to work.",
	}

	lateLines = []string{
		"Too late! The sands of time ran out.",
		"The monster already fled into the dunes.",
	}

	idleLines = []string{
		"There is no monster to fight. Start a challenge first.",
		"You drink alone in the desert. Start a challenge to make it count.",
	}

	victoryLines = []string{
		"Hydration is the ultimate weapon.",
		"The desert blooms in your honor.",
		"Another trophy for the cabinet.",
	}

	defeatLines = []string{
		"Even camels need water. Try again.",
		"The sands claim another challenger.",
		"Next time, keep a bottle nearby.",
	}
)

// service implements the Service interface
type service struct {
	pick Picker
}

// NewService creates a new messaging service
func NewService(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	pick := cfg.Picker
	if pick == nil {
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		pick = rng.Intn
	}

	return &service{
		pick: pick,
	}, nil
}

// GetStartMessage returns a message for a freshly started challenge
func (s *service) GetStartMessage(ctx context.Context, input *GetStartMessageInput) (*GetStartMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	name := input.MonsterName
	if name == "" {
		name = "A monster"
	}

	return &GetStartMessageOutput{
		Message: fmt.Sprintf(s.choose(startLines), name, input.TotalCups),
	}, nil
}

// GetDrinkMessage returns a message for a drink attempt
func (s *service) GetDrinkMessage(ctx context.Context, input *GetDrinkMessageInput) (*GetDrinkMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var message string
	switch {
	case input.Expired:
		message = s.choose(lateLines)
	case input.RateLimited:
		message = s.choose(cooldownLines)
	case !input.Accepted:
		message = s.choose(idleLines)
	default:
		message = fmt.Sprintf(s.choose(drinkLines), input.CupsLeft)
	}

	return &GetDrinkMessageOutput{
		Message: message,
	}, nil
}

// GetOutcomeMessage returns the banner of a finished challenge
func (s *service) GetOutcomeMessage(ctx context.Context, input *GetOutcomeMessageInput) (*GetOutcomeMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	switch input.Status {
	case models.SessionStatusWon:
		return &GetOutcomeMessageOutput{
			Title:   "VICTORY!",
			Message: "You defeated the monster!",
			Action:  "CLAIM TROPHY",
			Flavor:  s.choose(victoryLines),
		}, nil
	case models.SessionStatusLost:
		return &GetOutcomeMessageOutput{
			Title:   "DEFEAT",
			Message: "The monster escaped...",
			Action:  "TRY AGAIN",
			Flavor:  s.choose(defeatLines),
		}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrNotFinished, input.Status)
	}
}

func (s *service) choose(lines []string) string {
	i := s.pick(len(lines))
	if i < 0 || i >= len(lines) {
		i = 0
	}
	return lines[i]
}
