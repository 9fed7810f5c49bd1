package alarm

//go:generate mockgen -package=mocks -destination=mocks/mock_scheduler.go github.com/KirkDiggler/hydroquest/internal/services/alarm Scheduler
//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/hydroquest/internal/services/alarm Service

import (
	"context"
	"time"

	"github.com/KirkDiggler/hydroquest/internal/models"
)

// Scheduler registers named alarms. Scheduling a name that already exists replaces it.
type Scheduler interface {
	// ScheduleOnce arms an alarm that fires once after delay
	ScheduleOnce(ctx context.Context, name string, delay time.Duration) error

	// ScheduleRecurring arms an alarm that fires every period
	ScheduleRecurring(ctx context.Context, name string, period time.Duration) error

	// Cancel disarms an alarm; cancelling an unknown name is not an error
	Cancel(ctx context.Context, name string) error
}

// FireFunc receives every alarm occurrence
type FireFunc func(ctx context.Context, name string) error

// Service is a Scheduler whose alarms are delivered by polling
type Service interface {
	Scheduler

	// List returns the armed alarms ordered by due time
	List(ctx context.Context) ([]models.Alarm, error)

	// Poll delivers every due alarm to onFire and re-arms recurring ones
	Poll(ctx context.Context, onFire FireFunc) (*PollOutput, error)
}

// PollOutput describes one poll
type PollOutput struct {
	// Fired lists the delivered alarm names in due order
	Fired []string
}
