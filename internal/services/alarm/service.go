package alarm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/KirkDiggler/hydroquest/internal/common/clock"
	"github.com/KirkDiggler/hydroquest/internal/models"
	"github.com/KirkDiggler/hydroquest/internal/repositories/kvstore"
	"github.com/sirupsen/logrus"
)

// KeyAlarms is the local key holding every armed alarm
const KeyAlarms = "alarms"

// Config holds configuration for the alarm service
type Config struct {
	// Store persists alarms so another process can deliver them
	Store kvstore.Store

	// Clock supplies the current time
	Clock clock.Clock
}

// service implements the Service interface on a key-value store
type service struct {
	store kvstore.Store
	clock clock.Clock

	mu sync.Mutex
}

// New creates a new alarm service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Store == nil {
		return nil, errors.New("store cannot be nil")
	}

	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}

	return &service{
		store: cfg.Store,
		clock: cfg.Clock,
	}, nil
}

// ScheduleOnce arms a one-shot alarm
func (s *service) ScheduleOnce(ctx context.Context, name string, delay time.Duration) error {
	if delay < 0 {
		delay = 0
	}

	return s.arm(ctx, models.Alarm{
		Name:  name,
		DueAt: s.clock.Now().Add(delay),
	})
}

// ScheduleRecurring arms an alarm that first fires one period from now
func (s *service) ScheduleRecurring(ctx context.Context, name string, period time.Duration) error {
	if period <= 0 {
		return fmt.Errorf("alarm %s: period must be positive", name)
	}

	return s.arm(ctx, models.Alarm{
		Name:   name,
		DueAt:  s.clock.Now().Add(period),
		Period: period,
	})
}

func (s *service) arm(ctx context.Context, a models.Alarm) error {
	if a.Name == "" {
		return errors.New("alarm name cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.modify(ctx, func(alarms map[string]models.Alarm) bool {
		alarms[a.Name] = a
		return true
	})
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"alarm":  a.Name,
		"due_at": a.DueAt,
		"period": a.Period,
	}).Debug("alarm armed")

	return nil
}

// Cancel disarms an alarm
func (s *service) Cancel(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var cancelled bool
	err := s.modify(ctx, func(alarms map[string]models.Alarm) bool {
		_, cancelled = alarms[name]
		delete(alarms, name)
		return cancelled
	})
	if err != nil {
		return err
	}

	if cancelled {
		logrus.WithField("alarm", name).Debug("alarm cancelled")
	}

	return nil
}

// List returns the armed alarms ordered by due time
func (s *service) List(ctx context.Context) ([]models.Alarm, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	alarms, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	return sorted(alarms), nil
}

// Poll removes due one-shot alarms, advances due recurring alarms past now, then
// delivers each occurrence. Delivery happens after the alarms are saved, so onFire
// may schedule or cancel alarms itself.
func (s *service) Poll(ctx context.Context, onFire FireFunc) (*PollOutput, error) {
	if onFire == nil {
		return nil, errors.New("fire func cannot be nil")
	}

	due, err := s.collectDue(ctx)
	if err != nil {
		return nil, err
	}

	output := &PollOutput{
		Fired: make([]string, 0, len(due)),
	}

	var errs []error
	for _, a := range due {
		output.Fired = append(output.Fired, a.Name)
		if err := onFire(ctx, a.Name); err != nil {
			logrus.WithError(err).WithField("alarm", a.Name).Error("alarm handler failed")
			errs = append(errs, fmt.Errorf("alarm %s: %w", a.Name, err))
		}
	}

	return output, errors.Join(errs...)
}

func (s *service) collectDue(ctx context.Context) ([]models.Alarm, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	var due []models.Alarm
	err := s.modify(ctx, func(alarms map[string]models.Alarm) bool {
		due = nil
		for _, a := range sorted(alarms) {
			if a.DueAt.After(now) {
				continue
			}
			due = append(due, a)

			if !a.IsRecurring() {
				delete(alarms, a.Name)
				continue
			}

			// Missed occurrences collapse into one delivery.
			missed := now.Sub(a.DueAt)/a.Period + 1
			a.DueAt = a.DueAt.Add(missed * a.Period)
			alarms[a.Name] = a
		}

		return len(due) > 0
	})
	if err != nil {
		return nil, err
	}

	return due, nil
}

func (s *service) load(ctx context.Context) (map[string]models.Alarm, error) {
	data, err := s.store.Get(ctx, KeyAlarms)
	if err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return map[string]models.Alarm{}, nil
		}
		return nil, fmt.Errorf("failed to get alarms: %w", err)
	}

	alarms := map[string]models.Alarm{}
	if err := json.Unmarshal(data, &alarms); err != nil {
		return nil, fmt.Errorf("failed to unmarshal alarms: %w", err)
	}

	return alarms, nil
}

// modify applies fn to the stored alarms in one atomic store update, so a
// delivery claimed by one process is never delivered again by another.
// fn reports whether the alarms changed and may run more than once.
func (s *service) modify(ctx context.Context, fn func(alarms map[string]models.Alarm) bool) error {
	err := s.store.Update(ctx, KeyAlarms, func(current []byte, found bool) ([]byte, bool, error) {
		alarms := map[string]models.Alarm{}
		if found {
			if err := json.Unmarshal(current, &alarms); err != nil {
				return nil, false, fmt.Errorf("failed to unmarshal alarms: %w", err)
			}
		}

		if !fn(alarms) {
			return nil, false, nil
		}

		data, err := json.Marshal(alarms)
		if err != nil {
			return nil, false, fmt.Errorf("failed to marshal alarms: %w", err)
		}

		return data, true, nil
	})
	if err != nil {
		return fmt.Errorf("failed to save alarms: %w", err)
	}

	return nil
}

func sorted(alarms map[string]models.Alarm) []models.Alarm {
	list := make([]models.Alarm, 0, len(alarms))
	for _, a := range alarms {
		list = append(list, a)
	}

	sort.Slice(list, func(i, j int) bool {
		if list[i].DueAt.Equal(list[j].DueAt) {
			return list[i].Name < list[j].Name
		}
		return list[i].DueAt.Before(list[j].DueAt)
	})

	return list
}
