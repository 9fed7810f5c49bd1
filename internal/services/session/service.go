package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/hydroquest/internal/catalog"
	"github.com/KirkDiggler/hydroquest/internal/common/clock"
	"github.com/KirkDiggler/hydroquest/internal/metrics"
	"github.com/KirkDiggler/hydroquest/internal/models"
	"github.com/KirkDiggler/hydroquest/internal/repositories/stats"
	"github.com/KirkDiggler/hydroquest/internal/services/alarm"
	"github.com/KirkDiggler/hydroquest/internal/services/notify"
	"github.com/KirkDiggler/hydroquest/internal/services/ratelimit"
	"github.com/sirupsen/logrus"
)

// service implements the Service interface
type service struct {
	rules     Rules
	statsRepo stats.Repository
	scheduler alarm.Scheduler
	notifier  notify.Notifier
	clock     clock.Clock
	catalog   *catalog.Catalog
	metrics   *metrics.Recorder
}

// New creates a new session service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.StatsRepo == nil {
		return nil, ErrNilStatsRepo
	}

	if cfg.Scheduler == nil {
		return nil, ErrNilScheduler
	}

	if cfg.Notifier == nil {
		return nil, ErrNilNotifier
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.Catalog == nil {
		return nil, ErrNilCatalog
	}

	window := cfg.RateLimitWindowMinutes
	if window <= 0 {
		window = models.DefaultRateLimitWindowMinutes
	}

	return &service{
		rules: Rules{
			RateLimitWindowMinutes: window,
		},
		statsRepo: cfg.StatsRepo,
		scheduler: cfg.Scheduler,
		notifier:  cfg.Notifier,
		clock:     cfg.Clock,
		catalog:   cfg.Catalog,
		metrics:   cfg.Metrics,
	}, nil
}

// StartSession begins a challenge from idle
func (s *service) StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	t, err := s.run(ctx, Event{
		Kind:            EventStart,
		LitersGoal:      input.LitersGoal,
		DurationMinutes: input.DurationMinutes,
		MonsterID:       input.MonsterID,
	})
	if err != nil {
		return nil, err
	}

	return &StartSessionOutput{
		Started: t.Applied,
		Session: t.State.CurrentSession,
	}, nil
}

// Drink counts a cup unless the rate limiter rejects it or the deadline has passed
func (s *service) Drink(ctx context.Context, _ *DrinkInput) (*DrinkOutput, error) {
	t, err := s.run(ctx, Event{Kind: EventDrink})
	if err != nil {
		return nil, err
	}

	session := t.State.CurrentSession
	output := &DrinkOutput{
		Accepted:    t.Applied,
		RateLimited: t.RateLimited,
		Won:         t.Outcome == models.SessionStatusWon,
		Expired:     t.Outcome == models.SessionStatusLost,
		Session:     session,
	}
	if session.IsActive() {
		output.Cooldown = ratelimit.CooldownRemaining(session.DrinkHistory, session.RateLimitWindow, s.clock.Now())
	}

	return output, nil
}

// GiveUp loses the running session
func (s *service) GiveUp(ctx context.Context, _ *GiveUpInput) (*GiveUpOutput, error) {
	t, err := s.run(ctx, Event{Kind: EventGiveUp})
	if err != nil {
		return nil, err
	}

	return &GiveUpOutput{
		GaveUp:  t.Applied,
		Session: t.State.CurrentSession,
	}, nil
}

// Reset returns a finished session to idle
func (s *service) Reset(ctx context.Context, _ *ResetInput) (*ResetOutput, error) {
	t, err := s.run(ctx, Event{Kind: EventReset})
	if err != nil {
		return nil, err
	}

	return &ResetOutput{
		Reset:   t.Applied,
		Session: t.State.CurrentSession,
	}, nil
}

// BuyMonster spends gold on a catalog monster
func (s *service) BuyMonster(ctx context.Context, input *BuyMonsterInput) (*BuyMonsterOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	monster, err := s.catalog.Get(input.MonsterID)
	if err != nil {
		return nil, err
	}

	t, err := s.run(ctx, Event{
		Kind:      EventBuyMonster,
		MonsterID: monster.ID,
		Cost:      monster.Cost,
	})
	if err != nil {
		return nil, err
	}

	return &BuyMonsterOutput{
		Purchased:       t.Applied,
		AlreadyUnlocked: !t.Applied && t.State.HasMonster(monster.ID),
		Monster:         monster,
		Gold:            t.State.Gold,
	}, nil
}

// Tick loses a running session whose time has run out
func (s *service) Tick(ctx context.Context, _ *TickInput) (*TickOutput, error) {
	t, err := s.run(ctx, Event{Kind: EventTick})
	if err != nil {
		return nil, err
	}

	return &TickOutput{
		Expired: t.Outcome == models.SessionStatusLost,
	}, nil
}

// HandleAlarm maps alarm names onto events; unknown alarms are ignored
func (s *service) HandleAlarm(ctx context.Context, name string) error {
	var kind EventKind
	switch name {
	case models.AlarmSessionTimeout:
		kind = EventTimeout
	case models.AlarmDrinkReminder:
		kind = EventReminder
	default:
		logrus.WithField("alarm", name).Warn("ignoring unknown alarm")
		return nil
	}

	_, err := s.run(ctx, Event{Kind: kind})
	return err
}

// GetStatus returns the current state without changing it
func (s *service) GetStatus(ctx context.Context, _ *GetStatusInput) (*GetStatusOutput, error) {
	state, err := s.statsRepo.GetPlayerState(ctx)
	if err != nil {
		return nil, err
	}

	dehydrated, err := s.statsRepo.GetDehydrated(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	output := &GetStatusOutput{
		State:      state,
		Dehydrated: dehydrated && state.Settings.EffectsEnabled,
		Now:        now,
	}

	session := state.CurrentSession
	if session.IsActive() {
		output.RateLimited = ratelimit.IsLimited(session.DrinkHistory, session.RateLimitWindow, now)
		output.Cooldown = ratelimit.CooldownRemaining(session.DrinkHistory, session.RateLimitWindow, now)
		output.Remaining = session.Remaining(now)
	}

	return output, nil
}

// run applies event through the serialized read-modify-write, then performs its effects
func (s *service) run(ctx context.Context, event Event) (*Transition, error) {
	var transition *Transition

	_, err := s.statsRepo.UpdatePlayerState(ctx, &stats.UpdatePlayerStateInput{
		Mutate: func(state *models.PlayerState) (bool, error) {
			t, err := Apply(state, event, s.clock.Now(), s.rules)
			if err != nil {
				return false, err
			}

			*state = *t.State
			t.State = state
			transition = t
			return t.Changed, nil
		},
	})
	if err != nil {
		return nil, err
	}

	s.record(event, transition)

	if transition.Applied || len(transition.Effects) > 0 {
		logrus.WithFields(logrus.Fields{
			"event":   event.Kind,
			"status":  transition.State.CurrentSession.Status,
			"applied": transition.Applied,
			"effects": len(transition.Effects),
		}).Info("session event handled")
	}

	s.execute(ctx, transition.Effects)

	return transition, nil
}

// execute performs effects in order. Failures are logged and do not undo the
// committed transition.
func (s *service) execute(ctx context.Context, effects []Effect) {
	for _, effect := range effects {
		if err := s.perform(ctx, effect); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"effect": effect.Kind,
				"alarm":  effect.Alarm,
			}).Warn("session effect failed")
		}
	}
}

func (s *service) perform(ctx context.Context, effect Effect) error {
	switch effect.Kind {
	case EffectScheduleOnce:
		return s.scheduler.ScheduleOnce(ctx, effect.Alarm, effect.After)
	case EffectScheduleRecurring:
		return s.scheduler.ScheduleRecurring(ctx, effect.Alarm, effect.After)
	case EffectCancel:
		return s.scheduler.Cancel(ctx, effect.Alarm)
	case EffectNotify:
		return s.notifier.Notify(ctx, effect.Notification)
	case EffectSetDehydrated:
		return s.statsRepo.SetDehydrated(ctx, effect.Dehydrated)
	default:
		return fmt.Errorf("unknown effect %s", effect.Kind)
	}
}

func (s *service) record(event Event, t *Transition) {
	switch event.Kind {
	case EventStart:
		if t.Applied {
			s.metrics.SessionStarted()
		}
	case EventDrink:
		switch {
		case t.Applied:
			s.metrics.Drink(metrics.DrinkAccepted)
		case t.RateLimited:
			s.metrics.Drink(metrics.DrinkRateLimited)
		default:
			s.metrics.Drink(metrics.DrinkIgnored)
		}
	}

	if t.Outcome != "" {
		s.metrics.SessionFinished(string(t.Outcome))
	}
}
