package session

import (
	"math"
	"time"

	"github.com/KirkDiggler/hydroquest/internal/models"
	"github.com/KirkDiggler/hydroquest/internal/services/ratelimit"
)

// EventKind identifies an input to the state machine
type EventKind string

const (
	EventStart      EventKind = "start"
	EventDrink      EventKind = "drink"
	EventGiveUp     EventKind = "give_up"
	EventReset      EventKind = "reset"
	EventTimeout    EventKind = "timeout"
	EventReminder   EventKind = "reminder"
	EventTick       EventKind = "tick"
	EventBuyMonster EventKind = "buy_monster"
)

// Event is an input to the state machine
type Event struct {
	Kind EventKind

	// LitersGoal, DurationMinutes and MonsterID apply to EventStart
	LitersGoal      float64
	DurationMinutes float64

	// MonsterID applies to EventStart and EventBuyMonster
	MonsterID string

	// Cost applies to EventBuyMonster
	Cost int
}

// Rules are the tunables applied by the handlers
type Rules struct {
	// RateLimitWindowMinutes is stored on every started session
	RateLimitWindowMinutes float64
}

// Transition is the result of applying an event
type Transition struct {
	// State is the next state; the input state is never modified
	State *models.PlayerState

	// Changed reports whether State differs from the input
	Changed bool

	// Applied reports whether the event's precondition held
	Applied bool

	// RateLimited reports a drink rejected by the rate limiter
	RateLimited bool

	// Outcome is set when the session finished during this transition
	Outcome models.SessionStatus

	Effects []Effect
}

type handler func(next *models.PlayerState, event Event, now time.Time, rules Rules) (*Transition, error)

// handlers is the dispatch table of the state machine
var handlers = map[EventKind]handler{
	EventStart:      handleStart,
	EventDrink:      handleDrink,
	EventGiveUp:     handleGiveUp,
	EventReset:      handleReset,
	EventTimeout:    handleTimeout,
	EventReminder:   handleReminder,
	EventTick:       handleTick,
	EventBuyMonster: handleBuyMonster,
}

// Apply runs the handler for event against a copy of state
func Apply(state *models.PlayerState, event Event, now time.Time, rules Rules) (*Transition, error) {
	h, ok := handlers[event.Kind]
	if !ok {
		return nil, ErrUnknownEvent
	}

	next := state.Clone()
	if next.CurrentSession == nil {
		next.CurrentSession = models.NewIdleSession()
	}

	t, err := h(next, event, now, rules)
	if err != nil {
		return nil, err
	}
	t.State = next

	return t, nil
}

func noop() *Transition {
	return &Transition{}
}

func handleStart(next *models.PlayerState, event Event, now time.Time, rules Rules) (*Transition, error) {
	if !(event.LitersGoal > 0 && event.LitersGoal <= models.MaxLitersGoal) {
		return nil, ErrInvalidGoal
	}
	totalCups := models.CupsForLiters(event.LitersGoal)
	if totalCups < 1 {
		return nil, ErrInvalidGoal
	}

	// Negated ranges also reject NaN.
	if !(event.DurationMinutes >= 1 && event.DurationMinutes <= models.MaxDurationMinutes) {
		return nil, ErrInvalidDuration
	}

	monsterID := event.MonsterID
	if monsterID == "" {
		monsterID = next.LastMonsterID
	}
	if monsterID == "" {
		monsterID = models.DefaultMonsterID
	}
	if !next.HasMonster(monsterID) {
		return nil, ErrMonsterLocked
	}

	if next.CurrentSession.Status != models.SessionStatusIdle {
		return noop(), nil
	}

	window := rules.RateLimitWindowMinutes
	if window <= 0 {
		window = models.DefaultRateLimitWindowMinutes
	}

	goalML := int(math.Round(event.LitersGoal * 1000))

	next.CurrentSession = &models.Session{
		Status:          models.SessionStatusRunning,
		StartTime:       now,
		DurationMinutes: event.DurationMinutes,
		WaterGoalML:     goalML,
		TotalCups:       totalCups,
		Difficulty:      models.DifficultyForCups(totalCups),
		CupsDrank:       0,
		DrinkHistory:    []time.Time{},
		RateLimitWindow: window,
		MonsterID:       monsterID,
	}
	next.LastMonsterID = monsterID

	reminderEvery := models.MinutesToDuration(event.DurationMinutes / float64(totalCups))

	return &Transition{
		Changed: true,
		Applied: true,
		Effects: []Effect{
			setDehydrated(false),
			scheduleOnce(models.AlarmSessionTimeout, models.MinutesToDuration(event.DurationMinutes)),
			scheduleRecurring(models.AlarmDrinkReminder, reminderEvery),
		},
	}, nil
}

func handleDrink(next *models.PlayerState, _ Event, now time.Time, _ Rules) (*Transition, error) {
	session := next.CurrentSession
	if !session.IsActive() {
		return noop(), nil
	}

	// A cup after the deadline cannot win; the session is lost instead.
	if session.Expired(now) {
		t := lose(next, now)
		t.Applied = false
		return t, nil
	}

	if ratelimit.IsLimited(session.DrinkHistory, session.RateLimitWindow, now) {
		return &Transition{RateLimited: true}, nil
	}

	session.DrinkHistory = append(session.DrinkHistory, now)
	session.CupsDrank++
	next.TotalWaterDrankML += models.CupSizeML
	next.TotalCups++

	t := &Transition{
		Changed: true,
		Applied: true,
		Effects: []Effect{setDehydrated(false)},
	}

	if session.CupsDrank >= session.TotalCups {
		t.Effects = append(t.Effects, terminate(next, models.SessionStatusWon, now)...)
		t.Outcome = models.SessionStatusWon
	}

	return t, nil
}

// terminate finishes the running session and returns the cleanup effects
func terminate(next *models.PlayerState, outcome models.SessionStatus, now time.Time) []Effect {
	session := next.CurrentSession
	session.Status = outcome

	if outcome == models.SessionStatusWon {
		next.SessionsCompleted++
		next.Gold += session.Difficulty
		next.Trophies = append(next.Trophies, models.Trophy{
			Date:       now,
			MonsterID:  session.MonsterID,
			Difficulty: session.Difficulty,
		})
	}

	return append(cancelSessionAlarms(), setDehydrated(false))
}

func handleGiveUp(next *models.PlayerState, _ Event, now time.Time, _ Rules) (*Transition, error) {
	if !next.CurrentSession.IsActive() {
		return noop(), nil
	}

	return &Transition{
		Changed: true,
		Applied: true,
		Outcome: models.SessionStatusLost,
		Effects: terminate(next, models.SessionStatusLost, now),
	}, nil
}

func handleTimeout(next *models.PlayerState, _ Event, now time.Time, _ Rules) (*Transition, error) {
	if !next.CurrentSession.IsActive() {
		return noop(), nil
	}

	return lose(next, now), nil
}

func handleTick(next *models.PlayerState, _ Event, now time.Time, _ Rules) (*Transition, error) {
	session := next.CurrentSession
	if !session.IsActive() || !session.Expired(now) {
		return noop(), nil
	}

	return lose(next, now), nil
}

func lose(next *models.PlayerState, now time.Time) *Transition {
	effects := terminate(next, models.SessionStatusLost, now)

	return &Transition{
		Changed: true,
		Applied: true,
		Outcome: models.SessionStatusLost,
		Effects: append(effects, notification(NotificationSessionFailed)),
	}
}

func handleReminder(next *models.PlayerState, _ Event, _ time.Time, _ Rules) (*Transition, error) {
	if !next.CurrentSession.IsActive() {
		return &Transition{
			Effects: []Effect{cancel(models.AlarmDrinkReminder)},
		}, nil
	}

	return &Transition{
		Applied: true,
		Effects: []Effect{
			setDehydrated(true),
			notification(NotificationDrinkReminder),
		},
	}, nil
}

func handleReset(next *models.PlayerState, _ Event, _ time.Time, _ Rules) (*Transition, error) {
	session := next.CurrentSession
	if !session.Status.IsFinished() {
		return noop(), nil
	}

	session.Status = models.SessionStatusIdle
	session.CupsDrank = 0
	session.DrinkHistory = []time.Time{}

	return &Transition{
		Changed: true,
		Applied: true,
	}, nil
}

func handleBuyMonster(next *models.PlayerState, event Event, _ time.Time, _ Rules) (*Transition, error) {
	if event.MonsterID == "" {
		return nil, ErrInvalidMonster
	}
	if event.Cost < 0 {
		return nil, ErrInvalidCost
	}

	if next.Gold < event.Cost || next.HasMonster(event.MonsterID) {
		return noop(), nil
	}

	next.Gold -= event.Cost
	next.UnlockedMonsters = append(next.UnlockedMonsters, event.MonsterID)

	return &Transition{
		Changed: true,
		Applied: true,
	}, nil
}
