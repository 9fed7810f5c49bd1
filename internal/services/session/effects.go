package session

import (
	"time"

	"github.com/KirkDiggler/hydroquest/internal/models"
	"github.com/KirkDiggler/hydroquest/internal/services/notify"
)

// EffectKind identifies a side effect requested by a transition
type EffectKind string

const (
	EffectScheduleOnce      EffectKind = "schedule_once"
	EffectScheduleRecurring EffectKind = "schedule_recurring"
	EffectCancel            EffectKind = "cancel"
	EffectNotify            EffectKind = "notify"
	EffectSetDehydrated     EffectKind = "set_dehydrated"
)

// Effect is a side effect the service performs after the transition is persisted
type Effect struct {
	Kind EffectKind

	// Alarm and After apply to schedule and cancel effects
	Alarm string
	After time.Duration

	Notification notify.Notification

	Dehydrated bool
}

// Notifications shown by the engine
var (
	NotificationDrinkReminder = notify.Notification{
		Title:   "Drink Water!",
		Message: "It's time to drink a cup of water to defeat the monster!",
	}
	NotificationSessionFailed = notify.Notification{
		Title:   "Session Failed!",
		Message: "The monster escaped! You didn't drink enough water in time.",
	}
)

func scheduleOnce(alarm string, after time.Duration) Effect {
	return Effect{Kind: EffectScheduleOnce, Alarm: alarm, After: after}
}

func scheduleRecurring(alarm string, period time.Duration) Effect {
	return Effect{Kind: EffectScheduleRecurring, Alarm: alarm, After: period}
}

func cancel(alarm string) Effect {
	return Effect{Kind: EffectCancel, Alarm: alarm}
}

func notification(n notify.Notification) Effect {
	return Effect{Kind: EffectNotify, Notification: n}
}

func setDehydrated(dehydrated bool) Effect {
	return Effect{Kind: EffectSetDehydrated, Dehydrated: dehydrated}
}

// cancelSessionAlarms is requested by every terminal transition
func cancelSessionAlarms() []Effect {
	return []Effect{
		cancel(models.AlarmSessionTimeout),
		cancel(models.AlarmDrinkReminder),
	}
}
