package models

import (
	"time"
)

// Alarm names used by the session engine
const (
	AlarmSessionTimeout = "sessionTimeout"
	AlarmDrinkReminder  = "drinkReminder"
)

// Alarm is a named, persisted timer
type Alarm struct {
	Name string `json:"name"`

	// DueAt is the next time the alarm fires
	DueAt time.Time `json:"dueAt"`

	// Period re-arms the alarm after it fires, zero for one-shot alarms
	Period time.Duration `json:"period"`
}

// IsRecurring reports whether the alarm re-arms after firing
func (a *Alarm) IsRecurring() bool {
	return a.Period > 0
}
