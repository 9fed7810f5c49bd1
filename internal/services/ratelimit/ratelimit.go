// Package ratelimit decides whether a drink is permitted given the recent drink history.
package ratelimit

import (
	"slices"
	"time"

	"github.com/KirkDiggler/hydroquest/internal/models"
)

// MaxDrinksPerWindow is the number of drinks allowed inside one window
const MaxDrinksPerWindow = 2

func window(windowMinutes float64) time.Duration {
	if windowMinutes <= 0 {
		windowMinutes = models.DefaultRateLimitWindowMinutes
	}
	return models.MinutesToDuration(windowMinutes)
}

// recent returns the timestamps inside (now - window, now], oldest first
func recent(history []time.Time, windowMinutes float64, now time.Time) []time.Time {
	cutoff := now.Add(-window(windowMinutes))

	var inWindow []time.Time
	for _, t := range history {
		if t.After(cutoff) && !t.After(now) {
			inWindow = append(inWindow, t)
		}
	}

	return inWindow
}

// IsLimited reports whether MaxDrinksPerWindow drinks already fall inside the window ending at now
func IsLimited(history []time.Time, windowMinutes float64, now time.Time) bool {
	return len(recent(history, windowMinutes, now)) >= MaxDrinksPerWindow
}

// CooldownRemaining returns how long until the next drink is permitted, 0 if it is permitted now
func CooldownRemaining(history []time.Time, windowMinutes float64, now time.Time) time.Duration {
	inWindow := recent(history, windowMinutes, now)
	if len(inWindow) < MaxDrinksPerWindow {
		return 0
	}

	// Drinks leave the window oldest first; the next drink is allowed once all but one have left.
	slices.SortFunc(inWindow, func(a, b time.Time) int { return a.Compare(b) })
	oldest := inWindow[len(inWindow)-MaxDrinksPerWindow]

	remaining := oldest.Add(window(windowMinutes)).Sub(now)
	if remaining < 0 {
		return 0
	}
	return remaining
}
