package stats

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/KirkDiggler/hydroquest/internal/models"
)

// legacyFields captures fields whose absence cannot be told apart from zero values
type legacyFields struct {
	CurrentSession json.RawMessage `json:"currentSession"`
	Settings       *struct {
		EffectsEnabled *bool `json:"effectsEnabled"`
	} `json:"settings"`
}

// Migrate decodes a stored player state and brings it to the current schema.
// It reports whether the result differs from what was stored.
func Migrate(data []byte) (*models.PlayerState, bool, error) {
	var legacy legacyFields
	if err := json.Unmarshal(data, &legacy); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal player state: %w", err)
	}

	// Documents written before sessions existed are replaced wholesale.
	if len(legacy.CurrentSession) == 0 || string(legacy.CurrentSession) == "null" {
		return models.NewPlayerState(), true, nil
	}

	var state models.PlayerState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal player state: %w", err)
	}

	changed := Normalize(&state)

	if legacy.Settings == nil || legacy.Settings.EffectsEnabled == nil {
		if !state.Settings.EffectsEnabled {
			changed = true
		}
		state.Settings.EffectsEnabled = true
	}

	return &state, changed, nil
}

// Normalize fills defaults and restores invariants on a decoded state
func Normalize(state *models.PlayerState) bool {
	changed := false

	if state.SchemaVersion != models.CurrentSchemaVersion {
		state.SchemaVersion = models.CurrentSchemaVersion
		changed = true
	}

	if state.CurrentSession == nil {
		state.CurrentSession = models.NewIdleSession()
		changed = true
	}

	session := state.CurrentSession
	if session.Status == "" {
		session.Status = models.SessionStatusIdle
		changed = true
	}
	if session.DrinkHistory == nil {
		session.DrinkHistory = []time.Time{}
		changed = true
	}
	if session.RateLimitWindow <= 0 {
		session.RateLimitWindow = models.DefaultRateLimitWindowMinutes
		changed = true
	}

	if state.Trophies == nil {
		state.Trophies = []models.Trophy{}
		changed = true
	}

	for _, id := range models.DefaultUnlockedMonsters {
		if !state.HasMonster(id) {
			state.UnlockedMonsters = append(state.UnlockedMonsters, id)
			changed = true
		}
	}

	if state.Level < 1 {
		state.Level = 1
		changed = true
	}

	if state.Gold < 0 {
		state.Gold = 0
		changed = true
	}

	return changed
}
