package stats

import (
	"testing"

	"github.com/KirkDiggler/hydroquest/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate(t *testing.T) {
	tests := []struct {
		name        string
		data        string
		wantChanged bool
		check       func(t *testing.T, state *models.PlayerState)
	}{
		{
			name:        "null session resets to defaults",
			data:        `{"currentSession":null,"gold":50}`,
			wantChanged: true,
			check: func(t *testing.T, state *models.PlayerState) {
				assert.Equal(t, 0, state.Gold)
				assert.Equal(t, models.SessionStatusIdle, state.CurrentSession.Status)
			},
		},
		{
			name:        "current document is untouched",
			data:        `{"schemaVersion":2,"currentSession":{"status":"idle","drinkHistory":[],"rateLimitWindow":5,"monsterId":"sand_slime"},"trophies":[],"unlockedMonsters":["sand_slime","cactus_golem","dust_phoenix","drought_king"],"level":3,"settings":{"effectsEnabled":false}}`,
			wantChanged: false,
			check: func(t *testing.T, state *models.PlayerState) {
				assert.Equal(t, 3, state.Level)
				assert.False(t, state.Settings.EffectsEnabled)
			},
		},
		{
			name:        "missing settings enables effects",
			data:        `{"schemaVersion":2,"currentSession":{"status":"idle","drinkHistory":[],"rateLimitWindow":5},"trophies":[],"unlockedMonsters":["sand_slime","cactus_golem","dust_phoenix","drought_king"],"level":1}`,
			wantChanged: true,
			check: func(t *testing.T, state *models.PlayerState) {
				assert.True(t, state.Settings.EffectsEnabled)
			},
		},
		{
			name:        "negative gold is clamped",
			data:        `{"currentSession":{"status":"won"},"gold":-10}`,
			wantChanged: true,
			check: func(t *testing.T, state *models.PlayerState) {
				assert.Equal(t, 0, state.Gold)
				assert.Equal(t, models.SessionStatusWon, state.CurrentSession.Status)
				assert.Equal(t, models.DefaultRateLimitWindowMinutes, state.CurrentSession.RateLimitWindow)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, changed, err := Migrate([]byte(tt.data))
			require.NoError(t, err)
			assert.Equal(t, tt.wantChanged, changed)
			tt.check(t, state)
		})
	}
}

func TestMigrate_InvalidJSON(t *testing.T) {
	_, _, err := Migrate([]byte(`{not json`))
	assert.Error(t, err)
}
