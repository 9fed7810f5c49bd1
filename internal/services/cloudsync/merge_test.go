package cloudsync

import (
	"testing"
	"time"

	"github.com/KirkDiggler/hydroquest/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stateWith(water, sessions, cups int) *models.PlayerState {
	state := models.NewPlayerState()
	state.TotalWaterDrankML = water
	state.SessionsCompleted = sessions
	state.TotalCups = cups
	return state
}

func TestMerge_AddsLocalDeltaToRemote(t *testing.T) {
	local := stateWith(1500, 3, 6)
	baseline := stateWith(1000, 2, 4)
	remote := stateWith(3000, 5, 12).CloudStats()

	merged := Merge(local, remote, baseline)

	assert.Equal(t, 3500, merged.TotalWaterDrankML)
	assert.Equal(t, 6, merged.SessionsCompleted)
	assert.Equal(t, 14, merged.TotalCups)
}

func TestMerge_NoDeltaTakesMax(t *testing.T) {
	local := stateWith(1000, 2, 4)
	baseline := stateWith(1000, 2, 4)

	merged := Merge(local, stateWith(3000, 1, 12).CloudStats(), baseline)
	assert.Equal(t, 3000, merged.TotalWaterDrankML)
	assert.Equal(t, 2, merged.SessionsCompleted)
	assert.Equal(t, 12, merged.TotalCups)

	// A local value below the baseline never lowers the remote total
	merged = Merge(stateWith(500, 0, 2), stateWith(800, 1, 3).CloudStats(), baseline)
	assert.Equal(t, 800, merged.TotalWaterDrankML)
	assert.Equal(t, 1, merged.SessionsCompleted)
	assert.Equal(t, 3, merged.TotalCups)
}

func TestMerge_NilBaselineCountsEverythingAsDelta(t *testing.T) {
	merged := Merge(stateWith(750, 1, 3), stateWith(1000, 2, 4).CloudStats(), nil)

	assert.Equal(t, 1750, merged.TotalWaterDrankML)
	assert.Equal(t, 3, merged.SessionsCompleted)
	assert.Equal(t, 7, merged.TotalCups)
}

func TestMerge_NilRemoteKeepsLocal(t *testing.T) {
	local := stateWith(750, 1, 3)
	local.Gold = 9

	merged := Merge(local, nil, nil)
	assert.Equal(t, local, merged)
	assert.NotSame(t, local, merged)
}

func TestMerge_Idempotent(t *testing.T) {
	local := stateWith(1500, 3, 6)
	baseline := stateWith(1000, 2, 4)
	remote := stateWith(3000, 5, 12)
	remote.UnlockedMonsters = append(remote.UnlockedMonsters, "dust_mite")

	first := Merge(local, remote.CloudStats(), baseline)

	// The push makes remote equal to the merge and the merge becomes the baseline
	second := Merge(first, first.CloudStats(), first)

	assert.Equal(t, first, second)
}

func TestMerge_UnionOfMonsters(t *testing.T) {
	local := models.NewPlayerState()
	local.UnlockedMonsters = append(local.UnlockedMonsters, "dust_mite")

	remote := models.NewPlayerState()
	remote.UnlockedMonsters = append(remote.UnlockedMonsters, "salt_spider", "dust_mite")

	merged := Merge(local, remote.CloudStats(), nil)

	assert.ElementsMatch(t, []string{
		"sand_slime", "cactus_golem", "dust_phoenix", "drought_king", "dust_mite", "salt_spider",
	}, merged.UnlockedMonsters)
}

func TestMerge_LongerTrophyListWins(t *testing.T) {
	day := time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)

	local := models.NewPlayerState()
	local.Trophies = []models.Trophy{{Date: day, MonsterID: "sand_slime", Difficulty: 1}}

	remote := models.NewPlayerState()
	remote.Trophies = []models.Trophy{
		{Date: day.Add(-48 * time.Hour), MonsterID: "cactus_golem", Difficulty: 4},
		{Date: day.Add(-24 * time.Hour), MonsterID: "drought_king", Difficulty: 9},
	}

	merged := Merge(local, remote.CloudStats(), nil)
	require.Len(t, merged.Trophies, 2)
	assert.Equal(t, "cactus_golem", merged.Trophies[0].MonsterID)

	// Equal lengths keep the local list even when the contents differ
	remote.Trophies = remote.Trophies[:1]
	merged = Merge(local, remote.CloudStats(), nil)
	require.Len(t, merged.Trophies, 1)
	assert.Equal(t, "sand_slime", merged.Trophies[0].MonsterID)
}

func TestMerge_LevelPairFromHigherLevel(t *testing.T) {
	local := models.NewPlayerState()
	local.Level = 2
	local.XP = 900

	remote := models.NewPlayerState()
	remote.Level = 3
	remote.XP = 10

	merged := Merge(local, remote.CloudStats(), nil)
	assert.Equal(t, 3, merged.Level)
	assert.Equal(t, 10, merged.XP)

	remote.Level = 0
	remote.XP = 5000
	merged = Merge(local, remote.CloudStats(), nil)
	assert.Equal(t, 2, merged.Level)
	assert.Equal(t, 900, merged.XP)
}

func TestMerge_KeepsLocalOnlyFields(t *testing.T) {
	local := models.NewPlayerState()
	local.Gold = 33
	local.CurrentSession.Status = models.SessionStatusRunning

	merged := Merge(local, models.NewPlayerState().CloudStats(), nil)
	assert.Equal(t, 33, merged.Gold)
	assert.Equal(t, models.SessionStatusRunning, merged.CurrentSession.Status)
}
