// Package cloudsync reconciles device-local progress with the shared remote document.
package cloudsync

import (
	"github.com/KirkDiggler/hydroquest/internal/models"
)

// Merge combines local progress with the remote stats. The baseline is the
// snapshot of the last successful sync and attributes local growth since then.
// The result keeps local Gold, CurrentSession, Settings and LastMonsterID.
func Merge(local *models.PlayerState, remote *models.CloudStats, baseline *models.PlayerState) *models.PlayerState {
	merged := local.Clone()
	if remote == nil {
		return merged
	}

	if baseline == nil {
		baseline = models.NewPlayerState()
	}

	merged.UnlockedMonsters = union(merged.UnlockedMonsters, remote.UnlockedMonsters)

	// Trophies are append-only, so the longer history is the more complete one.
	if len(remote.Trophies) > len(merged.Trophies) {
		merged.Trophies = append([]models.Trophy{}, remote.Trophies...)
	}

	if levelOrDefault(remote.Level) > levelOrDefault(merged.Level) {
		merged.Level = remote.Level
		merged.XP = remote.XP
	}

	merged.TotalWaterDrankML = mergeCounter(local.TotalWaterDrankML, baseline.TotalWaterDrankML, remote.TotalWaterDrankML)
	merged.SessionsCompleted = mergeCounter(local.SessionsCompleted, baseline.SessionsCompleted, remote.SessionsCompleted)
	merged.TotalCups = mergeCounter(local.TotalCups, baseline.TotalCups, remote.TotalCups)

	return merged
}

// mergeCounter adds local growth since the baseline onto the remote total
func mergeCounter(local, baseline, remote int) int {
	delta := local - baseline
	if delta > 0 {
		return remote + delta
	}
	return max(local, remote)
}

func levelOrDefault(level int) int {
	if level < 1 {
		return 1
	}
	return level
}

func union(local, remote []string) []string {
	seen := make(map[string]struct{}, len(local)+len(remote))
	out := make([]string, 0, len(local)+len(remote))

	for _, list := range [][]string{local, remote} {
		for _, id := range list {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}

	return out
}
