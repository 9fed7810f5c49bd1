package models

import (
	"time"
)

// CurrentSchemaVersion is written into every migrated PlayerState
const CurrentSchemaVersion = 2

// Trophy records a won session
type Trophy struct {
	// Date is when the session was won
	Date time.Time `json:"date"`

	// MonsterID is the defeated monster
	MonsterID string `json:"monsterId"`

	// Difficulty is the difficulty of the won session
	Difficulty int `json:"difficulty"`
}

// Settings holds user preferences
type Settings struct {
	// EffectsEnabled toggles the dehydration visual effects
	EffectsEnabled bool `json:"effectsEnabled"`
}

// PlayerState is the persisted root document of a device
type PlayerState struct {
	SchemaVersion int `json:"schemaVersion"`

	// CurrentSession is the in-progress or most recently finished challenge
	CurrentSession *Session `json:"currentSession"`

	// Trophies is the append-only win history
	Trophies []Trophy `json:"trophies"`

	// TotalWaterDrankML is the cumulative water drunk
	TotalWaterDrankML int `json:"totalWaterDrankML"`

	// SessionsCompleted counts won sessions
	SessionsCompleted int `json:"sessionsCompleted"`

	// TotalCups counts every accepted cup
	TotalCups int `json:"totalCups"`

	// Gold is local spendable currency, never pushed to the cloud
	Gold int `json:"gold"`

	// UnlockedMonsters always contains DefaultUnlockedMonsters
	UnlockedMonsters []string `json:"unlockedMonsters"`

	Level int `json:"level"`
	XP    int `json:"xp"`

	// LastMonsterID is the monster chosen for the last started session
	LastMonsterID string `json:"lastMonsterId,omitempty"`

	Settings Settings `json:"settings"`
}

// NewPlayerState returns the state written on first install
func NewPlayerState() *PlayerState {
	return &PlayerState{
		SchemaVersion:    CurrentSchemaVersion,
		CurrentSession:   NewIdleSession(),
		Trophies:         []Trophy{},
		UnlockedMonsters: append([]string{}, DefaultUnlockedMonsters...),
		Level:            1,
		Settings: Settings{
			EffectsEnabled: true,
		},
	}
}

// HasMonster reports whether monsterID is unlocked
func (p *PlayerState) HasMonster(monsterID string) bool {
	for _, id := range p.UnlockedMonsters {
		if id == monsterID {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the state
func (p *PlayerState) Clone() *PlayerState {
	if p == nil {
		return nil
	}
	clone := *p
	clone.CurrentSession = p.CurrentSession.Clone()
	clone.Trophies = append([]Trophy{}, p.Trophies...)
	clone.UnlockedMonsters = append([]string{}, p.UnlockedMonsters...)
	return &clone
}

// CloudStats returns the subset of the state pushed to the remote document
func (p *PlayerState) CloudStats() *CloudStats {
	return &CloudStats{
		Trophies:          append([]Trophy{}, p.Trophies...),
		TotalWaterDrankML: p.TotalWaterDrankML,
		SessionsCompleted: p.SessionsCompleted,
		TotalCups:         p.TotalCups,
		UnlockedMonsters:  append([]string{}, p.UnlockedMonsters...),
		Level:             p.Level,
		XP:                p.XP,
		LastMonsterID:     p.LastMonsterID,
		Settings:          p.Settings,
	}
}
