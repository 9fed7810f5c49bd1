package models

import (
	"time"
)

// CloudStats is a PlayerState without Gold and CurrentSession
type CloudStats struct {
	Trophies          []Trophy `json:"trophies"`
	TotalWaterDrankML int      `json:"totalWaterDrankML"`
	SessionsCompleted int      `json:"sessionsCompleted"`
	TotalCups         int      `json:"totalCups"`
	UnlockedMonsters  []string `json:"unlockedMonsters"`
	Level             int      `json:"level"`
	XP                int      `json:"xp"`
	LastMonsterID     string   `json:"lastMonsterId,omitempty"`
	Settings          Settings `json:"settings"`
}

// DeviceInfo is the per-device metadata kept in the remote document
type DeviceInfo struct {
	// LastUpdated is the server time of the device's last push
	LastUpdated time.Time `json:"lastUpdated"`

	// Type identifies the kind of client
	Type string `json:"type"`
}

// RemoteDocument is the per-account document shared by every device
type RemoteDocument struct {
	// Stats is nil until a device has synced
	Stats *CloudStats

	// BankGold is the remote-only gold balance
	BankGold int

	// LastUpdated is the server time of the last write
	LastUpdated time.Time

	// Devices maps device ID to its metadata
	Devices map[string]DeviceInfo
}
