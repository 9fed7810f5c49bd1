package cli

import (
	"time"

	"github.com/KirkDiggler/hydroquest/internal/catalog"
	"github.com/KirkDiggler/hydroquest/internal/models"
	"github.com/KirkDiggler/hydroquest/internal/services/messaging"
	"github.com/KirkDiggler/hydroquest/internal/services/session"
)

// MonsterView names a monster
type MonsterView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// OutcomeView is the banner of a finished session
type OutcomeView struct {
	Status  models.SessionStatus `json:"status"`
	Title   string               `json:"title"`
	Message string               `json:"message"`
	Action  string               `json:"action"`
	Flavor  string               `json:"flavor"`
}

// StatusView is the output of the status command
type StatusView struct {
	Status            models.SessionStatus `json:"status"`
	Monster           MonsterView          `json:"monster"`
	Difficulty        int                  `json:"difficulty"`
	SpriteLevel       int                  `json:"spriteLevel"`
	CupsDrank         int                  `json:"cupsDrank"`
	TotalCups         int                  `json:"totalCups"`
	WaterGoalML       int                  `json:"waterGoalML"`
	RemainingSeconds  int                  `json:"remainingSeconds"`
	RateLimited       bool                 `json:"rateLimited"`
	CooldownSeconds   int                  `json:"cooldownSeconds"`
	Dehydrated        bool                 `json:"dehydrated"`
	Gold              int                  `json:"gold"`
	Level             int                  `json:"level"`
	XP                int                  `json:"xp"`
	TotalWaterDrankML int                  `json:"totalWaterDrankML"`
	SessionsCompleted int                  `json:"sessionsCompleted"`
	Trophies          int                  `json:"trophies"`
	Outcome           *OutcomeView         `json:"outcome,omitempty"`
}

// StartView is the output of the start command
type StartView struct {
	Started         bool                 `json:"started"`
	Status          models.SessionStatus `json:"status"`
	Monster         MonsterView          `json:"monster"`
	WaterGoalML     int                  `json:"waterGoalML"`
	TotalCups       int                  `json:"totalCups"`
	Difficulty      int                  `json:"difficulty"`
	DurationMinutes float64              `json:"durationMinutes"`
	Message         string               `json:"message,omitempty"`
}

// DrinkView is the output of the drink command
type DrinkView struct {
	Accepted        bool         `json:"accepted"`
	RateLimited     bool         `json:"rateLimited"`
	Won             bool         `json:"won"`
	Expired         bool         `json:"expired"`
	CupsDrank       int          `json:"cupsDrank"`
	TotalCups       int          `json:"totalCups"`
	CooldownSeconds int          `json:"cooldownSeconds"`
	Message         string       `json:"message"`
	Outcome         *OutcomeView `json:"outcome,omitempty"`
}

// ResultView is the output of giveup and reset
type ResultView struct {
	Changed bool                 `json:"changed"`
	Status  models.SessionStatus `json:"status"`
	Message string               `json:"message"`
	Outcome *OutcomeView         `json:"outcome,omitempty"`
}

// MonsterRow is one line of the monsters command
type MonsterRow struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Cost     int    `json:"cost"`
	Unlocked bool   `json:"unlocked"`
	Selected bool   `json:"selected"`
}

// MonstersView is the output of the monsters command
type MonstersView struct {
	Gold     int          `json:"gold"`
	Monsters []MonsterRow `json:"monsters"`
}

// BuyView is the output of the buy command
type BuyView struct {
	Purchased       bool        `json:"purchased"`
	AlreadyUnlocked bool        `json:"alreadyUnlocked"`
	Monster         MonsterView `json:"monster"`
	Cost            int         `json:"cost"`
	Gold            int         `json:"gold"`
}

// TrophyRow is one line of the trophies command
type TrophyRow struct {
	Date        time.Time   `json:"date"`
	Monster     MonsterView `json:"monster"`
	Difficulty  int         `json:"difficulty"`
	TrophyLevel int         `json:"trophyLevel"`
}

// TrophiesView is the output of the trophies command
type TrophiesView struct {
	SessionsCompleted int         `json:"sessionsCompleted"`
	Trophies          []TrophyRow `json:"trophies"`
}

// AccountView is the output of the account commands
type AccountView struct {
	SignedIn  bool      `json:"signedIn"`
	AccountID string    `json:"accountId,omitempty"`
	Email     string    `json:"email,omitempty"`
	ExpiresAt time.Time `json:"expiresAt,omitempty"`
}

// SyncView is the output of the sync command
type SyncView struct {
	RemoteFound       bool      `json:"remoteFound"`
	LastUpdated       time.Time `json:"lastUpdated"`
	BankGold          int       `json:"bankGold"`
	Gold              int       `json:"gold"`
	Level             int       `json:"level"`
	TotalWaterDrankML int       `json:"totalWaterDrankML"`
	SessionsCompleted int       `json:"sessionsCompleted"`
	TotalCups         int       `json:"totalCups"`
	Trophies          int       `json:"trophies"`
	UnlockedMonsters  int       `json:"unlockedMonsters"`
}

// BankView is the output of the bank commands
type BankView struct {
	Operation string `json:"operation"`
	Amount    int    `json:"amount,omitempty"`
	Gold      int    `json:"gold"`
	BankGold  int    `json:"bankGold"`
}

// DeviceView is the output of the device command
type DeviceView struct {
	DeviceID string `json:"deviceId"`
}

// SettingsView is the output of the settings command
type SettingsView struct {
	EffectsEnabled bool `json:"effectsEnabled"`
}

// WipeView is the output of the wipe command
type WipeView struct {
	Wiped bool `json:"wiped"`
}

func monsterView(c *catalog.Catalog, id string) MonsterView {
	return MonsterView{ID: id, Name: c.Name(id)}
}

func seconds(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int(d / time.Second)
}

func newStatusView(status *session.GetStatusOutput, c *catalog.Catalog, outcome *OutcomeView) *StatusView {
	state := status.State
	current := state.CurrentSession

	return &StatusView{
		Status:            current.Status,
		Monster:           monsterView(c, current.MonsterID),
		Difficulty:        current.Difficulty,
		SpriteLevel:       models.SpriteLevel(current.Difficulty),
		CupsDrank:         current.CupsDrank,
		TotalCups:         current.TotalCups,
		WaterGoalML:       current.WaterGoalML,
		RemainingSeconds:  seconds(status.Remaining),
		RateLimited:       status.RateLimited,
		CooldownSeconds:   seconds(status.Cooldown),
		Dehydrated:        status.Dehydrated,
		Gold:              state.Gold,
		Level:             state.Level,
		XP:                state.XP,
		TotalWaterDrankML: state.TotalWaterDrankML,
		SessionsCompleted: state.SessionsCompleted,
		Trophies:          len(state.Trophies),
		Outcome:           outcome,
	}
}

func newOutcomeView(status models.SessionStatus, banner *messaging.GetOutcomeMessageOutput) *OutcomeView {
	if banner == nil {
		return nil
	}

	return &OutcomeView{
		Status:  status,
		Title:   banner.Title,
		Message: banner.Message,
		Action:  banner.Action,
		Flavor:  banner.Flavor,
	}
}

func newMonstersView(state *models.PlayerState, c *catalog.Catalog) *MonstersView {
	view := &MonstersView{
		Gold:     state.Gold,
		Monsters: make([]MonsterRow, 0, len(c.List())),
	}

	for _, m := range c.List() {
		view.Monsters = append(view.Monsters, MonsterRow{
			ID:       m.ID,
			Name:     m.Name,
			Cost:     m.Cost,
			Unlocked: state.HasMonster(m.ID),
			Selected: m.ID == state.LastMonsterID,
		})
	}

	return view
}

func newTrophiesView(state *models.PlayerState, c *catalog.Catalog) *TrophiesView {
	view := &TrophiesView{
		SessionsCompleted: state.SessionsCompleted,
		Trophies:          make([]TrophyRow, 0, len(state.Trophies)),
	}

	for _, t := range state.Trophies {
		view.Trophies = append(view.Trophies, TrophyRow{
			Date:        t.Date,
			Monster:     monsterView(c, t.MonsterID),
			Difficulty:  t.Difficulty,
			TrophyLevel: models.TrophyLevel(t.Difficulty),
		})
	}

	return view
}
