package cli

import (
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/KirkDiggler/hydroquest/internal/models"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	sandSlime = MonsterView{ID: "sand_slime", Name: "Sand Slime"}
	wonBanner = &OutcomeView{
		Status:  models.SessionStatusWon,
		Title:   "VICTORY!",
		Message: "You defeated the monster!",
		Action:  "CLAIM TROPHY",
		Flavor:  "Hydration is the ultimate weapon.",
	}
)

func TestRenderGolden(t *testing.T) {
	tests := []struct {
		name   string
		render func(w io.Writer) error
	}{
		{
			name: "status_running",
			render: func(w io.Writer) error {
				return renderStatus(w, &StatusView{
					Status:            models.SessionStatusRunning,
					Monster:           sandSlime,
					Difficulty:        5,
					CupsDrank:         3,
					TotalCups:         8,
					RemainingSeconds:  42*60 + 10,
					RateLimited:       true,
					CooldownSeconds:   150,
					Dehydrated:        true,
					Gold:              12,
					Trophies:          3,
					Level:             1,
					TotalWaterDrankML: 4750,
					SessionsCompleted: 3,
				})
			},
		},
		{
			name: "status_won",
			render: func(w io.Writer) error {
				return renderStatus(w, &StatusView{
					Status:            models.SessionStatusWon,
					Gold:              20,
					Trophies:          4,
					Level:             1,
					TotalWaterDrankML: 6750,
					SessionsCompleted: 4,
					Outcome:           wonBanner,
				})
			},
		},
		{
			name: "status_idle",
			render: func(w io.Writer) error {
				return renderStatus(w, &StatusView{Status: models.SessionStatusIdle, Level: 1})
			},
		},
		{
			name: "start",
			render: func(w io.Writer) error {
				return renderStart(w, &StartView{
					Started:         true,
					Status:          models.SessionStatusRunning,
					Monster:         sandSlime,
					WaterGoalML:     2000,
					TotalCups:       8,
					Difficulty:      5,
					DurationMinutes: 90,
					Message:         "Sand Slime rises from the dunes. Drink 8 cups to defeat it!",
				})
			},
		},
		{
			name: "start_already_running",
			render: func(w io.Writer) error {
				return renderStart(w, &StartView{Status: models.SessionStatusRunning})
			},
		},
		{
			name: "drink_accepted",
			render: func(w io.Writer) error {
				return renderDrink(w, &DrinkView{Accepted: true, CupsDrank: 4, TotalCups: 8, Message: "Glug glug! 4 cups to go."})
			},
		},
		{
			name: "drink_rate_limited",
			render: func(w io.Writer) error {
				return renderDrink(w, &DrinkView{RateLimited: true, CooldownSeconds: 65, Message: "Easy there! Your stomach needs a moment."})
			},
		},
		{
			name: "drink_won",
			render: func(w io.Writer) error {
				return renderDrink(w, &DrinkView{
					Accepted:  true,
					Won:       true,
					CupsDrank: 8,
					TotalCups: 8,
					Message:   "Glug glug! 0 cups to go.",
					Outcome:   wonBanner,
				})
			},
		},
		{
			name: "monsters",
			render: func(w io.Writer) error {
				return renderMonsters(w, &MonstersView{
					Gold: 90,
					Monsters: []MonsterRow{
						{ID: "sand_slime", Name: "Sand Slime", Cost: 100, Unlocked: true, Selected: true},
						{ID: "drought_bat", Name: "Drought Bat", Cost: 120},
						{ID: "dust_mite", Name: "Dust Mite", Cost: 80},
					},
				})
			},
		},
		{
			name: "buy",
			render: func(w io.Writer) error {
				return renderBuy(w, &BuyView{
					Purchased: true,
					Monster:   MonsterView{ID: "drought_bat", Name: "Drought Bat"},
					Cost:      120,
					Gold:      30,
				})
			},
		},
		{
			name: "trophies",
			render: func(w io.Writer) error {
				return renderTrophies(w, &TrophiesView{
					SessionsCompleted: 2,
					Trophies: []TrophyRow{
						{
							Date:        time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC),
							Monster:     sandSlime,
							Difficulty:  5,
							TrophyLevel: 3,
						},
						{
							Date:        time.Date(2025, 4, 6, 10, 0, 0, 0, time.UTC),
							Monster:     MonsterView{ID: "drought_king", Name: "Drought King"},
							Difficulty:  10,
							TrophyLevel: 6,
						},
					},
				})
			},
		},
		{
			name: "trophies_empty",
			render: func(w io.Writer) error {
				return renderTrophies(w, &TrophiesView{})
			},
		},
		{
			name: "account",
			render: func(w io.Writer) error {
				return renderAccount(w, &AccountView{
					SignedIn:  true,
					AccountID: "acct-123",
					Email:     "ronnie@example.com",
					ExpiresAt: time.Date(2025, 4, 8, 10, 0, 0, 0, time.UTC),
				})
			},
		},
		{
			name: "sync",
			render: func(w io.Writer) error {
				return renderSync(w, &SyncView{
					RemoteFound:       true,
					BankGold:          40,
					Gold:              12,
					Level:             1,
					TotalWaterDrankML: 3500,
					SessionsCompleted: 2,
					TotalCups:         14,
					Trophies:          2,
					UnlockedMonsters:  5,
				})
			},
		},
		{
			name: "bank_deposit",
			render: func(w io.Writer) error {
				return renderBank(w, &BankView{Operation: BankDeposit, Amount: 10, Gold: 2, BankGold: 50})
			},
		},
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, tt.render(&buf))
			g.Assert(t, tt.name, buf.Bytes())
		})
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "0:00", formatClock(0))
	assert.Equal(t, "0:00", formatClock(-5))
	assert.Equal(t, "1:05", formatClock(65))
	assert.Equal(t, "120:00", formatClock(7200))
}

func TestFormatHours(t *testing.T) {
	assert.Equal(t, "01:00", formatHours(60))
	assert.Equal(t, "01:30", formatHours(90))
	assert.Equal(t, "00:45", formatHours(45))
}

func TestDurationMinutes(t *testing.T) {
	assert.Equal(t, 60.0, durationMinutes(0.25))
	assert.Equal(t, 60.0, durationMinutes(1))
	assert.Equal(t, 90.0, durationMinutes(1.5))
	assert.Equal(t, 100.0, durationMinutes(1.6751))
}
