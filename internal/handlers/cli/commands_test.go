package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/KirkDiggler/hydroquest/internal/app"
	clockMocks "github.com/KirkDiggler/hydroquest/internal/common/clock/mocks"
	"github.com/KirkDiggler/hydroquest/internal/config"
	"github.com/KirkDiggler/hydroquest/internal/models"
	"github.com/KirkDiggler/hydroquest/internal/repositories/kvstore"
	"github.com/KirkDiggler/hydroquest/internal/services/notify"
	"github.com/alicebob/miniredis/v2"
	googleuuid "github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CommandsTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockClock *clockMocks.MockClock
	miniRedis *miniredis.Miniredis
	cfg       *config.Config
	ctx       context.Context

	now           time.Time
	notifications bytes.Buffer
}

type result struct {
	code   int
	stdout string
	stderr string
}

type envelope struct {
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
	Error  *ResponseError  `json:"error"`
}

func (s *CommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)

	s.now = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().DoAndReturn(func() time.Time { return s.now }).AnyTimes()

	var err error
	s.miniRedis, err = miniredis.Run()
	s.Require().NoError(err)

	s.cfg = &config.Config{
		Store:                  config.StoreRedis,
		RedisAddr:              s.miniRedis.Addr(),
		RateLimitWindowMinutes: 5,
		TickInterval:           10 * time.Millisecond,
		JWTSecret:              "test-secret",
		TokenTTL:               72 * time.Hour,
		DeviceType:             "cli",
		LogLevel:               "warn",
	}
	s.ctx = context.Background()
	s.notifications.Reset()
}

func (s *CommandsTestSuite) TearDownTest() {
	s.miniRedis.Close()
	s.mockCtrl.Finish()
}

func TestCommandsSuite(t *testing.T) {
	suite.Run(t, new(CommandsTestSuite))
}

// factory opens a fresh application on the shared miniredis for every command
func (s *CommandsTestSuite) factory(context.Context) (*app.App, error) {
	client := redis.NewClient(&redis.Options{Addr: s.miniRedis.Addr()})

	store, err := kvstore.NewRedis(&kvstore.Config{RedisClient: client})
	if err != nil {
		return nil, err
	}

	notifier, err := notify.NewWriterNotifier(&s.notifications)
	if err != nil {
		return nil, err
	}

	return app.Build(s.cfg, &app.Deps{
		Store:       store,
		RedisClient: client,
		Clock:       s.mockClock,
		Notifier:    notifier,
		Picker:      func(int) int { return 0 },
	})
}

func (s *CommandsTestSuite) exec(args ...string) result {
	return s.execContext(s.ctx, args...)
}

func (s *CommandsTestSuite) execContext(ctx context.Context, args ...string) result {
	var stdout, stderr bytes.Buffer
	code := Execute(ctx, s.factory, args, &stdout, &stderr)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func (s *CommandsTestSuite) execJSON(target interface{}, args ...string) {
	res := s.exec(append([]string{"--format", "json"}, args...)...)
	s.Require().Equal(ExitSuccess, res.code, res.stdout)

	var env envelope
	s.Require().NoError(json.Unmarshal([]byte(res.stdout), &env))
	s.Require().Equal("ok", env.Status)
	s.Require().NoError(json.Unmarshal(env.Data, target))
}

func (s *CommandsTestSuite) TestStartDrinkWin() {
	res := s.exec("start", "--liters", "0.5", "--hours", "1")
	s.Require().Equal(ExitSuccess, res.code, res.stderr)
	s.Contains(res.stdout, "Sand Slime rises from the dunes. Drink 2 cups to defeat it!")
	s.Contains(res.stdout, "Goal: 500 ml (2 cups) in 01:00")

	res = s.exec("drink")
	s.Require().Equal(ExitSuccess, res.code)
	s.Contains(res.stdout, "Glug glug! 1 cups to go.")
	s.Contains(res.stdout, "Water: 1 / 2 Cups")

	s.now = s.now.Add(time.Minute)
	res = s.exec("drink")
	s.Require().Equal(ExitSuccess, res.code)
	s.Contains(res.stdout, "VICTORY!")

	var status StatusView
	s.execJSON(&status, "status")
	s.Equal(models.SessionStatusWon, status.Status)
	s.Equal(1, status.Gold)
	s.Equal(1, status.Trophies)
	s.Equal(1, status.SessionsCompleted)
	s.Equal(500, status.TotalWaterDrankML)
	s.Require().NotNil(status.Outcome)
	s.Equal("CLAIM TROPHY", status.Outcome.Action)

	var trophies TrophiesView
	s.execJSON(&trophies, "trophies")
	s.Require().Len(trophies.Trophies, 1)
	s.Equal("sand_slime", trophies.Trophies[0].Monster.ID)
	s.Equal(1, trophies.Trophies[0].Difficulty)

	res = s.exec("reset")
	s.Require().Equal(ExitSuccess, res.code)
	s.Contains(res.stdout, "Ready for a new challenge.")
}

func (s *CommandsTestSuite) TestStart_AlreadyRunning() {
	s.Require().Equal(ExitSuccess, s.exec("start").code)

	res := s.exec("start", "--liters", "3")
	s.Require().Equal(ExitSuccess, res.code)
	s.Equal("A challenge is already running. Finish it first.\n", res.stdout)
}

func (s *CommandsTestSuite) TestStart_ShortDurationIsRaised() {
	var view StartView
	s.execJSON(&view, "start", "--hours", "0.25")
	s.True(view.Started)
	s.Equal(60.0, view.DurationMinutes)
}

func (s *CommandsTestSuite) TestStart_InvalidInput() {
	res := s.exec("start", "--liters", "0")
	s.Equal(ExitBadInput, res.code)
	s.Contains(res.stderr, "Error: start failed: water goal must be greater than zero")

	res = s.exec("start", "--monster", "drought_bat")
	s.Equal(ExitBadInput, res.code)
	s.Contains(res.stderr, "monster is not unlocked")
}

func (s *CommandsTestSuite) TestDrink_RateLimited() {
	s.Require().Equal(ExitSuccess, s.exec("start", "--liters", "2").code)
	s.Require().Equal(ExitSuccess, s.exec("drink").code)
	s.Require().Equal(ExitSuccess, s.exec("drink").code)

	res := s.exec("drink")
	s.Require().Equal(ExitSuccess, res.code)
	s.Contains(res.stdout, "Easy there! Your stomach needs a moment.")
	s.Contains(res.stdout, "COOLDOWN 5:00")

	var status StatusView
	s.execJSON(&status, "status")
	s.Equal(2, status.CupsDrank)
	s.True(status.RateLimited)
	s.Equal(300, status.CooldownSeconds)
	s.Equal(3600, status.RemainingSeconds)
}

func (s *CommandsTestSuite) TestDrink_AfterDeadline() {
	s.Require().Equal(ExitSuccess, s.exec("start", "--liters", "0.25").code)

	s.now = s.now.Add(3 * time.Hour)

	res := s.exec("drink")
	s.Require().Equal(ExitSuccess, res.code)
	s.Contains(res.stdout, "Too late! The sands of time ran out.")
	s.Contains(res.stdout, "DEFEAT")

	var status StatusView
	s.execJSON(&status, "status")
	s.Equal(models.SessionStatusLost, status.Status)
	s.Equal(0, status.Gold)
	s.Equal(0, status.Trophies)
}

func (s *CommandsTestSuite) TestStart_RejectsNonFiniteInput() {
	res := s.exec("start", "--hours", "NaN")
	s.Equal(ExitBadInput, res.code)
	s.Contains(res.stderr, "duration must be")

	res = s.exec("start", "--liters", "1e17")
	s.Equal(ExitBadInput, res.code)
	s.Contains(res.stderr, "water goal must be")
}

func (s *CommandsTestSuite) TestDrink_Idle() {
	res := s.exec("drink")
	s.Require().Equal(ExitSuccess, res.code)
	s.Contains(res.stdout, "There is no monster to fight.")
}

func (s *CommandsTestSuite) TestStatus_ExpiresRunningSession() {
	s.Require().Equal(ExitSuccess, s.exec("start").code)

	s.now = s.now.Add(61 * time.Minute)

	res := s.exec("status")
	s.Require().Equal(ExitSuccess, res.code)
	s.Contains(res.stdout, "DEFEAT")
	s.Contains(res.stdout, "TRY AGAIN: hydroquest reset")
	s.Contains(s.notifications.String(), "[Session Failed!]")
}

func (s *CommandsTestSuite) TestGiveUpAndReset() {
	res := s.exec("giveup")
	s.Require().Equal(ExitSuccess, res.code)
	s.Contains(res.stdout, "No challenge is running.")

	s.Require().Equal(ExitSuccess, s.exec("start").code)

	res = s.exec("reset")
	s.Require().Equal(ExitSuccess, res.code)
	s.Contains(res.stdout, "Nothing to reset. The challenge is still running.")

	res = s.exec("giveup")
	s.Require().Equal(ExitSuccess, res.code)
	s.Contains(res.stdout, "You gave up.")
	s.Contains(res.stdout, "The monster escaped...")

	s.Require().Equal(ExitSuccess, s.exec("reset").code)

	res = s.exec("reset")
	s.Require().Equal(ExitSuccess, res.code)
	s.Contains(res.stdout, "Nothing to reset.")
}

func (s *CommandsTestSuite) TestMonstersAndBuy() {
	var monsters MonstersView
	s.execJSON(&monsters, "monsters")
	s.Len(monsters.Monsters, 10)
	s.Equal(0, monsters.Gold)

	unlocked := 0
	for _, m := range monsters.Monsters {
		if m.Unlocked {
			unlocked++
		}
	}
	s.Equal(len(models.DefaultUnlockedMonsters), unlocked)

	res := s.exec("buy", "drought_bat")
	s.Require().Equal(ExitSuccess, res.code)
	s.Contains(res.stdout, "Not enough gold for Drought Bat (costs 120).")

	res = s.exec("buy", "sand_slime")
	s.Require().Equal(ExitSuccess, res.code)
	s.Contains(res.stdout, "Sand Slime is already unlocked.")

	res = s.exec("buy", "kraken")
	s.Equal(ExitBadInput, res.code)

	res = s.exec("buy")
	s.Equal(ExitBadInput, res.code)
}

func (s *CommandsTestSuite) winSession() {
	s.Require().Equal(ExitSuccess, s.exec("start", "--liters", "0.5").code)
	s.Require().Equal(ExitSuccess, s.exec("drink").code)
	s.Require().Equal(ExitSuccess, s.exec("drink").code)
	s.Require().Equal(ExitSuccess, s.exec("reset").code)
}

func (s *CommandsTestSuite) TestAccountSyncAndBank() {
	res := s.exec("sync")
	s.Equal(ExitFailure, res.code)
	s.Contains(res.stderr, "not signed in")

	res = s.exec("signup", "--email", " Ronnie@Example.com ", "--password", "hunter22")
	s.Require().Equal(ExitSuccess, res.code, res.stderr)
	s.Contains(res.stdout, "Account Created!")
	s.Contains(res.stdout, "Signed in as ronnie@example.com")

	res = s.exec("signup", "--email", "ronnie@example.com", "--password", "hunter22")
	s.Equal(ExitFailure, res.code)
	s.Contains(res.stderr, "email already registered")

	var who AccountView
	s.execJSON(&who, "whoami")
	s.True(who.SignedIn)
	s.Equal(s.now.Add(72*time.Hour), who.ExpiresAt.UTC())

	s.winSession()

	var synced SyncView
	s.execJSON(&synced, "sync")
	s.False(synced.RemoteFound)
	s.Equal(500, synced.TotalWaterDrankML)
	s.Equal(1, synced.SessionsCompleted)
	s.Equal(1, synced.Gold)

	found := false
	for _, key := range s.miniRedis.Keys() {
		if strings.HasPrefix(key, "hydroquest:user:"+who.AccountID) {
			found = true
		}
	}
	s.True(found)

	res = s.exec("sync")
	s.Require().Equal(ExitSuccess, res.code)
	s.Contains(res.stdout, "Sync Complete!\n")

	res = s.exec("bank", "deposit", "5")
	s.Equal(ExitFailure, res.code)
	s.Contains(res.stderr, "not enough gold")

	res = s.exec("bank", "deposit", "1")
	s.Require().Equal(ExitSuccess, res.code, res.stderr)
	s.Equal("Deposited 1 gold.\nGold: 0  Bank: 1\n", res.stdout)

	res = s.exec("bank", "refresh")
	s.Require().Equal(ExitSuccess, res.code)
	s.Equal("Gold: 0  Bank: 1\n", res.stdout)

	res = s.exec("bank", "withdraw", "1")
	s.Require().Equal(ExitSuccess, res.code)
	s.Equal("Withdrew 1 gold.\nGold: 1  Bank: 0\n", res.stdout)

	res = s.exec("bank", "withdraw", "many")
	s.Equal(ExitBadInput, res.code)

	res = s.exec("bank", "deposit", "0")
	s.Equal(ExitBadInput, res.code)

	res = s.exec("logout")
	s.Require().Equal(ExitSuccess, res.code)
	s.Equal("Not signed in.\n", res.stdout)

	res = s.exec("login", "--email", "ronnie@example.com", "--password", "wrong-password")
	s.Equal(ExitFailure, res.code)
	s.Contains(res.stderr, "invalid email or password")

	s.T().Setenv(PasswordEnv, "hunter22")
	res = s.exec("login", "--email", "ronnie@example.com")
	s.Require().Equal(ExitSuccess, res.code, res.stderr)
	s.Contains(res.stdout, "Login Successful!")

	res = s.exec("login")
	s.Equal(ExitBadInput, res.code)
}

func (s *CommandsTestSuite) TestSync_ExpiredSession() {
	s.Require().Equal(ExitSuccess, s.exec("signup", "--email", "ronnie@example.com", "--password", "hunter22").code)

	s.now = s.now.Add(73 * time.Hour)

	res := s.exec("sync")
	s.Equal(ExitFailure, res.code)
	s.Contains(res.stderr, "session expired")
}

func (s *CommandsTestSuite) TestDevice() {
	var first DeviceView
	s.execJSON(&first, "device")

	id, err := googleuuid.Parse(first.DeviceID)
	s.Require().NoError(err)
	s.Equal(googleuuid.Version(7), id.Version())

	var second DeviceView
	s.execJSON(&second, "device")
	s.Equal(first.DeviceID, second.DeviceID)
}

func (s *CommandsTestSuite) TestSettings() {
	res := s.exec("settings")
	s.Require().Equal(ExitSuccess, res.code)
	s.Equal("Dehydration effects: on\n", res.stdout)

	res = s.exec("settings", "--effects", "off")
	s.Require().Equal(ExitSuccess, res.code)
	s.Equal("Dehydration effects: off\n", res.stdout)

	var view SettingsView
	s.execJSON(&view, "settings")
	s.False(view.EffectsEnabled)

	res = s.exec("settings", "--effects", "sometimes")
	s.Equal(ExitBadInput, res.code)
}

func (s *CommandsTestSuite) TestWipe() {
	s.winSession()

	res := s.exec("wipe")
	s.Equal(ExitBadInput, res.code)
	s.Contains(res.stderr, "--yes")

	s.Require().Equal(ExitSuccess, s.exec("start").code)

	res = s.exec("wipe", "--yes")
	s.Require().Equal(ExitSuccess, res.code)
	s.Equal("Local data reset.\n", res.stdout)

	var status StatusView
	s.execJSON(&status, "status")
	s.Equal(models.SessionStatusIdle, status.Status)
	s.Equal(0, status.Gold)
	s.Equal(0, status.Trophies)
}

func (s *CommandsTestSuite) TestFormatJSON_Error() {
	res := s.exec("--format", "json", "start", "--liters", "-1")
	s.Equal(ExitBadInput, res.code)
	s.Empty(res.stderr)

	var env envelope
	s.Require().NoError(json.Unmarshal([]byte(res.stdout), &env))
	s.Equal("error", env.Status)
	s.Require().NotNil(env.Error)
	s.Equal(ExitBadInput, env.Error.Code)
	s.Contains(env.Error.Message, "water goal")
}

func (s *CommandsTestSuite) TestInvalidFormat() {
	res := s.exec("--format", "xml", "status")
	s.Equal(ExitBadInput, res.code)
	s.Contains(res.stderr, `invalid format "xml"`)
}

func (s *CommandsTestSuite) TestFactoryFailure() {
	var stdout, stderr bytes.Buffer
	code := Execute(s.ctx, failingFactory, []string{"status"}, &stdout, &stderr)
	s.Equal(ExitFailure, code)
	s.Contains(stderr.String(), "failed to open hydroquest: no store")
}

func (s *CommandsTestSuite) TestDaemon_StopsWhenCancelled() {
	s.cfg.MetricsAddr = "127.0.0.1:0"

	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	res := s.execContext(ctx, "daemon")
	s.Equal(ExitSuccess, res.code, res.stderr)
	s.Contains(res.stdout, "HydroQuest daemon running.")
}
