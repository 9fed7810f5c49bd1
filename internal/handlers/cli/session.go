package cli

import (
	"context"
	"io"
	"math"

	"github.com/KirkDiggler/hydroquest/internal/app"
	"github.com/KirkDiggler/hydroquest/internal/models"
	"github.com/KirkDiggler/hydroquest/internal/services/messaging"
	"github.com/KirkDiggler/hydroquest/internal/services/session"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// MinHours is the shortest challenge the start command accepts
const MinHours = 1.0

// StartOptions holds flags for the start command
type StartOptions struct {
	Liters  float64
	Hours   float64
	Monster string
}

func newStartCommand(rootOpts *RootOptions, factory AppFactory) *cobra.Command {
	opts := &StartOptions{}

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a hydration challenge",
		Long: `Start a hydration challenge against a monster.

Every 250 ml is one cup; the difficulty grows with the number of cups.
Durations below one hour are raised to one hour.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, rootOpts, factory, func(ctx context.Context, a *app.App, out *OutputFormatter) error {
				return runStart(ctx, a, out, opts)
			})
		},
	}

	cmd.Flags().Float64VarP(&opts.Liters, "liters", "l", 2, "water goal in liters")
	cmd.Flags().Float64VarP(&opts.Hours, "hours", "t", MinHours, "time limit in hours")
	cmd.Flags().StringVarP(&opts.Monster, "monster", "m", "", "monster to fight (default: last chosen)")

	return cmd
}

// durationMinutes clamps hours and converts them to whole minutes. NaN passes
// through for the session service to reject.
func durationMinutes(hours float64) float64 {
	if hours < MinHours {
		logrus.WithField("hours", hours).Debugf("raising duration to %v hours", MinHours)
		hours = MinHours
	}
	return math.Floor(hours * 60)
}

func runStart(ctx context.Context, a *app.App, out *OutputFormatter, opts *StartOptions) error {
	result, err := a.Session.StartSession(ctx, &session.StartSessionInput{
		LitersGoal:      opts.Liters,
		DurationMinutes: durationMinutes(opts.Hours),
		MonsterID:       opts.Monster,
	})
	if err != nil {
		return err
	}

	current := result.Session
	view := &StartView{
		Started:         result.Started,
		Status:          current.Status,
		Monster:         monsterView(a.Catalog, current.MonsterID),
		WaterGoalML:     current.WaterGoalML,
		TotalCups:       current.TotalCups,
		Difficulty:      current.Difficulty,
		DurationMinutes: current.DurationMinutes,
	}

	if result.Started {
		msg, err := a.Messages.GetStartMessage(ctx, &messaging.GetStartMessageInput{
			MonsterName: view.Monster.Name,
			TotalCups:   current.TotalCups,
		})
		if err != nil {
			return err
		}
		view.Message = msg.Message
	}

	return out.Success(view, func(w io.Writer) error { return renderStart(w, view) })
}

func newDrinkCommand(rootOpts *RootOptions, factory AppFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "drink",
		Short: "Drink a cup of water",
		Long:  "Count one 250 ml cup. At most two cups are accepted per rate limit window.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, rootOpts, factory, runDrink)
		},
	}
}

func runDrink(ctx context.Context, a *app.App, out *OutputFormatter) error {
	result, err := a.Session.Drink(ctx, &session.DrinkInput{})
	if err != nil {
		return err
	}

	current := result.Session
	msg, err := a.Messages.GetDrinkMessage(ctx, &messaging.GetDrinkMessageInput{
		Accepted:    result.Accepted,
		RateLimited: result.RateLimited,
		Expired:     result.Expired,
		CupsLeft:    current.TotalCups - current.CupsDrank,
	})
	if err != nil {
		return err
	}

	view := &DrinkView{
		Accepted:        result.Accepted,
		RateLimited:     result.RateLimited,
		Won:             result.Won,
		Expired:         result.Expired,
		CupsDrank:       current.CupsDrank,
		TotalCups:       current.TotalCups,
		CooldownSeconds: seconds(result.Cooldown),
		Message:         msg.Message,
	}

	switch {
	case result.Won:
		view.Outcome, err = outcome(ctx, a, models.SessionStatusWon)
	case result.Expired:
		view.Outcome, err = outcome(ctx, a, models.SessionStatusLost)
	}
	if err != nil {
		return err
	}

	return out.Success(view, func(w io.Writer) error { return renderDrink(w, view) })
}

func newGiveUpCommand(rootOpts *RootOptions, factory AppFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "giveup",
		Short: "Give up the running challenge",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, rootOpts, factory, runGiveUp)
		},
	}
}

func runGiveUp(ctx context.Context, a *app.App, out *OutputFormatter) error {
	result, err := a.Session.GiveUp(ctx, &session.GiveUpInput{})
	if err != nil {
		return err
	}

	view := &ResultView{
		Changed: result.GaveUp,
		Status:  result.Session.Status,
		Message: "No challenge is running.",
	}

	if result.GaveUp {
		view.Message = "You gave up."
		view.Outcome, err = outcome(ctx, a, models.SessionStatusLost)
		if err != nil {
			return err
		}
	}

	return out.Success(view, func(w io.Writer) error { return renderResult(w, view) })
}

func newResetCommand(rootOpts *RootOptions, factory AppFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Claim the result of a finished challenge and return to idle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, rootOpts, factory, runReset)
		},
	}
}

func runReset(ctx context.Context, a *app.App, out *OutputFormatter) error {
	result, err := a.Session.Reset(ctx, &session.ResetInput{})
	if err != nil {
		return err
	}

	view := &ResultView{
		Changed: result.Reset,
		Status:  result.Session.Status,
		Message: "Ready for a new challenge.",
	}

	if !result.Reset {
		view.Message = "Nothing to reset."
		if result.Session.IsActive() {
			view.Message = "Nothing to reset. The challenge is still running."
		}
	}

	return out.Success(view, func(w io.Writer) error { return renderResult(w, view) })
}

func newStatusCommand(rootOpts *RootOptions, factory AppFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current challenge",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, rootOpts, factory, runStatus)
		},
	}
}

func runStatus(ctx context.Context, a *app.App, out *OutputFormatter) error {
	// catch an expiry the daemon has not delivered yet
	if _, err := a.Session.Tick(ctx, &session.TickInput{}); err != nil {
		return err
	}

	status, err := a.Session.GetStatus(ctx, &session.GetStatusInput{})
	if err != nil {
		return err
	}

	var banner *OutcomeView
	if current := status.State.CurrentSession; current.Status.IsFinished() {
		banner, err = outcome(ctx, a, current.Status)
		if err != nil {
			return err
		}
	}

	view := newStatusView(status, a.Catalog, banner)
	return out.Success(view, func(w io.Writer) error { return renderStatus(w, view) })
}

func outcome(ctx context.Context, a *app.App, status models.SessionStatus) (*OutcomeView, error) {
	banner, err := a.Messages.GetOutcomeMessage(ctx, &messaging.GetOutcomeMessageInput{Status: status})
	if err != nil {
		return nil, err
	}
	return newOutcomeView(status, banner), nil
}
