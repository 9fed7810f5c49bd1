// Package cli implements the hydroquest command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/KirkDiggler/hydroquest/internal/app"
	"github.com/KirkDiggler/hydroquest/internal/catalog"
	"github.com/KirkDiggler/hydroquest/internal/services/auth"
	"github.com/KirkDiggler/hydroquest/internal/services/cloudsync"
	"github.com/KirkDiggler/hydroquest/internal/services/session"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// AppFactory opens the application for a single command
type AppFactory func(ctx context.Context) (*app.App, error)

// RootOptions holds global flags for all commands
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
}

// NewRootCommand creates the root command of the hydroquest CLI
func NewRootCommand(factory AppFactory) *cobra.Command {
	cmd, _ := newRootCommand(factory)
	return cmd
}

func newRootCommand(factory AppFactory) (*cobra.Command, *RootOptions) {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "hydroquest",
		Short: "HydroQuest - defeat monsters by drinking water",
		Long: `HydroQuest turns hydration into a challenge: pick a monster, commit to a
volume of water and a time limit, and drink cup by cup before the time runs out.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitBadInput, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", FormatText, "output format (json|text)")

	cmd.AddCommand(
		newStartCommand(opts, factory),
		newDrinkCommand(opts, factory),
		newGiveUpCommand(opts, factory),
		newResetCommand(opts, factory),
		newStatusCommand(opts, factory),
		newMonstersCommand(opts, factory),
		newBuyCommand(opts, factory),
		newTrophiesCommand(opts, factory),
		newSignUpCommand(opts, factory),
		newLoginCommand(opts, factory),
		newLogoutCommand(opts, factory),
		newWhoAmICommand(opts, factory),
		newSyncCommand(opts, factory),
		newBankCommand(opts, factory),
		newDeviceCommand(opts, factory),
		newSettingsCommand(opts, factory),
		newWipeCommand(opts, factory),
		newDaemonCommand(opts, factory),
	)

	return cmd, opts
}

// Execute runs the CLI with args and returns the process exit code.
// Failures are reported on stderr, or as a JSON envelope on stdout with --format json.
func Execute(ctx context.Context, factory AppFactory, args []string, stdout, stderr io.Writer) int {
	cmd, opts := newRootCommand(factory)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return ExitSuccess
	}

	formatter := &OutputFormatter{Format: opts.Format, Writer: stderr}
	if opts.Format == FormatJSON {
		formatter.Writer = stdout
	}
	if werr := formatter.Error(err); werr != nil {
		logrus.WithError(werr).Error("failed to report error")
	}

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		// cobra flag and argument errors
		return ExitBadInput
	}
	return exitErr.Code
}

// commandFunc is the body of a command once the application is open
type commandFunc func(ctx context.Context, a *app.App, out *OutputFormatter) error

// run opens the application, runs fn and maps its failure onto an exit code
func run(cmd *cobra.Command, opts *RootOptions, factory AppFactory, fn commandFunc) error {
	ctx := cmd.Context()

	a, err := factory(ctx)
	if err != nil {
		return WrapExitError(ExitFailure, "failed to open hydroquest", err)
	}
	defer func() {
		if err := a.Close(); err != nil {
			logrus.WithError(err).Warn("failed to close application")
		}
	}()

	if opts.Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	out := &OutputFormatter{
		Format: opts.Format,
		Writer: cmd.OutOrStdout(),
	}

	if err := fn(ctx, a, out); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return err
		}
		return WrapExitError(exitCode(err), cmd.Name()+" failed", err)
	}

	return nil
}

// exitCode classifies service errors
func exitCode(err error) int {
	badInput := []error{
		session.ErrInvalidGoal,
		session.ErrInvalidDuration,
		session.ErrInvalidMonster,
		session.ErrMonsterLocked,
		catalog.ErrMonsterNotFound,
		auth.ErrInvalidEmail,
		auth.ErrInvalidPassword,
		cloudsync.ErrInvalidAmount,
	}

	for _, target := range badInput {
		if errors.Is(err, target) {
			return ExitBadInput
		}
	}

	return ExitFailure
}
