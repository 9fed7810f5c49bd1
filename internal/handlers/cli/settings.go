package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/KirkDiggler/hydroquest/internal/app"
	"github.com/KirkDiggler/hydroquest/internal/models"
	"github.com/KirkDiggler/hydroquest/internal/repositories/stats"
	"github.com/spf13/cobra"
)

// parseSwitch accepts on/off next to the strconv boolean spellings
func parseSwitch(value string) (bool, error) {
	switch strings.ToLower(value) {
	case "on":
		return true, nil
	case "off":
		return false, nil
	}
	return strconv.ParseBool(value)
}

func newSettingsCommand(rootOpts *RootOptions, factory AppFactory) *cobra.Command {
	var effects string

	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				enabled bool
				change  = cmd.Flags().Changed("effects")
			)
			if change {
				var err error
				enabled, err = parseSwitch(effects)
				if err != nil {
					return WrapExitError(ExitBadInput, fmt.Sprintf("invalid --effects value %q", effects), err)
				}
			}

			return run(cmd, rootOpts, factory, func(ctx context.Context, a *app.App, out *OutputFormatter) error {
				result, err := a.Stats.UpdatePlayerState(ctx, &stats.UpdatePlayerStateInput{
					Mutate: func(state *models.PlayerState) (bool, error) {
						if !change || state.Settings.EffectsEnabled == enabled {
							return false, nil
						}
						state.Settings.EffectsEnabled = enabled
						return true, nil
					},
				})
				if err != nil {
					return err
				}

				view := &SettingsView{EffectsEnabled: result.State.Settings.EffectsEnabled}
				return out.Success(view, func(w io.Writer) error { return renderSettings(w, view) })
			})
		},
	}

	cmd.Flags().StringVar(&effects, "effects", "", "dehydration effects (on|off)")

	return cmd
}

func newWipeCommand(rootOpts *RootOptions, factory AppFactory) *cobra.Command {
	var confirmed bool

	cmd := &cobra.Command{
		Use:   "wipe",
		Short: "Delete local progress",
		Long:  "Replace the local progress with a fresh install. Cloud data and the signed-in account are kept.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirmed {
				return NewExitError(ExitBadInput, "refusing to delete local data without --yes")
			}

			return run(cmd, rootOpts, factory, func(ctx context.Context, a *app.App, out *OutputFormatter) error {
				if err := a.Stats.SavePlayerState(ctx, &stats.SavePlayerStateInput{State: models.NewPlayerState()}); err != nil {
					return err
				}

				for _, name := range []string{models.AlarmSessionTimeout, models.AlarmDrinkReminder} {
					if err := a.Alarms.Cancel(ctx, name); err != nil {
						return err
					}
				}

				if err := a.Stats.SetDehydrated(ctx, false); err != nil {
					return err
				}

				view := &WipeView{Wiped: true}
				return out.Success(view, func(w io.Writer) error { return renderWipe(w, view) })
			})
		},
	}

	cmd.Flags().BoolVarP(&confirmed, "yes", "y", false, "confirm deleting local data")

	return cmd
}
