package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/KirkDiggler/hydroquest/internal/app"
	"github.com/KirkDiggler/hydroquest/internal/services/cloudsync"
	"github.com/spf13/cobra"
)

// Bank operations
const (
	BankDeposit  = "deposit"
	BankWithdraw = "withdraw"
	BankRefresh  = "refresh"
)

// cloud validates the session and waits for the remote store
func cloud(ctx context.Context, a *app.App) error {
	if _, err := a.Auth.Current(ctx); err != nil {
		return err
	}
	return a.ConnectRemote(ctx)
}

func newSyncCommand(rootOpts *RootOptions, factory AppFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Merge progress with the cloud",
		Long: `Merge lifetime progress with the cloud account.

Counters are reconciled by the amount gained on this device since the last
sync, unlocked monsters are combined and gold stays on the device.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, rootOpts, factory, runSync)
		},
	}
}

func runSync(ctx context.Context, a *app.App, out *OutputFormatter) error {
	if err := cloud(ctx, a); err != nil {
		return err
	}

	result, err := a.Sync.Sync(ctx, &cloudsync.SyncInput{})
	if err != nil {
		return err
	}

	state := result.State
	view := &SyncView{
		RemoteFound:       result.RemoteFound,
		LastUpdated:       result.LastUpdated,
		BankGold:          result.BankGold,
		Gold:              state.Gold,
		Level:             state.Level,
		TotalWaterDrankML: state.TotalWaterDrankML,
		SessionsCompleted: state.SessionsCompleted,
		TotalCups:         state.TotalCups,
		Trophies:          len(state.Trophies),
		UnlockedMonsters:  len(state.UnlockedMonsters),
	}

	return out.Success(view, func(w io.Writer) error { return renderSync(w, view) })
}

func newBankCommand(rootOpts *RootOptions, factory AppFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bank",
		Short: "Move gold between this device and the cloud bank",
	}

	cmd.AddCommand(
		newBankTransferCommand(rootOpts, factory, BankDeposit, "Move local gold into the bank"),
		newBankTransferCommand(rootOpts, factory, BankWithdraw, "Move bank gold onto this device"),
		&cobra.Command{
			Use:   BankRefresh,
			Short: "Reload the bank balance",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return run(cmd, rootOpts, factory, func(ctx context.Context, a *app.App, out *OutputFormatter) error {
					if err := cloud(ctx, a); err != nil {
						return err
					}

					result, err := a.Sync.RefreshBank(ctx, &cloudsync.RefreshBankInput{})
					if err != nil {
						return err
					}

					view := &BankView{Operation: BankRefresh, Gold: result.Gold, BankGold: result.BankGold}
					return out.Success(view, func(w io.Writer) error { return renderBank(w, view) })
				})
			},
		},
	)

	return cmd
}

func newBankTransferCommand(rootOpts *RootOptions, factory AppFactory, operation, short string) *cobra.Command {
	return &cobra.Command{
		Use:   operation + " <amount>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.Atoi(args[0])
			if err != nil {
				return WrapExitError(ExitBadInput, fmt.Sprintf("invalid amount %q", args[0]), err)
			}

			return run(cmd, rootOpts, factory, func(ctx context.Context, a *app.App, out *OutputFormatter) error {
				if err := cloud(ctx, a); err != nil {
					return err
				}

				transfer := a.Sync.Deposit
				if operation == BankWithdraw {
					transfer = a.Sync.Withdraw
				}

				result, err := transfer(ctx, &cloudsync.BankInput{Amount: amount})
				if err != nil {
					return err
				}

				view := &BankView{Operation: operation, Amount: amount, Gold: result.Gold, BankGold: result.BankGold}
				return out.Success(view, func(w io.Writer) error { return renderBank(w, view) })
			})
		},
	}
}

func newDeviceCommand(rootOpts *RootOptions, factory AppFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "device",
		Short: "Show the identifier of this device",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, rootOpts, factory, func(ctx context.Context, a *app.App, out *OutputFormatter) error {
				deviceID, err := a.Devices.EnsureDeviceID(ctx)
				if err != nil {
					return err
				}

				view := &DeviceView{DeviceID: deviceID}
				return out.Success(view, func(w io.Writer) error { return renderDevice(w, view) })
			})
		},
	}
}
