package cli

import (
	"context"
	"io"

	"github.com/KirkDiggler/hydroquest/internal/app"
	"github.com/KirkDiggler/hydroquest/internal/services/session"
	"github.com/spf13/cobra"
)

func newMonstersCommand(rootOpts *RootOptions, factory AppFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "monsters",
		Short: "List monsters and their prices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, rootOpts, factory, func(ctx context.Context, a *app.App, out *OutputFormatter) error {
				state, err := a.Stats.GetPlayerState(ctx)
				if err != nil {
					return err
				}

				view := newMonstersView(state, a.Catalog)
				return out.Success(view, func(w io.Writer) error { return renderMonsters(w, view) })
			})
		},
	}
}

func newBuyCommand(rootOpts *RootOptions, factory AppFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "buy <monster-id>",
		Short: "Spend gold to unlock a monster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, rootOpts, factory, func(ctx context.Context, a *app.App, out *OutputFormatter) error {
				result, err := a.Session.BuyMonster(ctx, &session.BuyMonsterInput{MonsterID: args[0]})
				if err != nil {
					return err
				}

				view := &BuyView{
					Purchased:       result.Purchased,
					AlreadyUnlocked: result.AlreadyUnlocked,
					Monster:         MonsterView{ID: result.Monster.ID, Name: result.Monster.Name},
					Cost:            result.Monster.Cost,
					Gold:            result.Gold,
				}
				return out.Success(view, func(w io.Writer) error { return renderBuy(w, view) })
			})
		},
	}
}

func newTrophiesCommand(rootOpts *RootOptions, factory AppFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "trophies",
		Short: "Show the trophy room",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, rootOpts, factory, func(ctx context.Context, a *app.App, out *OutputFormatter) error {
				state, err := a.Stats.GetPlayerState(ctx)
				if err != nil {
					return err
				}

				view := newTrophiesView(state, a.Catalog)
				return out.Success(view, func(w io.Writer) error { return renderTrophies(w, view) })
			})
		},
	}
}
