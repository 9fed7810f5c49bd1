package cli

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/KirkDiggler/hydroquest/internal/app"
	"github.com/KirkDiggler/hydroquest/internal/catalog"
	"github.com/KirkDiggler/hydroquest/internal/services/auth"
	"github.com/KirkDiggler/hydroquest/internal/services/cloudsync"
	"github.com/KirkDiggler/hydroquest/internal/services/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func failingFactory(context.Context) (*app.App, error) {
	return nil, errors.New("no store")
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand(failingFactory)
	require.NotNil(t, cmd)
	assert.Equal(t, "hydroquest", cmd.Use)
	assert.True(t, cmd.SilenceUsage)
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand(failingFactory)
	commands := [][]string{
		{"start"}, {"drink"}, {"giveup"}, {"reset"}, {"status"},
		{"monsters"}, {"buy"}, {"trophies"},
		{"signup"}, {"login"}, {"logout"}, {"whoami"},
		{"sync"}, {"bank", "deposit"}, {"bank", "withdraw"}, {"bank", "refresh"}, {"device"},
		{"settings"}, {"wipe"}, {"daemon"},
	}

	for _, path := range commands {
		t.Run(fmt.Sprint(path), func(t *testing.T) {
			subCmd, _, err := cmd.Find(path)
			require.NoError(t, err)
			require.NotNil(t, subCmd)
			assert.Equal(t, path[len(path)-1], subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand(failingFactory)

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, FormatText, formatFlag.DefValue)
}

func TestStartCommandFlags(t *testing.T) {
	cmd := NewRootCommand(failingFactory)
	startCmd, _, err := cmd.Find([]string{"start"})
	require.NoError(t, err)

	liters := startCmd.Flags().Lookup("liters")
	require.NotNil(t, liters)
	assert.Equal(t, "2", liters.DefValue)

	hours := startCmd.Flags().Lookup("hours")
	require.NotNil(t, hours)
	assert.Equal(t, "1", hours.DefValue)

	monster := startCmd.Flags().Lookup("monster")
	require.NotNil(t, monster)
	assert.Equal(t, "", monster.DefValue)
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{err: session.ErrInvalidGoal, want: ExitBadInput},
		{err: fmt.Errorf("%w: dragon", catalog.ErrMonsterNotFound), want: ExitBadInput},
		{err: auth.ErrInvalidPassword, want: ExitBadInput},
		{err: cloudsync.ErrInvalidAmount, want: ExitBadInput},
		{err: auth.ErrInvalidCredentials, want: ExitFailure},
		{err: cloudsync.ErrRemoteRead, want: ExitFailure},
		{err: errors.New("boom"), want: ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("boom")))
	assert.Equal(t, ExitBadInput, GetExitCode(NewExitError(ExitBadInput, "bad")))
	assert.Equal(t, ExitBadInput, GetExitCode(fmt.Errorf("wrapped: %w", NewExitError(ExitBadInput, "bad"))))

	wrapped := WrapExitError(ExitFailure, "sync failed", cloudsync.ErrNotSignedIn)
	assert.Equal(t, "sync failed: sign in to sync", wrapped.Error())
	assert.ErrorIs(t, wrapped, cloudsync.ErrNotSignedIn)
}
