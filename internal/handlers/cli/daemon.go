package cli

import (
	"context"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/hydroquest/internal/app"
	"github.com/KirkDiggler/hydroquest/internal/metrics"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newDaemonCommand(rootOpts *RootOptions, factory AppFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "daemon",
		Short: "Deliver reminders and timeouts in the background",
		Long: `Run until interrupted, firing due alarms (drink reminders, session timeouts)
and checking once per tick whether the running challenge has expired.

Serves Prometheus metrics when HYDRO_METRICS_ADDR is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, rootOpts, factory, runDaemon)
		},
	}
}

func runDaemon(ctx context.Context, a *app.App, out *OutputFormatter) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if addr := a.Config.MetricsAddr; addr != "" {
		server, err := metrics.NewServer(addr, a.Metrics)
		if err != nil {
			return err
		}
		server.Start()

		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				logrus.WithError(err).Warn("failed to stop metrics server")
			}
		}()
	}

	daemon, err := app.NewDaemon(&app.DaemonConfig{
		Alarms:   a.Alarms,
		Session:  a.Session,
		Interval: a.Config.TickInterval,
	})
	if err != nil {
		return err
	}

	if out.Format == FormatText {
		if _, err := io.WriteString(out.Writer, "HydroQuest daemon running. Press CTRL-C to exit.\n"); err != nil {
			return err
		}
	}

	return daemon.Run(ctx)
}
