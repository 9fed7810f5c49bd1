package main

import (
	"context"
	"os"

	"github.com/KirkDiggler/hydroquest/internal/app"
	"github.com/KirkDiggler/hydroquest/internal/config"
	"github.com/KirkDiggler/hydroquest/internal/handlers/cli"
	"github.com/sirupsen/logrus"
)

func main() {
	factory := func(ctx context.Context) (*app.App, error) {
		cfg, err := config.Load()
		if err != nil {
			return nil, err
		}

		if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
			logrus.SetLevel(level)
		}

		return app.New(ctx, cfg)
	}

	os.Exit(cli.Execute(context.Background(), factory, os.Args[1:], os.Stdout, os.Stderr))
}
