package app

import (
	"context"
	"errors"
	"time"

	"github.com/KirkDiggler/hydroquest/internal/services/alarm"
	"github.com/KirkDiggler/hydroquest/internal/services/session"
	"github.com/sirupsen/logrus"
)

// DaemonConfig holds configuration for the background loop
type DaemonConfig struct {
	Alarms  alarm.Service
	Session session.Service

	// Interval between polls, one second when zero
	Interval time.Duration
}

// Daemon delivers due alarms and runs the expiry safety net
type Daemon struct {
	alarms   alarm.Service
	session  session.Service
	interval time.Duration
}

// NewDaemon creates the background loop
func NewDaemon(cfg *DaemonConfig) (*Daemon, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Alarms == nil {
		return nil, errors.New("alarm service cannot be nil")
	}

	if cfg.Session == nil {
		return nil, errors.New("session service cannot be nil")
	}

	interval := cfg.Interval
	if interval <= 0 {
		interval = time.Second
	}

	return &Daemon{
		alarms:   cfg.Alarms,
		session:  cfg.Session,
		interval: interval,
	}, nil
}

// Run polls until ctx is cancelled
func (d *Daemon) Run(ctx context.Context) error {
	logrus.WithField("interval", d.interval).Info("daemon started")

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	d.Step(ctx)

	for {
		select {
		case <-ctx.Done():
			logrus.Info("daemon stopped")
			return nil
		case <-ticker.C:
			d.Step(ctx)
		}
	}
}

// Step runs one poll: due alarms first, then the expiry check
func (d *Daemon) Step(ctx context.Context) {
	output, err := d.alarms.Poll(ctx, d.session.HandleAlarm)
	if err != nil {
		logrus.WithError(err).Warn("alarm delivery failed")
	} else if len(output.Fired) > 0 {
		logrus.WithField("alarms", output.Fired).Debug("alarms delivered")
	}

	tick, err := d.session.Tick(ctx, &session.TickInput{})
	if err != nil {
		logrus.WithError(err).Warn("expiry check failed")
		return
	}

	if tick.Expired {
		logrus.Info("session expired")
	}
}
