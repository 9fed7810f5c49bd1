// Package app wires every HydroQuest collaborator into one explicit context.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/KirkDiggler/hydroquest/internal/catalog"
	"github.com/KirkDiggler/hydroquest/internal/common/clock"
	"github.com/KirkDiggler/hydroquest/internal/common/uuid"
	"github.com/KirkDiggler/hydroquest/internal/config"
	"github.com/KirkDiggler/hydroquest/internal/db"
	"github.com/KirkDiggler/hydroquest/internal/metrics"
	"github.com/KirkDiggler/hydroquest/internal/repositories/account"
	"github.com/KirkDiggler/hydroquest/internal/repositories/kvstore"
	"github.com/KirkDiggler/hydroquest/internal/repositories/remote"
	"github.com/KirkDiggler/hydroquest/internal/repositories/stats"
	"github.com/KirkDiggler/hydroquest/internal/services/alarm"
	"github.com/KirkDiggler/hydroquest/internal/services/auth"
	"github.com/KirkDiggler/hydroquest/internal/services/cloudsync"
	"github.com/KirkDiggler/hydroquest/internal/services/device"
	"github.com/KirkDiggler/hydroquest/internal/services/messaging"
	"github.com/KirkDiggler/hydroquest/internal/services/notify"
	"github.com/KirkDiggler/hydroquest/internal/services/session"
	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// App holds all application dependencies
type App struct {
	Config *config.Config

	Clock    clock.Clock
	Catalog  *catalog.Catalog
	Metrics  *metrics.Recorder
	Stats    stats.Repository
	Alarms   alarm.Service
	Session  session.Service
	Sync     cloudsync.Service
	Auth     auth.Service
	Devices  device.Service
	Messages messaging.Service

	redisClient *redis.Client
	database    *sql.DB
}

// Deps are the outside-world handles an App is built on
type Deps struct {
	// Store is the device-local key-value store
	Store kvstore.Store

	// RedisClient backs the remote documents and accounts
	RedisClient *redis.Client

	// Clock defaults to the system clock
	Clock clock.Clock

	// Notifier defaults to the log plus stderr
	Notifier notify.Notifier

	// Picker chooses flavor text, random when nil
	Picker messaging.Picker

	// Random feeds the device identifier, crypto/rand when nil
	Random io.Reader
}

// New opens the configured stores and builds the application
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logrus.Debug("initializing application...")

	redisClient := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr,
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	var (
		store    kvstore.Store
		database *sql.DB
		err      error
	)

	switch cfg.Store {
	case config.StoreRedis:
		if err := connectRedis(ctx, redisClient, cfg.RedisMaxRetries); err != nil {
			_ = redisClient.Close()
			return nil, fmt.Errorf("failed to init Redis: %w", err)
		}
		store, err = kvstore.NewRedis(&kvstore.Config{RedisClient: redisClient})
	default:
		database, err = openLocalDB(cfg.DBPath)
		if err != nil {
			_ = redisClient.Close()
			return nil, err
		}
		store, err = kvstore.NewSQLite(&kvstore.SQLiteConfig{DB: database})
	}
	if err != nil {
		_ = redisClient.Close()
		if database != nil {
			_ = database.Close()
		}
		return nil, fmt.Errorf("failed to create local store: %w", err)
	}

	application, err := Build(cfg, &Deps{
		Store:       store,
		RedisClient: redisClient,
	})
	if err != nil {
		_ = redisClient.Close()
		if database != nil {
			_ = database.Close()
		}
		return nil, err
	}
	application.database = database

	return application, nil
}

// Build wires the services on top of already opened stores
func Build(cfg *config.Config, deps *Deps) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if deps == nil || deps.Store == nil {
		return nil, errors.New("store cannot be nil")
	}

	if deps.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	clk := deps.Clock
	if clk == nil {
		clk = clock.New()
	}

	notifier := deps.Notifier
	if notifier == nil {
		stderr, err := notify.NewWriterNotifier(os.Stderr)
		if err != nil {
			return nil, err
		}
		notifier = notify.Multi{notify.NewLogNotifier(nil), stderr}
	}

	monsters, err := catalog.Default()
	if err != nil {
		return nil, fmt.Errorf("failed to load monster catalog: %w", err)
	}

	recorder := metrics.New()

	statsRepo, err := stats.New(&stats.Config{Store: deps.Store})
	if err != nil {
		return nil, fmt.Errorf("failed to create stats repository: %w", err)
	}

	remoteRepo, err := remote.NewRedis(&remote.Config{RedisClient: deps.RedisClient})
	if err != nil {
		return nil, fmt.Errorf("failed to create remote repository: %w", err)
	}

	accountRepo, err := account.NewRedis(&account.Config{RedisClient: deps.RedisClient})
	if err != nil {
		return nil, fmt.Errorf("failed to create account repository: %w", err)
	}

	alarms, err := alarm.New(&alarm.Config{
		Store: deps.Store,
		Clock: clk,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create alarm service: %w", err)
	}

	sessions, err := session.New(&session.Config{
		RateLimitWindowMinutes: cfg.RateLimitWindowMinutes,
		StatsRepo:              statsRepo,
		Scheduler:              alarms,
		Notifier:               notifier,
		Clock:                  clk,
		Catalog:                monsters,
		Metrics:                recorder,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create session service: %w", err)
	}

	generator, err := uuid.NewV7(&uuid.V7Config{
		Clock:  clk,
		Random: deps.Random,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create device id generator: %w", err)
	}

	devices, err := device.New(&device.Config{
		StatsRepo: statsRepo,
		Generator: generator,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create device service: %w", err)
	}

	syncer, err := cloudsync.New(&cloudsync.Config{
		DeviceType: cfg.DeviceType,
		StatsRepo:  statsRepo,
		RemoteRepo: remoteRepo,
		Devices:    devices,
		Metrics:    recorder,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create sync service: %w", err)
	}

	authService, err := auth.New(&auth.Config{
		JWTSecret:   cfg.JWTSecret,
		TokenTTL:    cfg.TokenTTL,
		AccountRepo: accountRepo,
		StatsRepo:   statsRepo,
		Clock:       clk,
		UUID:        uuid.New(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create auth service: %w", err)
	}

	messages, err := messaging.NewService(&messaging.Config{Picker: deps.Picker})
	if err != nil {
		return nil, fmt.Errorf("failed to create messaging service: %w", err)
	}

	return &App{
		Config:      cfg,
		Clock:       clk,
		Catalog:     monsters,
		Metrics:     recorder,
		Stats:       statsRepo,
		Alarms:      alarms,
		Session:     sessions,
		Sync:        syncer,
		Auth:        authService,
		Devices:     devices,
		Messages:    messages,
		redisClient: deps.RedisClient,
	}, nil
}

// ConnectRemote waits for the remote store to answer, retrying with exponential backoff
func (a *App) ConnectRemote(ctx context.Context) error {
	if err := connectRedis(ctx, a.redisClient, a.Config.RedisMaxRetries); err != nil {
		return fmt.Errorf("failed to reach %s: %w", a.Config.RedisAddr, err)
	}
	return nil
}

// Close releases the stores
func (a *App) Close() error {
	var errs []error

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	if a.database != nil {
		if err := a.database.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func openLocalDB(path string) (*sql.DB, error) {
	database, err := db.OpenSQLite(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open local store: %w", err)
	}

	if err := db.RunMigrations(database, db.Migrations()); err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("failed to migrate local store: %w", err)
	}

	return database, nil
}

func connectRedis(ctx context.Context, client *redis.Client, maxRetries uint64) error {
	b := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxRetries), ctx)

	return backoff.Retry(
		func() error {
			if err := client.Ping(ctx).Err(); err != nil {
				logrus.Warnf("Redis connection failed: %v, retrying...", err)
				return err
			}
			return nil
		},
		b,
	)
}
