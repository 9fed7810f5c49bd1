// Package device assigns this installation its persistent identifier.
package device

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/hydroquest/internal/services/device Service

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/hydroquest/internal/common/uuid"
	"github.com/KirkDiggler/hydroquest/internal/repositories/stats"
	"github.com/sirupsen/logrus"
)

// Service resolves the device identifier
type Service interface {
	// EnsureDeviceID returns the persisted identifier, generating it on first use
	EnsureDeviceID(ctx context.Context) (string, error)
}

// Config holds configuration for the device service
type Config struct {
	StatsRepo stats.Repository

	// Generator must produce time-ordered identifiers
	Generator uuid.UUID
}

type service struct {
	statsRepo stats.Repository
	generator uuid.UUID
}

// New creates a new device service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.StatsRepo == nil {
		return nil, errors.New("stats repository cannot be nil")
	}

	if cfg.Generator == nil {
		return nil, errors.New("generator cannot be nil")
	}

	return &service{
		statsRepo: cfg.StatsRepo,
		generator: cfg.Generator,
	}, nil
}

// EnsureDeviceID returns the persisted identifier, generating it on first use
func (s *service) EnsureDeviceID(ctx context.Context) (string, error) {
	deviceID, err := s.statsRepo.GetDeviceID(ctx)
	if err == nil {
		return deviceID, nil
	}

	if !errors.Is(err, stats.ErrNotFound) {
		return "", fmt.Errorf("failed to load device ID: %w", err)
	}

	deviceID = s.generator.NewUUID()
	if err := s.statsRepo.SaveDeviceID(ctx, deviceID); err != nil {
		return "", err
	}

	logrus.WithField("device_id", deviceID).Info("generated device ID")

	return deviceID, nil
}
