package cloudsync

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/hydroquest/internal/metrics"
	"github.com/KirkDiggler/hydroquest/internal/models"
	"github.com/KirkDiggler/hydroquest/internal/repositories/remote"
	"github.com/KirkDiggler/hydroquest/internal/repositories/stats"
	"github.com/KirkDiggler/hydroquest/internal/services/device"
	"github.com/sirupsen/logrus"
)

const (
	bankDeposit  = "deposit"
	bankWithdraw = "withdraw"
)

// service implements the Service interface
type service struct {
	deviceType string
	statsRepo  stats.Repository
	remoteRepo remote.Repository
	devices    device.Service
	metrics    *metrics.Recorder
}

// New creates a new sync service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.StatsRepo == nil {
		return nil, ErrNilStatsRepo
	}

	if cfg.RemoteRepo == nil {
		return nil, ErrNilRemoteRepo
	}

	if cfg.Devices == nil {
		return nil, ErrNilDeviceService
	}

	deviceType := cfg.DeviceType
	if deviceType == "" {
		deviceType = DefaultDeviceType
	}

	return &service{
		deviceType: deviceType,
		statsRepo:  cfg.StatsRepo,
		remoteRepo: cfg.RemoteRepo,
		devices:    cfg.Devices,
		metrics:    cfg.Metrics,
	}, nil
}

// Sync reads the remote document, merges it into the local state, records the
// baseline and pushes the merged stats. A failed read leaves local data untouched;
// a failed push keeps the local merge.
func (s *service) Sync(ctx context.Context, _ *SyncInput) (*SyncOutput, error) {
	session, err := s.signedIn(ctx)
	if err != nil {
		s.metrics.Sync(metrics.SyncNotSignedIn)
		return nil, err
	}

	doc, err := s.readDocument(ctx, session.AccountID)
	if err != nil {
		s.metrics.Sync(metrics.SyncReadFailed)
		return nil, err
	}

	deviceID, err := s.devices.EnsureDeviceID(ctx)
	if err != nil {
		return nil, err
	}

	baseline, err := s.statsRepo.GetBaseline(ctx)
	if err != nil {
		return nil, err
	}

	var remoteStats *models.CloudStats
	bankGold := 0
	if doc != nil {
		remoteStats = doc.Stats
		bankGold = doc.BankGold
	}

	updated, err := s.statsRepo.UpdatePlayerState(ctx, &stats.UpdatePlayerStateInput{
		Mutate: func(state *models.PlayerState) (bool, error) {
			*state = *Merge(state, remoteStats, baseline)
			return true, nil
		},
	})
	if err != nil {
		return nil, err
	}
	merged := updated.State

	if err := s.statsRepo.SaveBaseline(ctx, &stats.SaveBaselineInput{Baseline: merged.Clone()}); err != nil {
		return nil, err
	}

	if err := s.statsRepo.SetBankGold(ctx, bankGold); err != nil {
		return nil, err
	}

	pushed, err := s.remoteRepo.MergeDocument(ctx, &remote.MergeDocumentInput{
		AccountID: session.AccountID,
		Stats:     merged.CloudStats(),
		BankGold:  &bankGold,
		Device:    &remote.DeviceUpdate{ID: deviceID, Type: s.deviceType},
	})
	if err != nil {
		s.metrics.Sync(metrics.SyncPushFailed)
		logrus.WithError(err).WithField("account_id", session.AccountID).Error("sync push failed")
		return nil, fmt.Errorf("%w: %w", ErrRemotePush, err)
	}

	s.metrics.Sync(metrics.SyncSuccess)
	logrus.WithFields(logrus.Fields{
		"account_id":   session.AccountID,
		"device_id":    deviceID,
		"remote_found": doc != nil,
		"water_ml":     merged.TotalWaterDrankML,
	}).Info("sync complete")

	return &SyncOutput{
		State:       merged,
		RemoteFound: doc != nil,
		BankGold:    bankGold,
		LastUpdated: pushed.LastUpdated,
	}, nil
}

// Deposit moves local gold into the bank. The local change is kept when the push fails.
func (s *service) Deposit(ctx context.Context, input *BankInput) (*BankOutput, error) {
	if input == nil || input.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	session, bankGold, err := s.prepareBank(ctx)
	if err != nil {
		return nil, err
	}

	updated, err := s.statsRepo.UpdatePlayerState(ctx, &stats.UpdatePlayerStateInput{
		Mutate: func(state *models.PlayerState) (bool, error) {
			if state.Gold < input.Amount {
				return false, ErrInsufficientGold
			}
			state.Gold -= input.Amount
			return true, nil
		},
	})
	if err != nil {
		return nil, err
	}

	bankGold += input.Amount
	if err := s.pushBank(ctx, session, bankDeposit, bankGold); err != nil {
		return nil, err
	}

	return &BankOutput{
		Gold:     updated.State.Gold,
		BankGold: bankGold,
	}, nil
}

// Withdraw moves bank gold into local gold. The local change is kept when the push fails.
func (s *service) Withdraw(ctx context.Context, input *BankInput) (*BankOutput, error) {
	if input == nil || input.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	session, bankGold, err := s.prepareBank(ctx)
	if err != nil {
		return nil, err
	}

	if bankGold < input.Amount {
		return nil, ErrInsufficientBank
	}

	updated, err := s.statsRepo.UpdatePlayerState(ctx, &stats.UpdatePlayerStateInput{
		Mutate: func(state *models.PlayerState) (bool, error) {
			state.Gold += input.Amount
			return true, nil
		},
	})
	if err != nil {
		return nil, err
	}

	bankGold -= input.Amount
	if err := s.pushBank(ctx, session, bankWithdraw, bankGold); err != nil {
		return nil, err
	}

	return &BankOutput{
		Gold:     updated.State.Gold,
		BankGold: bankGold,
	}, nil
}

// RefreshBank reloads the cached bank balance from the remote document
func (s *service) RefreshBank(ctx context.Context, _ *RefreshBankInput) (*BankOutput, error) {
	_, bankGold, err := s.prepareBank(ctx)
	if err != nil {
		return nil, err
	}

	state, err := s.statsRepo.GetPlayerState(ctx)
	if err != nil {
		return nil, err
	}

	return &BankOutput{
		Gold:     state.Gold,
		BankGold: bankGold,
	}, nil
}

func (s *service) signedIn(ctx context.Context) (*models.AuthSession, error) {
	session, err := s.statsRepo.GetAuthSession(ctx)
	if err != nil {
		if errors.Is(err, stats.ErrNotFound) {
			return nil, ErrNotSignedIn
		}
		return nil, err
	}

	return session, nil
}

// readDocument returns nil without error for an account that never synced
func (s *service) readDocument(ctx context.Context, accountID string) (*models.RemoteDocument, error) {
	doc, err := s.remoteRepo.GetDocument(ctx, &remote.GetDocumentInput{AccountID: accountID})
	if err != nil {
		if errors.Is(err, remote.ErrDocumentNotFound) {
			return nil, nil
		}
		logrus.WithError(err).WithField("account_id", accountID).Error("failed to read remote document")
		return nil, fmt.Errorf("%w: %w", ErrRemoteRead, err)
	}

	return doc, nil
}

// prepareBank checks the sign-in and refreshes the cached bank balance
func (s *service) prepareBank(ctx context.Context) (*models.AuthSession, int, error) {
	session, err := s.signedIn(ctx)
	if err != nil {
		return nil, 0, err
	}

	doc, err := s.readDocument(ctx, session.AccountID)
	if err != nil {
		return nil, 0, err
	}

	bankGold := 0
	if doc != nil {
		bankGold = doc.BankGold
	}

	if err := s.statsRepo.SetBankGold(ctx, bankGold); err != nil {
		return nil, 0, err
	}

	return session, bankGold, nil
}

func (s *service) pushBank(ctx context.Context, session *models.AuthSession, operation string, bankGold int) error {
	if err := s.statsRepo.SetBankGold(ctx, bankGold); err != nil {
		return err
	}

	deviceID, err := s.devices.EnsureDeviceID(ctx)
	if err != nil {
		return err
	}

	_, err = s.remoteRepo.MergeDocument(ctx, &remote.MergeDocumentInput{
		AccountID: session.AccountID,
		BankGold:  &bankGold,
		Device:    &remote.DeviceUpdate{ID: deviceID, Type: s.deviceType},
	})
	if err != nil {
		s.metrics.BankOperation(operation, "failed")
		logrus.WithError(err).WithFields(logrus.Fields{
			"account_id": session.AccountID,
			"operation":  operation,
		}).Warn("bank push failed")
		return fmt.Errorf("%w: %w", ErrBankDesync, err)
	}

	s.metrics.BankOperation(operation, "success")
	return nil
}
