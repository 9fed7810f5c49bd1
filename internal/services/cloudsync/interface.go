package cloudsync

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/hydroquest/internal/services/cloudsync Service

import (
	"context"
)

// Service synchronizes progress and the gold bank with the remote document
type Service interface {
	// Sync merges local and remote progress and pushes the result
	Sync(ctx context.Context, input *SyncInput) (*SyncOutput, error)

	// Deposit moves local gold into the bank
	Deposit(ctx context.Context, input *BankInput) (*BankOutput, error)

	// Withdraw moves bank gold into local gold
	Withdraw(ctx context.Context, input *BankInput) (*BankOutput, error)

	// RefreshBank reloads the cached bank balance
	RefreshBank(ctx context.Context, input *RefreshBankInput) (*BankOutput, error)
}
