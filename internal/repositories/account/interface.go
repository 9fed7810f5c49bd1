package account

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/hydroquest/internal/repositories/account Repository

import (
	"context"

	"github.com/KirkDiggler/hydroquest/internal/models"
)

// Repository defines the interface for remote account persistence
type Repository interface {
	// CreateAccount stores a new account or returns ErrAccountExists
	CreateAccount(ctx context.Context, input *CreateAccountInput) error

	// GetAccountByEmail retrieves an account or returns ErrAccountNotFound
	GetAccountByEmail(ctx context.Context, input *GetAccountByEmailInput) (*models.Account, error)
}

// CreateAccountInput contains parameters for creating an account
type CreateAccountInput struct {
	Account *models.Account
}

// GetAccountByEmailInput contains parameters for looking up an account
type GetAccountByEmailInput struct {
	Email string
}
