// Package auth signs users up and in against the remote account store.
package auth

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/hydroquest/internal/services/auth Service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/KirkDiggler/hydroquest/internal/common/clock"
	"github.com/KirkDiggler/hydroquest/internal/common/uuid"
	"github.com/KirkDiggler/hydroquest/internal/models"
	"github.com/KirkDiggler/hydroquest/internal/repositories/account"
	"github.com/KirkDiggler/hydroquest/internal/repositories/stats"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// Service manages the signed-in user of this device
type Service interface {
	// SignUp creates an account and signs it in
	SignUp(ctx context.Context, input *CredentialsInput) (*AuthOutput, error)

	// Login signs an existing account in
	Login(ctx context.Context, input *CredentialsInput) (*AuthOutput, error)

	// Logout forgets the signed-in user
	Logout(ctx context.Context) error

	// Current returns the signed-in user or ErrNotSignedIn
	Current(ctx context.Context) (*AuthOutput, error)
}

type service struct {
	secret      []byte
	tokenTTL    time.Duration
	bcryptCost  int
	accountRepo account.Repository
	statsRepo   stats.Repository
	clock       clock.Clock
	uuid        uuid.UUID
}

// New creates a new auth service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.JWTSecret == "" {
		return nil, ErrMissingSecret
	}

	if cfg.AccountRepo == nil {
		return nil, ErrNilAccountRepo
	}

	if cfg.StatsRepo == nil {
		return nil, ErrNilStatsRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUID == nil {
		return nil, ErrNilUUIDGenerator
	}

	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	cost := cfg.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	return &service{
		secret:      []byte(cfg.JWTSecret),
		tokenTTL:    ttl,
		bcryptCost:  cost,
		accountRepo: cfg.AccountRepo,
		statsRepo:   cfg.StatsRepo,
		clock:       cfg.Clock,
		uuid:        cfg.UUID,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SignUp creates an account and signs it in
func (s *service) SignUp(ctx context.Context, input *CredentialsInput) (*AuthOutput, error) {
	if input == nil {
		return nil, ErrInvalidEmail
	}

	email := normalizeEmail(input.Email)
	if email == "" {
		return nil, ErrInvalidEmail
	}

	if len(input.Password) < MinPasswordLength {
		return nil, ErrInvalidPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	acct := &models.Account{
		ID:           s.uuid.NewUUID(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    s.clock.Now().UTC(),
	}

	if err := s.accountRepo.CreateAccount(ctx, &account.CreateAccountInput{Account: acct}); err != nil {
		if errors.Is(err, account.ErrAccountExists) {
			return nil, ErrEmailExists
		}
		return nil, err
	}

	logrus.WithField("account_id", acct.ID).Info("account created")

	return s.signIn(ctx, acct)
}

// Login signs an existing account in
func (s *service) Login(ctx context.Context, input *CredentialsInput) (*AuthOutput, error) {
	if input == nil {
		return nil, ErrInvalidCredentials
	}

	email := normalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return nil, ErrInvalidCredentials
	}

	acct, err := s.accountRepo.GetAccountByEmail(ctx, &account.GetAccountByEmailInput{Email: email})
	if err != nil {
		if errors.Is(err, account.ErrAccountNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.signIn(ctx, acct)
}

// Logout forgets the signed-in user
func (s *service) Logout(ctx context.Context) error {
	return s.statsRepo.ClearAuthSession(ctx)
}

// Current returns the signed-in user after validating its token
func (s *service) Current(ctx context.Context) (*AuthOutput, error) {
	session, err := s.statsRepo.GetAuthSession(ctx)
	if err != nil {
		if errors.Is(err, stats.ErrNotFound) {
			return nil, ErrNotSignedIn
		}
		return nil, err
	}

	claims, err := s.parseToken(session.Token)
	if err != nil {
		return nil, err
	}

	if claims.Subject != session.AccountID {
		return nil, ErrSessionExpired
	}

	return &AuthOutput{
		Session:   session,
		ExpiresAt: claims.ExpiresAt.Time.UTC(),
	}, nil
}

func (s *service) signIn(ctx context.Context, acct *models.Account) (*AuthOutput, error) {
	now := s.clock.Now().UTC()
	expiresAt := now.Add(s.tokenTTL)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   acct.ID,
		ID:        s.uuid.NewUUID(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	session := &models.AuthSession{
		AccountID: acct.ID,
		Email:     acct.Email,
		Token:     token,
	}

	if err := s.statsRepo.SaveAuthSession(ctx, session); err != nil {
		return nil, err
	}

	return &AuthOutput{
		Session:   session,
		ExpiresAt: expiresAt,
	}, nil
}

func (s *service) parseToken(tokenString string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.clock.Now))
	if err != nil || !token.Valid {
		return nil, ErrSessionExpired
	}

	return claims, nil
}
