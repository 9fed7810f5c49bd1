package auth

import (
	"time"

	"github.com/KirkDiggler/hydroquest/internal/common/clock"
	"github.com/KirkDiggler/hydroquest/internal/common/uuid"
	"github.com/KirkDiggler/hydroquest/internal/models"
	"github.com/KirkDiggler/hydroquest/internal/repositories/account"
	"github.com/KirkDiggler/hydroquest/internal/repositories/stats"
)

// MinPasswordLength is the shortest accepted password
const MinPasswordLength = 6

// DefaultTokenTTL is used when no TTL is configured
const DefaultTokenTTL = 72 * time.Hour

// Config holds configuration for the auth service
type Config struct {
	// JWTSecret signs session tokens
	JWTSecret string

	// TokenTTL is the session lifetime
	TokenTTL time.Duration

	// BcryptCost is the password hashing cost, bcrypt.DefaultCost when zero
	BcryptCost int

	AccountRepo account.Repository
	StatsRepo   stats.Repository
	Clock       clock.Clock
	UUID        uuid.UUID
}

// CredentialsInput contains the email and password of a sign-up or login
type CredentialsInput struct {
	Email    string
	Password string
}

// AuthOutput contains the persisted session of the signed-in user
type AuthOutput struct {
	Session *models.AuthSession

	// ExpiresAt is when the session token stops being accepted
	ExpiresAt time.Time
}
