package uuid

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/KirkDiggler/hydroquest/internal/common/clock"
	"github.com/google/uuid"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/hydroquest/internal/common/uuid UUID

type UUID interface {
	NewUUID() string
}

// DefaultUUID implements the UUID interface using random (version 4) UUIDs

type DefaultUUID struct{}

func New() *DefaultUUID {
	return &DefaultUUID{}
}

// NewUUID returns a new UUID
func (d *DefaultUUID) NewUUID() string {
	return uuid.New().String()
}

// V7Config configures a time-ordered generator
type V7Config struct {
	// Clock supplies the millisecond timestamp
	Clock clock.Clock

	// Random supplies the random bits, crypto/rand when nil
	Random io.Reader
}

// V7 generates time-ordered version 7 UUIDs whose 48-bit millisecond prefix
// comes from an injectable clock
type V7 struct {
	clock  clock.Clock
	random io.Reader
}

// NewV7 creates a time-ordered UUID generator
func NewV7(cfg *V7Config) (*V7, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}

	random := cfg.Random
	if random == nil {
		random = rand.Reader
	}

	return &V7{
		clock:  cfg.Clock,
		random: random,
	}, nil
}

// NewUUID returns a new version 7 UUID, panicking if no random bits can be read
func (g *V7) NewUUID() string {
	id, err := g.Generate()
	if err != nil {
		panic(err)
	}
	return id
}

// Generate returns a new version 7 UUID
func (g *V7) Generate() (string, error) {
	id, err := uuid.NewV7FromReader(g.random)
	if err != nil {
		return "", fmt.Errorf("failed to read random bits: %w", err)
	}

	// Only unix_ts_ms is replaced; version, variant and random bits stay as generated.
	var ts [8]byte
	binary.BigEndian.PutUint64(ts[:], uint64(g.clock.Now().UnixMilli()))
	copy(id[0:6], ts[2:8])

	return id.String(), nil
}
