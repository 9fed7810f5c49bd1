package models

import (
	"time"
)

// Account is a remote user account
type Account struct {
	// ID is the stable account identifier used to key the remote document
	ID string `json:"id"`

	// Email is normalized to lower case
	Email string `json:"email"`

	// PasswordHash is a bcrypt hash
	PasswordHash string `json:"passwordHash"`

	CreatedAt time.Time `json:"createdAt"`
}

// AuthSession is the signed-in user persisted on the device
type AuthSession struct {
	AccountID string `json:"accountId"`
	Email     string `json:"email"`
	Token     string `json:"token"`
}
