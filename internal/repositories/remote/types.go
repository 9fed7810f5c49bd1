package remote

import (
	"time"

	"github.com/KirkDiggler/hydroquest/internal/models"
)

// GetDocumentInput contains parameters for reading a document
type GetDocumentInput struct {
	AccountID string
}

// DeviceUpdate records the pushing device in the document
type DeviceUpdate struct {
	ID   string
	Type string
}

// MergeDocumentInput contains the fields to write; nil fields are left untouched
type MergeDocumentInput struct {
	AccountID string

	Stats    *models.CloudStats
	BankGold *int
	Device   *DeviceUpdate
}

// MergeDocumentOutput contains the result of a merge-write
type MergeDocumentOutput struct {
	// LastUpdated is the server time stamped on the document
	LastUpdated time.Time
}
