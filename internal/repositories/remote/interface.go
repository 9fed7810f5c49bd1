package remote

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/hydroquest/internal/repositories/remote Repository

import (
	"context"

	"github.com/KirkDiggler/hydroquest/internal/models"
)

// Repository is the per-account document shared by every device
type Repository interface {
	// GetDocument retrieves the document or ErrDocumentNotFound
	GetDocument(ctx context.Context, input *GetDocumentInput) (*models.RemoteDocument, error)

	// MergeDocument writes only the supplied fields and stamps the server time
	MergeDocument(ctx context.Context, input *MergeDocumentInput) (*MergeDocumentOutput, error)
}
