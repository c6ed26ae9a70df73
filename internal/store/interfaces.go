package store

import (
	"context"

	"github.com/MKhiriev/beer-battle/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// DocumentRepository is the document store of the server. Every method is
// scoped to one collection and, except Upsert, to one owner.
type DocumentRepository interface {
	// Upsert writes doc and returns the stored copy. A document id already
	// taken by another owner is [ErrDocumentOwnerMismatch].
	Upsert(ctx context.Context, doc models.StoredDocument) (models.StoredDocument, error)
	Get(ctx context.Context, collection, id, ownerID string) (models.StoredDocument, error)
	ListByOwner(ctx context.Context, collection, ownerID string) ([]models.StoredDocument, error)
	Delete(ctx context.Context, collection, id, ownerID string) error
	DeleteByOwner(ctx context.Context, collection, ownerID string) (int64, error)
}
