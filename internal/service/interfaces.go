package service

import (
	"context"

	"github.com/MKhiriev/beer-battle/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// DocumentService is the document store of the server.
type DocumentService interface {
	// Put creates or replaces a document and returns the stored copy with
	// its server-side UpdatedAt.
	Put(ctx context.Context, doc models.StoredDocument) (models.StoredDocument, error)

	Get(ctx context.Context, collection, id, ownerID string) (models.StoredDocument, error)
	List(ctx context.Context, collection, ownerID string) ([]models.StoredDocument, error)

	// Delete removes one document. Removing a missing document succeeds.
	Delete(ctx context.Context, collection, id, ownerID string) error
	DeleteByOwner(ctx context.Context, collection, ownerID string) (int64, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// HealthService reports whether the document store can serve requests.
type HealthService interface {
	Ping(ctx context.Context) error
}
