package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/beer-battle/internal/logger"
	"github.com/MKhiriev/beer-battle/internal/store"
	"github.com/MKhiriev/beer-battle/internal/utils"
	"github.com/MKhiriev/beer-battle/models"
)

type documentService struct {
	documents store.DocumentRepository
	now       func() time.Time

	logger *logger.Logger
}

func NewDocumentService(documents store.DocumentRepository, logger *logger.Logger) DocumentService {
	return &documentService{
		documents: documents,
		now:       time.Now,
		logger:    logger,
	}
}

func (d *documentService) Put(ctx context.Context, doc models.StoredDocument) (models.StoredDocument, error) {
	log := logger.FromContext(ctx)

	if err := checkOwner(ctx, doc.OwnerID); err != nil {
		return models.StoredDocument{}, err
	}

	doc.UpdatedAt = models.Timestamp(d.now())
	if doc.Fields == nil {
		doc.Fields = map[string]any{}
	}

	stored, err := d.documents.Upsert(ctx, doc)
	if errors.Is(err, store.ErrDocumentOwnerMismatch) {
		log.Warn().Str("func", "documentService.Put").
			Str("collection", doc.Collection).
			Str("id", doc.ID).
			Msg("document id is held by another owner")
		return models.StoredDocument{}, fmt.Errorf("%w: %w", ErrOwnerMismatch, err)
	}
	if err != nil {
		log.Err(err).Str("func", "documentService.Put").Msg("failed to upsert document")
		return models.StoredDocument{}, err
	}
	return stored, nil
}

func (d *documentService) Get(ctx context.Context, collection, id, ownerID string) (models.StoredDocument, error) {
	if err := checkOwner(ctx, ownerID); err != nil {
		return models.StoredDocument{}, err
	}

	doc, err := d.documents.Get(ctx, collection, id, ownerID)
	if errors.Is(err, store.ErrRecordNotFound) {
		return models.StoredDocument{}, fmt.Errorf("%w: %s/%s", ErrDocumentNotFound, collection, id)
	}
	return doc, err
}

func (d *documentService) List(ctx context.Context, collection, ownerID string) ([]models.StoredDocument, error) {
	if err := checkOwner(ctx, ownerID); err != nil {
		return nil, err
	}
	return d.documents.ListByOwner(ctx, collection, ownerID)
}

func (d *documentService) Delete(ctx context.Context, collection, id, ownerID string) error {
	if err := checkOwner(ctx, ownerID); err != nil {
		return err
	}
	return d.documents.Delete(ctx, collection, id, ownerID)
}

func (d *documentService) DeleteByOwner(ctx context.Context, collection, ownerID string) (int64, error) {
	if err := checkOwner(ctx, ownerID); err != nil {
		return 0, err
	}

	deleted, err := d.documents.DeleteByOwner(ctx, collection, ownerID)
	if err != nil {
		return 0, err
	}

	logger.FromContext(ctx).Info().
		Str("func", "documentService.DeleteByOwner").
		Str("collection", collection).
		Int64("deleted", deleted).
		Msg("owner documents deleted")
	return deleted, nil
}

// checkOwner rejects requests for an owner other than the authenticated one.
// A context without an authenticated owner is trusted.
func checkOwner(ctx context.Context, ownerID string) error {
	authenticated, ok := utils.GetOwnerIDFromContext(ctx)
	if ok && authenticated != ownerID {
		return ErrOwnerMismatch
	}
	return nil
}
