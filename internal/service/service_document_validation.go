package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/beer-battle/internal/validators"
	"github.com/MKhiriev/beer-battle/models"
)

// DocumentServiceWrapper defines middleware composition for DocumentService.
// Implementations wrap an existing DocumentService to add behavior such as
// validation.
type DocumentServiceWrapper interface {
	Wrap(DocumentService) DocumentService
}

type DocumentValidationService struct {
	inner     DocumentService
	validator validators.Validator
}

func NewDocumentValidationService() DocumentServiceWrapper {
	return &DocumentValidationService{
		validator: validators.NewDocumentValidator(),
	}
}

func (v *DocumentValidationService) Put(ctx context.Context, doc models.StoredDocument) (models.StoredDocument, error) {
	// document should have:
	//  - a known collection
	//  - id and owner id
	//  - flat fields only
	if err := v.validator.Validate(ctx, doc); err != nil {
		return models.StoredDocument{}, fmt.Errorf("error during document validation before saving: %w", err)
	}

	return v.inner.Put(ctx, doc)
}

func (v *DocumentValidationService) Get(ctx context.Context, collection, id, ownerID string) (models.StoredDocument, error) {
	if err := v.validateAddress(ctx, collection, id, ownerID); err != nil {
		return models.StoredDocument{}, err
	}
	return v.inner.Get(ctx, collection, id, ownerID)
}

func (v *DocumentValidationService) List(ctx context.Context, collection, ownerID string) ([]models.StoredDocument, error) {
	if err := v.validateCollection(ctx, collection, ownerID); err != nil {
		return nil, err
	}
	return v.inner.List(ctx, collection, ownerID)
}

func (v *DocumentValidationService) Delete(ctx context.Context, collection, id, ownerID string) error {
	if err := v.validateAddress(ctx, collection, id, ownerID); err != nil {
		return err
	}
	return v.inner.Delete(ctx, collection, id, ownerID)
}

func (v *DocumentValidationService) DeleteByOwner(ctx context.Context, collection, ownerID string) (int64, error) {
	if err := v.validateCollection(ctx, collection, ownerID); err != nil {
		return 0, err
	}
	return v.inner.DeleteByOwner(ctx, collection, ownerID)
}

func (v *DocumentValidationService) Wrap(wrapper DocumentService) DocumentService {
	v.inner = wrapper
	return v
}

func (v *DocumentValidationService) validateAddress(ctx context.Context, collection, id, ownerID string) error {
	doc := models.StoredDocument{Collection: collection, Document: models.Document{ID: id, OwnerID: ownerID}}
	return v.validator.Validate(ctx, doc, validators.FieldCollection, validators.FieldID, validators.FieldOwnerID)
}

func (v *DocumentValidationService) validateCollection(ctx context.Context, collection, ownerID string) error {
	doc := models.StoredDocument{Collection: collection, Document: models.Document{OwnerID: ownerID}}
	return v.validator.Validate(ctx, doc, validators.FieldCollection, validators.FieldOwnerID)
}
