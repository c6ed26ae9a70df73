package validators

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/MKhiriev/beer-battle/internal/app"
	"github.com/MKhiriev/beer-battle/models"
)

// DocumentValidator checks documents received by the document store.
type DocumentValidator struct {
}

func NewDocumentValidator() Validator {
	return &DocumentValidator{}
}

func (v *DocumentValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.StoredDocument:
		return v.validateStored(value, fields...)
	case *models.StoredDocument:
		return v.validateStored(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *DocumentValidator) validateStored(doc models.StoredDocument, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCollection, FieldID, FieldOwnerID, FieldFields}
	}

	for _, f := range fields {
		switch f {
		case FieldCollection:
			if !models.IsCollection(doc.Collection) {
				return invalid(FieldCollection, app.MsgUnknownCollection)
			}
		case FieldID:
			if strings.TrimSpace(doc.ID) == "" {
				return invalid(FieldID, app.MsgIDEmpty)
			}
		case FieldOwnerID:
			if strings.TrimSpace(doc.OwnerID) == "" {
				return invalid(FieldOwnerID, app.MsgOwnerEmpty)
			}
		case FieldFields:
			for key, value := range doc.Fields {
				if key == "" || !isScalar(value) {
					return invalid(FieldFields, app.MsgNestedField)
				}
			}
		}
	}

	return nil
}

func isScalar(v any) bool {
	switch v.(type) {
	case nil, string, bool, float64, float32, int, int32, int64, json.Number:
		return true
	default:
		return false
	}
}
