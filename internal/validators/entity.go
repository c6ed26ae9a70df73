package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/beer-battle/internal/app"
	"github.com/MKhiriev/beer-battle/models"
)

const (
	FieldID          = "id"
	FieldOwnerID     = "owner_id"
	FieldDrinkName   = "drink_name"
	FieldMilliliters = "milliliters"
	FieldPercentage  = "percentage"
	FieldDate        = "date"
	FieldTitle       = "title"
	FieldName        = "name"
	FieldAge         = "age"
	FieldCollection  = "collection"
	FieldFields      = "fields"
)

// EntityValidator checks records before they are written to the local cache.
type EntityValidator struct {
}

func NewEntityValidator() Validator {
	return &EntityValidator{}
}

func (v *EntityValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.AlcoholRecord:
		return v.validateAlcoholRecord(value, fields...)
	case *models.AlcoholRecord:
		return v.validateAlcoholRecord(*value, fields...)

	case models.Evento:
		return v.validateEvento(value, fields...)
	case *models.Evento:
		return v.validateEvento(*value, fields...)

	case models.Nota:
		return v.validateNota(value, fields...)
	case *models.Nota:
		return v.validateNota(*value, fields...)

	case models.Usuario:
		return v.validateUsuario(value, fields...)
	case *models.Usuario:
		return v.validateUsuario(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *EntityValidator) validateAlcoholRecord(rec models.AlcoholRecord, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldOwnerID, FieldDrinkName, FieldMilliliters, FieldPercentage}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if rec.ID == "" {
				return invalid(FieldID, app.MsgIDEmpty)
			}
		case FieldOwnerID:
			if rec.OwnerID == "" {
				return invalid(FieldOwnerID, app.MsgOwnerEmpty)
			}
		case FieldDrinkName:
			if strings.TrimSpace(rec.DrinkName) == "" {
				return invalid(FieldDrinkName, app.MsgNameEmpty)
			}
		case FieldMilliliters:
			if err := checkMilliliters(rec.Milliliters); err != nil {
				return err
			}
		case FieldPercentage:
			if err := checkPercentage(rec.Percentage); err != nil {
				return err
			}
		}
	}

	return nil
}

func (v *EntityValidator) validateEvento(ev models.Evento, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldOwnerID, FieldTitle}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if ev.ID == "" {
				return invalid(FieldID, app.MsgIDEmpty)
			}
		case FieldOwnerID:
			if ev.OwnerID == "" {
				return invalid(FieldOwnerID, app.MsgOwnerEmpty)
			}
		case FieldTitle:
			if strings.TrimSpace(ev.Title) == "" {
				return invalid(FieldTitle, app.MsgTitleEmpty)
			}
		}
	}

	return nil
}

func (v *EntityValidator) validateNota(n models.Nota, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldTitle}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if n.ID == "" {
				return invalid(FieldID, app.MsgIDEmpty)
			}
		case FieldTitle:
			if strings.TrimSpace(n.Title) == "" {
				return invalid(FieldTitle, app.MsgTitleEmpty)
			}
		}
	}

	return nil
}

func (v *EntityValidator) validateUsuario(u models.Usuario, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldName, FieldAge}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if u.ID == "" {
				return invalid(FieldID, app.MsgIDEmpty)
			}
		case FieldName:
			if strings.TrimSpace(u.Name) == "" {
				return invalid(FieldName, app.MsgNameEmpty)
			}
		case FieldAge:
			if u.Age < 0 || u.Age > MaxAge {
				return invalid(FieldAge, app.MsgAgeOutOfRange)
			}
		}
	}

	return nil
}
