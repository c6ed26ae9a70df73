package models

import (
	"fmt"
	"time"
)

// Document field names shared by the local columns and the remote fields.
const (
	FieldDate        = "date"
	FieldDayOfWeek   = "day_of_week"
	FieldDrinkName   = "drink_name"
	FieldMilliliters = "milliliters"
	FieldPercentage  = "percentage"
	FieldWeekStart   = "week_start"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldCreatedAt   = "created_at"
	FieldUpdatedAt   = "updated_at"
)

// ToDocument converts the record into its remote representation. Dates are
// written as "2006-01-02" and timestamps as unix milliseconds.
func (a AlcoholRecord) ToDocument() Document {
	return Document{
		ID:      a.ID,
		OwnerID: a.OwnerID,
		Fields: map[string]any{
			FieldDate:        FormatDate(a.Date),
			FieldDayOfWeek:   int64(a.DayOfWeek),
			FieldDrinkName:   a.DrinkName,
			FieldMilliliters: int64(a.Milliliters),
			FieldPercentage:  a.Percentage,
			FieldWeekStart:   FormatDate(a.WeekStart),
			FieldCreatedAt:   a.CreatedAt.UnixMilli(),
			FieldUpdatedAt:   a.UpdatedAt.UnixMilli(),
		},
	}
}

// AlcoholRecordFromDocument decodes a remote document. A document written
// before updated_at existed falls back to its created_at.
func AlcoholRecordFromDocument(doc Document) (AlcoholRecord, error) {
	rec := AlcoholRecord{ID: doc.ID, OwnerID: doc.OwnerID}

	date, err := dateField(doc, FieldDate)
	if err != nil {
		return AlcoholRecord{}, err
	}
	rec.Date = date

	weekStart, err := dateField(doc, FieldWeekStart)
	if err != nil {
		return AlcoholRecord{}, err
	}
	rec.WeekStart = weekStart

	day, err := doc.Int64Field(FieldDayOfWeek)
	if err != nil {
		return AlcoholRecord{}, err
	}
	rec.DayOfWeek = int(day)

	if rec.DrinkName, err = doc.StringField(FieldDrinkName); err != nil {
		return AlcoholRecord{}, err
	}

	ml, err := doc.Int64Field(FieldMilliliters)
	if err != nil {
		return AlcoholRecord{}, err
	}
	rec.Milliliters = int(ml)

	if rec.Percentage, err = doc.Float64Field(FieldPercentage); err != nil {
		return AlcoholRecord{}, err
	}

	if rec.CreatedAt, err = millisField(doc, FieldCreatedAt); err != nil {
		return AlcoholRecord{}, err
	}
	rec.UpdatedAt, err = millisField(doc, FieldUpdatedAt)
	if err != nil {
		rec.UpdatedAt = rec.CreatedAt
	}

	return rec, nil
}

// ToDocument converts the event into its remote representation.
func (e Evento) ToDocument() Document {
	return Document{
		ID:      e.ID,
		OwnerID: e.OwnerID,
		Fields: map[string]any{
			FieldTitle:       e.Title,
			FieldDescription: e.Description,
			FieldDate:        e.Date,
			FieldCreatedAt:   e.CreatedAt.UnixMilli(),
			FieldUpdatedAt:   e.UpdatedAt.UnixMilli(),
		},
	}
}

// EventoFromDocument decodes a remote event document.
func EventoFromDocument(doc Document) (Evento, error) {
	ev := Evento{ID: doc.ID, OwnerID: doc.OwnerID}

	var err error
	if ev.Title, err = doc.StringField(FieldTitle); err != nil {
		return Evento{}, err
	}
	if ev.Description, err = doc.StringField(FieldDescription); err != nil {
		return Evento{}, err
	}
	if ev.Date, err = doc.StringField(FieldDate); err != nil {
		return Evento{}, err
	}
	if ev.CreatedAt, err = millisField(doc, FieldCreatedAt); err != nil {
		return Evento{}, err
	}
	ev.UpdatedAt, err = millisField(doc, FieldUpdatedAt)
	if err != nil {
		ev.UpdatedAt = ev.CreatedAt
	}

	return ev, nil
}

func dateField(doc Document, key string) (time.Time, error) {
	s, err := doc.StringField(key)
	if err != nil {
		return time.Time{}, err
	}
	t, err := ParseDate(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s: %w", ErrInvalidFieldType, key, err)
	}
	return t, nil
}

func millisField(doc Document, key string) (time.Time, error) {
	ms, err := doc.Int64Field(key)
	if err != nil {
		return time.Time{}, err
	}
	return time.UnixMilli(ms).UTC(), nil
}
