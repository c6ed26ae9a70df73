package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlcoholRecord_PureAlcohol(t *testing.T) {
	rec := AlcoholRecord{Milliliters: 500, Percentage: 5.0}
	assert.Equal(t, 25.0, rec.PureAlcohol())

	zero := AlcoholRecord{}
	assert.Equal(t, 0.0, zero.PureAlcohol())
}

func TestWeekFields(t *testing.T) {
	sunday := time.Date(2026, time.October, 18, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		date      time.Time
		dayOfWeek int
	}{
		{name: "sunday starts the week", date: sunday, dayOfWeek: 1},
		{name: "monday", date: time.Date(2026, time.October, 19, 21, 30, 0, 0, time.UTC), dayOfWeek: 2},
		{name: "saturday ends the week", date: time.Date(2026, time.October, 24, 23, 59, 0, 0, time.UTC), dayOfWeek: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.dayOfWeek, DayOfWeek(tt.date))
			assert.True(t, WeekStart(tt.date).Equal(sunday), "week start: %s", WeekStart(tt.date))
		})
	}
}

func TestNewAlcoholRecord_DerivesWeekFields(t *testing.T) {
	now := time.Date(2026, time.October, 20, 10, 0, 0, 123456789, time.UTC)
	date := time.Date(2026, time.October, 21, 18, 0, 0, 0, time.UTC)

	rec := NewAlcoholRecord("id-1", "owner-1", date, "IPA", 330, 6.5, now)

	assert.Equal(t, "2026-10-21", FormatDate(rec.Date))
	assert.Equal(t, 4, rec.DayOfWeek)
	assert.Equal(t, "2026-10-18", FormatDate(rec.WeekStart))
	assert.Equal(t, now.UnixMilli(), rec.CreatedAt.UnixMilli())
	assert.Zero(t, rec.CreatedAt.Nanosecond()%int(time.Millisecond))
	assert.True(t, rec.CreatedAt.Equal(rec.UpdatedAt))
}

func TestAlcoholRecord_DocumentRoundTrip(t *testing.T) {
	now := time.Date(2026, time.October, 20, 10, 0, 0, 0, time.UTC)
	rec := NewAlcoholRecord("id-1", "owner-1", now, "Lager", 500, 5.0, now)

	// go through JSON so numbers come back as float64, like a remote response
	payload, err := json.Marshal(rec.ToDocument())
	require.NoError(t, err)

	var doc Document
	require.NoError(t, json.Unmarshal(payload, &doc))

	got, err := AlcoholRecordFromDocument(doc)
	require.NoError(t, err)
	assert.True(t, rec.Equal(got), "want %+v, got %+v", rec, got)
}

func TestAlcoholRecordFromDocument_Errors(t *testing.T) {
	base := func() Document {
		return NewAlcoholRecord("id", "owner", time.Now(), "Stout", 400, 4.2, time.Now()).ToDocument()
	}

	t.Run("missing drink name", func(t *testing.T) {
		doc := base()
		delete(doc.Fields, FieldDrinkName)
		_, err := AlcoholRecordFromDocument(doc)
		assert.ErrorIs(t, err, ErrMissingField)
	})

	t.Run("fractional milliliters", func(t *testing.T) {
		doc := base()
		doc.Fields[FieldMilliliters] = 12.5
		_, err := AlcoholRecordFromDocument(doc)
		assert.ErrorIs(t, err, ErrInvalidFieldType)
	})

	t.Run("malformed date", func(t *testing.T) {
		doc := base()
		doc.Fields[FieldDate] = "21/10/2026"
		_, err := AlcoholRecordFromDocument(doc)
		assert.ErrorIs(t, err, ErrInvalidFieldType)
	})

	t.Run("missing updated_at falls back to created_at", func(t *testing.T) {
		doc := base()
		delete(doc.Fields, FieldUpdatedAt)
		rec, err := AlcoholRecordFromDocument(doc)
		require.NoError(t, err)
		assert.True(t, rec.UpdatedAt.Equal(rec.CreatedAt))
	})
}

func TestEventoFromDocument(t *testing.T) {
	ev := NewEvento("ev-1", "owner-1", "Derby", "Home game", "next friday", time.Now())

	got, err := EventoFromDocument(ev.ToDocument())
	require.NoError(t, err)
	assert.True(t, ev.Equal(got))

	doc := ev.ToDocument()
	doc.Fields[FieldTitle] = 42
	_, err = EventoFromDocument(doc)
	assert.ErrorIs(t, err, ErrInvalidFieldType)
}

func TestSummarizeWeek(t *testing.T) {
	week := time.Date(2026, time.October, 18, 0, 0, 0, 0, time.UTC)
	now := time.Now()

	records := []AlcoholRecord{
		NewAlcoholRecord("1", "o", week, "Lager", 500, 5, now),                  // 25 on sunday
		NewAlcoholRecord("2", "o", week.AddDate(0, 0, 1), "Wine", 150, 12, now), // 18 on monday
		NewAlcoholRecord("3", "o", week.AddDate(0, 0, 1), "Lager", 500, 5, now), // 25 on monday
		NewAlcoholRecord("4", "o", week.AddDate(0, 0, 7), "Lager", 500, 5, now), // next week
	}

	summary := SummarizeWeek("o", week.AddDate(0, 0, 3), records)

	assert.Equal(t, 3, summary.Records)
	assert.InDelta(t, 68.0, summary.PureAlcohol, 1e-9)
	assert.InDelta(t, 25.0, summary.PerDay[0], 1e-9)
	assert.InDelta(t, 43.0, summary.PerDay[1], 1e-9)
	assert.Equal(t, HealthLow, summary.Status)
}

func TestHealthStatusFor(t *testing.T) {
	assert.Equal(t, HealthLow, HealthStatusFor(0))
	assert.Equal(t, HealthLow, HealthStatusFor(100))
	assert.Equal(t, HealthModerate, HealthStatusFor(100.5))
	assert.Equal(t, HealthModerate, HealthStatusFor(200))
	assert.Equal(t, HealthHigh, HealthStatusFor(200.1))
}

func TestEventSearch_AnyFieldEnabled(t *testing.T) {
	assert.False(t, EventSearch{Query: "x"}.AnyFieldEnabled())
	assert.True(t, EventSearch{Date: true}.AnyFieldEnabled())
	assert.True(t, AllFields("x").AnyFieldEnabled())
}

func TestEntityKind_Collection(t *testing.T) {
	assert.Equal(t, CollectionAlcoholRecords, KindAlcoholRecords.Collection())
	assert.Equal(t, CollectionEvents, KindEvents.Collection())
	assert.Empty(t, EntityKind("unknown").Collection())
}
