// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/beer-battle/internal/app"
	"github.com/MKhiriev/beer-battle/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityValidator_AlcoholRecord(t *testing.T) {
	v := NewEntityValidator()
	ctx := context.Background()
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	rec := models.NewAlcoholRecord("r1", "o1", now, "Lager", 500, 5, now)
	require.NoError(t, v.Validate(ctx, rec))
	require.NoError(t, v.Validate(ctx, &rec))

	bad := rec
	bad.OwnerID = ""
	assert.Equal(t, app.MsgOwnerEmpty, Message(v.Validate(ctx, bad)))

	// only the named fields are checked
	assert.NoError(t, v.Validate(ctx, bad, FieldDrinkName))

	bad = rec
	bad.Milliliters = 5001
	assert.Equal(t, app.MsgMillilitersTooLarge, Message(v.Validate(ctx, bad)))

	bad = rec
	bad.Percentage = -1
	assert.Equal(t, app.MsgPercentageNegative, Message(v.Validate(ctx, bad)))
}

func TestEntityValidator_Others(t *testing.T) {
	v := NewEntityValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.Evento{ID: "e1", OwnerID: "o1", Title: "Party"}))
	assert.Equal(t, app.MsgTitleEmpty, Message(v.Validate(ctx, models.Evento{ID: "e1", OwnerID: "o1"})))

	assert.NoError(t, v.Validate(ctx, &models.Nota{ID: "n1", Title: "t"}))
	assert.Equal(t, app.MsgIDEmpty, Message(v.Validate(ctx, models.Nota{Title: "t"})))

	assert.NoError(t, v.Validate(ctx, models.Usuario{ID: "u1", Name: "Ana", Age: 30}))
	assert.Equal(t, app.MsgAgeOutOfRange, Message(v.Validate(ctx, models.Usuario{ID: "u1", Name: "Ana", Age: -2})))
}

func TestEntityValidator_UnsupportedType(t *testing.T) {
	err := NewEntityValidator().Validate(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}
