package validators

import (
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/beer-battle/internal/app"
	"github.com/MKhiriev/beer-battle/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAlcoholForm(t *testing.T) {
	now := time.Date(2026, 10, 19, 22, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		form    models.AlcoholForm
		want    AlcoholInput
		wantMsg string
	}{
		{
			name: "valid",
			form: models.AlcoholForm{DrinkName: " Lager ", Milliliters: "500", Percentage: "5", Date: "2026-10-18"},
			want: AlcoholInput{DrinkName: "Lager", Milliliters: 500, Percentage: 5, Date: time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)},
		},
		{
			name: "zero values accepted, blank date is today",
			form: models.AlcoholForm{DrinkName: "Water", Milliliters: "0", Percentage: "0"},
			want: AlcoholInput{DrinkName: "Water", Date: time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)},
		},
		{
			name: "comma decimal",
			form: models.AlcoholForm{DrinkName: "Cider", Milliliters: "330", Percentage: "4,5", Date: "2026-10-19"},
			want: AlcoholInput{DrinkName: "Cider", Milliliters: 330, Percentage: 4.5, Date: time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)},
		},
		{name: "empty name", form: models.AlcoholForm{DrinkName: "  ", Milliliters: "1", Percentage: "1"}, wantMsg: app.MsgNameEmpty},
		{name: "ml not a number", form: models.AlcoholForm{DrinkName: "x", Milliliters: "lots", Percentage: "1"}, wantMsg: app.MsgMillilitersNotNumber},
		{name: "ml negative", form: models.AlcoholForm{DrinkName: "x", Milliliters: "-1", Percentage: "1"}, wantMsg: app.MsgMillilitersNegative},
		{name: "ml too large", form: models.AlcoholForm{DrinkName: "x", Milliliters: "6000", Percentage: "1"}, wantMsg: app.MsgMillilitersTooLarge},
		{name: "pct not a number", form: models.AlcoholForm{DrinkName: "x", Milliliters: "1", Percentage: "strong"}, wantMsg: app.MsgPercentageNotNumber},
		{name: "pct NaN", form: models.AlcoholForm{DrinkName: "x", Milliliters: "1", Percentage: "NaN"}, wantMsg: app.MsgPercentageNotNumber},
		{name: "pct negative", form: models.AlcoholForm{DrinkName: "x", Milliliters: "1", Percentage: "-0.5"}, wantMsg: app.MsgPercentageNegative},
		{name: "pct too large", form: models.AlcoholForm{DrinkName: "x", Milliliters: "1", Percentage: "101"}, wantMsg: app.MsgPercentageTooLarge},
		{name: "bad date", form: models.AlcoholForm{DrinkName: "x", Milliliters: "1", Percentage: "1", Date: "19.10.2026"}, wantMsg: app.MsgDateInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAlcoholForm(tt.form, now)
			if tt.wantMsg != "" {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrValidation))
				assert.Equal(t, tt.wantMsg, Message(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAlcoholForm_Boundaries(t *testing.T) {
	in, err := ParseAlcoholForm(models.AlcoholForm{DrinkName: "x", Milliliters: "5000", Percentage: "100"}, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 5000, in.Milliliters)
	assert.Equal(t, 100.0, in.Percentage)
}

func TestParseUserForm(t *testing.T) {
	name, age, err := ParseUserForm(models.UserForm{Name: "Ana", Age: "30"})
	require.NoError(t, err)
	assert.Equal(t, "Ana", name)
	assert.Equal(t, 30, age)

	_, _, err = ParseUserForm(models.UserForm{Name: "", Age: "30"})
	assert.Equal(t, app.MsgNameEmpty, Message(err))

	_, _, err = ParseUserForm(models.UserForm{Name: "Ana", Age: "old"})
	assert.Equal(t, app.MsgAgeNotNumber, Message(err))

	_, _, err = ParseUserForm(models.UserForm{Name: "Ana", Age: "151"})
	assert.Equal(t, app.MsgAgeOutOfRange, Message(err))
}

func TestMessage_NonValidationError(t *testing.T) {
	assert.Empty(t, Message(errors.New("boom")))
	assert.Empty(t, Message(nil))
}
