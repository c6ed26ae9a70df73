package validators

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/beer-battle/internal/app"
	"github.com/MKhiriev/beer-battle/models"
)

const (
	MaxMilliliters = 5000
	MaxPercentage  = 100.0
	MaxAge         = 150
)

// AlcoholInput is a validated [models.AlcoholForm].
type AlcoholInput struct {
	DrinkName   string
	Milliliters int
	Percentage  float64
	Date        time.Time
}

// ParseAlcoholForm validates form and parses its numbers. A blank date means
// the calendar day of now. Zero milliliters and zero percent are valid.
func ParseAlcoholForm(form models.AlcoholForm, now time.Time) (AlcoholInput, error) {
	var in AlcoholInput

	in.DrinkName = strings.TrimSpace(form.DrinkName)
	if in.DrinkName == "" {
		return AlcoholInput{}, invalid(FieldDrinkName, app.MsgNameEmpty)
	}

	ml, err := strconv.Atoi(strings.TrimSpace(form.Milliliters))
	if err != nil {
		return AlcoholInput{}, invalid(FieldMilliliters, app.MsgMillilitersNotNumber)
	}
	if err := checkMilliliters(ml); err != nil {
		return AlcoholInput{}, err
	}
	in.Milliliters = ml

	pct, err := parseDecimal(form.Percentage)
	if err != nil {
		return AlcoholInput{}, invalid(FieldPercentage, app.MsgPercentageNotNumber)
	}
	if err := checkPercentage(pct); err != nil {
		return AlcoholInput{}, err
	}
	in.Percentage = pct

	in.Date = models.CalendarDate(now)
	if date := strings.TrimSpace(form.Date); date != "" {
		in.Date, err = models.ParseDate(date)
		if err != nil {
			return AlcoholInput{}, invalid(FieldDate, app.MsgDateInvalid)
		}
	}

	return in, nil
}

// ParseUserForm validates a legacy user profile form.
func ParseUserForm(form models.UserForm) (name string, age int, err error) {
	name = strings.TrimSpace(form.Name)
	if name == "" {
		return "", 0, invalid(FieldName, app.MsgNameEmpty)
	}

	age, convErr := strconv.Atoi(strings.TrimSpace(form.Age))
	if convErr != nil {
		return "", 0, invalid(FieldAge, app.MsgAgeNotNumber)
	}
	if age < 0 || age > MaxAge {
		return "", 0, invalid(FieldAge, app.MsgAgeOutOfRange)
	}

	return name, age, nil
}

// parseDecimal accepts both "5.5" and "5,5".
func parseDecimal(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, strconv.ErrSyntax
	}
	return f, nil
}

func checkMilliliters(ml int) error {
	switch {
	case ml < 0:
		return invalid(FieldMilliliters, app.MsgMillilitersNegative)
	case ml > MaxMilliliters:
		return invalid(FieldMilliliters, app.MsgMillilitersTooLarge)
	}
	return nil
}

func checkPercentage(pct float64) error {
	switch {
	case pct < 0:
		return invalid(FieldPercentage, app.MsgPercentageNegative)
	case pct > MaxPercentage:
		return invalid(FieldPercentage, app.MsgPercentageTooLarge)
	}
	return nil
}
