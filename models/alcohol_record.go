// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DateLayout is the textual form of calendar dates in the local cache and in
// remote documents.
const DateLayout = "2006-01-02"

// AlcoholRecord is a single drink logged by an owner on a calendar date.
//
// DayOfWeek and WeekStart are derived from Date by [NewAlcoholRecord] and are
// stored alongside it so that the cache can be queried by week and by day
// without date arithmetic in SQL.
type AlcoholRecord struct {
	// ID is the locally generated identifier; it is also the remote document key.
	ID string `json:"id"`

	// OwnerID is the identifier of the signed-in user the record belongs to.
	OwnerID string `json:"owner_id"`

	// Date is the calendar day of the drink, at UTC midnight.
	Date time.Time `json:"date"`

	// DayOfWeek is 1 for Sunday through 7 for Saturday.
	DayOfWeek int `json:"day_of_week"`

	DrinkName string `json:"drink_name"`

	Milliliters int `json:"milliliters"`

	Percentage float64 `json:"percentage"`

	// WeekStart is the Sunday on or before Date.
	WeekStart time.Time `json:"week_start"`

	CreatedAt time.Time `json:"created_at"`

	UpdatedAt time.Time `json:"updated_at"`
}

// NewAlcoholRecord builds a record for date, filling in the derived week
// fields and the creation timestamps.
func NewAlcoholRecord(id, ownerID string, date time.Time, drinkName string, milliliters int, percentage float64, now time.Time) AlcoholRecord {
	day := CalendarDate(date)
	ts := Timestamp(now)

	return AlcoholRecord{
		ID:          id,
		OwnerID:     ownerID,
		Date:        day,
		DayOfWeek:   DayOfWeek(day),
		DrinkName:   drinkName,
		Milliliters: milliliters,
		Percentage:  percentage,
		WeekStart:   WeekStart(day),
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}
}

// PureAlcohol returns the volume of pure alcohol in milliliters.
func (a AlcoholRecord) PureAlcohol() float64 {
	return float64(a.Milliliters) * a.Percentage / 100
}

// GetID returns the record identifier.
func (a AlcoholRecord) GetID() string {
	return a.ID
}

// GetOwnerID returns the owner identifier.
func (a AlcoholRecord) GetOwnerID() string {
	return a.OwnerID
}

// GetUpdatedAt returns the time of the last local modification.
func (a AlcoholRecord) GetUpdatedAt() time.Time {
	return a.UpdatedAt
}

// Equal reports field-wise equality with other.
func (a AlcoholRecord) Equal(other AlcoholRecord) bool {
	return a.ID == other.ID &&
		a.OwnerID == other.OwnerID &&
		a.Date.Equal(other.Date) &&
		a.DayOfWeek == other.DayOfWeek &&
		a.DrinkName == other.DrinkName &&
		a.Milliliters == other.Milliliters &&
		a.Percentage == other.Percentage &&
		a.WeekStart.Equal(other.WeekStart) &&
		a.CreatedAt.Equal(other.CreatedAt) &&
		a.UpdatedAt.Equal(other.UpdatedAt)
}
