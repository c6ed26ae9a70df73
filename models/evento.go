// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Evento is a calendar-style event. Date is free text entered by the owner and
// is never parsed.
type Evento struct {
	ID string `json:"id"`

	OwnerID string `json:"owner_id"`

	Title string `json:"title"`

	Description string `json:"description"`

	Date string `json:"date"`

	CreatedAt time.Time `json:"created_at"`

	UpdatedAt time.Time `json:"updated_at"`
}

// NewEvento builds an event with its creation timestamps set to now.
func NewEvento(id, ownerID, title, description, date string, now time.Time) Evento {
	ts := Timestamp(now)
	return Evento{
		ID:          id,
		OwnerID:     ownerID,
		Title:       title,
		Description: description,
		Date:        date,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}
}

func (e Evento) GetID() string {
	return e.ID
}

func (e Evento) GetOwnerID() string {
	return e.OwnerID
}

func (e Evento) GetUpdatedAt() time.Time {
	return e.UpdatedAt
}

// Equal reports field-wise equality with other.
func (e Evento) Equal(other Evento) bool {
	return e.ID == other.ID &&
		e.OwnerID == other.OwnerID &&
		e.Title == other.Title &&
		e.Description == other.Description &&
		e.Date == other.Date &&
		e.CreatedAt.Equal(other.CreatedAt) &&
		e.UpdatedAt.Equal(other.UpdatedAt)
}
