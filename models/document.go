// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"slices"
	"time"
)

// Remote collection names, one per remote-backed entity type.
const (
	CollectionAlcoholRecords = "alcohol_records"
	CollectionEvents         = "events"
)

// Collections lists every collection the remote store accepts.
var Collections = []string{CollectionAlcoholRecords, CollectionEvents}

var (
	// ErrMissingField is returned when a document lacks a required field.
	ErrMissingField = errors.New("document field is missing")

	// ErrInvalidFieldType is returned when a document field holds a value of
	// an unexpected type.
	ErrInvalidFieldType = errors.New("document field has invalid type")
)

// Document is the remote representation of an entity: a flat field map keyed
// by the entity identifier and scoped to an owner.
type Document struct {
	ID      string         `json:"id"`
	OwnerID string         `json:"owner_id"`
	Fields  map[string]any `json:"fields"`
}

// IsCollection reports whether name is a known remote collection.
func IsCollection(name string) bool {
	return slices.Contains(Collections, name)
}

// StoredDocument is a document as the document store keeps it.
type StoredDocument struct {
	Collection string `json:"collection"`
	Document
	UpdatedAt time.Time `json:"updated_at"`
}

// StringField returns the string stored under key.
func (d Document) StringField(key string) (string, error) {
	v, ok := d.Fields[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrMissingField, key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s is %T", ErrInvalidFieldType, key, v)
	}
	return s, nil
}

// Int64Field returns the integer stored under key. JSON-decoded documents
// carry numbers as float64 or json.Number; both are accepted when whole.
func (d Document) Int64Field(key string) (int64, error) {
	v, ok := d.Fields[key]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrMissingField, key)
	}

	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int64:
		return n, nil
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("%w: %s is not a whole number", ErrInvalidFieldType, key)
		}
		return int64(n), nil
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, fmt.Errorf("%w: %s: %w", ErrInvalidFieldType, key, err)
		}
		return i, nil
	default:
		return 0, fmt.Errorf("%w: %s is %T", ErrInvalidFieldType, key, v)
	}
}

// Float64Field returns the number stored under key.
func (d Document) Float64Field(key string) (float64, error) {
	v, ok := d.Fields[key]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrMissingField, key)
	}

	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: %s: %w", ErrInvalidFieldType, key, err)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("%w: %s is %T", ErrInvalidFieldType, key, v)
	}
}
