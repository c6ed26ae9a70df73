// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks owner input and remote documents before they
// reach the local cache or the document store.
//
// Validation failures are *ValidationError values carrying the message shown
// to the owner; errors.Is(err, ErrValidation) matches all of them. Field
// names passed to Validate restrict the check to those fields.
package validators

import "context"

// Validator validates v, optionally only the named fields.
type Validator interface {
	Validate(ctx context.Context, v any, fields ...string) error
}
