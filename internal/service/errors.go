// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/beer-battle/internal/adapter"
	"github.com/MKhiriev/beer-battle/internal/store"
	"github.com/MKhiriev/beer-battle/internal/validators"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrNoActiveOwner = errors.New("no active owner")

	ErrUnknownEntityKind = errors.New("unknown entity kind")

	ErrInvalidConflictPolicy = errors.New("invalid conflict policy")

	// ErrTemporary wraps local database errors that may succeed on retry.
	ErrTemporary = errors.New("temporary failure")

	ErrOwnerQueueClosed = errors.New("owner queue is closed")

	// ErrOwnerMismatch is a request for documents of an owner other than the
	// authenticated one, or a write to an id held by another owner.
	ErrOwnerMismatch = errors.New("document belongs to another owner")

	ErrDocumentNotFound = errors.New("document not found")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrStorageUnavailable = errors.New("storage is unavailable")
)

// Kind classifies an error for callers that decide whether to retry.
type Kind string

const (
	// KindValidation is rejected input. The message is shown to the owner and
	// the operation is never retried.
	KindValidation Kind = "validation"

	KindNotFound Kind = "not_found"

	// KindRetryable covers network failures, 5xx answers of the remote store
	// and busy local databases.
	KindRetryable Kind = "retryable"

	KindPermanent Kind = "permanent"
)

// KindOf classifies err. A nil error has no kind.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, validators.ErrValidation), errors.Is(err, ErrInvalidDataProvided):
		return KindValidation
	case errors.Is(err, store.ErrRecordNotFound),
		errors.Is(err, adapter.ErrNotFound),
		errors.Is(err, ErrDocumentNotFound):
		return KindNotFound
	case errors.Is(err, ErrTemporary),
		errors.Is(err, context.DeadlineExceeded),
		adapter.IsRetryable(err):
		return KindRetryable
	default:
		return KindPermanent
	}
}

// IsRetryable is KindOf(err) == KindRetryable.
func IsRetryable(err error) bool {
	return KindOf(err) == KindRetryable
}
