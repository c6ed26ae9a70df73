// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the remote document store.
//
// [DocumentStore] decouples the sync services from the transport. The
// package ships an HTTP implementation ([NewHTTPDocumentStore]) built on
// resty; every request is authenticated with an owner token minted from the
// shared sign key. [Collection] binds a store to one entity type and its
// document codec.
//
// HTTP failures are mapped to the sentinel errors in errors.go so callers can
// use [errors.Is] and [IsRetryable] without knowing about status codes.
package adapter

import (
	"context"

	"github.com/MKhiriev/beer-battle/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/document_store_mock.go -package=mock

// DocumentStore is the remote document store: one collection per entity
// type, documents keyed by id and scoped to an owner.
type DocumentStore interface {
	// Ping checks that the store answers.
	Ping(ctx context.Context) error

	// Online reports whether the store is reachable right now. It is the
	// network precondition of background sync jobs.
	Online(ctx context.Context) bool

	// Put creates or replaces doc in collection.
	Put(ctx context.Context, collection string, doc models.Document) error

	// Get returns one document. A missing document is [ErrNotFound].
	Get(ctx context.Context, collection, id, ownerID string) (models.Document, error)

	// ListByOwner returns every document of ownerID in collection.
	ListByOwner(ctx context.Context, collection, ownerID string) ([]models.Document, error)

	// Delete removes one document. Deleting a missing document succeeds.
	Delete(ctx context.Context, collection, id, ownerID string) error

	// DeleteByOwner removes every document of ownerID in collection.
	DeleteByOwner(ctx context.Context, collection, ownerID string) error
}
