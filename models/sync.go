// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// EntityKind names a remote-backed entity type.
type EntityKind string

const (
	KindAlcoholRecords EntityKind = "alcohol"
	KindEvents         EntityKind = "event"
)

// EntityKinds lists every kind that is reconciled with the remote store.
var EntityKinds = []EntityKind{KindAlcoholRecords, KindEvents}

// Collection returns the remote collection that stores the kind.
func (k EntityKind) Collection() string {
	switch k {
	case KindAlcoholRecords:
		return CollectionAlcoholRecords
	case KindEvents:
		return CollectionEvents
	default:
		return ""
	}
}

// ConflictPolicy decides what reconciliation does with a record that exists
// on both sides with different contents.
type ConflictPolicy string

const (
	// RemoteWins overwrites the local copy with the remote one.
	RemoteWins ConflictPolicy = "remote_wins"

	// LastWriteWins keeps whichever copy has the later UpdatedAt; a newer
	// local copy is pushed to the remote store.
	LastWriteWins ConflictPolicy = "last_write_wins"
)

// Valid reports whether p is a known policy.
func (p ConflictPolicy) Valid() bool {
	return p == RemoteWins || p == LastWriteWins
}

// ReconcilePlan lists the actions that converge the local cache to the
// remote snapshot for one owner.
type ReconcilePlan[T any] struct {
	// DeleteLocal holds ids cached locally but absent remotely.
	DeleteLocal []string

	// UpsertLocal holds remote records missing locally or different locally.
	UpsertLocal []T

	// PushRemote holds local records newer than their remote copy. Only the
	// last-write-wins policy fills it.
	PushRemote []T
}

// Empty reports whether the plan has nothing to do.
func (p ReconcilePlan[T]) Empty() bool {
	return len(p.DeleteLocal) == 0 && len(p.UpsertLocal) == 0 && len(p.PushRemote) == 0
}

// ReconcileResult reports what one reconciliation run applied.
type ReconcileResult struct {
	Kind     EntityKind `json:"kind"`
	OwnerID  string     `json:"owner_id"`
	Deleted  int        `json:"deleted"`
	Upserted int        `json:"upserted"`
	Pushed   int        `json:"pushed"`
	Skipped  int        `json:"skipped"`
	Flushed  int        `json:"flushed"`
}

// Changed reports whether the run touched the local cache.
func (r ReconcileResult) Changed() bool {
	return r.Deleted > 0 || r.Upserted > 0
}

// PendingOp is the kind of remote write an outbox entry replays.
type PendingOp string

const (
	PendingUpsert    PendingOp = "upsert"
	PendingDelete    PendingOp = "delete"
	PendingDeleteAll PendingOp = "delete_all"
)

// PendingWrite is an outbox entry: a remote write that failed and must be
// replayed before the owner's collection is reconciled.
type PendingWrite struct {
	ID         int64     `json:"id"`
	Collection string    `json:"collection"`
	DocumentID string    `json:"document_id"`
	OwnerID    string    `json:"owner_id"`
	Op         PendingOp `json:"op"`
	CreatedAt  time.Time `json:"created_at"`
}
