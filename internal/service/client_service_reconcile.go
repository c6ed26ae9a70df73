package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/beer-battle/internal/adapter"
	"github.com/MKhiriev/beer-battle/internal/logger"
	"github.com/MKhiriev/beer-battle/internal/store"
	"github.com/MKhiriev/beer-battle/models"
)

// Syncable is an entity that can be reconciled: it has a stable id, a
// modification time and field-wise equality.
type Syncable[T any] interface {
	GetID() string
	GetUpdatedAt() time.Time
	Equal(other T) bool
}

// BuildReconcilePlan diffs the local set of an owner against the remote one.
// Local records absent remotely are deleted; remote records missing locally
// or different locally are upserted. Under [models.LastWriteWins] a local
// copy strictly newer than its remote copy is pushed instead.
func BuildReconcilePlan[T Syncable[T]](local, remote []T, policy models.ConflictPolicy) models.ReconcilePlan[T] {
	var plan models.ReconcilePlan[T]

	remoteIndex := make(map[string]struct{}, len(remote))
	for _, r := range remote {
		remoteIndex[r.GetID()] = struct{}{}
	}

	localIndex := make(map[string]T, len(local))
	for _, l := range local {
		localIndex[l.GetID()] = l
		if _, ok := remoteIndex[l.GetID()]; !ok {
			plan.DeleteLocal = append(plan.DeleteLocal, l.GetID())
		}
	}

	for _, r := range remote {
		l, ok := localIndex[r.GetID()]
		switch {
		case !ok:
			plan.UpsertLocal = append(plan.UpsertLocal, r)
		case l.Equal(r):
		case policy == models.LastWriteWins && l.GetUpdatedAt().After(r.GetUpdatedAt()):
			plan.PushRemote = append(plan.PushRemote, l)
		default:
			plan.UpsertLocal = append(plan.UpsertLocal, r)
		}
	}

	return plan
}

// localCache is the part of a local repository reconciliation needs.
type localCache[T any] interface {
	GetAllForOwner(ctx context.Context, ownerID string) ([]T, error)
	GetByID(ctx context.Context, id string) (T, error)
	InsertOrReplace(ctx context.Context, items ...T) error
	Delete(ctx context.Context, id string) error
}

// remoteCollection is a remote collection bound to T, see adapter.Collection.
type remoteCollection[T any] interface {
	Put(ctx context.Context, v T) error
	ListByOwner(ctx context.Context, ownerID string) ([]T, error)
	Delete(ctx context.Context, id, ownerID string) error
	DeleteByOwner(ctx context.Context, ownerID string) error
}

// kindSyncer syncs one entity kind. Callers hold the owner's queue.
type kindSyncer interface {
	flush(ctx context.Context, ownerID string) (int, error)
	reconcile(ctx context.Context, ownerID string, policy models.ConflictPolicy) (models.ReconcileResult, error)
}

type entitySync[T Syncable[T]] struct {
	kind    models.EntityKind
	local   localCache[T]
	remote  remoteCollection[T]
	pending store.PendingWriteRepository

	logger *logger.Logger
}

func newEntitySync[T Syncable[T]](kind models.EntityKind, local localCache[T], remote remoteCollection[T], pending store.PendingWriteRepository, logger *logger.Logger) *entitySync[T] {
	return &entitySync[T]{kind: kind, local: local, remote: remote, pending: pending, logger: logger}
}

// flush replays the outbox of the owner in order. It stops at the first
// failure so that later writes never overtake earlier ones. A write the
// remote store rejects for good is dropped, it would block the outbox
// forever.
func (e *entitySync[T]) flush(ctx context.Context, ownerID string) (int, error) {
	writes, err := e.pending.ListForOwner(ctx, ownerID, e.kind.Collection())
	if err != nil {
		return 0, fmt.Errorf("list pending writes: %w", err)
	}

	log := e.logger.With().Str("owner_id", ownerID).Str("kind", string(e.kind)).Logger()

	var flushed, dropped int
	for _, w := range writes {
		if err = e.replay(ctx, w); err != nil {
			if ctx.Err() != nil || !adapter.IsRejected(err) {
				return flushed, fmt.Errorf("replay pending %s of %s: %w", w.Op, w.DocumentID, err)
			}
			log.Err(err).
				Str("func", "entitySync.flush").
				Str("op", string(w.Op)).
				Str("id", w.DocumentID).
				Msg("pending write rejected by remote, dropping it")
			dropped++
		} else {
			flushed++
		}

		if err = e.pending.Remove(ctx, w.ID); err != nil {
			return flushed, fmt.Errorf("remove pending write %d: %w", w.ID, err)
		}
	}

	if len(writes) > 0 {
		log.Info().
			Str("func", "entitySync.flush").
			Int("flushed", flushed).
			Int("dropped", dropped).
			Msg("pending writes replayed")
	}
	return flushed, nil
}

func (e *entitySync[T]) replay(ctx context.Context, w models.PendingWrite) error {
	switch w.Op {
	case models.PendingUpsert:
		item, err := e.local.GetByID(ctx, w.DocumentID)
		if errors.Is(err, store.ErrRecordNotFound) {
			// deleted locally since; the delete has its own entry
			return nil
		}
		if err != nil {
			return err
		}
		return e.remote.Put(ctx, item)
	case models.PendingDelete:
		return e.remote.Delete(ctx, w.DocumentID, w.OwnerID)
	case models.PendingDeleteAll:
		return e.remote.DeleteByOwner(ctx, w.OwnerID)
	default:
		e.logger.Warn().Str("func", "entitySync.replay").Str("op", string(w.Op)).Msg("unknown pending op dropped")
		return nil
	}
}

// reconcile converges the local set of the owner to the remote snapshot.
// Every action is applied on its own: a failure is logged and skipped.
func (e *entitySync[T]) reconcile(ctx context.Context, ownerID string, policy models.ConflictPolicy) (models.ReconcileResult, error) {
	result := models.ReconcileResult{Kind: e.kind, OwnerID: ownerID}
	log := e.logger.With().Str("owner_id", ownerID).Str("kind", string(e.kind)).Logger()

	remote, err := e.remote.ListByOwner(ctx, ownerID)
	if err != nil {
		return result, fmt.Errorf("fetch remote snapshot: %w", err)
	}

	local, err := e.local.GetAllForOwner(ctx, ownerID)
	if err != nil {
		return result, fmt.Errorf("fetch local set: %w", err)
	}

	plan := BuildReconcilePlan(local, remote, policy)
	if plan.Empty() {
		return result, nil
	}

	for _, id := range plan.DeleteLocal {
		if err = e.local.Delete(ctx, id); err != nil {
			log.Err(err).Str("func", "entitySync.reconcile").Str("id", id).Msg("failed to delete local record")
			result.Skipped++
			continue
		}
		result.Deleted++
	}

	for _, item := range plan.UpsertLocal {
		if err = e.local.InsertOrReplace(ctx, item); err != nil {
			log.Err(err).Str("func", "entitySync.reconcile").Str("id", item.GetID()).Msg("failed to upsert local record")
			result.Skipped++
			continue
		}
		result.Upserted++
	}

	for _, item := range plan.PushRemote {
		if err = e.remote.Put(ctx, item); err != nil {
			log.Err(err).Str("func", "entitySync.reconcile").Str("id", item.GetID()).Msg("failed to push newer local record")
			result.Skipped++
			continue
		}
		result.Pushed++
	}

	log.Info().
		Str("func", "entitySync.reconcile").
		Int("deleted", result.Deleted).
		Int("upserted", result.Upserted).
		Int("pushed", result.Pushed).
		Int("skipped", result.Skipped).
		Msg("reconciled")

	return result, nil
}
