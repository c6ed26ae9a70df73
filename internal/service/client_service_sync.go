package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/beer-battle/internal/logger"
	"github.com/MKhiriev/beer-battle/models"
)

type syncService struct {
	syncers map[models.EntityKind]kindSyncer
	policy  models.ConflictPolicy

	queue *ownerQueue
	hub   *watchHub

	logger *logger.Logger
}

func newSyncService(syncers map[models.EntityKind]kindSyncer, policy models.ConflictPolicy, queue *ownerQueue, hub *watchHub, logger *logger.Logger) *syncService {
	return &syncService{
		syncers: syncers,
		policy:  policy,
		queue:   queue,
		hub:     hub,
		logger:  logger,
	}
}

// SyncEntity implements SyncService. The outbox is replayed first: a pending
// upload that could not be replayed would otherwise be erased by the remote
// snapshot, so reconciliation only runs once the outbox is empty.
func (s *syncService) SyncEntity(ctx context.Context, ownerID string, kind models.EntityKind) (models.ReconcileResult, error) {
	syncer, ok := s.syncers[kind]
	if !ok {
		return models.ReconcileResult{}, fmt.Errorf("%w: %q", ErrUnknownEntityKind, kind)
	}
	if ownerID == "" {
		return models.ReconcileResult{}, ErrNoActiveOwner
	}

	var result models.ReconcileResult
	err := s.queue.Do(ctx, ownerID, func(ctx context.Context) error {
		flushed, err := syncer.flush(ctx, ownerID)
		if err != nil {
			return fmt.Errorf("flush %s outbox: %w", kind, err)
		}

		result, err = syncer.reconcile(ctx, ownerID, s.policy)
		result.Flushed = flushed
		if err != nil {
			return fmt.Errorf("reconcile %s: %w", kind, err)
		}
		return nil
	})
	if err != nil {
		s.logger.Err(err).
			Str("func", "syncService.SyncEntity").
			Str("owner_id", ownerID).
			Str("kind", string(kind)).
			Msg("sync failed")
		return result, err
	}

	if result.Changed() {
		s.hub.notify(ownerID)
	}
	return result, nil
}

// SyncAll implements SyncService. Kinds are synced concurrently; the results
// follow the order of models.EntityKinds.
func (s *syncService) SyncAll(ctx context.Context, ownerID string) ([]models.ReconcileResult, error) {
	results := make([]models.ReconcileResult, len(models.EntityKinds))

	g, ctx := errgroup.WithContext(ctx)
	for i, kind := range models.EntityKinds {
		g.Go(func() error {
			res, err := s.SyncEntity(ctx, ownerID, kind)
			results[i] = res
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
