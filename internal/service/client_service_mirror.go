package service

import (
	"context"
	"time"

	"github.com/MKhiriev/beer-battle/internal/logger"
	"github.com/MKhiriev/beer-battle/internal/store"
	"github.com/MKhiriev/beer-battle/models"
)

// compensator is told about remote writes that did not go through.
type compensator interface {
	EnqueueImmediate(ownerID string, kind models.EntityKind) error
}

// remoteMirror writes local changes through to the remote store. A write
// that fails, or that would overtake earlier failed writes of the same
// collection, is recorded in the outbox and a background sync is enqueued.
// Mirror failures never reach the caller.
type remoteMirror struct {
	pending store.PendingWriteRepository
	jobs    compensator
	now     func() time.Time

	logger *logger.Logger
}

func newRemoteMirror(pending store.PendingWriteRepository, jobs compensator, logger *logger.Logger) *remoteMirror {
	return &remoteMirror{
		pending: pending,
		jobs:    jobs,
		now:     time.Now,
		logger:  logger,
	}
}

func (m *remoteMirror) upsert(ctx context.Context, kind models.EntityKind, ownerID, id string, call func(ctx context.Context) error) {
	m.write(ctx, kind, models.PendingWrite{OwnerID: ownerID, DocumentID: id, Op: models.PendingUpsert}, call)
}

func (m *remoteMirror) delete(ctx context.Context, kind models.EntityKind, ownerID, id string, call func(ctx context.Context) error) {
	m.write(ctx, kind, models.PendingWrite{OwnerID: ownerID, DocumentID: id, Op: models.PendingDelete}, call)
}

func (m *remoteMirror) deleteAll(ctx context.Context, kind models.EntityKind, ownerID string, call func(ctx context.Context) error) {
	m.write(ctx, kind, models.PendingWrite{OwnerID: ownerID, Op: models.PendingDeleteAll}, call)
}

func (m *remoteMirror) write(ctx context.Context, kind models.EntityKind, write models.PendingWrite, call func(ctx context.Context) error) {
	log := m.logger.With().
		Str("func", "remoteMirror.write").
		Str("owner_id", write.OwnerID).
		Str("kind", string(kind)).
		Str("op", string(write.Op)).
		Str("document_id", write.DocumentID).
		Logger()

	write.Collection = kind.Collection()

	queued, err := m.pending.ListForOwner(ctx, write.OwnerID, write.Collection)
	if err != nil {
		log.Err(err).Msg("failed to read outbox, writing through")
	}

	if len(queued) == 0 {
		err = call(ctx)
		if err == nil {
			return
		}
		log.Warn().Err(err).Msg("remote write failed, compensating")
	} else {
		log.Debug().Int("queued", len(queued)).Msg("earlier writes are pending, queueing")
	}

	// the outbox entry must survive a cancelled request
	write.CreatedAt = models.Timestamp(m.now())
	if _, err = m.pending.Add(context.WithoutCancel(ctx), write); err != nil {
		log.Err(err).Msg("failed to record pending write")
	}

	if err = m.jobs.EnqueueImmediate(write.OwnerID, kind); err != nil {
		log.Err(err).Msg("failed to enqueue compensating sync")
	}
}
