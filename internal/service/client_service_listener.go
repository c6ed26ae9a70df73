package service

import (
	"context"
	"time"

	"github.com/MKhiriev/beer-battle/internal/logger"
	"github.com/MKhiriev/beer-battle/models"
)

const defaultListenInterval = time.Minute

// RemoteListener follows the remote snapshot of the active owner. Every
// interval it runs the same flush and reconcile path as the sync jobs; a kind
// that fails falls back to its immediate background sync.
type RemoteListener struct {
	sync     SyncService
	jobs     SyncJobs
	owner    *activeOwner
	interval time.Duration

	logger *logger.Logger
}

func newRemoteListener(sync SyncService, jobs SyncJobs, owner *activeOwner, interval time.Duration, logger *logger.Logger) *RemoteListener {
	if interval <= 0 {
		interval = defaultListenInterval
	}
	return &RemoteListener{
		sync:     sync,
		jobs:     jobs,
		owner:    owner,
		interval: interval,
		logger:   logger,
	}
}

// Run implements workers.Worker. It returns nil when ctx is cancelled.
func (l *RemoteListener) Run(ctx context.Context) error {
	t := time.NewTicker(l.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			l.poll(ctx)
		}
	}
}

func (l *RemoteListener) poll(ctx context.Context) {
	ownerID, ok := l.owner.get()
	if !ok {
		return
	}

	for _, kind := range models.EntityKinds {
		if _, err := l.sync.SyncEntity(ctx, ownerID, kind); err != nil {
			if ctx.Err() != nil {
				return
			}

			l.logger.Warn().Err(err).
				Str("func", "RemoteListener.poll").
				Str("owner_id", ownerID).
				Str("kind", string(kind)).
				Msg("listener sync failed, falling back to background sync")

			if err = l.jobs.EnqueueImmediate(ownerID, kind); err != nil {
				l.logger.Err(err).Str("func", "RemoteListener.poll").Msg("failed to enqueue fallback sync")
			}
		}
	}
}
