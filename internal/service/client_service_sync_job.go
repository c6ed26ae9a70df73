package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/beer-battle/internal/config"
	"github.com/MKhiriev/beer-battle/internal/logger"
	"github.com/MKhiriev/beer-battle/internal/workers"
	"github.com/MKhiriev/beer-battle/models"
)

// Work name suffixes. The unique work name of a kind is "<kind>_sync_<suffix>",
// e.g. alcohol_sync_immediate.
const (
	workImmediate = "immediate"
	workChained   = "chained"
	workPeriodic  = "periodic"
)

// WorkName returns the unique work name of a sync job.
func WorkName(kind models.EntityKind, suffix string) string {
	return string(kind) + "_sync_" + suffix
}

type syncJobs struct {
	scheduler JobScheduler
	sync      SyncService
	owner     *activeOwner
	cfg       config.ClientWorkers

	// generation grows on every StopAll. A chained job only re-arms itself
	// while the generation it was started in is current.
	mu         sync.Mutex
	generation uint64

	logger *logger.Logger
}

// newSyncJobs creates the sync jobs of the client on scheduler.
func newSyncJobs(scheduler JobScheduler, sync SyncService, owner *activeOwner, cfg config.ClientWorkers, logger *logger.Logger) SyncJobs {
	return &syncJobs{
		scheduler: scheduler,
		sync:      sync,
		owner:     owner,
		cfg:       cfg,
		logger:    logger,
	}
}

// StartSession implements SyncJobs. Periodic works resolve the owner when
// they run, so registering them again for another owner keeps the existing
// ones.
func (j *syncJobs) StartSession(ownerID string) error {
	for _, kind := range models.EntityKinds {
		_, err := j.scheduler.Enqueue(workers.Request{
			Name:            WorkName(kind, workPeriodic),
			Job:             j.activeOwnerJob(kind),
			Policy:          workers.Keep,
			RequiresNetwork: true,
			Period:          j.cfg.SyncInterval,
			Flex:            j.cfg.SyncFlex,
		})
		if err != nil {
			return fmt.Errorf("register periodic %s sync: %w", kind, err)
		}

		if err = j.EnqueueImmediate(ownerID, kind); err != nil {
			return err
		}
	}

	j.logger.Info().Str("func", "syncJobs.StartSession").Str("owner_id", ownerID).Msg("sync session started")
	return nil
}

// EnqueueImmediate implements SyncJobs.
func (j *syncJobs) EnqueueImmediate(ownerID string, kind models.EntityKind) error {
	j.mu.Lock()
	generation := j.generation
	j.mu.Unlock()

	_, err := j.scheduler.Enqueue(workers.Request{
		Name:            WorkName(kind, workImmediate),
		Job:             j.chainedJob(ownerID, kind, generation),
		Policy:          workers.Replace,
		RequiresNetwork: true,
	})
	if err != nil {
		return fmt.Errorf("enqueue immediate %s sync: %w", kind, err)
	}
	return nil
}

// StopAll implements SyncJobs.
func (j *syncJobs) StopAll() {
	j.mu.Lock()
	j.generation++
	j.scheduler.CancelAll()
	j.mu.Unlock()

	j.logger.Info().Str("func", "syncJobs.StopAll").Msg("all sync works cancelled")
}

// chainedJob syncs kind and, on success, schedules its own next run one
// sync interval later. A job cancelled or stopped while syncing does not
// schedule anything.
func (j *syncJobs) chainedJob(ownerID string, kind models.EntityKind, generation uint64) workers.Job {
	return func(ctx context.Context) error {
		if err := j.run(ctx, ownerID, kind); err != nil {
			return err
		}

		j.mu.Lock()
		defer j.mu.Unlock()

		if ctx.Err() != nil || generation != j.generation {
			j.logger.Debug().Str("func", "syncJobs.chainedJob").Str("kind", string(kind)).Msg("sync stopped, not chaining")
			return nil
		}

		_, err := j.scheduler.Enqueue(workers.Request{
			Name:            WorkName(kind, workChained),
			Job:             j.chainedJob(ownerID, kind, generation),
			Policy:          workers.Replace,
			Delay:           j.cfg.SyncInterval,
			RequiresNetwork: true,
		})
		if err != nil {
			j.logger.Err(err).Str("func", "syncJobs.chainedJob").Str("kind", string(kind)).Msg("failed to chain next sync")
		}
		return nil
	}
}

func (j *syncJobs) activeOwnerJob(kind models.EntityKind) workers.Job {
	return func(ctx context.Context) error {
		ownerID, ok := j.owner.get()
		if !ok {
			return nil
		}
		return j.run(ctx, ownerID, kind)
	}
}

// run syncs once. Errors that cannot heal by retrying fail the work at once.
func (j *syncJobs) run(ctx context.Context, ownerID string, kind models.EntityKind) error {
	_, err := j.sync.SyncEntity(ctx, ownerID, kind)
	if err == nil {
		return nil
	}
	if KindOf(err) == KindRetryable {
		return err
	}
	return workers.Permanent(err)
}
