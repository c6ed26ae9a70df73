package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/beer-battle/internal/adapter"
	"github.com/MKhiriev/beer-battle/internal/config"
	"github.com/MKhiriev/beer-battle/internal/logger"
	"github.com/MKhiriev/beer-battle/internal/store"
	"github.com/MKhiriev/beer-battle/internal/utils"
	"github.com/MKhiriev/beer-battle/internal/validators"
	"github.com/MKhiriev/beer-battle/models"
)

type ClientServices struct {
	AlcoholService AlcoholService
	EventService   EventService
	NoteService    NoteService
	UserService    UserService
	SyncService    SyncService
	SyncJobs       SyncJobs
	SessionService SessionService

	// Listener must run next to the job scheduler, see workers.Workers.
	Listener *RemoteListener

	queue *ownerQueue
}

// clientDeps is what every client service shares.
type clientDeps struct {
	storages  *store.ClientStorages
	local     localErrors
	mirror    *remoteMirror
	queue     *ownerQueue
	hub       *watchHub
	validator validators.Validator
	ids       utils.IDGenerator
	now       func() time.Time
	logger    *logger.Logger
}

// NewClientServices wires the client services over one local cache, one
// remote store and one job scheduler.
func NewClientServices(storages *store.ClientStorages, remote adapter.DocumentStore, scheduler JobScheduler, cfg *config.ClientConfig, logger *logger.Logger) (*ClientServices, error) {
	policy := models.ConflictPolicy(cfg.Sync.ConflictPolicy)
	if policy == "" {
		policy = models.RemoteWins
	}
	if !policy.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidConflictPolicy, policy)
	}

	alcoholRemote := adapter.NewAlcoholRecords(remote)
	eventRemote := adapter.NewEvents(remote)

	queue := newOwnerQueue()
	hub := newWatchHub()
	owner := &activeOwner{}
	validator := validators.NewEntityValidator()

	syncSvc := newSyncService(map[models.EntityKind]kindSyncer{
		models.KindAlcoholRecords: newEntitySync[models.AlcoholRecord](models.KindAlcoholRecords, storages.AlcoholRecords, alcoholRemote, storages.PendingWrites, logger),
		models.KindEvents:         newEntitySync[models.Evento](models.KindEvents, storages.Events, eventRemote, storages.PendingWrites, logger),
	}, policy, queue, hub, logger)

	jobs := newSyncJobs(scheduler, syncSvc, owner, cfg.Workers, logger)

	deps := clientDeps{
		storages:  storages,
		local:     localErrors{retryable: storages.IsRetryable},
		mirror:    newRemoteMirror(storages.PendingWrites, jobs, logger),
		queue:     queue,
		hub:       hub,
		validator: validator,
		ids:       utils.NewUUIDGenerator(),
		now:       time.Now,
		logger:    logger,
	}

	return &ClientServices{
		AlcoholService: newAlcoholService(deps, alcoholRemote),
		EventService:   newEventService(deps, eventRemote),
		NoteService:    newNoteService(deps),
		UserService:    newUserService(deps),
		SyncService:    syncSvc,
		SyncJobs:       jobs,
		SessionService: newSessionService(owner, jobs, validator, logger),
		Listener:       newRemoteListener(syncSvc, jobs, owner, cfg.Workers.ListenInterval, logger),
		queue:          queue,
	}, nil
}

// Close waits for the running owner tasks and stops the owner queues.
func (s *ClientServices) Close() {
	s.queue.Close()
}

// localErrors marks retryable local database errors with ErrTemporary.
type localErrors struct {
	retryable func(error) bool
}

func (l localErrors) wrap(err error) error {
	if err == nil {
		return nil
	}
	if l.retryable != nil && l.retryable(err) {
		return fmt.Errorf("%w: %w", ErrTemporary, err)
	}
	return err
}

func requireOwner(ctx context.Context, v validators.Validator, ownerID string) error {
	return v.Validate(ctx, models.AlcoholRecord{OwnerID: strings.TrimSpace(ownerID)}, validators.FieldOwnerID)
}
