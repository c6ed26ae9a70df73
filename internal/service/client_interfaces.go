package service

import (
	"context"
	"time"

	"github.com/MKhiriev/beer-battle/internal/workers"
	"github.com/MKhiriev/beer-battle/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// AlcoholService manages the alcohol records of an owner. Every write goes
// to the local cache and is mirrored to the remote store right away; a failed
// mirror is compensated by a background sync.
type AlcoholService interface {
	// Create validates form and stores a new record dated form.Date, or today
	// when the date is blank.
	Create(ctx context.Context, ownerID string, form models.AlcoholForm) (models.AlcoholRecord, error)

	// Update replaces the editable fields of the record id. The record must
	// belong to ownerID.
	Update(ctx context.Context, ownerID, id string, form models.AlcoholForm) (models.AlcoholRecord, error)

	Delete(ctx context.Context, ownerID, id string) error
	DeleteAllForOwner(ctx context.Context, ownerID string) error

	Get(ctx context.Context, ownerID, id string) (models.AlcoholRecord, error)
	GetAll(ctx context.Context, ownerID string) ([]models.AlcoholRecord, error)

	// GetWeek returns the records of the week containing weekStart.
	GetWeek(ctx context.Context, ownerID string, weekStart time.Time) ([]models.AlcoholRecord, error)
	GetDay(ctx context.Context, ownerID string, day time.Time) ([]models.AlcoholRecord, error)
	WatchWeek(ctx context.Context, ownerID string, weekStart time.Time) <-chan []models.AlcoholRecord

	// Search matches query against the drink name.
	Search(ctx context.Context, ownerID, query string) ([]models.AlcoholRecord, error)
	WatchSearch(ctx context.Context, ownerID, query string) <-chan []models.AlcoholRecord

	WeeklySummary(ctx context.Context, ownerID string, weekStart time.Time) (models.WeeklySummary, error)
}

// EventService manages the events of an owner, mirrored like alcohol records.
type EventService interface {
	Create(ctx context.Context, ownerID string, form models.EventForm) (models.Evento, error)
	Update(ctx context.Context, ownerID, id string, form models.EventForm) (models.Evento, error)
	Delete(ctx context.Context, ownerID, id string) error
	DeleteAllForOwner(ctx context.Context, ownerID string) error

	Get(ctx context.Context, ownerID, id string) (models.Evento, error)
	GetAll(ctx context.Context, ownerID string) ([]models.Evento, error)
	WatchAll(ctx context.Context, ownerID string) <-chan []models.Evento

	// Search matches query against title, description and date.
	Search(ctx context.Context, ownerID, query string) ([]models.Evento, error)

	// AdvancedSearch matches only the enabled fields; a record matches when
	// any of them contains the query.
	AdvancedSearch(ctx context.Context, ownerID string, search models.EventSearch) ([]models.Evento, error)
	WatchSearch(ctx context.Context, ownerID string, search models.EventSearch) <-chan []models.Evento
}

// NoteService manages local notes.
type NoteService interface {
	Create(ctx context.Context, form models.NoteForm) (models.Nota, error)
	Update(ctx context.Context, id string, form models.NoteForm) (models.Nota, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (models.Nota, error)
	GetAll(ctx context.Context) ([]models.Nota, error)
	Search(ctx context.Context, query string) ([]models.Nota, error)
}

// UserService manages the legacy local user profiles.
type UserService interface {
	Create(ctx context.Context, form models.UserForm) (models.Usuario, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (models.Usuario, error)
	GetAll(ctx context.Context) ([]models.Usuario, error)
}

// SyncService converges the local cache of an owner to the remote store.
type SyncService interface {
	// SyncEntity replays the owner's pending remote writes for kind and then
	// reconciles the local cache with the remote snapshot.
	SyncEntity(ctx context.Context, ownerID string, kind models.EntityKind) (models.ReconcileResult, error)

	// SyncAll runs SyncEntity for every remote-backed kind.
	SyncAll(ctx context.Context, ownerID string) ([]models.ReconcileResult, error)
}

// SyncJobs schedules background syncs on the job scheduler.
type SyncJobs interface {
	// StartSession registers the periodic sync of every kind, keeping works
	// already registered, and enqueues an immediate sync.
	StartSession(ownerID string) error

	// EnqueueImmediate replaces the pending immediate sync of kind.
	EnqueueImmediate(ownerID string, kind models.EntityKind) error

	// StopAll cancels every sync work.
	StopAll()
}

// SessionService tracks the owner whose data the client shows.
type SessionService interface {
	SetActiveOwner(ctx context.Context, ownerID string) error
	ActiveOwner() (string, bool)
	Clear()
}

// JobScheduler is the part of [workers.Scheduler] the sync jobs use.
type JobScheduler interface {
	Enqueue(req workers.Request) (bool, error)
	CancelUnique(name string) bool
	CancelAll()
}
