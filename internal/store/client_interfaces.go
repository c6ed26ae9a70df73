package store

import (
	"context"
	"time"

	"github.com/MKhiriev/beer-battle/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// AlcoholRecordRepository is the local cache of alcohol records.
type AlcoholRecordRepository interface {
	GetAllForOwner(ctx context.Context, ownerID string) ([]models.AlcoholRecord, error)
	GetByID(ctx context.Context, id string) (models.AlcoholRecord, error)
	GetForOwnerWeek(ctx context.Context, ownerID string, weekStart time.Time) ([]models.AlcoholRecord, error)
	GetForOwnerDay(ctx context.Context, ownerID string, weekStart time.Time, dayOfWeek int) ([]models.AlcoholRecord, error)
	Search(ctx context.Context, ownerID, query string) ([]models.AlcoholRecord, error)
	InsertOrReplace(ctx context.Context, records ...models.AlcoholRecord) error
	Update(ctx context.Context, record models.AlcoholRecord) error
	Delete(ctx context.Context, id string) error
	DeleteAllForOwner(ctx context.Context, ownerID string) error
}

// EventRepository is the local cache of events.
type EventRepository interface {
	GetAllForOwner(ctx context.Context, ownerID string) ([]models.Evento, error)
	GetByID(ctx context.Context, id string) (models.Evento, error)
	Search(ctx context.Context, ownerID, query string) ([]models.Evento, error)
	AdvancedSearch(ctx context.Context, ownerID string, search models.EventSearch) ([]models.Evento, error)
	InsertOrReplace(ctx context.Context, events ...models.Evento) error
	Update(ctx context.Context, event models.Evento) error
	Delete(ctx context.Context, id string) error
	DeleteAllForOwner(ctx context.Context, ownerID string) error
}

// NoteRepository keeps notes. Notes are not owner scoped.
type NoteRepository interface {
	GetAll(ctx context.Context) ([]models.Nota, error)
	GetByID(ctx context.Context, id string) (models.Nota, error)
	Search(ctx context.Context, query string) ([]models.Nota, error)
	InsertOrReplace(ctx context.Context, notes ...models.Nota) error
	Update(ctx context.Context, note models.Nota) error
	Delete(ctx context.Context, id string) error
}

// UserRepository keeps the legacy local user profiles.
type UserRepository interface {
	GetAll(ctx context.Context) ([]models.Usuario, error)
	GetByID(ctx context.Context, id string) (models.Usuario, error)
	InsertOrReplace(ctx context.Context, users ...models.Usuario) error
	Delete(ctx context.Context, id string) error
}

// PendingWriteRepository is the outbox of remote writes that failed.
type PendingWriteRepository interface {
	Add(ctx context.Context, write models.PendingWrite) (int64, error)
	ListForOwner(ctx context.Context, ownerID, collection string) ([]models.PendingWrite, error)
	Remove(ctx context.Context, id int64) error
}
