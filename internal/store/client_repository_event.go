package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/beer-battle/internal/logger"
	"github.com/MKhiriev/beer-battle/models"
)

type eventRepository struct {
	*DB
	logger *logger.Logger
}

func NewEventRepository(db *DB, logger *logger.Logger) EventRepository {
	return &eventRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *eventRepository) selectEvents(ownerID string) sq.SelectBuilder {
	return sqlite.Select(eventoColumns...).
		From(tableEventos).
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("created_at DESC")
}

func (r *eventRepository) GetAllForOwner(ctx context.Context, ownerID string) ([]models.Evento, error) {
	return selectAll(ctx, r.DB, "eventRepository.GetAllForOwner", r.selectEvents(ownerID), scanEvento)
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (models.Evento, error) {
	query := sqlite.Select(eventoColumns...).From(tableEventos).Where(sq.Eq{"id": id})

	return selectOne(ctx, r.DB, "eventRepository.GetByID", query, scanEvento)
}

func (r *eventRepository) Search(ctx context.Context, ownerID, query string) ([]models.Evento, error) {
	return r.AdvancedSearch(ctx, ownerID, models.AllFields(query))
}

// AdvancedSearch matches events whose enabled fields contain the query. With
// no field enabled nothing matches; a blank query matches every event.
func (r *eventRepository) AdvancedSearch(ctx context.Context, ownerID string, search models.EventSearch) ([]models.Evento, error) {
	if !search.AnyFieldEnabled() {
		return []models.Evento{}, nil
	}

	var anyField sq.Or
	if search.Title {
		anyField = append(anyField, contains("title", search.Query))
	}
	if search.Description {
		anyField = append(anyField, contains("description", search.Query))
	}
	if search.Date {
		anyField = append(anyField, contains("date", search.Query))
	}

	query := r.selectEvents(ownerID).Where(anyField)

	return selectAll(ctx, r.DB, "eventRepository.AdvancedSearch", query, scanEvento)
}

func (r *eventRepository) InsertOrReplace(ctx context.Context, events ...models.Evento) error {
	statements := make([]sq.Sqlizer, 0, len(events))
	for _, ev := range events {
		statements = append(statements, sqlite.Replace(tableEventos).
			Columns(eventoColumns...).
			Values(ev.ID, ev.OwnerID, ev.Title, ev.Description, ev.Date, ev.CreatedAt.UnixMilli(), ev.UpdatedAt.UnixMilli()))
	}

	if err := replaceAll(ctx, r.DB, "eventRepository.InsertOrReplace", statements); err != nil {
		return fmt.Errorf("failed to save events: %w", err)
	}
	return nil
}

func (r *eventRepository) Update(ctx context.Context, ev models.Evento) error {
	stmt := sqlite.Update(tableEventos).
		SetMap(map[string]any{
			"owner_id":    ev.OwnerID,
			"title":       ev.Title,
			"description": ev.Description,
			"date":        ev.Date,
			"created_at":  ev.CreatedAt.UnixMilli(),
			"updated_at":  ev.UpdatedAt.UnixMilli(),
		}).
		Where(sq.Eq{"id": ev.ID})

	affected, err := exec(ctx, r.DB, "eventRepository.Update", stmt)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	_, err := exec(ctx, r.DB, "eventRepository.Delete",
		sqlite.Delete(tableEventos).Where(sq.Eq{"id": id}))
	return err
}

func (r *eventRepository) DeleteAllForOwner(ctx context.Context, ownerID string) error {
	_, err := exec(ctx, r.DB, "eventRepository.DeleteAllForOwner",
		sqlite.Delete(tableEventos).Where(sq.Eq{"owner_id": ownerID}))
	return err
}

func scanEvento(row rowScanner) (models.Evento, error) {
	var (
		ev                   models.Evento
		createdAt, updatedAt int64
	)

	if err := row.Scan(&ev.ID, &ev.OwnerID, &ev.Title, &ev.Description, &ev.Date, &createdAt, &updatedAt); err != nil {
		return models.Evento{}, err
	}
	ev.CreatedAt = time.UnixMilli(createdAt).UTC()
	ev.UpdatedAt = time.UnixMilli(updatedAt).UTC()

	return ev, nil
}
