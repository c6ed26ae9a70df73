package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/beer-battle/internal/logger"
	"github.com/MKhiriev/beer-battle/internal/store"
	"github.com/MKhiriev/beer-battle/internal/utils"
	"github.com/MKhiriev/beer-battle/internal/validators"
	"github.com/MKhiriev/beer-battle/models"
)

type eventService struct {
	events store.EventRepository
	remote remoteCollection[models.Evento]

	local     localErrors
	mirror    *remoteMirror
	queue     *ownerQueue
	hub       *watchHub
	validator validators.Validator
	ids       utils.IDGenerator
	now       func() time.Time

	logger *logger.Logger
}

func newEventService(deps clientDeps, remote remoteCollection[models.Evento]) *eventService {
	return &eventService{
		events:    deps.storages.Events,
		remote:    remote,
		local:     deps.local,
		mirror:    deps.mirror,
		queue:     deps.queue,
		hub:       deps.hub,
		validator: deps.validator,
		ids:       deps.ids,
		now:       deps.now,
		logger:    deps.logger,
	}
}

func (s *eventService) Create(ctx context.Context, ownerID string, form models.EventForm) (models.Evento, error) {
	ev := models.NewEvento(s.ids.Generate(), ownerID, strings.TrimSpace(form.Title), form.Description, strings.TrimSpace(form.Date), s.now())
	if err := s.validator.Validate(ctx, ev); err != nil {
		return models.Evento{}, err
	}

	err := s.queue.Do(ctx, ownerID, func(ctx context.Context) error {
		if err := s.events.InsertOrReplace(ctx, ev); err != nil {
			return fmt.Errorf("insert event: %w", s.local.wrap(err))
		}

		s.mirror.upsert(ctx, models.KindEvents, ownerID, ev.ID, func(ctx context.Context) error {
			return s.remote.Put(ctx, ev)
		})
		return nil
	})
	if err != nil {
		s.logger.Err(err).Str("func", "eventService.Create").Str("owner_id", ownerID).Msg("failed to create event")
		return models.Evento{}, err
	}

	s.hub.notify(ownerID)
	return ev, nil
}

func (s *eventService) Update(ctx context.Context, ownerID, id string, form models.EventForm) (models.Evento, error) {
	if err := requireOwner(ctx, s.validator, ownerID); err != nil {
		return models.Evento{}, err
	}

	var updated models.Evento
	err := s.queue.Do(ctx, ownerID, func(ctx context.Context) error {
		current, err := s.owned(ctx, ownerID, id)
		if err != nil {
			return err
		}

		updated = current
		updated.Title = strings.TrimSpace(form.Title)
		updated.Description = form.Description
		updated.Date = strings.TrimSpace(form.Date)
		updated.UpdatedAt = models.Timestamp(s.now())

		if err = s.validator.Validate(ctx, updated); err != nil {
			return err
		}

		if err = s.events.Update(ctx, updated); err != nil {
			return fmt.Errorf("update event: %w", s.local.wrap(err))
		}

		s.mirror.upsert(ctx, models.KindEvents, ownerID, updated.ID, func(ctx context.Context) error {
			return s.remote.Put(ctx, updated)
		})
		return nil
	})
	if err != nil {
		s.logger.Err(err).Str("func", "eventService.Update").Str("id", id).Msg("failed to update event")
		return models.Evento{}, err
	}

	s.hub.notify(ownerID)
	return updated, nil
}

func (s *eventService) Delete(ctx context.Context, ownerID, id string) error {
	if err := requireOwner(ctx, s.validator, ownerID); err != nil {
		return err
	}

	err := s.queue.Do(ctx, ownerID, func(ctx context.Context) error {
		if _, err := s.owned(ctx, ownerID, id); err != nil {
			return err
		}

		if err := s.events.Delete(ctx, id); err != nil {
			return fmt.Errorf("delete event: %w", s.local.wrap(err))
		}

		s.mirror.delete(ctx, models.KindEvents, ownerID, id, func(ctx context.Context) error {
			return s.remote.Delete(ctx, id, ownerID)
		})
		return nil
	})
	if err != nil {
		s.logger.Err(err).Str("func", "eventService.Delete").Str("id", id).Msg("failed to delete event")
		return err
	}

	s.hub.notify(ownerID)
	return nil
}

func (s *eventService) DeleteAllForOwner(ctx context.Context, ownerID string) error {
	if err := requireOwner(ctx, s.validator, ownerID); err != nil {
		return err
	}

	err := s.queue.Do(ctx, ownerID, func(ctx context.Context) error {
		if err := s.events.DeleteAllForOwner(ctx, ownerID); err != nil {
			return fmt.Errorf("delete events of owner: %w", s.local.wrap(err))
		}

		s.mirror.deleteAll(ctx, models.KindEvents, ownerID, func(ctx context.Context) error {
			return s.remote.DeleteByOwner(ctx, ownerID)
		})
		return nil
	})
	if err != nil {
		s.logger.Err(err).Str("func", "eventService.DeleteAllForOwner").Str("owner_id", ownerID).Msg("failed to delete events")
		return err
	}

	s.hub.notify(ownerID)
	return nil
}

func (s *eventService) Get(ctx context.Context, ownerID, id string) (models.Evento, error) {
	if err := requireOwner(ctx, s.validator, ownerID); err != nil {
		return models.Evento{}, err
	}
	return s.owned(ctx, ownerID, id)
}

func (s *eventService) GetAll(ctx context.Context, ownerID string) ([]models.Evento, error) {
	if err := requireOwner(ctx, s.validator, ownerID); err != nil {
		return nil, err
	}

	events, err := s.events.GetAllForOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("get events: %w", s.local.wrap(err))
	}
	return events, nil
}

func (s *eventService) WatchAll(ctx context.Context, ownerID string) <-chan []models.Evento {
	return watch(ctx, s.hub, ownerID, func(ctx context.Context) ([]models.Evento, error) {
		return s.GetAll(ctx, ownerID)
	})
}

func (s *eventService) Search(ctx context.Context, ownerID, query string) ([]models.Evento, error) {
	return s.AdvancedSearch(ctx, ownerID, models.AllFields(query))
}

func (s *eventService) AdvancedSearch(ctx context.Context, ownerID string, search models.EventSearch) ([]models.Evento, error) {
	if err := requireOwner(ctx, s.validator, ownerID); err != nil {
		return nil, err
	}

	events, err := s.events.AdvancedSearch(ctx, ownerID, search)
	if err != nil {
		return nil, fmt.Errorf("search events: %w", s.local.wrap(err))
	}
	return events, nil
}

func (s *eventService) WatchSearch(ctx context.Context, ownerID string, search models.EventSearch) <-chan []models.Evento {
	return watch(ctx, s.hub, ownerID, func(ctx context.Context) ([]models.Evento, error) {
		return s.AdvancedSearch(ctx, ownerID, search)
	})
}

func (s *eventService) owned(ctx context.Context, ownerID, id string) (models.Evento, error) {
	ev, err := s.events.GetByID(ctx, id)
	if err != nil {
		return models.Evento{}, fmt.Errorf("get event %s: %w", id, s.local.wrap(err))
	}
	if ev.OwnerID != ownerID {
		return models.Evento{}, fmt.Errorf("get event %s: %w", id, store.ErrRecordNotFound)
	}
	return ev, nil
}
