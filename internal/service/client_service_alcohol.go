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

type alcoholService struct {
	records store.AlcoholRecordRepository
	remote  remoteCollection[models.AlcoholRecord]

	local     localErrors
	mirror    *remoteMirror
	queue     *ownerQueue
	hub       *watchHub
	validator validators.Validator
	ids       utils.IDGenerator
	now       func() time.Time

	logger *logger.Logger
}

func newAlcoholService(deps clientDeps, remote remoteCollection[models.AlcoholRecord]) *alcoholService {
	return &alcoholService{
		records:   deps.storages.AlcoholRecords,
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

func (s *alcoholService) Create(ctx context.Context, ownerID string, form models.AlcoholForm) (models.AlcoholRecord, error) {
	now := s.now()

	input, err := validators.ParseAlcoholForm(form, now)
	if err != nil {
		return models.AlcoholRecord{}, err
	}

	rec := models.NewAlcoholRecord(s.ids.Generate(), ownerID, input.Date, input.DrinkName, input.Milliliters, input.Percentage, now)
	if err = s.validator.Validate(ctx, rec); err != nil {
		return models.AlcoholRecord{}, err
	}

	err = s.queue.Do(ctx, ownerID, func(ctx context.Context) error {
		if err := s.records.InsertOrReplace(ctx, rec); err != nil {
			return fmt.Errorf("insert alcohol record: %w", s.local.wrap(err))
		}

		s.mirror.upsert(ctx, models.KindAlcoholRecords, ownerID, rec.ID, func(ctx context.Context) error {
			return s.remote.Put(ctx, rec)
		})
		return nil
	})
	if err != nil {
		s.logger.Err(err).Str("func", "alcoholService.Create").Str("owner_id", ownerID).Msg("failed to create alcohol record")
		return models.AlcoholRecord{}, err
	}

	s.hub.notify(ownerID)
	return rec, nil
}

func (s *alcoholService) Update(ctx context.Context, ownerID, id string, form models.AlcoholForm) (models.AlcoholRecord, error) {
	now := s.now()

	input, err := validators.ParseAlcoholForm(form, now)
	if err != nil {
		return models.AlcoholRecord{}, err
	}
	if err = requireOwner(ctx, s.validator, ownerID); err != nil {
		return models.AlcoholRecord{}, err
	}

	var updated models.AlcoholRecord
	err = s.queue.Do(ctx, ownerID, func(ctx context.Context) error {
		current, err := s.owned(ctx, ownerID, id)
		if err != nil {
			return err
		}

		date := input.Date
		if strings.TrimSpace(form.Date) == "" {
			date = current.Date
		}

		updated = models.NewAlcoholRecord(current.ID, ownerID, date, input.DrinkName, input.Milliliters, input.Percentage, now)
		updated.CreatedAt = current.CreatedAt

		if err = s.records.Update(ctx, updated); err != nil {
			return fmt.Errorf("update alcohol record: %w", s.local.wrap(err))
		}

		s.mirror.upsert(ctx, models.KindAlcoholRecords, ownerID, updated.ID, func(ctx context.Context) error {
			return s.remote.Put(ctx, updated)
		})
		return nil
	})
	if err != nil {
		s.logger.Err(err).Str("func", "alcoholService.Update").Str("id", id).Msg("failed to update alcohol record")
		return models.AlcoholRecord{}, err
	}

	s.hub.notify(ownerID)
	return updated, nil
}

func (s *alcoholService) Delete(ctx context.Context, ownerID, id string) error {
	if err := requireOwner(ctx, s.validator, ownerID); err != nil {
		return err
	}

	err := s.queue.Do(ctx, ownerID, func(ctx context.Context) error {
		if _, err := s.owned(ctx, ownerID, id); err != nil {
			return err
		}

		if err := s.records.Delete(ctx, id); err != nil {
			return fmt.Errorf("delete alcohol record: %w", s.local.wrap(err))
		}

		s.mirror.delete(ctx, models.KindAlcoholRecords, ownerID, id, func(ctx context.Context) error {
			return s.remote.Delete(ctx, id, ownerID)
		})
		return nil
	})
	if err != nil {
		s.logger.Err(err).Str("func", "alcoholService.Delete").Str("id", id).Msg("failed to delete alcohol record")
		return err
	}

	s.hub.notify(ownerID)
	return nil
}

func (s *alcoholService) DeleteAllForOwner(ctx context.Context, ownerID string) error {
	if err := requireOwner(ctx, s.validator, ownerID); err != nil {
		return err
	}

	err := s.queue.Do(ctx, ownerID, func(ctx context.Context) error {
		if err := s.records.DeleteAllForOwner(ctx, ownerID); err != nil {
			return fmt.Errorf("delete alcohol records of owner: %w", s.local.wrap(err))
		}

		s.mirror.deleteAll(ctx, models.KindAlcoholRecords, ownerID, func(ctx context.Context) error {
			return s.remote.DeleteByOwner(ctx, ownerID)
		})
		return nil
	})
	if err != nil {
		s.logger.Err(err).Str("func", "alcoholService.DeleteAllForOwner").Str("owner_id", ownerID).Msg("failed to delete alcohol records")
		return err
	}

	s.hub.notify(ownerID)
	return nil
}

func (s *alcoholService) Get(ctx context.Context, ownerID, id string) (models.AlcoholRecord, error) {
	if err := requireOwner(ctx, s.validator, ownerID); err != nil {
		return models.AlcoholRecord{}, err
	}
	return s.owned(ctx, ownerID, id)
}

func (s *alcoholService) GetAll(ctx context.Context, ownerID string) ([]models.AlcoholRecord, error) {
	if err := requireOwner(ctx, s.validator, ownerID); err != nil {
		return nil, err
	}

	records, err := s.records.GetAllForOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("get alcohol records: %w", s.local.wrap(err))
	}
	return records, nil
}

func (s *alcoholService) GetWeek(ctx context.Context, ownerID string, weekStart time.Time) ([]models.AlcoholRecord, error) {
	if err := requireOwner(ctx, s.validator, ownerID); err != nil {
		return nil, err
	}

	records, err := s.records.GetForOwnerWeek(ctx, ownerID, models.WeekStart(weekStart))
	if err != nil {
		return nil, fmt.Errorf("get alcohol records of week: %w", s.local.wrap(err))
	}
	return records, nil
}

func (s *alcoholService) GetDay(ctx context.Context, ownerID string, day time.Time) ([]models.AlcoholRecord, error) {
	if err := requireOwner(ctx, s.validator, ownerID); err != nil {
		return nil, err
	}

	records, err := s.records.GetForOwnerDay(ctx, ownerID, models.WeekStart(day), models.DayOfWeek(models.CalendarDate(day)))
	if err != nil {
		return nil, fmt.Errorf("get alcohol records of day: %w", s.local.wrap(err))
	}
	return records, nil
}

func (s *alcoholService) WatchWeek(ctx context.Context, ownerID string, weekStart time.Time) <-chan []models.AlcoholRecord {
	return watch(ctx, s.hub, ownerID, func(ctx context.Context) ([]models.AlcoholRecord, error) {
		return s.GetWeek(ctx, ownerID, weekStart)
	})
}

func (s *alcoholService) Search(ctx context.Context, ownerID, query string) ([]models.AlcoholRecord, error) {
	if err := requireOwner(ctx, s.validator, ownerID); err != nil {
		return nil, err
	}

	records, err := s.records.Search(ctx, ownerID, query)
	if err != nil {
		return nil, fmt.Errorf("search alcohol records: %w", s.local.wrap(err))
	}
	return records, nil
}

func (s *alcoholService) WatchSearch(ctx context.Context, ownerID, query string) <-chan []models.AlcoholRecord {
	return watch(ctx, s.hub, ownerID, func(ctx context.Context) ([]models.AlcoholRecord, error) {
		return s.Search(ctx, ownerID, query)
	})
}

func (s *alcoholService) WeeklySummary(ctx context.Context, ownerID string, weekStart time.Time) (models.WeeklySummary, error) {
	records, err := s.GetWeek(ctx, ownerID, weekStart)
	if err != nil {
		return models.WeeklySummary{}, err
	}
	return models.SummarizeWeek(ownerID, weekStart, records), nil
}

// owned loads the record id and hides records of other owners.
func (s *alcoholService) owned(ctx context.Context, ownerID, id string) (models.AlcoholRecord, error) {
	rec, err := s.records.GetByID(ctx, id)
	if err != nil {
		return models.AlcoholRecord{}, fmt.Errorf("get alcohol record %s: %w", id, s.local.wrap(err))
	}
	if rec.OwnerID != ownerID {
		return models.AlcoholRecord{}, fmt.Errorf("get alcohol record %s: %w", id, store.ErrRecordNotFound)
	}
	return rec, nil
}
