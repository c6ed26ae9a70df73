package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/beer-battle/internal/logger"
	"github.com/MKhiriev/beer-battle/models"
)

type alcoholRecordRepository struct {
	*DB
	logger *logger.Logger
}

func NewAlcoholRecordRepository(db *DB, logger *logger.Logger) AlcoholRecordRepository {
	return &alcoholRecordRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *alcoholRecordRepository) selectRecords() sq.SelectBuilder {
	return sqlite.Select(alcoholRecordColumns...).From(tableAlcoholRecords)
}

func (r *alcoholRecordRepository) GetAllForOwner(ctx context.Context, ownerID string) ([]models.AlcoholRecord, error) {
	query := r.selectRecords().
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("date DESC", "created_at DESC")

	return selectAll(ctx, r.DB, "alcoholRecordRepository.GetAllForOwner", query, scanAlcoholRecord)
}

func (r *alcoholRecordRepository) GetByID(ctx context.Context, id string) (models.AlcoholRecord, error) {
	query := r.selectRecords().Where(sq.Eq{"id": id})

	return selectOne(ctx, r.DB, "alcoholRecordRepository.GetByID", query, scanAlcoholRecord)
}

func (r *alcoholRecordRepository) GetForOwnerWeek(ctx context.Context, ownerID string, weekStart time.Time) ([]models.AlcoholRecord, error) {
	query := r.selectRecords().
		Where(sq.Eq{"owner_id": ownerID, "week_start": models.FormatDate(weekStart)}).
		OrderBy("date", "created_at")

	return selectAll(ctx, r.DB, "alcoholRecordRepository.GetForOwnerWeek", query, scanAlcoholRecord)
}

func (r *alcoholRecordRepository) GetForOwnerDay(ctx context.Context, ownerID string, weekStart time.Time, dayOfWeek int) ([]models.AlcoholRecord, error) {
	query := r.selectRecords().
		Where(sq.Eq{
			"owner_id":    ownerID,
			"week_start":  models.FormatDate(weekStart),
			"day_of_week": dayOfWeek,
		}).
		OrderBy("created_at")

	return selectAll(ctx, r.DB, "alcoholRecordRepository.GetForOwnerDay", query, scanAlcoholRecord)
}

func (r *alcoholRecordRepository) Search(ctx context.Context, ownerID, query string) ([]models.AlcoholRecord, error) {
	q := r.selectRecords().
		Where(sq.Eq{"owner_id": ownerID}).
		Where(contains("drink_name", query)).
		OrderBy("date DESC", "created_at DESC")

	return selectAll(ctx, r.DB, "alcoholRecordRepository.Search", q, scanAlcoholRecord)
}

func (r *alcoholRecordRepository) InsertOrReplace(ctx context.Context, records ...models.AlcoholRecord) error {
	statements := make([]sq.Sqlizer, 0, len(records))
	for _, rec := range records {
		statements = append(statements, sqlite.Replace(tableAlcoholRecords).
			Columns(alcoholRecordColumns...).
			Values(alcoholRecordValues(rec)...))
	}

	if err := replaceAll(ctx, r.DB, "alcoholRecordRepository.InsertOrReplace", statements); err != nil {
		return fmt.Errorf("failed to save alcohol records: %w", err)
	}
	return nil
}

func (r *alcoholRecordRepository) Update(ctx context.Context, rec models.AlcoholRecord) error {
	stmt := sqlite.Update(tableAlcoholRecords).
		SetMap(map[string]any{
			"owner_id":    rec.OwnerID,
			"date":        models.FormatDate(rec.Date),
			"day_of_week": rec.DayOfWeek,
			"drink_name":  rec.DrinkName,
			"milliliters": rec.Milliliters,
			"percentage":  rec.Percentage,
			"week_start":  models.FormatDate(rec.WeekStart),
			"created_at":  rec.CreatedAt.UnixMilli(),
			"updated_at":  rec.UpdatedAt.UnixMilli(),
		}).
		Where(sq.Eq{"id": rec.ID})

	affected, err := exec(ctx, r.DB, "alcoholRecordRepository.Update", stmt)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (r *alcoholRecordRepository) Delete(ctx context.Context, id string) error {
	_, err := exec(ctx, r.DB, "alcoholRecordRepository.Delete",
		sqlite.Delete(tableAlcoholRecords).Where(sq.Eq{"id": id}))
	return err
}

func (r *alcoholRecordRepository) DeleteAllForOwner(ctx context.Context, ownerID string) error {
	_, err := exec(ctx, r.DB, "alcoholRecordRepository.DeleteAllForOwner",
		sqlite.Delete(tableAlcoholRecords).Where(sq.Eq{"owner_id": ownerID}))
	return err
}

func alcoholRecordValues(rec models.AlcoholRecord) []any {
	return []any{
		rec.ID,
		rec.OwnerID,
		models.FormatDate(rec.Date),
		rec.DayOfWeek,
		rec.DrinkName,
		rec.Milliliters,
		rec.Percentage,
		models.FormatDate(rec.WeekStart),
		rec.CreatedAt.UnixMilli(),
		rec.UpdatedAt.UnixMilli(),
	}
}

func scanAlcoholRecord(row rowScanner) (models.AlcoholRecord, error) {
	var (
		rec                  models.AlcoholRecord
		date, weekStart      string
		createdAt, updatedAt int64
	)

	err := row.Scan(
		&rec.ID,
		&rec.OwnerID,
		&date,
		&rec.DayOfWeek,
		&rec.DrinkName,
		&rec.Milliliters,
		&rec.Percentage,
		&weekStart,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return models.AlcoholRecord{}, err
	}

	if rec.Date, err = models.ParseDate(date); err != nil {
		return models.AlcoholRecord{}, err
	}
	if rec.WeekStart, err = models.ParseDate(weekStart); err != nil {
		return models.AlcoholRecord{}, err
	}
	rec.CreatedAt = time.UnixMilli(createdAt).UTC()
	rec.UpdatedAt = time.UnixMilli(updatedAt).UTC()

	return rec, nil
}
