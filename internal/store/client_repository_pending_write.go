package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/beer-battle/internal/logger"
	"github.com/MKhiriev/beer-battle/models"
)

type pendingWriteRepository struct {
	*DB
	logger *logger.Logger
}

func NewPendingWriteRepository(db *DB, logger *logger.Logger) PendingWriteRepository {
	return &pendingWriteRepository{
		DB:     db,
		logger: logger,
	}
}

// Add records a failed remote write and returns its outbox id.
func (r *pendingWriteRepository) Add(ctx context.Context, w models.PendingWrite) (int64, error) {
	log := logger.FromContext(ctx)

	stmt, args, err := sqlite.Insert(tablePendingWrites).
		Columns(pendingWriteColumns[1:]...).
		Values(w.Collection, w.DocumentID, w.OwnerID, string(w.Op), w.CreatedAt.UnixMilli()).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, stmt, args...)
	if err != nil {
		log.Err(err).
			Str("func", "pendingWriteRepository.Add").
			Str("collection", w.Collection).
			Str("document_id", w.DocumentID).
			Msg("failed to record pending write")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return result.LastInsertId()
}

// ListForOwner returns the owner's pending writes for collection, oldest
// first.
func (r *pendingWriteRepository) ListForOwner(ctx context.Context, ownerID, collection string) ([]models.PendingWrite, error) {
	query := sqlite.Select(pendingWriteColumns...).
		From(tablePendingWrites).
		Where(sq.Eq{"owner_id": ownerID, "collection": collection}).
		OrderBy("id")

	return selectAll(ctx, r.DB, "pendingWriteRepository.ListForOwner", query, scanPendingWrite)
}

func (r *pendingWriteRepository) Remove(ctx context.Context, id int64) error {
	_, err := exec(ctx, r.DB, "pendingWriteRepository.Remove",
		sqlite.Delete(tablePendingWrites).Where(sq.Eq{"id": id}))
	return err
}

func scanPendingWrite(row rowScanner) (models.PendingWrite, error) {
	var (
		w         models.PendingWrite
		op        string
		createdAt int64
	)
	if err := row.Scan(&w.ID, &w.Collection, &w.DocumentID, &w.OwnerID, &op, &createdAt); err != nil {
		return models.PendingWrite{}, err
	}
	w.Op = models.PendingOp(op)
	w.CreatedAt = time.UnixMilli(createdAt).UTC()
	return w, nil
}
