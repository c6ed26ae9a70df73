package store

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/beer-battle/internal/logger"
	"github.com/MKhiriev/beer-battle/models"
)

type noteRepository struct {
	*DB
	logger *logger.Logger
}

func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	return &noteRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *noteRepository) GetAll(ctx context.Context) ([]models.Nota, error) {
	query := sqlite.Select(notaColumns...).From(tableNotas).OrderBy("created_at DESC")

	return selectAll(ctx, r.DB, "noteRepository.GetAll", query, scanNota)
}

func (r *noteRepository) GetByID(ctx context.Context, id string) (models.Nota, error) {
	query := sqlite.Select(notaColumns...).From(tableNotas).Where(sq.Eq{"id": id})

	return selectOne(ctx, r.DB, "noteRepository.GetByID", query, scanNota)
}

// Search matches notes whose title or content contains query.
func (r *noteRepository) Search(ctx context.Context, query string) ([]models.Nota, error) {
	q := sqlite.Select(notaColumns...).
		From(tableNotas).
		Where(sq.Or{contains("title", query), contains("content", query)}).
		OrderBy("created_at DESC")

	return selectAll(ctx, r.DB, "noteRepository.Search", q, scanNota)
}

func (r *noteRepository) InsertOrReplace(ctx context.Context, notes ...models.Nota) error {
	statements := make([]sq.Sqlizer, 0, len(notes))
	for _, n := range notes {
		statements = append(statements, sqlite.Replace(tableNotas).
			Columns(notaColumns...).
			Values(n.ID, n.Title, n.Content, n.CreatedAt.UnixMilli()))
	}

	return replaceAll(ctx, r.DB, "noteRepository.InsertOrReplace", statements)
}

func (r *noteRepository) Update(ctx context.Context, n models.Nota) error {
	stmt := sqlite.Update(tableNotas).
		Set("title", n.Title).
		Set("content", n.Content).
		Where(sq.Eq{"id": n.ID})

	affected, err := exec(ctx, r.DB, "noteRepository.Update", stmt)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (r *noteRepository) Delete(ctx context.Context, id string) error {
	_, err := exec(ctx, r.DB, "noteRepository.Delete", sqlite.Delete(tableNotas).Where(sq.Eq{"id": id}))
	return err
}

func scanNota(row rowScanner) (models.Nota, error) {
	var (
		n         models.Nota
		createdAt int64
	)
	if err := row.Scan(&n.ID, &n.Title, &n.Content, &createdAt); err != nil {
		return models.Nota{}, err
	}
	n.CreatedAt = time.UnixMilli(createdAt).UTC()
	return n, nil
}
