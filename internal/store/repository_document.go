// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/MKhiriev/beer-battle/internal/logger"
	"github.com/MKhiriev/beer-battle/models"
)

const tableDocuments = "documents"

var documentColumns = []string{"collection", "id", "owner_id", "fields", "updated_at"}

// postgres is the statement builder of the document store ($n placeholders).
var postgres = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// upsertDocumentSuffix refuses to move a document to another owner: the
// conflicting row is left untouched and RETURNING yields nothing.
const upsertDocumentSuffix = `ON CONFLICT (collection, id) DO UPDATE SET
			fields     = EXCLUDED.fields,
			updated_at = EXCLUDED.updated_at
		WHERE documents.owner_id = EXCLUDED.owner_id
		RETURNING collection, id, owner_id, fields, updated_at`

// documentRepository is the PostgreSQL implementation of [DocumentRepository].
type documentRepository struct {
	*DB
	x      *sqlx.DB
	logger *logger.Logger
}

func NewDocumentRepository(db *DB, logger *logger.Logger) DocumentRepository {
	logger.Debug().Msg("creating document repository")
	return &documentRepository{
		DB:     db,
		x:      sqlx.NewDb(db.DB, "pgx"),
		logger: logger,
	}
}

type documentRow struct {
	Collection string     `db:"collection"`
	ID         string     `db:"id"`
	OwnerID    string     `db:"owner_id"`
	Fields     jsonFields `db:"fields"`
	UpdatedAt  time.Time  `db:"updated_at"`
}

func (r documentRow) toModel() models.StoredDocument {
	return models.StoredDocument{
		Collection: r.Collection,
		Document: models.Document{
			ID:      r.ID,
			OwnerID: r.OwnerID,
			Fields:  map[string]any(r.Fields),
		},
		UpdatedAt: r.UpdatedAt.UTC(),
	}
}

func (d *documentRepository) Upsert(ctx context.Context, doc models.StoredDocument) (models.StoredDocument, error) {
	log := logger.FromContext(ctx)

	fields, err := jsonFields(doc.Fields).Value()
	if err != nil {
		return models.StoredDocument{}, err
	}

	query, args, err := postgres.Insert(tableDocuments).
		Columns(documentColumns...).
		Values(doc.Collection, doc.ID, doc.OwnerID, fields, doc.UpdatedAt).
		Suffix(upsertDocumentSuffix).
		ToSql()
	if err != nil {
		return models.StoredDocument{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var row documentRow
	err = d.x.GetContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		log.Warn().
			Str("func", "documentRepository.Upsert").
			Str("collection", doc.Collection).
			Str("id", doc.ID).
			Str("owner_id", doc.OwnerID).
			Msg("document id is owned by another owner")
		return models.StoredDocument{}, ErrDocumentOwnerMismatch
	}
	if err != nil {
		log.Err(err).
			Str("func", "documentRepository.Upsert").
			Str("collection", doc.Collection).
			Str("id", doc.ID).
			Str("pg_code", postgresError(err)).
			Msg("failed to upsert document")
		return models.StoredDocument{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return row.toModel(), nil
}

func (d *documentRepository) Get(ctx context.Context, collection, id, ownerID string) (models.StoredDocument, error) {
	log := logger.FromContext(ctx)

	query, args, err := postgres.Select(documentColumns...).
		From(tableDocuments).
		Where(sq.Eq{"collection": collection, "id": id, "owner_id": ownerID}).
		ToSql()
	if err != nil {
		return models.StoredDocument{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var row documentRow
	err = d.x.GetContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return models.StoredDocument{}, ErrRecordNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "documentRepository.Get").
			Str("collection", collection).
			Str("id", id).
			Msg("failed to get document")
		return models.StoredDocument{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return row.toModel(), nil
}

func (d *documentRepository) ListByOwner(ctx context.Context, collection, ownerID string) ([]models.StoredDocument, error) {
	log := logger.FromContext(ctx)

	query, args, err := postgres.Select(documentColumns...).
		From(tableDocuments).
		Where(sq.Eq{"collection": collection, "owner_id": ownerID}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var rows []documentRow
	if err = d.x.SelectContext(ctx, &rows, query, args...); err != nil {
		log.Err(err).
			Str("func", "documentRepository.ListByOwner").
			Str("collection", collection).
			Str("owner_id", ownerID).
			Msg("failed to list documents")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	docs := make([]models.StoredDocument, 0, len(rows))
	for _, row := range rows {
		docs = append(docs, row.toModel())
	}
	return docs, nil
}

// Delete removes one document. Deleting a missing document is not an error.
func (d *documentRepository) Delete(ctx context.Context, collection, id, ownerID string) error {
	_, err := exec(ctx, d.DB, "documentRepository.Delete",
		postgres.Delete(tableDocuments).
			Where(sq.Eq{"collection": collection, "id": id, "owner_id": ownerID}))
	return err
}

func (d *documentRepository) DeleteByOwner(ctx context.Context, collection, ownerID string) (int64, error) {
	return exec(ctx, d.DB, "documentRepository.DeleteByOwner",
		postgres.Delete(tableDocuments).
			Where(sq.Eq{"collection": collection, "owner_id": ownerID}))
}

// jsonFields is a flat document field map stored as jsonb. Numbers decode
// as json.Number so integers survive the round trip exactly.
type jsonFields map[string]any

func (f jsonFields) Value() (driver.Value, error) {
	if f == nil {
		return "{}", nil
	}
	b, err := json.Marshal(map[string]any(f))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingFields, err)
	}
	return string(b), nil
}

func (f *jsonFields) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*f = jsonFields{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("%w: unexpected column type %T", ErrEncodingFields, src)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	fields := make(map[string]any)
	if err := dec.Decode(&fields); err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingFields, err)
	}
	*f = fields
	return nil
}
