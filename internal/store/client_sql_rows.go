package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/beer-battle/internal/logger"
)

type rowScanner interface {
	Scan(dest ...any) error
}

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// selectAll runs query and scans every row with scan.
func selectAll[T any](ctx context.Context, db *DB, funcName string, query sq.SelectBuilder, scan func(rowScanner) (T, error)) ([]T, error) {
	log := logger.FromContext(ctx)

	stmt, args, err := query.ToSql()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := db.QueryContext(ctx, stmt, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]T, 0, 16)
	for rows.Next() {
		item, scanErr := scan(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", funcName).Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		results = append(results, item)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return results, nil
}

// selectOne runs query and scans its single row. No row is [ErrRecordNotFound].
func selectOne[T any](ctx context.Context, db *DB, funcName string, query sq.SelectBuilder, scan func(rowScanner) (T, error)) (T, error) {
	log := logger.FromContext(ctx)
	var zero T

	stmt, args, err := query.Limit(1).ToSql()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to build query")
		return zero, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	item, err := scan(db.QueryRowContext(ctx, stmt, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return zero, ErrRecordNotFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to scan row")
		return zero, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return item, nil
}

// exec runs a write statement and returns the number of affected rows.
func exec(ctx context.Context, conn execer, funcName string, query sq.Sqlizer) (int64, error) {
	log := logger.FromContext(ctx)

	stmt, args, err := query.ToSql()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to build statement")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := conn.ExecContext(ctx, stmt, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute statement")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, _ := result.RowsAffected()
	return affected, nil
}

// replaceAll writes every statement, inside one transaction when there is
// more than one.
func replaceAll(ctx context.Context, db *DB, funcName string, statements []sq.Sqlizer) error {
	switch len(statements) {
	case 0:
		return nil
	case 1:
		_, err := exec(ctx, db, funcName, statements[0])
		return err
	}

	return db.inTx(ctx, func(tx *sql.Tx) error {
		for _, s := range statements {
			if _, err := exec(ctx, tx, funcName, s); err != nil {
				return err
			}
		}
		return nil
	})
}
