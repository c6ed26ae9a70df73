// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/beer-battle/internal/logger"
	"github.com/MKhiriev/beer-battle/models"
)

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return &DB{
		DB:                 conn,
		errorClassificator: NewSQLiteErrorClassifier(),
		logger:             logger.Nop(),
	}, mock
}

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: NonRetryable},
		{name: "plain error", err: errors.New("boom"), want: NonRetryable},
		{name: "deadlock", err: &pgconn.PgError{Code: pgerrcode.DeadlockDetected}, want: Retryable},
		{name: "wrapped connection failure", err: fmt.Errorf("x: %w", &pgconn.PgError{Code: pgerrcode.ConnectionFailure}), want: Retryable},
		{name: "cannot connect now", err: &pgconn.PgError{Code: pgerrcode.CannotConnectNow}, want: Retryable},
		{name: "serialization failure", err: &pgconn.PgError{Code: pgerrcode.SerializationFailure}, want: Retryable},
		{name: "too many connections", err: &pgconn.PgError{Code: pgerrcode.TooManyConnections}, want: Retryable},
		{name: "query canceled", err: &pgconn.PgError{Code: pgerrcode.QueryCanceled}, want: NonRetryable},
		{name: "unique violation", err: &pgconn.PgError{Code: pgerrcode.UniqueViolation}, want: NonRetryable},
		{name: "syntax error", err: &pgconn.PgError{Code: pgerrcode.SyntaxError}, want: NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	assert.Equal(t, Retryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrBusy}))
	assert.Equal(t, Retryable, c.Classify(fmt.Errorf("wrapped: %w", sqlite3.Error{Code: sqlite3.ErrLocked})))
	assert.Equal(t, NonRetryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrConstraint}))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("boom")))
}

func TestDB_IsRetryable(t *testing.T) {
	db, _ := newMockDB(t)
	assert.True(t, db.IsRetryable(sqlite3.Error{Code: sqlite3.ErrBusy}))
	assert.False(t, db.IsRetryable(errors.New("boom")))

	db.errorClassificator = nil
	assert.False(t, db.IsRetryable(sqlite3.Error{Code: sqlite3.ErrBusy}))
}

func TestSelectAll_QueryError(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("SELECT .* FROM alcohol_records").WillReturnError(errors.New("disk I/O error"))

	_, err := NewAlcoholRecordRepository(db, logger.Nop()).GetAllForOwner(context.Background(), "alice")
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSelectAll_RowError(t *testing.T) {
	db, mock := newMockDB(t)
	rows := sqlmock.NewRows(eventoColumns).
		AddRow("e1", "alice", "t", "d", "", int64(1), int64(1)).
		RowError(0, errors.New("row broke"))
	mock.ExpectQuery("SELECT .* FROM eventos").WillReturnRows(rows)

	_, err := NewEventRepository(db, logger.Nop()).GetAllForOwner(context.Background(), "alice")
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSelectOne_ScanError(t *testing.T) {
	db, mock := newMockDB(t)
	rows := sqlmock.NewRows(alcoholRecordColumns).
		AddRow("r1", "alice", "not-a-date", 1, "Lager", 500, 5.0, "2026-10-18", int64(1), int64(1))
	mock.ExpectQuery("SELECT .* FROM alcohol_records WHERE id = \\? LIMIT 1").WithArgs("r1").WillReturnRows(rows)

	_, err := NewAlcoholRecordRepository(db, logger.Nop()).GetByID(context.Background(), "r1")
	assert.ErrorIs(t, err, ErrScanningRow)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceAll_BeginError(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin().WillReturnError(errors.New("busy"))

	err := NewUserRepository(db, logger.Nop()).InsertOrReplace(context.Background(),
		models.Usuario{ID: "u1", Name: "a"}, models.Usuario{ID: "u2", Name: "b"})
	assert.ErrorIs(t, err, ErrBeginningTransaction)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceAll_RollsBackOnFailure(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectExec("REPLACE INTO notas").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("REPLACE INTO notas").WillReturnError(errors.New("constraint failed"))
	mock.ExpectRollback()

	err := NewNoteRepository(db, logger.Nop()).InsertOrReplace(context.Background(),
		models.Nota{ID: "n1", Title: "a"}, models.Nota{ID: "n2", Title: "b"})
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceAll_CommitError(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectExec("REPLACE INTO eventos").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("REPLACE INTO eventos").WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit().WillReturnError(errors.New("disk full"))

	err := NewEventRepository(db, logger.Nop()).InsertOrReplace(context.Background(),
		models.Evento{ID: "e1"}, models.Evento{ID: "e2"})
	assert.ErrorIs(t, err, ErrCommitingTransaction)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContainsPattern(t *testing.T) {
	assert.Equal(t, "%lager%", containsPattern("lager"))
	assert.Equal(t, `%100\%%`, containsPattern("100%"))
	assert.Equal(t, `%a\_b%`, containsPattern("a_b"))
	assert.Equal(t, `%c:\\d%`, containsPattern(`c:\d`))
}
