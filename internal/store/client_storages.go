package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/beer-battle/internal/config"
	"github.com/MKhiriev/beer-battle/internal/logger"
)

// ClientStorages groups the repositories of the local cache. One instance is
// opened by the client composition root and shared by every service.
type ClientStorages struct {
	AlcoholRecords AlcoholRecordRepository
	Events         EventRepository
	Notes          NoteRepository
	Users          UserRepository
	PendingWrites  PendingWriteRepository

	db *DB
}

// NewClientStorages opens the SQLite cache at cfg.DB.DSN, creating the file
// when missing, and migrates it to the latest schema.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.MigrateClient(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newClientStorages(db, logger), nil
}

func newClientStorages(db *DB, logger *logger.Logger) *ClientStorages {
	return &ClientStorages{
		AlcoholRecords: NewAlcoholRecordRepository(db, logger),
		Events:         NewEventRepository(db, logger),
		Notes:          NewNoteRepository(db, logger),
		Users:          NewUserRepository(db, logger),
		PendingWrites:  NewPendingWriteRepository(db, logger),
		db:             db,
	}
}

// IsRetryable reports whether err is a transient local database error.
func (s *ClientStorages) IsRetryable(err error) bool {
	if s.db == nil {
		return false
	}
	return s.db.IsRetryable(err)
}

// Close releases the database handle.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
