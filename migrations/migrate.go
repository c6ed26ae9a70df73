// Package migrations embeds the goose schema migrations of both binaries:
// the client's local SQLite cache (client/) and the server's PostgreSQL
// document store (server/).
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

const (
	clientDir = "client"
	serverDir = "server"

	clientDialect = "sqlite3"
	serverDialect = "pgx"
)

//go:embed client/*.sql server/*.sql
var embedMigrations embed.FS

var errNilDB = errors.New("migration error: db is nil")

// MigrateClient brings the local cache schema up to date. An install that
// only has the legacy usuarios table gains the alcohol record table and its
// indices here.
func MigrateClient(db *sql.DB) error {
	return migrate(db, clientDialect, clientDir)
}

// MigrateServer brings the remote document store schema up to date.
func MigrateServer(db *sql.DB) error {
	return migrate(db, serverDialect, serverDir)
}

func migrate(db *sql.DB, dialect, dir string) error {
	if db == nil {
		return errNilDB
	}

	if err := setup(dialect); err != nil {
		return err
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

func setup(dialect string) error {
	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	return nil
}
