// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemorySQLite(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	// every connection to :memory: is a separate database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	return db
}

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE name = ?`, name).Scan(&count)
	require.NoError(t, err)
	return count > 0
}

func TestMigrate_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// no expectations: the first goose query fails
	err = MigrateServer(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	err := MigrateClient(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db is nil")
}

func TestMigrateClient_CreatesSchema(t *testing.T) {
	db := newMemorySQLite(t)

	require.NoError(t, MigrateClient(db))

	for _, name := range []string{
		"usuarios",
		"alcohol_records",
		"idx_alcohol_records_owner_week",
		"idx_alcohol_records_owner_day",
		"eventos",
		"notas",
		"pending_writes",
	} {
		assert.True(t, tableExists(t, db, name), "%s must exist", name)
	}

	// running again is a no-op
	require.NoError(t, MigrateClient(db))
}

func TestMigrateClient_UpgradesLegacyInstall(t *testing.T) {
	db := newMemorySQLite(t)

	require.NoError(t, setup(clientDialect))
	require.NoError(t, goose.UpTo(db, clientDir, 1))
	require.False(t, tableExists(t, db, "alcohol_records"))

	_, err := db.Exec(`INSERT INTO usuarios (id, name, age, created_at) VALUES ('u1', 'Ana', 30, 0)`)
	require.NoError(t, err)

	require.NoError(t, MigrateClient(db))

	assert.True(t, tableExists(t, db, "alcohol_records"))
	assert.True(t, tableExists(t, db, "idx_alcohol_records_owner_week"))

	var name string
	require.NoError(t, db.QueryRow(`SELECT name FROM usuarios WHERE id = 'u1'`).Scan(&name))
	assert.Equal(t, "Ana", name)
}
