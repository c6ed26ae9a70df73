// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
)

const (
	tableAlcoholRecords = "alcohol_records"
	tableEventos        = "eventos"
	tableNotas          = "notas"
	tableUsuarios       = "usuarios"
	tablePendingWrites  = "pending_writes"
)

var (
	alcoholRecordColumns = []string{
		"id", "owner_id", "date", "day_of_week", "drink_name",
		"milliliters", "percentage", "week_start", "created_at", "updated_at",
	}

	eventoColumns = []string{"id", "owner_id", "title", "description", "date", "created_at", "updated_at"}

	notaColumns = []string{"id", "title", "content", "created_at"}

	usuarioColumns = []string{"id", "name", "age", "created_at"}

	pendingWriteColumns = []string{"id", "collection", "document_id", "owner_id", "op", "created_at"}
)

// sqlite is the statement builder of the local cache (? placeholders).
var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern turns a search query into a LIKE pattern matching it as a
// literal substring.
func containsPattern(query string) string {
	return "%" + likeEscaper.Replace(query) + "%"
}

// contains is a case-insensitive substring match on column.
func contains(column, query string) sq.Sqlizer {
	return sq.Expr(column+` LIKE ? ESCAPE '\'`, containsPattern(query))
}
