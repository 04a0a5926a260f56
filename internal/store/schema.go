package store

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// Table names.
const (
	storageTable = "storage"
	eventsTable  = "events"
)

// Event kinds.
const (
	KindSession    = "session"
	KindAnalysis   = "analysis"
	KindLLMRequest = "llm_request"
)

func builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

// Table definitions. Both are append-compatible: columns are never dropped.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS ` + storageTable + ` (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS ` + eventsTable + ` (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		kind       TEXT NOT NULL,
		session_id TEXT NOT NULL DEFAULT '',
		payload    TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_events_kind_id ON ` + eventsTable + ` (kind, id)`,
}

// migrate creates the storage and event tables when they are missing.
func migrate(ctx context.Context, drv *entsql.Driver) error {
	for _, stmt := range schema {
		if err := drv.Exec(ctx, stmt, []any{}, nil); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}
