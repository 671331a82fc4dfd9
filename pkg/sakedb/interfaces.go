package sakedb

import (
	"context"
)

// SchemaManager defines the interface for local database schema management.
// It uses GORM AutoMigrate, so creation is idempotent and doubles as
// migration when models gain columns.
type SchemaManager interface {
	// Create creates or updates the local SQLite schema for all four
	// entity tables.
	Create(ctx context.Context) error
}

// Syncer reconciles the local database with the remote spreadsheet.
//
// Pull is remote-wins with merge semantics: a blank remote cell never
// clears a locally held value. Push is strictly additive: records whose
// primary key is already present remotely are never rewritten, so local
// edits to already-pushed records do not propagate outward.
type Syncer interface {
	// Verify confirms the transport can read the spreadsheet metadata
	// and returns its title. It distinguishes not-found, forbidden and
	// wrong-resource-type failures.
	Verify(ctx context.Context) (string, error)

	// Pull imports all entity sheets into the local store in dependency
	// order. Each entity commits as one batch; a failed entity does not
	// roll back entities already committed.
	Pull(ctx context.Context) (*Result, error)

	// Push appends local-only records to the remote sheets. Running Push
	// twice in a row appends nothing on the second run.
	Push(ctx context.Context) (*Result, error)

	// Backup mirrors the local database onto the sheets, replacing
	// their content outright. Unlike Push it rewrites existing rows and
	// clears stale ones, so it is gated behind its own command.
	Backup(ctx context.Context) (*Result, error)
}
