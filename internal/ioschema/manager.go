// Package ioschema implements SchemaManager on the local SQLite
// database through GORM AutoMigrate. This is an impure I/O package
// that implements contracts defined in pkg/.
package ioschema

import (
	"context"

	"github.com/sakemonkey/sakedb/pkg/db"
	"github.com/sakemonkey/sakedb/pkg/sakedb"
	"github.com/sakemonkey/sakedb/pkg/schema"
)

// manager implements the sakedb.SchemaManager interface using
// GORM AutoMigrate.
type manager struct {
	store db.Store
}

// New creates a new SchemaManager bound to a connected store.
func New(store db.Store) sakedb.SchemaManager {
	return &manager{store: store}
}

// Create creates or updates the schema for the four entity tables.
// AutoMigrate is idempotent, so Create doubles as migration when
// models gain columns.
func (m *manager) Create(ctx context.Context) error {
	gdb := m.store.DB()
	if gdb == nil {
		return NotConnectedError()
	}

	if err := schema.Migrate(gdb.WithContext(ctx)); err != nil {
		return CreateSchemaError(err)
	}

	return nil
}
