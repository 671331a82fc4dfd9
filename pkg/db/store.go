// Package db defines the contract for the local brewing database.
// The implementation lives in internal/iostore.
package db

import (
	"context"

	"github.com/sakemonkey/sakedb/pkg/config"
	"github.com/sakemonkey/sakedb/pkg/schema"
	"gorm.io/gorm"
)

// Store provides typed access to the four entity tables.
//
// All Get* methods return (nil, nil) when no record matches the key.
// All Upsert* methods merge-if-exists, insert-if-absent: a nil field on
// the incoming record never overwrites a non-nil stored field, and the
// primary key is never rewritten.
type Store interface {
	// Connect opens the SQLite database file.
	Connect(ctx context.Context, cfg *config.DatabaseConfig) error

	// Close releases the database handle.
	Close() error

	// DB exposes the underlying gorm handle for schema management.
	DB() *gorm.DB

	// HasTables reports whether the entity tables exist. Used to guard
	// sync commands against an uninitialized database.
	HasTables(ctx context.Context) (bool, error)

	// Transaction runs fn against a store bound to one transaction.
	// An error from fn rolls the whole batch back. Pull uses this to
	// commit each entity's batch atomically.
	Transaction(ctx context.Context, fn func(tx Store) error) error

	GetIngredient(ctx context.Context, id string) (*schema.Ingredient, error)
	UpsertIngredient(ctx context.Context, rec *schema.Ingredient) error
	ListIngredients(ctx context.Context) ([]schema.Ingredient, error)

	GetStarter(ctx context.Context, key string) (*schema.Starter, error)
	UpsertStarter(ctx context.Context, rec *schema.Starter) error
	ListStarters(ctx context.Context) ([]schema.Starter, error)

	GetRecipe(ctx context.Context, key string) (*schema.Recipe, error)
	UpsertRecipe(ctx context.Context, rec *schema.Recipe) error
	ListRecipes(ctx context.Context) ([]schema.Recipe, error)

	GetPublishNote(ctx context.Context, key string) (*schema.PublishNote, error)
	UpsertPublishNote(ctx context.Context, rec *schema.PublishNote) error
	ListPublishNotes(ctx context.Context) ([]schema.PublishNote, error)
}
