// Package iostore implements the db.Store contract on a local SQLite
// file through GORM. This is an impure I/O package; the pure contracts
// live in pkg/.
package iostore

import (
	"context"
	"errors"

	"github.com/glebarez/sqlite"
	"github.com/sakemonkey/sakedb/pkg/config"
	"github.com/sakemonkey/sakedb/pkg/db"
	"github.com/sakemonkey/sakedb/pkg/schema"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// sqliteStore implements db.Store using the pure-Go SQLite driver.
type sqliteStore struct {
	gdb *gorm.DB
}

// New creates a new store (without connecting).
func New() db.Store {
	return &sqliteStore{}
}

// Connect opens the SQLite database file, creating parent directories
// as needed. The busy timeout keeps concurrent pull batches from
// failing on a locked database.
func (s *sqliteStore) Connect(
	ctx context.Context,
	cfg *config.DatabaseConfig,
) error {
	dsn := cfg.Path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"

	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return ConnectionError(cfg.Path, err)
	}

	// Verify the file is actually usable
	sqlDB, err := gdb.DB()
	if err != nil {
		return ConnectionError(cfg.Path, err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return ConnectionError(cfg.Path, err)
	}

	s.gdb = gdb
	return nil
}

// Close releases the database handle.
func (s *sqliteStore) Close() error {
	if s.gdb == nil {
		return nil
	}
	sqlDB, err := s.gdb.DB()
	if err != nil {
		return nil
	}
	return sqlDB.Close()
}

// DB returns the underlying gorm handle for schema management.
func (s *sqliteStore) DB() *gorm.DB {
	return s.gdb
}

// HasTables checks whether all four entity tables exist.
func (s *sqliteStore) HasTables(ctx context.Context) (bool, error) {
	if s.gdb == nil {
		return false, NotConnectedError()
	}

	migrator := s.gdb.WithContext(ctx).Migrator()
	for _, model := range schema.AllModels() {
		if !migrator.HasTable(model) {
			return false, nil
		}
	}
	return true, nil
}

// Transaction runs fn against a store bound to a single transaction.
func (s *sqliteStore) Transaction(
	ctx context.Context,
	fn func(tx db.Store) error,
) error {
	if s.gdb == nil {
		return NotConnectedError()
	}

	return s.gdb.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&sqliteStore{gdb: tx})
	})
}

// get loads one record by its primary key column. Returns false
// without error when no record matches.
func (s *sqliteStore) get(
	ctx context.Context,
	out any,
	keyColumn, key string,
) (bool, error) {
	if s.gdb == nil {
		return false, NotConnectedError()
	}

	err := s.gdb.WithContext(ctx).
		Where(keyColumn+" = ?", key).
		First(out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, QueryError(key, err)
	}
	return true, nil
}

func (s *sqliteStore) GetIngredient(
	ctx context.Context, id string,
) (*schema.Ingredient, error) {
	var rec schema.Ingredient
	found, err := s.get(ctx, &rec, "ingredientID", id)
	if err != nil || !found {
		return nil, err
	}
	return &rec, nil
}

func (s *sqliteStore) UpsertIngredient(
	ctx context.Context, rec *schema.Ingredient,
) error {
	existing, err := s.GetIngredient(ctx, rec.IngredientID)
	if err != nil {
		return err
	}
	if existing == nil {
		if err := s.gdb.WithContext(ctx).Create(rec).Error; err != nil {
			return UpsertError(rec.IngredientID, err)
		}
		return nil
	}
	existing.Merge(rec)
	if err := s.gdb.WithContext(ctx).Save(existing).Error; err != nil {
		return UpsertError(rec.IngredientID, err)
	}
	return nil
}

func (s *sqliteStore) ListIngredients(
	ctx context.Context,
) ([]schema.Ingredient, error) {
	if s.gdb == nil {
		return nil, NotConnectedError()
	}
	var recs []schema.Ingredient
	err := s.gdb.WithContext(ctx).
		Order("ingredientID").Find(&recs).Error
	if err != nil {
		return nil, QueryError("ingredients", err)
	}
	return recs, nil
}

func (s *sqliteStore) GetStarter(
	ctx context.Context, key string,
) (*schema.Starter, error) {
	var rec schema.Starter
	found, err := s.get(ctx, &rec, "StarterBatch", key)
	if err != nil || !found {
		return nil, err
	}
	return &rec, nil
}

func (s *sqliteStore) UpsertStarter(
	ctx context.Context, rec *schema.Starter,
) error {
	existing, err := s.GetStarter(ctx, rec.StarterBatch)
	if err != nil {
		return err
	}
	if existing == nil {
		if err := s.gdb.WithContext(ctx).Create(rec).Error; err != nil {
			return UpsertError(rec.StarterBatch, err)
		}
		return nil
	}
	existing.Merge(rec)
	if err := s.gdb.WithContext(ctx).Save(existing).Error; err != nil {
		return UpsertError(rec.StarterBatch, err)
	}
	return nil
}

func (s *sqliteStore) ListStarters(
	ctx context.Context,
) ([]schema.Starter, error) {
	if s.gdb == nil {
		return nil, NotConnectedError()
	}
	var recs []schema.Starter
	err := s.gdb.WithContext(ctx).
		Order("StarterBatch").Find(&recs).Error
	if err != nil {
		return nil, QueryError("starters", err)
	}
	return recs, nil
}

func (s *sqliteStore) GetRecipe(
	ctx context.Context, key string,
) (*schema.Recipe, error) {
	var rec schema.Recipe
	found, err := s.get(ctx, &rec, "batchID", key)
	if err != nil || !found {
		return nil, err
	}
	return &rec, nil
}

func (s *sqliteStore) UpsertRecipe(
	ctx context.Context, rec *schema.Recipe,
) error {
	existing, err := s.GetRecipe(ctx, rec.BatchID)
	if err != nil {
		return err
	}
	if existing == nil {
		if err := s.gdb.WithContext(ctx).Create(rec).Error; err != nil {
			return UpsertError(rec.BatchID, err)
		}
		return nil
	}
	existing.Merge(rec)
	if err := s.gdb.WithContext(ctx).Save(existing).Error; err != nil {
		return UpsertError(rec.BatchID, err)
	}
	return nil
}

func (s *sqliteStore) ListRecipes(
	ctx context.Context,
) ([]schema.Recipe, error) {
	if s.gdb == nil {
		return nil, NotConnectedError()
	}
	var recs []schema.Recipe
	err := s.gdb.WithContext(ctx).
		Order("batchID").Find(&recs).Error
	if err != nil {
		return nil, QueryError("recipe", err)
	}
	return recs, nil
}

func (s *sqliteStore) GetPublishNote(
	ctx context.Context, key string,
) (*schema.PublishNote, error) {
	var rec schema.PublishNote
	found, err := s.get(ctx, &rec, "BatchID", key)
	if err != nil || !found {
		return nil, err
	}
	return &rec, nil
}

func (s *sqliteStore) UpsertPublishNote(
	ctx context.Context, rec *schema.PublishNote,
) error {
	existing, err := s.GetPublishNote(ctx, rec.BatchID)
	if err != nil {
		return err
	}
	if existing == nil {
		if err := s.gdb.WithContext(ctx).Create(rec).Error; err != nil {
			return UpsertError(rec.BatchID, err)
		}
		return nil
	}
	existing.Merge(rec)
	if err := s.gdb.WithContext(ctx).Save(existing).Error; err != nil {
		return UpsertError(rec.BatchID, err)
	}
	return nil
}

func (s *sqliteStore) ListPublishNotes(
	ctx context.Context,
) ([]schema.PublishNote, error) {
	if s.gdb == nil {
		return nil, NotConnectedError()
	}
	var recs []schema.PublishNote
	err := s.gdb.WithContext(ctx).
		Order("BatchID").Find(&recs).Error
	if err != nil {
		return nil, QueryError("publishnotes", err)
	}
	return recs, nil
}
