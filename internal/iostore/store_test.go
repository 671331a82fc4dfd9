package iostore

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/sakemonkey/sakedb/pkg/config"
	"github.com/sakemonkey/sakedb/pkg/db"
	"github.com/sakemonkey/sakedb/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string       { return &s }
func floatPtr(f float64) *float64   { return &f }
func datePtr(t time.Time) *time.Time { return &t }

// newTestStore opens a fresh store on a temporary database file with
// the schema migrated.
func newTestStore(t *testing.T) db.Store {
	t.Helper()

	ctx := context.Background()
	cfg := &config.DatabaseConfig{
		Path:      filepath.Join(t.TempDir(), "sake.sqlite"),
		BatchSize: 100,
	}

	store := New()
	require.NoError(t, store.Connect(ctx, cfg))
	t.Cleanup(func() { store.Close() })

	require.NoError(t, schema.Migrate(store.DB()))
	return store
}

func TestConnect_BadPath(t *testing.T) {
	ctx := context.Background()
	cfg := &config.DatabaseConfig{
		Path: filepath.Join(t.TempDir(), "no", "such", "dir", "x.sqlite"),
	}

	store := New()
	err := store.Connect(ctx, cfg)
	assert.Error(t, err)
}

func TestHasTables(t *testing.T) {
	ctx := context.Background()
	cfg := &config.DatabaseConfig{
		Path: filepath.Join(t.TempDir(), "sake.sqlite"),
	}

	store := New()
	require.NoError(t, store.Connect(ctx, cfg))
	defer store.Close()

	has, err := store.HasTables(ctx)
	require.NoError(t, err)
	assert.False(t, has, "fresh database should have no tables")

	require.NoError(t, schema.Migrate(store.DB()))

	has, err = store.HasTables(ctx)
	require.NoError(t, err)
	assert.True(t, has)
}

func TestGet_NotFound(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	rec, err := store.GetIngredient(ctx, "R99")
	require.NoError(t, err)
	assert.Nil(t, rec, "missing record returns nil without error")
}

func TestUpsert_InsertThenMerge(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	first := &schema.Ingredient{
		IngredientID: "R3",
		Type:         strPtr("rice"),
		Source:       strPtr("local market"),
	}
	require.NoError(t, store.UpsertIngredient(ctx, first))

	// Incoming record with a new description but no source. The
	// stored source must survive the merge.
	second := &schema.Ingredient{
		IngredientID: "R3",
		Description:  strPtr("calrose, polished"),
	}
	require.NoError(t, store.UpsertIngredient(ctx, second))

	got, err := store.GetIngredient(ctx, "R3")
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, "rice", *got.Type)
	assert.Equal(t, "local market", *got.Source)
	assert.Equal(t, "calrose, polished", *got.Description)
}

func TestUpsertStarter_AllFields(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	rec := &schema.Starter{
		StarterBatch: "s5",
		Date:         datePtr(date),
		BatchID:      strPtr("B010"),
		AmtKake:      floatPtr(250),
		AmtWater:     floatPtr(400),
		Yeast:        strPtr("Y1"),
	}
	require.NoError(t, store.UpsertStarter(ctx, rec))

	got, err := store.GetStarter(ctx, "s5")
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, "B010", *got.BatchID)
	assert.InDelta(t, 250, *got.AmtKake, 0.0001)
	assert.Nil(t, got.AmtKoji)
	assert.True(t, date.Equal(*got.Date))
}

func TestList_Ordered(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	for _, id := range []string{"B012", "B010", "B011"} {
		rec := &schema.Recipe{BatchID: id}
		require.NoError(t, store.UpsertRecipe(ctx, rec))
	}

	recs, err := store.ListRecipes(ctx)
	require.NoError(t, err)
	require.Len(t, recs, 3)

	assert.Equal(t, "B010", recs[0].BatchID)
	assert.Equal(t, "B011", recs[1].BatchID)
	assert.Equal(t, "B012", recs[2].BatchID)
}

func TestTransaction_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	boom := errors.New("boom")
	err := store.Transaction(ctx, func(tx db.Store) error {
		rec := &schema.PublishNote{BatchID: "B001"}
		if err := tx.UpsertPublishNote(ctx, rec); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	got, err := store.GetPublishNote(ctx, "B001")
	require.NoError(t, err)
	assert.Nil(t, got, "rolled back record must not be visible")
}

func TestTransaction_Commits(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	err := store.Transaction(ctx, func(tx db.Store) error {
		return tx.UpsertPublishNote(ctx, &schema.PublishNote{
			BatchID: "B002",
			Style:   strPtr("rustic"),
		})
	})
	require.NoError(t, err)

	got, err := store.GetPublishNote(ctx, "B002")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "rustic", *got.Style)
}

func TestNotConnected(t *testing.T) {
	ctx := context.Background()
	store := New()

	_, err := store.ListIngredients(ctx)
	assert.Error(t, err)
}
