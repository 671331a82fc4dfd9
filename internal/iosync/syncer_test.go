package iosync

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/sakemonkey/sakedb/internal/iostore"
	"github.com/sakemonkey/sakedb/pkg/config"
	"github.com/sakemonkey/sakedb/pkg/db"
	"github.com/sakemonkey/sakedb/pkg/schema"
	"github.com/sakemonkey/sakedb/pkg/sheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTransport serves sheets from memory and records writes.
type fakeTransport struct {
	sheets map[string][][]string

	// fail makes reads of the named sheets error out.
	fail map[string]error

	appendCalls []appendCall
	writeCalls  []writeCall
	clearCalls  []string
}

type appendCall struct {
	sheet    string
	afterRow int
	rows     [][]string
}

type writeCall struct {
	sheet     string
	startCell string
	rows      [][]string
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{
		sheets: map[string][][]string{},
		fail:   map[string]error{},
	}
}

func (f *fakeTransport) VerifyAccess(
	_ context.Context, _ string,
) (string, error) {
	return "Sake Brewing", nil
}

func (f *fakeTransport) Rows(
	_ context.Context, sheetName string,
) ([][]string, error) {
	if err := f.fail[sheetName]; err != nil {
		return nil, err
	}
	return f.sheets[sheetName], nil
}

func (f *fakeTransport) WriteRows(
	_ context.Context, sheetName, startCell string, rows [][]string,
) error {
	f.writeCalls = append(f.writeCalls, writeCall{
		sheet: sheetName, startCell: startCell, rows: rows,
	})
	if startCell == "A1" {
		f.sheets[sheetName] = rows
	}
	return nil
}

func (f *fakeTransport) AppendRows(
	_ context.Context, sheetName string, afterRow int, rows [][]string,
) error {
	f.appendCalls = append(f.appendCalls, appendCall{
		sheet: sheetName, afterRow: afterRow, rows: rows,
	})
	f.sheets[sheetName] = append(f.sheets[sheetName], rows...)
	return nil
}

func (f *fakeTransport) ClearRange(
	_ context.Context, sheetName, rng string,
) error {
	f.clearCalls = append(f.clearCalls, sheetName+"!"+rng)
	return nil
}

var _ sheet.Transport = (*fakeTransport)(nil)

func strPtr(s string) *string { return &s }

// seedSheets fills the fake transport with header-only sheets so pull
// and push see a well-formed but empty spreadsheet.
func seedSheets(tr *fakeTransport) {
	for _, t := range schema.Tables() {
		tr.sheets[t.Name] = [][]string{t.Columns}
	}
}

func newTestStore(t *testing.T) db.Store {
	t.Helper()

	ctx := context.Background()
	store := iostore.New()
	require.NoError(t, store.Connect(ctx, &config.DatabaseConfig{
		Path: filepath.Join(t.TempDir(), "sake.sqlite"),
	}))
	t.Cleanup(func() { store.Close() })
	require.NoError(t, schema.Migrate(store.DB()))
	return store
}

func newTestSyncer(
	store db.Store, tr *fakeTransport, opts ...Option,
) *syncer {
	cfg := config.New()
	cfg.Sheets.SpreadsheetID = "test-spreadsheet"
	return New(cfg, store, tr, opts...).(*syncer)
}

func TestVerify(t *testing.T) {
	ctx := context.Background()
	s := newTestSyncer(newTestStore(t), newFakeTransport())

	title, err := s.Verify(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Sake Brewing", title)
}

func TestPull_NoTables(t *testing.T) {
	ctx := context.Background()
	store := iostore.New()
	require.NoError(t, store.Connect(ctx, &config.DatabaseConfig{
		Path: filepath.Join(t.TempDir(), "sake.sqlite"),
	}))
	defer store.Close()

	s := newTestSyncer(store, newFakeTransport())
	_, err := s.Pull(ctx)
	assert.Error(t, err)
}

func TestPull_Starter(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	tr := newFakeTransport()
	seedSheets(tr)

	tr.sheets["Starters"] = [][]string{
		schema.StartersTable.Columns,
		{"s5", "2024-03-15", "B010", "250.0", "", "400", "", "R3",
			"R4", "Y1"},
	}

	s := newTestSyncer(store, tr)
	res, err := s.Pull(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Written())
	assert.Equal(t, 0, res.Skipped())

	got, err := store.GetStarter(ctx, "s5")
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, "B010", *got.BatchID)
	assert.InDelta(t, 250, *got.AmtKake, 0.0001)
	assert.Nil(t, got.AmtKoji, "blank cell stays unset")
	assert.InDelta(t, 400, *got.AmtWater, 0.0001)
	assert.Equal(t, "Y1", *got.Yeast)
	assert.Equal(t,
		time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), *got.Date)
	assert.Nil(t, got.TempC, "short row pads out to blank cells")
}

func TestPull_MergePreservesLocalValues(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	tr := newFakeTransport()
	seedSheets(tr)

	require.NoError(t, store.UpsertIngredient(ctx, &schema.Ingredient{
		IngredientID: "R3",
		Type:         strPtr("rice"),
		Source:       strPtr("local market"),
	}))

	// Remote row fills the description but has a blank source.
	tr.sheets["Ingredients"] = [][]string{
		schema.IngredientsTable.Columns,
		{"R3", "rice", "", "", "calrose, polished"},
	}

	s := newTestSyncer(store, tr)
	_, err := s.Pull(ctx)
	require.NoError(t, err)

	got, err := store.GetIngredient(ctx, "R3")
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, "local market", *got.Source,
		"blank remote cell must not clear the stored value")
	assert.Equal(t, "calrose, polished", *got.Description)
}

func TestPull_SkipsBadRows(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	tr := newFakeTransport()
	seedSheets(tr)

	tr.sheets["Ingredients"] = [][]string{
		schema.IngredientsTable.Columns,
		{"R1", "rice"},
		{"R2", "rice"},
		{"", "yeast"}, // no primary key
		{"R4", "koji_rice"},
		{"Y1", "yeast"},
	}

	s := newTestSyncer(store, tr)
	res, err := s.Pull(ctx)
	require.NoError(t, err)

	assert.Equal(t, 4, res.Written())
	assert.Equal(t, 1, res.Skipped())

	recs, err := store.ListIngredients(ctx)
	require.NoError(t, err)
	assert.Len(t, recs, 4, "good rows around the bad one still land")
}

func TestPull_FailedSheetDoesNotAbortOthers(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	tr := newFakeTransport()
	seedSheets(tr)

	tr.fail["Ingredients"] = fmt.Errorf("api unreachable")
	tr.sheets["Recipe"] = [][]string{
		schema.RecipeTable.Columns,
		{"B010"},
	}

	s := newTestSyncer(store, tr)
	res, err := s.Pull(ctx)
	require.NoError(t, err, "one failed sheet is not a failed run")

	assert.Equal(t, 1, res.Failed())
	assert.Equal(t, 1, res.Written())

	got, err := store.GetRecipe(ctx, "B010")
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestPull_AllSheetsFailed(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	tr := newFakeTransport()
	for _, tbl := range schema.Tables() {
		tr.fail[tbl.Name] = fmt.Errorf("api unreachable")
	}

	s := newTestSyncer(store, tr)
	res, err := s.Pull(ctx)
	require.Error(t, err)
	assert.Equal(t, len(res.Entities), res.Failed())
}

func TestPush_AppendsOnlyNewRecords(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	tr := newFakeTransport()
	seedSheets(tr)

	// B010 is already on the sheet; B011 is local-only.
	tr.sheets["Recipe"] = [][]string{
		schema.RecipeTable.Columns,
		{"B010", "2024-03-01"},
	}
	require.NoError(t, store.UpsertRecipe(ctx, &schema.Recipe{
		BatchID: "B010", Style: strPtr("pure"),
	}))
	require.NoError(t, store.UpsertRecipe(ctx, &schema.Recipe{
		BatchID: "B011", Style: strPtr("rustic"),
	}))

	s := newTestSyncer(store, tr)
	res, err := s.Push(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Written())

	require.Len(t, tr.appendCalls, 1)
	call := tr.appendCalls[0]
	assert.Equal(t, "Recipe", call.sheet)
	assert.Equal(t, 3, call.afterRow,
		"new rows start right below the last occupied row")
	require.Len(t, call.rows, 1)
	assert.Equal(t, "B011", call.rows[0][0])
}

func TestPush_Idempotent(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	tr := newFakeTransport()
	seedSheets(tr)

	require.NoError(t, store.UpsertPublishNote(ctx, &schema.PublishNote{
		BatchID: "B010", Style: strPtr("pure"),
	}))

	s := newTestSyncer(store, tr)
	res, err := s.Push(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Written())

	// Same syncer state, second run: nothing new to append.
	res, err = s.Push(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Written())
	assert.Len(t, tr.appendCalls, 1)
}

func TestPush_SeedsEmptySheet(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	tr := newFakeTransport()
	seedSheets(tr)
	tr.sheets["Ingredients"] = nil

	require.NoError(t, store.UpsertIngredient(ctx, &schema.Ingredient{
		IngredientID: "R3", Type: strPtr("rice"),
	}))

	s := newTestSyncer(store, tr)
	res, err := s.Push(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Written())

	require.Len(t, tr.writeCalls, 1)
	call := tr.writeCalls[0]
	assert.Equal(t, "Ingredients", call.sheet)
	assert.Equal(t, "A1", call.startCell)
	require.Len(t, call.rows, 2)
	assert.Equal(t, schema.IngredientsTable.Columns, call.rows[0],
		"header row comes first on an empty sheet")
	assert.Equal(t, "R3", call.rows[1][0])
}

func TestPush_DryRun(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	tr := newFakeTransport()
	seedSheets(tr)

	require.NoError(t, store.UpsertRecipe(ctx, &schema.Recipe{
		BatchID: "B010",
	}))

	s := newTestSyncer(store, tr, OptDryRun(true))
	res, err := s.Push(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Written(), "dry run still counts")
	assert.Empty(t, tr.appendCalls)
	assert.Empty(t, tr.writeCalls)
}

func TestBackup_RewritesSheets(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	tr := newFakeTransport()
	seedSheets(tr)

	// The sheet carries a stale row that is gone locally.
	tr.sheets["Ingredients"] = [][]string{
		schema.IngredientsTable.Columns,
		{"R1", "rice"},
		{"R9", "water"},
	}
	require.NoError(t, store.UpsertIngredient(ctx, &schema.Ingredient{
		IngredientID: "R1", Type: strPtr("rice"),
	}))

	s := newTestSyncer(store, tr)
	res, err := s.Backup(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Entities[0].Written)

	got := tr.sheets["Ingredients"]
	require.Len(t, got, 2, "header plus the one local record")
	assert.Equal(t, "R1", got[1][0])

	assert.Contains(t, tr.clearCalls, "Ingredients!A3:ZZ10000",
		"stale rows below the new block are cleared")
}

func TestBackup_DryRun(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	tr := newFakeTransport()
	seedSheets(tr)

	require.NoError(t, store.UpsertRecipe(ctx, &schema.Recipe{
		BatchID: "B010",
	}))

	s := newTestSyncer(store, tr, OptDryRun(true))
	res, err := s.Backup(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Written())
	assert.Empty(t, tr.writeCalls)
	assert.Empty(t, tr.clearCalls)
}

func TestPullThenPush_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	tr := newFakeTransport()
	seedSheets(tr)

	tr.sheets["Starters"] = [][]string{
		schema.StartersTable.Columns,
		{"s1", "2024-01-10", "B001", "250", "50", "400"},
		{"s2", "2024-02-12", "B002", "250", "50", "400"},
	}

	s := newTestSyncer(store, tr)
	_, err := s.Pull(ctx)
	require.NoError(t, err)

	// Everything local came from the sheet, so push is a no-op.
	res, err := s.Push(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Written())
	assert.Empty(t, tr.appendCalls)
}
