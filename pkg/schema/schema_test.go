package schema

import (
	"testing"
	"time"

	"github.com/sakemonkey/sakedb/pkg/codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool        { return &b }

func TestTables_DependencyOrder(t *testing.T) {
	tables := Tables()
	require.Len(t, tables, 4)

	assert.Equal(t, "Ingredients", tables[0].Name)
	assert.Equal(t, "Starters", tables[1].Name)
	assert.Equal(t, "Recipe", tables[2].Name)
	assert.Equal(t, "PublishNotes", tables[3].Name)
}

func TestTables_KeyIsFirstColumn(t *testing.T) {
	for _, table := range Tables() {
		require.NotEmpty(t, table.Columns, table.Name)
		assert.Equal(t, table.Key, table.Columns[0], table.Name)
	}
}

func TestIngredientFromRow(t *testing.T) {
	fields := map[string]string{
		"ingredientID":    "R3",
		"ingredient_type": "rice",
		"acc_date":        "2024-01-05",
		"source":          "",
		"description":     "calrose",
	}

	rec, err := IngredientFromRow(fields)
	require.NoError(t, err)

	assert.Equal(t, "R3", rec.IngredientID)
	assert.Equal(t, "rice", *rec.Type)
	assert.Equal(t,
		time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), *rec.AccDate)
	assert.Nil(t, rec.Source)
	assert.Equal(t, "calrose", *rec.Description)
	assert.Equal(t, "R3", rec.Key())
}

func TestIngredientFromRow_MissingKey(t *testing.T) {
	_, err := IngredientFromRow(map[string]string{
		"ingredientID": "  ",
		"description":  "orphan row",
	})
	assert.Error(t, err)
}

func TestRecipeFromRow_Booleans(t *testing.T) {
	rec, err := RecipeFromRow(map[string]string{
		"batchID":     "B010",
		"clarified":   "TRUE",
		"pasteurized": "",
	})
	require.NoError(t, err)

	require.NotNil(t, rec.Clarified)
	require.NotNil(t, rec.Pasteurized)
	assert.True(t, *rec.Clarified)
	assert.False(t, *rec.Pasteurized,
		"a blank checkbox cell means unchecked, not unknown")
}

func TestMerge_BlankFieldsDoNotClobber(t *testing.T) {
	stored := &Ingredient{
		IngredientID: "R3",
		Type:         strPtr("rice"),
		Source:       strPtr("local market"),
	}
	incoming := &Ingredient{
		IngredientID: "R3",
		Description:  strPtr("calrose"),
	}

	stored.Merge(incoming)

	assert.Equal(t, "rice", *stored.Type)
	assert.Equal(t, "local market", *stored.Source)
	assert.Equal(t, "calrose", *stored.Description)
}

func TestMerge_NonNilOverwrites(t *testing.T) {
	stored := &Recipe{
		BatchID:      "B010",
		Style:        strPtr("pure"),
		FinalGravity: floatPtr(1.010),
		Clarified:    boolPtr(true),
	}
	incoming := &Recipe{
		BatchID:      "B010",
		Style:        strPtr("rustic"),
		FinalGravity: floatPtr(1.012),
		Clarified:    boolPtr(false),
	}

	stored.Merge(incoming)

	assert.Equal(t, "rustic", *stored.Style)
	assert.InDelta(t, 1.012, *stored.FinalGravity, 0.00001)
	assert.False(t, *stored.Clarified)
}

func TestRow_RoundTrip(t *testing.T) {
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	orig := &Starter{
		StarterBatch: "s5",
		Date:         &date,
		BatchID:      strPtr("B010"),
		AmtKake:      floatPtr(250),
		AmtWater:     floatPtr(400),
		Yeast:        strPtr("Y1"),
	}

	row := orig.Row(StartersTable)
	require.Len(t, row, len(StartersTable.Columns))

	fields := codec.ZipRow(StartersTable.Columns, row)
	got, err := StarterFromRow(fields)
	require.NoError(t, err)

	assert.Equal(t, orig.StarterBatch, got.StarterBatch)
	assert.True(t, orig.Date.Equal(*got.Date))
	assert.Equal(t, *orig.BatchID, *got.BatchID)
	assert.InDelta(t, *orig.AmtKake, *got.AmtKake, 0.00001)
	assert.Nil(t, got.AmtKoji, "unset fields stay unset across the trip")
	assert.Equal(t, *orig.Yeast, *got.Yeast)
}

func TestRow_UnknownColumnRendersEmpty(t *testing.T) {
	table := Table{
		Name:    "Ingredients",
		Key:     "ingredientID",
		Columns: []string{"ingredientID", "no_such_column"},
	}
	rec := &Ingredient{IngredientID: "R3", Type: strPtr("rice")}

	row := rec.Row(table)
	assert.Equal(t, []string{"R3", ""}, row)
}
