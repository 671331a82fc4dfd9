package schema

// Table describes one entity's mapping to a remote sheet: the sheet
// name, the primary-key header, and the full ordered header list.
// Pull and push share these values, so the two directions cannot drift
// apart.
type Table struct {
	// Name is the remote sheet name.
	Name string

	// Key is the header of the primary-key column.
	Key string

	// Columns is the ordered header list. It must equal the header row
	// the transport returns for the sheet.
	Columns []string
}

var (
	// IngredientsTable maps the Ingredient entity.
	IngredientsTable = Table{
		Name: "Ingredients",
		Key:  "ingredientID",
		Columns: []string{
			"ingredientID", "ingredient_type", "acc_date",
			"source", "description",
		},
	}

	// StartersTable maps the Starter entity.
	StartersTable = Table{
		Name: "Starters",
		Key:  "StarterBatch",
		Columns: []string{
			"StarterBatch", "Date", "BatchID", "Amt_Kake", "Amt_Koji",
			"Amt_water", "water_type", "Kake", "Koji", "yeast",
			"lactic_acid", "MgSO4", "KCl", "temp_C",
		},
	}

	// RecipeTable maps the Recipe entity.
	RecipeTable = Table{
		Name: "Recipe",
		Key:  "batchID",
		Columns: []string{
			"batchID", "start_date", "pouch_date", "batch", "style",
			"kake", "koji", "yeast", "starter", "water_type",
			"total_kake_g", "total_koji_g", "total_water_mL",
			"ferment_temp_C", "Addition1_Notes", "Addition2_Notes",
			"Addition3_Notes", "ferment_finish_gravity",
			"ferment_finish_brix", "final_measured_temp_C",
			"final_measured_gravity", "final_measured_Brix_%",
			"final_gravity", "ABV_%", "SMV", "final_water_addition_mL",
			"clarified", "pasteurized", "pasteurization_notes",
			"finishing_additions",
		},
	}

	// PublishNotesTable maps the PublishNote entity.
	PublishNotesTable = Table{
		Name: "PublishNotes",
		Key:  "BatchID",
		Columns: []string{
			"BatchID", "Pouch_Date", "Style", "Water", "ABV", "SMV",
			"Batch_Size_L", "Rice", "Description",
		},
	}
)

// Tables returns the entity tables in dependency order: ingredients
// before starters before recipes before publish notes, mirroring the
// foreign keys between them. Pull processes sheets in this order so
// references resolve within a single run.
func Tables() []Table {
	return []Table{
		IngredientsTable,
		StartersTable,
		RecipeTable,
		PublishNotesTable,
	}
}
