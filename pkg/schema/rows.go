package schema

import (
	"fmt"
	"strings"

	"github.com/sakemonkey/sakedb/pkg/codec"
)

// Record is an entity that can cross the sheet boundary in both
// directions.
type Record interface {
	// Key returns the primary-key value.
	Key() string

	// Row renders the record as one sheet row in the table's column
	// order. Unknown columns render as empty cells.
	Row(t Table) []string
}

// Key returns the primary-key value.
func (r *Ingredient) Key() string { return r.IngredientID }

// Key returns the primary-key value.
func (r *Starter) Key() string { return r.StarterBatch }

// Key returns the primary-key value.
func (r *Recipe) Key() string { return r.BatchID }

// Key returns the primary-key value.
func (r *PublishNote) Key() string { return r.BatchID }

func missingKeyError(t Table) error {
	return fmt.Errorf("row has empty %s cell", t.Key)
}

// IngredientFromRow decodes a zipped sheet row into an Ingredient.
// Fails only when the primary key cell is blank; every other cell
// coerces leniently.
func IngredientFromRow(fields map[string]string) (*Ingredient, error) {
	id := strings.TrimSpace(fields["ingredientID"])
	if id == "" {
		return nil, missingKeyError(IngredientsTable)
	}
	res := &Ingredient{
		IngredientID: id,
		Type:         codec.String(fields["ingredient_type"]),
		AccDate:      codec.Date(fields["acc_date"]),
		Source:       codec.String(fields["source"]),
		Description:  codec.String(fields["description"]),
	}
	return res, nil
}

// Row implements Record.
func (r *Ingredient) Row(t Table) []string {
	return renderRow(t, func(col string) string {
		switch col {
		case "ingredientID":
			return r.IngredientID
		case "ingredient_type":
			return codec.FormatString(r.Type)
		case "acc_date":
			return codec.FormatDate(r.AccDate)
		case "source":
			return codec.FormatString(r.Source)
		case "description":
			return codec.FormatString(r.Description)
		}
		return ""
	})
}

// StarterFromRow decodes a zipped sheet row into a Starter.
func StarterFromRow(fields map[string]string) (*Starter, error) {
	key := strings.TrimSpace(fields["StarterBatch"])
	if key == "" {
		return nil, missingKeyError(StartersTable)
	}
	res := &Starter{
		StarterBatch: key,
		Date:         codec.Date(fields["Date"]),
		BatchID:      codec.String(fields["BatchID"]),
		AmtKake:      codec.Float(fields["Amt_Kake"]),
		AmtKoji:      codec.Float(fields["Amt_Koji"]),
		AmtWater:     codec.Float(fields["Amt_water"]),
		WaterType:    codec.String(fields["water_type"]),
		Kake:         codec.String(fields["Kake"]),
		Koji:         codec.String(fields["Koji"]),
		Yeast:        codec.String(fields["yeast"]),
		LacticAcid:   codec.Float(fields["lactic_acid"]),
		MgSO4:        codec.Float(fields["MgSO4"]),
		KCl:          codec.Float(fields["KCl"]),
		TempC:        codec.Float(fields["temp_C"]),
	}
	return res, nil
}

// Row implements Record.
func (r *Starter) Row(t Table) []string {
	return renderRow(t, func(col string) string {
		switch col {
		case "StarterBatch":
			return r.StarterBatch
		case "Date":
			return codec.FormatDate(r.Date)
		case "BatchID":
			return codec.FormatString(r.BatchID)
		case "Amt_Kake":
			return codec.FormatFloat(r.AmtKake)
		case "Amt_Koji":
			return codec.FormatFloat(r.AmtKoji)
		case "Amt_water":
			return codec.FormatFloat(r.AmtWater)
		case "water_type":
			return codec.FormatString(r.WaterType)
		case "Kake":
			return codec.FormatString(r.Kake)
		case "Koji":
			return codec.FormatString(r.Koji)
		case "yeast":
			return codec.FormatString(r.Yeast)
		case "lactic_acid":
			return codec.FormatFloat(r.LacticAcid)
		case "MgSO4":
			return codec.FormatFloat(r.MgSO4)
		case "KCl":
			return codec.FormatFloat(r.KCl)
		case "temp_C":
			return codec.FormatFloat(r.TempC)
		}
		return ""
	})
}

// RecipeFromRow decodes a zipped sheet row into a Recipe.
func RecipeFromRow(fields map[string]string) (*Recipe, error) {
	key := strings.TrimSpace(fields["batchID"])
	if key == "" {
		return nil, missingKeyError(RecipeTable)
	}
	clarified := codec.Bool(fields["clarified"])
	pasteurized := codec.Bool(fields["pasteurized"])
	res := &Recipe{
		BatchID:              key,
		StartDate:            codec.Date(fields["start_date"]),
		PouchDate:            codec.Date(fields["pouch_date"]),
		Batch:                codec.Int(fields["batch"]),
		Style:                codec.String(fields["style"]),
		Kake:                 codec.String(fields["kake"]),
		Koji:                 codec.String(fields["koji"]),
		Yeast:                codec.String(fields["yeast"]),
		Starter:              codec.String(fields["starter"]),
		WaterType:            codec.String(fields["water_type"]),
		TotalKakeG:           codec.Float(fields["total_kake_g"]),
		TotalKojiG:           codec.Float(fields["total_koji_g"]),
		TotalWaterML:         codec.Float(fields["total_water_mL"]),
		FermentTempC:         codec.Float(fields["ferment_temp_C"]),
		Addition1Notes:       codec.String(fields["Addition1_Notes"]),
		Addition2Notes:       codec.String(fields["Addition2_Notes"]),
		Addition3Notes:       codec.String(fields["Addition3_Notes"]),
		FermentFinishGravity: codec.Float(fields["ferment_finish_gravity"]),
		FermentFinishBrix:    codec.Float(fields["ferment_finish_brix"]),
		FinalMeasuredTempC:   codec.Float(fields["final_measured_temp_C"]),
		FinalMeasuredGravity: codec.Float(fields["final_measured_gravity"]),
		FinalMeasuredBrixPct: codec.Float(fields["final_measured_Brix_%"]),
		FinalGravity:         codec.Float(fields["final_gravity"]),
		ABVPct:               codec.Float(fields["ABV_%"]),
		SMV:                  codec.Float(fields["SMV"]),
		FinalWaterAdditionML: codec.Float(fields["final_water_addition_mL"]),
		Clarified:            &clarified,
		Pasteurized:          &pasteurized,
		PasteurizationNotes:  codec.String(fields["pasteurization_notes"]),
		FinishingAdditions:   codec.String(fields["finishing_additions"]),
	}
	return res, nil
}

// Row implements Record.
func (r *Recipe) Row(t Table) []string {
	return renderRow(t, func(col string) string {
		switch col {
		case "batchID":
			return r.BatchID
		case "start_date":
			return codec.FormatDate(r.StartDate)
		case "pouch_date":
			return codec.FormatDate(r.PouchDate)
		case "batch":
			return codec.FormatInt(r.Batch)
		case "style":
			return codec.FormatString(r.Style)
		case "kake":
			return codec.FormatString(r.Kake)
		case "koji":
			return codec.FormatString(r.Koji)
		case "yeast":
			return codec.FormatString(r.Yeast)
		case "starter":
			return codec.FormatString(r.Starter)
		case "water_type":
			return codec.FormatString(r.WaterType)
		case "total_kake_g":
			return codec.FormatFloat(r.TotalKakeG)
		case "total_koji_g":
			return codec.FormatFloat(r.TotalKojiG)
		case "total_water_mL":
			return codec.FormatFloat(r.TotalWaterML)
		case "ferment_temp_C":
			return codec.FormatFloat(r.FermentTempC)
		case "Addition1_Notes":
			return codec.FormatString(r.Addition1Notes)
		case "Addition2_Notes":
			return codec.FormatString(r.Addition2Notes)
		case "Addition3_Notes":
			return codec.FormatString(r.Addition3Notes)
		case "ferment_finish_gravity":
			return codec.FormatFloat(r.FermentFinishGravity)
		case "ferment_finish_brix":
			return codec.FormatFloat(r.FermentFinishBrix)
		case "final_measured_temp_C":
			return codec.FormatFloat(r.FinalMeasuredTempC)
		case "final_measured_gravity":
			return codec.FormatFloat(r.FinalMeasuredGravity)
		case "final_measured_Brix_%":
			return codec.FormatFloat(r.FinalMeasuredBrixPct)
		case "final_gravity":
			return codec.FormatFloat(r.FinalGravity)
		case "ABV_%":
			return codec.FormatFloat(r.ABVPct)
		case "SMV":
			return codec.FormatFloat(r.SMV)
		case "final_water_addition_mL":
			return codec.FormatFloat(r.FinalWaterAdditionML)
		case "clarified":
			return codec.FormatBool(r.Clarified)
		case "pasteurized":
			return codec.FormatBool(r.Pasteurized)
		case "pasteurization_notes":
			return codec.FormatString(r.PasteurizationNotes)
		case "finishing_additions":
			return codec.FormatString(r.FinishingAdditions)
		}
		return ""
	})
}

// PublishNoteFromRow decodes a zipped sheet row into a PublishNote.
func PublishNoteFromRow(fields map[string]string) (*PublishNote, error) {
	key := strings.TrimSpace(fields["BatchID"])
	if key == "" {
		return nil, missingKeyError(PublishNotesTable)
	}
	res := &PublishNote{
		BatchID:     key,
		PouchDate:   codec.Date(fields["Pouch_Date"]),
		Style:       codec.String(fields["Style"]),
		Water:       codec.String(fields["Water"]),
		ABV:         codec.Float(fields["ABV"]),
		SMV:         codec.Float(fields["SMV"]),
		BatchSizeL:  codec.Float(fields["Batch_Size_L"]),
		Rice:        codec.String(fields["Rice"]),
		Description: codec.String(fields["Description"]),
	}
	return res, nil
}

// Row implements Record.
func (r *PublishNote) Row(t Table) []string {
	return renderRow(t, func(col string) string {
		switch col {
		case "BatchID":
			return r.BatchID
		case "Pouch_Date":
			return codec.FormatDate(r.PouchDate)
		case "Style":
			return codec.FormatString(r.Style)
		case "Water":
			return codec.FormatString(r.Water)
		case "ABV":
			return codec.FormatFloat(r.ABV)
		case "SMV":
			return codec.FormatFloat(r.SMV)
		case "Batch_Size_L":
			return codec.FormatFloat(r.BatchSizeL)
		case "Rice":
			return codec.FormatString(r.Rice)
		case "Description":
			return codec.FormatString(r.Description)
		}
		return ""
	})
}

func renderRow(t Table, cell func(col string) string) []string {
	row := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		row[i] = cell(col)
	}
	return row
}
