// Package schema provides the entity models of the brewing database and
// the static description of the remote sheets they map to.
//
// Optional fields are pointers: the sync engine must distinguish "cell
// was blank" from a genuine zero, because a blank incoming value never
// overwrites a stored one.
package schema

import (
	"time"
)

// Ingredient is one brewing input: a rice, a yeast or a water type.
// Created on first pull or by manual entry; never deleted by sync.
type Ingredient struct {
	// IngredientID is the natural primary key assigned on the remote
	// sheet, e.g. "R3" or "Y1". Immutable once assigned.
	IngredientID string `gorm:"column:ingredientID;primaryKey"`

	// Type is the ingredient category: rice, kake_rice, koji_rice,
	// yeast or water.
	Type *string `gorm:"column:ingredient_type"`

	// AccDate is the acquisition date.
	AccDate *time.Time `gorm:"column:acc_date"`

	Source      *string `gorm:"column:source"`
	Description *string `gorm:"column:description"`
}

// TableName returns the SQLite table name.
func (Ingredient) TableName() string { return "ingredients" }

// Starter is one yeast starter culture, brewed per batch cycle.
type Starter struct {
	// StarterBatch is the natural primary key in the form "s<N>".
	StarterBatch string `gorm:"column:StarterBatch;primaryKey"`

	Date *time.Time `gorm:"column:Date"`

	// BatchID references the recipe batch this starter feeds.
	BatchID *string `gorm:"column:BatchID;index"`

	// Amounts in grams (rice) and millilitres (water).
	AmtKake  *float64 `gorm:"column:Amt_Kake"`
	AmtKoji  *float64 `gorm:"column:Amt_Koji"`
	AmtWater *float64 `gorm:"column:Amt_water"`

	// Ingredient references.
	WaterType *string `gorm:"column:water_type"`
	Kake      *string `gorm:"column:Kake"`
	Koji      *string `gorm:"column:Koji"`
	Yeast     *string `gorm:"column:yeast"`

	// Additives in grams.
	LacticAcid *float64 `gorm:"column:lactic_acid"`
	MgSO4      *float64 `gorm:"column:MgSO4"`
	KCl        *float64 `gorm:"column:KCl"`

	TempC *float64 `gorm:"column:temp_C"`
}

// TableName returns the SQLite table name.
func (Starter) TableName() string { return "starters" }

// Recipe is the main batch-tracking record, mutated through
// fermentation until publish.
type Recipe struct {
	// BatchID is the natural primary key, e.g. "B010".
	BatchID string `gorm:"column:batchID;primaryKey"`

	StartDate *time.Time `gorm:"column:start_date"`
	PouchDate *time.Time `gorm:"column:pouch_date"`

	// Batch increments per batch made.
	Batch *int `gorm:"column:batch"`

	// Style is pure, rustic or rustic_experimental.
	Style *string `gorm:"column:style"`

	// Ingredient and starter references.
	Kake      *string `gorm:"column:kake"`
	Koji      *string `gorm:"column:koji"`
	Yeast     *string `gorm:"column:yeast"`
	Starter   *string `gorm:"column:starter"`
	WaterType *string `gorm:"column:water_type"`

	// Running totals across additions.
	TotalKakeG   *float64 `gorm:"column:total_kake_g"`
	TotalKojiG   *float64 `gorm:"column:total_koji_g"`
	TotalWaterML *float64 `gorm:"column:total_water_mL"`

	FermentTempC *float64 `gorm:"column:ferment_temp_C"`

	Addition1Notes *string `gorm:"column:Addition1_Notes"`
	Addition2Notes *string `gorm:"column:Addition2_Notes"`
	Addition3Notes *string `gorm:"column:Addition3_Notes"`

	FermentFinishGravity *float64 `gorm:"column:ferment_finish_gravity"`
	FermentFinishBrix    *float64 `gorm:"column:ferment_finish_brix"`
	FinalMeasuredTempC   *float64 `gorm:"column:final_measured_temp_C"`
	FinalMeasuredGravity *float64 `gorm:"column:final_measured_gravity"`
	FinalMeasuredBrixPct *float64 `gorm:"column:final_measured_Brix_pct"`

	// Calculated: gravity corrected to 20 C, alcohol by volume, and
	// Sake Meter Value.
	FinalGravity *float64 `gorm:"column:final_gravity"`
	ABVPct       *float64 `gorm:"column:ABV_pct"`
	SMV          *float64 `gorm:"column:SMV"`

	FinalWaterAdditionML *float64 `gorm:"column:final_water_addition_mL"`

	Clarified           *bool   `gorm:"column:clarified"`
	Pasteurized         *bool   `gorm:"column:pasteurized"`
	PasteurizationNotes *string `gorm:"column:pasteurization_notes"`
	FinishingAdditions  *string `gorm:"column:finishing_additions"`
}

// TableName returns the SQLite table name.
func (Recipe) TableName() string { return "recipe" }

// PublishNote is the public-facing product record for a batch,
// materialized once a recipe reaches a publishable state.
type PublishNote struct {
	// BatchID equals the recipe's BatchID.
	BatchID string `gorm:"column:BatchID;primaryKey"`

	PouchDate *time.Time `gorm:"column:Pouch_Date"`
	Style     *string    `gorm:"column:Style"`

	// Water references an ingredient.
	Water *string `gorm:"column:Water"`

	ABV        *float64 `gorm:"column:ABV"`
	SMV        *float64 `gorm:"column:SMV"`
	BatchSizeL *float64 `gorm:"column:Batch_Size_L"`

	Rice        *string `gorm:"column:Rice"`
	Description *string `gorm:"column:Description"`
}

// TableName returns the SQLite table name.
func (PublishNote) TableName() string { return "publishnotes" }
