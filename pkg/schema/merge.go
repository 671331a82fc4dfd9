package schema

import (
	"time"
)

// Merge semantics for pulled records: a non-nil incoming field
// overwrites the stored one, a nil incoming field leaves the stored
// value untouched. This is what makes pull a sync instead of a mirror:
// a sparsely filled remote row cannot erase locally entered data.
// Primary keys are never merged; they are immutable.

func mergeString(dst **string, src *string) {
	if src != nil {
		*dst = src
	}
}

func mergeFloat(dst **float64, src *float64) {
	if src != nil {
		*dst = src
	}
}

func mergeInt(dst **int, src *int) {
	if src != nil {
		*dst = src
	}
}

func mergeBool(dst **bool, src *bool) {
	if src != nil {
		*dst = src
	}
}

func mergeDate(dst **time.Time, src *time.Time) {
	if src != nil {
		*dst = src
	}
}

// Merge folds non-nil fields of incoming into r.
func (r *Ingredient) Merge(incoming *Ingredient) {
	mergeString(&r.Type, incoming.Type)
	mergeDate(&r.AccDate, incoming.AccDate)
	mergeString(&r.Source, incoming.Source)
	mergeString(&r.Description, incoming.Description)
}

// Merge folds non-nil fields of incoming into r.
func (r *Starter) Merge(incoming *Starter) {
	mergeDate(&r.Date, incoming.Date)
	mergeString(&r.BatchID, incoming.BatchID)
	mergeFloat(&r.AmtKake, incoming.AmtKake)
	mergeFloat(&r.AmtKoji, incoming.AmtKoji)
	mergeFloat(&r.AmtWater, incoming.AmtWater)
	mergeString(&r.WaterType, incoming.WaterType)
	mergeString(&r.Kake, incoming.Kake)
	mergeString(&r.Koji, incoming.Koji)
	mergeString(&r.Yeast, incoming.Yeast)
	mergeFloat(&r.LacticAcid, incoming.LacticAcid)
	mergeFloat(&r.MgSO4, incoming.MgSO4)
	mergeFloat(&r.KCl, incoming.KCl)
	mergeFloat(&r.TempC, incoming.TempC)
}

// Merge folds non-nil fields of incoming into r.
func (r *Recipe) Merge(incoming *Recipe) {
	mergeDate(&r.StartDate, incoming.StartDate)
	mergeDate(&r.PouchDate, incoming.PouchDate)
	mergeInt(&r.Batch, incoming.Batch)
	mergeString(&r.Style, incoming.Style)
	mergeString(&r.Kake, incoming.Kake)
	mergeString(&r.Koji, incoming.Koji)
	mergeString(&r.Yeast, incoming.Yeast)
	mergeString(&r.Starter, incoming.Starter)
	mergeString(&r.WaterType, incoming.WaterType)
	mergeFloat(&r.TotalKakeG, incoming.TotalKakeG)
	mergeFloat(&r.TotalKojiG, incoming.TotalKojiG)
	mergeFloat(&r.TotalWaterML, incoming.TotalWaterML)
	mergeFloat(&r.FermentTempC, incoming.FermentTempC)
	mergeString(&r.Addition1Notes, incoming.Addition1Notes)
	mergeString(&r.Addition2Notes, incoming.Addition2Notes)
	mergeString(&r.Addition3Notes, incoming.Addition3Notes)
	mergeFloat(&r.FermentFinishGravity, incoming.FermentFinishGravity)
	mergeFloat(&r.FermentFinishBrix, incoming.FermentFinishBrix)
	mergeFloat(&r.FinalMeasuredTempC, incoming.FinalMeasuredTempC)
	mergeFloat(&r.FinalMeasuredGravity, incoming.FinalMeasuredGravity)
	mergeFloat(&r.FinalMeasuredBrixPct, incoming.FinalMeasuredBrixPct)
	mergeFloat(&r.FinalGravity, incoming.FinalGravity)
	mergeFloat(&r.ABVPct, incoming.ABVPct)
	mergeFloat(&r.SMV, incoming.SMV)
	mergeFloat(&r.FinalWaterAdditionML, incoming.FinalWaterAdditionML)
	mergeBool(&r.Clarified, incoming.Clarified)
	mergeBool(&r.Pasteurized, incoming.Pasteurized)
	mergeString(&r.PasteurizationNotes, incoming.PasteurizationNotes)
	mergeString(&r.FinishingAdditions, incoming.FinishingAdditions)
}

// Merge folds non-nil fields of incoming into r.
func (r *PublishNote) Merge(incoming *PublishNote) {
	mergeDate(&r.PouchDate, incoming.PouchDate)
	mergeString(&r.Style, incoming.Style)
	mergeString(&r.Water, incoming.Water)
	mergeFloat(&r.ABV, incoming.ABV)
	mergeFloat(&r.SMV, incoming.SMV)
	mergeFloat(&r.BatchSizeL, incoming.BatchSizeL)
	mergeString(&r.Rice, incoming.Rice)
	mergeString(&r.Description, incoming.Description)
}
