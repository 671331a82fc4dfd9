package iosync

import (
	"context"

	"github.com/sakemonkey/sakedb/pkg/db"
	"github.com/sakemonkey/sakedb/pkg/schema"
)

// entity adapts one typed model to the generic pull/push loops: how to
// decode a sheet row, how to upsert into a store, and how to list the
// local records.
type entity struct {
	table  schema.Table
	decode func(fields map[string]string) (schema.Record, error)
	upsert func(ctx context.Context, tx db.Store, rec schema.Record) error
	list   func(ctx context.Context, s db.Store) ([]schema.Record, error)
}

// entities returns the four entity adapters in dependency order:
// ingredients before starters before recipes before publish notes.
func entities() []entity {
	return []entity{
		{
			table: schema.IngredientsTable,
			decode: func(fields map[string]string) (schema.Record, error) {
				rec, err := schema.IngredientFromRow(fields)
				if err != nil {
					return nil, err
				}
				return rec, nil
			},
			upsert: func(ctx context.Context, tx db.Store, rec schema.Record) error {
				return tx.UpsertIngredient(ctx, rec.(*schema.Ingredient))
			},
			list: func(ctx context.Context, s db.Store) ([]schema.Record, error) {
				recs, err := s.ListIngredients(ctx)
				if err != nil {
					return nil, err
				}
				out := make([]schema.Record, len(recs))
				for i := range recs {
					out[i] = &recs[i]
				}
				return out, nil
			},
		},
		{
			table: schema.StartersTable,
			decode: func(fields map[string]string) (schema.Record, error) {
				rec, err := schema.StarterFromRow(fields)
				if err != nil {
					return nil, err
				}
				return rec, nil
			},
			upsert: func(ctx context.Context, tx db.Store, rec schema.Record) error {
				return tx.UpsertStarter(ctx, rec.(*schema.Starter))
			},
			list: func(ctx context.Context, s db.Store) ([]schema.Record, error) {
				recs, err := s.ListStarters(ctx)
				if err != nil {
					return nil, err
				}
				out := make([]schema.Record, len(recs))
				for i := range recs {
					out[i] = &recs[i]
				}
				return out, nil
			},
		},
		{
			table: schema.RecipeTable,
			decode: func(fields map[string]string) (schema.Record, error) {
				rec, err := schema.RecipeFromRow(fields)
				if err != nil {
					return nil, err
				}
				return rec, nil
			},
			upsert: func(ctx context.Context, tx db.Store, rec schema.Record) error {
				return tx.UpsertRecipe(ctx, rec.(*schema.Recipe))
			},
			list: func(ctx context.Context, s db.Store) ([]schema.Record, error) {
				recs, err := s.ListRecipes(ctx)
				if err != nil {
					return nil, err
				}
				out := make([]schema.Record, len(recs))
				for i := range recs {
					out[i] = &recs[i]
				}
				return out, nil
			},
		},
		{
			table: schema.PublishNotesTable,
			decode: func(fields map[string]string) (schema.Record, error) {
				rec, err := schema.PublishNoteFromRow(fields)
				if err != nil {
					return nil, err
				}
				return rec, nil
			},
			upsert: func(ctx context.Context, tx db.Store, rec schema.Record) error {
				return tx.UpsertPublishNote(ctx, rec.(*schema.PublishNote))
			},
			list: func(ctx context.Context, s db.Store) ([]schema.Record, error) {
				recs, err := s.ListPublishNotes(ctx)
				if err != nil {
					return nil, err
				}
				out := make([]schema.Record, len(recs))
				for i := range recs {
					out[i] = &recs[i]
				}
				return out, nil
			},
		},
	}
}
