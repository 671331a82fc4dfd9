package cmd

import (
	"context"

	"github.com/gnames/gn"
	"github.com/sakemonkey/sakedb/internal/ioschema"
	"github.com/spf13/cobra"
)

// getInitCmd returns the init command.
func getInitCmd() *cobra.Command {
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create the local database schema",
		Long: `Create the local SQLite database and its four entity tables:
ingredients, starters, recipe and publishnotes.

Safe to run repeatedly: schema creation uses AutoMigrate, so an
existing database is upgraded in place and its data is kept.

Examples:
  sakedb init`,
		RunE: runInit,
	}

	return initCmd
}

func runInit(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	store, err := openStore(ctx)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer store.Close()

	mgr := ioschema.New(store)
	if err := mgr.Create(ctx); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info("Database ready at <em>%s</em>", cfg.Database.Path)
	return nil
}
