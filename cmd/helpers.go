package cmd

import (
	"context"
	"fmt"

	"github.com/gnames/gn"
	"github.com/sakemonkey/sakedb/internal/iosheets"
	"github.com/sakemonkey/sakedb/internal/iostore"
	"github.com/sakemonkey/sakedb/pkg/config"
	"github.com/sakemonkey/sakedb/pkg/db"
	"github.com/sakemonkey/sakedb/pkg/sheet"
)

// openStore connects to the local database, falling back to the
// default location under the user data directory when no path is
// configured.
func openStore(ctx context.Context) (db.Store, error) {
	if cfg.Database.Path == "" {
		cfg.Update([]config.Option{
			config.OptDatabasePath(config.DatabaseFilePath(cfg.HomeDir)),
		})
	}

	store := iostore.New()
	if err := store.Connect(ctx, &cfg.Database); err != nil {
		return nil, err
	}
	return store, nil
}

// openTransport builds the Google Sheets transport from the configured
// spreadsheet and credentials.
func openTransport(ctx context.Context) (sheet.Transport, error) {
	if cfg.Sheets.SpreadsheetID == "" {
		gn.Warn("<em>sheets.spreadsheet_id</em> is not configured")
		gn.Warn("Set it in %s or via SAKEDB_SHEETS_SPREADSHEET_ID",
			config.ConfigFilePath(cfg.HomeDir))
		return nil, fmt.Errorf("spreadsheet ID is not configured")
	}

	credsPath := iosheets.ResolveCredentialsPath(
		cfg.Sheets.CredentialsFile, cfg.HomeDir,
	)
	return iosheets.New(ctx, credsPath, cfg.Sheets.SpreadsheetID)
}
