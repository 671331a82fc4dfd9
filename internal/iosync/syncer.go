// Package iosync implements the Syncer contract: bidirectional
// reconciliation between the local SQLite store and the remote
// spreadsheet. Pull merges remote rows into the store; push appends
// local-only records to the sheets. This is an impure I/O package that
// implements contracts defined in pkg/.
package iosync

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/sakemonkey/sakedb/pkg/config"
	"github.com/sakemonkey/sakedb/pkg/db"
	"github.com/sakemonkey/sakedb/pkg/sakedb"
	"github.com/sakemonkey/sakedb/pkg/sheet"
)

// syncer implements the sakedb.Syncer interface.
type syncer struct {
	cfg       *config.Config
	store     db.Store
	transport sheet.Transport

	// runID tags every log line of one sync run so interleaved runs
	// can be told apart.
	runID string

	dryRun   bool
	progress bool
}

// Option modifies the syncer.
type Option func(*syncer)

// OptDryRun makes Push report what it would append without writing
// anything to the spreadsheet.
func OptDryRun(b bool) Option {
	return func(s *syncer) {
		s.dryRun = b
	}
}

// OptProgress toggles the terminal progress bar during pull. Off by
// default; the CLI turns it on for interactive runs.
func OptProgress(b bool) Option {
	return func(s *syncer) {
		s.progress = b
	}
}

// New creates a Syncer over a connected store and transport.
func New(
	cfg *config.Config,
	store db.Store,
	transport sheet.Transport,
	opts ...Option,
) sakedb.Syncer {
	res := &syncer{
		cfg:       cfg,
		store:     store,
		transport: transport,
		runID:     uuid.NewString(),
	}
	for _, opt := range opts {
		opt(res)
	}
	return res
}

// Verify confirms the transport can read the spreadsheet metadata and
// returns its title.
func (s *syncer) Verify(ctx context.Context) (string, error) {
	id := s.cfg.Sheets.SpreadsheetID

	title, err := s.transport.VerifyAccess(ctx, id)
	if err != nil {
		slog.Error("Spreadsheet verification failed",
			"run_id", s.runID, "spreadsheet_id", id, "error", err)
		return "", err
	}

	slog.Info("Spreadsheet verified",
		"run_id", s.runID, "spreadsheet_id", id, "title", title)
	return title, nil
}
