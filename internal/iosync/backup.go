package iosync

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sakemonkey/sakedb/pkg/sakedb"
)

// clearDepth bounds the range blanked below a mirrored block. Sheets
// in this dataset hold at most a few hundred rows.
const clearDepth = 10000

// Backup mirrors the local database onto the sheets: every sheet is
// rewritten from its entity table, header included, and rows below the
// written block are cleared. This is the one operation that rewrites
// remote rows, so it lives behind its own command instead of push.
func (s *syncer) Backup(ctx context.Context) (*sakedb.Result, error) {
	has, err := s.store.HasTables(ctx)
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, NoTablesError()
	}

	slog.Info("Starting backup",
		"run_id", s.runID,
		"spreadsheet_id", s.cfg.Sheets.SpreadsheetID,
		"dry_run", s.dryRun)

	res := &sakedb.Result{}
	for _, e := range entities() {
		res.Entities = append(res.Entities, s.backupEntity(ctx, e))
	}

	if res.Failed() == len(res.Entities) {
		return res, AllEntitiesFailedError()
	}

	slog.Info("Backup complete",
		"run_id", s.runID,
		"written", res.Written(),
		"failed_sheets", res.Failed())
	return res, nil
}

// backupEntity rewrites one sheet from its entity table.
func (s *syncer) backupEntity(
	ctx context.Context,
	e entity,
) sakedb.EntityResult {
	res := sakedb.EntityResult{Sheet: e.table.Name}

	records, err := e.list(ctx, s.store)
	if err != nil {
		res.Err = PushEntityError(e.table.Name, err)
		slog.Error("Listing local records failed",
			"run_id", s.runID, "sheet", e.table.Name, "error", err)
		return res
	}
	res.Processed = len(records)

	if s.dryRun {
		res.Written = len(records)
		slog.Info("Dry run, sheet not rewritten",
			"run_id", s.runID,
			"sheet", e.table.Name,
			"would_write", len(records))
		return res
	}

	rows := make([][]string, 0, len(records)+1)
	rows = append(rows, e.table.Columns)
	for _, rec := range records {
		rows = append(rows, rec.Row(e.table))
	}

	if err := s.transport.WriteRows(
		ctx, e.table.Name, "A1", rows,
	); err != nil {
		res = sakedb.EntityResult{
			Sheet: e.table.Name,
			Err:   PushEntityError(e.table.Name, err),
		}
		slog.Error("Rewriting sheet failed",
			"run_id", s.runID, "sheet", e.table.Name, "error", err)
		return res
	}

	// Blank whatever the previous content left below the new block.
	rng := fmt.Sprintf("A%d:ZZ%d", len(rows)+1, clearDepth)
	if err := s.transport.ClearRange(ctx, e.table.Name, rng); err != nil {
		slog.Warn("Clearing stale rows failed",
			"run_id", s.runID, "sheet", e.table.Name, "error", err)
	}

	res.Written = len(records)
	slog.Info("Sheet rewritten",
		"run_id", s.runID,
		"sheet", e.table.Name,
		"written", res.Written)
	return res
}
