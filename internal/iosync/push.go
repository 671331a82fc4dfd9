package iosync

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/sakemonkey/sakedb/pkg/sakedb"
	"github.com/sakemonkey/sakedb/pkg/schema"
)

// Push appends local-only records to the remote sheets. Records whose
// key already exists remotely are never rewritten, so pushing twice in
// a row appends nothing the second time.
func (s *syncer) Push(ctx context.Context) (*sakedb.Result, error) {
	has, err := s.store.HasTables(ctx)
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, NoTablesError()
	}

	slog.Info("Starting push",
		"run_id", s.runID,
		"spreadsheet_id", s.cfg.Sheets.SpreadsheetID,
		"dry_run", s.dryRun)

	res := &sakedb.Result{}
	for _, e := range entities() {
		res.Entities = append(res.Entities, s.pushEntity(ctx, e))
	}

	if res.Failed() == len(res.Entities) {
		return res, AllEntitiesFailedError()
	}

	slog.Info("Push complete",
		"run_id", s.runID,
		"appended", res.Written(),
		"failed_sheets", res.Failed())
	return res, nil
}

// pushEntity appends local records missing from one sheet. An empty
// sheet receives the header row first; an occupied sheet gets new rows
// below its last occupied row.
func (s *syncer) pushEntity(
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

	rows, err := s.transport.Rows(ctx, e.table.Name)
	if err != nil {
		res = sakedb.EntityResult{
			Sheet: e.table.Name,
			Err:   PushEntityError(e.table.Name, err),
		}
		slog.Error("Sheet read failed",
			"run_id", s.runID, "sheet", e.table.Name, "error", err)
		return res
	}

	if len(rows) == 0 {
		return s.pushToEmptySheet(ctx, e, records, res)
	}

	keyIdx := headerIndex(rows[0], e.table.Key)
	if keyIdx < 0 {
		res = sakedb.EntityResult{
			Sheet: e.table.Name,
			Err: PushEntityError(e.table.Name,
				fmt.Errorf("sheet has no %s column", e.table.Key)),
		}
		return res
	}

	existing := make(map[string]struct{}, len(rows)-1)
	for _, row := range rows[1:] {
		if keyIdx >= len(row) {
			continue
		}
		if key := strings.TrimSpace(row[keyIdx]); key != "" {
			existing[key] = struct{}{}
		}
	}

	var newRows [][]string
	for _, rec := range records {
		if _, ok := existing[rec.Key()]; ok {
			continue
		}
		newRows = append(newRows, rec.Row(e.table))
	}

	if len(newRows) == 0 {
		slog.Info("Sheet already has every local record",
			"run_id", s.runID, "sheet", e.table.Name)
		return res
	}

	if s.dryRun {
		res.Written = len(newRows)
		slog.Info("Dry run, rows not appended",
			"run_id", s.runID,
			"sheet", e.table.Name,
			"would_append", len(newRows))
		return res
	}

	// New rows go right below the last occupied row.
	if err := s.transport.AppendRows(
		ctx, e.table.Name, len(rows)+1, newRows,
	); err != nil {
		res = sakedb.EntityResult{
			Sheet: e.table.Name,
			Err:   PushEntityError(e.table.Name, err),
		}
		slog.Error("Appending rows failed",
			"run_id", s.runID, "sheet", e.table.Name, "error", err)
		return res
	}

	res.Written = len(newRows)
	slog.Info("Rows appended",
		"run_id", s.runID,
		"sheet", e.table.Name,
		"appended", res.Written)
	return res
}

// pushToEmptySheet seeds a sheet that has no occupied cells: header
// first, then every local record.
func (s *syncer) pushToEmptySheet(
	ctx context.Context,
	e entity,
	records []schema.Record,
	res sakedb.EntityResult,
) sakedb.EntityResult {
	newRows := make([][]string, 0, len(records)+1)
	newRows = append(newRows, e.table.Columns)
	for _, rec := range records {
		newRows = append(newRows, rec.Row(e.table))
	}

	if s.dryRun {
		res.Written = len(records)
		slog.Info("Dry run, sheet not seeded",
			"run_id", s.runID,
			"sheet", e.table.Name,
			"would_append", len(records))
		return res
	}

	if err := s.transport.WriteRows(
		ctx, e.table.Name, "A1", newRows,
	); err != nil {
		res = sakedb.EntityResult{
			Sheet: e.table.Name,
			Err:   PushEntityError(e.table.Name, err),
		}
		slog.Error("Seeding empty sheet failed",
			"run_id", s.runID, "sheet", e.table.Name, "error", err)
		return res
	}

	res.Written = len(records)
	slog.Info("Empty sheet seeded",
		"run_id", s.runID,
		"sheet", e.table.Name,
		"appended", res.Written)
	return res
}

// headerIndex finds the key column, tolerating stray whitespace in the
// header cells.
func headerIndex(header []string, key string) int {
	return slices.IndexFunc(header, func(cell string) bool {
		return strings.TrimSpace(cell) == key
	})
}
