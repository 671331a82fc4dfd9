package iosync

import (
	"context"
	"log/slog"

	"github.com/cheggaaa/pb/v3"
	"github.com/sakemonkey/sakedb/pkg/codec"
	"github.com/sakemonkey/sakedb/pkg/db"
	"github.com/sakemonkey/sakedb/pkg/sakedb"
)

// Pull imports all entity sheets into the local store in dependency
// order. Each entity commits as one transaction; a failed entity does
// not roll back entities already committed, and the run only fails as
// a whole when every entity failed.
func (s *syncer) Pull(ctx context.Context) (*sakedb.Result, error) {
	has, err := s.store.HasTables(ctx)
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, NoTablesError()
	}

	slog.Info("Starting pull",
		"run_id", s.runID,
		"spreadsheet_id", s.cfg.Sheets.SpreadsheetID)

	res := &sakedb.Result{}
	for _, e := range entities() {
		res.Entities = append(res.Entities, s.pullEntity(ctx, e))
	}

	if res.Failed() == len(res.Entities) {
		return res, AllEntitiesFailedError()
	}

	slog.Info("Pull complete",
		"run_id", s.runID,
		"written", res.Written(),
		"skipped", res.Skipped(),
		"failed_sheets", res.Failed())
	return res, nil
}

// pullEntity reads one sheet and merges its rows into the store inside
// a single transaction. Rows that fail to decode are logged and
// skipped; a store error aborts and rolls back the whole sheet.
func (s *syncer) pullEntity(
	ctx context.Context,
	e entity,
) sakedb.EntityResult {
	res := sakedb.EntityResult{Sheet: e.table.Name}

	rows, err := s.transport.Rows(ctx, e.table.Name)
	if err != nil {
		res.Err = PullEntityError(e.table.Name, err)
		slog.Error("Sheet read failed",
			"run_id", s.runID, "sheet", e.table.Name, "error", err)
		return res
	}

	if len(rows) < 2 {
		slog.Info("Sheet has no data rows",
			"run_id", s.runID, "sheet", e.table.Name)
		return res
	}

	header := rows[0]
	data := rows[1:]
	res.Processed = len(data)

	var bar *pb.ProgressBar
	if s.progress {
		bar = pb.Full.Start(len(data))
		bar.Set(pb.CleanOnFinish, true)
	}

	err = s.store.Transaction(ctx, func(tx db.Store) error {
		for i, row := range data {
			if bar != nil {
				bar.Increment()
			}

			fields := codec.ZipRow(header, row)
			rec, decodeErr := e.decode(fields)
			if decodeErr != nil {
				// Row-local problem: count it and move on. The sheet
				// row number is 1-indexed and offset by the header.
				res.Skipped++
				slog.Warn("Skipping row",
					"run_id", s.runID,
					"sheet", e.table.Name,
					"row", i+2,
					"error", decodeErr)
				continue
			}

			if err := e.upsert(ctx, tx, rec); err != nil {
				return err
			}
			res.Written++
		}
		return nil
	})

	if bar != nil {
		bar.Finish()
	}

	if err != nil {
		// The transaction rolled back: nothing from this sheet landed.
		res = sakedb.EntityResult{
			Sheet: e.table.Name,
			Err:   PullEntityError(e.table.Name, err),
		}
		slog.Error("Sheet import rolled back",
			"run_id", s.runID, "sheet", e.table.Name, "error", err)
		return res
	}

	slog.Info("Sheet imported",
		"run_id", s.runID,
		"sheet", e.table.Name,
		"rows", res.Processed,
		"written", res.Written,
		"skipped", res.Skipped)
	return res
}
