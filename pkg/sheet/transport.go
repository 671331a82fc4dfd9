// Package sheet defines the contract for the remote tabular store.
// The Google Sheets implementation lives in internal/iosheets.
package sheet

import (
	"context"
)

// Transport reads and writes rectangular cell ranges of a remote
// spreadsheet. All methods are blocking request/response calls with no
// retry built in; failures surface immediately as *gn.Error values
// with errcode.Sheet* codes so callers can tell not-found, forbidden,
// wrong-resource-type and plain call failures apart.
type Transport interface {
	// VerifyAccess confirms the caller can read the spreadsheet
	// metadata and returns its title.
	VerifyAccess(ctx context.Context, spreadsheetID string) (string, error)

	// Rows returns all occupied rows of the named sheet. The first row
	// is the header. A sheet with no occupied cells returns zero rows.
	Rows(ctx context.Context, sheetName string) ([][]string, error)

	// WriteRows overwrites cells starting at startCell (e.g. "A1").
	WriteRows(ctx context.Context, sheetName, startCell string, rows [][]string) error

	// AppendRows writes rows starting at column A of the 1-indexed
	// afterRow. The write is all-or-nothing for the batch.
	AppendRows(ctx context.Context, sheetName string, afterRow int, rows [][]string) error

	// ClearRange blanks a rectangular range such as "A10:ZZ100".
	ClearRange(ctx context.Context, sheetName, rng string) error
}
