// Package iosheets implements the sheet.Transport contract against the
// Google Sheets API using a service account. This is an impure I/O
// package that implements contracts defined in pkg/.
package iosheets

import (
	"context"
	"fmt"

	"github.com/sakemonkey/sakedb/pkg/sheet"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// scope grants full read/write access to spreadsheets the service
// account was shared on.
const scope = "https://www.googleapis.com/auth/spreadsheets"

// transport implements sheet.Transport using the sheets/v4 service.
type transport struct {
	svc           *sheets.Service
	spreadsheetID string

	// email is the service-account identity, surfaced in
	// permission-denied messages so the user knows whom to share the
	// sheet with.
	email string
}

// New creates a Transport authenticated from the service-account JSON
// at credsPath, bound to one spreadsheet.
func New(
	ctx context.Context,
	credsPath, spreadsheetID string,
) (sheet.Transport, error) {
	data, email, err := ReadCredentials(credsPath)
	if err != nil {
		return nil, err
	}

	jwtCfg, err := google.JWTConfigFromJSON(data, scope)
	if err != nil {
		return nil, CredentialsError(credsPath, err)
	}

	svc, err := sheets.NewService(
		ctx, option.WithHTTPClient(jwtCfg.Client(ctx)),
	)
	if err != nil {
		return nil, CredentialsError(credsPath, err)
	}

	return &transport{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		email:         email,
	}, nil
}

// VerifyAccess fetches the spreadsheet metadata and returns its title.
func (t *transport) VerifyAccess(
	ctx context.Context,
	spreadsheetID string,
) (string, error) {
	ss, err := t.svc.Spreadsheets.Get(spreadsheetID).
		Fields("properties.title").Context(ctx).Do()
	if err != nil {
		return "", t.accessError(spreadsheetID, err)
	}

	if ss.Properties == nil {
		return "", nil
	}
	return ss.Properties.Title, nil
}

// Rows returns all occupied rows of the named sheet, header first.
func (t *transport) Rows(
	ctx context.Context,
	sheetName string,
) ([][]string, error) {
	resp, err := t.svc.Spreadsheets.Values.
		Get(t.spreadsheetID, sheetName).
		Context(ctx).Do()
	if err != nil {
		return nil, t.accessError(t.spreadsheetID, err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, len(raw))
		for i, cell := range raw {
			row[i] = fmt.Sprintf("%v", cell)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// WriteRows overwrites cells starting at startCell.
func (t *transport) WriteRows(
	ctx context.Context,
	sheetName, startCell string,
	rows [][]string,
) error {
	rng := fmt.Sprintf("%s!%s", sheetName, startCell)
	_, err := t.svc.Spreadsheets.Values.
		Update(t.spreadsheetID, rng, valueRange(rows)).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return t.accessError(t.spreadsheetID, err)
	}
	return nil
}

// AppendRows writes rows starting at column A of the 1-indexed
// afterRow.
func (t *transport) AppendRows(
	ctx context.Context,
	sheetName string,
	afterRow int,
	rows [][]string,
) error {
	return t.WriteRows(ctx, sheetName, fmt.Sprintf("A%d", afterRow), rows)
}

// ClearRange blanks a rectangular range such as "A10:ZZ100".
func (t *transport) ClearRange(
	ctx context.Context,
	sheetName, rng string,
) error {
	fullRange := fmt.Sprintf("%s!%s", sheetName, rng)
	_, err := t.svc.Spreadsheets.Values.
		Clear(t.spreadsheetID, fullRange, &sheets.ClearValuesRequest{}).
		Context(ctx).Do()
	if err != nil {
		return t.accessError(t.spreadsheetID, err)
	}
	return nil
}

// valueRange converts string rows to the API payload.
func valueRange(rows [][]string) *sheets.ValueRange {
	values := make([][]interface{}, len(rows))
	for i, row := range rows {
		cells := make([]interface{}, len(row))
		for j, cell := range row {
			cells[j] = cell
		}
		values[i] = cells
	}
	return &sheets.ValueRange{Values: values}
}
