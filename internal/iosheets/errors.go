package iosheets

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gnames/gn"
	"github.com/sakemonkey/sakedb/pkg/errcode"
	"google.golang.org/api/googleapi"
)

// accessError classifies a Sheets API failure so callers can tell
// not-found, forbidden and wrong-resource-type apart.
func (t *transport) accessError(spreadsheetID string, err error) error {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return CallError(spreadsheetID, err)
	}

	switch apiErr.Code {
	case 404:
		return NotFoundError(spreadsheetID, err)
	case 403:
		return ForbiddenError(spreadsheetID, t.email, err)
	case 400:
		// Drive returns this exact phrase when the ID belongs to a
		// non-spreadsheet file, e.g. a folder or a document.
		if strings.Contains(apiErr.Message,
			"not supported for this document") {
			return TypeMismatchError(spreadsheetID, err)
		}
	}
	return CallError(spreadsheetID, err)
}

// NotFoundError creates an error for a spreadsheet ID that does not
// resolve to any document.
func NotFoundError(spreadsheetID string, err error) error {
	msg := `Spreadsheet <em>%s</em> not found

<em>Possible causes:</em>
  - The spreadsheet ID is mistyped
  - The document was deleted

<em>How to fix:</em>
  1. Copy the ID from the sheet URL (between /d/ and /edit)
  2. Update sheets.spreadsheet_id in config`

	vars := []any{spreadsheetID}

	return &gn.Error{
		Code: errcode.SheetNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("spreadsheet %s not found: %w", spreadsheetID, err),
	}
}

// ForbiddenError creates an error for a spreadsheet the service
// account cannot read.
func ForbiddenError(spreadsheetID, email string, err error) error {
	msg := `Access to spreadsheet <em>%s</em> denied

<em>How to fix:</em>
  Share the spreadsheet with <em>%s</em> (Editor role)`

	vars := []any{spreadsheetID, email}

	return &gn.Error{
		Code: errcode.SheetForbiddenError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("access to spreadsheet %s denied for %s: %w",
			spreadsheetID, email, err),
	}
}

// TypeMismatchError creates an error for an ID that belongs to a file
// that is not a spreadsheet.
func TypeMismatchError(spreadsheetID string, err error) error {
	msg := `<em>%s</em> is not a spreadsheet

The ID resolves to a different kind of document, for example a folder
or a text document. Copy the ID from the sheet URL instead.`

	vars := []any{spreadsheetID}

	return &gn.Error{
		Code: errcode.SheetTypeMismatchError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("document %s is not a spreadsheet: %w",
			spreadsheetID, err),
	}
}

// CallError creates an error for any other Sheets API failure.
func CallError(spreadsheetID string, err error) error {
	msg := "Google Sheets call failed for <em>%s</em>"
	vars := []any{spreadsheetID}

	return &gn.Error{
		Code: errcode.SheetCallError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("sheets api call failed: %w", err),
	}
}

// CredentialsError creates an error for unreadable or malformed
// service-account JSON.
func CredentialsError(path string, err error) error {
	msg := `Cannot use service-account credentials <em>%s</em>

<em>How to fix:</em>
  1. Download the service-account JSON from Google Cloud Console
  2. Save it as ~/.config/sakedb/service_account.json, or point
     sheets.credentials_file at it`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.SheetCredentialsError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot load credentials %s: %w", path, err),
	}
}
