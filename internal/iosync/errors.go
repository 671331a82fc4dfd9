package iosync

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/sakemonkey/sakedb/pkg/errcode"
)

// NoTablesError creates an error for sync attempted against an
// uninitialized database.
func NoTablesError() error {
	msg := `Local database has no tables

<em>How to fix:</em>
  Run 'sakedb init' first`

	return &gn.Error{
		Code: errcode.StoreEmptyError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("database has no entity tables"),
	}
}

// PullEntityError creates an error for one sheet failing to import.
func PullEntityError(sheetName string, err error) error {
	msg := "Cannot import sheet <em>%s</em>"
	vars := []any{sheetName}

	return &gn.Error{
		Code: errcode.SyncPullEntityError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("pull failed for sheet %s: %w", sheetName, err),
	}
}

// PushEntityError creates an error for one sheet failing to receive
// appended rows.
func PushEntityError(sheetName string, err error) error {
	msg := "Cannot push records to sheet <em>%s</em>"
	vars := []any{sheetName}

	return &gn.Error{
		Code: errcode.SyncPushEntityError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("push failed for sheet %s: %w", sheetName, err),
	}
}

// AllEntitiesFailedError creates an error for a run where no sheet
// succeeded.
func AllEntitiesFailedError() error {
	msg := `Sync failed for every sheet

<em>Possible causes:</em>
  - The spreadsheet is unreachable
  - The sheet names were changed remotely

<em>How to fix:</em>
  1. Run 'sakedb verify' to check access
  2. Check the sheet tabs are named Ingredients, Starters, Recipe
     and PublishNotes`

	return &gn.Error{
		Code: errcode.SyncAllEntitiesFailedError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("all sheets failed to sync"),
	}
}
