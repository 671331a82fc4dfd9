package iostore

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/sakemonkey/sakedb/pkg/errcode"
)

// ConnectionError creates an error for SQLite connection failures.
func ConnectionError(path string, err error) error {
	msg := `Cannot open database <em>%s</em>

<em>Possible causes:</em>
  - The parent directory does not exist
  - The file is not a SQLite database
  - Another process holds an exclusive lock

<em>How to fix:</em>
  1. Run 'sakedb init' to create the database
  2. Check the database.path setting in config`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.StoreConnectionError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot open sqlite database %s: %w", path, err),
	}
}

// NotConnectedError creates an error for operations attempted before
// Connect.
func NotConnectedError() error {
	msg := "Database operation attempted without connection"

	return &gn.Error{
		Code: errcode.StoreNotConnectedError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("not connected to database"),
	}
}

// QueryError creates an error for read failures.
func QueryError(subject string, err error) error {
	msg := "Cannot read <em>%s</em> from the database"
	vars := []any{subject}

	return &gn.Error{
		Code: errcode.StoreQueryError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("query failed for %s: %w", subject, err),
	}
}

// UpsertError creates an error for write failures.
func UpsertError(key string, err error) error {
	msg := "Cannot save record <em>%s</em>"
	vars := []any{key}

	return &gn.Error{
		Code: errcode.StoreUpsertError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("upsert failed for %s: %w", key, err),
	}
}
