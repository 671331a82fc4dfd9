package ioschema

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/sakemonkey/sakedb/pkg/errcode"
)

// NotConnectedError creates an error for when a schema operation is
// attempted without a database connection.
func NotConnectedError() error {
	msg := "Schema operation attempted without database connection"

	return &gn.Error{
		Code: errcode.StoreNotConnectedError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("not connected to database"),
	}
}

// CreateSchemaError creates an error for schema creation failures.
func CreateSchemaError(err error) error {
	msg := `Cannot create database schema

<em>Possible causes:</em>
  - The database file is not writable
  - An existing table is incompatible with the current models

<em>How to fix:</em>
  1. Check permissions on the database file
  2. Move the old database aside and run 'sakedb init' again`

	return &gn.Error{
		Code: errcode.SchemaCreateError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("failed to create schema: %w", err),
	}
}
