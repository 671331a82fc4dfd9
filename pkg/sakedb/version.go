// Package sakedb defines the lifecycle interfaces of the SakeDB tool:
// schema management for the local brewing database and bidirectional
// synchronization with the master Google Sheets spreadsheet.
package sakedb

var (
	// Version is the application version, set by build flags.
	Version = "v0.1.0"

	// Build is the build timestamp, set by build flags.
	Build = "n/a"
)
