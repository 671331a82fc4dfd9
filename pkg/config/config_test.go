package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_Defaults(t *testing.T) {
	cfg := New()

	assert.Equal(t, 500, cfg.Database.BatchSize)
	assert.Empty(t, cfg.Database.Path)
	assert.Empty(t, cfg.Sheets.SpreadsheetID)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "file", cfg.Log.Destination)
}

func TestUpdate(t *testing.T) {
	cfg := New()
	cfg.Update([]Option{
		OptDatabasePath("/tmp/sake.sqlite"),
		OptSheetsSpreadsheetID("1AbC"),
		OptLogLevel("DEBUG"),
		OptLogDestination("stderr"),
	})

	assert.Equal(t, "/tmp/sake.sqlite", cfg.Database.Path)
	assert.Equal(t, "1AbC", cfg.Sheets.SpreadsheetID)
	assert.Equal(t, "debug", cfg.Log.Level, "level is lowercased")
	assert.Equal(t, "stderr", cfg.Log.Destination)
}

func TestUpdate_InvalidValuesIgnored(t *testing.T) {
	cfg := New()
	cfg.Update([]Option{
		OptDatabaseBatchSize(-1),
		OptLogLevel("loud"),
		OptLogFormat("xml"),
		OptSheetsSpreadsheetID("  "),
	})

	assert.Equal(t, 500, cfg.Database.BatchSize)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Empty(t, cfg.Sheets.SpreadsheetID)
}

func TestToOptions_RoundTrip(t *testing.T) {
	cfg := New()
	cfg.Update([]Option{
		OptDatabasePath("/tmp/sake.sqlite"),
		OptSheetsSpreadsheetID("1AbC"),
		OptSheetsCredentialsFile("/tmp/sa.json"),
		OptHomeDir("/home/brewer"),
	})

	fresh := New()
	fresh.Update(cfg.ToOptions())

	assert.Equal(t, cfg.Database, fresh.Database)
	assert.Equal(t, cfg.Sheets, fresh.Sheets)
	assert.Equal(t, cfg.Log, fresh.Log)
	assert.Empty(t, fresh.HomeDir,
		"HomeDir is runtime-only and must not round-trip")
}

func TestPaths(t *testing.T) {
	home := "/home/brewer"

	assert.Equal(t,
		filepath.Join(home, ".config", "sakedb"), ConfigDir(home))
	assert.Equal(t,
		filepath.Join(home, ".config", "sakedb", "config.yaml"),
		ConfigFilePath(home))
	assert.Equal(t,
		filepath.Join(home, ".local", "share", "sakedb", "sake.sqlite"),
		DatabaseFilePath(home))
	assert.Equal(t,
		filepath.Join(home, ".local", "share", "sakedb", "logs"),
		LogDir(home))
	assert.Equal(t,
		filepath.Join(home, ".config", "sakedb", "service_account.json"),
		CredentialsFilePath(home))
}
