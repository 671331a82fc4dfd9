// Package config provides configuration management for SakeDB.
//
// This package has no I/O dependencies (no file operations, no network
// calls). Validation functions may write user-facing warnings via
// gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml >
// defaults.
//
// # Design Principles
//
//   - Default config (from New()) is always valid - no validation needed
//   - All mutations go through Option functions - the only way to modify
//     Config
//   - Invalid options are rejected with gn.Warn() - config remains in a
//     valid state
//   - ToOptions() converts persistent fields (those in config.yaml)
//   - Environment variables match ToOptions() fields exactly
//
// # Environment Variables
//
// Use SAKEDB_ prefix with underscores for nesting:
//
//	SAKEDB_DATABASE_PATH=/tmp/sake.sqlite
//	SAKEDB_SHEETS_SPREADSHEET_ID=1AbC...
//	SAKEDB_SHEETS_CREDENTIALS_FILE=~/.config/sakedb/service_account.json
//	SAKEDB_LOG_LEVEL=info
package config

// Config represents the complete SakeDB configuration.
type Config struct {
	// Database contains local SQLite settings.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	// Sheets contains the Google Sheets target and credentials.
	Sheets SheetsConfig `mapstructure:"sheets" yaml:"sheets"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// HomeDir determines where config, cache and logs directories
	// reside. It is set by the CLI during init; there is no default.
	HomeDir string `mapstructure:"-" yaml:"-"`
}

// DatabaseConfig contains local SQLite database settings.
type DatabaseConfig struct {
	// Path is the SQLite database file. Empty means the default
	// location under the user data directory.
	Path string `mapstructure:"path" yaml:"path"`

	// BatchSize defines the number of records per batch for bulk
	// upserts during pull.
	BatchSize int `mapstructure:"batch_size" yaml:"batch_size"`
}

// SheetsConfig contains the remote spreadsheet target.
type SheetsConfig struct {
	// SpreadsheetID is the Google Sheets document ID: the string
	// between /d/ and /edit in the sheet URL.
	SpreadsheetID string `mapstructure:"spreadsheet_id" yaml:"spreadsheet_id"`

	// CredentialsFile is the path to the service-account JSON. Empty
	// means resolution via GOOGLE_APPLICATION_CREDENTIALS, then
	// service_account.json in the config directory.
	CredentialsFile string `mapstructure:"credentials_file" yaml:"credentials_file"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Database: DatabaseConfig{
			BatchSize: 500,
		},
		Log: LogConfig{
			Format:      "json",
			Level:       "info",
			Destination: "file",
		},
	}

	return res
}
