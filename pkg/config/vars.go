package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "sakedb"

	// CredentialsFileName is the default service-account JSON name
	// looked up in the config directory.
	CredentialsFileName = "service_account.json"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/sakedb by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// CacheDir returns the directory path for cache files.
// Returns ~/.cache/sakedb by default.
func CacheDir(homeDir string) string {
	return filepath.Join(homeDir, ".cache", AppName)
}

// DataDir returns the directory path for the local database.
// Returns ~/.local/share/sakedb by default.
func DataDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/sakedb/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(DataDir(homeDir), "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/sakedb/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// DatabaseFilePath returns the default SQLite file location.
// Returns ~/.local/share/sakedb/sake.sqlite by default.
func DatabaseFilePath(homeDir string) string {
	return filepath.Join(DataDir(homeDir), "sake.sqlite")
}

// CredentialsFilePath returns the default service-account JSON
// location inside the config directory.
func CredentialsFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), CredentialsFileName)
}
