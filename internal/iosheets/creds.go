package iosheets

import (
	"encoding/json"
	"os"

	"github.com/sakemonkey/sakedb/pkg/config"
)

// ResolveCredentialsPath picks the service-account JSON location.
// Order: the explicit config value, the GOOGLE_APPLICATION_CREDENTIALS
// environment variable, then the default file in the config directory.
func ResolveCredentialsPath(explicit, homeDir string) string {
	if explicit != "" {
		return explicit
	}
	if env := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); env != "" {
		return env
	}
	return config.CredentialsFilePath(homeDir)
}

// ReadCredentials loads the service-account JSON and extracts the
// client_email identity from it.
func ReadCredentials(path string) ([]byte, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", CredentialsError(path, err)
	}

	var creds struct {
		ClientEmail string `json:"client_email"`
	}
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, "", CredentialsError(path, err)
	}

	return data, creds.ClientEmail, nil
}
