// Package main provides the sakedb CLI application.
// sakedb keeps a local sake-brewing database in sync with a Google
// Sheets spreadsheet.
package main

import (
	"github.com/sakemonkey/sakedb/cmd"
)

func main() {
	cmd.Execute()
}
