package cmd

import (
	"fmt"
	"os"

	"github.com/sakemonkey/sakedb/pkg/sakedb"
	"github.com/spf13/cobra"
)

func versionFlag(cmd *cobra.Command) {
	hasVersionFlag, _ := cmd.Flags().GetBool("version")
	if hasVersionFlag {
		fmt.Printf("\nversion: %s\nbuild: %s\n\n",
			sakedb.Version, sakedb.Build)
		os.Exit(0)
	}
}
