package cmd

import (
	"context"

	"github.com/gnames/gn"
	"github.com/sakemonkey/sakedb/internal/iosync"
	"github.com/spf13/cobra"
)

// getVerifyCmd returns the verify command.
func getVerifyCmd() *cobra.Command {
	verifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "Check access to the configured spreadsheet",
		Long: `Confirm the service account can reach the configured spreadsheet
and print its title.

Failures are diagnosed: a mistyped ID, a document that is not a
spreadsheet, or a sheet that was never shared with the service
account each produce a specific message.

Examples:
  sakedb verify`,
		RunE: runVerify,
	}

	return verifyCmd
}

func runVerify(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	store, err := openStore(ctx)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer store.Close()

	transport, err := openTransport(ctx)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	syncer := iosync.New(cfg, store, transport)
	title, err := syncer.Verify(ctx)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info("Connected to spreadsheet <em>%s</em>", title)
	return nil
}
