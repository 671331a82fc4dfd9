package cmd

import (
	"context"
	"time"

	"github.com/gnames/gn"
	"github.com/sakemonkey/sakedb/internal/iosync"
	"github.com/spf13/cobra"
)

// getSyncCmd returns the sync command.
func getSyncCmd() *cobra.Command {
	syncCmd := &cobra.Command{
		Use:   "sync",
		Short: "Pull then push in one run",
		Long: `Run a full bidirectional sync: pull remote rows into the local
database, then push local-only records back to the sheets.

Pull runs first, so records created remotely land locally before the
push decides what is missing on the sheets.

Examples:
  sakedb sync`,
		RunE: runSync,
	}

	return syncCmd
}

func runSync(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	start := time.Now()

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

	syncer := iosync.New(cfg, store, transport,
		iosync.OptProgress(true))

	title, err := syncer.Verify(ctx)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	gn.Info("Spreadsheet: <em>%s</em>", title)

	pullRes, err := syncer.Pull(ctx)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	printSummary("Imported", pullRes, time.Since(start))

	pushStart := time.Now()
	pushRes, err := syncer.Push(ctx)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	printSummary("Appended", pushRes, time.Since(pushStart))

	return nil
}
