package cmd

import (
	"context"
	"time"

	"github.com/gnames/gn"
	"github.com/sakemonkey/sakedb/internal/iosync"
	"github.com/spf13/cobra"
)

// getPushCmd returns the push command.
func getPushCmd() *cobra.Command {
	var dryRun bool

	pushCmd := &cobra.Command{
		Use:   "push",
		Short: "Append local-only records to the sheets",
		Long: `Append records that exist locally but not on the sheets.

Push is strictly additive: a record whose primary key is already on a
sheet is never rewritten, so remote edits survive and pushing twice
appends nothing the second time. An empty sheet is seeded with its
header row first.

Use --dry-run to see what would be appended without writing.

Examples:
  sakedb push
  sakedb push --dry-run`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPush(cmd, args, dryRun)
		},
	}

	pushCmd.Flags().BoolVarP(&dryRun, "dry-run", "n",
		false, "report what would be appended without writing")

	return pushCmd
}

func runPush(_ *cobra.Command, _ []string, dryRun bool) error {
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
		iosync.OptDryRun(dryRun))

	title, err := syncer.Verify(ctx)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	gn.Info("Spreadsheet: <em>%s</em>", title)

	res, err := syncer.Push(ctx)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	verb := "Appended"
	if dryRun {
		verb = "Would append"
	}
	printSummary(verb, res, time.Since(start))
	return nil
}
