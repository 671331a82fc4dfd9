package cmd

import (
	"context"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/sakemonkey/sakedb/internal/iosync"
	"github.com/sakemonkey/sakedb/pkg/sakedb"
	"github.com/spf13/cobra"
)

// getPullCmd returns the pull command.
func getPullCmd() *cobra.Command {
	pullCmd := &cobra.Command{
		Use:   "pull",
		Short: "Import sheet rows into the local database",
		Long: `Read every entity sheet and merge its rows into the local
database.

Rows are matched by primary key. A row that is new locally is
inserted; an existing record is updated field by field, and a blank
remote cell never clears a locally held value. Rows without a primary
key are logged and skipped.

Each sheet commits as one batch. A sheet that fails leaves the other
sheets' imports intact; the command fails only when every sheet
failed.

Examples:
  sakedb pull`,
		RunE: runPull,
	}

	return pullCmd
}

func runPull(_ *cobra.Command, _ []string) error {
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

	res, err := syncer.Pull(ctx)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	printSummary("Imported", res, time.Since(start))
	return nil
}

// printSummary reports per-sheet and total counts for a sync run.
func printSummary(
	verb string,
	res *sakedb.Result,
	dur time.Duration,
) {
	for _, e := range res.Entities {
		if e.Err != nil {
			gn.Warn("<warn>%s failed</warn>", e.Sheet)
			continue
		}
		gn.Info("<em>%s</em>: %s written, %s skipped",
			e.Sheet,
			humanize.Comma(int64(e.Written)),
			humanize.Comma(int64(e.Skipped)),
		)
	}

	gn.Info("%s <em>%s</em> records in %s",
		verb,
		humanize.Comma(int64(res.Written())),
		gnfmt.TimeString(dur.Seconds()),
	)
}
