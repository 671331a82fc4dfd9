package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gnames/gn"
	"github.com/sakemonkey/sakedb/internal/iosync"
	"github.com/spf13/cobra"
)

// getBackupCmd returns the backup command.
func getBackupCmd() *cobra.Command {
	var (
		force  bool
		dryRun bool
	)

	backupCmd := &cobra.Command{
		Use:   "backup",
		Short: "Mirror the local database onto the sheets",
		Long: `Rewrite every sheet from the local database: header row, then all
local records, then clear whatever stale rows remain below.

Unlike push, backup REPLACES remote content. Rows edited on the
sheets since the last pull are lost, so the command asks for
confirmation unless --force is given.

Examples:
  sakedb backup
  sakedb backup --force
  sakedb backup --dry-run`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBackup(cmd, args, force, dryRun)
		},
	}

	backupCmd.Flags().BoolVarP(&force, "force", "f",
		false, "rewrite the sheets without confirmation")
	backupCmd.Flags().BoolVarP(&dryRun, "dry-run", "n",
		false, "report what would be written without writing")

	return backupCmd
}

func runBackup(
	_ *cobra.Command,
	_ []string,
	force, dryRun bool,
) error {
	ctx := context.Background()
	start := time.Now()

	if !force && !dryRun {
		gn.Warn("Backup replaces ALL sheet content with local data.")
		gn.Warn("Remote edits made since the last pull will be lost.")
		fmt.Print("\nDo you want to continue? (yes/no): ")

		reader := bufio.NewReader(os.Stdin)
		response, err := reader.ReadString('\n')
		if err != nil {
			gn.Warn("Failed to read user input")
			return err
		}

		response = strings.TrimSpace(strings.ToLower(response))
		if response != "yes" && response != "y" {
			gn.Info("Aborted. No changes made.")
			return nil
		}
	}

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

	res, err := syncer.Backup(ctx)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	verb := "Backed up"
	if dryRun {
		verb = "Would back up"
	}
	printSummary(verb, res, time.Since(start))
	return nil
}
