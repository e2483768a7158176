package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/clanhall/rostermap/internal/cmd/output"
	"github.com/clanhall/rostermap/pkg/reconcile"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Fold detected renames into the saved matched mapping",
	Long: `Update reads the saved matched mapping and the latest snapshot
changes, moves each renamed member's record from the old RSN to the new one,
and writes the result to updated_matched_members.json. Rename events whose
old RSN is not in the mapping (or whose joined date disagrees) are reported
and skipped.`,
	RunE: runUpdate,
}

func init() {
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, _ []string) error {
	dir := outputDir()

	matched, err := reconcile.LoadMatched(filepath.Join(dir, reconcile.MatchedFile))
	if err != nil {
		return err
	}
	changes, err := reconcile.LoadChanges(filepath.Join(dir, reconcile.ChangesFile))
	if err != nil {
		return err
	}

	updated, unapplied := reconcile.ApplyRenames(matched, changes.Renames)
	for _, ev := range unapplied {
		logger().Warn().
			Str("old_rsn", ev.OldRSN).
			Str("new_rsn", ev.NewRSN).
			Msg("rename does not line up with the matched mapping, skipped")
	}

	if err := reconcile.SaveUpdated(dir, updated); err != nil {
		return err
	}

	if !globalFlags.Quiet {
		cmd.Printf("Applied %d of %d renames to %d matched members\n",
			len(changes.Renames)-len(unapplied), len(changes.Renames), len(updated))
	}
	return render(output.MatchedToTableData(updated), updated)
}
