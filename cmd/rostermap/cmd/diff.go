package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/clanhall/rostermap/internal/cmd/output"
	"github.com/clanhall/rostermap/pkg/differ"
	"github.com/clanhall/rostermap/pkg/reconcile"
	"github.com/clanhall/rostermap/pkg/renames"
	"github.com/clanhall/rostermap/pkg/roster"
)

var diffSave bool

var diffCmd = &cobra.Command{
	Use:   "diff",
	Short: "Compare the two newest roster snapshots",
	Long: `Diff compares the two newest clanrank_*.json snapshots, reports who
joined and left, and folds paired changes sharing a joined date into rename
events. With --save, the changes are written to latest_rsn_changes.json in
the output directory.`,
	RunE: runDiff,
}

func init() {
	diffCmd.Flags().BoolVar(&diffSave, "save", false,
		"write changes to the output directory")
	rootCmd.AddCommand(diffCmd)
}

func runDiff(cmd *cobra.Command, _ []string) error {
	newer, older, err := roster.LoadLatestPair(snapshotsDir())
	if err != nil {
		return err
	}

	changeset, err := differ.New().Snapshots(newer, older)
	if err != nil {
		return err
	}
	rn := renames.Correlate(changeset.Joined, changeset.Left)

	logger().Debug().
		Str("newer", newer.Path).
		Str("older", older.Path).
		Int("renames", len(rn.Events)).
		Msg("compared snapshots")

	changes := &reconcile.Changes{Renames: rn.Events, Joined: rn.Joined, Left: rn.Left}
	if diffSave {
		if err := reconcile.SaveChanges(outputDir(), changes); err != nil {
			return err
		}
		logger().Info().
			Str("path", filepath.Join(outputDir(), reconcile.ChangesFile)).
			Msg("wrote snapshot changes")
	}

	return render(output.ChangesToTableData(changes), changes)
}
