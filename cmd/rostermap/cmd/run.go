package cmd

import (
	"github.com/spf13/cobra"

	"github.com/clanhall/rostermap"
	"github.com/clanhall/rostermap/internal/cmd/output"
	"github.com/clanhall/rostermap/pkg/errors"
	"github.com/clanhall/rostermap/pkg/reconcile"
	"github.com/clanhall/rostermap/pkg/roster"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full reconciliation pipeline",
	Long: `Run executes the whole pipeline: match the latest snapshot against
the Discord export, compare it with the previous snapshot, correlate renames,
and write every result file to the output directory. With a single snapshot
on disk, the matching stage still runs; the comparison is skipped.`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, _ []string) error {
	current, previous, err := roster.LoadLatestPair(snapshotsDir())
	if errors.IsInsufficientData(err) {
		logger().Warn().Msg("fewer than two snapshots on disk, skipping comparison")
		current, err = roster.LoadLatest(snapshotsDir())
		previous = nil
	}
	if err != nil {
		return err
	}

	members, err := loadMembers()
	if err != nil {
		return err
	}
	overrides, err := loadOverrides()
	if err != nil {
		return err
	}

	threshold, excluded, stripMin, stripMax := matcherOptions()
	rm, err := rostermap.New(
		rostermap.WithThreshold(threshold),
		rostermap.WithExcludedRoles(excluded...),
		rostermap.WithStripDigitsWindow(stripMin, stripMax),
		rostermap.WithOverrides(overrides),
	)
	if err != nil {
		return err
	}

	result, err := rm.Run(cmd.Context(), rostermap.Inputs{
		Current:  current,
		Previous: previous,
		Members:  members,
	})
	if err != nil {
		return err
	}

	if err := reconcile.Save(outputDir(), result); err != nil {
		return err
	}
	if result.HasChanges() {
		updated, _ := reconcile.ApplyRenames(result.Matched, result.Renames)
		if err := reconcile.SaveUpdated(outputDir(), updated); err != nil {
			return err
		}
	}

	if !globalFlags.Quiet {
		cmd.Print(result.Report())
	}
	return render(output.MatchedToTableData(result.Matched), result)
}
