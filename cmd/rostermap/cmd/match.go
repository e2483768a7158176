package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/clanhall/rostermap"
	"github.com/clanhall/rostermap/internal/cmd/output"
	"github.com/clanhall/rostermap/pkg/reconcile"
	"github.com/clanhall/rostermap/pkg/roster"
)

var matchSave bool

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Match roster names to Discord members",
	Long: `Match links each roster name from the latest snapshot to a Discord
member from the configured CSV export. Manual overrides apply first; the
heuristic chain handles the rest. With --save, the matched, unmatched, and
excluded sets are written to the output directory.`,
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().BoolVar(&matchSave, "save", false,
		"write result files to the output directory")
	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	start := time.Now()

	snapshot, err := roster.LoadLatest(snapshotsDir())
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

	report := rm.Match(cmd.Context(), snapshot.Entries, members)
	result := reconcile.Build(report, roster.BuildRanks(snapshot), nil, start)

	if matchSave {
		if err := reconcile.Save(outputDir(), result); err != nil {
			return err
		}
		logger().Info().Str("dir", outputDir()).Msg("wrote result files")
	}

	if !globalFlags.Quiet {
		cmd.Println(result.Summary())
	}
	return render(output.MatchedToTableData(result.Matched), result)
}
