package cmd

import (
	"github.com/spf13/cobra"

	"github.com/clanhall/rostermap/internal/cmd/output"
	"github.com/clanhall/rostermap/pkg/roster"
)

var ranksCmd = &cobra.Command{
	Use:   "ranks",
	Short: "Show the rank lookup from the latest roster snapshot",
	Long: `Ranks loads the newest clanrank_*.json snapshot from the snapshots
directory and prints each member's rank and joined date.`,
	RunE: runRanks,
}

func init() {
	rootCmd.AddCommand(ranksCmd)
}

func runRanks(cmd *cobra.Command, _ []string) error {
	snapshot, err := roster.LoadLatest(snapshotsDir())
	if err != nil {
		return err
	}
	ranks := roster.BuildRanks(snapshot)

	logger().Debug().
		Str("snapshot", snapshot.Path).
		Int("members", len(ranks)).
		Msg("built rank lookup")

	return render(output.RanksToTableData(ranks), ranks)
}
