package cmd

import (
	"os"

	"github.com/spf13/viper"

	"github.com/clanhall/rostermap/internal/cmd/output"
	"github.com/clanhall/rostermap/internal/config"
	"github.com/clanhall/rostermap/pkg/discord"
	"github.com/clanhall/rostermap/pkg/match"
)

// render writes data to stdout in the requested (or detected) format,
// using tableData when the format resolves to a table.
func render(tableData output.Data, data any) error {
	format := output.DetectFormat(globalFlags.Output)
	formatter := output.NewFormatter(format)
	if format == output.FormatTable {
		return formatter.Format(os.Stdout, tableData)
	}
	return formatter.Format(os.Stdout, data)
}

func snapshotsDir() string { return viper.GetString(config.KeySnapshotsDir) }
func outputDir() string    { return viper.GetString(config.KeyOutputDir) }

// loadMembers reads the configured Discord member export.
func loadMembers() ([]discord.Member, error) {
	return discord.LoadMembers(viper.GetString(config.KeyMembersCSV))
}

// loadOverrides reads the configured manual match file. A missing file
// means no overrides.
func loadOverrides() (match.Overrides, error) {
	return match.LoadOverrides(viper.GetString(config.KeyOverridesFile))
}

// matcherOptions assembles matcher-related options from configuration.
func matcherOptions() (float64, []string, int, int) {
	return viper.GetFloat64(config.KeyThreshold),
		viper.GetStringSlice(config.KeyExcludedRoles),
		viper.GetInt(config.KeyStripMin),
		viper.GetInt(config.KeyStripMax)
}
