// Package config centralizes Viper keys and defaults for the CLI.
package config

import (
	"os"

	"github.com/spf13/viper"

	"github.com/clanhall/rostermap/pkg/match"
)

// Viper keys. Flags, config file entries, and ROSTERMAP_* environment
// variables all resolve through these.
const (
	KeySnapshotsDir  = "snapshots_dir"
	KeyOutputDir     = "output_dir"
	KeyMembersCSV    = "members_csv"
	KeyOverridesFile = "overrides_file"
	KeyThreshold     = "threshold"
	KeyExcludedRoles = "excluded_roles"
	KeyStripMin      = "strip_min"
	KeyStripMax      = "strip_max"
)

// SetDefaults installs the default configuration values.
func SetDefaults() {
	viper.SetDefault(KeySnapshotsDir, "data")
	viper.SetDefault(KeyOutputDir, "data")
	viper.SetDefault(KeyMembersCSV, "discord_members.csv")
	viper.SetDefault(KeyOverridesFile, "manual_matches.json")
	viper.SetDefault(KeyThreshold, match.DefaultThreshold)
	viper.SetDefault(KeyExcludedRoles, match.DefaultExcludedRoles())
	viper.SetDefault(KeyStripMin, match.DefaultStripMin)
	viper.SetDefault(KeyStripMax, match.DefaultStripMax)
}

// GetString gets a string value, preferring the OS environment when Viper
// has nothing bound for the key.
func GetString(key string) string {
	if v := viper.GetString(key); v != "" {
		return v
	}
	return os.Getenv(key)
}
