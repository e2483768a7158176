// Package cmd implements the rostermap CLI commands.
package cmd

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/clanhall/rostermap/internal/cmd/globals"
	"github.com/clanhall/rostermap/internal/config"
	"github.com/clanhall/rostermap/pkg/logging"
)

var (
	configFile  string
	globalFlags *globals.Flags

	// Version information set by main.
	Version = "dev"
	// Commit is the git commit hash.
	Commit = "unknown"
	// Date is the build date.
	Date = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "rostermap",
	Short: "Clan roster / Discord reconciliation",
	Long: `Rostermap reconciles a clan's in-game roster with its Discord server.

It matches roster names to Discord members through exact, containment, and
similarity heuristics, diffs roster snapshots to find joins and leaves, and
detects renames by correlating paired changes on their joined date.`,
	PersistentPreRun: setupLogging,
}

// Execute adds all child commands to the root command and runs it.
func Execute(version, commit, date string) {
	Version = version
	Commit = commit
	Date = date

	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"config file (default is $HOME/.rostermap.yaml)")
	globalFlags = globals.AddFlags(rootCmd)

	rootCmd.PersistentFlags().String("snapshots-dir", "",
		"directory holding clanrank_*.json roster snapshots")
	rootCmd.PersistentFlags().String("output-dir", "",
		"directory for result files")
	rootCmd.PersistentFlags().String("members", "",
		"Discord member export CSV")
	rootCmd.PersistentFlags().String("overrides", "",
		"manual match overrides JSON")

	cobra.CheckErr(viper.BindPFlag(config.KeySnapshotsDir, rootCmd.PersistentFlags().Lookup("snapshots-dir")))
	cobra.CheckErr(viper.BindPFlag(config.KeyOutputDir, rootCmd.PersistentFlags().Lookup("output-dir")))
	cobra.CheckErr(viper.BindPFlag(config.KeyMembersCSV, rootCmd.PersistentFlags().Lookup("members")))
	cobra.CheckErr(viper.BindPFlag(config.KeyOverridesFile, rootCmd.PersistentFlags().Lookup("overrides")))
}

// initConfig reads in the config file and environment variables.
func initConfig() {
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".rostermap")
	}

	// Load .env before Viper env binding so both sources agree.
	_ = godotenv.Load()

	viper.SetEnvPrefix("rostermap")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	config.SetDefaults()

	// Missing config file is fine; defaults and env cover everything.
	_ = viper.ReadInConfig()
}

// setupLogging configures the default logger from the global flags.
func setupLogging(cmd *cobra.Command, _ []string) {
	flags := globals.Parse(cmd)

	cfg := logging.DefaultConfig()
	switch {
	case flags.Quiet:
		cfg.Level = "error"
	case flags.Verbose:
		cfg.Level = "debug"
	}
	cfg.NoColor = flags.NoColor
	logging.Configure(cfg)
}

// logger returns the default logger for command bodies.
func logger() *zerolog.Logger {
	return logging.Default()
}
