package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/jbweber/homelab/recordbook/internal/config"
)

const (
	Version = "0.1.0"
)

var (
	v = config.NewViper()

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "recordbook",
		Short: "typed record stores with flat-file persistence",
		Long: fmt.Sprintf(`recordbook (v%s)

Five small console programs (finance, grading, healthcare, inventory and
warehouse) built on a generic in-memory record store that persists to
line files or a SQLite database.`, Version),
		SilenceUsage:      true,
		PersistentPreRunE: bindFlags,
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of recordbook",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "recordbook v%s\n", Version)
		},
	}
)

func init() {
	cobra.OnInitialize(config.LoadEnv)

	defaults := config.NewConfig()
	rootCmd.PersistentFlags().String(config.KeyDataDir, defaults.DataDir, "directory holding the line files")
	rootCmd.PersistentFlags().String(config.KeyBackend, defaults.Backend, "storage backend (file, sqlite)")
	rootCmd.PersistentFlags().String(config.KeyDBPath, defaults.DBPath, "database path for the sqlite backend")

	rootCmd.AddCommand(financeCmd)
	rootCmd.AddCommand(gradingCmd)
	rootCmd.AddCommand(healthcareCmd)
	rootCmd.AddCommand(inventoryCmd)
	rootCmd.AddCommand(warehouseCmd)
	rootCmd.AddCommand(allCmd)
	rootCmd.AddCommand(versionCmd)
}

// bindFlags makes command line flags take precedence over RECORDBOOK_*
// variables and .env files.
func bindFlags(cmd *cobra.Command, _ []string) error {
	if err := v.BindPFlags(cmd.InheritedFlags()); err != nil {
		return err
	}
	return v.BindPFlags(cmd.Flags())
}

func newLogger() *log.Logger {
	return log.New(os.Stderr, "recordbook: ", log.LstdFlags)
}

// Execute runs the root command. Domain errors are reported by the programs
// themselves; only setup failures reach here and exit non-zero.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
