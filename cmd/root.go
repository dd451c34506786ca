// Package cmd implements the CLI commands for frename.
package cmd

import (
	"github.com/alctny/frename/internal/config"
	"github.com/alctny/frename/internal/journal"
	"github.com/alctny/frename/internal/logger"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose   bool
	logJSON   bool
	noJournal bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:     "frename",
	Short:   "A rename tool, like Finder, but cli",
	Version: "0.1",
	Long: `frename renames every entry of one or more directories in a single pass.

Pick a rename mode with a subcommand:
  append    add text before or after the file name
  replace   replace text in the file name
  format    number or date-stamp the file names
  case      convert the case of the file names
  sanitize  strip characters that are illegal in file names

Directories default to the current directory. Extensions are kept unless a
mode is told otherwise, and entries are processed in name order.`,
	// No mode selected: nothing is renamed
	RunE: runDefault,
	// Silence usage and let main print the error
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	defer closeJournal()
	return rootCmd.Execute()
}

func init() {
	// Initialize before running any command
	cobra.OnInitialize(initApp)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output (debug logging)")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "Write log output as JSON")
	rootCmd.PersistentFlags().BoolVar(&noJournal, "no-journal", false, "Do not record renames in the journal")
}

// initApp initializes the application (logger, config)
func initApp() {
	logger.Init(logger.Options{Verbose: verbose, JSON: logJSON})

	if err := config.Init(); err != nil {
		logger.Warn("using default configuration", "error", err)
	}
}

// openJournal opens the journal before a rename command runs. Other
// commands never touch the journal file.
func openJournal(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	disable := noJournal || !cfg.Journal.Enabled
	if err := journal.Init(cfg.Journal.Path, disable); err != nil {
		logger.Warn("journal disabled", "error", err)
	}
	return nil
}

func closeJournal() {
	if err := journal.Close(); err != nil {
		logger.Error("failed to close journal, recent renames may be missing", "error", err)
	}
}

// runDefault runs when no subcommand is given. It renames nothing.
func runDefault(cmd *cobra.Command, args []string) error {
	logger.Debug("no rename mode selected")
	return cmd.Help()
}
