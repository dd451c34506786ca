package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alctny/frename/internal/config"
	"github.com/alctny/frename/internal/constants"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration and show the resolved defaults",
	Long: `Validate parses the frename configuration file and prints the default
used by each rename mode when a flag is not given.

This is useful for:
- Checking that your config.toml syntax is correct
- Seeing which defaults a bare "frename replace" will use`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	configDir, err := config.GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}

	cfg := config.Get()
	source := cfg.Source
	if source == "" {
		// Init falls back to the defaults on a broken file
		configPath := filepath.Join(configDir, constants.ConfigFileName)
		if data, err := os.ReadFile(configPath); err == nil {
			if _, err := config.LoadConfig(data); err != nil {
				return fmt.Errorf("invalid configuration %s: %w", configPath, err)
			}
		}
		source = "embedded defaults"
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Configuration valid!")
	fmt.Fprintf(out, "Source: %s\n", source)
	fmt.Fprintln(out)

	fmt.Fprintf(out, "append:   position=%s recursive=%t skip-dot=%t\n",
		cfg.AppendPosition(), cfg.Append.Recursive, cfg.Append.SkipDot)
	fmt.Fprintf(out, "replace:  recursive=%t skip-dot=%t change-surfix=%t\n",
		cfg.Replace.Recursive, cfg.Replace.SkipDot, cfg.Replace.ChangeSurfix)
	fmt.Fprintf(out, "format:   recursive=%t skip-dot=%t surfix=%t date-layout=%s\n",
		cfg.Format.Recursive, cfg.Format.SkipDot, cfg.Format.Surfix, cfg.Format.DateLayout)
	fmt.Fprintf(out, "case:     recursive=%t skip-dot=%t surfix=%t\n",
		cfg.Case.Recursive, cfg.Case.SkipDot, cfg.Case.Surfix)
	fmt.Fprintf(out, "sanitize: recursive=%t skip-dot=%t\n",
		cfg.Sanitize.Recursive, cfg.Sanitize.SkipDot)
	fmt.Fprintln(out)

	journalPath := cfg.Journal.Path
	if journalPath == "" {
		journalPath = "(default)"
	}
	fmt.Fprintf(out, "journal:  enabled=%t path=%s\n", cfg.Journal.Enabled, journalPath)

	return nil
}
