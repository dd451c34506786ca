package cmd

import (
	"github.com/alctny/frename/internal/config"
	"github.com/alctny/frename/internal/rename"
	"github.com/spf13/cobra"
)

var (
	sanitizeRecursive optionalBool
	sanitizeSkipDot   optionalBool
)

var sanitizeCmd = &cobra.Command{
	Use:   "sanitize [flags] [DIR...]",
	Short: "Strip characters that are illegal in file names",
	Long: `Sanitize removes the characters < > : " / \ | ? * and control characters
from the names of the entries in DIR (the current directory by default), then
trims surrounding whitespace. A name that would end up empty is left alone.`,
	PreRunE: openJournal,
	RunE:    runSanitize,
}

func init() {
	rootCmd.AddCommand(sanitizeCmd)
	addTraversalFlags(sanitizeCmd, &sanitizeRecursive, &sanitizeSkipDot, "d")
}

func runSanitize(cmd *cobra.Command, args []string) error {
	cfg := config.Get().Sanitize

	opts := rename.Options{
		Recursive:    sanitizeRecursive.Or(cfg.Recursive),
		SkipHidden:   sanitizeSkipDot.Or(cfg.SkipDot),
		ChangeSuffix: true,
	}
	return runRename(rename.SanitizeRule{}, opts, args)
}
