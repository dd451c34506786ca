package cmd

import (
	"time"

	"github.com/alctny/frename/internal/config"
	"github.com/alctny/frename/internal/rename"
	"github.com/spf13/cobra"
)

var (
	formatKind        formatKindValue
	formatPosition    positionValue
	formatCustom      string
	formatStartNumber string
	formatRecursive   optionalBool
	formatSkipDot     optionalBool
	formatSurfix      optionalBool
)

// now is the clock used by the date format.
var now = time.Now

var formatCmd = &cobra.Command{
	Use:   "format -f KIND -p POSITION -c TEXT [flags] [DIR...]",
	Short: "Number or date-stamp each file name",
	Long: `Format adds a generated token and custom text to the stem of every entry
in DIR (the current directory by default).

Kinds:
  index    start, start+1, ... restarting in every directory
  counter  start, start+1, ... across the whole run
  date     the date given by --start-number (YYYY-MM-DD or YYYYMMDD), or today

--start-number defaults to 1. A leading zero sets the width: 001 gives
001, 002, ...

  frename format -f index -p before -c _ -n 01 .   a.txt -> 01_a.txt
  frename format -f date -p after -c - .           a.txt -> a-2024-05-01.txt`,
	PreRunE: openJournal,
	RunE:    runFormat,
}

func init() {
	rootCmd.AddCommand(formatCmd)
	formatCmd.Flags().VarP(&formatKind, "format", "f", "Token kind: index, date or counter")
	formatCmd.Flags().VarP(&formatPosition, "position", "p", "Where the token goes: before or after")
	formatCmd.Flags().StringVarP(&formatCustom, "custom", "c", "", "Text between the token and the name")
	formatCmd.Flags().StringVarP(&formatStartNumber, "start-number", "n", "", "First number, or the date for --format date")
	addTraversalFlags(formatCmd, &formatRecursive, &formatSkipDot, "d")
	formatCmd.Flags().VarP(&formatSurfix, "surfix", "s", "Allow the extension to change (default from config, false)")

	formatCmd.MarkFlagRequired("format")
	formatCmd.MarkFlagRequired("position")
	formatCmd.MarkFlagRequired("custom")
	formatCmd.RegisterFlagCompletionFunc("format", fixedCompletion("index", "date", "counter"))
	formatCmd.RegisterFlagCompletionFunc("position", fixedCompletion("before", "after"))
	formatCmd.RegisterFlagCompletionFunc("surfix", fixedCompletion("true", "false"))
}

func runFormat(cmd *cobra.Command, args []string) error {
	cfg := config.Get().Format

	rule, err := rename.NewFormatRule(
		formatKind.kind,
		formatPosition.Or(rename.After),
		formatCustom,
		formatStartNumber,
		cfg.DateLayout,
		now(),
	)
	if err != nil {
		return err
	}

	opts := rename.Options{
		Recursive:    formatRecursive.Or(cfg.Recursive),
		SkipHidden:   formatSkipDot.Or(cfg.SkipDot),
		ChangeSuffix: formatSurfix.Or(cfg.Surfix),
	}
	return runRename(rule, opts, args)
}
