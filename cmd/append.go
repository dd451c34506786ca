package cmd

import (
	"github.com/alctny/frename/internal/config"
	"github.com/alctny/frename/internal/rename"
	"github.com/spf13/cobra"
)

var (
	appendText      string
	appendPosition  positionValue
	appendRecursive optionalBool
	appendSkipDot   optionalBool
)

var appendCmd = &cobra.Command{
	Use:   "append -t TEXT [flags] [DIR...]",
	Short: "Add text before or after each file name",
	Long: `Append inserts TEXT before or after the stem of every entry in DIR
(the current directory by default). The extension is always kept:

  frename append -t _v2 .              doc.pdf -> doc_v2.pdf
  frename append -t _v2 -p before .    doc.pdf -> _v2doc.pdf

Running append twice adds the text twice.`,
	PreRunE: openJournal,
	RunE:    runAppend,
}

func init() {
	rootCmd.AddCommand(appendCmd)
	appendCmd.Flags().StringVarP(&appendText, "text", "t", "", "Text to add")
	appendCmd.Flags().VarP(&appendPosition, "position", "p", "Where the text goes: before or after (default after)")
	addTraversalFlags(appendCmd, &appendRecursive, &appendSkipDot, "s")
	appendCmd.MarkFlagRequired("text")
	appendCmd.RegisterFlagCompletionFunc("position", fixedCompletion("before", "after"))
}

func runAppend(cmd *cobra.Command, args []string) error {
	cfg := config.Get().Append

	rule := rename.AppendRule{
		Text:     appendText,
		Position: appendPosition.Or(config.Get().AppendPosition()),
	}
	opts := rename.Options{
		Recursive:  appendRecursive.Or(cfg.Recursive),
		SkipHidden: appendSkipDot.Or(cfg.SkipDot),
	}
	return runRename(rule, opts, args)
}
