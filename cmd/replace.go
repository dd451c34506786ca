package cmd

import (
	"errors"

	"github.com/alctny/frename/internal/config"
	"github.com/alctny/frename/internal/rename"
	"github.com/spf13/cobra"
)

var (
	replaceFind         string
	replaceTo           string
	replaceRecursive    optionalBool
	replaceSkipDot      optionalBool
	replaceChangeSurfix optionalBool
)

var replaceCmd = &cobra.Command{
	Use:   "replace [flags] [DIR]",
	Short: "Replace text in each file name",
	Long: `Replace substitutes every literal occurrence of --find with --to in the
names of the entries of DIR (the current directory by default).

Only the stem is touched unless --change-surfix true is given, in which case
the extension is rewritten too:

  frename replace -f " " -t _ .                        my file.txt -> my_file.txt
  frename replace -f . -t _ -s true .                  a.b.txt     -> a_b_txt

By default spaces are removed.`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: openJournal,
	RunE:    runReplace,
}

func init() {
	rootCmd.AddCommand(replaceCmd)
	replaceCmd.Flags().StringVarP(&replaceFind, "find", "f", " ", "Text to find")
	replaceCmd.Flags().StringVarP(&replaceTo, "to", "t", "", "Replacement text")
	addTraversalFlags(replaceCmd, &replaceRecursive, &replaceSkipDot, "d")
	replaceCmd.Flags().VarP(&replaceChangeSurfix, "change-surfix", "s", "Allow the extension to change (default from config, false)")
	replaceCmd.RegisterFlagCompletionFunc("change-surfix", fixedCompletion("true", "false"))
}

func runReplace(cmd *cobra.Command, args []string) error {
	if replaceFind == "" {
		return errors.New("--find must not be empty")
	}
	cfg := config.Get().Replace

	rule := rename.ReplaceRule{Find: replaceFind, To: replaceTo}
	opts := rename.Options{
		Recursive:    replaceRecursive.Or(cfg.Recursive),
		SkipHidden:   replaceSkipDot.Or(cfg.SkipDot),
		ChangeSuffix: replaceChangeSurfix.Or(cfg.ChangeSurfix),
	}
	return runRename(rule, opts, args)
}
