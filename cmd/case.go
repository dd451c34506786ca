package cmd

import (
	"github.com/alctny/frename/internal/config"
	"github.com/alctny/frename/internal/rename"
	"github.com/spf13/cobra"
)

var (
	caseRecursive optionalBool
	caseSkipDot   optionalBool
	caseSurfix    optionalBool
)

var caseTypes = []string{"upper", "lower", "snake", "caclmer"}

var caseCmd = &cobra.Command{
	Use:   "case UPPER|LOWER|SNAKE|CACLMER [flags] [DIR...]",
	Short: "Convert the case of each file name",
	Long: `Case converts the stem of every entry in DIR (the current directory by
default). The extension is kept unless --surfix true is given.

  upper    My File.txt -> MY FILE.txt
  lower    My File.txt -> my file.txt
  snake    My File.txt -> my_file.txt
  caclmer  My File.txt -> myFile.txt   (lower camel case, "camel" also works)`,
	Args:      cobra.MinimumNArgs(1),
	ValidArgs: caseTypes,
	PreRunE:   openJournal,
	RunE:      runCase,
}

func init() {
	rootCmd.AddCommand(caseCmd)
	addTraversalFlags(caseCmd, &caseRecursive, &caseSkipDot, "d")
	caseCmd.Flags().VarP(&caseSurfix, "surfix", "s", "Allow the extension to change (default from config, false)")
	caseCmd.RegisterFlagCompletionFunc("surfix", fixedCompletion("true", "false"))
}

func runCase(cmd *cobra.Command, args []string) error {
	caseType, err := rename.ParseCaseType(args[0])
	if err != nil {
		return err
	}
	cfg := config.Get().Case

	opts := rename.Options{
		Recursive:    caseRecursive.Or(cfg.Recursive),
		SkipHidden:   caseSkipDot.Or(cfg.SkipDot),
		ChangeSuffix: caseSurfix.Or(cfg.Surfix),
	}
	return runRename(rename.CaseRule{Type: caseType}, opts, args[1:])
}
