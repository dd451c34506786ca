package cmd

import (
	"fmt"
	"io"

	"github.com/alctny/frename/internal/config"
	"github.com/alctny/frename/internal/journal"
	"github.com/spf13/cobra"
	"mvdan.cc/sh/v3/syntax"
)

var (
	historyLimit int
	historyShell bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show renames recorded in the journal",
	Long: `History prints the renames recorded in the journal, oldest first.

With --shell every rename is printed as a shell-quoted "mv --" command, which
is handy for copying a rename into a script.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "Show only the last N renames (0 shows all)")
	historyCmd.Flags().BoolVar(&historyShell, "shell", false, "Print renames as mv commands")
}

// journalPath returns the configured journal path or the default one.
func journalPath() (string, error) {
	if p := config.Get().Journal.Path; p != "" {
		return p, nil
	}
	return journal.DefaultPath()
}

func runHistory(cmd *cobra.Command, args []string) error {
	path, err := journalPath()
	if err != nil {
		return fmt.Errorf("failed to get journal path: %w", err)
	}

	entries, err := journal.Read(path)
	if err != nil {
		return err
	}
	if historyLimit > 0 && len(entries) > historyLimit {
		entries = entries[len(entries)-historyLimit:]
	}

	out := cmd.OutOrStdout()
	for _, e := range entries {
		if historyShell {
			if err := printShell(out, e); err != nil {
				return err
			}
			continue
		}
		fmt.Fprintf(out, "%s  %-8s %s -> %s\n", e.Timestamp, e.Mode, e.OldPath(), e.New)
	}
	return nil
}

func printShell(w io.Writer, e journal.Entry) error {
	oldPath, err := syntax.Quote(e.OldPath(), syntax.LangBash)
	if err != nil {
		return fmt.Errorf("failed to quote %q: %w", e.OldPath(), err)
	}
	newPath, err := syntax.Quote(e.NewPath(), syntax.LangBash)
	if err != nil {
		return fmt.Errorf("failed to quote %q: %w", e.NewPath(), err)
	}
	_, err = fmt.Fprintf(w, "mv -- %s %s\n", oldPath, newPath)
	return err
}
