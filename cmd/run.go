package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/alctny/frename/internal/journal"
	"github.com/alctny/frename/internal/logger"
	"github.com/alctny/frename/internal/rename"
)

// runRename applies rule to paths with the resolved options and records
// each rename in the journal.
func runRename(rule rename.Rule, opts rename.Options, paths []string) error {
	log := logger.With("mode", rule.Name())
	log.Debug("starting rename",
		"paths", paths,
		"recursive", opts.Recursive,
		"skip_hidden", opts.SkipHidden,
		"change_suffix", opts.ChangeSuffix)

	r := rename.New(rule, opts,
		rename.WithLogger(log),
		rename.WithObserver(recordChange(rule.Name())),
	)

	stats, err := r.Run(paths)
	logger.Info("rename finished",
		"mode", rule.Name(),
		"visited", stats.Visited,
		"renamed", stats.Renamed,
		"dirs", stats.Dirs)
	return err
}

// recordChange returns an observer that writes each change to the journal.
func recordChange(mode string) func(rename.Change) error {
	return func(c rename.Change) error {
		dir, err := filepath.Abs(c.Dir)
		if err != nil {
			dir = c.Dir
		}
		if err := journal.Log(journal.Entry{
			Mode:  mode,
			Dir:   dir,
			Old:   c.OldName,
			New:   c.NewName,
			IsDir: c.IsDir,
		}); err != nil {
			return fmt.Errorf("failed to write journal: %w", err)
		}
		return nil
	}
}
