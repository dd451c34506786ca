// Package rename implements the rename-transformation engine for frename:
// filename splitting, the per-mode rules, and the directory traversal that
// applies a rule to every matching entry.
package rename

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// ErrInvalidName is returned when a rule produces a name that cannot be used
// as a leaf name in the entry's directory.
var ErrInvalidName = errors.New("invalid file name")

// Renamer applies a Rule to directory entries.
type Renamer struct {
	rule     Rule
	opts     Options
	observer func(Change) error
	rename   func(oldPath, newPath string) error
	log      *slog.Logger
	stats    Stats
}

// Option customizes a Renamer.
type Option func(*Renamer)

// WithObserver registers fn to be called after every rename. An error from
// fn aborts the run.
func WithObserver(fn func(Change) error) Option {
	return func(r *Renamer) { r.observer = fn }
}

// WithRenameFunc replaces os.Rename.
func WithRenameFunc(fn func(oldPath, newPath string) error) Option {
	return func(r *Renamer) { r.rename = fn }
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(r *Renamer) { r.log = l }
}

// New returns a Renamer for rule with the already resolved opts.
func New(rule Rule, opts Options, options ...Option) *Renamer {
	r := &Renamer{
		rule:   rule,
		opts:   opts,
		rename: os.Rename,
		log:    slog.New(slog.DiscardHandler),
	}
	for _, o := range options {
		o(r)
	}
	return r
}

// NewName returns the name e.Name is renamed to under the renamer's rule
// and extension policy.
func (r *Renamer) NewName(e Entry) string {
	if r.opts.ChangeSuffix {
		return r.rule.Transform(e.Name, e)
	}
	stem, ext := SplitFilename(e.Name)
	return r.rule.Transform(stem, e) + ext
}

// Run renames the entries of every directory in paths, or of the current
// directory when paths is empty. The first error stops the run; entries
// renamed before it stay renamed.
func (r *Renamer) Run(paths []string) (Stats, error) {
	r.stats = Stats{}
	if len(paths) == 0 {
		paths = []string{"."}
	}

	seq := NewCounter(0)
	for _, p := range paths {
		if err := r.walk(p, seq); err != nil {
			return r.stats, err
		}
	}
	return r.stats, nil
}

func (r *Renamer) walk(dir string, seq *Counter) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read directory: %w", err)
	}
	r.stats.Dirs++

	index := NewCounter(0)
	for _, entry := range entries {
		name := entry.Name()
		if r.opts.SkipHidden && IsHidden(name) {
			r.log.Debug("skipping hidden entry", "dir", dir, "name", name)
			continue
		}
		r.stats.Visited++

		newName := r.NewName(Entry{Name: name, Index: index.Next(), Seq: seq.Next()})
		if err := validateName(newName); err != nil {
			return fmt.Errorf("failed to rename %s: %q: %w", filepath.Join(dir, name), newName, err)
		}

		newPath := filepath.Join(dir, newName)
		if newName != name {
			oldPath := filepath.Join(dir, name)
			if err := checkTarget(oldPath, newPath); err != nil {
				return fmt.Errorf("failed to rename %s: %w", oldPath, err)
			}
			if err := r.rename(oldPath, newPath); err != nil {
				return fmt.Errorf("failed to rename: %w", err)
			}
			r.stats.Renamed++
			r.log.Debug("renamed", "dir", dir, "from", name, "to", newName)

			if r.observer != nil {
				change := Change{Dir: dir, OldName: name, NewName: newName, IsDir: entry.IsDir()}
				if err := r.observer(change); err != nil {
					return fmt.Errorf("failed to record rename of %s: %w", oldPath, err)
				}
			}
		}

		if !r.opts.Recursive {
			continue
		}
		info, err := os.Lstat(newPath)
		if err != nil {
			return fmt.Errorf("failed to stat %s: %w", newPath, err)
		}
		if !info.IsDir() {
			continue
		}
		if err := r.walk(newPath, seq); err != nil {
			return err
		}
	}
	return nil
}

// checkTarget refuses to replace an existing entry. A target that is the
// same file as the source (a case-only rename on a case-insensitive file
// system) is allowed.
func checkTarget(oldPath, newPath string) error {
	target, err := os.Lstat(newPath)
	if err != nil {
		return nil
	}
	source, err := os.Lstat(oldPath)
	if err == nil && os.SameFile(source, target) {
		return nil
	}
	return fmt.Errorf("%s: %w", newPath, fs.ErrExist)
}

func validateName(name string) error {
	if name == "" || name == "." || name == ".." {
		return ErrInvalidName
	}
	if strings.ContainsRune(name, filepath.Separator) || strings.ContainsRune(name, '/') {
		return ErrInvalidName
	}
	return nil
}
