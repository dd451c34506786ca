package rename

/*
Type Relationships in the rename package:

Data Flow:
  paths (from the CLI)
    → Renamer.Run()
      → os.ReadDir() → directory entries, lexicographic order
      → IsHidden() filter when Options.SkipHidden
      → SplitFilename() unless Options.ChangeSuffix
      → Rule.Transform(stem, Entry) → new stem
      → os.Rename() + observer(Change)
      → recurse into the renamed path when Options.Recursive
    → Stats (returned to caller)

Related packages:
  - config.Config: supplies per-mode defaults for unset flags
  - journal.Entry: written by the CLI observer for each Change
*/

import (
	"fmt"
	"strings"
)

// Position says where inserted text goes relative to the stem.
type Position int

const (
	After Position = iota
	Before
)

// ParsePosition parses "after" or "before" (case-insensitive).
func ParsePosition(s string) (Position, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "after":
		return After, nil
	case "before":
		return Before, nil
	}
	return After, fmt.Errorf("invalid position %q (want before or after)", s)
}

func (p Position) String() string {
	if p == Before {
		return "before"
	}
	return "after"
}

// FormatKind selects the token generated by the format rule.
type FormatKind int

const (
	// FormatIndex numbers entries within each directory.
	FormatIndex FormatKind = iota
	// FormatDate stamps every entry with the same date.
	FormatDate
	// FormatCounter numbers entries across the whole traversal.
	FormatCounter
)

// ParseFormatKind parses "index", "date" or "counter".
func ParseFormatKind(s string) (FormatKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "index":
		return FormatIndex, nil
	case "date":
		return FormatDate, nil
	case "counter":
		return FormatCounter, nil
	}
	return FormatIndex, fmt.Errorf("invalid format %q (want index, date or counter)", s)
}

func (k FormatKind) String() string {
	switch k {
	case FormatDate:
		return "date"
	case FormatCounter:
		return "counter"
	}
	return "index"
}

// CaseType selects the case conversion applied to a stem.
type CaseType int

const (
	CaseUpper CaseType = iota
	CaseLower
	CaseSnake
	CaseCamel
)

// ParseCaseType parses upper, lower, snake or caclmer. "camel" is accepted
// as an alias for caclmer.
func ParseCaseType(s string) (CaseType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "upper":
		return CaseUpper, nil
	case "lower":
		return CaseLower, nil
	case "snake":
		return CaseSnake, nil
	case "caclmer", "camel":
		return CaseCamel, nil
	}
	return CaseUpper, fmt.Errorf("invalid case type %q (want upper, lower, snake or caclmer)", s)
}

func (c CaseType) String() string {
	switch c {
	case CaseLower:
		return "lower"
	case CaseSnake:
		return "snake"
	case CaseCamel:
		return "caclmer"
	}
	return "upper"
}

// Options is the traversal policy, resolved once before a run starts.
type Options struct {
	// Recursive descends into directories after renaming them
	Recursive bool
	// SkipHidden ignores entries whose name starts with "."
	SkipHidden bool
	// ChangeSuffix hands the whole name to the rule instead of the stem only
	ChangeSuffix bool
}

// Entry describes the directory entry a rule is applied to.
type Entry struct {
	Name  string // Original leaf name
	Index int    // 0-based position among the entries of its directory
	Seq   int    // 0-based position across the whole run
}

// Change is reported to the observer after each successful rename.
type Change struct {
	Dir     string // Parent directory
	OldName string
	NewName string
	IsDir   bool
}

// Stats summarizes a run. It is returned even when the run fails.
type Stats struct {
	Visited int // Entries that passed the hidden filter
	Renamed int // Entries whose name actually changed
	Dirs    int // Directories listed
}
