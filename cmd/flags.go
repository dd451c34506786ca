package cmd

import (
	"fmt"
	"strconv"

	"github.com/alctny/frename/internal/rename"
	"github.com/spf13/cobra"
)

// optionalBool is a boolean flag that remembers whether it was given.
// It always takes an explicit value ("-r true"), so an unset flag can fall
// back to the config file and then to the mode's default.
type optionalBool struct {
	value *bool
}

func (b *optionalBool) String() string {
	if b.value == nil {
		return ""
	}
	return strconv.FormatBool(*b.value)
}

func (b *optionalBool) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return fmt.Errorf("invalid boolean %q (want true or false)", s)
	}
	b.value = &v
	return nil
}

func (b *optionalBool) Type() string {
	return "true|false"
}

// Or returns the flag value if it was set, otherwise def.
func (b *optionalBool) Or(def bool) bool {
	if b.value == nil {
		return def
	}
	return *b.value
}

func (b *optionalBool) reset() {
	b.value = nil
}

// positionValue is the --position flag.
type positionValue struct {
	set bool
	pos rename.Position
}

func (p *positionValue) String() string {
	if !p.set {
		return ""
	}
	return p.pos.String()
}

func (p *positionValue) Set(s string) error {
	pos, err := rename.ParsePosition(s)
	if err != nil {
		return err
	}
	p.pos, p.set = pos, true
	return nil
}

func (p *positionValue) Type() string {
	return "before|after"
}

// Or returns the flag value if it was set, otherwise def.
func (p *positionValue) Or(def rename.Position) rename.Position {
	if !p.set {
		return def
	}
	return p.pos
}

func (p *positionValue) reset() {
	*p = positionValue{}
}

// formatKindValue is the --format flag of the format command.
type formatKindValue struct {
	set  bool
	kind rename.FormatKind
}

func (f *formatKindValue) String() string {
	if !f.set {
		return ""
	}
	return f.kind.String()
}

func (f *formatKindValue) Set(s string) error {
	kind, err := rename.ParseFormatKind(s)
	if err != nil {
		return err
	}
	f.kind, f.set = kind, true
	return nil
}

func (f *formatKindValue) Type() string {
	return "index|date|counter"
}

func (f *formatKindValue) reset() {
	*f = formatKindValue{}
}

// fixedCompletion completes a flag value from a fixed list.
func fixedCompletion(values ...string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return values, cobra.ShellCompDirectiveNoFileComp
	}
}

// addTraversalFlags registers -r/--recursive and the skip-dot flag, which
// uses -s for append and -d everywhere else.
func addTraversalFlags(cmd *cobra.Command, recursive, skipDot *optionalBool, skipDotShort string) {
	cmd.Flags().VarP(recursive, "recursive", "r", "Descend into directories (default from config, false)")
	cmd.Flags().VarP(skipDot, "skip-dot", skipDotShort, "Skip entries whose name starts with '.'")
	cmd.RegisterFlagCompletionFunc("recursive", fixedCompletion("true", "false"))
	cmd.RegisterFlagCompletionFunc("skip-dot", fixedCompletion("true", "false"))
}
