package rename

import (
	"strings"

	"github.com/alctny/frename/internal/constants"
)

// SplitFilename splits a file name into its stem and extension.
// The extension keeps its leading separator. Names without a separator and
// dotfiles such as ".hidden" are not split:
//
//	"a.txt"   -> ("a", ".txt")
//	"a.b.c"   -> ("a.b", ".c")
//	".hidden" -> (".hidden", "")
//	"noext"   -> ("noext", "")
func SplitFilename(name string) (stem, ext string) {
	i := strings.LastIndex(name, constants.ExtSeparator)
	if i <= 0 {
		return name, ""
	}
	return name[:i], name[i:]
}

// IsHidden reports whether name starts with the hidden-file marker.
func IsHidden(name string) bool {
	return strings.HasPrefix(name, constants.HiddenPrefix)
}

// Counter hands out consecutive integers starting at a fixed value.
// It is not safe for concurrent use.
type Counter struct {
	next int
}

// NewCounter returns a counter whose first Next call returns start.
func NewCounter(start int) *Counter {
	return &Counter{next: start}
}

// Next returns the current value and advances the counter.
func (c *Counter) Next() int {
	n := c.next
	c.next++
	return n
}
