package rename

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Rule computes a new stem for a directory entry.
type Rule interface {
	// Name is the mode name recorded in the journal
	Name() string
	// Transform returns the new stem. When the renamer preserves extensions
	// stem excludes it; otherwise stem is the full name.
	Transform(stem string, e Entry) string
}

// AppendRule inserts fixed text before or after the stem.
type AppendRule struct {
	Text     string
	Position Position
}

func (r AppendRule) Name() string { return "append" }

func (r AppendRule) Transform(stem string, _ Entry) string {
	if r.Position == Before {
		return r.Text + stem
	}
	return stem + r.Text
}

// ReplaceRule replaces every literal occurrence of Find with To.
// An empty Find matches nothing and leaves the stem unchanged.
type ReplaceRule struct {
	Find string
	To   string
}

func (r ReplaceRule) Name() string { return "replace" }

func (r ReplaceRule) Transform(stem string, _ Entry) string {
	if r.Find == "" {
		return stem
	}
	return strings.ReplaceAll(stem, r.Find, r.To)
}

// DefaultDateLayout is used by the date format when none is configured.
const DefaultDateLayout = "2006-01-02"

// FormatRule combines a generated token and custom text with the stem.
type FormatRule struct {
	Kind     FormatKind
	Position Position
	Custom   string
	// Start is the first number handed out by index and counter formats
	Start int
	// Width zero-pads numbers; 0 disables padding
	Width int
	// Date is stamped by the date format
	Date time.Time
	// DateLayout formats Date; empty means DefaultDateLayout
	DateLayout string
}

// NewFormatRule builds a format rule from the raw --start-number value.
// For index and counter a leading zero ("001") fixes the padding width.
// For date the value is a date in 2006-01-02 or 20060102 form; when empty
// now is used.
func NewFormatRule(kind FormatKind, pos Position, custom, start, layout string, now time.Time) (FormatRule, error) {
	r := FormatRule{Kind: kind, Position: pos, Custom: custom, Start: 1, DateLayout: layout, Date: now}
	start = strings.TrimSpace(start)

	if kind == FormatDate {
		if start == "" {
			return r, nil
		}
		for _, l := range []string{"2006-01-02", "20060102"} {
			if d, err := time.Parse(l, start); err == nil {
				r.Date = d
				return r, nil
			}
		}
		return r, fmt.Errorf("invalid start date %q (want YYYY-MM-DD or YYYYMMDD)", start)
	}

	if start == "" {
		return r, nil
	}
	n, err := strconv.Atoi(start)
	if err != nil {
		return r, fmt.Errorf("invalid start number %q: %w", start, err)
	}
	if n < 0 {
		return r, fmt.Errorf("invalid start number %q: must not be negative", start)
	}
	r.Start = n
	if len(start) > 1 && start[0] == '0' {
		r.Width = len(start)
	}
	return r, nil
}

func (r FormatRule) Name() string { return "format" }

// Token returns the generated part of the name for e.
func (r FormatRule) Token(e Entry) string {
	switch r.Kind {
	case FormatDate:
		layout := r.DateLayout
		if layout == "" {
			layout = DefaultDateLayout
		}
		return r.Date.Format(layout)
	case FormatCounter:
		return fmt.Sprintf("%0*d", r.Width, r.Start+e.Seq)
	}
	return fmt.Sprintf("%0*d", r.Width, r.Start+e.Index)
}

func (r FormatRule) Transform(stem string, e Entry) string {
	token := r.Token(e)
	if r.Position == Before {
		return token + r.Custom + stem
	}
	return stem + r.Custom + token
}

// CaseRule converts the casing of the stem. Snake and camel case split the
// stem into words on spaces, underscores, hyphens and lower-to-upper
// changes; every other rune is kept.
type CaseRule struct {
	Type CaseType
}

func (r CaseRule) Name() string { return "case" }

func (r CaseRule) Transform(stem string, _ Entry) string {
	switch r.Type {
	case CaseLower:
		return cases.Lower(language.Und).String(stem)
	case CaseSnake:
		return joinWords(stem, func(i int, w string) string {
			if i > 0 {
				w = "_" + w
			}
			return cases.Lower(language.Und).String(w)
		})
	case CaseCamel:
		return joinWords(stem, func(i int, w string) string {
			if i == 0 {
				return cases.Lower(language.Und).String(w)
			}
			return cases.Title(language.Und).String(w)
		})
	}
	return cases.Upper(language.Und).String(stem)
}

// joinWords rebuilds stem from its words. A stem made only of separators
// is returned as is.
func joinWords(stem string, conv func(i int, w string) string) string {
	ws := splitWords(stem)
	if len(ws) == 0 {
		return stem
	}
	var b strings.Builder
	for i, w := range ws {
		b.WriteString(conv(i, w))
	}
	return b.String()
}

func isWordSeparator(r rune) bool {
	return r == ' ' || r == '_' || r == '-'
}

// splitWords splits s on separators and before an upper case rune that
// follows a lower case rune or digit, or that starts a word after an
// acronym ("HTTPServer" gives "HTTP", "Server").
func splitWords(s string) []string {
	var words []string
	rs := []rune(s)
	start := -1
	for i, r := range rs {
		if isWordSeparator(r) {
			if start >= 0 {
				words = append(words, string(rs[start:i]))
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
			continue
		}
		prev := rs[i-1]
		if unicode.IsUpper(r) {
			split := unicode.IsLower(prev) || unicode.IsDigit(prev)
			if unicode.IsUpper(prev) && i+1 < len(rs) && unicode.IsLower(rs[i+1]) {
				split = true
			}
			if split {
				words = append(words, string(rs[start:i]))
				start = i
			}
		}
	}
	if start >= 0 {
		words = append(words, string(rs[start:]))
	}
	return words
}

// illegalChars cannot appear in file names on at least one common platform.
const illegalChars = `<>:"/\|?*`

// SanitizeRule strips characters that are not allowed in file names.
type SanitizeRule struct{}

func (SanitizeRule) Name() string { return "sanitize" }

func (SanitizeRule) Transform(stem string, _ Entry) string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) || strings.ContainsRune(illegalChars, r) {
			return -1
		}
		return r
	}, stem)
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return stem
	}
	return cleaned
}
