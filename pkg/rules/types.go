package rules

import (
	"regexp"

	"github.com/arthur-debert/pipecolor/pkg/ansi"
)

// TokenRule highlights substrings within a line that already matched a
// LineRule. Colors[0] applies to the whole token match, Colors[i] for
// i >= 1 to the i-th capture group of the pattern.
type TokenRule struct {
	Pattern *regexp.Regexp
	Colors  []ansi.Color
}

// LineRule colors a whole matching line. Colors[0] wraps the entire
// line, Colors[i] for i >= 1 wraps the i-th capture group. Tokens are
// applied afterwards, in declaration order.
type LineRule struct {
	Pattern *regexp.Regexp
	Colors  []ansi.Color
	Tokens  []TokenRule
}

// FormatRule is one named colorization profile. Start is the pattern
// that activates it mid-stream; it is nil for the implicit format
// synthesized from the flat config shorthand.
type FormatRule struct {
	Name  string
	Start *regexp.Regexp
	Lines []LineRule
}

// RuleSet is the full ordered collection of formats. Built once by
// Compile, immutable afterwards, shared read-only by engines.
type RuleSet struct {
	Formats []FormatRule
}

// InitialFormat returns the format index a fresh engine starts with:
// the sole format when there is exactly one, otherwise NoFormat until
// a start pattern matches.
func (rs *RuleSet) InitialFormat() int {
	if len(rs.Formats) == 1 {
		return 0
	}
	return NoFormat
}

// NoFormat is the engine cursor value before any format has matched
const NoFormat = -1
