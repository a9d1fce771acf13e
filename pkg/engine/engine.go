// Package engine implements the stateful matcher/colorizer. An Engine
// processes one stream: it tracks the currently active format, matches
// each line against that format's line rules and splices ANSI escape
// sequences into matching lines. Rule sets are read-only and may be
// shared; each stream gets its own Engine.
package engine

import (
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/pipecolor/pkg/logging"
	"github.com/arthur-debert/pipecolor/pkg/rules"
)

// Engine colorizes one stream of lines against a compiled RuleSet
type Engine struct {
	rules  *rules.RuleSet
	active int
	logger zerolog.Logger
}

// New creates an engine for the given rule set. With a single format
// the engine starts active; with multiple formats it stays inactive
// until a line matches some format's start pattern.
func New(rs *rules.RuleSet) *Engine {
	return &Engine{
		rules:  rs,
		active: rs.InitialFormat(),
		logger: logging.GetLogger("engine"),
	}
}

// Reset returns the engine to its initial state. Callers processing
// multiple files use it to stop the active format from leaking across
// file boundaries.
func (e *Engine) Reset() {
	e.active = e.rules.InitialFormat()
}

// ColorizeLine returns the line with escape sequences applied, or the
// line unchanged when nothing matches. The line must not contain its
// terminator. Per-line anomalies never fail: anything the engine
// cannot color passes through as-is.
func (e *Engine) ColorizeLine(line string) string {
	if len(e.rules.Formats) > 1 {
		for i := range e.rules.Formats {
			if e.rules.Formats[i].Start.MatchString(line) {
				if e.active != i {
					e.logger.Debug().
						Str("format", e.rules.Formats[i].Name).
						Msg("Format switched")
				}
				e.active = i
				break
			}
		}
		if e.active == rules.NoFormat {
			// No format has triggered yet: the only state where lines
			// bypass colorization entirely
			return line
		}
	}

	if !utf8.ValidString(line) {
		return line
	}

	format := &e.rules.Formats[e.active]
	for i := range format.Lines {
		lr := &format.Lines[i]
		m := lr.Pattern.FindStringSubmatchIndex(line)
		if m == nil {
			continue
		}
		// First matching line rule wins
		return splice(line, lineSpans(lr, line, m))
	}
	return line
}
