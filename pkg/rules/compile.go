package rules

import (
	"fmt"
	"regexp"

	"github.com/arthur-debert/pipecolor/pkg/ansi"
	"github.com/arthur-debert/pipecolor/pkg/config"
	"github.com/arthur-debert/pipecolor/pkg/errors"
	"github.com/arthur-debert/pipecolor/pkg/logging"
)

// Compile turns raw config declarations into a validated RuleSet.
// All patterns are compiled here, eagerly; any bad regex, unknown
// color name or empty colors list fails compilation with the
// offending rule identified. Nothing is deferred to matching time.
func Compile(cfg config.Config) (*RuleSet, error) {
	logger := logging.GetLogger("rules")

	if len(cfg.Formats) > 0 && len(cfg.Lines) > 0 {
		return nil, errors.New(errors.ErrConfigValid,
			"config declares both formats and top-level lines; use one or the other")
	}
	if len(cfg.Formats) == 0 && len(cfg.Lines) == 0 {
		return nil, errors.New(errors.ErrConfigValid, "config declares no rules")
	}

	declared := cfg.Formats
	if len(declared) == 0 {
		// Flat shorthand: synthesize the implicit always-active format
		declared = []config.Format{{Name: "default", Lines: cfg.Lines}}
	}

	rs := &RuleSet{Formats: make([]FormatRule, 0, len(declared))}
	for i, f := range declared {
		name := f.Name
		if name == "" {
			name = fmt.Sprintf("format %d", i)
		}

		var start *regexp.Regexp
		if f.Pat != "" {
			var err error
			start, err = regexp.Compile(f.Pat)
			if err != nil {
				return nil, errors.Wrapf(err, errors.ErrRegexInvalid,
					"invalid start pattern in format '%s'", name).
					WithDetail("format", name).
					WithDetail("pattern", f.Pat)
			}
		} else if len(declared) > 1 {
			// A pattern-less format among several could never become
			// active, so it is dead config
			return nil, errors.Newf(errors.ErrConfigValid,
				"format '%s' has no start pattern; required when multiple formats are declared", name).
				WithDetail("format", name)
		}

		lines, err := compileLines(name, f.Lines)
		if err != nil {
			return nil, err
		}

		rs.Formats = append(rs.Formats, FormatRule{
			Name:  name,
			Start: start,
			Lines: lines,
		})
	}

	logger.Debug().
		Int("formats", len(rs.Formats)).
		Msg("Compiled rule set")

	return rs, nil
}

func compileLines(format string, declared []config.Line) ([]LineRule, error) {
	lines := make([]LineRule, 0, len(declared))
	for i, l := range declared {
		pat, err := regexp.Compile(l.Pat)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrRegexInvalid,
				"invalid line pattern %q in format '%s'", l.Pat, format).
				WithDetail("format", format).
				WithDetail("line", i)
		}

		colors, err := resolveColors(format, i, l.Colors)
		if err != nil {
			return nil, err
		}

		tokens := make([]TokenRule, 0, len(l.Tokens))
		for j, tok := range l.Tokens {
			tpat, err := regexp.Compile(tok.Pat)
			if err != nil {
				return nil, errors.Wrapf(err, errors.ErrRegexInvalid,
					"invalid token pattern %q in format '%s'", tok.Pat, format).
					WithDetail("format", format).
					WithDetail("line", i).
					WithDetail("token", j)
			}

			tcolors, err := resolveColors(format, i, tok.Colors)
			if err != nil {
				return nil, err
			}

			tokens = append(tokens, TokenRule{Pattern: tpat, Colors: tcolors})
		}

		lines = append(lines, LineRule{Pattern: pat, Colors: colors, Tokens: tokens})
	}
	return lines, nil
}

func resolveColors(format string, line int, names []string) ([]ansi.Color, error) {
	if len(names) == 0 {
		return nil, errors.Newf(errors.ErrConfigValid,
			"colors list is empty in format '%s'", format).
			WithDetail("format", format).
			WithDetail("line", line)
	}

	colors := make([]ansi.Color, 0, len(names))
	for _, name := range names {
		c, err := ansi.Resolve(name)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrColorUnknown,
				"in format '%s'", format).
				WithDetail("format", format).
				WithDetail("line", line)
		}
		colors = append(colors, c)
	}
	return colors, nil
}
