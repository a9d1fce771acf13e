package engine

import (
	"sort"
	"strings"

	"github.com/arthur-debert/pipecolor/pkg/ansi"
	"github.com/arthur-debert/pipecolor/pkg/rules"
)

// span is one color insertion over [start, end) byte offsets of the
// original line
type span struct {
	start int
	end   int
	color ansi.Color
}

// lineSpans collects every insertion for a matched line: the whole
// line in Colors[0], each matched capture group with a corresponding
// color, then the token rules. All offsets come from matches against
// the original line; excess colors and unmatched groups are skipped.
func lineSpans(lr *rules.LineRule, line string, m []int) []span {
	spans := []span{{0, len(line), lr.Colors[0]}}

	groups := len(m)/2 - 1
	for i := 1; i <= groups && i < len(lr.Colors); i++ {
		if m[2*i] < 0 {
			continue
		}
		spans = append(spans, span{m[2*i], m[2*i+1], lr.Colors[i]})
	}

	// Token rules color every match; spans already claimed by an
	// earlier-declared token rule win overlaps
	var claimed []span
	for t := range lr.Tokens {
		tr := &lr.Tokens[t]
		for _, tm := range tr.Pattern.FindAllStringSubmatchIndex(line, -1) {
			if overlapsClaimed(claimed, tm[0], tm[1]) {
				continue
			}
			claimed = append(claimed, span{start: tm[0], end: tm[1]})

			spans = append(spans, span{tm[0], tm[1], tr.Colors[0]})
			tgroups := len(tm)/2 - 1
			for i := 1; i <= tgroups && i < len(tr.Colors); i++ {
				if tm[2*i] < 0 {
					continue
				}
				spans = append(spans, span{tm[2*i], tm[2*i+1], tr.Colors[i]})
			}
		}
	}

	return spans
}

func overlapsClaimed(claimed []span, start, end int) bool {
	for _, c := range claimed {
		if start < c.end && c.start < end {
			return true
		}
	}
	return false
}

// boundary is one end of a span: an escape sequence insertion point
type boundary struct {
	pos   int
	open  bool
	color ansi.Color
}

// splice applies the collected spans to the line in a single pass.
// Span boundaries become a sorted event list walked left to right with
// a color stack: opening a span pushes its color, closing one pops and
// restores the enclosing color, so nested spans keep the outer color
// intact and the outermost close resets the terminal. Offsets are
// never recomputed against the spliced string.
func splice(line string, spans []span) string {
	events := make([]boundary, 0, 2*len(spans))
	for _, sp := range spans {
		if sp.start >= sp.end {
			// An empty span colors nothing
			continue
		}
		events = append(events,
			boundary{sp.start, true, sp.color},
			boundary{sp.end, false, sp.color})
	}

	// Closes sort before opens at the same offset so adjacent spans do
	// not nest; ties otherwise keep collection order (line before
	// groups before tokens)
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].pos != events[j].pos {
			return events[i].pos < events[j].pos
		}
		return !events[i].open && events[j].open
	})

	var b strings.Builder
	b.Grow(len(line) + 8*len(events))
	stack := []ansi.Color{ansi.Default}
	last := 0
	for _, ev := range events {
		b.WriteString(line[last:ev.pos])
		last = ev.pos
		if ev.open {
			stack = append(stack, ev.color)
		} else if len(stack) > 1 {
			stack = stack[:len(stack)-1]
		}
		b.WriteString(stack[len(stack)-1].Escape())
	}
	b.WriteString(line[last:])
	return b.String()
}
