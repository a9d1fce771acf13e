// Package ui decides whether the output stream gets colorized at all.
// The engine itself never looks at the terminal; this is the outer
// policy layer around it.
package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Mode represents the colorize mode selected on the command line
type Mode int

const (
	// ModeAuto colorizes when the output terminal supports it
	ModeAuto Mode = iota
	// ModeAlways colorizes unconditionally, e.g. when piping into a pager
	ModeAlways
	// ModeDisable never colorizes
	ModeDisable
)

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case ModeAuto:
		return "auto"
	case ModeAlways:
		return "always"
	case ModeDisable:
		return "disable"
	default:
		return "unknown"
	}
}

// ParseMode parses a string into a Mode value
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "auto", "":
		return ModeAuto, nil
	case "always":
		return ModeAlways, nil
	case "disable":
		return ModeDisable, nil
	default:
		return ModeAuto, fmt.Errorf("unknown mode: %s", s)
	}
}

// UseColor resolves the mode against the actual output. Auto mode
// turns color off when NO_COLOR is set, when output is not a terminal,
// or when the terminal reports no color support.
func (m Mode) UseColor(output *os.File) bool {
	switch m {
	case ModeAlways:
		return true
	case ModeDisable:
		return false
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	if !isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd()) {
		return false
	}

	return termenv.ColorProfile() != termenv.Ascii
}
