// Package ansi maps pipecolor's closed set of color names to ANSI SGR
// foreground escape sequences.
//
// The palette is the sixteen standard terminal colors plus a Default
// sentinel. Escape sequences use the 256-color foreground form
// (ESC[38;5;Nm) with N in 0..15, and Default maps to the foreground
// reset (ESC[39m). Nothing outside this set is ever emitted.
package ansi

import (
	"fmt"

	"github.com/arthur-debert/pipecolor/pkg/errors"
)

// Color identifies one entry of the closed color palette
type Color int

const (
	Default Color = iota
	Black
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	LightBlack
	LightRed
	LightGreen
	LightYellow
	LightBlue
	LightMagenta
	LightCyan
	LightWhite
)

// Reset is the SGR foreground reset sequence, emitted after every
// colorized span so color never bleeds into subsequent output
const Reset = "\x1b[39m"

var names = map[string]Color{
	"Default":      Default,
	"Black":        Black,
	"Red":          Red,
	"Green":        Green,
	"Yellow":       Yellow,
	"Blue":         Blue,
	"Magenta":      Magenta,
	"Cyan":         Cyan,
	"White":        White,
	"LightBlack":   LightBlack,
	"LightRed":     LightRed,
	"LightGreen":   LightGreen,
	"LightYellow":  LightYellow,
	"LightBlue":    LightBlue,
	"LightMagenta": LightMagenta,
	"LightCyan":    LightCyan,
	"LightWhite":   LightWhite,
}

// escapes and colorNames are indexed by Color; built once at init
var (
	escapes    [LightWhite + 1]string
	colorNames [LightWhite + 1]string
)

func init() {
	escapes[Default] = Reset
	for c := Black; c <= LightWhite; c++ {
		escapes[c] = fmt.Sprintf("\x1b[38;5;%dm", int(c)-1)
	}
	for name, c := range names {
		colorNames[c] = name
	}
}

// Resolve maps a color name from configuration to its Color value.
// Unknown names are a validation error, never a silent default.
func Resolve(name string) (Color, error) {
	c, ok := names[name]
	if !ok {
		return Default, errors.Newf(errors.ErrColorUnknown,
			"failed to parse color name '%s'", name)
	}
	return c, nil
}

// Escape returns the SGR sequence that selects this color
func (c Color) Escape() string {
	if c < Default || c > LightWhite {
		return Reset
	}
	return escapes[c]
}

// String returns the configuration name of the color
func (c Color) String() string {
	if c < Default || c > LightWhite {
		return "Default"
	}
	return colorNames[c]
}
