// Package config declares the rule file structure and loads it from
// TOML. It only deals in raw declarations; pattern compilation and
// validation happen in pkg/rules.
package config

import (
	"os"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/pipecolor/pkg/errors"
	"github.com/arthur-debert/pipecolor/pkg/logging"
)

var log = logging.GetLogger("config")

// Config is the top level of a rule file. A file declares either a
// list of formats or the flat single-format shorthand with top-level
// lines, never both.
type Config struct {
	Formats []Format `toml:"formats"`
	Lines   []Line   `toml:"lines"`
}

// Format declares one named colorization profile. Pat is the start
// pattern that activates the format mid-stream.
type Format struct {
	Name  string `toml:"name"`
	Pat   string `toml:"pat"`
	Lines []Line `toml:"lines"`
}

// Line declares a whole-line rule: a pattern, colors for the line and
// its capture groups, and token rules applied on top.
type Line struct {
	Pat    string   `toml:"pat"`
	Colors []string `toml:"colors"`
	Tokens []Token  `toml:"tokens"`
}

// Token declares a highlight rule for substrings of a matched line
type Token struct {
	Pat    string   `toml:"pat"`
	Colors []string `toml:"colors"`
}

// Load reads and parses a rule file
func Load(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, errors.ErrConfigLoad,
			"failed to open '%s'", path)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, errors.ErrConfigParse,
			"failed to parse toml '%s'", path)
	}

	log.Debug().
		Str("path", path).
		Int("formats", len(cfg.Formats)).
		Int("lines", len(cfg.Lines)).
		Msg("Loaded config")

	return cfg, nil
}
