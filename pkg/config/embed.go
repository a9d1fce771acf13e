package config

import (
	_ "embed"

	toml "github.com/pelletier/go-toml/v2"
)

//go:embed embedded/default.toml
var defaultConfig []byte

// Default returns the embedded default rule set, used when no config
// file exists. The embedded TOML is part of the build; failing to
// parse it is a programming error.
func Default() Config {
	var cfg Config
	if err := toml.Unmarshal(defaultConfig, &cfg); err != nil {
		panic("embedded default config is invalid: " + err.Error())
	}
	return cfg
}
