package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// ConfigFileName is the config file name under the XDG config directory
const ConfigFileName = "pipecolor/config.toml"

// LegacyFileName is the dotfile checked in the home directory
const LegacyFileName = ".pipecolor.toml"

// FindConfigFile locates the rule file to load. Search order: the
// explicit path (used as-is, even if missing, so a bad -c flag fails
// loudly), then $XDG_CONFIG_HOME/pipecolor/config.toml, then
// ~/.pipecolor.toml. Returns false when nothing is found and the
// embedded defaults should be used.
func FindConfigFile(explicit string) (string, bool) {
	if explicit != "" {
		return explicit, true
	}

	if path, err := xdg.SearchConfigFile(ConfigFileName); err == nil {
		return path, true
	}

	if home, err := os.UserHomeDir(); err == nil {
		path := filepath.Join(home, LegacyFileName)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}

	return "", false
}
