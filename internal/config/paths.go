package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"

	"github.com/any-source/lokio/internal/messages"
)

// EnvConfigPath overrides the config file location.
const EnvConfigPath = "LOKIO_CONFIG"

var homeDir = homedir.Dir

// ResolvePath returns the config file to load.
// An explicit path wins, then LOKIO_CONFIG, then $XDG_CONFIG_HOME/lokio/config.toml,
// then ~/.config/lokio/config.toml. A leading ~ is expanded in every case.
func ResolvePath(explicit string) (string, error) {
	if p := strings.TrimSpace(explicit); p != "" {
		return expand(p)
	}
	if p := strings.TrimSpace(os.Getenv(EnvConfigPath)); p != "" {
		return expand(p)
	}
	if xdg := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); xdg != "" {
		return expand(filepath.Join(xdg, "lokio", "config.toml"))
	}
	home, err := homeDir()
	if err != nil {
		return "", fmt.Errorf(messages.ConfigResolvePathFmt, err)
	}
	return filepath.Join(home, ".config", "lokio", "config.toml"), nil
}

func expand(path string) (string, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf(messages.ConfigResolvePathFmt, err)
	}
	return expanded, nil
}
