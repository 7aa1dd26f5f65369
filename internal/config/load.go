package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/any-source/lokio/internal/messages"
)

// Environment overrides applied after the config file.
const (
	EnvCatalogRepository = "LOKIO_CATALOG_REPOSITORY"
	EnvCatalogRef        = "LOKIO_CATALOG_REF"
	EnvCatalogRawBaseURL = "LOKIO_CATALOG_RAW_BASE_URL"
	EnvNoColor           = "LOKIO_NO_COLOR"
	EnvNoColorStandard   = "NO_COLOR"
)

// ErrConfigValidation wraps validation failures, as opposed to TOML syntax or
// filesystem errors.
var ErrConfigValidation = errors.New("config validation failed")

var lookupEnv = os.LookupEnv

// Load reads the config at path on top of the defaults, applies environment
// overrides, and validates the result. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := decodeInto(cfg, data, path); err != nil {
			return nil, err
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf(messages.ConfigReadFileFmt, path, err)
	}
	applyEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: "+messages.ConfigInvalidConfigFmt, ErrConfigValidation, path, err)
	}
	return cfg, nil
}

// LoadDefault resolves the config path (see ResolvePath) and loads it.
func LoadDefault(explicit string) (*Config, error) {
	path, err := ResolvePath(explicit)
	if err != nil {
		return nil, err
	}
	return Load(path)
}

// decodeInto decodes TOML into cfg, rejecting keys lokio does not know.
func decodeInto(cfg *Config, data []byte, source string) error {
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(cfg); err != nil {
		return fmt.Errorf(messages.ConfigInvalidConfigFmt, source, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v, ok := lookupNonEmpty(EnvCatalogRepository); ok {
		cfg.Catalog.Repository = v
	}
	if v, ok := lookupNonEmpty(EnvCatalogRef); ok {
		cfg.Catalog.Ref = v
	}
	if v, ok := lookupNonEmpty(EnvCatalogRawBaseURL); ok {
		cfg.Catalog.RawBaseURL = v
	}
	_, noColor := lookupNonEmpty(EnvNoColor)
	_, noColorStd := lookupNonEmpty(EnvNoColorStandard)
	if noColor || noColorStd {
		off := false
		cfg.Output.Color = &off
	}
}

func lookupNonEmpty(key string) (string, bool) {
	v, ok := lookupEnv(key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}
