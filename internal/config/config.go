// Package config loads the lokio user configuration: the template catalog
// location, installer preferences, and output settings.
package config

import "time"

// Stub sources for the config stub patched into new projects.
const (
	StubSourceRemote = "remote"
	StubSourceLocal  = "local"
)

// Node package manager choices for the TypeScript installer.
const (
	PackageManagerAuto = "auto"
	PackageManagerNPM  = "npm"
	PackageManagerPNPM = "pnpm"
	PackageManagerYarn = "yarn"
	PackageManagerBun  = "bun"
)

// Default catalog location.
const (
	DefaultRepository  = "https://github.com/any-source/examples"
	DefaultRef         = "main"
	DefaultRawBaseURL  = "https://raw.githubusercontent.com/any-source/examples"
	DefaultPathPrefix  = "code"
	DefaultConfigFile  = ".lokio.yaml"
	DefaultHTTPTimeout = "30s"
)

// Config is the full user configuration.
type Config struct {
	Catalog CatalogConfig `toml:"catalog"`
	Install InstallConfig `toml:"install"`
	Output  OutputConfig  `toml:"output"`
}

// CatalogConfig locates the remote template catalog.
type CatalogConfig struct {
	Repository  string `toml:"repository"`
	Ref         string `toml:"ref"`
	RawBaseURL  string `toml:"raw_base_url"`
	PathPrefix  string `toml:"path_prefix"`
	ConfigFile  string `toml:"config_file"`
	StubSource  string `toml:"stub_source"`
	HTTPTimeout string `toml:"http_timeout"`
}

// InstallConfig controls dependency installers and external binaries.
type InstallConfig struct {
	NodePackageManager string `toml:"node_package_manager"`
	GoBinary           string `toml:"go_binary"`
	GitBinary          string `toml:"git_binary"`
}

// OutputConfig controls user-facing output.
type OutputConfig struct {
	Color   *bool `toml:"color"`
	Verbose bool  `toml:"verbose"`
}

// Default returns the built-in configuration.
func Default() *Config {
	color := true
	return &Config{
		Catalog: CatalogConfig{
			Repository:  DefaultRepository,
			Ref:         DefaultRef,
			RawBaseURL:  DefaultRawBaseURL,
			PathPrefix:  DefaultPathPrefix,
			ConfigFile:  DefaultConfigFile,
			StubSource:  StubSourceRemote,
			HTTPTimeout: DefaultHTTPTimeout,
		},
		Install: InstallConfig{
			NodePackageManager: PackageManagerAuto,
			GoBinary:           "go",
			GitBinary:          "git",
		},
		Output: OutputConfig{Color: &color},
	}
}

// ColorEnabled reports whether colored output is allowed by the config.
func (c *Config) ColorEnabled() bool {
	return c.Output.Color == nil || *c.Output.Color
}

// Timeout returns the parsed catalog HTTP timeout. Call Validate first.
func (c *CatalogConfig) Timeout() time.Duration {
	d, err := time.ParseDuration(c.HTTPTimeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}
