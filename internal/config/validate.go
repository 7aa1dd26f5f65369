package config

import (
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/any-source/lokio/internal/messages"
)

var validPackageManagers = map[string]struct{}{
	PackageManagerAuto: {},
	PackageManagerNPM:  {},
	PackageManagerPNPM: {},
	PackageManagerYarn: {},
	PackageManagerBun:  {},
}

// Validate ensures the config is complete and consistent.
func (c *Config) Validate() error {
	cat := c.Catalog
	if strings.TrimSpace(cat.Repository) == "" {
		return errors.New(messages.ConfigCatalogRepositoryRequired)
	}
	if strings.TrimSpace(cat.Ref) == "" {
		return errors.New(messages.ConfigCatalogRefRequired)
	}
	if strings.TrimSpace(cat.RawBaseURL) == "" {
		return errors.New(messages.ConfigCatalogRawBaseRequired)
	}
	if !validPathPrefix(cat.PathPrefix) {
		return fmt.Errorf(messages.ConfigCatalogPathPrefixInvalidFmt, cat.PathPrefix)
	}
	if strings.TrimSpace(cat.ConfigFile) == "" {
		return errors.New(messages.ConfigCatalogConfigFileRequired)
	}
	switch cat.StubSource {
	case StubSourceRemote, StubSourceLocal:
	default:
		return fmt.Errorf(messages.ConfigStubSourceInvalidFmt, cat.StubSource)
	}
	d, err := time.ParseDuration(cat.HTTPTimeout)
	if err != nil {
		return fmt.Errorf(messages.ConfigHTTPTimeoutInvalidFmt, cat.HTTPTimeout, err)
	}
	if d <= 0 {
		return fmt.Errorf(messages.ConfigHTTPTimeoutInvalidFmt, cat.HTTPTimeout, errors.New("must be positive"))
	}

	if _, ok := validPackageManagers[c.Install.NodePackageManager]; !ok {
		return fmt.Errorf(messages.ConfigPackageManagerInvalidFmt, c.Install.NodePackageManager)
	}
	if strings.TrimSpace(c.Install.GoBinary) == "" {
		return fmt.Errorf(messages.ConfigBinaryRequiredFmt, "go_binary")
	}
	if strings.TrimSpace(c.Install.GitBinary) == "" {
		return fmt.Errorf(messages.ConfigBinaryRequiredFmt, "git_binary")
	}
	return nil
}

// validPathPrefix accepts a non-empty relative slash path without ".." segments.
func validPathPrefix(prefix string) bool {
	p := strings.TrimSpace(prefix)
	if p == "" || strings.HasPrefix(p, "/") || strings.Contains(p, "\\") {
		return false
	}
	for _, seg := range strings.Split(path.Clean(p), "/") {
		if seg == ".." || seg == "." {
			return false
		}
	}
	return true
}
