// Package catalog talks to the remote template catalog: it acquires a single
// template subtree with a sparse, shallow git clone and fetches the per-template
// config stub as a raw file.
package catalog

import (
	"net/url"
	"path"
	"strings"

	"github.com/any-source/lokio/internal/config"
)

// Catalog is the location of the remote template catalog.
type Catalog struct {
	// Repository is the clonable git URL.
	Repository string
	// Ref is the branch checked out for every template.
	Ref string
	// RawBaseURL serves raw files as <RawBaseURL>/<Ref>/<path>.
	RawBaseURL string
	// PathPrefix is the directory holding one subtree per template id.
	PathPrefix string
	// ConfigFile is the stub file name inside each template.
	ConfigFile string
}

// Default returns the built-in catalog location.
func Default() Catalog {
	return FromConfig(config.Default().Catalog)
}

// FromConfig builds a Catalog from validated catalog settings.
func FromConfig(cfg config.CatalogConfig) Catalog {
	return Catalog{
		Repository: strings.TrimSpace(cfg.Repository),
		Ref:        strings.TrimSpace(cfg.Ref),
		RawBaseURL: strings.TrimRight(strings.TrimSpace(cfg.RawBaseURL), "/"),
		PathPrefix: strings.Trim(strings.TrimSpace(cfg.PathPrefix), "/"),
		ConfigFile: strings.TrimSpace(cfg.ConfigFile),
	}
}

// TemplatePath returns the slash-separated repository path of a template.
func (c Catalog) TemplatePath(templateID string) string {
	return path.Join(c.PathPrefix, templateID)
}

// StagingRoot returns the first path segment of every template path; it is the
// directory left behind by acquisition and removed by relocation.
func (c Catalog) StagingRoot() string {
	root, _, _ := strings.Cut(c.PathPrefix, "/")
	return root
}

// StubURL returns the raw URL of the config stub for templateID.
func (c Catalog) StubURL(templateID string) (string, error) {
	return url.JoinPath(c.RawBaseURL, c.Ref, c.TemplatePath(templateID), c.ConfigFile)
}
