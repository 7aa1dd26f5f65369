package provision

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/aymanbagabas/go-udiff"

	"github.com/any-source/lokio/internal/catalog"
	"github.com/any-source/lokio/internal/messages"
)

// packageLine matches a top-level `package:` mapping line.
var packageLine = regexp.MustCompile(`(?m)^package:[^\r\n]*`)

// StubFetcher returns the raw config stub of a template.
// It returns an error matching catalog.ErrStubNotFound when the template has none.
type StubFetcher interface {
	FetchStub(ctx context.Context, templateID string, projectDir string) ([]byte, error)
}

// PatchResult describes a finished config patch.
type PatchResult struct {
	// Path is the written config file; empty when the stub was absent.
	Path string
	// Diff is the unified diff between the stub and the written file.
	Diff string
}

// Written reports whether a config file was written.
func (r PatchResult) Written() bool {
	return r.Path != ""
}

// ConfigPatcher writes the project config from the template's stub.
type ConfigPatcher struct {
	System     System
	Stubs      StubFetcher
	ConfigFile string
}

// Patch fetches the stub for templateID, points its package field at
// projectName, and writes it to <projectDir>/<ConfigFile>. An absent stub is
// not an error: the result reports nothing written.
func (p ConfigPatcher) Patch(ctx context.Context, templateID string, projectName string, projectDir string) (PatchResult, error) {
	stub, err := p.Stubs.FetchStub(ctx, templateID, projectDir)
	if errors.Is(err, catalog.ErrStubNotFound) {
		return PatchResult{}, nil
	}
	if err != nil {
		return PatchResult{}, &ConfigPatchError{Err: fmt.Errorf(messages.ProvisionFetchStubFmt, err)}
	}

	patched := PatchPackage(stub, projectName)
	path := filepath.Join(projectDir, p.ConfigFile)
	if err := p.System.WriteFileAtomic(path, patched, 0o644); err != nil {
		return PatchResult{}, &ConfigPatchError{Err: fmt.Errorf(messages.ProvisionWriteConfigFmt, path, err)}
	}
	name := filepath.ToSlash(p.ConfigFile)
	diff := udiff.Unified("a/"+name, "b/"+name, string(stub), string(patched))
	return PatchResult{Path: path, Diff: diff}, nil
}

// PatchPackage replaces the first top-level `package:` line of stub with
// `package: <name>`. Every other byte is kept; a stub without such a line is
// returned unchanged.
func PatchPackage(stub []byte, name string) []byte {
	loc := packageLine.FindIndex(stub)
	if loc == nil {
		return append([]byte(nil), stub...)
	}
	out := make([]byte, 0, len(stub)+len(name))
	out = append(out, stub[:loc[0]]...)
	out = append(out, "package: "+name...)
	return append(out, stub[loc[1]:]...)
}
