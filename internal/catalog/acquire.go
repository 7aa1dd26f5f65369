package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/any-source/lokio/internal/messages"
	"github.com/any-source/lokio/internal/runner"
)

// MetadataDir is the version-control metadata directory left by acquisition.
const MetadataDir = ".git"

// GitAcquirer clones one template subtree with a shallow, blob-filtered,
// sparse git checkout so the cost does not grow with the catalog.
type GitAcquirer struct {
	Catalog Catalog
	Runner  runner.CommandRunner
	// Git is the git binary; empty means "git".
	Git string
	// RemoveAll defaults to os.RemoveAll.
	RemoveAll func(path string) error
}

// NewGitAcquirer returns a GitAcquirer using the real command runner.
func NewGitAcquirer(cat Catalog, git string) *GitAcquirer {
	return &GitAcquirer{Catalog: cat, Runner: runner.RealRunner{}, Git: git}
}

// Acquire materializes <PathPrefix>/<templateID> of the catalog under dest,
// together with the clone metadata. dest must exist and be empty.
// When the catalog has no such subtree, the clone metadata is removed again and
// a *TemplateNotFoundError is returned, leaving dest as it was.
func (a *GitAcquirer) Acquire(ctx context.Context, templateID string, dest string) error {
	if a.Runner == nil {
		return &AcquisitionError{TemplateID: templateID, Err: fmt.Errorf(messages.CatalogRunnerRequired)}
	}
	templatePath := a.Catalog.TemplatePath(templateID)

	clone := []string{
		"clone",
		"--depth", "1",
		"--branch", a.Catalog.Ref,
		"--filter=blob:none",
		"--no-checkout",
		a.Catalog.Repository,
		dest,
	}
	if _, err := a.git(ctx, "", clone...); err != nil {
		return &AcquisitionError{TemplateID: templateID, Err: err}
	}

	out, err := a.git(ctx, dest, "ls-tree", "-d", "--name-only", "HEAD", "--", templatePath)
	if err != nil {
		return &AcquisitionError{TemplateID: templateID, Err: err}
	}
	if strings.TrimSpace(out) == "" {
		if err := a.removeAll(filepath.Join(dest, MetadataDir)); err != nil {
			return &AcquisitionError{TemplateID: templateID, Err: fmt.Errorf(messages.CatalogRemoveMetadataFmt, MetadataDir, err)}
		}
		return &TemplateNotFoundError{TemplateID: templateID}
	}

	steps := [][]string{
		{"sparse-checkout", "set", "--no-cone", "/" + templatePath + "/"},
		{"checkout", a.Catalog.Ref},
	}
	for _, args := range steps {
		if _, err := a.git(ctx, dest, args...); err != nil {
			return &AcquisitionError{TemplateID: templateID, Err: err}
		}
	}
	return nil
}

// git runs one git command and returns its stdout; a non-zero exit is an error.
func (a *GitAcquirer) git(ctx context.Context, dir string, args ...string) (string, error) {
	bin := a.Git
	if strings.TrimSpace(bin) == "" {
		bin = "git"
	}
	result, err := a.Runner.Run(ctx, bin, args, runner.Options{
		Dir: dir,
		Env: map[string]string{"GIT_TERMINAL_PROMPT": "0"},
	})
	if err != nil {
		return "", fmt.Errorf(messages.CatalogGitRunFailedFmt, args[0], err)
	}
	if result.ExitCode != 0 {
		return "", &gitError{Args: args, ExitCode: result.ExitCode, Stderr: strings.TrimSpace(result.Stderr)}
	}
	return result.Stdout, nil
}

func (a *GitAcquirer) removeAll(path string) error {
	if a.RemoveAll != nil {
		return a.RemoveAll(path)
	}
	return os.RemoveAll(path)
}
