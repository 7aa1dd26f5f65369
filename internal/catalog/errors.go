package catalog

import (
	"errors"
	"fmt"

	"github.com/any-source/lokio/internal/messages"
)

// ErrStubNotFound reports that the catalog has no config stub for a template.
var ErrStubNotFound = errors.New(messages.CatalogStubNotFound)

// TemplateNotFoundError reports that the catalog has no subtree for a template id.
type TemplateNotFoundError struct {
	TemplateID string
}

func (e *TemplateNotFoundError) Error() string {
	return fmt.Sprintf(messages.CatalogTemplateNotFoundFmt, e.TemplateID)
}

// AcquisitionError reports any other failure to clone a template: network,
// authentication, missing git, or disk.
type AcquisitionError struct {
	TemplateID string
	Err        error
}

func (e *AcquisitionError) Error() string {
	return fmt.Sprintf(messages.CatalogAcquireFailedFmt, e.TemplateID, e.Err)
}

func (e *AcquisitionError) Unwrap() error {
	return e.Err
}

// gitError is a git invocation that ran and exited non-zero.
type gitError struct {
	Args     []string
	ExitCode int
	Stderr   string
}

func (e *gitError) Error() string {
	return fmt.Sprintf(messages.CatalogGitFailedFmt, e.Args[0], e.ExitCode, e.Stderr)
}
