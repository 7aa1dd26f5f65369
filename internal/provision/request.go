package provision

import (
	"fmt"
	"path"
	"regexp"
	"strings"

	"github.com/any-source/lokio/internal/lang"
	"github.com/any-source/lokio/internal/messages"
)

// projectNamePattern keeps names safe as a directory name, as a plain YAML
// scalar in the config file, and as a Go module path element.
var projectNamePattern = regexp.MustCompile(`^[A-Za-z0-9](?:[A-Za-z0-9._-]*[A-Za-z0-9_-])?$`)

// templateSegmentPattern excludes gitignore pattern syntax so a sparse
// checkout of the template cannot match more than one subtree.
var templateSegmentPattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// Request is one provisioning request. The orchestrator copies it on entry.
type Request struct {
	TemplateID          string
	ProjectName         string
	Language            lang.Tag
	InstallDependencies bool
}

// Validate rejects requests that would write outside a single new directory or
// select an unsupported language.
func (r Request) Validate() error {
	if err := ValidateTemplateID(r.TemplateID); err != nil {
		return err
	}
	if err := ValidateProjectName(r.ProjectName); err != nil {
		return err
	}
	tag, err := lang.Parse(string(r.Language))
	if err != nil {
		return err
	}
	if tag == lang.Go {
		return lang.CheckModulePath(r.ProjectName)
	}
	return nil
}

// ValidateTemplateID checks that id names a relative catalog path.
func ValidateTemplateID(id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf(messages.ProvisionTemplateIDRequired)
	}
	if strings.HasPrefix(id, "/") || strings.Contains(id, `\`) {
		return fmt.Errorf(messages.ProvisionTemplateIDInvalidFmt, id)
	}
	for _, segment := range strings.Split(id, "/") {
		if segment == "." || segment == ".." || !templateSegmentPattern.MatchString(segment) {
			return fmt.Errorf(messages.ProvisionTemplateIDInvalidFmt, id)
		}
	}
	if path.Clean(id) != id {
		return fmt.Errorf(messages.ProvisionTemplateIDInvalidFmt, id)
	}
	return nil
}

// ValidateProjectName checks that name is usable as a single directory name
// and as the package value written to the config file.
func ValidateProjectName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf(messages.ProvisionProjectNameRequired)
	}
	if !projectNamePattern.MatchString(name) {
		return fmt.Errorf(messages.ProvisionProjectNameInvalidFmt, name)
	}
	return nil
}
