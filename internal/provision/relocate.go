package provision

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/any-source/lokio/internal/catalog"
	"github.com/any-source/lokio/internal/messages"
)

const stagingPrefix = ".lokio-staging-"

// Relocator promotes an acquired template subtree to the project root and
// removes the acquisition scaffolding.
type Relocator struct {
	System  System
	Catalog catalog.Catalog
	// StagingName returns the hidden directory name the staging root is
	// renamed to before entries move. Defaults to a time-based name.
	StagingName func() string
}

// Relocate moves every entry of <destDir>/<prefix>/<templateID> into destDir,
// then deletes the staging directory and the clone metadata. It never
// overwrites an existing entry and does not roll back entries already moved.
func (r Relocator) Relocate(destDir string, templateID string) error {
	if err := r.relocate(destDir, templateID); err != nil {
		return &RelocationError{Err: err}
	}
	return nil
}

func (r Relocator) relocate(destDir string, templateID string) error {
	root := r.Catalog.StagingRoot()
	rootPath := filepath.Join(destDir, root)
	if _, err := r.System.Lstat(rootPath); err != nil {
		return fmt.Errorf(messages.ProvisionStagingMissingFmt, rootPath, err)
	}

	staged := filepath.Join(destDir, r.stagingName())
	if err := r.System.Rename(rootPath, staged); err != nil {
		return fmt.Errorf(messages.ProvisionStagingRenameFmt, rootPath, err)
	}
	rest := strings.TrimPrefix(strings.TrimPrefix(r.Catalog.TemplatePath(templateID), root), "/")
	src := filepath.Join(staged, filepath.FromSlash(rest))

	info, err := r.System.Lstat(src)
	if err != nil {
		return fmt.Errorf(messages.ProvisionStagingMissingFmt, src, err)
	}
	if !info.IsDir() {
		return fmt.Errorf(messages.ProvisionStagingNotDirFmt, src)
	}
	entries, err := r.System.ReadDir(src)
	if err != nil {
		return fmt.Errorf(messages.ProvisionReadStagingFmt, src, err)
	}
	for _, entry := range entries {
		from := filepath.Join(src, entry.Name())
		to := filepath.Join(destDir, entry.Name())
		if err := r.ensureAbsent(to); err != nil {
			return err
		}
		if err := r.System.Rename(from, to); err != nil {
			return fmt.Errorf(messages.ProvisionMoveEntryFmt, from, to, err)
		}
	}

	for _, scaffold := range []string{staged, filepath.Join(destDir, catalog.MetadataDir)} {
		if err := r.System.RemoveAll(scaffold); err != nil {
			return fmt.Errorf(messages.ProvisionRemoveScaffoldingFmt, scaffold, err)
		}
	}
	return nil
}

func (r Relocator) ensureAbsent(path string) error {
	_, err := r.System.Lstat(path)
	if err == nil {
		return fmt.Errorf(messages.ProvisionEntryExistsFmt, filepath.Base(path), path)
	}
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func (r Relocator) stagingName() string {
	if r.StagingName != nil {
		return r.StagingName()
	}
	return stagingPrefix + strconv.FormatInt(time.Now().UnixNano(), 36)
}
