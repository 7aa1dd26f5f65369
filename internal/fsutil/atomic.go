// Package fsutil holds small filesystem helpers shared across packages.
package fsutil

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/any-source/lokio/internal/messages"
)

const tempPattern = ".lokio-tmp-*"

var (
	osCreateTemp = os.CreateTemp
	osChmod      = os.Chmod
	osRename     = os.Rename
)

// WriteFileAtomic writes data to filename by writing a temp file in the same
// directory and renaming it into place. The parent directory must exist.
// On failure the previous contents of filename, if any, are left untouched.
func WriteFileAtomic(filename string, data []byte, perm os.FileMode) error {
	tmp, err := osCreateTemp(filepath.Dir(filename), tempPattern)
	if err != nil {
		return fmt.Errorf(messages.FsutilCreateTempFmt, filename, err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf(messages.FsutilWriteTempFmt, filename, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf(messages.FsutilSyncTempFmt, filename, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf(messages.FsutilCloseTempFmt, filename, err)
	}
	if err := osChmod(tmpName, perm); err != nil {
		return fmt.Errorf(messages.FsutilChmodTempFmt, filename, err)
	}
	if err := osRename(tmpName, filename); err != nil {
		return fmt.Errorf(messages.FsutilRenameTempFmt, filename, err)
	}
	committed = true
	return nil
}
