package provision

import (
	"os"
)

// faultySystem wraps RealSystem and fails selected operations.
type faultySystem struct {
	RealSystem
	mkdirErr   error
	renameErr  func(oldpath string, newpath string) error
	removeErr  func(path string) error
	writeErr   error
	readDirErr error
}

func (s faultySystem) MkdirAll(path string, perm os.FileMode) error {
	if s.mkdirErr != nil {
		return s.mkdirErr
	}
	return s.RealSystem.MkdirAll(path, perm)
}

func (s faultySystem) Rename(oldpath string, newpath string) error {
	if s.renameErr != nil {
		if err := s.renameErr(oldpath, newpath); err != nil {
			return err
		}
	}
	return s.RealSystem.Rename(oldpath, newpath)
}

func (s faultySystem) RemoveAll(path string) error {
	if s.removeErr != nil {
		if err := s.removeErr(path); err != nil {
			return err
		}
	}
	return s.RealSystem.RemoveAll(path)
}

func (s faultySystem) ReadDir(name string) ([]os.DirEntry, error) {
	if s.readDirErr != nil {
		return nil, s.readDirErr
	}
	return s.RealSystem.ReadDir(name)
}

func (s faultySystem) WriteFileAtomic(filename string, data []byte, perm os.FileMode) error {
	if s.writeErr != nil {
		return s.writeErr
	}
	return s.RealSystem.WriteFileAtomic(filename, data, perm)
}

func exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
