package provision

// Ensurer creates the project directory and any missing parents.
type Ensurer struct {
	System System
}

// Ensure creates path if needed. An existing directory is left as is.
func (e Ensurer) Ensure(path string) error {
	if err := e.System.MkdirAll(path, 0o755); err != nil {
		return &DirectoryCreationError{Path: path, Err: err}
	}
	return nil
}
