package provision

import (
	"fmt"

	"github.com/any-source/lokio/internal/messages"
)

// DirectoryCreationError reports that the project directory could not be created.
type DirectoryCreationError struct {
	Path string
	Err  error
}

func (e *DirectoryCreationError) Error() string {
	return fmt.Sprintf(messages.ProvisionCreateDirFailedFmt, e.Path, e.Err)
}

func (e *DirectoryCreationError) Unwrap() error {
	return e.Err
}

// RelocationError reports a failed move or scaffolding removal. Entries moved
// before the failure stay where they are.
type RelocationError struct {
	Err error
}

func (e *RelocationError) Error() string {
	return fmt.Sprintf(messages.ProvisionRelocateFailedFmt, e.Err)
}

func (e *RelocationError) Unwrap() error {
	return e.Err
}

// ConfigPatchError reports a fatal config stub fetch or write failure.
type ConfigPatchError struct {
	Err error
}

func (e *ConfigPatchError) Error() string {
	return fmt.Sprintf(messages.ProvisionConfigPatchFailedFmt, e.Err)
}

func (e *ConfigPatchError) Unwrap() error {
	return e.Err
}

// StepError attaches the failed step and the last state reached to the
// originating error.
type StepError struct {
	Step  Step
	State State
	Err   error
}

func (e *StepError) Error() string {
	return fmt.Sprintf(messages.ProvisionStepErrFmt, e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
