// Package lang holds the closed set of template languages and the
// post-processing each one runs after a template is relocated: manifest
// identity rewrites and, on request, dependency installation.
package lang

import (
	"fmt"
	"strings"

	"github.com/any-source/lokio/internal/messages"
)

// Tag identifies a supported template language.
type Tag string

// Supported language tags. Adding a language means adding a constant here, a
// case in Supported, and a handler in Processor.handler.
const (
	TypeScript Tag = "ts"
	Go         Tag = "go"
	Kotlin     Tag = "kt"
)

// Supported lists every accepted tag in display order.
func Supported() []Tag {
	return []Tag{TypeScript, Go, Kotlin}
}

// Parse validates raw against the closed tag set.
func Parse(raw string) (Tag, error) {
	tag := Tag(strings.ToLower(strings.TrimSpace(raw)))
	for _, known := range Supported() {
		if tag == known {
			return tag, nil
		}
	}
	return "", &UnsupportedLanguageError{Tag: raw}
}

// String returns the tag text.
func (t Tag) String() string {
	return string(t)
}

// UnsupportedLanguageError is a configuration error: the tag is outside the
// closed set. It is raised before any handler runs.
type UnsupportedLanguageError struct {
	Tag string
}

func (e *UnsupportedLanguageError) Error() string {
	names := make([]string, 0, len(Supported()))
	for _, tag := range Supported() {
		names = append(names, tag.String())
	}
	return fmt.Sprintf(messages.LangUnsupportedFmt, e.Tag, strings.Join(names, ", "))
}

// LanguageProcessingError reports a failed manifest rewrite for a language.
type LanguageProcessingError struct {
	Tag Tag
	Err error
}

func (e *LanguageProcessingError) Error() string {
	return fmt.Sprintf(messages.LangProcessingFailedFmt, e.Tag, e.Err)
}

func (e *LanguageProcessingError) Unwrap() error {
	return e.Err
}

// InstallError reports a failed dependency installer. It is never fatal to
// provisioning; the processor surfaces it as a warning.
type InstallError struct {
	Command  string
	ExitCode int
	Err      error
}

func (e *InstallError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf(messages.LangInstallerRunFmt, e.Command, e.Err)
	}
	return fmt.Sprintf(messages.LangInstallerFailedFmt, e.Command, e.ExitCode)
}

func (e *InstallError) Unwrap() error {
	return e.Err
}
