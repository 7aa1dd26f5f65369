// Package projectfile reads the persisted project config (.lokio.yaml).
package projectfile

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/any-source/lokio/internal/messages"
)

// ErrNotFound reports that the directory has no project config.
var ErrNotFound = errors.New(messages.ProjectFileNotFound)

// Field is one top-level entry, in document order.
type Field struct {
	Key   string
	Value string
}

// File is the parsed project config.
type File struct {
	Path    string
	Package string
	Fields  []Field
}

// Load reads <dir>/<name>. A missing file yields ErrNotFound.
func Load(dir string, name string) (File, error) {
	path := filepath.Join(dir, name)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return File{}, fmt.Errorf(messages.ProjectFileMissingFmt, path, ErrNotFound)
	}
	if err != nil {
		return File{}, fmt.Errorf(messages.ProjectFileReadFmt, path, err)
	}
	file, err := Parse(data)
	if err != nil {
		return File{}, fmt.Errorf(messages.ProjectFileParseFmt, path, err)
	}
	file.Path = path
	return file, nil
}

// Parse decodes a project config document. The document must be a mapping;
// an empty document has no fields.
func Parse(data []byte) (File, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return File{}, err
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return File{}, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return File{}, errors.New(messages.ProjectFileNotMapping)
	}

	var file File
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		text, err := render(value)
		if err != nil {
			return File{}, err
		}
		file.Fields = append(file.Fields, Field{Key: key.Value, Value: text})
		if key.Value == "package" && file.Package == "" && value.Kind == yaml.ScalarNode {
			file.Package = value.Value
		}
	}
	return file, nil
}

// render returns scalars as-is and collections in single-line flow style.
func render(node *yaml.Node) (string, error) {
	if node.Kind == yaml.ScalarNode {
		return node.Value, nil
	}
	flow := *node
	flow.Style = yaml.FlowStyle
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	if err := enc.Encode(&flow); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return strings.TrimSpace(buf.String()), nil
}
