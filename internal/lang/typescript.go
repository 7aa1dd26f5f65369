package lang

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/any-source/lokio/internal/config"
	"github.com/any-source/lokio/internal/fsutil"
	"github.com/any-source/lokio/internal/messages"
)

// PackageJSON is the TypeScript manifest file name.
const PackageJSON = "package.json"

// lockfiles maps lockfile names to the package manager that owns them, in
// detection order.
var lockfiles = []struct {
	name    string
	manager string
}{
	{name: "bun.lockb", manager: config.PackageManagerBun},
	{name: "bun.lock", manager: config.PackageManagerBun},
	{name: "pnpm-lock.yaml", manager: config.PackageManagerPNPM},
	{name: "yarn.lock", manager: config.PackageManagerYarn},
	{name: "package-lock.json", manager: config.PackageManagerNPM},
}

type typeScript struct {
	packageManager string
}

func (ts typeScript) rewrite(projectDir string, projectName string) error {
	path := filepath.Join(projectDir, PackageJSON)
	data, err := readManifest(path)
	if err != nil {
		return err
	}
	updated, err := setPackageName(data, projectName)
	if err != nil {
		return fmt.Errorf(messages.LangPackageJSONInvalidFmt, path, err)
	}
	if bytes.Equal(updated, data) {
		return nil
	}
	return writeManifest(path, updated)
}

func (ts typeScript) installCommand(projectDir string) (Command, bool) {
	return Command{Name: DetectPackageManager(projectDir, ts.packageManager), Args: []string{"install"}}, true
}

// DetectPackageManager resolves the node package manager for projectDir.
// An explicit preference wins; "auto" or empty picks by lockfile and falls
// back to npm.
func DetectPackageManager(projectDir string, preference string) string {
	if preference != "" && preference != config.PackageManagerAuto {
		return preference
	}
	for _, lock := range lockfiles {
		if _, err := os.Stat(filepath.Join(projectDir, lock.name)); err == nil {
			return lock.manager
		}
	}
	return config.PackageManagerNPM
}

// setPackageName replaces the top-level "name" string of a package.json
// document, leaving every other byte untouched. A document without a name
// gets one inserted as the first member.
func setPackageName(data []byte, name string) ([]byte, error) {
	if !json.Valid(data) {
		return nil, errors.New(messages.LangPackageJSONSyntax)
	}
	quoted, err := marshalString(name)
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.New(messages.LangPackageJSONNotObject)
	}
	open := int(dec.InputOffset())

	members := 0
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		members++
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}
		if key, _ := keyTok.(string); key != "name" {
			continue
		}
		if len(value) == 0 || value[0] != '"' {
			return nil, errors.New(messages.LangPackageJSONNameNotString)
		}
		end := int(dec.InputOffset())
		start := end - len(value)
		return splice(data, start, end, quoted), nil
	}

	member := append([]byte("\n  \"name\": "), quoted...)
	if members > 0 {
		member = append(member, ',')
	} else {
		member = append(member, '\n')
	}
	return splice(data, open, open, member), nil
}

func marshalString(s string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func splice(data []byte, start int, end int, insert []byte) []byte {
	out := make([]byte, 0, len(data)-(end-start)+len(insert))
	out = append(out, data[:start]...)
	out = append(out, insert...)
	return append(out, data[end:]...)
}

func readManifest(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf(messages.LangManifestMissingFmt, filepath.Base(path), err)
		}
		return nil, fmt.Errorf(messages.LangReadManifestFmt, path, err)
	}
	return data, nil
}

func writeManifest(path string, data []byte) error {
	perm := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}
	if err := fsutil.WriteFileAtomic(path, data, perm); err != nil {
		return fmt.Errorf(messages.LangWriteManifestFmt, path, err)
	}
	return nil
}
