package lang

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"go/parser"
	"go/token"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"golang.org/x/tools/go/ast/astutil"

	"github.com/any-source/lokio/internal/messages"
)

// GoMod is the Go manifest file name.
const GoMod = "go.mod"

// skippedGoDirs are never scanned for import rewrites, in addition to the
// names the go tool ignores (see ignoredByGoTool).
var skippedGoDirs = map[string]bool{
	"vendor":       true,
	"node_modules": true,
}

// ignoredByGoTool reports whether the go command skips a file or directory
// of this name: testdata, and anything starting with "_" or ".".
func ignoredByGoTool(name string) bool {
	return name == "testdata" || strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")
}

type golang struct {
	binary string
}

func (g golang) rewrite(projectDir string, projectName string) error {
	path := filepath.Join(projectDir, GoMod)
	data, err := readManifest(path)
	if err != nil {
		return err
	}
	oldPath, updated, err := setModulePath(path, data, projectName)
	if err != nil {
		return err
	}
	if oldPath == projectName {
		return nil
	}
	if err := writeManifest(path, updated); err != nil {
		return err
	}
	return rewriteImports(projectDir, oldPath, projectName)
}

func (g golang) installCommand(string) (Command, bool) {
	binary := g.binary
	if binary == "" {
		binary = "go"
	}
	return Command{Name: binary, Args: []string{"mod", "tidy"}}, true
}

// CheckModulePath reports whether name can become the module path of a Go
// project.
func CheckModulePath(name string) error {
	if err := module.CheckImportPath(name); err != nil {
		return fmt.Errorf(messages.LangGoModuleInvalidFmt, name, err)
	}
	return nil
}

// setModulePath rewrites the module directive of a go.mod document and
// returns the previous module path.
func setModulePath(path string, data []byte, modulePath string) (string, []byte, error) {
	if err := CheckModulePath(modulePath); err != nil {
		return "", nil, err
	}
	file, err := modfile.Parse(path, data, nil)
	if err != nil {
		return "", nil, fmt.Errorf(messages.LangGoModParseFmt, path, err)
	}
	if file.Module == nil {
		return "", nil, errors.New(messages.LangGoModNoModule)
	}
	oldPath := file.Module.Mod.Path
	if oldPath == modulePath {
		return oldPath, data, nil
	}
	if err := file.AddModuleStmt(modulePath); err != nil {
		return "", nil, fmt.Errorf(messages.LangGoModParseFmt, path, err)
	}
	out, err := file.Format()
	if err != nil {
		return "", nil, fmt.Errorf(messages.LangGoModFormatFmt, path, err)
	}
	return oldPath, out, nil
}

// rewriteImports moves every import of oldPath, or a package below it, to the
// same package under newPath.
func rewriteImports(root string, oldPath string, newPath string) error {
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && (skippedGoDirs[d.Name()] || ignoredByGoTool(d.Name())) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() || !strings.HasSuffix(d.Name(), ".go") || ignoredByGoTool(d.Name()) {
			return nil
		}
		return rewriteFileImports(path, oldPath, newPath)
	})
	if err != nil {
		return fmt.Errorf(messages.LangGoSourceWalkFmt, err)
	}
	return nil
}

func rewriteFileImports(path string, oldPath string, newPath string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf(messages.LangReadManifestFmt, path, err)
	}
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, src, parser.ParseComments|parser.ImportsOnly)
	if err != nil {
		return fmt.Errorf(messages.LangGoSourceParseFmt, path, err)
	}
	var targets []string
	for _, spec := range file.Imports {
		importPath, err := strconv.Unquote(spec.Path.Value)
		if err != nil {
			continue
		}
		if importPath == oldPath || strings.HasPrefix(importPath, oldPath+"/") {
			targets = append(targets, importPath)
		}
	}
	if len(targets) == 0 {
		return nil
	}

	fset = token.NewFileSet()
	file, err = parser.ParseFile(fset, path, src, parser.ParseComments)
	if err != nil {
		return fmt.Errorf(messages.LangGoSourceParseFmt, path, err)
	}
	for _, target := range targets {
		astutil.RewriteImport(fset, file, target, newPath+strings.TrimPrefix(target, oldPath))
	}
	var buf bytes.Buffer
	if err := format.Node(&buf, fset, file); err != nil {
		return fmt.Errorf(messages.LangGoSourceFormatFmt, path, err)
	}
	return writeManifest(path, buf.Bytes())
}
