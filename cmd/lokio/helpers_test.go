package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/any-source/lokio/internal/catalog"
	"github.com/any-source/lokio/internal/config"
	"github.com/any-source/lokio/internal/lang"
	"github.com/any-source/lokio/internal/prompt"
	"github.com/any-source/lokio/internal/provision"
	"github.com/any-source/lokio/internal/testutil"
)

// memoryCatalog serves templates from memory in the layout a sparse checkout
// leaves behind.
type memoryCatalog struct {
	templates map[string]map[string]string
	stubs     map[string]string
}

func (c memoryCatalog) Acquire(_ context.Context, templateID string, dest string) error {
	files, ok := c.templates[templateID]
	if !ok {
		return &catalog.TemplateNotFoundError{TemplateID: templateID}
	}
	for rel, content := range files {
		path := filepath.Join(dest, "code", templateID, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return err
		}
	}
	return os.MkdirAll(filepath.Join(dest, catalog.MetadataDir), 0o755)
}

func (c memoryCatalog) FetchStub(_ context.Context, templateID string, _ string) ([]byte, error) {
	stub, ok := c.stubs[templateID]
	if !ok {
		return nil, catalog.ErrStubNotFound
	}
	return []byte(stub), nil
}

type cliEnv struct {
	dir    string
	runner *testutil.FakeRunner
	cfg    *config.Config
}

// setupCLI points the command at a temp working directory, a default config,
// an in-memory catalog, and a fake installer runner.
func setupCLI(t *testing.T) *cliEnv {
	t.Helper()
	env := &cliEnv{dir: t.TempDir(), runner: &testutil.FakeRunner{}, cfg: config.Default()}
	cat := memoryCatalog{
		templates: map[string]map[string]string{
			"basic-ts": {
				"package.json": "{\n  \"name\": \"starter\"\n}\n",
				".lokio.yaml":  "package: starter\nlanguage: ts\n",
			},
			"basic-go": {
				"go.mod": "module example.com/starter\n",
			},
		},
		stubs: map[string]string{"basic-ts": "package: starter\nlanguage: ts\n"},
	}

	origGetwd, origLoad, origInteractive, origUI, origOrch := getwd, loadConfig, isInteractive, newUI, newOrchestrator
	origTermWriter := isTerminalWriter
	t.Cleanup(func() {
		getwd, loadConfig, isInteractive, newUI, newOrchestrator = origGetwd, origLoad, origInteractive, origUI, origOrch
		isTerminalWriter = origTermWriter
	})
	getwd = func() (string, error) { return env.dir, nil }
	loadConfig = func(string) (*config.Config, error) { return env.cfg, nil }
	isInteractive = func() bool { return false }
	isTerminalWriter = func(io.Writer) bool { return false }
	newUI = func() prompt.UI {
		t.Fatalf("unexpected prompt")
		return nil
	}
	newOrchestrator = func(cfg *config.Config, stdout io.Writer, stderr io.Writer, verbose bool, baseDir string) *provision.Orchestrator {
		processor := &lang.Processor{Runner: env.runner, Install: cfg.Install}
		return &provision.Orchestrator{
			Catalog:   catalog.FromConfig(cfg.Catalog),
			System:    provision.RealSystem{},
			Acquirer:  cat,
			Stubs:     cat,
			Processor: processor,
			Notifier:  provision.NewNotifier(stdout, stderr, false, verbose),
			BaseDir:   baseDir,
		}
	}
	return env
}

func runCLI(args ...string) (string, string, error) {
	var out, errOut bytes.Buffer
	err := execute(append([]string{"lokio"}, args...), &out, &errOut)
	return out.String(), errOut.String(), err
}
