package provision

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/any-source/lokio/internal/catalog"
	"github.com/any-source/lokio/internal/config"
	"github.com/any-source/lokio/internal/lang"
	"github.com/any-source/lokio/internal/runner"
	"github.com/any-source/lokio/internal/testutil"
)

// fakeCatalog materializes templates the way a sparse checkout leaves them:
// the subtree under code/<id> plus clone metadata.
type fakeCatalog struct {
	templates map[string]map[string]string
	stubs     map[string]string
	acquired  []string
	fetched   []string
}

func (c *fakeCatalog) Acquire(_ context.Context, templateID string, dest string) error {
	c.acquired = append(c.acquired, templateID)
	files, ok := c.templates[templateID]
	if !ok {
		return &catalog.TemplateNotFoundError{TemplateID: templateID}
	}
	tree := map[string]string{".git/HEAD": "ref: refs/heads/main\n"}
	for rel, content := range files {
		tree["code/"+templateID+"/"+rel] = content
	}
	for rel, content := range tree {
		path := filepath.Join(dest, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return err
		}
	}
	return nil
}

func (c *fakeCatalog) FetchStub(_ context.Context, templateID string, _ string) ([]byte, error) {
	c.fetched = append(c.fetched, templateID)
	stub, ok := c.stubs[templateID]
	if !ok {
		return nil, catalog.ErrStubNotFound
	}
	return []byte(stub), nil
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		templates: map[string]map[string]string{
			"basic-ts": {
				"package.json": "{\n  \"name\": \"starter\"\n}\n",
				".lokio.yaml":  "package: starter\nlanguage: ts\n",
				"src/index.ts": "export {}\n",
			},
			"go-api": {
				"go.mod":  "module example.com/starter\n\ngo 1.22\n",
				"main.go": "package main\n\nfunc main() {}\n",
			},
			"kotlin-app": {
				"settings.gradle.kts": "rootProject.name = \"starter\"\n",
			},
		},
		stubs: map[string]string{
			"basic-ts": "package: starter\nlanguage: ts\n",
			"go-api":   "package: starter\nlanguage: go\n",
		},
	}
}

type harness struct {
	orch    *Orchestrator
	catalog *fakeCatalog
	runner  *testutil.FakeRunner
	out     *bytes.Buffer
	errOut  *bytes.Buffer
	base    string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		catalog: newFakeCatalog(),
		runner:  &testutil.FakeRunner{},
		out:     &bytes.Buffer{},
		errOut:  &bytes.Buffer{},
		base:    t.TempDir(),
	}
	processor := &lang.Processor{
		Runner:  h.runner,
		Install: config.InstallConfig{NodePackageManager: config.PackageManagerAuto, GoBinary: "go"},
	}
	h.orch = &Orchestrator{
		Catalog:   catalog.Default(),
		System:    RealSystem{},
		Acquirer:  h.catalog,
		Stubs:     h.catalog,
		Processor: processor,
		Notifier:  NewNotifier(h.out, h.errOut, false, true),
		BaseDir:   h.base,
	}
	return h
}

func readString(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestRunBasicTypeScriptScenario(t *testing.T) {
	h := newHarness(t)
	req := Request{TemplateID: "basic-ts", ProjectName: "demo", Language: lang.TypeScript}

	result, err := h.orch.Run(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, StateDone, result.State)
	require.Equal(t, []State{
		StateDirectoryReady,
		StateAcquired,
		StateRelocated,
		StateConfigPatched,
		StateLanguageProcessed,
		StateDone,
	}, result.Transitions)
	require.True(t, result.ConfigWritten)
	require.Empty(t, result.Warnings)

	projectDir := filepath.Join(h.base, "demo")
	require.Equal(t, projectDir, result.ProjectDir)
	require.Contains(t, readString(t, filepath.Join(projectDir, ".lokio.yaml")), "package: demo\n")
	require.Contains(t, readString(t, filepath.Join(projectDir, "package.json")), `"name": "demo"`)
	require.True(t, exists(filepath.Join(projectDir, "src", "index.ts")))
	require.False(t, exists(filepath.Join(projectDir, "code")))
	require.False(t, exists(filepath.Join(projectDir, catalog.MetadataDir)))
	require.Empty(t, h.runner.Calls())

	out := h.out.String()
	require.Contains(t, out, "Setting up your project...")
	require.Contains(t, out, "Template downloaded successfully")
	require.Contains(t, out, "+package: demo")
	require.Contains(t, out, "Project demo created successfully!")
	require.Empty(t, h.errOut.String())
}

func TestRunTemplateNotFound(t *testing.T) {
	h := newHarness(t)
	result, err := h.orch.Run(context.Background(), Request{TemplateID: "nonexistent", ProjectName: "demo", Language: lang.TypeScript})

	require.Equal(t, StateFailed, result.State)
	var notFound *catalog.TemplateNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("error = %v, want TemplateNotFoundError", err)
	}
	var stepErr *StepError
	require.True(t, errors.As(err, &stepErr))
	require.Equal(t, StepAcquire, stepErr.Step)
	require.Equal(t, StateDirectoryReady, stepErr.State)
	require.Equal(t, []State{StateDirectoryReady, StateFailed}, result.Transitions)

	entries, readErr := os.ReadDir(filepath.Join(h.base, "demo"))
	require.NoError(t, readErr)
	require.Empty(t, entries)
	require.Empty(t, h.catalog.fetched)
	require.Contains(t, h.errOut.String(), "Failed to create project.")
	require.Contains(t, h.errOut.String(), `template "nonexistent" not found`)
}

func TestRunStubAbsentStillDone(t *testing.T) {
	h := newHarness(t)
	result, err := h.orch.Run(context.Background(), Request{TemplateID: "kotlin-app", ProjectName: "demo", Language: lang.Kotlin, InstallDependencies: true})
	require.NoError(t, err)
	require.Equal(t, StateDone, result.State)
	require.False(t, result.ConfigWritten)
	require.Equal(t, []Warning{{Kind: WarningConfigStubAbsent}}, result.Warnings)
	require.False(t, exists(filepath.Join(h.base, "demo", ".lokio.yaml")))
	require.True(t, exists(filepath.Join(h.base, "demo", "settings.gradle.kts")))
	require.Empty(t, h.runner.Calls())
	require.Contains(t, h.errOut.String(), "Configuration file not found")
}

func TestRunInstallFailureIsWarning(t *testing.T) {
	h := newHarness(t)
	h.runner.Handle = func(testutil.Call) (runner.Result, error) {
		return runner.Result{ExitCode: 1}, nil
	}
	result, err := h.orch.Run(context.Background(), Request{TemplateID: "go-api", ProjectName: "demo", Language: lang.Go, InstallDependencies: true})
	require.NoError(t, err)
	require.Equal(t, StateDone, result.State)
	require.Len(t, result.Warnings, 1)
	require.Equal(t, WarningDependencyInstall, result.Warnings[0].Kind)
	var installErr *lang.InstallError
	require.True(t, errors.As(result.Warnings[0].Err, &installErr))
	require.Equal(t, []testutil.Call{{Name: "go", Args: []string{"mod", "tidy"}, Dir: filepath.Join(h.base, "demo")}}, h.runner.Calls())
	require.Contains(t, readString(t, filepath.Join(h.base, "demo", "go.mod")), "module demo\n")
	require.Contains(t, h.errOut.String(), "Dependency installation failed")
}

func TestRunNoInstallerWhenNotRequested(t *testing.T) {
	for _, tc := range []struct {
		templateID string
		tag        lang.Tag
	}{
		{templateID: "basic-ts", tag: lang.TypeScript},
		{templateID: "go-api", tag: lang.Go},
		{templateID: "kotlin-app", tag: lang.Kotlin},
	} {
		t.Run(tc.tag.String(), func(t *testing.T) {
			h := newHarness(t)
			result, err := h.orch.Run(context.Background(), Request{TemplateID: tc.templateID, ProjectName: "demo", Language: tc.tag})
			require.NoError(t, err)
			require.Equal(t, StateDone, result.State)
			require.Empty(t, h.runner.Calls())
		})
	}
}

func TestRunRelocationFailureStopsPipeline(t *testing.T) {
	h := newHarness(t)
	boom := errors.New("device busy")
	h.orch.System = faultySystem{renameErr: func(string, string) error { return boom }}

	result, err := h.orch.Run(context.Background(), Request{TemplateID: "basic-ts", ProjectName: "demo", Language: lang.TypeScript, InstallDependencies: true})
	require.Equal(t, StateFailed, result.State)
	var relocErr *RelocationError
	if !errors.As(err, &relocErr) {
		t.Fatalf("error = %v, want RelocationError", err)
	}
	require.ErrorIs(t, err, boom)
	require.Empty(t, h.catalog.fetched)
	require.Empty(t, h.runner.Calls())
	require.False(t, exists(filepath.Join(h.base, "demo", ".lokio.yaml")))
	require.True(t, exists(filepath.Join(h.base, "demo", "code", "basic-ts", "package.json")))
	require.NotContains(t, h.out.String(), "Template files moved into place")
}

func TestRunConfigPatchFailureStopsPipeline(t *testing.T) {
	h := newHarness(t)
	boom := errors.New("read-only file system")
	h.orch.System = faultySystem{writeErr: boom}

	result, err := h.orch.Run(context.Background(), Request{TemplateID: "basic-ts", ProjectName: "demo", Language: lang.TypeScript})
	require.Equal(t, StateFailed, result.State)
	var patchErr *ConfigPatchError
	require.True(t, errors.As(err, &patchErr))
	var stepErr *StepError
	require.True(t, errors.As(err, &stepErr))
	require.Equal(t, StateRelocated, stepErr.State)
	require.Contains(t, readString(t, filepath.Join(h.base, "demo", "package.json")), "starter")
}

func TestRunLanguageProcessingFailure(t *testing.T) {
	h := newHarness(t)
	h.catalog.templates["broken-go"] = map[string]string{"README.md": "no go.mod\n"}

	result, err := h.orch.Run(context.Background(), Request{TemplateID: "broken-go", ProjectName: "demo", Language: lang.Go, InstallDependencies: true})
	require.Equal(t, StateFailed, result.State)
	var langErr *lang.LanguageProcessingError
	require.True(t, errors.As(err, &langErr))
	require.Equal(t, []State{StateDirectoryReady, StateAcquired, StateRelocated, StateConfigPatched, StateFailed}, result.Transitions)
	require.Empty(t, h.runner.Calls())
}

func TestRunDirectoryCreationFailure(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, os.WriteFile(filepath.Join(h.base, "demo"), []byte("file"), 0o644))

	result, err := h.orch.Run(context.Background(), Request{TemplateID: "basic-ts", ProjectName: "demo", Language: lang.TypeScript})
	require.Equal(t, StateFailed, result.State)
	var dirErr *DirectoryCreationError
	require.True(t, errors.As(err, &dirErr))
	require.Empty(t, h.catalog.acquired)
}

func TestRunInvalidRequestTouchesNothing(t *testing.T) {
	h := newHarness(t)
	result, err := h.orch.Run(context.Background(), Request{TemplateID: "basic-ts", ProjectName: "demo", Language: "rust"})
	require.Equal(t, StateFailed, result.State)
	var unsupported *lang.UnsupportedLanguageError
	require.True(t, errors.As(err, &unsupported))
	var stepErr *StepError
	require.True(t, errors.As(err, &stepErr))
	require.Equal(t, StepValidate, stepErr.Step)
	require.Equal(t, StateIdle, stepErr.State)
	require.False(t, exists(filepath.Join(h.base, "demo")))
	require.Empty(t, h.catalog.acquired)
}

func TestRunRequiresCollaborators(t *testing.T) {
	req := Request{TemplateID: "basic-ts", ProjectName: "demo", Language: lang.TypeScript}
	tests := []struct {
		name   string
		mutate func(o *Orchestrator)
		want   string
	}{
		{name: "system", mutate: func(o *Orchestrator) { o.System = nil }, want: "system"},
		{name: "acquirer", mutate: func(o *Orchestrator) { o.Acquirer = nil }, want: "acquirer"},
		{name: "stubs", mutate: func(o *Orchestrator) { o.Stubs = nil }, want: "stub fetcher"},
		{name: "processor", mutate: func(o *Orchestrator) { o.Processor = nil }, want: "processor"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			tt.mutate(h.orch)
			result, err := h.orch.Run(context.Background(), req)
			require.ErrorContains(t, err, tt.want)
			require.Equal(t, StateIdle, result.State)
		})
	}
}

func TestRunWithoutNotifier(t *testing.T) {
	h := newHarness(t)
	h.orch.Notifier = nil
	result, err := h.orch.Run(context.Background(), Request{TemplateID: "basic-ts", ProjectName: "demo", Language: lang.TypeScript})
	require.NoError(t, err)
	require.Equal(t, StateDone, result.State)
}
