package testutil

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/any-source/lokio/internal/runner"
)

func TestWriteStubCreatesExecutableThatSucceeds(t *testing.T) {
	dir := t.TempDir()
	stubPath := filepath.Join(dir, "ok-stub")
	WriteStub(t, dir, "ok-stub")

	info, err := os.Stat(stubPath)
	if err != nil {
		t.Fatalf("stat stub: %v", err)
	}
	if info.Mode().Perm() != 0o755 {
		t.Fatalf("expected mode 0755, got %#o", info.Mode().Perm())
	}

	cmd := exec.Command(stubPath)
	if err := cmd.Run(); err != nil {
		t.Fatalf("expected success exit, got %v", err)
	}
}

func TestWriteStubWithExitCreatesExecutableWithRequestedExitCode(t *testing.T) {
	dir := t.TempDir()
	stubPath := filepath.Join(dir, "exit-stub")
	WriteStubWithExit(t, dir, "exit-stub", 7)

	cmd := exec.Command(stubPath)
	err := cmd.Run()
	if err == nil {
		t.Fatal("expected non-zero exit status")
	}
	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		t.Fatalf("expected *exec.ExitError, got %T", err)
	}
	if exitErr.ExitCode() != 7 {
		t.Fatalf("expected exit code 7, got %d", exitErr.ExitCode())
	}
}

func TestWriteScriptRunsBody(t *testing.T) {
	dir := t.TempDir()
	WriteScript(t, dir, "echo-stub", "echo scaffolded")

	out, err := exec.Command(filepath.Join(dir, "echo-stub")).Output()
	if err != nil {
		t.Fatalf("run script: %v", err)
	}
	if string(out) != "scaffolded\n" {
		t.Fatalf("unexpected output %q", string(out))
	}
}

func TestFakeRunnerRecordsCalls(t *testing.T) {
	fake := &FakeRunner{Handle: func(call Call) (runner.Result, error) {
		if call.Name == "git" {
			return runner.Result{ExitCode: 2, Stderr: "fatal"}, nil
		}
		return runner.Result{}, errors.New("not found")
	}}

	result, err := fake.Run(context.Background(), "git", []string{"clone"}, runner.Options{Dir: "/tmp/x"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ExitCode != 2 {
		t.Fatalf("expected exit 2, got %d", result.ExitCode)
	}
	if _, err := fake.Run(context.Background(), "npm", nil, runner.Options{}); err == nil {
		t.Fatal("expected handler error")
	}

	calls := fake.Calls()
	if len(calls) != 2 {
		t.Fatalf("expected 2 calls, got %d", len(calls))
	}
	if calls[0].Dir != "/tmp/x" || calls[0].Args[0] != "clone" {
		t.Fatalf("unexpected first call %+v", calls[0])
	}
}

func TestFakeRunnerNilHandleSucceeds(t *testing.T) {
	fake := &FakeRunner{}
	result, err := fake.Run(context.Background(), "go", []string{"mod", "tidy"}, runner.Options{})
	if err != nil || result.ExitCode != 0 {
		t.Fatalf("expected success, got %+v, %v", result, err)
	}
}

func TestWriteFilesCreatesParents(t *testing.T) {
	root := t.TempDir()
	WriteFiles(t, root, map[string]string{"code/basic-ts/package.json": "{}"})
	data, err := os.ReadFile(filepath.Join(root, "code", "basic-ts", "package.json"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "{}" {
		t.Fatalf("unexpected content %q", string(data))
	}
}
