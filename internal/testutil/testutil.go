package testutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/any-source/lokio/internal/runner"
)

// WriteStub writes an executable shell stub that exits successfully.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteStub(t *testing.T, dir string, name string) {
	t.Helper()
	WriteStubWithExit(t, dir, name, 0)
}

// WriteStubWithExit writes an executable shell stub that exits with the provided code.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteStubWithExit(t *testing.T, dir string, name string, exitCode int) {
	t.Helper()
	WriteScript(t, dir, name, fmt.Sprintf("exit %d", exitCode))
}

// WriteScript writes an executable shell script with body as its contents.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteScript(t *testing.T, dir string, name string, body string) {
	t.Helper()
	path := filepath.Join(dir, name)
	content := []byte("#!/bin/sh\n" + body + "\n")
	if err := os.WriteFile(path, content, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
}

// Call records one invocation seen by FakeRunner.
type Call struct {
	Name string
	Args []string
	Dir  string
}

// FakeRunner is a scripted runner.CommandRunner.
// Handle decides the outcome of every call; a nil Handle succeeds with exit 0.
type FakeRunner struct {
	Handle func(call Call) (runner.Result, error)

	mu    sync.Mutex
	calls []Call
}

// Run records the call and delegates to Handle.
func (f *FakeRunner) Run(_ context.Context, name string, args []string, opts runner.Options) (runner.Result, error) {
	call := Call{Name: name, Args: append([]string(nil), args...), Dir: opts.Dir}
	f.mu.Lock()
	f.calls = append(f.calls, call)
	f.mu.Unlock()
	if f.Handle == nil {
		return runner.Result{}, nil
	}
	return f.Handle(call)
}

// Calls returns a copy of the recorded calls.
func (f *FakeRunner) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Call(nil), f.calls...)
}

// WriteFiles creates each relative path under root with its content, creating parents.
func WriteFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
}
