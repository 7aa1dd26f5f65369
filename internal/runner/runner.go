// Package runner runs external commands behind a stub-friendly interface.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/any-source/lokio/internal/messages"
)

// Result holds the outcome of a finished command.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Options holds optional parameters for a command.
type Options struct {
	// Dir is the working directory; empty means the caller's.
	Dir string
	// Env is overlaid on the current environment.
	Env map[string]string
	// Stdout and Stderr, when set, receive a live copy of the output in
	// addition to the captured Result fields.
	Stdout io.Writer
	Stderr io.Writer
}

// CommandRunner runs external commands.
// Run returns a Result with ExitCode set whenever the process ran, even when it
// exited non-zero. The error is reserved for failures to run at all (binary
// not found, context canceled, I/O failure).
type CommandRunner interface {
	Run(ctx context.Context, name string, args []string, opts Options) (Result, error)
}

// RealRunner implements CommandRunner with os/exec.
type RealRunner struct{}

// Run executes name with args and captures its output.
func (RealRunner) Run(ctx context.Context, name string, args []string, opts Options) (Result, error) {
	if strings.TrimSpace(name) == "" {
		return Result{}, errors.New(messages.RunnerCommandRequired)
	}
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = teeWriter(&stdout, opts.Stdout)
	cmd.Stderr = teeWriter(&stderr, opts.Stderr)

	if opts.Dir != "" {
		cmd.Dir = opts.Dir
	}
	if len(opts.Env) > 0 {
		cmd.Env = cmd.Environ()
		for k, v := range opts.Env {
			cmd.Env = append(cmd.Env, k+"="+v)
		}
	}

	err := cmd.Run()
	result := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return result, err
	}
	return result, nil
}

func teeWriter(buf *bytes.Buffer, live io.Writer) io.Writer {
	if live == nil {
		return buf
	}
	return io.MultiWriter(buf, live)
}

// Describe renders a command line for error messages.
func Describe(name string, args []string) string {
	if len(args) == 0 {
		return name
	}
	return fmt.Sprintf("%s %s", name, strings.Join(args, " "))
}
