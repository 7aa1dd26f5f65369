package lang

import (
	"context"
	"io"

	"github.com/any-source/lokio/internal/config"
	"github.com/any-source/lokio/internal/runner"
)

// Command is one external installer invocation.
type Command struct {
	Name string
	Args []string
}

// String renders the command line.
func (c Command) String() string {
	return runner.Describe(c.Name, c.Args)
}

// handler is the per-language capability. Implementations carry no state
// beyond the settings the Processor hands them.
type handler interface {
	// rewrite points the manifest identity fields at projectName.
	rewrite(projectDir string, projectName string) error
	// installCommand returns the dependency installer, or false when the
	// language has none.
	installCommand(projectDir string) (Command, bool)
}

// Outcome reports what a Process call did beyond the manifest rewrite.
type Outcome struct {
	// Installer is the installer command line, empty when none ran.
	Installer string
	// InstallErr is the non-fatal installer failure, if any.
	InstallErr error
}

// Processor dispatches post-processing to exactly one language handler.
type Processor struct {
	Runner  runner.CommandRunner
	Install config.InstallConfig
	// Stdout and Stderr receive live installer output when set.
	Stdout io.Writer
	Stderr io.Writer
	// OnInstallStart is called with the installer command line before it runs.
	OnInstallStart func(command string)
}

// NewProcessor returns a Processor using the real command runner.
func NewProcessor(install config.InstallConfig) *Processor {
	return &Processor{Runner: runner.RealRunner{}, Install: install}
}

// Process rewrites the manifest fields of the language in projectDir and, when
// install is true, runs its dependency installer. Installer failures are
// reported in Outcome.InstallErr and never returned as the error.
func (p *Processor) Process(ctx context.Context, tag Tag, projectDir string, projectName string, install bool) (Outcome, error) {
	h, err := p.handler(tag)
	if err != nil {
		return Outcome{}, err
	}
	if err := h.rewrite(projectDir, projectName); err != nil {
		return Outcome{}, &LanguageProcessingError{Tag: tag, Err: err}
	}
	if !install {
		return Outcome{}, nil
	}
	cmd, ok := h.installCommand(projectDir)
	if !ok {
		return Outcome{}, nil
	}
	return Outcome{Installer: cmd.String(), InstallErr: p.runInstaller(ctx, projectDir, cmd)}, nil
}

func (p *Processor) handler(tag Tag) (handler, error) {
	switch tag {
	case TypeScript:
		return typeScript{packageManager: p.Install.NodePackageManager}, nil
	case Go:
		return golang{binary: p.Install.GoBinary}, nil
	case Kotlin:
		return kotlin{}, nil
	}
	return nil, &UnsupportedLanguageError{Tag: string(tag)}
}

func (p *Processor) runInstaller(ctx context.Context, projectDir string, cmd Command) error {
	if p.OnInstallStart != nil {
		p.OnInstallStart(cmd.String())
	}
	r := p.Runner
	if r == nil {
		r = runner.RealRunner{}
	}
	result, err := r.Run(ctx, cmd.Name, cmd.Args, runner.Options{
		Dir:    projectDir,
		Stdout: p.Stdout,
		Stderr: p.Stderr,
	})
	if err != nil {
		return &InstallError{Command: cmd.String(), Err: err}
	}
	if result.ExitCode != 0 {
		return &InstallError{Command: cmd.String(), ExitCode: result.ExitCode}
	}
	return nil
}
