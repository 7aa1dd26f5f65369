// Package provision runs the template-provisioning pipeline: create the project
// directory, acquire the template subtree, relocate it to the project root,
// patch the config stub, and run the language post-processing.
package provision

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/any-source/lokio/internal/catalog"
	"github.com/any-source/lokio/internal/lang"
	"github.com/any-source/lokio/internal/messages"
)

// Acquirer materializes one template subtree under a destination directory.
type Acquirer interface {
	Acquire(ctx context.Context, templateID string, dest string) error
}

// LanguageProcessor runs the post-processing for one language tag.
type LanguageProcessor interface {
	Process(ctx context.Context, tag lang.Tag, projectDir string, projectName string, install bool) (lang.Outcome, error)
}

// Orchestrator sequences the pipeline steps. It is the only entry point
// callers use; one Run provisions one project.
type Orchestrator struct {
	Catalog   catalog.Catalog
	System    System
	Acquirer  Acquirer
	Stubs     StubFetcher
	Processor LanguageProcessor
	Notifier  *Notifier
	// BaseDir is where project directories are created; empty means the
	// working directory.
	BaseDir string
}

type run struct {
	o      *Orchestrator
	notify *Notifier
	req    Request
	result Result
}

// Run provisions req and returns how far it got. On failure the returned
// error is a *StepError wrapping the step's typed error, the result state is
// StateFailed, and the project directory is left as the pipeline left it.
func (o *Orchestrator) Run(ctx context.Context, req Request) (Result, error) {
	if err := o.validate(); err != nil {
		return Result{State: StateIdle}, err
	}
	r := &run{o: o, notify: o.Notifier, req: req}
	if r.notify == nil {
		r.notify = NewNotifier(io.Discard, io.Discard, false, false)
	}
	r.result.State = StateIdle
	r.result.ProjectDir = filepath.Join(o.BaseDir, req.ProjectName)

	if err := req.Validate(); err != nil {
		return r.fail(StepValidate, err)
	}
	r.notify.Start()

	steps := []struct {
		step Step
		next State
		run  func(ctx context.Context) error
	}{
		{step: StepEnsureDir, next: StateDirectoryReady, run: r.ensure},
		{step: StepAcquire, next: StateAcquired, run: r.acquire},
		{step: StepRelocate, next: StateRelocated, run: r.relocate},
		{step: StepPatchConfig, next: StateConfigPatched, run: r.patchConfig},
		{step: StepProcessLang, next: StateLanguageProcessed, run: r.processLanguage},
	}
	for _, s := range steps {
		if err := s.run(ctx); err != nil {
			return r.fail(s.step, err)
		}
		r.enter(s.next)
	}
	r.enter(StateDone)
	r.notify.Progress(messages.ProvisionSuccessFmt, req.ProjectName)
	return r.result, nil
}

func (o *Orchestrator) validate() error {
	switch {
	case o.System == nil:
		return errors.New(messages.ProvisionSystemRequired)
	case o.Acquirer == nil:
		return errors.New(messages.ProvisionAcquirerRequired)
	case o.Stubs == nil:
		return errors.New(messages.ProvisionStubFetcherRequired)
	case o.Processor == nil:
		return errors.New(messages.ProvisionProcessorRequired)
	}
	return nil
}

func (r *run) enter(state State) {
	r.result.State = state
	r.result.Transitions = append(r.result.Transitions, state)
}

func (r *run) fail(step Step, err error) (Result, error) {
	last := r.result.State
	r.enter(StateFailed)
	stepErr := &StepError{Step: step, State: last, Err: err}
	r.notify.Failure(stepErr)
	return r.result, stepErr
}

func (r *run) ensure(context.Context) error {
	if err := (Ensurer{System: r.o.System}).Ensure(r.result.ProjectDir); err != nil {
		return err
	}
	r.notify.Progress(messages.ProvisionDirectoryReady, r.result.ProjectDir)
	return nil
}

func (r *run) acquire(ctx context.Context) error {
	if err := r.o.Acquirer.Acquire(ctx, r.req.TemplateID, r.result.ProjectDir); err != nil {
		return err
	}
	r.notify.Progress(messages.ProvisionTemplateCopied)
	return nil
}

func (r *run) relocate(context.Context) error {
	relocator := Relocator{System: r.o.System, Catalog: r.o.Catalog}
	if err := relocator.Relocate(r.result.ProjectDir, r.req.TemplateID); err != nil {
		return err
	}
	r.notify.Progress(messages.ProvisionTreeRelocated)
	return nil
}

func (r *run) patchConfig(ctx context.Context) error {
	patcher := ConfigPatcher{System: r.o.System, Stubs: r.o.Stubs, ConfigFile: r.configFile()}
	patched, err := patcher.Patch(ctx, r.req.TemplateID, r.req.ProjectName, r.result.ProjectDir)
	if err != nil {
		return err
	}
	if !patched.Written() {
		r.result.Warnings = append(r.result.Warnings, Warning{Kind: WarningConfigStubAbsent})
		r.notify.Warn(messages.ProvisionConfigNotFound)
		return nil
	}
	r.result.ConfigWritten = true
	r.notify.Progress(messages.ProvisionConfigCopied)
	r.notify.Diff(patched.Diff)
	return nil
}

func (r *run) processLanguage(ctx context.Context) error {
	tag, err := lang.Parse(string(r.req.Language))
	if err != nil {
		return err
	}
	outcome, err := r.o.Processor.Process(ctx, tag, r.result.ProjectDir, r.req.ProjectName, r.req.InstallDependencies)
	if err != nil {
		return err
	}
	if outcome.InstallErr != nil {
		r.result.Warnings = append(r.result.Warnings, Warning{Kind: WarningDependencyInstall, Err: outcome.InstallErr})
		r.notify.Warn(fmt.Sprintf(messages.ProvisionInstallFailedFmt, outcome.InstallErr))
	}
	r.notify.Progress(messages.ProvisionLanguageDoneFmt, tag)
	return nil
}

func (r *run) configFile() string {
	if r.o.Catalog.ConfigFile != "" {
		return r.o.Catalog.ConfigFile
	}
	return catalog.Default().ConfigFile
}
