package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/any-source/lokio/internal/catalog"
	"github.com/any-source/lokio/internal/config"
	"github.com/any-source/lokio/internal/lang"
	"github.com/any-source/lokio/internal/messages"
	"github.com/any-source/lokio/internal/prompt"
	"github.com/any-source/lokio/internal/provision"
)

var newOrchestrator = buildOrchestrator

type createOptions struct {
	template string
	language string
	install  bool
	verbose  bool
}

func newCreateCmd(root *rootFlags) *cobra.Command {
	opts := &createOptions{}
	cmd := &cobra.Command{
		Use:     messages.CreateUse,
		Aliases: []string{"c"},
		Short:   messages.CreateShort,
		Long:    messages.CreateLong,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, root, opts, args)
		},
	}
	cmd.Flags().StringVarP(&opts.template, "template", "t", "", messages.CreateFlagTemplate)
	cmd.Flags().StringVarP(&opts.language, "lang", "l", "", messages.CreateFlagLanguage)
	cmd.Flags().BoolVarP(&opts.install, "install", "i", false, messages.CreateFlagInstall)
	cmd.Flags().BoolVar(&opts.verbose, "verbose", false, messages.CreateFlagVerbose)
	_ = cmd.RegisterFlagCompletionFunc("lang", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		tags := make([]string, 0, len(lang.Supported()))
		for _, tag := range lang.Supported() {
			tags = append(tags, tag.String())
		}
		return tags, cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}

func runCreate(cmd *cobra.Command, root *rootFlags, opts *createOptions, args []string) error {
	cfg, err := root.load()
	if err != nil {
		return err
	}

	answers := prompt.CreateAnswers{
		TemplateID: opts.template,
		Language:   opts.language,
		Install:    opts.install,
	}
	if len(args) > 0 {
		answers.ProjectName = args[0]
	}
	if err := completeAnswers(cmd, &answers); err != nil {
		return err
	}

	tag, err := lang.Parse(answers.Language)
	if err != nil {
		return err
	}
	baseDir, err := getwd()
	if err != nil {
		return fmt.Errorf(messages.InfoResolveCwdErrFmt, err)
	}

	out := cmd.OutOrStdout()
	orch := newOrchestrator(cfg, out, cmd.ErrOrStderr(), opts.verbose || cfg.Output.Verbose, baseDir)
	result, err := orch.Run(cmd.Context(), provision.Request{
		TemplateID:          answers.TemplateID,
		ProjectName:         answers.ProjectName,
		Language:            tag,
		InstallDependencies: answers.Install,
	})
	if err != nil {
		// The orchestrator already reported the failure and its cause.
		return &SilentExitError{Code: 1}
	}
	_, _ = fmt.Fprintf(out, messages.CreateNextStepsFmt, answers.ProjectName)
	if !answers.Install || hasInstallWarning(result) {
		if hint := installHint(tag, result.ProjectDir, cfg.Install); hint != "" {
			_, _ = fmt.Fprintf(out, messages.CreateInstallHintFmt, hint)
		}
	}
	return nil
}

// completeAnswers prompts for missing values on a terminal and reports the
// first missing value otherwise.
func completeAnswers(cmd *cobra.Command, answers *prompt.CreateAnswers) error {
	missing := missingFlag(*answers)
	if missing == "" {
		return nil
	}
	if !isInteractive() {
		return fmt.Errorf(messages.CreateMissingValueFmt, missing)
	}
	answers.AskInstall = !cmd.Flags().Changed("install")
	return prompt.FillCreate(newUI(), answers, provision.ValidateProjectName, provision.ValidateTemplateID)
}

func missingFlag(answers prompt.CreateAnswers) string {
	switch {
	case answers.ProjectName == "":
		return messages.CreateProjectNameLabel
	case answers.TemplateID == "":
		return messages.CreateTemplateLabel
	case answers.Language == "":
		return messages.CreateLanguageLabel
	}
	return ""
}

func hasInstallWarning(result provision.Result) bool {
	for _, w := range result.Warnings {
		if w.Kind == provision.WarningDependencyInstall {
			return true
		}
	}
	return false
}

// installHint names the installer a user can run by hand.
func installHint(tag lang.Tag, projectDir string, install config.InstallConfig) string {
	switch tag {
	case lang.TypeScript:
		return lang.DetectPackageManager(projectDir, install.NodePackageManager) + " install"
	case lang.Go:
		return install.GoBinary + " mod tidy"
	}
	return ""
}

// buildOrchestrator wires the real catalog, filesystem, and installers.
func buildOrchestrator(cfg *config.Config, stdout io.Writer, stderr io.Writer, verbose bool, baseDir string) *provision.Orchestrator {
	cat := catalog.FromConfig(cfg.Catalog)
	notifier := provision.NewNotifier(stdout, stderr, cfg.ColorEnabled() && isTerminalWriter(stdout), verbose)

	var stubs provision.StubFetcher = catalog.NewHTTPStubFetcher(cat, cfg.Catalog.Timeout())
	if cfg.Catalog.StubSource == config.StubSourceLocal {
		stubs = catalog.LocalStubFetcher{ConfigFile: cat.ConfigFile}
	}

	processor := lang.NewProcessor(cfg.Install)
	processor.OnInstallStart = notifier.InstallStart
	if verbose {
		processor.Stdout = stdout
		processor.Stderr = stderr
	}

	return &provision.Orchestrator{
		Catalog:   cat,
		System:    provision.RealSystem{},
		Acquirer:  catalog.NewGitAcquirer(cat, cfg.Install.GitBinary),
		Stubs:     stubs,
		Processor: processor,
		Notifier:  notifier,
		BaseDir:   baseDir,
	}
}
