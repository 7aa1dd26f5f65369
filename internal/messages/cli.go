package messages

// CLI messages for user-facing commands and prompts.
const (
	// RootUse is the CLI command name.
	RootUse = "lokio"
	// RootShort is the short description for the root command.
	RootShort       = "Structuring Code, One Command at a Time"
	RootLong        = "Lokio makes the development process faster and more structured by provisioning new projects from the shared template catalog."
	RootVersionFlag = "Print version and exit"
	RootFlagConfig  = "Path to the lokio config file (default ~/.config/lokio/config.toml)"
	RootFlagNoColor = "Disable colored output"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"
	VersionUse       = "version"
	VersionShort     = "Output the current version"

	// CreateUse is the create command usage.
	CreateUse              = "create [project-name]"
	CreateShort            = "Create a new project"
	CreateLong             = "Create a new project directory from a catalog template, rewrite its .lokio.yaml, and run language-specific setup."
	CreateFlagTemplate     = "Template id in the catalog (for example basic-ts)"
	CreateFlagLanguage     = "Template language: ts, go, or kt"
	CreateFlagInstall      = "Install dependencies after scaffolding"
	CreateFlagVerbose      = "Show the config diff and installer output"
	CreateMissingValueFmt  = "missing %s; pass it on the command line or run in an interactive terminal"
	CreateNextStepsFmt     = "\nNext steps:\n  cd %s\n"
	CreateInstallHintFmt   = "  %s\n"
	CreatePromptCancelled  = "Operation cancelled."
	CreateProjectNameLabel = "project name"
	CreateTemplateLabel    = "template (--template)"
	CreateLanguageLabel    = "language (--lang)"

	// InfoUse is the info command name.
	InfoUse              = "info"
	InfoShort            = "Show information about the project"
	InfoHeaderFmt        = "Project config %s\n"
	InfoFieldFmt         = "  %-*s %s\n"
	InfoEmpty            = "  (no fields)"
	InfoNoConfigFmt      = "no %s found in %s; run 'lokio create' to provision a project"
	InfoDirFlag          = "Project directory to inspect (default current directory)"
	InfoResolveCwdErrFmt = "resolve working directory: %w"

	// CompletionUse is the completion command usage.
	CompletionUse                 = "completion [bash|zsh|fish]"
	CompletionShort               = "Generate shell completion scripts"
	CompletionUnsupportedShellFmt = "unsupported shell %q (supported: bash, zsh, fish)"

	// PromptRequiresTerminal indicates an interactive prompt ran without a terminal.
	PromptRequiresTerminal = "interactive prompts require a terminal"
)
