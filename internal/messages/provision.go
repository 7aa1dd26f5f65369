package messages

// Provisioning pipeline notices and errors.
const (
	ProvisionStartSetup       = "Setting up your project..."
	ProvisionDirectoryReady   = "Project directory ready: %s"
	ProvisionTemplateCopied   = "Template downloaded successfully"
	ProvisionTreeRelocated    = "Template files moved into place"
	ProvisionConfigCopied     = "Configuration file copied and updated successfully"
	ProvisionConfigNotFound   = "Configuration file not found in template, skipping"
	ProvisionLanguageDoneFmt  = "Language setup complete (%s)"
	ProvisionInstallStartFmt  = "Installing dependencies with %s..."
	ProvisionInstallFailedFmt = "Dependency installation failed: %v"
	ProvisionSuccessFmt       = "Project %s created successfully!"
	ProvisionFailure          = "Failed to create project."
	ProvisionConfigDiffHeader = "Config changes:"
	ProvisionWarningFmt       = "Warning: %s"

	ProvisionSystemRequired        = "provision system is required"
	ProvisionAcquirerRequired      = "template acquirer is required"
	ProvisionStubFetcherRequired   = "config stub fetcher is required"
	ProvisionProcessorRequired     = "language processor is required"
	ProvisionTemplateIDRequired    = "template id is required"
	ProvisionTemplateIDInvalidFmt  = "invalid template id %q: must be a relative slash-separated path of letters, digits, '.', '_' or '-' without '.' or '..' segments"
	ProvisionProjectNameRequired   = "project name is required"
	ProvisionProjectNameInvalidFmt = "invalid project name %q: use letters, digits, '.', '_' or '-', starting with a letter or digit and not ending with '.'"

	ProvisionStepErrFmt           = "%s failed: %v"
	ProvisionCreateDirFailedFmt   = "failed to create directory %s: %v"
	ProvisionRelocateFailedFmt    = "relocate template: %v"
	ProvisionStagingMissingFmt    = "template staging path %s is missing: %w"
	ProvisionStagingRenameFmt     = "stage %s: %w"
	ProvisionReadStagingFmt       = "read %s: %w"
	ProvisionMoveEntryFmt         = "move %s to %s: %w"
	ProvisionEntryExistsFmt       = "cannot move %s: %s already exists"
	ProvisionRemoveScaffoldingFmt = "remove %s: %w"
	ProvisionStagingNotDirFmt     = "template path %s is not a directory"
	ProvisionConfigPatchFailedFmt = "config copy failed: %v"
	ProvisionFetchStubFmt         = "fetch config stub: %w"
	ProvisionWriteConfigFmt       = "write %s: %w"
)
