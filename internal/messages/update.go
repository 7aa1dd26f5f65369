package messages

// Release check messages.
const (
	UpdateCreateRequestErrFmt         = "create latest release request: %w"
	UpdateFetchLatestReleaseErrFmt    = "fetch latest release: %w"
	UpdateFetchLatestReleaseStatusFmt = "fetch latest release: unexpected status %s"
	UpdateDecodeLatestReleaseErrFmt   = "decode latest release: %w"
	UpdateLatestReleaseMissingTag     = "latest release missing tag_name"
	UpdateInvalidLatestReleaseTagFmt  = "invalid latest release tag %q: %w"
	UpdateInvalidCurrentVersionFmt    = "invalid current version %q: %w"
	UpdateInvalidVersionFmt           = "invalid version %q"
	UpdateRetryBudgetExhausted        = "retry budget exhausted"
	UpdateRateLimitedFmt              = "GitHub API rate limit exceeded (status=%s remaining=%s)"

	UpdateAvailableFmt    = "Update available: %s -> %s (%s)"
	UpdateUpToDate        = "lokio is up to date."
	UpdateDevBuildFmt     = "Development build; latest release is %s."
	UpdateCheckFailedFmt  = "Warning: update check failed: %v"
	VersionCheckFlagUsage = "check GitHub for a newer release"
)
