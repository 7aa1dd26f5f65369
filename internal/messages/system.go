package messages

// System messages for internal operations.
const (
	// FsutilCreateTempFmt formats temp file creation errors for atomic writes.
	FsutilCreateTempFmt = "create temp file for %s: %w"
	FsutilWriteTempFmt  = "write temp file for %s: %w"
	FsutilSyncTempFmt   = "sync temp file for %s: %w"
	FsutilCloseTempFmt  = "close temp file for %s: %w"
	FsutilChmodTempFmt  = "chmod temp file for %s: %w"
	FsutilRenameTempFmt = "replace %s: %w"

	// RunnerCommandRequired indicates a command name is required.
	RunnerCommandRequired = "command name is required"
)
