package messages

// Project config file messages.
const (
	ProjectFileNotFound   = "project config not found"
	ProjectFileMissingFmt = "%s: %w"
	ProjectFileReadFmt    = "read %s: %w"
	ProjectFileParseFmt   = "parse %s: %w"
	ProjectFileNotMapping = "project config must be a YAML mapping"
)
