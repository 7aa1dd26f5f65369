package messages

// Language processing messages.
const (
	LangUnsupportedFmt           = "unsupported language %q (supported: %s)"
	LangProcessingFailedFmt      = "%s post-processing failed: %v"
	LangManifestMissingFmt       = "manifest %s not found: %w"
	LangReadManifestFmt          = "read %s: %w"
	LangWriteManifestFmt         = "write %s: %w"
	LangPackageJSONInvalidFmt    = "invalid package.json %s: %w"
	LangPackageJSONSyntax        = "malformed JSON"
	LangPackageJSONNotObject     = "package.json must contain a JSON object"
	LangPackageJSONNameNotString = "package.json top-level \"name\" must be a string"
	LangGoModParseFmt            = "parse %s: %w"
	LangGoModNoModule            = "go.mod has no module directive"
	LangGoModuleInvalidFmt       = "project name %q is not a valid module path: %w"
	LangGoModFormatFmt           = "format %s: %w"
	LangGoSourceWalkFmt          = "walk go sources: %w"
	LangGoSourceParseFmt         = "parse %s: %w"
	LangGoSourceFormatFmt        = "format %s: %w"
	LangInstallerFailedFmt       = "%s exited with code %d"
	LangInstallerRunFmt          = "run %s: %v"
)
