package messages

// Catalog acquisition and stub fetch messages.
const (
	CatalogRunnerRequired      = "catalog command runner is required"
	CatalogTemplateNotFoundFmt = "template %q not found in catalog"
	CatalogAcquireFailedFmt    = "acquire template %q: %v"
	CatalogGitFailedFmt        = "git %s exited with code %d: %s"
	CatalogGitRunFailedFmt     = "run git %s: %w"
	CatalogRemoveMetadataFmt   = "remove clone metadata %s: %w"
	CatalogStubNotFound        = "config stub not found"
	CatalogStubRequestFmt      = "create config stub request: %w"
	CatalogStubFetchFmt        = "fetch %s: %w"
	CatalogStubStatusFmt       = "fetch %s: unexpected status %s"
	CatalogStubReadFmt         = "read %s: %w"
	CatalogStubTooLargeFmt     = "fetch %s: response too large (limit %d bytes)"
	CatalogLocalStubReadFmt    = "read local config stub %s: %w"
)
