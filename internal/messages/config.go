package messages

// Config messages for user configuration loading and validation.
const (
	// ConfigReadFileFmt formats config file read errors.
	ConfigReadFileFmt                 = "failed to read config %s: %w"
	ConfigInvalidConfigFmt            = "invalid config %s: %w"
	ConfigResolvePathFmt              = "resolve config path: %w"
	ConfigCatalogRepositoryRequired   = "catalog.repository is required"
	ConfigCatalogRefRequired          = "catalog.ref is required"
	ConfigCatalogRawBaseRequired      = "catalog.raw_base_url is required"
	ConfigCatalogPathPrefixInvalidFmt = "catalog.path_prefix %q must be a relative path"
	ConfigCatalogConfigFileRequired   = "catalog.config_file is required"
	ConfigStubSourceInvalidFmt        = "catalog.stub_source must be one of remote, local (got %q)"
	ConfigHTTPTimeoutInvalidFmt       = "catalog.http_timeout %q is not a valid duration: %w"
	ConfigPackageManagerInvalidFmt    = "install.node_package_manager must be one of auto, npm, pnpm, yarn, bun (got %q)"
	ConfigBinaryRequiredFmt           = "install.%s is required"
)
