package messages

// Config messages for version configuration loading.
const (
	// ConfigMissingFileFmt formats missing config file errors.
	ConfigMissingFileFmt    = "missing config file %s: %w"
	ConfigInvalidConfigFmt  = "invalid config %s: %w"
	ConfigResolveHomeDirFmt = "resolve home dir: %w"
)
