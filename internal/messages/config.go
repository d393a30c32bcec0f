package messages

// Config messages for configuration loading and validation.
const (
	// ConfigMissingFileFmt formats missing config file errors.
	ConfigMissingFileFmt        = "missing config file %s: %w"
	ConfigFailedReadTemplateFmt = "failed to read config template: %w"
	ConfigInvalidConfigFmt      = "invalid config %s: %w"
	ConfigRootRequired          = "config root path is required"

	ConfigUnrecognizedKeysFmt = "%s contains unrecognized keys: %v;"
	ConfigValidationGuidance  = "edit .release-layer/config.toml and re-run"

	ConfigReleaseStrategyUnknownFmt    = "%s: release.strategy %q is not a registered strategy"
	ConfigReleaseBranchRequiredFmt     = "%s: release.branch is required"
	ConfigChangelogPathRequiredFmt     = "%s: release.changelog-path is required unless release.skip-changelog is true"
	ConfigVersioningStrategyInvalidFmt = "%s: versioning.strategy must be one of conventional, snapshot"
	ConfigLoggingLevelInvalidFmt       = "%s: logging.level must be one of debug, info, warn, error"
	ConfigExtraFileInvalidFmt          = "%s: release.extra-files[%d] must be a path string or a table with a path key"
	ConfigExtraFilePathRequiredFmt     = "%s: release.extra-files[%d] is missing a path"

	ConfigExpandPathFmt = "expand path %s: %w"

	// ConfigSourceInline labels configs that did not come from a file.
	ConfigSourceInline = "config"
)
