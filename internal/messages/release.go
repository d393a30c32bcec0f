package messages

// Release messages for plan computation, the versions manifest, and hosting.
const (
	// HostingFileNotFound is the sentinel text for a missing file on the backend.
	HostingFileNotFound = "file not found"

	// HostingRequiredFileMissingFmt formats the addressed missing-file error:
	// path, strategy name, repository identifier.
	HostingRequiredFileMissingFmt = "required file %s not found for strategy %s in repository %s"

	HostingRootRequired    = "hosting root path is required"
	HostingReadFileFmt     = "read %s: %w"
	HostingListFilesFmt    = "list %s under %s: %w"

	// ManifestInvalidLineFmt formats versions manifest parse errors (line number, content).
	ManifestInvalidLineFmt    = "versions manifest line %d: malformed entry %q"
	ManifestInvalidVersionFmt = "versions manifest line %d: invalid version %q for %s: %w"
	ManifestDuplicateKeyFmt   = "versions manifest line %d: duplicate artifact %s"

	ReleaseHostRequired       = "release strategy requires a hosting backend"
	ReleaseVersioningRequired = "release strategy requires a versioning strategy"
	ReleaseUnknownStrategyFmt = "unknown release strategy %q"
	ReleaseEmptyManifest      = "versions manifest has no artifacts to release"
	ReleaseBumpFailedFmt      = "bump %s from %s: %w"

	// ReleaseMissingVersionWarn is logged when a manifest entry has no resolvable
	// current version; the artifact is skipped for the cycle.
	ReleaseMissingVersionWarn = "no current version for artifact; skipping this cycle"

	// ApplyMissingTargetFmt formats errors for edits whose target does not exist
	// and is not allowed to be created.
	ApplyMissingTargetFmt = "edit target %s does not exist and may not be created"
	ApplyUpdaterFailedFmt = "updater %s on %s: %w"
	ApplySystemRequired   = "apply system is required"

	// ChangelogEntryVersionRequired guards changelog rendering without a version.
	ChangelogEntryVersionRequired = "changelog entry requires a release version"
)
