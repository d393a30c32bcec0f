package messages

// Doctor messages for repository health checks.
const (
	DoctorUse   = "doctor"
	DoctorShort = "Check the repository's release configuration health"

	DoctorHealthCheckFmt = "Checking release layer health in %s...\n"

	DoctorCheckNameStructure = "Structure"
	DoctorCheckNameConfig    = "Config"
	DoctorCheckNameManifest  = "Manifest"
	DoctorCheckNameChangelog = "Changelog"

	DoctorMissingRequiredDirFmt       = "missing required directory: %s"
	DoctorMissingRequiredDirRecommend = "Run 'rl init' to initialize the repository."
	DoctorPathNotDirFmt               = "%s exists but is not a directory"
	DoctorDirExistsFmt                = "%s exists"

	DoctorConfigLoadFailedFmt = "config failed to load: %v"
	DoctorConfigLoadRecommend = "Fix .release-layer/config.toml and re-run."
	DoctorConfigOKFmt         = "config loaded (strategy %s, branch %s)"

	DoctorManifestMissingFmt       = "versions manifest not found at %s"
	DoctorManifestMissingRecommend = "Run 'rl init --artifact <key>' to seed the manifest."
	DoctorManifestInvalidFmt       = "versions manifest is invalid: %v"
	DoctorManifestEmpty            = "versions manifest tracks no artifacts"
	DoctorManifestOKFmt            = "tracking %d artifact(s)"
	DoctorArtifactHeldFmt          = "artifact %s has no recorded version and will be held"
	DoctorArtifactHeldRecommend    = "Record a version in versions.txt so the artifact participates in releases."
	DoctorSnapshotPendingFmt       = "artifact %s carries a prerelease qualifier; the next release will be a snapshot"

	DoctorChangelogDisabled    = "changelog updates are disabled"
	DoctorChangelogMissingFmt  = "changelog %s does not exist yet; it will be created on the next release"
	DoctorChangelogOKFmt       = "changelog present at %s"

	DoctorFailureSummary = "Some checks failed. Please address the items above."
	DoctorFailureError   = "doctor found problems"
	DoctorSuccessSummary = "All checks passed."

	DoctorStatusOKLabel   = "[OK]  "
	DoctorStatusWarnLabel = "[WARN]"
	DoctorStatusFailLabel = "[FAIL]"

	DoctorResultLineFmt        = "%s %-10s %s\n"
	DoctorRecommendationPrefix = "       hint: "
)
