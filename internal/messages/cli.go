package messages

// CLI messages for user-facing commands and flags.
const (
	// RootUse is the CLI command name.
	RootUse = "rl"
	// RootShort is the short description for the root command.
	RootShort               = "Release Layer CLI"
	RootMissingReleaseLayer = "release layer isn't initialized in this repository (missing .release-layer); run 'rl init' to initialize"

	// VersionTemplate renders the --version output.
	VersionTemplate  = "{{.Version}}\n"
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"

	// PlanUse is the plan command name.
	PlanUse   = "plan"
	PlanShort = "Compute the next release and the file edits it requires"
	PlanLong  = "Compute the next version for every tracked artifact from the commit history and print the ordered file-edit plan."

	PlanFlagCommits   = "Path to a JSON file of structured commits since the last release"
	PlanFlagRoot      = "Repository root (defaults to the nearest ancestor containing .release-layer)"
	PlanFlagDiff      = "Show unified diff previews for each planned edit"
	PlanFlagDiffLines = "Maximum diff lines shown per file"

	PlanCommitsRequired = "a commits file is required; pass --commits <path>"
	PlanHeaderFmt       = "release %s%s\n"
	PlanSnapshotSuffix  = " (snapshot)"
	PlanArtifactFmt     = "  %s: %s -> %s\n"
	PlanArtifactHeldFmt = "  %s: no version recorded; held\n"
	PlanUpdateFmt       = "  edit %s (%s)\n"
	PlanUpdateCreateFmt = "  edit %s (%s, created if missing)\n"
	PlanUpdatesHeader   = "planned edits:"

	// ApplyUse is the apply command name.
	ApplyUse   = "apply"
	ApplyShort = "Apply a computed release plan to the working tree"

	ApplyFlagDryRun = "Compute and print edits without writing any file"
	ApplyDryRunNote = "dry run; no files were written"
	ApplyWroteFmt   = "wrote %s\n"
	ApplyCreatedFmt = "created %s\n"
	ApplySkippedFmt = "skipped %s (no changes)\n"

	// InitUse is the init command name.
	InitUse   = "init"
	InitShort = "Initialize Release Layer in this repository"

	InitFlagArtifact = "Artifact key to seed in the versions manifest (repeatable)"
	InitAlreadyFmt   = "%s already exists; refusing to overwrite"
	InitWroteFmt     = "wrote %s\n"
	InitKeptFmt      = "kept existing %s\n"
)
