package messages

// Install workflow messages.
const (
	InstallSystemRequired    = "install system is required"
	InstallRootRequired      = "install root is required"
	InstallRootNotAbsFmt     = "install root %q must be an absolute path"
	InstallSourceDirRequired = "source directory is required"
	InstallTargetsRequired   = "at least one target is required"
	InstallTargetInvalidFmt  = "invalid target name %q"
	InstallTargetDupFmt      = "duplicate target name %q"
	InstallSelfTestFlagEmpty = "self-test flag is required"
	InstallBackupSuffixEmpty = "backup suffix is required"
	InstallResolveSourceFmt  = "resolve source directory %s: %w"

	InstallPrivilegeRequiredFmt = "%w: cannot write to %s (%v); re-run with sudo: sudo %s"
	InstallRootMissingFmt       = "%w: %s does not exist; create it before installing"
	InstallSourcesMissingFmt    = "%w in %s: %s"
	InstallSourceStatFmt        = "check source %s: %w"
	InstallSelfTestExitFmt      = "%w: %s %s exited with status %d"
	InstallSelfTestStartFmt     = "%w: run %s %s: %w"
	InstallBackupFailedFmt      = "back up %s to %s: %w"
	InstallCopyFailedFmt        = "copy %s to %s: %w"
	InstallChmodFailedFmt       = "set executable %s: %w"
	InstallStatDestFmt          = "check destination %s: %w"
	InstallDestNotFileFmt       = "destination %s exists and is not a regular file"
	InstallVerifyFailedFmt      = "%w: %s"

	InstallCopyCreateTempFmt = "create temp file: %w"
	InstallCopyOpenSourceFmt = "open %s: %w"
	InstallCopyWriteFmt      = "write temp file: %w"
	InstallCopySyncFmt       = "sync temp file: %w"
	InstallCopyCloseFmt      = "close temp file: %w"
	InstallCopyRenameFmt     = "move temp file into place: %w"

	InstallSelfTestPassedFmt = "%s self-test passed"
	InstallBackedUpFmt       = "Backed up %s to %s\n"
	InstallInstalledFmt      = "Installed %s to %s"
	InstallSuccessSummary    = "Installation complete."

	InstallStageHeaderFmt = "==> %s\n"
	InstallStageSelfTest  = "Running self-tests"
	InstallStageInstall   = "Installing to %s"
	InstallStageVerify    = "Verifying PATH"

	InstallUsageHeader = "Usage examples:"
	InstallUsageLines  = `  latex-split thesis.tex           split thesis.tex into per-section files
  latex-merge thesis.tex           merge the split files back into thesis.tex
  latex-split --help               show latex-split options
  latex-merge --help               show latex-merge options`
)

// Verification results.
const (
	VerifyStatusOKLabel   = "[OK]"
	VerifyStatusWarnLabel = "[WARN]"
	VerifyStatusFailLabel = "[FAIL]"
	VerifyResultLineFmt   = "%s %s: %s\n"

	VerifyRecommendationPrefix = "  -> "
	VerifyRecommendationIndent = "     "

	VerifyFoundFmt          = "available at %s"
	VerifyShadowedFmt       = "resolves to %s instead of %s"
	VerifyShadowedRecommend = "Another copy appears earlier on PATH; remove it or move %s ahead of it."
	VerifyNotFoundFmt       = "not found on PATH (installed at %s)"
	VerifyNotFoundRecommend = "Add %s to PATH, e.g. export PATH=\"%s:$PATH\"."
)
