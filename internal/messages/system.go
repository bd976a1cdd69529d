package messages

// System messages for internal operations.
const (
	// FetchURLRequired indicates the fetch URL is missing.
	FetchURLRequired         = "fetch url is required"
	FetchRequestFmt          = "build request for %s: %w"
	FetchFailedFmt           = "fetch %s: %w"
	FetchUnexpectedStatusFmt = "fetch %s: unexpected status %s"
	FetchReadBodyFmt         = "read %s: %w"

	// RunnerNameRequired indicates the command name is missing.
	RunnerNameRequired = "command name is required"
	RunnerStartFmt     = "run %s: %w"
	RunnerExitFmt      = "command %s failed: %w"

	// ProvisionSystemRequired indicates the provision system is missing.
	ProvisionSystemRequired    = "provision system is required"
	ProvisionInstallFnRequired = "install callback is required"
	ProvisionCheckTargetFmt    = "check install target %s: %w"
	ProvisionCreateTempDirFmt  = "create temp dir %s: %w"
	ProvisionActivateFmt       = "activate %s: %w"
	ProvisionTargetMissingFmt  = "install target %s missing after install attempt"

	ProvisionExtractRuntimeFmt = "extract virtualenv archive into %s: %w"
	ProvisionCreateVenvFmt     = "create virtualenv at %s: %w"
	ProvisionInstallToolFmt    = "install ansible %s: %w"
	ProvisionRelocateFmt       = "make virtualenv at %s relocatable: %w"
	ProvisionVerifyToolFmt     = "verify ansible install: %w"

	ProvisionCreatingTempDirFmt    = "Creating %s...\n"
	ProvisionDownloadingRuntimeFmt = "Downloading virtualenv %s...\n"
	ProvisionExtractingRuntimeFmt  = "Extracting virtualenv into %s...\n"
	ProvisionCreatingVenvFmt       = "Creating virtualenv at %s...\n"
	ProvisionInstallingToolFmt     = "Installing ansible %s...\n"
	ProvisionRelocating            = "Making virtualenv relocatable...\n"
	ProvisionVerifyingTool         = "Verifying ansible install...\n"
	ProvisionCleanupWarningFmt     = "warning: remove temp dir %s: %v\n"

	// LauncherWorkspaceFmt announces the workspace in use.
	LauncherWorkspaceFmt       = "Using workspace %s\n"
	LauncherCreateWorkspaceFmt = "create workspace %s: %w"
	LauncherNoNetworkFmt       = "workspace %s is not provisioned and network access is disabled via %s"
)
