package provision

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/conn-castle/ansible-launcher/internal/messages"
)

// InstallFunc performs one install attempt, writing only inside tempDir.
type InstallFunc func(tempDir string) error

var cleanupWarnColor = color.New(color.FgYellow)

// AtomicInstall materializes target via installFn with idempotent, crash-safe,
// concurrency-safe semantics. The existence of target is the sole completion
// marker: if it already exists the call is a no-op. Otherwise installFn runs
// against a millisecond-stamped sibling staging directory that is renamed to
// target in one atomic operation. Concurrent invocations may race on the
// rename; the first to complete it wins and losers discard their work without
// surfacing an error. The staging directory is removed on every exit path
// except a winning rename, and removal failures warn rather than fail.
func AtomicInstall(sys System, target string, progress io.Writer, installFn InstallFunc) error {
	if sys == nil {
		return fmt.Errorf(messages.ProvisionSystemRequired)
	}
	if installFn == nil {
		return fmt.Errorf(messages.ProvisionInstallFnRequired)
	}

	if _, err := sys.Stat(target); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf(messages.ProvisionCheckTargetFmt, target, err)
	}

	tempDir := fmt.Sprintf("%s.tmp%d", target, sys.Now().UnixMilli())
	_, _ = fmt.Fprintf(progress, messages.ProvisionCreatingTempDirFmt, tempDir)
	if err := sys.MkdirAll(tempDir, 0o755); err != nil {
		return fmt.Errorf(messages.ProvisionCreateTempDirFmt, tempDir, err)
	}

	installErr := installFn(tempDir)
	var renameErr error
	if installErr == nil {
		renameErr = sys.Rename(tempDir, target)
	}
	cleanupTempDir(sys, tempDir, progress)
	if installErr != nil {
		return installErr
	}

	// A failed rename is tolerated only when a concurrent invocation already
	// produced target; the existence check is authoritative either way.
	if _, err := sys.Stat(target); err != nil {
		if os.IsNotExist(err) {
			if renameErr != nil {
				return fmt.Errorf(messages.ProvisionActivateFmt, target, renameErr)
			}
			return fmt.Errorf(messages.ProvisionTargetMissingFmt, target)
		}
		return fmt.Errorf(messages.ProvisionCheckTargetFmt, target, err)
	}
	return nil
}

// cleanupTempDir removes a leftover staging directory. Removal failures warn
// and continue: cleanup must never fail an install that otherwise succeeded.
func cleanupTempDir(sys System, tempDir string, progress io.Writer) {
	if _, err := sys.Stat(tempDir); err != nil {
		return
	}
	if err := sys.RemoveAll(tempDir); err != nil {
		_, _ = cleanupWarnColor.Fprintf(progress, messages.ProvisionCleanupWarningFmt, tempDir, err)
	}
}
