package provision

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/conn-castle/ansible-launcher/internal/messages"
	"github.com/conn-castle/ansible-launcher/internal/runner"
)

var ansibleURLTemplate = "https://releases.ansible.com/ansible/ansible-%s.tar.gz"

const pythonBin = "python"

// InstallTool materializes a fresh virtualenv at tempDir using the activated
// runtime's entry point, installs the pinned ansible release into it, rewrites
// the tree's internal absolute paths so it survives the pending activation
// rename, and verifies the installed ansible binary runs. Each sub-step is
// fatal on non-zero exit. Intended to run under AtomicInstall with the
// workspace ansible directory as target.
func InstallTool(tempDir string, venvEntryPoint string, version string, progress io.Writer) error {
	_, _ = fmt.Fprintf(progress, messages.ProvisionCreatingVenvFmt, tempDir)
	err := runFunc(runner.Command{
		Name:   pythonBin,
		Args:   []string{venvEntryPoint, tempDir},
		Stdout: progress,
		Stderr: progress,
	})
	if err != nil {
		return fmt.Errorf(messages.ProvisionCreateVenvFmt, tempDir, err)
	}

	_, _ = fmt.Fprintf(progress, messages.ProvisionInstallingToolFmt, version)
	pip := filepath.Join(tempDir, "bin", "pip")
	err = runFunc(runner.Command{
		Name:   pip,
		Args:   []string{"install", fmt.Sprintf(ansibleURLTemplate, version)},
		Stdout: progress,
		Stderr: progress,
	})
	if err != nil {
		return fmt.Errorf(messages.ProvisionInstallToolFmt, version, err)
	}

	_, _ = fmt.Fprint(progress, messages.ProvisionRelocating)
	err = runFunc(runner.Command{
		Name:   pythonBin,
		Args:   []string{venvEntryPoint, "--relocatable", tempDir},
		Stdout: progress,
		Stderr: progress,
	})
	if err != nil {
		return fmt.Errorf(messages.ProvisionRelocateFmt, tempDir, err)
	}

	// Self-check before activation: a tree that cannot answer --version must
	// never become visible at the final path.
	_, _ = fmt.Fprint(progress, messages.ProvisionVerifyingTool)
	ansible := filepath.Join(tempDir, "bin", "ansible")
	err = runFunc(runner.Command{
		Name:   ansible,
		Args:   []string{"--version"},
		Stdout: progress,
		Stderr: progress,
	})
	if err != nil {
		return fmt.Errorf(messages.ProvisionVerifyToolFmt, err)
	}
	return nil
}
