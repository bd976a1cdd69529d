package provision

import (
	"bytes"
	"fmt"
	"io"

	"github.com/conn-castle/ansible-launcher/internal/fetch"
	"github.com/conn-castle/ansible-launcher/internal/messages"
	"github.com/conn-castle/ansible-launcher/internal/runner"
)

var virtualenvURLTemplate = "https://pypi.python.org/packages/source/v/virtualenv/virtualenv-%s.tar.gz"

var fetchFunc = fetch.Fetch
var runFunc = runner.Run

// InstallRuntime downloads the virtualenv release for version and unpacks it
// into tempDir. The archive bytes are streamed to tar's stdin, and the
// archive's single top-level folder is stripped so its contents land directly
// in tempDir. Intended to run under AtomicInstall with the workspace venv
// directory as target.
func InstallRuntime(tempDir string, version string, progress io.Writer) error {
	url := fmt.Sprintf(virtualenvURLTemplate, version)
	_, _ = fmt.Fprintf(progress, messages.ProvisionDownloadingRuntimeFmt, version)
	archive, err := fetchFunc(url)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(progress, messages.ProvisionExtractingRuntimeFmt, tempDir)
	err = runFunc(runner.Command{
		Name:   "tar",
		Args:   []string{"-xz", "--strip-components=1", "-C", tempDir},
		Stdin:  bytes.NewReader(archive),
		Stdout: progress,
		Stderr: progress,
	})
	if err != nil {
		return fmt.Errorf(messages.ProvisionExtractRuntimeFmt, tempDir, err)
	}
	return nil
}
