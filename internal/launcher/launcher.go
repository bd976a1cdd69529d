// Package launcher orchestrates workspace provisioning and hands execution to
// the installed ansible binary.
package launcher

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/conn-castle/ansible-launcher/internal/config"
	"github.com/conn-castle/ansible-launcher/internal/messages"
	"github.com/conn-castle/ansible-launcher/internal/provision"
	"github.com/conn-castle/ansible-launcher/internal/runner"
)

// EnvNoNetwork disables downloads; an unprovisioned workspace then fails fast.
const EnvNoNetwork = "AWL_NO_NETWORK"

var (
	defaultPathsFunc   = config.DefaultPaths
	loadConfigFunc     = config.Load
	atomicInstallFunc  = provision.AtomicInstall
	installRuntimeFunc = provision.InstallRuntime
	installToolFunc    = provision.InstallTool
	runFunc            = runner.Run
	getenvFunc         = os.Getenv
)

// Run resolves the pinned version pair, provisions its workspace if needed
// (runtime before tool), and executes ansible with args forwarded verbatim.
// It returns the forwarded command's exit code; a non-nil error is fatal and
// means ansible was never reached.
func Run(args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) (int, error) {
	paths, err := defaultPathsFunc()
	if err != nil {
		return 0, err
	}
	cfg, err := loadConfigFunc(paths.ConfigPath)
	if err != nil {
		return 0, err
	}

	pair := provision.VersionPair{
		VirtualenvVersion: cfg.VirtualenvVersion,
		AnsibleVersion:    cfg.AnsibleVersion,
	}
	ws := provision.WorkspaceFor(paths.BaseDir, pair)
	sys := provision.RealSystem{}

	if !ws.Provisioned(sys) && noNetwork() {
		return 0, fmt.Errorf(messages.LauncherNoNetworkFmt, ws.Dir, EnvNoNetwork)
	}

	_, _ = fmt.Fprintf(stderr, messages.LauncherWorkspaceFmt, ws.Dir)
	if err := sys.MkdirAll(ws.Dir, 0o755); err != nil {
		return 0, fmt.Errorf(messages.LauncherCreateWorkspaceFmt, ws.Dir, err)
	}

	// Tool provisioning reads the venv entry point from the activated runtime
	// target, so the runtime install must win (or lose to a concurrent winner)
	// before it starts.
	err = atomicInstallFunc(sys, ws.VenvDir, stderr, func(tempDir string) error {
		return installRuntimeFunc(tempDir, pair.VirtualenvVersion, stderr)
	})
	if err != nil {
		return 0, err
	}
	err = atomicInstallFunc(sys, ws.AnsibleDir, stderr, func(tempDir string) error {
		return installToolFunc(tempDir, ws.VenvEntryPoint(), pair.AnsibleVersion, stderr)
	})
	if err != nil {
		return 0, err
	}

	err = runFunc(runner.Command{
		Name:   ws.AnsibleBin(),
		Args:   args,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	})
	if err != nil {
		if code, ok := runner.ExitCode(err); ok {
			return code, nil
		}
		return 0, err
	}
	return 0, nil
}

// noNetwork reports whether downloads are disabled via AWL_NO_NETWORK.
func noNetwork() bool {
	return strings.TrimSpace(getenvFunc(EnvNoNetwork)) != ""
}
