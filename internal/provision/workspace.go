package provision

import (
	"fmt"
	"path/filepath"
)

// VersionPair pins the runtime and tool versions that define a workspace.
// Both fields are path-safe identifiers and must be non-empty; the config
// loader guarantees this via its defaults.
type VersionPair struct {
	VirtualenvVersion string
	AnsibleVersion    string
}

// Workspace holds the derived install paths for one version pair. A workspace
// is created lazily on first use and never removed or mutated after its two
// install targets are activated.
type Workspace struct {
	Dir        string
	VenvDir    string
	AnsibleDir string
}

// WorkspaceFor derives the workspace paths for pair under baseDir. The same
// pair always maps to the same directory, so every invocation with a given
// config shares one install tree.
func WorkspaceFor(baseDir string, pair VersionPair) Workspace {
	dir := filepath.Join(baseDir, fmt.Sprintf("venv%s-ansible%s", pair.VirtualenvVersion, pair.AnsibleVersion))
	return Workspace{
		Dir:        dir,
		VenvDir:    filepath.Join(dir, "venv"),
		AnsibleDir: filepath.Join(dir, "ansible"),
	}
}

// VenvEntryPoint returns the virtualenv script inside the activated runtime.
func (w Workspace) VenvEntryPoint() string {
	return filepath.Join(w.VenvDir, "virtualenv.py")
}

// AnsibleBin returns the installed ansible executable.
func (w Workspace) AnsibleBin() string {
	return filepath.Join(w.AnsibleDir, "bin", "ansible")
}

// Provisioned reports whether both install targets exist.
func (w Workspace) Provisioned(sys System) bool {
	if _, err := sys.Stat(w.VenvDir); err != nil {
		return false
	}
	if _, err := sys.Stat(w.AnsibleDir); err != nil {
		return false
	}
	return true
}
