package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileNamesPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	_, err := Load(path)
	require.Error(t, err)
	require.ErrorIs(t, err, os.ErrNotExist)
	require.Contains(t, err.Error(), path)
}

func TestLoad_ReadsPinnedVersions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "ansible_version = \"2.9.6\"\nvirtualenv_version = \"16.7.10\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "2.9.6", cfg.AnsibleVersion)
	require.Equal(t, "16.7.10", cfg.VirtualenvVersion)
}

func TestParse_AbsentKeysFallBackToDefaults(t *testing.T) {
	cfg, err := Parse([]byte(""), "test config")
	require.NoError(t, err)
	require.Equal(t, DefaultAnsibleVersion, cfg.AnsibleVersion)
	require.Equal(t, DefaultVirtualenvVersion, cfg.VirtualenvVersion)

	// The two defaults are deliberately distinct version strings.
	require.NotEqual(t, cfg.AnsibleVersion, cfg.VirtualenvVersion)
}

func TestParse_PartialConfigKeepsOtherDefault(t *testing.T) {
	cfg, err := Parse([]byte("ansible_version = \"2.9.6\"\n"), "test config")
	require.NoError(t, err)
	require.Equal(t, "2.9.6", cfg.AnsibleVersion)
	require.Equal(t, DefaultVirtualenvVersion, cfg.VirtualenvVersion)
}

func TestParse_InvalidTOMLFails(t *testing.T) {
	_, err := Parse([]byte("ansible_version = [broken"), "bad.toml")
	require.Error(t, err)
	require.Contains(t, err.Error(), "bad.toml")
}
