package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/conn-castle/ansible-launcher/internal/messages"
)

// DefaultAnsibleVersion and DefaultVirtualenvVersion are installed when the
// config file omits the corresponding key.
const (
	DefaultAnsibleVersion    = "2.4.3.0"
	DefaultVirtualenvVersion = "15.1.0"
)

// Config pins the virtualenv and ansible versions for a workspace.
type Config struct {
	AnsibleVersion    string `toml:"ansible_version"`
	VirtualenvVersion string `toml:"virtualenv_version"`
}

// Load reads the version config at path and applies defaults for absent keys.
// A missing or unparseable file is an error; absent keys are not.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigMissingFileFmt, path, err)
	}
	return Parse(data, path)
}

// Parse parses config TOML data and applies defaults.
// data is the TOML content; source is used in error messages.
func Parse(data []byte, source string) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf(messages.ConfigInvalidConfigFmt, source, err)
	}
	if strings.TrimSpace(cfg.AnsibleVersion) == "" {
		cfg.AnsibleVersion = DefaultAnsibleVersion
	}
	if strings.TrimSpace(cfg.VirtualenvVersion) == "" {
		cfg.VirtualenvVersion = DefaultVirtualenvVersion
	}
	return &cfg, nil
}
