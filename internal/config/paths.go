package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"

	"github.com/conn-castle/ansible-launcher/internal/messages"
)

// EnvHome and EnvConfig define launcher environment overrides.
const (
	EnvHome   = "AWL_HOME"
	EnvConfig = "AWL_CONFIG"
)

var getenvFunc = os.Getenv
var homedirFunc = homedir.Dir

// Paths holds resolved locations for the launcher home and config file.
type Paths struct {
	BaseDir    string
	ConfigPath string
}

// DefaultPaths resolves the launcher home and config file path, honoring the
// AWL_HOME and AWL_CONFIG environment overrides.
func DefaultPaths() (Paths, error) {
	base := strings.TrimSpace(getenvFunc(EnvHome))
	if base == "" {
		home, err := homedirFunc()
		if err != nil {
			return Paths{}, fmt.Errorf(messages.ConfigResolveHomeDirFmt, err)
		}
		base = filepath.Join(home, ".ansible-launcher")
	}
	configPath := strings.TrimSpace(getenvFunc(EnvConfig))
	if configPath == "" {
		configPath = filepath.Join(base, "config.toml")
	}
	return Paths{BaseDir: base, ConfigPath: configPath}, nil
}
