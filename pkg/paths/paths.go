// Package paths resolves where simenv reads its configuration from.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

const (
	// AppDirName is the directory name under the XDG base directories
	AppDirName = "simenv"

	// ConfigFileName is the default user configuration file
	ConfigFileName = "config.toml"

	// EnvConfigDir overrides the configuration directory
	EnvConfigDir = "SIMENV_CONFIG_DIR"
)

// ConfigDir returns the user configuration directory.
// SIMENV_CONFIG_DIR wins over $XDG_CONFIG_HOME/simenv.
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return ExpandHome(dir)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// ConfigFile returns the default user configuration file path
func ConfigFile() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// HomeDir reads the home directory from the environment. It is not
// validated and may be empty.
func HomeDir() string {
	return os.Getenv("HOME")
}

// ExpandHome expands a leading ~ to the home directory
func ExpandHome(path string) string {
	if path == "~" {
		return HomeDir()
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(HomeDir(), path[2:])
	}
	return path
}
