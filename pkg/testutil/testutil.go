// pkg/testutil/testutil.go
// DEPENDENCIES: None (base test utilities)
// PURPOSE: Isolate tests from the user's config, state and environment

package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/simenv/pkg/paths"
	"github.com/stretchr/testify/require"
)

// Isolated holds the temp directories an isolated test runs against
type Isolated struct {
	ConfigDir string
	StateDir  string
}

// ConfigFile returns the default config path inside the isolated dir
func (i *Isolated) ConfigFile() string {
	return filepath.Join(i.ConfigDir, paths.ConfigFileName)
}

// Isolate redirects the config directory and log file to temp dirs and
// clears the SIMENV_* overrides. Everything is restored on cleanup.
func Isolate(t *testing.T) *Isolated {
	t.Helper()

	root := t.TempDir()
	iso := &Isolated{
		ConfigDir: filepath.Join(root, "config"),
		StateDir:  filepath.Join(root, "state"),
	}
	require.NoError(t, os.MkdirAll(iso.ConfigDir, 0755))

	t.Setenv(paths.EnvConfigDir, iso.ConfigDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "xdg-config"))
	t.Setenv("XDG_STATE_HOME", iso.StateDir)
	t.Setenv("SIMENV_HOME", "")
	t.Setenv("SIMENV_PROFILE", "")
	t.Setenv("SIMENV_SEPARATOR", "")
	t.Setenv("NO_COLOR", "1")
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	return iso
}

// WriteFile writes content to path, creating parent directories
func WriteFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// WriteExecutable writes an executable script to path
func WriteExecutable(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0755))
	return path
}
