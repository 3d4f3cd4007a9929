// pkg/config/config_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: Temp files
// PURPOSE: Test layered profile loading, validation and serialization

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/simenv/pkg/environ"
	serrors "github.com/arthur-debert/simenv/pkg/errors"
	"github.com/arthur-debert/simenv/pkg/paths"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the default config location at an empty temp dir and
// clears the SIMENV_* overrides
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(paths.EnvConfigDir, dir)
	t.Setenv("SIMENV_HOME", "")
	t.Setenv("SIMENV_PROFILE", "")
	t.Setenv("SIMENV_SEPARATOR", "")
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(Options{})
	require.NoError(t, err)

	assert.Equal(t, "gazebo-garden", cfg.Profile)
	assert.Equal(t, ":", cfg.Separator)
	assert.Empty(t, cfg.Source)

	p, err := cfg.ActiveProfile()
	require.NoError(t, err)

	builtin := environ.GazeboGarden()
	assert.Equal(t, builtin.Steps, p.Steps)
	assert.Equal(t, builtin.Name, p.Name)
	assert.Equal(t, builtin.Description, p.Description)
}

func TestLoad_DefaultsComposeLikeBuiltin(t *testing.T) {
	isolate(t)

	cfg, err := Load(Options{})
	require.NoError(t, err)
	p, err := cfg.ActiveProfile()
	require.NoError(t, err)

	before := environ.Env{"PATH": "/usr/bin"}
	assert.Equal(t,
		environ.Compose(before, "/home/pilot", environ.GazeboGarden()),
		environ.Compose(before, "/home/pilot", p))
}

func TestLoad_UserFileAddsProfile(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "config.toml"), `
profile = "harmonic"

[profiles.harmonic]
description = "Gazebo Harmonic"

[[profiles.harmonic.steps]]
variable = "GZ_SIM_RESOURCE_PATH"
mode = "prepend"
entries = "$HOME/models,$HOME/worlds"

[[profiles.harmonic.steps]]
variable = "GZ_VERSION"
mode = "set"
entries = ["harmonic"]
`)

	cfg, err := Load(Options{})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "config.toml"), cfg.Source)
	assert.Equal(t, []string{"gazebo-garden", "harmonic"}, cfg.ProfileNames())

	p, err := cfg.ActiveProfile()
	require.NoError(t, err)
	require.Len(t, p.Steps, 2)
	assert.Equal(t, []string{"$HOME/models", "$HOME/worlds"}, p.Steps[0].Entries)
	assert.Equal(t, environ.ModeSet, p.Steps[1].Mode)

	after := environ.Compose(environ.Env{}, "/h", p)
	assert.Equal(t, "/h/models:/h/worlds:", after["GZ_SIM_RESOURCE_PATH"])
	assert.Equal(t, "harmonic", after["GZ_VERSION"])
}

func TestLoad_YAMLFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "sim.yaml")
	writeFile(t, path, `
profile: tools
profiles:
  tools:
    separator: ";"
    steps:
      - variable: PATH
        entries: ["/opt/tools/bin"]
`)

	cfg, err := Load(Options{ConfigFile: path})
	require.NoError(t, err)

	p, err := cfg.ActiveProfile()
	require.NoError(t, err)
	assert.Equal(t, ";", p.Sep())
	assert.Equal(t, environ.ModePrepend, p.Steps[0].Mode)
	assert.Equal(t, "/opt/tools/bin;/bin", environ.Compose(environ.Env{"PATH": "/bin"}, "", p)["PATH"])
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	isolate(t)

	_, err := Load(Options{ConfigFile: filepath.Join(t.TempDir(), "nope.toml")})
	require.Error(t, err)
	assert.True(t, serrors.IsErrorCode(err, serrors.ErrConfigLoad))
}

func TestLoad_BrokenFile(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "config.toml"), "profile = [unterminated")

	_, err := Load(Options{})
	require.Error(t, err)
	assert.True(t, serrors.IsErrorCode(err, serrors.ErrConfigParse))
}

func TestLoad_EnvAndOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("SIMENV_HOME", "/env/home")
	t.Setenv("SIMENV_PROFILE", "missing")
	t.Setenv("SIMENV_CONFIG_DIR_IGNORED", "x")

	t.Run("env selects unknown profile", func(t *testing.T) {
		_, err := Load(Options{})
		require.Error(t, err)
		assert.True(t, serrors.IsErrorCode(err, serrors.ErrProfileNotFound))
	})

	t.Run("overrides win over env", func(t *testing.T) {
		cfg, err := Load(Options{Overrides: map[string]string{
			"profile": "gazebo-garden",
			"home":    "/flag/home",
		}})
		require.NoError(t, err)
		assert.Equal(t, "/flag/home", cfg.Home)
	})

	t.Run("empty overrides are ignored", func(t *testing.T) {
		cfg, err := Load(Options{Overrides: map[string]string{"profile": "gazebo-garden", "home": ""}})
		require.NoError(t, err)
		assert.Equal(t, "/env/home", cfg.Home)
	})
}

func TestBuildProfile_Invalid(t *testing.T) {
	cfg := &Config{
		Separator: ":",
		Profile:   "bad",
		Profiles: map[string]Profile{
			"bad":          {Steps: []Step{{Variable: "GZ_VERSION", Mode: "set", Entries: []string{"a", "b"}}}},
			"badmode":      {Steps: []Step{{Variable: "PATH", Mode: "append", Entries: []string{"/x"}}}},
			"novariable":   {Steps: []Step{{Mode: "prepend", Entries: []string{"/x"}}}},
			"unterminated": {Steps: []Step{{Variable: "GZ_SIM_RESOURCE_PATH", Mode: "prepend", Entries: []string{"${HOME/models"}}}},
		},
	}

	for _, name := range []string{"bad", "badmode", "novariable", "unterminated"} {
		t.Run(name, func(t *testing.T) {
			_, err := cfg.BuildProfile(name)
			require.Error(t, err)
			assert.True(t, serrors.IsErrorCode(err, serrors.ErrConfigValid))
		})
	}

	_, err := cfg.BuildProfile("absent")
	assert.True(t, serrors.IsErrorCode(err, serrors.ErrProfileNotFound))
}

func TestResolveHome(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, "/home/pilot", cfg.ResolveHome(environ.Env{"HOME": "/home/pilot"}))
	assert.Equal(t, "", cfg.ResolveHome(environ.Env{}))

	cfg.Home = "/srv/sim"
	assert.Equal(t, "/srv/sim", cfg.ResolveHome(environ.Env{"HOME": "/home/pilot"}))
}

func TestDump(t *testing.T) {
	isolate(t)
	cfg, err := Load(Options{})
	require.NoError(t, err)

	data, err := Dump(cfg)
	require.NoError(t, err)

	out := string(data)
	assert.Regexp(t, `profile = ['"]gazebo-garden['"]`, out)
	assert.Contains(t, out, "GZ_SIM_SYSTEM_PLUGIN_PATH")
	assert.Contains(t, out, "$HOME/ardupilot/build/sitl/bin")
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	require.NoError(t, WriteDefault(path, false))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultContent(), data)

	err = WriteDefault(path, false)
	assert.True(t, serrors.IsErrorCode(err, serrors.ErrAlreadyExists))

	assert.NoError(t, WriteDefault(path, true))
}
