// pkg/doctor/doctor_test.go
// TEST TYPE: Integration Tests
// DEPENDENCIES: Temp files
// PURPOSE: Test directory inspection, model and world discovery

package doctor_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/simenv/pkg/doctor"
	"github.com/arthur-debert/simenv/pkg/environ"
	"github.com/arthur-debert/simenv/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bluerovConfig = `<?xml version="1.0"?>
<model>
  <name>BlueROV2</name>
  <version>1.0</version>
  <sdf version="1.9">model.sdf</sdf>
  <description>BlueROV2 heavy</description>
</model>
`

const worldSDF = `<?xml version="1.0" ?>
<sdf version="1.6">
  <world name="sand">
    <gravity>0 0 -9.8</gravity>
  </world>
</sdf>
`

func write(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, doctor.KindBinary, doctor.KindOf("PATH"))
	assert.Equal(t, doctor.KindPlugin, doctor.KindOf("GZ_SIM_SYSTEM_PLUGIN_PATH"))
	assert.Equal(t, doctor.KindResource, doctor.KindOf("GZ_SIM_RESOURCE_PATH"))
	assert.Equal(t, doctor.KindOther, doctor.KindOf("LD_LIBRARY_PATH"))
}

func TestInspect(t *testing.T) {
	home := t.TempDir()
	write(t, filepath.Join(home, "bluerov2_gz", "models", "bluerov2", "model.config"), bluerovConfig)
	write(t, filepath.Join(home, "bluerov2_gz", "models", "axes", "model.config"), "<model></model>")
	write(t, filepath.Join(home, "bluerov2_gz", "models", "notamodel", "README"), "x")
	write(t, filepath.Join(home, "bluerov2_gz", "worlds", "sand.world"), worldSDF)
	write(t, filepath.Join(home, "bluerov2_gz", "worlds", "notes.txt"), "x")
	write(t, filepath.Join(home, "ardupilot_gazebo", "build", "libArduPilotPlugin.so"), "")
	write(t, filepath.Join(home, "ardupilot_gazebo", "build", "CMakeCache.txt"), "")

	report := doctor.Inspect(environ.GazeboGarden(), home, environ.Env{})

	assert.Equal(t, "gazebo-garden", report.Profile)
	// sitl bin, ws_angler lib, ardupilot_gazebo models and worlds
	assert.Equal(t, 4, report.Missing())
	assert.Len(t, report.Warnings, 4)
	require.Len(t, report.Dirs, 7)

	byPath := map[string]doctor.DirStatus{}
	for _, d := range report.Dirs {
		byPath[d.Path] = d
	}

	plugins := byPath[filepath.Join(home, "ardupilot_gazebo", "build")]
	assert.True(t, plugins.Exists)
	assert.Equal(t, []string{"libArduPilotPlugin.so"}, plugins.Plugins)

	models := byPath[filepath.Join(home, "bluerov2_gz", "models")]
	require.Len(t, models.Models, 2)
	assert.Equal(t, "axes", models.Models[0].Name)
	assert.Equal(t, "BlueROV2", models.Models[1].Name)
	assert.Equal(t, "1.0", models.Models[1].Version)
	assert.Equal(t, "model.sdf", models.Models[1].SDF)

	worlds := byPath[filepath.Join(home, "bluerov2_gz", "worlds")]
	require.Len(t, worlds.Worlds, 1)
	assert.Equal(t, "sand", worlds.Worlds[0].Name)
}

func TestInspect_EmptyHomeWarns(t *testing.T) {
	p := environ.Profile{Name: "t", Steps: []environ.Assignment{
		{Variable: "GZ_VERSION", Mode: environ.ModeSet, Entries: []string{"garden"}},
	}}

	report := doctor.Inspect(p, "", environ.Env{})

	assert.Empty(t, report.Dirs)
	require.Len(t, report.Warnings, 1)
	assert.Contains(t, report.Warnings[0], "HOME is not set")
}

func TestReadModelConfig_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.config")
	write(t, path, "<<model>>")

	_, err := doctor.ReadModelConfig(path)
	assert.Error(t, err)
}

func TestInspect_CompleteLayout(t *testing.T) {
	home := testutil.NewSimHome(t).
		GardenLayout().
		Model("bluerov2_gz/models", "bluerov2_heavy", "2.1").
		World("ardupilot_gazebo/worlds", "iris_runway")

	report := doctor.Inspect(environ.GazeboGarden(), home.Root, environ.Env{})

	assert.Zero(t, report.Missing())
	assert.Empty(t, report.Warnings)

	var models []doctor.Model
	var worlds []doctor.World
	for _, d := range report.Dirs {
		models = append(models, d.Models...)
		worlds = append(worlds, d.Worlds...)
	}
	require.Len(t, models, 1)
	assert.Equal(t, "bluerov2_heavy", models[0].Name)
	assert.Equal(t, "2.1", models[0].Version)
	require.Len(t, worlds, 1)
	assert.Equal(t, "iris_runway", worlds[0].Name)
}
