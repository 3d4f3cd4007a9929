// pkg/testutil/simhome.go
// DEPENDENCIES: None
// PURPOSE: Build a fake home directory laid out like a simulator workstation

package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// SimHome is a temp home directory populated through chained calls
type SimHome struct {
	Root string
	t    *testing.T
}

// NewSimHome creates an empty home directory
func NewSimHome(t *testing.T) *SimHome {
	t.Helper()
	return &SimHome{Root: t.TempDir(), t: t}
}

// Path joins elements onto the home directory
func (h *SimHome) Path(elem ...string) string {
	return filepath.Join(append([]string{h.Root}, elem...)...)
}

// Dir creates a directory relative to home
func (h *SimHome) Dir(rel string) *SimHome {
	h.t.Helper()
	require.NoError(h.t, os.MkdirAll(h.Path(rel), 0755))
	return h
}

// File writes a file relative to home
func (h *SimHome) File(rel, content string) *SimHome {
	h.t.Helper()
	WriteFile(h.t, h.Path(rel), content)
	return h
}

// Tool writes an executable shell script relative to home
func (h *SimHome) Tool(rel, body string) *SimHome {
	h.t.Helper()
	WriteExecutable(h.t, h.Path(rel), "#!/bin/sh\n"+body+"\n")
	return h
}

// Model writes dir/name/model.config declaring the given model name
func (h *SimHome) Model(dir, name, version string) *SimHome {
	h.t.Helper()
	content := fmt.Sprintf(`<?xml version="1.0"?>
<model>
  <name>%s</name>
  <version>%s</version>
  <sdf version="1.9">model.sdf</sdf>
</model>
`, name, version)
	return h.File(filepath.Join(dir, name, "model.config"), content)
}

// World writes dir/name.sdf containing a single named world
func (h *SimHome) World(dir, name string) *SimHome {
	h.t.Helper()
	content := fmt.Sprintf(`<?xml version="1.0" ?>
<sdf version="1.6">
  <world name="%s"/>
</sdf>
`, name)
	return h.File(filepath.Join(dir, name+".sdf"), content)
}

// GardenLayout creates every directory the gazebo-garden profile points at
func (h *SimHome) GardenLayout() *SimHome {
	h.t.Helper()
	return h.
		Dir("ardupilot/build/sitl/bin").
		Dir("ardupilot_gazebo/build").
		Dir("ws_angler/install/lib").
		Dir("ardupilot_gazebo/models").
		Dir("ardupilot_gazebo/worlds").
		Dir("bluerov2_gz/models").
		Dir("bluerov2_gz/worlds")
}
