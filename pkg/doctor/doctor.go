// Package doctor reports on the directories a profile contributes.
//
// Composition never looks at the filesystem; this package does, so users
// can see why the simulator cannot find a plugin or a model. Nothing here
// is an error: a missing directory is reported and left alone.
package doctor

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/simenv/pkg/environ"
	"github.com/arthur-debert/simenv/pkg/logging"
	"github.com/beevik/etree"
)

// Kind says what a search-path variable is used for
type Kind string

const (
	KindBinary   Kind = "binary"
	KindPlugin   Kind = "plugin"
	KindResource Kind = "resource"
	KindOther    Kind = "other"
)

// KindOf classifies a variable by name
func KindOf(variable string) Kind {
	switch {
	case variable == environ.VarPath:
		return KindBinary
	case strings.Contains(variable, "PLUGIN"):
		return KindPlugin
	case strings.Contains(variable, "RESOURCE"):
		return KindResource
	default:
		return KindOther
	}
}

// Model is a Gazebo model found in a resource directory
type Model struct {
	Name    string `json:"name" yaml:"name"`
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
	SDF     string `json:"sdf,omitempty" yaml:"sdf,omitempty"`
	Dir     string `json:"dir" yaml:"dir"`
}

// World is a world file found in a resource directory
type World struct {
	Name string `json:"name" yaml:"name"`
	File string `json:"file" yaml:"file"`
}

// DirStatus describes one contributed directory
type DirStatus struct {
	Variable string   `json:"variable" yaml:"variable"`
	Kind     Kind     `json:"kind" yaml:"kind"`
	Path     string   `json:"path" yaml:"path"`
	Exists   bool     `json:"exists" yaml:"exists"`
	Models   []Model  `json:"models,omitempty" yaml:"models,omitempty"`
	Worlds   []World  `json:"worlds,omitempty" yaml:"worlds,omitempty"`
	Plugins  []string `json:"plugins,omitempty" yaml:"plugins,omitempty"`
}

// Report is the result of an inspection
type Report struct {
	Profile  string      `json:"profile" yaml:"profile"`
	Home     string      `json:"home" yaml:"home"`
	Dirs     []DirStatus `json:"dirs" yaml:"dirs"`
	Warnings []string    `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// Missing counts contributed directories that do not exist
func (r Report) Missing() int {
	n := 0
	for _, d := range r.Dirs {
		if !d.Exists {
			n++
		}
	}
	return n
}

// Inspect checks every directory the profile contributes
func Inspect(p environ.Profile, home string, env environ.Env) Report {
	logger := logging.GetLogger("doctor")
	report := Report{Profile: p.Name, Home: home}

	if home == "" {
		report.Warnings = append(report.Warnings, "HOME is not set; entries relative to it start at /")
	}

	dirs := environ.Directories(p, home, env)
	for _, variable := range p.Targets() {
		for _, dir := range dirs[variable] {
			status := DirStatus{Variable: variable, Kind: KindOf(variable), Path: dir}

			info, err := os.Stat(dir)
			status.Exists = err == nil && info.IsDir()
			if !status.Exists {
				report.Warnings = append(report.Warnings, variable+": "+dir+" does not exist")
				report.Dirs = append(report.Dirs, status)
				continue
			}

			switch status.Kind {
			case KindResource:
				status.Models = FindModels(dir)
				status.Worlds = FindWorlds(dir)
			case KindPlugin:
				status.Plugins = FindPlugins(dir)
			}

			logger.Debug().
				Str("variable", variable).
				Str("dir", dir).
				Int("models", len(status.Models)).
				Int("worlds", len(status.Worlds)).
				Int("plugins", len(status.Plugins)).
				Msg("Inspected directory")
			report.Dirs = append(report.Dirs, status)
		}
	}

	return report
}

// FindModels lists subdirectories of dir that carry a model.config
func FindModels(dir string) []Model {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var models []Model
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		modelDir := filepath.Join(dir, entry.Name())
		m, err := ReadModelConfig(filepath.Join(modelDir, "model.config"))
		if err != nil {
			continue
		}
		if m.Name == "" {
			m.Name = entry.Name()
		}
		m.Dir = modelDir
		models = append(models, m)
	}
	return models
}

// ReadModelConfig parses a Gazebo model.config manifest
func ReadModelConfig(path string) (Model, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return Model{}, err
	}

	var m Model
	root := doc.SelectElement("model")
	if root == nil {
		return m, nil
	}
	if el := root.SelectElement("name"); el != nil {
		m.Name = strings.TrimSpace(el.Text())
	}
	if el := root.SelectElement("version"); el != nil {
		m.Version = strings.TrimSpace(el.Text())
	}
	if el := root.SelectElement("sdf"); el != nil {
		m.SDF = strings.TrimSpace(el.Text())
	}
	return m, nil
}

// FindWorlds lists the .sdf and .world files directly in dir that define a world
func FindWorlds(dir string) []World {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var worlds []World
	for _, entry := range entries {
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if entry.IsDir() || (ext != ".sdf" && ext != ".world") {
			continue
		}
		file := filepath.Join(dir, entry.Name())
		doc := etree.NewDocument()
		if err := doc.ReadFromFile(file); err != nil {
			continue
		}
		el := doc.FindElement("//world")
		if el == nil {
			continue
		}
		worlds = append(worlds, World{
			Name: el.SelectAttrValue("name", strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))),
			File: file,
		})
	}
	return worlds
}

// FindPlugins lists shared libraries directly in dir
func FindPlugins(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var plugins []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(name, ".so") || strings.Contains(name, ".so.") || strings.HasSuffix(name, ".dylib") {
			plugins = append(plugins, name)
		}
	}
	sort.Strings(plugins)
	return plugins
}
