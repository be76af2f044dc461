// Package config describes the test cases shown by the viewer and loads
// them from a YAML manifest.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultFolder is where the built-in cases live
const DefaultFolder = "data/"

// DefaultWidth is the initial surface width in pixels
const DefaultWidth = 1400

// Case is one row of the comparison grid.
type Case struct {
	Name          string `yaml:"name"`
	Original      string `yaml:"original"`
	Repaired      string `yaml:"repaired"`
	Intersections string `yaml:"intersections"`
}

// Manifest is the content of a cases.yaml file.
type Manifest struct {
	Folder string `yaml:"folder"`
	Cases  []Case `yaml:"cases"`
}

// Options are the settings shared by every frontend command.
type Options struct {
	ConfigFile string
	DataFolder string
	Width      int
	Watch      bool
	Quiet      bool
}

// NewCase derives the file names of a case from its name: <name>.obj,
// <name>_fixed.obj and <name>_intersections.json.
func NewCase(name string) Case {
	return Case{
		Name:          name,
		Original:      name + ".obj",
		Repaired:      name + "_fixed.obj",
		Intersections: name + "_intersections.json",
	}
}

// Default returns the built-in manifest
func Default() Manifest {
	return Manifest{
		Folder: DefaultFolder,
		Cases: []Case{
			NewCase("two_spheres"),
			NewCase("bend_cylinder"),
		},
	}
}

// Parse decodes a manifest. Missing file names of a case are derived from
// its name and a missing folder falls back to DefaultFolder.
func Parse(data []byte) (Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("invalid manifest: %w", err)
	}
	if m.Folder == "" {
		m.Folder = DefaultFolder
	}
	for i, c := range m.Cases {
		if c.Name == "" {
			return Manifest{}, fmt.Errorf("case %d has no name", i+1)
		}
		derived := NewCase(c.Name)
		if c.Original == "" {
			c.Original = derived.Original
		}
		if c.Repaired == "" {
			c.Repaired = derived.Repaired
		}
		if c.Intersections == "" {
			c.Intersections = derived.Intersections
		}
		m.Cases[i] = c
	}
	if len(m.Cases) == 0 {
		return Manifest{}, errors.New("manifest lists no cases")
	}
	return m, nil
}

// Load resolves the manifest for opts: the configured file, or the defaults
// when no file is given. A data folder in opts overrides the manifest's.
func Load(opts Options) (Manifest, error) {
	m := Default()
	if opts.ConfigFile != "" {
		data, err := os.ReadFile(opts.ConfigFile)
		if err != nil {
			return Manifest{}, fmt.Errorf("failed to read manifest: %w", err)
		}
		m, err = Parse(data)
		if err != nil {
			return Manifest{}, fmt.Errorf("%s: %w", opts.ConfigFile, err)
		}
	}
	if opts.DataFolder != "" {
		m.Folder = opts.DataFolder
	}
	if !strings.HasSuffix(m.Folder, "/") {
		m.Folder += "/"
	}
	return m, nil
}
