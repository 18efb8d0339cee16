// Package preset reads parallax configurations from YAML files:
//
//	speed: 50        # transition length in milliseconds
//	y_motion: true
//	easing: linear   # or swing
//	panels:          # applied in order: first entry, first panel
//	  - index: 0
//	    width: 300
//	    height: 100
//
// Missing fields keep the [parallax.DefaultConfig]() values.
package preset

import (
	"fmt"
	"os"
	"time"

	"github.com/edwinsyarief/parallax"
	"github.com/edwinsyarief/parallax/easing"
	"gopkg.in/yaml.v3"
)

// File is the YAML representation of a parallax configuration.
type File struct {
	Speed   int         `yaml:"speed"`
	YMotion bool        `yaml:"y_motion"`
	Easing  string      `yaml:"easing"`
	Panels  []PanelSpec `yaml:"panels"`
}

type PanelSpec struct {
	Index  int     `yaml:"index"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Config converts the file contents into a complete parallax
// configuration, merged over the defaults.
func (f File) Config() (parallax.Config, error) {
	var overrides parallax.Config
	if f.Speed < 0 {
		return parallax.Config{}, fmt.Errorf("preset: negative speed %d", f.Speed)
	}
	overrides.Speed = time.Duration(f.Speed) * time.Millisecond
	overrides.YMotion = f.YMotion

	if f.Easing != "" {
		overrides.Easing = easing.ByName(f.Easing)
		if overrides.Easing == nil {
			return parallax.Config{}, fmt.Errorf("preset: unknown easing %q", f.Easing)
		}
	}

	for i, panel := range f.Panels {
		if panel.Width < 0 || panel.Height < 0 {
			return parallax.Config{}, fmt.Errorf("preset: negative size for panel %d", i)
		}
		overrides.PanelOpts = append(overrides.PanelOpts, parallax.PanelOption{
			Index:  panel.Index,
			Width:  panel.Width,
			Height: panel.Height,
		})
	}

	return parallax.Merge(parallax.DefaultConfig(), overrides), nil
}

// Parse decodes a YAML preset.
func Parse(data []byte) (parallax.Config, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return parallax.Config{}, fmt.Errorf("preset: unmarshal: %w", err)
	}
	return file.Config()
}

// Load reads and decodes the YAML preset at the given path.
func Load(filename string) (parallax.Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return parallax.Config{}, fmt.Errorf("preset: load %s: %w", filename, err)
	}
	config, err := Parse(data)
	if err != nil {
		return parallax.Config{}, fmt.Errorf("preset: %s: %w", filename, err)
	}
	return config, nil
}
