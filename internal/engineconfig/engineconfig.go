package engineconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the preferences file, relative to the process working directory.
const DefaultPath = "config/cube.yaml"

// Prefs holds window and overlay preferences. Every field is optional in the file;
// missing or zero values fall back to Default.
type Prefs struct {
	Width      int    `yaml:"width,omitempty"`
	Height     int    `yaml:"height,omitempty"`
	Title      string `yaml:"title,omitempty"`
	VSync      *bool  `yaml:"vsync,omitempty"`
	ShowFPS    bool   `yaml:"show_fps"`
	ShowAngles bool   `yaml:"show_angles"`
	LogPath    string `yaml:"log_path,omitempty"`
}

// Default returns an 800x600 window with vsync on and overlays off.
func Default() Prefs {
	vsync := true
	return Prefs{
		Width:   800,
		Height:  600,
		Title:   "Voxel-style cube",
		VSync:   &vsync,
		LogPath: "logs/cube.txt",
	}
}

// VSyncEnabled reports whether presentation waits for the display refresh.
func (p Prefs) VSyncEnabled() bool {
	return p.VSync == nil || *p.VSync
}

// withDefaults fills zero fields from d.
func (p Prefs) withDefaults(d Prefs) Prefs {
	if p.Width <= 0 {
		p.Width = d.Width
	}
	if p.Height <= 0 {
		p.Height = d.Height
	}
	if p.Title == "" {
		p.Title = d.Title
	}
	if p.VSync == nil {
		p.VSync = d.VSync
	}
	if p.LogPath == "" {
		p.LogPath = d.LogPath
	}
	return p
}

// Load reads preferences from path. If the file is missing it returns Default() and a nil error.
// If the file cannot be parsed it returns Default() and the parse error so the caller can log it.
func Load(path string) (Prefs, error) {
	return LoadWithDefaults(path, Default())
}

// LoadWithDefaults is Load with d in place of Default(). Only fields absent from
// the file take d's values; a title set in the file is kept even when it equals Default's.
func LoadWithDefaults(path string, d Prefs) (Prefs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return d, nil
		}
		return d, fmt.Errorf("read %s: %w", path, err)
	}
	var p Prefs
	if err := yaml.Unmarshal(data, &p); err != nil {
		return d, fmt.Errorf("parse %s: %w", path, err)
	}
	return p.withDefaults(d), nil
}

// Save writes preferences to path, creating the directory if needed.
func Save(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
