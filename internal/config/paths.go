package config

import (
	"os"
	"path/filepath"
)

const (
	DefaultHueDir   = ".hue"
	PaletteFileName = "palettes.toml"
	GlobalConfigDir = ".config/hue"
)

// Paths provides path resolution for a project's hue data.
type Paths struct {
	projectRoot string
}

// NewPaths creates a new Paths resolver for the given project.
func NewPaths(projectRoot string) *Paths {
	return &Paths{projectRoot: projectRoot}
}

// ProjectRoot returns the directory containing .hue/.
func (p *Paths) ProjectRoot() string {
	return p.projectRoot
}

// HueRoot returns the project's .hue directory.
func (p *Paths) HueRoot() string {
	return filepath.Join(p.projectRoot, DefaultHueDir)
}

// PaletteFilePath returns the project palette file.
func (p *Paths) PaletteFilePath() string {
	return filepath.Join(p.HueRoot(), PaletteFileName)
}

// GlobalPaletteFilePath returns the path to the global palette file.
func GlobalPaletteFilePath() string {
	dir := GlobalConfigDirPath()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, PaletteFileName)
}

// GlobalConfigDirPath returns the directory for global config.
func GlobalConfigDirPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, GlobalConfigDir)
}
