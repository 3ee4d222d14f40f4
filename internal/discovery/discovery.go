package discovery

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/amterp/hue/internal/config"
)

// Source says where the palette file in use came from.
type Source string

const (
	SourceEnv     Source = "env"     // HUE_CONFIG
	SourceProject Source = "project" // .hue/palettes.toml found by walking up
	SourceGlobal  Source = "global"  // ~/.config/hue/palettes.toml
)

// Result contains the discovered project root, if any.
type Result struct {
	ProjectRoot string // Absolute path to the directory containing .hue/
}

// DiscoverProjectFrom finds the nearest ancestor of startDir (inclusive)
// that contains a .hue directory.
func DiscoverProjectFrom(startDir string) (*Result, error) {
	absStart, err := filepath.Abs(startDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	dir := absStart
	for {
		hueDir := filepath.Join(dir, config.DefaultHueDir)
		if info, err := os.Stat(hueDir); err == nil && info.IsDir() {
			return &Result{ProjectRoot: dir}, nil
		}

		// Move up to parent
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root, no project found
			return nil, nil
		}
		dir = parent
	}
}

// PaletteFile picks the palette file to use:
// 1. override (HUE_CONFIG), if set
// 2. .hue/palettes.toml in the nearest project above startDir
// 3. the global palette file
func PaletteFile(startDir, override string) (string, Source, error) {
	if override != "" {
		return override, SourceEnv, nil
	}

	result, err := DiscoverProjectFrom(startDir)
	if err != nil {
		return "", "", err
	}
	if result != nil {
		return config.NewPaths(result.ProjectRoot).PaletteFilePath(), SourceProject, nil
	}

	return config.GlobalPaletteFilePath(), SourceGlobal, nil
}
