package service

import (
	"fmt"
	"os"

	"github.com/amterp/hue/internal/config"
	"github.com/amterp/hue/internal/store"
)

// InitService creates project palette files.
type InitService struct{}

// NewInitService creates a new init service.
func NewInitService() *InitService {
	return &InitService{}
}

// Initialize creates .hue/palettes.toml under projectRoot and returns its
// path. An existing file is left untouched; created reports which happened.
func (s *InitService) Initialize(projectRoot string) (path string, created bool, err error) {
	paths := config.NewPaths(projectRoot)
	path = paths.PaletteFilePath()

	if _, err := os.Stat(path); err == nil {
		return path, false, nil
	}

	if err := os.MkdirAll(paths.HueRoot(), 0755); err != nil {
		return "", false, fmt.Errorf("failed to create directory: %w", err)
	}

	if err := store.NewFileStore(path).EnsureExists(); err != nil {
		return "", false, fmt.Errorf("failed to create palette file: %w", err)
	}
	return path, true, nil
}
