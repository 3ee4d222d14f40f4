package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/amterp/hue/internal/config"
	"github.com/amterp/hue/internal/model"
	"github.com/amterp/hue/internal/store"
)

// TestPaletteFile returns a palette file holding the given custom palettes.
func TestPaletteFile(palettes map[string][]string) *model.PaletteFile {
	f := &model.PaletteFile{}
	for name, colors := range palettes {
		f.SetPalette(name, colors)
	}
	return f
}

// TempHueDir creates a temporary project with an empty .hue directory.
// Returns the project root. The directory is removed when the test ends.
func TempHueDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, config.DefaultHueDir), 0755); err != nil {
		t.Fatalf("failed to create .hue dir: %v", err)
	}
	return dir
}

// WritePaletteFile writes raw TOML content to path, creating parent dirs.
func WritePaletteFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write palette file: %v", err)
	}
}

// TempRegistry saves the given custom palettes to a palette file in a temp
// directory and returns a registry over it along with the file path.
func TempRegistry(t *testing.T, palettes map[string][]string) (*store.Registry, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), config.PaletteFileName)
	if len(palettes) > 0 {
		if err := store.NewFileStore(path).Save(TestPaletteFile(palettes)); err != nil {
			t.Fatalf("failed to save palette file: %v", err)
		}
	}

	registry, err := store.NewRegistry(store.NewFileStore(path))
	if err != nil {
		t.Fatalf("failed to create registry: %v", err)
	}
	return registry, path
}
