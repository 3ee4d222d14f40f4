package store

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	huerr "github.com/amterp/hue/internal/errors"
	"github.com/amterp/hue/internal/model"
	"github.com/amterp/hue/internal/plotstate"
	"github.com/amterp/hue/internal/version"
)

// FileStore implements SettingsStore using a palettes.toml file.
type FileStore struct {
	path string
}

// NewFileStore creates a store for the palette file at path.
// An empty path gives a store that is always empty and never writes.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the palette file location.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the palette file from disk.
// Returns an empty file if it doesn't exist.
func (s *FileStore) Load() (*model.PaletteFile, error) {
	if s.path == "" {
		return &model.PaletteFile{}, nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &model.PaletteFile{}, nil
		}
		return nil, err
	}

	var f model.PaletteFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, err
	}

	// Strict version validation (only if file exists)
	if f.HueSchema == "" {
		return nil, version.MissingPaletteFileSchema(s.path)
	}
	if f.HueSchema != version.CurrentPaletteFileSchema() {
		return nil, version.InvalidPaletteFileSchema(s.path, f.HueSchema)
	}

	for _, name := range f.PaletteNames() {
		if err := ValidateColors(name, f.Palettes[name]); err != nil {
			return nil, err
		}
	}

	return &f, nil
}

// Save writes the palette file through a temp file renamed over the
// target, so a watcher never sees a half-written file.
func (s *FileStore) Save(f *model.PaletteFile) error {
	// Stamp current schema version
	f.HueSchema = version.CurrentPaletteFileSchema()

	if s.path == "" {
		return nil
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".palettes-*.toml")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return err
	}
	if err := toml.NewEncoder(tmp).Encode(f); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}

// EnsureExists creates the palette file if it doesn't exist.
func (s *FileStore) EnsureExists() error {
	if s.path == "" {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return s.Save(&model.PaletteFile{})
	}
	return nil
}

// ValidateColors checks that a palette has at least one color and that
// every color is a spec plotstate can convert.
func ValidateColors(name string, colors []string) error {
	if len(colors) == 0 {
		return huerr.EmptyPalette(name)
	}
	for _, c := range colors {
		if !plotstate.ValidSpec(c) {
			return huerr.InvalidColor(name, c)
		}
	}
	return nil
}

var _ SettingsStore = (*FileStore)(nil)
