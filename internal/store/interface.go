package store

import "github.com/amterp/hue/internal/model"

// Entry is a palette as stored, before any resolution.
type Entry struct {
	Name    string   // Canonical name as it appears in the table or file
	Colors  []string // Color specs in table order
	Builtin bool
	AliasOf string // Set when Name is an alias for another built-in palette
}

// PaletteStore looks palettes up by name.
type PaletteStore interface {
	// Lookup finds a palette by exact name first, then case-insensitively.
	Lookup(name string) (*Entry, error)

	// Names lists every palette name, sorted.
	Names() []string

	// Exists reports whether Lookup would succeed.
	Exists(name string) bool
}

// SettingsStore handles palette file persistence.
type SettingsStore interface {
	Load() (*model.PaletteFile, error)
	Save(file *model.PaletteFile) error
	EnsureExists() error
	Path() string
}
