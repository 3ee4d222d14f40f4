package model

import "sort"

// PaletteFile represents a palettes.toml file: user settings plus custom palettes.
// Stored at ~/.config/hue/palettes.toml or <project>/.hue/palettes.toml
// Schema changes require a version bump in internal/version/version.go.
type PaletteFile struct {
	HueSchema      string              `toml:"hue_schema"`
	DefaultPalette string              `toml:"default_palette,omitempty"` // Installed as the active cycle on startup
	CodePalette    string              `toml:"code_palette,omitempty"`    // Applied to the shorthand codes on startup
	Editor         string              `toml:"editor,omitempty"`
	Palettes       map[string][]string `toml:"palettes,omitempty"` // name -> colors
}

// SetPalette adds or replaces a custom palette.
func (f *PaletteFile) SetPalette(name string, colors []string) {
	if f.Palettes == nil {
		f.Palettes = make(map[string][]string)
	}
	f.Palettes[name] = append([]string(nil), colors...)
}

// RemovePalette deletes a custom palette. Returns false if it wasn't there.
func (f *PaletteFile) RemovePalette(name string) bool {
	if _, ok := f.Palettes[name]; !ok {
		return false
	}
	delete(f.Palettes, name)
	return true
}

// PaletteNames returns the custom palette names in sorted order.
func (f *PaletteFile) PaletteNames() []string {
	names := make([]string, 0, len(f.Palettes))
	for name := range f.Palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
