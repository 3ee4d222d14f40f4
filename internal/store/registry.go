package store

import (
	"sort"
	"sync"

	huerr "github.com/amterp/hue/internal/errors"
	"github.com/amterp/hue/internal/model"
)

// Registry layers custom palettes from a palette file over the built-ins.
// It is safe for concurrent use; the preview server reloads it from the
// file watcher while handlers read from it.
type Registry struct {
	mu       sync.RWMutex
	builtins *BuiltinStore
	file     SettingsStore
	settings *model.PaletteFile
	folded   map[string]string // folded custom name -> custom name
}

// NewRegistry loads the palette file and returns a registry over it.
func NewRegistry(file SettingsStore) (*Registry, error) {
	r := &Registry{
		builtins: NewBuiltinStore(),
		file:     file,
	}
	if err := r.Reload(); err != nil {
		return nil, err
	}
	return r, nil
}

// Reload re-reads the palette file. On error the previous contents stay.
func (r *Registry) Reload() error {
	f, err := r.file.Load()
	if err != nil {
		return err
	}

	folded := make(map[string]string, len(f.Palettes))
	for _, name := range f.PaletteNames() {
		if builtin, ok := r.builtins.Collides(name); ok {
			return huerr.PaletteAlreadyExists(builtin)
		}
		key := FoldName(name)
		if other, ok := folded[key]; ok {
			return huerr.PaletteAlreadyExists(other)
		}
		folded[key] = name
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings = f
	r.folded = folded
	return nil
}

// Lookup checks exact built-in, exact custom, then folded built-in and
// folded custom names.
func (r *Registry) Lookup(name string) (*Entry, error) {
	if _, ok := model.Palettes[name]; ok {
		return r.builtins.Lookup(name)
	}
	if _, ok := model.Aliases[name]; ok {
		return r.builtins.Lookup(name)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if colors, ok := r.settings.Palettes[name]; ok {
		return customEntry(name, colors), nil
	}
	if r.builtins.Exists(name) {
		return r.builtins.Lookup(name)
	}
	if custom, ok := r.folded[FoldName(name)]; ok {
		return customEntry(custom, r.settings.Palettes[custom]), nil
	}
	return nil, huerr.UnknownPalette(name)
}

func customEntry(name string, colors []string) *Entry {
	return &Entry{
		Name:   name,
		Colors: append([]string(nil), colors...),
	}
}

// Names lists built-in, alias and custom names, sorted.
func (r *Registry) Names() []string {
	names := r.builtins.Names()

	r.mu.RLock()
	names = append(names, r.settings.PaletteNames()...)
	r.mu.RUnlock()

	sort.Strings(names)
	return names
}

// Exists reports whether Lookup would succeed.
func (r *Registry) Exists(name string) bool {
	_, err := r.Lookup(name)
	return err == nil
}

// IsBuiltin reports whether name resolves to a built-in palette or alias.
func (r *Registry) IsBuiltin(name string) bool {
	return r.builtins.Exists(name)
}

// Settings returns a copy of the loaded palette file's settings.
func (r *Registry) Settings() model.PaletteFile {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f := *r.settings
	f.Palettes = nil
	for _, name := range r.settings.PaletteNames() {
		f.SetPalette(name, r.settings.Palettes[name])
	}
	return f
}

// Path returns the backing palette file location.
func (r *Registry) Path() string {
	return r.file.Path()
}

// AddCustom stores a new custom palette. The name must not fold onto any
// existing built-in, alias or custom name.
func (r *Registry) AddCustom(name string, colors []string) error {
	if name == "" {
		return huerr.InvalidField("name", "palette name cannot be empty")
	}
	if err := ValidateColors(name, colors); err != nil {
		return err
	}
	if builtin, ok := r.builtins.Collides(name); ok {
		return huerr.PaletteAlreadyExists(builtin)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := FoldName(name)
	if existing, ok := r.folded[key]; ok {
		return huerr.PaletteAlreadyExists(existing)
	}

	next := r.cloneSettings()
	next.SetPalette(name, colors)
	if err := r.file.Save(next); err != nil {
		return err
	}
	r.settings = next
	r.folded[key] = name
	return nil
}

// ReplaceCustom overwrites the colors of an existing custom palette.
func (r *Registry) ReplaceCustom(name string, colors []string) error {
	if err := ValidateColors(name, colors); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	canonical, ok := r.customName(name)
	if !ok {
		return huerr.UnknownPalette(name)
	}

	next := r.cloneSettings()
	next.SetPalette(canonical, colors)
	if err := r.file.Save(next); err != nil {
		return err
	}
	r.settings = next
	return nil
}

// RemoveCustom deletes a custom palette and returns its canonical name.
func (r *Registry) RemoveCustom(name string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	canonical, ok := r.customName(name)
	if !ok {
		return "", huerr.UnknownPalette(name)
	}

	next := r.cloneSettings()
	next.RemovePalette(canonical)
	if err := r.file.Save(next); err != nil {
		return "", err
	}
	r.settings = next
	delete(r.folded, FoldName(canonical))
	return canonical, nil
}

// customName resolves name to a custom palette key. Caller holds mu.
func (r *Registry) customName(name string) (string, bool) {
	if _, ok := r.settings.Palettes[name]; ok {
		return name, true
	}
	canonical, ok := r.folded[FoldName(name)]
	return canonical, ok
}

// cloneSettings copies the settings so a failed save leaves them untouched.
// Caller holds mu.
func (r *Registry) cloneSettings() *model.PaletteFile {
	next := *r.settings
	next.Palettes = make(map[string][]string, len(r.settings.Palettes)+1)
	for name, colors := range r.settings.Palettes {
		next.Palettes[name] = colors
	}
	return &next
}

var _ PaletteStore = (*Registry)(nil)
