package service

import (
	"sort"

	huerr "github.com/amterp/hue/internal/errors"
	"github.com/amterp/hue/internal/id"
	"github.com/amterp/hue/internal/store"
	"github.com/amterp/hue/internal/util"
)

// PaletteInfo summarizes a palette for listings.
type PaletteInfo struct {
	Name    string `json:"name"`
	Size    int    `json:"size"`
	Builtin bool   `json:"builtin"`
	AliasOf string `json:"alias_of,omitempty"`
}

// PaletteService manages custom palettes on top of the registry.
type PaletteService struct {
	registry *store.Registry
}

// NewPaletteService creates a new palette service.
func NewPaletteService(registry *store.Registry) *PaletteService {
	return &PaletteService{registry: registry}
}

// List returns every palette, built-in and custom, sorted by name.
func (s *PaletteService) List() ([]PaletteInfo, error) {
	names := s.registry.Names()
	infos := make([]PaletteInfo, 0, len(names))
	for _, name := range names {
		entry, err := s.registry.Lookup(name)
		if err != nil {
			return nil, err
		}
		infos = append(infos, PaletteInfo{
			Name:    entry.Name,
			Size:    len(entry.Colors),
			Builtin: entry.Builtin,
			AliasOf: entry.AliasOf,
		})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos, nil
}

// Get returns the stored entry for name.
func (s *PaletteService) Get(name string) (*store.Entry, error) {
	return s.registry.Lookup(name)
}

// Add stores a custom palette and returns the name it was saved under.
// The name is slugged; an empty name gets a generated one.
func (s *PaletteService) Add(name string, colors []string) (string, error) {
	slug := util.Slugify(name)
	if slug == "" {
		if name != "" {
			return "", huerr.InvalidField("name", "must contain at least one letter or digit")
		}
		slug = id.PaletteName(s.registry.Exists)
	}

	if err := s.registry.AddCustom(slug, colors); err != nil {
		return "", err
	}
	return slug, nil
}

// Replace overwrites a custom palette's colors.
func (s *PaletteService) Replace(name string, colors []string) error {
	if s.registry.IsBuiltin(name) {
		return huerr.InvalidField("name", "built-in palettes cannot be edited; add a copy instead")
	}
	return s.registry.ReplaceCustom(name, colors)
}

// Remove deletes a custom palette and returns its canonical name.
func (s *PaletteService) Remove(name string) (string, error) {
	if s.registry.IsBuiltin(name) {
		return "", huerr.InvalidField("name", "built-in palettes cannot be removed")
	}
	return s.registry.RemoveCustom(name)
}
