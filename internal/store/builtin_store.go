package store

import (
	"sort"

	huerr "github.com/amterp/hue/internal/errors"
	"github.com/amterp/hue/internal/model"
	"golang.org/x/text/cases"
)

// FoldName maps a palette name to its case-insensitive lookup key.
// Casers are stateful, so each call gets its own.
func FoldName(name string) string {
	return cases.Fold().String(name)
}

// BuiltinStore serves the static palette table and its aliases.
type BuiltinStore struct {
	folded map[string]string // folded name -> canonical name (palettes and aliases)
}

// NewBuiltinStore indexes model.Palettes and model.Aliases.
func NewBuiltinStore() *BuiltinStore {
	s := &BuiltinStore{
		folded: make(map[string]string, len(model.Palettes)+len(model.Aliases)),
	}
	for name := range model.Palettes {
		s.folded[FoldName(name)] = name
	}
	for alias := range model.Aliases {
		s.folded[FoldName(alias)] = alias
	}
	return s
}

// Lookup finds a built-in palette or alias.
func (s *BuiltinStore) Lookup(name string) (*Entry, error) {
	canonical, ok := s.canonical(name)
	if !ok {
		return nil, huerr.UnknownPalette(name)
	}

	if target, isAlias := model.Aliases[canonical]; isAlias {
		return &Entry{
			Name:    canonical,
			Colors:  append([]string(nil), model.Palettes[target]...),
			Builtin: true,
			AliasOf: target,
		}, nil
	}

	return &Entry{
		Name:    canonical,
		Colors:  append([]string(nil), model.Palettes[canonical]...),
		Builtin: true,
	}, nil
}

func (s *BuiltinStore) canonical(name string) (string, bool) {
	if _, ok := model.Palettes[name]; ok {
		return name, true
	}
	if _, ok := model.Aliases[name]; ok {
		return name, true
	}
	canonical, ok := s.folded[FoldName(name)]
	return canonical, ok
}

// Names lists built-in palettes and aliases, sorted.
func (s *BuiltinStore) Names() []string {
	names := make([]string, 0, len(s.folded))
	for _, name := range s.folded {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Exists reports whether name matches a built-in palette or alias.
func (s *BuiltinStore) Exists(name string) bool {
	_, ok := s.canonical(name)
	return ok
}

// Collides reports the built-in name that name folds onto, if any.
func (s *BuiltinStore) Collides(name string) (string, bool) {
	canonical, ok := s.folded[FoldName(name)]
	return canonical, ok
}

var _ PaletteStore = (*BuiltinStore)(nil)
