package service

import (
	"fmt"

	"github.com/amterp/hue/internal/plotstate"
	"github.com/amterp/hue/internal/resolver"
	"github.com/amterp/hue/internal/store"
)

// NewSession builds a fresh plot state with the configured defaults in
// place: defaultPalette as the color cycle and codePalette on the
// shorthand codes. Either may be empty to keep the built-in defaults.
func NewSession(palettes store.PaletteStore, defaultPalette, codePalette string) (*plotstate.State, error) {
	state := plotstate.New()

	if defaultPalette != "" {
		p, err := resolver.NewPaletteResolver(palettes, state).Resolve(resolver.Named(defaultPalette))
		if err != nil {
			return nil, fmt.Errorf("default_palette: %w", err)
		}
		state.SetCycle(p.Colors())
	}

	if codePalette != "" {
		if _, err := NewCodeService(palettes, state).Apply(codePalette); err != nil {
			return nil, fmt.Errorf("code_palette: %w", err)
		}
	}

	return state, nil
}
