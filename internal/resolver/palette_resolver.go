package resolver

import (
	huerr "github.com/amterp/hue/internal/errors"
	"github.com/amterp/hue/internal/model"
	"github.com/amterp/hue/internal/palette"
	"github.com/amterp/hue/internal/plotstate"
	"github.com/amterp/hue/internal/store"
)

// PaletteResolver turns selectors into fixed-length RGB palettes.
type PaletteResolver struct {
	palettes store.PaletteStore
	state    *plotstate.State
}

// NewPaletteResolver creates a resolver that reads named palettes from
// palettes and the active cycle and code colors from state.
func NewPaletteResolver(palettes store.PaletteStore, state *plotstate.State) *PaletteResolver {
	return &PaletteResolver{
		palettes: palettes,
		state:    state,
	}
}

type options struct {
	length    int
	hasLength bool
}

// Option adjusts a single Resolve call.
type Option func(*options)

// WithLength requests exactly n colors, cycling the source as needed.
func WithLength(n int) Option {
	return func(o *options) {
		o.length = n
		o.hasLength = true
	}
}

// Resolve produces an RGB palette from the selector:
// 1. Current reads the state's cycle, Named consults the registry, literals are used as given
// 2. An empty source fails, even when zero colors are requested
// 3. The source is cycled to the requested length (default: source length)
// 4. Every color is normalized; the first bad one aborts the whole call
func (r *PaletteResolver) Resolve(sel Selector, opts ...Option) (palette.Palette, error) {
	p, err := r.resolve(sel, opts)
	if err != nil {
		MetricResolveErrors.WithLabelValues(errorType(err)).Inc()
		return palette.Palette{}, err
	}
	MetricResolves.WithLabelValues(sel.Kind().String()).Inc()
	return p, nil
}

func (r *PaletteResolver) resolve(sel Selector, opts []Option) (palette.Palette, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.hasLength && o.length < 0 {
		return palette.Palette{}, huerr.InvalidField("length", "must not be negative")
	}

	source := sel.String()

	if sel.kind == KindCurrent || sel.kind == KindLiteralRGB {
		colors := sel.rgb
		if sel.kind == KindCurrent {
			colors = r.state.Cycle()
		}
		if len(colors) == 0 {
			return palette.Palette{}, huerr.EmptyPalette(source)
		}
		n := lengthOr(o, len(colors))
		out := make([]model.Color, n)
		for i := range out {
			c := colors[i%len(colors)]
			if !c.Valid() {
				return palette.Palette{}, huerr.InvalidColor(source, c.String())
			}
			out[i] = c
		}
		return palette.New(out), nil
	}

	specs := sel.specs
	if sel.kind == KindNamed {
		entry, err := r.palettes.Lookup(sel.name)
		if err != nil {
			return palette.Palette{}, err
		}
		specs = entry.Colors
	}
	if len(specs) == 0 {
		return palette.Palette{}, huerr.EmptyPalette(source)
	}

	n := lengthOr(o, len(specs))
	out := make([]model.Color, n)
	for i := range out {
		c, err := r.state.ToRGB(specs[i%len(specs)])
		if err != nil {
			return palette.Palette{}, huerr.InvalidColor(source, specs[i%len(specs)])
		}
		out[i] = c
	}
	return palette.New(out), nil
}

func lengthOr(o options, def int) int {
	if o.hasLength {
		return o.length
	}
	return def
}

func errorType(err error) string {
	switch {
	case huerr.IsUnknownPalette(err):
		return "unknown_palette"
	case huerr.IsInvalidColor(err):
		return "invalid_color"
	case huerr.IsValidationError(err):
		return "validation"
	}
	return "other"
}
