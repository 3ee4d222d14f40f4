// Package plotstate holds the mutable plotting state that palettes are
// applied to: the active color cycle and the shorthand color code table.
//
// A State is owned by its caller and is not safe for concurrent use. Give
// each goroutine (or each request) its own State.
package plotstate

import (
	"fmt"
	"strings"

	huerr "github.com/amterp/hue/internal/errors"
	"github.com/amterp/hue/internal/model"
	"golang.org/x/image/colornames"
)

// DefaultCycle is the color cycle a fresh State starts with.
var DefaultCycle = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

// DefaultCodePalette names the palette whose colors a fresh State binds to
// the shorthand codes.
const DefaultCodePalette = "reset"

// CodeColor is one entry of the shorthand code table.
type CodeColor struct {
	Code  string      `json:"code"`
	Color model.Color `json:"color"`
}

// State is the active color cycle plus the shorthand code table. The code
// table has a primary view and a cache view; SetCode keeps them in sync.
type State struct {
	cycle []model.Color
	codes map[byte]model.Color
	cache map[byte]model.Color
}

// New creates a State with the default cycle and the default code colors.
func New() *State {
	s := &State{
		codes: make(map[byte]model.Color, len(model.ShorthandCodes)),
		cache: make(map[byte]model.Color, len(model.ShorthandCodes)),
	}

	for _, hex := range DefaultCycle {
		s.cycle = append(s.cycle, model.MustParseHex(hex))
	}

	for i, hex := range model.Palettes[DefaultCodePalette] {
		c := model.MustParseHex(hex)
		s.codes[model.ShorthandCodes[i]] = c
		s.cache[model.ShorthandCodes[i]] = c
	}

	return s
}

// Cycle returns a copy of the active color cycle.
func (s *State) Cycle() []model.Color {
	return append([]model.Color(nil), s.cycle...)
}

// SetCycle installs a copy of colors as the active color cycle.
func (s *State) SetCycle(colors []model.Color) {
	s.cycle = append([]model.Color(nil), colors...)
}

// IsCode reports whether code is one of the shorthand codes.
func IsCode(code byte) bool {
	return strings.IndexByte(model.ShorthandCodes, code) >= 0
}

// Code returns the primary view's color for a shorthand code.
func (s *State) Code(code byte) (model.Color, bool) {
	c, ok := s.codes[code]
	return c, ok
}

// CachedCode returns the cache view's color for a shorthand code.
func (s *State) CachedCode(code byte) (model.Color, bool) {
	c, ok := s.cache[code]
	return c, ok
}

// SetCode binds a shorthand code to a color in both views.
func (s *State) SetCode(code byte, c model.Color) error {
	if !IsCode(code) {
		return huerr.InvalidField("code", fmt.Sprintf("%q is not one of %s", code, model.ShorthandCodes))
	}
	if !c.Valid() {
		return huerr.InvalidColor("", c.String())
	}
	s.codes[code] = c
	s.cache[code] = c
	return nil
}

// Codes returns the primary code table in bgrmyck order.
func (s *State) Codes() []CodeColor {
	out := make([]CodeColor, 0, len(model.ShorthandCodes))
	for i := 0; i < len(model.ShorthandCodes); i++ {
		code := model.ShorthandCodes[i]
		out = append(out, CodeColor{Code: string(code), Color: s.codes[code]})
	}
	return out
}

// ToRGB converts a color spec to a normalized RGB color. Accepted specs are
// a shorthand code letter, a #RRGGBB or #RGB hex string, or a CSS color name.
func (s *State) ToRGB(spec string) (model.Color, error) {
	if len(spec) == 1 && IsCode(spec[0]) {
		if c, ok := s.cache[spec[0]]; ok {
			return c, nil
		}
		if c, ok := s.codes[spec[0]]; ok {
			return c, nil
		}
	}

	if strings.HasPrefix(spec, "#") {
		c, err := model.ParseHex(spec)
		if err != nil {
			return model.Color{}, huerr.InvalidColor("", spec)
		}
		return c, nil
	}

	if named, ok := colornames.Map[strings.ToLower(spec)]; ok {
		const factor = 1.0 / 255.0
		return model.Color{
			R: float64(named.R) * factor,
			G: float64(named.G) * factor,
			B: float64(named.B) * factor,
		}, nil
	}

	return model.Color{}, huerr.InvalidColor("", spec)
}

// ToHex converts a color to its #rrggbb form.
func ToHex(c model.Color) string {
	return c.Hex()
}

// ValidSpec reports whether ToRGB accepts spec, without needing a State.
func ValidSpec(spec string) bool {
	if len(spec) == 1 {
		return IsCode(spec[0])
	}
	if strings.HasPrefix(spec, "#") {
		return model.IsHex(spec)
	}
	_, ok := colornames.Map[strings.ToLower(spec)]
	return ok
}
