package palette

import (
	"encoding/json"
	"fmt"
	"iter"
	"strings"

	huerr "github.com/amterp/hue/internal/errors"
	"github.com/amterp/hue/internal/model"
)

// Form is how a palette's colors are presented: RGB tuples or hex strings.
type Form int

const (
	FormRGB Form = iota
	FormHex
)

func (f Form) String() string {
	if f == FormHex {
		return "hex"
	}
	return "rgb"
}

// ParseForm maps "rgb" or "hex" (or empty, meaning rgb) to a Form.
func ParseForm(s string) (Form, error) {
	switch strings.ToLower(s) {
	case "", "rgb":
		return FormRGB, nil
	case "hex":
		return FormHex, nil
	}
	return FormRGB, huerr.InvalidField("format", fmt.Sprintf("%q (expected rgb or hex)", s))
}

// Palette is an ordered, read-only sequence of colors. Every Palette owns
// its colors; nothing handed out by its methods aliases them.
type Palette struct {
	colors []model.Color
	form   Form
}

// New creates an RGB-form palette holding a copy of colors.
func New(colors []model.Color) Palette {
	return Palette{colors: append([]model.Color(nil), colors...), form: FormRGB}
}

// Len returns the number of colors.
func (p Palette) Len() int {
	return len(p.colors)
}

// At returns the i-th color. Panics if i is out of range.
func (p Palette) At(i int) model.Color {
	return p.colors[i]
}

// Colors returns a copy of the colors.
func (p Palette) Colors() []model.Color {
	return append([]model.Color(nil), p.colors...)
}

// All iterates over the colors in order.
func (p Palette) All() iter.Seq2[int, model.Color] {
	return func(yield func(int, model.Color) bool) {
		for i, c := range p.colors {
			if !yield(i, c) {
				return
			}
		}
	}
}

// Form reports whether the palette presents as RGB tuples or hex strings.
func (p Palette) Form() Form {
	return p.form
}

// Hex returns every color as a #rrggbb string.
func (p Palette) Hex() []string {
	out := make([]string, len(p.colors))
	for i, c := range p.colors {
		out[i] = c.Hex()
	}
	return out
}

// AsHex returns a new palette in hex form. Colors are quantized to one byte
// per channel, so AsHex().AsRGB() can differ from the receiver by up to 1/255.
func (p Palette) AsHex() Palette {
	out := make([]model.Color, len(p.colors))
	for i, c := range p.colors {
		out[i] = c.Quantize()
	}
	return Palette{colors: out, form: FormHex}
}

// AsRGB returns a new palette in RGB form.
func (p Palette) AsRGB() Palette {
	return Palette{colors: p.Colors(), form: FormRGB}
}

// Specs renders each color in the palette's form.
func (p Palette) Specs() []string {
	if p.form == FormHex {
		return p.Hex()
	}
	out := make([]string, len(p.colors))
	for i, c := range p.colors {
		out[i] = c.String()
	}
	return out
}

func (p Palette) String() string {
	return "[" + strings.Join(p.Specs(), ", ") + "]"
}

// MarshalJSON encodes hex palettes as strings and RGB palettes as
// [r, g, b] triples.
func (p Palette) MarshalJSON() ([]byte, error) {
	if p.form == FormHex {
		return json.Marshal(p.Hex())
	}
	triples := make([][3]float64, len(p.colors))
	for i, c := range p.colors {
		triples[i] = [3]float64{c.R, c.G, c.B}
	}
	return json.Marshal(triples)
}
