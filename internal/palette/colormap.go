package palette

import (
	"math"

	huerr "github.com/amterp/hue/internal/errors"
	"github.com/amterp/hue/internal/model"
)

// Colormap maps scalars in [0,1] onto a fixed list of colors, splitting the
// interval into equal bins.
type Colormap struct {
	Name   string
	colors []model.Color
}

// NewColormap builds a listed colormap from a palette.
func NewColormap(name string, p Palette) (*Colormap, error) {
	if p.Len() == 0 {
		return nil, huerr.EmptyPalette(name)
	}
	return &Colormap{Name: name, colors: p.Colors()}, nil
}

// DDLHeatmap is the listed colormap built from the ddl_heat palette.
func DDLHeatmap() *Colormap {
	specs := model.Palettes["ddl_heat"]
	colors := make([]model.Color, len(specs))
	for i, s := range specs {
		colors[i] = model.MustParseHex(s)
	}
	return &Colormap{Name: "ddl_heat", colors: colors}
}

// N returns the number of bins.
func (m *Colormap) N() int {
	return len(m.colors)
}

// At returns the color for x. Values below 0 (and NaN) map to the first
// color, values at or above 1 to the last.
func (m *Colormap) At(x float64) model.Color {
	n := len(m.colors)
	switch {
	case math.IsNaN(x) || x <= 0:
		return m.colors[0]
	case x >= 1:
		// Checked before the conversion: int() of a huge product overflows.
		return m.colors[n-1]
	}
	return m.colors[min(int(x*float64(n)), n-1)]
}
