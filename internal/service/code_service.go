package service

import (
	huerr "github.com/amterp/hue/internal/errors"
	"github.com/amterp/hue/internal/model"
	"github.com/amterp/hue/internal/plotstate"
	"github.com/amterp/hue/internal/store"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultCodePalette is applied when no palette name is given.
const DefaultCodePalette = "accent"

// MetricCodeRemaps counts shorthand code remaps by palette
var MetricCodeRemaps = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "hue_code_remaps_total",
	Help: "Total shorthand code remaps by palette",
}, []string{"palette"})

// CodeAssignment is one shorthand code and the color it was given.
type CodeAssignment struct {
	Code  string      `json:"code"`
	Spec  string      `json:"spec"` // Color as stored in the palette
	Color model.Color `json:"color"`
}

// CodeService remaps the shorthand color codes of a plot state.
type CodeService struct {
	palettes store.PaletteStore
	state    *plotstate.State
}

// NewCodeService creates a new code service.
func NewCodeService(palettes store.PaletteStore, state *plotstate.State) *CodeService {
	return &CodeService{
		palettes: palettes,
		state:    state,
	}
}

// Apply assigns the named palette's first seven colors to b, g, r, m, y, c
// and k, in that order. Shorter palettes are padded with model.KeyColor.
// Every color is converted before anything is written, so a bad color
// leaves the code table untouched. The change is not undone automatically.
func (s *CodeService) Apply(name string) ([]CodeAssignment, error) {
	assignments, err := s.Preview(name)
	if err != nil {
		return nil, err
	}

	for _, a := range assignments {
		if err := s.state.SetCode(a.Code[0], a.Color); err != nil {
			return nil, err
		}
	}

	MetricCodeRemaps.WithLabelValues(name).Inc()
	return assignments, nil
}

// Preview computes what Apply would assign without changing the state.
func (s *CodeService) Preview(name string) ([]CodeAssignment, error) {
	entry, err := s.palettes.Lookup(name)
	if err != nil {
		return nil, err
	}

	specs := CodeSpecs(entry.Colors)

	assignments := make([]CodeAssignment, len(specs))
	for i, spec := range specs {
		c, err := s.state.ToRGB(spec)
		if err != nil {
			return nil, huerr.InvalidColor(entry.Name, spec)
		}
		assignments[i] = CodeAssignment{
			Code:  string(model.ShorthandCodes[i]),
			Spec:  spec,
			Color: c,
		}
	}
	return assignments, nil
}

// CodeSpecs truncates or pads colors to exactly one per shorthand code.
func CodeSpecs(colors []string) []string {
	n := len(model.ShorthandCodes)
	out := make([]string, n)
	for i := range out {
		if i < len(colors) {
			out[i] = colors[i]
		} else {
			out[i] = model.KeyColor
		}
	}
	return out
}
