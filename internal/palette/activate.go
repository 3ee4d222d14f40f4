package palette

import (
	"sync"

	"github.com/amterp/hue/internal/model"
	"github.com/amterp/hue/internal/plotstate"
)

// Activation is a palette installed as a State's color cycle. Restore puts
// back whatever cycle was active when Activate was called.
type Activation struct {
	state   *plotstate.State
	saved   []model.Color
	palette Palette
	once    sync.Once
}

// Activate snapshots the state's current cycle and installs p in its place.
// Callers must Restore the returned Activation, usually with defer.
func (p Palette) Activate(state *plotstate.State) *Activation {
	a := &Activation{
		state:   state,
		saved:   state.Cycle(),
		palette: p,
	}
	state.SetCycle(p.colors)
	return a
}

// Palette returns the palette that was activated.
func (a *Activation) Palette() Palette {
	return a.palette
}

// Restore reinstalls the cycle captured by Activate. Only the first call
// has any effect.
func (a *Activation) Restore() {
	a.once.Do(func() {
		a.state.SetCycle(a.saved)
	})
}

// Use runs fn with p as the state's active cycle. The previous cycle is
// restored when fn returns, errors or panics.
func Use(state *plotstate.State, p Palette, fn func(Palette) error) error {
	a := p.Activate(state)
	defer a.Restore()
	return fn(a.Palette())
}
