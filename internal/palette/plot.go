package palette

import (
	"fmt"
	"io"
	"strings"

	huerr "github.com/amterp/hue/internal/errors"
	"github.com/charmbracelet/lipgloss"
)

// Plot writes the palette as a horizontal strip of swatches, size rows
// tall, followed by a row of index labels. Each swatch is 2*size cells
// wide. Color output follows the writer's terminal capabilities.
func (p Palette) Plot(w io.Writer, size int) error {
	if size < 1 {
		return huerr.InvalidField("size", fmt.Sprintf("must be at least 1, got %d", size))
	}

	r := lipgloss.NewRenderer(w)
	width := 2 * size
	fill := strings.Repeat(" ", width)

	cells := make([]string, len(p.colors))
	labels := make([]string, len(p.colors))
	for i, c := range p.colors {
		cells[i] = r.NewStyle().Background(lipgloss.Color(c.Hex())).Render(fill)
		labels[i] = r.NewStyle().Width(width).Render(fmt.Sprintf("%d", i))
	}

	row := strings.Join(cells, "")
	var b strings.Builder
	for i := 0; i < size; i++ {
		b.WriteString(row)
		b.WriteString("\n")
	}
	b.WriteString(strings.Join(labels, ""))
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}
