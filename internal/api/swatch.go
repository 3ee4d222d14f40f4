package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/amterp/hue/internal/palette"
)

// PaletteSVG renders a palette as a row of rounded squares, each labeled
// with its index below.
func PaletteSVG(p palette.Palette, cell int) string {
	const gap = 4
	labelHeight := cell / 2
	width := p.Len()*(cell+gap) + gap
	height := cell + labelHeight + 2*gap

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`, width, height, width, height)
	for i, c := range p.All() {
		x := gap + i*(cell+gap)
		fmt.Fprintf(&b, `<rect x="%d" y="%d" width="%d" height="%d" rx="%d" fill="%s"/>`, x, gap, cell, cell, cell/8, c.Hex())
		fmt.Fprintf(&b,
			`<text x="%d" y="%d" text-anchor="middle" font-family="system-ui, -apple-system, sans-serif" font-size="%d" fill="#6b7280">%d</text>`,
			x+cell/2, gap+cell+labelHeight, labelHeight*3/4, i,
		)
	}
	b.WriteString(`</svg>`)
	return b.String()
}

// FaviconSVG splits a 32x32 tile into quadrants filled with the first four
// colors, repeating colors when there are fewer.
func FaviconSVG(p palette.Palette) string {
	var b strings.Builder
	b.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 32 32">`)
	b.WriteString(`<clipPath id="r"><rect width="32" height="32" rx="6"/></clipPath><g clip-path="url(#r)">`)
	for i := 0; i < 4 && p.Len() > 0; i++ {
		c := p.At(i % p.Len())
		fmt.Fprintf(&b, `<rect x="%d" y="%d" width="16" height="16" fill="%s"/>`, (i%2)*16, (i/2)*16, c.Hex())
	}
	b.WriteString(`</g></svg>`)
	return b.String()
}

func writeSVG(w http.ResponseWriter, svg string) {
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "no-cache")
	w.Write([]byte(svg))
}
