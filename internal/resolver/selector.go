package resolver

import (
	"fmt"
	"strings"

	"github.com/amterp/hue/internal/model"
)

// Kind identifies where a selector takes its colors from.
type Kind int

const (
	KindCurrent Kind = iota
	KindNamed
	KindLiteral
	KindLiteralRGB
)

func (k Kind) String() string {
	switch k {
	case KindCurrent:
		return "current"
	case KindNamed:
		return "named"
	case KindLiteral:
		return "literal"
	case KindLiteralRGB:
		return "literal_rgb"
	}
	return "unknown"
}

// Selector picks the source colors for a resolution.
type Selector struct {
	kind  Kind
	name  string
	specs []string
	rgb   []model.Color
}

// Current selects the state's active color cycle.
func Current() Selector {
	return Selector{kind: KindCurrent}
}

// Named selects a palette from the registry.
func Named(name string) Selector {
	return Selector{kind: KindNamed, name: name}
}

// Literal selects an explicit list of color specs (hex, code letter or CSS name).
func Literal(specs ...string) Selector {
	return Selector{kind: KindLiteral, specs: append([]string(nil), specs...)}
}

// LiteralRGB selects an explicit list of RGB colors.
func LiteralRGB(colors ...model.Color) Selector {
	return Selector{kind: KindLiteralRGB, rgb: append([]model.Color(nil), colors...)}
}

// Kind returns the selector kind.
func (s Selector) Kind() Kind {
	return s.kind
}

// String names the source the way error messages refer to it.
func (s Selector) String() string {
	switch s.kind {
	case KindNamed:
		return s.name
	case KindLiteral:
		return "[" + strings.Join(s.specs, ", ") + "]"
	case KindLiteralRGB:
		parts := make([]string, len(s.rgb))
		for i, c := range s.rgb {
			parts[i] = c.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}
	return fmt.Sprintf("%s cycle", s.kind)
}
