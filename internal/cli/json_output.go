package cli

import (
	"encoding/json"
	"fmt"

	"github.com/amterp/hue/internal/palette"
	"github.com/amterp/hue/internal/service"
)

// ListOutput wraps the palette listing for JSON output.
type ListOutput struct {
	Palettes []service.PaletteInfo `json:"palettes"`
}

// NewListOutput creates a ListOutput, never encoding a null list.
func NewListOutput(infos []service.PaletteInfo) ListOutput {
	if infos == nil {
		infos = []service.PaletteInfo{}
	}
	return ListOutput{Palettes: infos}
}

// paletteJson is a resolved palette for JSON output.
type paletteJson struct {
	Name   string          `json:"name,omitempty"`
	Form   string          `json:"form"`
	Size   int             `json:"size"`
	Colors palette.Palette `json:"colors"`
}

// PaletteOutput wraps a single resolved palette for JSON output.
type PaletteOutput struct {
	Palette paletteJson `json:"palette"`
}

// NewPaletteOutput creates a PaletteOutput. An empty name means the
// palette came from the active color cycle.
func NewPaletteOutput(name string, p palette.Palette) PaletteOutput {
	return PaletteOutput{Palette: paletteJson{
		Name:   name,
		Form:   p.Form().String(),
		Size:   p.Len(),
		Colors: p,
	}}
}

// codeJson is one shorthand code assignment for JSON output.
type codeJson struct {
	Code string `json:"code"`
	Spec string `json:"spec"`
	Hex  string `json:"hex"`
}

// CodesOutput wraps a code remap result for JSON output.
type CodesOutput struct {
	Palette string     `json:"palette"`
	Codes   []codeJson `json:"codes"`
}

// NewCodesOutput creates a CodesOutput from the applied assignments.
func NewCodesOutput(name string, assignments []service.CodeAssignment) CodesOutput {
	codes := make([]codeJson, len(assignments))
	for i, a := range assignments {
		codes[i] = codeJson{Code: a.Code, Spec: a.Spec, Hex: a.Color.Hex()}
	}
	return CodesOutput{Palette: name, Codes: codes}
}

// AddOutput reports a newly stored custom palette.
type AddOutput struct {
	Name   string   `json:"name"`
	Colors []string `json:"colors"`
	File   string   `json:"file"`
}

// RemoveOutput reports a removed custom palette.
type RemoveOutput struct {
	Removed string `json:"removed"`
}

// InitOutput reports the palette file created by init.
type InitOutput struct {
	File    string `json:"file"`
	Created bool   `json:"created"`
}

func printJson(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(output))
	return nil
}

// warnJsonNotSupported prints a warning to stderr when --json is used on an unsupported command.
func warnJsonNotSupported(command string) {
	PrintWarning("--json is not supported for '%s' (flag ignored)", command)
}
