package cli

import (
	"fmt"

	"github.com/amterp/hue/internal/service"
	"github.com/amterp/ra"
	"github.com/fatih/color"
)

func registerCodes(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("codes")
	cmd.SetDescription("Remap the single-letter color codes to a palette and show the result")

	ctx.CodesPalette, _ = ra.NewString("palette").
		SetOptional(true).
		SetUsage("Palette to apply to the codes (default: accent)").
		SetCompletionFunc(completePalettes).
		Register(cmd)

	ctx.CodesUsed, _ = parent.RegisterCmd(cmd)
}

func runCodes(name string, jsonOutput bool) {
	if name == "" {
		name = service.DefaultCodePalette
	}

	app, err := NewApp(false)
	if err != nil {
		Fatal(err)
	}

	assignments, err := app.CodeService.Apply(name)
	if err != nil {
		Fatal(err)
	}

	if jsonOutput {
		if err := printJson(NewCodesOutput(name, assignments)); err != nil {
			Fatal(err)
		}
		return
	}

	fmt.Printf("Codes remapped to %s\n\n", RenderName(name))
	for _, a := range assignments {
		fmt.Println(codeLine(a))
	}
}

// codeLine renders one code as "  b  ████  #7fc97f" with a 24-bit swatch.
func codeLine(a service.CodeAssignment) string {
	r, g, b := a.Color.RGB255()
	swatch := color.RGB(int(r), int(g), int(b)).Sprint("████")

	line := fmt.Sprintf("  %s  %s  %s", color.New(color.Bold).Sprint(a.Code), swatch, a.Color.Hex())
	if a.Spec != a.Color.Hex() {
		line += " " + color.New(color.FgHiBlack).Sprintf("(%s)", a.Spec)
	}
	return line
}
