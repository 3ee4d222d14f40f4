package cli

import (
	"fmt"

	"github.com/amterp/ra"
)

func registerList(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("list")
	cmd.SetDescription("List palettes")

	ctx.ListUsed, _ = parent.RegisterCmd(cmd)
}

func runList(jsonOutput bool) {
	app, err := NewApp(false)
	if err != nil {
		Fatal(err)
	}

	infos, err := app.PaletteService.List()
	if err != nil {
		Fatal(err)
	}

	if jsonOutput {
		if err := printJson(NewListOutput(infos)); err != nil {
			Fatal(err)
		}
		return
	}

	width := 0
	for _, info := range infos {
		width = max(width, len(info.Name))
	}

	custom := 0
	for _, info := range infos {
		entry, err := app.PaletteService.Get(info.Name)
		if err != nil {
			Fatal(err)
		}

		var note string
		switch {
		case info.AliasOf != "":
			note = RenderMuted("-> " + info.AliasOf)
		case !info.Builtin:
			note = RenderMuted("custom")
			custom++
		}

		// Long palettes are cut so each stays on one line.
		colors := entry.Colors
		if len(colors) > 12 {
			colors = colors[:12]
		}
		hexes := make([]string, 0, len(colors))
		for _, spec := range colors {
			c, err := app.State.ToRGB(spec)
			if err != nil {
				Fatal(err)
			}
			hexes = append(hexes, c.Hex())
		}

		name := RenderName(fmt.Sprintf("%-*s", width, info.Name))
		fmt.Printf("%s %3d  %s %s\n", name, info.Size, SwatchRow(hexes), note)
	}

	fmt.Println()
	PrintInfo("%d palettes (%d custom) from %s", len(infos), custom, RenderMuted(app.PaletteFile))
}
