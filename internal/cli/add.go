package cli

import (
	"fmt"

	"github.com/amterp/ra"
)

func registerAdd(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("add")
	cmd.SetDescription("Add a custom palette")

	ctx.AddName, _ = ra.NewString("name").
		SetOptional(true).
		SetUsage("Palette name (generated if empty)").
		Register(cmd)

	ctx.AddColors, _ = ra.NewStringSlice("color").
		SetShort("c").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Color as hex, CSS name or code letter (repeatable). Prompts if omitted").
		Register(cmd)

	ctx.AddUsed, _ = parent.RegisterCmd(cmd)
}

func runAdd(name string, colors []string, nonInteractive bool, jsonOutput bool) {
	app, err := NewApp(!nonInteractive)
	if err != nil {
		Fatal(err)
	}

	if len(colors) == 0 {
		if nonInteractive {
			Fatal(fmt.Errorf("at least one --color is required in non-interactive mode"))
		}
		name, colors, err = promptNewPalette(app, name)
		if err != nil {
			Fatal(err)
		}
	}

	saved, err := app.PaletteService.Add(name, colors)
	if err != nil {
		Fatal(err)
	}

	if jsonOutput {
		if err := printJson(AddOutput{Name: saved, Colors: colors, File: app.PaletteFile}); err != nil {
			Fatal(err)
		}
		return
	}

	PrintSuccess("Added palette %s (%d colors) to %s", RenderName(saved), len(colors), RenderMuted(app.PaletteFile))
}

// promptNewPalette asks for a name and builds the colors by picking from an
// existing palette.
func promptNewPalette(app *App, name string) (string, []string, error) {
	if name == "" {
		var err error
		name, err = app.Prompter.Input("Palette name (blank to generate)", "")
		if err != nil {
			return "", nil, err
		}
	}

	source, err := app.Prompter.Select("Start from palette", app.Registry.Names())
	if err != nil {
		return "", nil, err
	}

	entry, err := app.PaletteService.Get(source)
	if err != nil {
		return "", nil, err
	}

	colors, err := app.Prompter.SelectColors("Colors to keep", entry.Colors)
	if err != nil {
		return "", nil, err
	}
	if len(colors) == 0 {
		return "", nil, fmt.Errorf("no colors selected")
	}
	return name, colors, nil
}
