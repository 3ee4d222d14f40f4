package cli

import (
	"fmt"
	"slices"

	"github.com/amterp/ra"
)

func registerEdit(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("edit")
	cmd.SetDescription("Edit a custom palette's colors in $EDITOR")

	ctx.EditName, _ = ra.NewString("name").
		SetUsage("Custom palette name").
		SetCompletionFunc(completeCustomPalettes).
		Register(cmd)

	ctx.EditUsed, _ = parent.RegisterCmd(cmd)
}

func runEdit(name string) {
	app, err := NewApp(true)
	if err != nil {
		Fatal(err)
	}

	entry, err := app.PaletteService.Get(name)
	if err != nil {
		Fatal(err)
	}
	if entry.Builtin {
		Fatal(fmt.Errorf("%q is a built-in palette; use 'hue add' to save an edited copy", name))
	}

	colors, err := app.Editor.EditColors(entry.Name, entry.Colors)
	if err != nil {
		Fatal(err)
	}

	if slices.Equal(colors, entry.Colors) {
		fmt.Println("No changes made")
		return
	}

	if err := app.PaletteService.Replace(entry.Name, colors); err != nil {
		Fatal(err)
	}

	PrintSuccess("Updated palette %s (%d colors)", RenderName(entry.Name), len(colors))
}
