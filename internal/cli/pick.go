package cli

import (
	"fmt"

	"github.com/amterp/hue/internal/resolver"
	"github.com/amterp/ra"
)

func registerPick(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("pick")
	cmd.SetDescription("Choose a palette interactively and plot it")

	ctx.PickSize, _ = ra.NewInt("size").
		SetShort("s").
		SetOptional(true).
		SetFlagOnly(true).
		SetDefault(2).
		SetUsage("Swatch height in rows").
		Register(cmd)

	ctx.PickUsed, _ = parent.RegisterCmd(cmd)
}

func runPick(size int, nonInteractive bool) {
	if nonInteractive {
		Fatal(fmt.Errorf("pick is interactive; use 'hue show <palette>' instead"))
	}

	app, err := NewApp(true)
	if err != nil {
		Fatal(err)
	}

	name, err := app.Prompter.Select("Palette", app.Registry.Names())
	if err != nil {
		Fatal(err)
	}

	p, err := app.Resolver.Resolve(resolver.Named(name))
	if err != nil {
		Fatal(err)
	}

	printPalette(name, p.AsHex(), size)
}
