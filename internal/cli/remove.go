package cli

import (
	"fmt"

	"github.com/amterp/ra"
)

func registerRemove(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("remove")
	cmd.SetDescription("Remove a custom palette")

	ctx.RemoveName, _ = ra.NewString("name").
		SetUsage("Custom palette name").
		SetCompletionFunc(completeCustomPalettes).
		Register(cmd)

	ctx.RemoveForce, _ = ra.NewBool("force").
		SetShort("f").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Skip confirmation (required in non-interactive mode)").
		Register(cmd)

	ctx.RemoveUsed, _ = parent.RegisterCmd(cmd)
}

func runRemove(name string, force, nonInteractive bool, jsonOutput bool) {
	app, err := NewApp(!nonInteractive)
	if err != nil {
		Fatal(err)
	}

	entry, err := app.PaletteService.Get(name)
	if err != nil {
		Fatal(err)
	}

	if !force {
		if nonInteractive {
			Fatal(fmt.Errorf("removing palette %q requires --force in non-interactive mode", entry.Name))
		}

		confirmed, err := app.Prompter.Confirm(
			fmt.Sprintf("Remove palette %q (%d colors)?", entry.Name, len(entry.Colors)),
			false,
		)
		if err != nil {
			Fatal(err)
		}
		if !confirmed {
			PrintInfo("Cancelled")
			return
		}
	}

	removed, err := app.PaletteService.Remove(name)
	if err != nil {
		Fatal(err)
	}

	if jsonOutput {
		if err := printJson(RemoveOutput{Removed: removed}); err != nil {
			Fatal(err)
		}
		return
	}

	PrintSuccess("Removed palette %s", RenderName(removed))
}
