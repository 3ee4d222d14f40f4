package cli

import (
	"fmt"
	"os"

	"github.com/amterp/hue/internal/service"
	"github.com/amterp/ra"
)

func registerInit(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("init")
	cmd.SetDescription("Create a project palette file (.hue/palettes.toml) in the current directory")

	ctx.InitUsed, _ = parent.RegisterCmd(cmd)
}

func runInit(jsonOutput bool) {
	// No NewApp: init has to work before any palette file exists.
	cwd, err := os.Getwd()
	if err != nil {
		Fatal(fmt.Errorf("failed to get working directory: %w", err))
	}

	path, created, err := service.NewInitService().Initialize(cwd)
	if err != nil {
		Fatal(err)
	}

	if jsonOutput {
		if err := printJson(InitOutput{File: path, Created: created}); err != nil {
			Fatal(err)
		}
		return
	}

	if !created {
		PrintInfo("Palette file already exists at %s", RenderMuted(path))
		return
	}
	PrintSuccess("Created %s", path)
	PrintInfo("Add palettes with 'hue add <name> -c <color>...'")
}
