package cli

import (
	"os"

	"github.com/amterp/ra"
)

// CommandContext holds parsed values and used flags for all commands.
type CommandContext struct {
	// Global flags
	NonInteractive *bool
	Json           *bool

	// init command
	InitUsed *bool

	// list command
	ListUsed *bool

	// show command
	ShowUsed    *bool
	ShowPalette *string
	ShowN       *int
	ShowHex     *bool
	ShowSize    *int

	// codes command
	CodesUsed    *bool
	CodesPalette *string

	// add command
	AddUsed   *bool
	AddName   *string
	AddColors *[]string

	// remove command
	RemoveUsed  *bool
	RemoveName  *string
	RemoveForce *bool

	// edit command
	EditUsed *bool
	EditName *string

	// pick command
	PickUsed *bool
	PickSize *int

	// doctor command
	DoctorUsed *bool
	DoctorFix  *bool

	// serve command
	ServeUsed *bool
	ServePort *int

	// completion command
	CompletionUsed  *bool
	CompletionShell *string
}

// Run is the main entry point for the CLI.
func Run() {
	ctx := &CommandContext{}

	cmd := ra.NewCmd("hue")
	cmd.SetDescription("Named color palettes for plots")

	// Global flag for non-interactive mode
	ctx.NonInteractive, _ = ra.NewBool("non-interactive").
		SetShort("I").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Fail instead of prompting for missing input").
		Register(cmd, ra.WithGlobal(true))

	ctx.Json, _ = ra.NewBool("json").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Print machine-readable JSON").
		Register(cmd, ra.WithGlobal(true))

	// Register all subcommands
	registerInit(cmd, ctx)
	registerList(cmd, ctx)
	registerShow(cmd, ctx)
	registerCodes(cmd, ctx)
	registerAdd(cmd, ctx)
	registerRemove(cmd, ctx)
	registerEdit(cmd, ctx)
	registerPick(cmd, ctx)
	registerDoctor(cmd, ctx)
	registerServe(cmd, ctx)
	registerCompletion(cmd, ctx)

	// Parse command line
	cmd.ParseOrExit(os.Args[1:])

	// Execute the appropriate command
	executeCommand(ctx, cmd)
}

func executeCommand(ctx *CommandContext, rootCmd *ra.Cmd) {
	jsonOutput := *ctx.Json

	switch {
	case *ctx.InitUsed:
		runInit(jsonOutput)

	case *ctx.ListUsed:
		runList(jsonOutput)

	case *ctx.ShowUsed:
		runShow(*ctx.ShowPalette, *ctx.ShowN, *ctx.ShowHex, *ctx.ShowSize, jsonOutput)

	case *ctx.CodesUsed:
		runCodes(*ctx.CodesPalette, jsonOutput)

	case *ctx.AddUsed:
		runAdd(*ctx.AddName, *ctx.AddColors, *ctx.NonInteractive, jsonOutput)

	case *ctx.RemoveUsed:
		runRemove(*ctx.RemoveName, *ctx.RemoveForce, *ctx.NonInteractive, jsonOutput)

	case *ctx.EditUsed:
		if jsonOutput {
			warnJsonNotSupported("edit")
		}
		runEdit(*ctx.EditName)

	case *ctx.PickUsed:
		if jsonOutput {
			warnJsonNotSupported("pick")
		}
		runPick(*ctx.PickSize, *ctx.NonInteractive)

	case *ctx.DoctorUsed:
		runDoctor(*ctx.DoctorFix, jsonOutput)

	case *ctx.ServeUsed:
		if jsonOutput {
			warnJsonNotSupported("serve")
		}
		runServe(*ctx.ServePort)

	case *ctx.CompletionUsed:
		runCompletion(*ctx.CompletionShell, rootCmd)
	}
}
