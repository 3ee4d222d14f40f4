package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/amterp/hue/internal/palette"
	"github.com/amterp/hue/internal/resolver"
	"github.com/amterp/ra"
)

// naturalLength marks -n as unset; the palette keeps its own length.
const naturalLength = -1

func registerShow(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("show")
	cmd.SetDescription("Plot a palette (default: the active color cycle)")

	ctx.ShowPalette, _ = ra.NewString("palette").
		SetOptional(true).
		SetUsage("Palette name").
		SetCompletionFunc(completePalettes).
		Register(cmd)

	ctx.ShowN, _ = ra.NewInt("count").
		SetShort("n").
		SetOptional(true).
		SetFlagOnly(true).
		SetDefault(naturalLength).
		SetUsage("Number of colors, cycling or truncating the palette").
		Register(cmd)

	ctx.ShowHex, _ = ra.NewBool("hex").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Report colors as hex strings").
		Register(cmd)

	ctx.ShowSize, _ = ra.NewInt("size").
		SetShort("s").
		SetOptional(true).
		SetFlagOnly(true).
		SetDefault(1).
		SetUsage("Swatch height in rows").
		Register(cmd)

	ctx.ShowUsed, _ = parent.RegisterCmd(cmd)
}

func runShow(name string, n int, hex bool, size int, jsonOutput bool) {
	app, err := NewApp(false)
	if err != nil {
		Fatal(err)
	}

	sel := resolver.Current()
	if name != "" {
		sel = resolver.Named(name)
	}

	var opts []resolver.Option
	if n != naturalLength {
		opts = append(opts, resolver.WithLength(n))
	}

	p, err := app.Resolver.Resolve(sel, opts...)
	if err != nil {
		Fatal(err)
	}
	if hex {
		p = p.AsHex()
	}

	if jsonOutput {
		if err := printJson(NewPaletteOutput(name, p)); err != nil {
			Fatal(err)
		}
		return
	}

	printPalette(name, p, size)
}

// printPalette plots p under a title, followed by its colors.
func printPalette(name string, p palette.Palette, size int) {
	title := name
	if title == "" {
		title = "current cycle"
	}
	fmt.Println(TitleBox(title))

	if err := p.Plot(os.Stdout, size); err != nil {
		Fatal(err)
	}

	fmt.Println()
	fmt.Println(LabelValue("Size", fmt.Sprintf("%d", p.Len()), 7))
	if p.Form() == palette.FormHex {
		fmt.Println(LabelValue("Colors", strings.Join(p.Hex(), " "), 7))
		return
	}
	tuples := make([]string, 0, p.Len())
	for _, c := range p.All() {
		tuples = append(tuples, fmt.Sprintf("(%.3f, %.3f, %.3f)", c.R, c.G, c.B))
	}
	fmt.Println(LabelValue("Colors", strings.Join(tuples, " "), 7))
}
