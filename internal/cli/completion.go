package cli

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/amterp/hue/internal/store"
	"github.com/amterp/ra"
)

// completionRegistry loads the palette registry on first use. Completion
// runs inside ParseOrExit, before any App exists. A broken palette file
// just means no suggestions.
var completionRegistry = sync.OnceValues(func() (*store.Registry, error) {
	_, path, _, err := locatePaletteFile()
	if err != nil {
		return nil, err
	}
	return store.NewRegistry(store.NewFileStore(path))
})

// paletteCompleter adapts a name source to ra's completion signature.
func paletteCompleter(names func(*store.Registry) []string) func(string) ([]string, ra.CompletionDirective) {
	return func(toComplete string) ([]string, ra.CompletionDirective) {
		registry, err := completionRegistry()
		if err != nil {
			return nil, ra.CompletionDirectiveNoFileComp
		}
		return matchPrefix(names(registry), toComplete), ra.CompletionDirectiveNoFileComp
	}
}

var (
	// completePalettes offers every resolvable name, built-in or custom.
	completePalettes = paletteCompleter((*store.Registry).Names)

	// completeCustomPalettes offers only names the user may edit or remove.
	completeCustomPalettes = paletteCompleter(func(r *store.Registry) []string {
		settings := r.Settings()
		return settings.PaletteNames()
	})
)

// matchPrefix keeps the names starting with prefix, ignoring case.
func matchPrefix(names []string, prefix string) []string {
	folded := store.FoldName(prefix)
	var result []string
	for _, name := range names {
		if strings.HasPrefix(store.FoldName(name), folded) {
			result = append(result, name)
		}
	}
	return result
}

// registerCompletion adds the "hue completion <shell>" command.
func registerCompletion(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("completion")
	cmd.SetDescription("Output shell completion script")

	ctx.CompletionShell, _ = ra.NewString("shell").
		SetUsage("Shell type").
		SetEnumConstraint([]string{"bash", "zsh"}).
		Register(cmd)

	ctx.CompletionUsed, _ = parent.RegisterCmd(cmd)
}

// completionGenerators maps each supported shell to its script generator.
var completionGenerators = map[string]func(*ra.Cmd) error{
	"bash": func(c *ra.Cmd) error { return c.GenBashCompletion(os.Stdout) },
	"zsh":  func(c *ra.Cmd) error { return c.GenZshCompletion(os.Stdout) },
}

// runCompletion writes the completion script for shell to stdout.
func runCompletion(shell string, rootCmd *ra.Cmd) {
	gen, ok := completionGenerators[shell]
	if !ok {
		Fatal(fmt.Errorf("unsupported shell: %s (supported: bash, zsh)", shell))
	}
	if err := gen(rootCmd); err != nil {
		Fatal(fmt.Errorf("failed to generate completion script: %w", err))
	}
}
