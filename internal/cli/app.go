package cli

import (
	"fmt"
	"os"

	"github.com/amterp/hue/internal/config"
	"github.com/amterp/hue/internal/discovery"
	"github.com/amterp/hue/internal/editor"
	"github.com/amterp/hue/internal/model"
	"github.com/amterp/hue/internal/plotstate"
	"github.com/amterp/hue/internal/prompt"
	"github.com/amterp/hue/internal/resolver"
	"github.com/amterp/hue/internal/service"
	"github.com/amterp/hue/internal/store"
)

// App holds all the dependencies for the CLI.
type App struct {
	Env            *config.EnvConfig
	PaletteFile    string
	Source         discovery.Source
	Registry       *store.Registry
	Settings       model.PaletteFile // File settings with env overrides applied
	State          *plotstate.State
	Prompter       prompt.Prompter
	Editor         *editor.Editor
	PaletteService *service.PaletteService
	CodeService    *service.CodeService
	Resolver       *resolver.PaletteResolver
}

// NewApp creates a new App with all dependencies wired up.
// If interactive is false, uses NoopPrompter that fails on prompts.
func NewApp(interactive bool) (*App, error) {
	env, path, source, err := locatePaletteFile()
	if err != nil {
		return nil, err
	}

	registry, err := store.NewRegistry(store.NewFileStore(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	settings := registry.Settings()
	env.Apply(&settings)

	state, err := service.NewSession(registry, settings.DefaultPalette, settings.CodePalette)
	if err != nil {
		// A bad setting shouldn't lock the user out of fixing it
		fmt.Fprintf(os.Stderr, "Warning: ignoring palette settings: %v\n", err)
		state = plotstate.New()
	}

	var prompter prompt.Prompter
	if interactive {
		prompter = prompt.NewHuhPrompter(env.Accessible)
	} else {
		prompter = prompt.NoopPrompter{}
	}

	return &App{
		Env:            env,
		PaletteFile:    path,
		Source:         source,
		Registry:       registry,
		Settings:       settings,
		State:          state,
		Prompter:       prompter,
		Editor:         editor.NewEditor(settings.Editor),
		PaletteService: service.NewPaletteService(registry),
		CodeService:    service.NewCodeService(registry, state),
		Resolver:       resolver.NewPaletteResolver(registry, state),
	}, nil
}

// locatePaletteFile loads the environment and finds the palette file in
// effect for the working directory.
func locatePaletteFile() (*config.EnvConfig, string, discovery.Source, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, "", "", fmt.Errorf("failed to get working directory: %w", err)
	}

	if err := config.LoadDotEnv(cwd); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env: %v\n", err)
	}
	env := config.LoadEnv()

	path, source, err := discovery.PaletteFile(cwd, env.ConfigPath)
	if err != nil {
		return nil, "", "", err
	}
	return env, path, source, nil
}

// Fatal prints an error and exits.
func Fatal(err error) {
	PrintError("%v", err)
	os.Exit(1)
}
