package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/amterp/hue/internal/api"
	"github.com/amterp/ra"
)

func registerServe(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("serve")
	cmd.SetDescription("Start the palette preview server")

	ctx.ServePort, _ = ra.NewInt("port").
		SetOptional(true).
		SetDefault(4040).
		SetShort("p").
		SetFlagOnly(true).
		SetUsage("Port to listen on (will try incrementally if in use)").
		Register(cmd)

	ctx.ServeUsed, _ = parent.RegisterCmd(cmd)
}

// portAttempts is how many ports serve tries, starting at --port.
const portAttempts = 100

func runServe(port int) {
	app, err := NewApp(false)
	if err != nil {
		Fatal(err)
	}

	listener, err := api.Listen(app.Env.Host, port, portAttempts)
	if err != nil {
		Fatal(err)
	}
	server := api.NewServer(api.NewHandler(app.Registry, app.Env), app.Registry)

	url := "http://" + listener.Addr().String()
	fmt.Printf("Hue preview server running at %s\n", RenderURL(url))
	fmt.Println(LabelValue("Palettes", RenderMuted(app.PaletteFile), 10))
	fmt.Println(LabelValue("Metrics", RenderURL(url+"/metrics"), 10))
	fmt.Println("Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- server.Serve(listener) }()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			Fatal(err)
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			Fatal(err)
		}
		PrintInfo("Server stopped")
	}
}
