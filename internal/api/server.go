package api

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/amterp/hue/internal/store"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server wraps the HTTP server for the palette preview API.
type Server struct {
	httpServer *http.Server
	watcher    *FileWatcher
	wsHub      *WebSocketHub
}

// NewServer creates the preview server. When the registry is backed by a
// file, changes to it reload the registry and are pushed to websocket
// clients.
func NewServer(handler *Handler, registry *store.Registry) *Server {
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)
	mux.Handle("GET /metrics", promhttp.Handler())

	wsHub := NewWebSocketHub()
	wsHub.SetStatus(func() any {
		return PaletteStatus{File: registry.Path(), Palettes: len(registry.Names())}
	})
	mux.HandleFunc("GET /api/v1/ws", wsHub.ServeWS)

	var watcher *FileWatcher
	if path := registry.Path(); path != "" {
		var err error
		watcher, err = NewFileWatcher(path)
		if err != nil {
			log.Printf("Warning: failed to create file watcher: %v", err)
		} else {
			reloader := &paletteReloader{registry: registry, hub: wsHub}
			watcher.OnChange(reloader.OnFileChange)
		}
	}

	wrapped := Logging(Cors(mux))

	return &Server{
		httpServer: &http.Server{
			Handler:      wrapped,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
		watcher: watcher,
		wsHub:   wsHub,
	}
}

// Serve handles requests on l until Shutdown. It always returns a non-nil
// error; after Shutdown that is http.ErrServerClosed.
func (s *Server) Serve(l net.Listener) error {
	if s.watcher != nil {
		if err := s.watcher.Start(); err != nil {
			log.Printf("Warning: failed to start file watcher: %v", err)
		}
	}
	return s.httpServer.Serve(l)
}

// Shutdown stops the watcher and drains open requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.watcher != nil {
		s.watcher.Stop()
	}
	return s.httpServer.Shutdown(ctx)
}

// Listen binds host:port, moving up one port at a time while the port is
// taken, for at most attempts ports.
func Listen(host string, port, attempts int) (net.Listener, error) {
	var err error
	for i := range max(attempts, 1) {
		var l net.Listener
		l, err = net.Listen("tcp", net.JoinHostPort(host, strconv.Itoa(port+i)))
		if err == nil {
			return l, nil
		}
	}
	return nil, fmt.Errorf("no free port in %d..%d: %w", port, port+max(attempts, 1)-1, err)
}

// PaletteStatus greets new websocket clients.
type PaletteStatus struct {
	File     string `json:"file,omitempty"`
	Palettes int    `json:"palettes"`
}

// PalettesChanged is the payload of a palettes_changed message.
type PalettesChanged struct {
	Change   FileChangeType `json:"change"`
	Palettes int            `json:"palettes"` // Total names after reload
}

// paletteReloader reloads the registry when the palette file changes and
// tells websocket clients the outcome.
type paletteReloader struct {
	registry *store.Registry
	hub      *WebSocketHub
}

// OnFileChange reloads and broadcasts the outcome.
func (p *paletteReloader) OnFileChange(change FileChange) {
	if err := p.registry.Reload(); err != nil {
		MetricReloads.WithLabelValues("error").Inc()
		log.Printf("Palette file reload failed, keeping previous palettes: %v", err)
		p.hub.Send(MessagePalettesError, map[string]string{"error": err.Error()})
		return
	}

	MetricReloads.WithLabelValues("ok").Inc()
	log.Printf("Reloaded palettes from %s (%s)", change.Path, change.Type)
	p.hub.Send(MessagePalettesChanged, PalettesChanged{
		Change:   change.Type,
		Palettes: len(p.registry.Names()),
	})
}
