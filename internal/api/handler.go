package api

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"net/http"
	"strconv"

	"github.com/amterp/hue/internal/config"
	huerr "github.com/amterp/hue/internal/errors"
	"github.com/amterp/hue/internal/palette"
	"github.com/amterp/hue/internal/plotstate"
	"github.com/amterp/hue/internal/resolver"
	"github.com/amterp/hue/internal/service"
	"github.com/amterp/hue/internal/store"
)

// Handler serves the palette API. Each request works on its own plot state,
// so requests never see each other's cycle or code changes.
type Handler struct {
	registry *store.Registry
	palettes *service.PaletteService
	env      *config.EnvConfig
}

// NewHandler creates a new handler over the registry. env may be nil.
func NewHandler(registry *store.Registry, env *config.EnvConfig) *Handler {
	return &Handler{
		registry: registry,
		palettes: service.NewPaletteService(registry),
		env:      env,
	}
}

// RegisterRoutes sets up all API routes on the given mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /favicon.svg", h.GetFavicon)

	// Palette routes
	mux.HandleFunc("GET /api/v1/palettes", h.ListPalettes)
	mux.HandleFunc("POST /api/v1/palettes", h.CreatePalette)
	mux.HandleFunc("GET /api/v1/palettes/{name}", h.GetPalette)
	mux.HandleFunc("DELETE /api/v1/palettes/{name}", h.DeletePalette)
	mux.HandleFunc("GET /api/v1/palettes/{name}/sample", h.SamplePalette)
	mux.HandleFunc("GET /api/v1/palettes/{name}/swatch.svg", h.GetSwatch)

	// Resolution routes
	mux.HandleFunc("POST /api/v1/resolve", h.Resolve)
	mux.HandleFunc("GET /api/v1/codes/{name}", h.GetCodes)
}

// session returns a fresh plot state with the configured defaults applied.
// A broken default falls back to the built-in state rather than failing
// every request.
func (h *Handler) session() *plotstate.State {
	settings := h.registry.Settings()
	if h.env != nil {
		h.env.Apply(&settings)
	}

	state, err := service.NewSession(h.registry, settings.DefaultPalette, settings.CodePalette)
	if err != nil {
		log.Printf("Warning: ignoring palette settings: %v", err)
		return plotstate.New()
	}
	return state
}

// --- Response types ---

// PaletteResponse is a resolved palette.
type PaletteResponse struct {
	Name   string          `json:"name,omitempty"`
	Form   string          `json:"form"`
	Size   int             `json:"size"`
	Colors palette.Palette `json:"colors"`
}

// CodeResponse is one shorthand code assignment.
type CodeResponse struct {
	Code string `json:"code"`
	Spec string `json:"spec"`
	Hex  string `json:"hex"`
}

func toPaletteResponse(name string, p palette.Palette, form palette.Form) PaletteResponse {
	if form == palette.FormHex {
		p = p.AsHex()
	}
	return PaletteResponse{
		Name:   name,
		Form:   p.Form().String(),
		Size:   p.Len(),
		Colors: p,
	}
}

// maxLength bounds the n a client may request; the resolver allocates n
// colors up front.
const maxLength = 4096

// parseLength reads the optional n query parameter.
func parseLength(r *http.Request) ([]resolver.Option, error) {
	raw := r.URL.Query().Get("n")
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, huerr.InvalidField("n", "must be an integer")
	}
	return lengthOption(n)
}

// lengthOption rejects lengths above maxLength. Negative lengths are left
// to the resolver.
func lengthOption(n int) ([]resolver.Option, error) {
	if n > maxLength {
		return nil, huerr.InvalidField("n", fmt.Sprintf("must be at most %d", maxLength))
	}
	return []resolver.Option{resolver.WithLength(n)}, nil
}

// --- Palette Handlers ---

// ListPalettes returns every palette name with its size.
func (h *Handler) ListPalettes(w http.ResponseWriter, r *http.Request) {
	infos, err := h.palettes.List()
	if err != nil {
		Error(w, err)
		return
	}
	JSON(w, http.StatusOK, map[string]any{"palettes": infos})
}

// CreatePaletteRequest is the body for adding a custom palette.
type CreatePaletteRequest struct {
	Name   string   `json:"name"`
	Colors []string `json:"colors"`
}

// CreatePalette adds a custom palette.
func (h *Handler) CreatePalette(w http.ResponseWriter, r *http.Request) {
	var req CreatePaletteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		BadRequest(w, "Invalid JSON")
		return
	}

	name, err := h.palettes.Add(req.Name, req.Colors)
	if err != nil {
		Error(w, err)
		return
	}
	JSON(w, http.StatusCreated, map[string]string{"name": name})
}

// GetPalette resolves a named palette, optionally to n colors and in hex form.
func (h *Handler) GetPalette(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	form, err := palette.ParseForm(r.URL.Query().Get("format"))
	if err != nil {
		Error(w, err)
		return
	}
	opts, err := parseLength(r)
	if err != nil {
		Error(w, err)
		return
	}

	p, err := resolver.NewPaletteResolver(h.registry, h.session()).Resolve(resolver.Named(name), opts...)
	if err != nil {
		Error(w, err)
		return
	}

	JSON(w, http.StatusOK, map[string]any{"palette": toPaletteResponse(name, p, form)})
}

// DeletePalette removes a custom palette.
func (h *Handler) DeletePalette(w http.ResponseWriter, r *http.Request) {
	removed, err := h.palettes.Remove(r.PathValue("name"))
	if err != nil {
		Error(w, err)
		return
	}
	JSON(w, http.StatusOK, map[string]string{"removed": removed})
}

// SampleResponse is the color a colormap gives for x.
type SampleResponse struct {
	Name  string  `json:"name"`
	X     float64 `json:"x"`
	Color string  `json:"color"`
}

// SamplePalette treats the palette as a listed colormap and samples it at x.
func (h *Handler) SamplePalette(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	// Inf and NaN parse but cannot be echoed back as JSON.
	x, err := strconv.ParseFloat(r.URL.Query().Get("x"), 64)
	if err != nil || math.IsInf(x, 0) || math.IsNaN(x) {
		BadRequest(w, "x must be a finite number")
		return
	}

	p, err := resolver.NewPaletteResolver(h.registry, h.session()).Resolve(resolver.Named(name))
	if err != nil {
		Error(w, err)
		return
	}
	cm, err := palette.NewColormap(name, p)
	if err != nil {
		Error(w, err)
		return
	}

	JSON(w, http.StatusOK, SampleResponse{Name: name, X: x, Color: cm.At(x).Hex()})
}

// GetSwatch renders a palette as an SVG strip.
func (h *Handler) GetSwatch(w http.ResponseWriter, r *http.Request) {
	opts, err := parseLength(r)
	if err != nil {
		Error(w, err)
		return
	}

	cell := 48
	if raw := r.URL.Query().Get("size"); raw != "" {
		cell, err = strconv.Atoi(raw)
		if err != nil || cell < 8 || cell > 512 {
			BadRequest(w, "size must be an integer between 8 and 512")
			return
		}
	}

	p, err := resolver.NewPaletteResolver(h.registry, h.session()).Resolve(resolver.Named(r.PathValue("name")), opts...)
	if err != nil {
		Error(w, err)
		return
	}

	writeSVG(w, PaletteSVG(p, cell))
}

// GetFavicon draws the active color cycle as the favicon. With ?palette=
// the named palette is activated for the drawing only.
func (h *Handler) GetFavicon(w http.ResponseWriter, r *http.Request) {
	state := h.session()
	res := resolver.NewPaletteResolver(h.registry, state)

	render := func(palette.Palette) error {
		p, err := res.Resolve(resolver.Current())
		if err != nil {
			return err
		}
		writeSVG(w, FaviconSVG(p))
		return nil
	}

	var err error
	if name := r.URL.Query().Get("palette"); name != "" {
		var p palette.Palette
		if p, err = res.Resolve(resolver.Named(name)); err == nil {
			err = palette.Use(state, p, render)
		}
	} else {
		err = render(palette.Palette{})
	}
	if err != nil {
		Error(w, err)
	}
}

// --- Resolution Handlers ---

// ResolveRequest selects colors by palette name, by literal colors, or
// (with neither) from the active cycle.
type ResolveRequest struct {
	Palette string   `json:"palette,omitempty"`
	Colors  []string `json:"colors,omitempty"`
	N       *int     `json:"n,omitempty"`
	Format  string   `json:"format,omitempty"`
}

// Resolve resolves a selector to a palette.
func (h *Handler) Resolve(w http.ResponseWriter, r *http.Request) {
	var req ResolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		BadRequest(w, "Invalid JSON")
		return
	}

	form, err := palette.ParseForm(req.Format)
	if err != nil {
		Error(w, err)
		return
	}

	var sel resolver.Selector
	switch {
	case req.Palette != "" && req.Colors != nil:
		BadRequest(w, "palette and colors are mutually exclusive")
		return
	case req.Palette != "":
		sel = resolver.Named(req.Palette)
	case req.Colors != nil:
		// An explicit empty list is a literal with no colors, not "current".
		sel = resolver.Literal(req.Colors...)
	default:
		sel = resolver.Current()
	}

	var opts []resolver.Option
	if req.N != nil {
		if opts, err = lengthOption(*req.N); err != nil {
			Error(w, err)
			return
		}
	}

	p, err := resolver.NewPaletteResolver(h.registry, h.session()).Resolve(sel, opts...)
	if err != nil {
		Error(w, err)
		return
	}

	JSON(w, http.StatusOK, map[string]any{"palette": toPaletteResponse(req.Palette, p, form)})
}

// GetCodes shows what the shorthand codes would be after applying a
// palette. Nothing is written, not even to the request's scratch state.
func (h *Handler) GetCodes(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	assignments, err := service.NewCodeService(h.registry, h.session()).Preview(name)
	if err != nil {
		Error(w, err)
		return
	}

	codes := make([]CodeResponse, len(assignments))
	for i, a := range assignments {
		codes[i] = CodeResponse{Code: a.Code, Spec: a.Spec, Hex: a.Color.Hex()}
	}
	JSON(w, http.StatusOK, map[string]any{"palette": name, "codes": codes})
}
