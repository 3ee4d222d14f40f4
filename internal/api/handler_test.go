package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/amterp/hue/internal/config"
	"github.com/amterp/hue/internal/model"
	"github.com/amterp/hue/internal/store"
	"github.com/amterp/hue/testutil"
)

// testAPI provides a complete test environment for API handler tests.
type testAPI struct {
	handler  *Handler
	mux      *http.ServeMux
	registry *store.Registry
	path     string
}

// setupTestAPI creates a test environment with a registry backed by a temp file.
func setupTestAPI(t *testing.T) *testAPI {
	t.Helper()

	registry, path := testutil.TempRegistry(t, nil)

	handler := NewHandler(registry, nil)
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)

	return &testAPI{
		handler:  handler,
		mux:      mux,
		registry: registry,
		path:     path,
	}
}

func (api *testAPI) do(t *testing.T, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	api.mux.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("Failed to decode %q: %v", rec.Body.String(), err)
	}
	return v
}

type paletteBody struct {
	Palette struct {
		Name   string          `json:"name"`
		Form   string          `json:"form"`
		Size   int             `json:"size"`
		Colors json.RawMessage `json:"colors"`
	} `json:"palette"`
}

func TestListPalettes(t *testing.T) {
	api := setupTestAPI(t)

	rec := api.do(t, http.MethodGet, "/api/v1/palettes", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}

	body := decode[struct {
		Palettes []struct {
			Name    string `json:"name"`
			Size    int    `json:"size"`
			Builtin bool   `json:"builtin"`
		} `json:"palettes"`
	}](t, rec)

	if len(body.Palettes) != len(api.registry.Names()) {
		t.Errorf("got %d palettes, want %d", len(body.Palettes), len(api.registry.Names()))
	}
}

func TestGetPalette_Hex(t *testing.T) {
	api := setupTestAPI(t)

	rec := api.do(t, http.MethodGet, "/api/v1/palettes/YellowBrick?n=8&format=hex", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}

	body := decode[paletteBody](t, rec)
	if body.Palette.Form != "hex" || body.Palette.Size != 8 {
		t.Errorf("palette = %+v", body.Palette)
	}

	var colors []string
	if err := json.Unmarshal(body.Palette.Colors, &colors); err != nil {
		t.Fatal(err)
	}
	if colors[6] != "#0272a2" || colors[7] != "#9fc377" {
		t.Errorf("wrapped colors = %v", colors[6:])
	}
}

func TestGetPalette_RGB(t *testing.T) {
	api := setupTestAPI(t)

	rec := api.do(t, http.MethodGet, "/api/v1/palettes/reset", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}

	body := decode[paletteBody](t, rec)
	var colors [][3]float64
	if err := json.Unmarshal(body.Palette.Colors, &colors); err != nil {
		t.Fatal(err)
	}
	if len(colors) != 7 || colors[0] != [3]float64{0, 0, 1} {
		t.Errorf("colors = %v", colors)
	}
}

func TestGetPalette_Errors(t *testing.T) {
	api := setupTestAPI(t)

	tests := []struct {
		name   string
		target string
		want   int
	}{
		{"unknown palette", "/api/v1/palettes/not-a-real-palette", http.StatusNotFound},
		{"bad n", "/api/v1/palettes/set1?n=many", http.StatusBadRequest},
		{"negative n", "/api/v1/palettes/set1?n=-2", http.StatusBadRequest},
		{"n above cap", "/api/v1/palettes/set1?n=4097", http.StatusBadRequest},
		{"huge n", "/api/v1/palettes/set1?n=4611686018427387904", http.StatusBadRequest},
		{"huge swatch n", "/api/v1/palettes/set1/swatch.svg?n=1000000000", http.StatusBadRequest},
		{"bad format", "/api/v1/palettes/set1?format=cmyk", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := api.do(t, http.MethodGet, tt.target, nil)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d: %s", rec.Code, tt.want, rec.Body)
			}
			if body := decode[map[string]string](t, rec); body["error"] == "" {
				t.Error("missing error message")
			}
		})
	}
}

func TestResolve(t *testing.T) {
	api := setupTestAPI(t)
	n, atCap, aboveCap := 4, maxLength, 1<<40

	tests := []struct {
		name     string
		req      ResolveRequest
		want     int
		wantSize int
	}{
		{"named", ResolveRequest{Palette: "set1", N: &n}, http.StatusOK, 4},
		{"literal", ResolveRequest{Colors: []string{"#ff0000", "navy", "k"}}, http.StatusOK, 3},
		{"current", ResolveRequest{}, http.StatusOK, 10},
		{"empty literal", ResolveRequest{Colors: []string{}}, http.StatusBadRequest, 0},
		{"bad color", ResolveRequest{Colors: []string{"#ff0000", "bogus"}}, http.StatusBadRequest, 0},
		{"both", ResolveRequest{Palette: "set1", Colors: []string{"#fff"}}, http.StatusBadRequest, 0},
		{"unknown", ResolveRequest{Palette: "nope"}, http.StatusNotFound, 0},
		{"n at cap", ResolveRequest{Palette: "set1", N: &atCap}, http.StatusOK, maxLength},
		{"n above cap", ResolveRequest{Palette: "set1", N: &aboveCap}, http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := api.do(t, http.MethodPost, "/api/v1/resolve", tt.req)
			if rec.Code != tt.want {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tt.want, rec.Body)
			}
			if tt.want == http.StatusOK {
				if body := decode[paletteBody](t, rec); body.Palette.Size != tt.wantSize {
					t.Errorf("size = %d, want %d", body.Palette.Size, tt.wantSize)
				}
			}
		})
	}
}

func TestResolve_InvalidJSON(t *testing.T) {
	api := setupTestAPI(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/resolve", strings.NewReader("{"))
	rec := httptest.NewRecorder()
	api.mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d", rec.Code)
	}
}

func TestGetCodes(t *testing.T) {
	api := setupTestAPI(t)

	rec := api.do(t, http.MethodGet, "/api/v1/codes/Accent-3", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}

	body := decode[struct {
		Codes []CodeResponse `json:"codes"`
	}](t, rec)
	if len(body.Codes) != 7 {
		t.Fatalf("got %d codes", len(body.Codes))
	}
	if body.Codes[0].Code != "b" || body.Codes[6].Code != "k" || body.Codes[6].Hex != model.KeyColor {
		t.Errorf("codes = %+v", body.Codes)
	}

	// Codes are computed on a scratch state; a second request starts fresh.
	rec = api.do(t, http.MethodGet, "/api/v1/codes/reset", nil)
	body = decode[struct {
		Codes []CodeResponse `json:"codes"`
	}](t, rec)
	if body.Codes[0].Hex != "#0000ff" {
		t.Errorf("b after reset = %s", body.Codes[0].Hex)
	}
}

func TestSamplePalette(t *testing.T) {
	api := setupTestAPI(t)

	rec := api.do(t, http.MethodGet, "/api/v1/palettes/ddl_heat/sample?x=1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}
	if body := decode[SampleResponse](t, rec); body.Color != "#e29539" {
		t.Errorf("sample = %+v", body)
	}

	// Far past the end clamps to the last color.
	rec = api.do(t, http.MethodGet, "/api/v1/palettes/ddl_heat/sample?x=1e300", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("x=1e300: status = %d: %s", rec.Code, rec.Body)
	}
	if body := decode[SampleResponse](t, rec); body.Color != "#e29539" {
		t.Errorf("x=1e300: sample = %+v", body)
	}

	for _, x := range []string{"hot", "Inf", "-Inf", "NaN"} {
		rec = api.do(t, http.MethodGet, "/api/v1/palettes/ddl_heat/sample?x="+x, nil)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("x=%s: status = %d, want 400", x, rec.Code)
		}
	}
}

func TestCreateAndDeletePalette(t *testing.T) {
	api := setupTestAPI(t)

	rec := api.do(t, http.MethodPost, "/api/v1/palettes", CreatePaletteRequest{
		Name:   "Brand Colors",
		Colors: []string{"#ca0b03", "#a50258"},
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: status = %d: %s", rec.Code, rec.Body)
	}
	if body := decode[map[string]string](t, rec); body["name"] != "brand-colors" {
		t.Errorf("created %q", body["name"])
	}

	rec = api.do(t, http.MethodPost, "/api/v1/palettes", CreatePaletteRequest{Name: "brand colors", Colors: []string{"#fff"}})
	if rec.Code != http.StatusConflict {
		t.Errorf("duplicate: status = %d", rec.Code)
	}

	rec = api.do(t, http.MethodGet, "/api/v1/palettes/brand-colors?format=hex", nil)
	if rec.Code != http.StatusOK {
		t.Errorf("get custom: status = %d", rec.Code)
	}

	rec = api.do(t, http.MethodDelete, "/api/v1/palettes/set1", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("delete built-in: status = %d", rec.Code)
	}

	rec = api.do(t, http.MethodDelete, "/api/v1/palettes/brand-colors", nil)
	if rec.Code != http.StatusOK {
		t.Errorf("delete: status = %d: %s", rec.Code, rec.Body)
	}

	rec = api.do(t, http.MethodDelete, "/api/v1/palettes/brand-colors", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("delete again: status = %d", rec.Code)
	}
}

func TestGetSwatch(t *testing.T) {
	api := setupTestAPI(t)

	rec := api.do(t, http.MethodGet, "/api/v1/palettes/set1/swatch.svg?n=3&size=16", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Content-Type = %q", ct)
	}
	if got := strings.Count(rec.Body.String(), "<rect"); got != 3 {
		t.Errorf("got %d rects, want 3", got)
	}

	rec = api.do(t, http.MethodGet, "/api/v1/palettes/set1/swatch.svg?size=2", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("tiny size: status = %d", rec.Code)
	}
}

func TestGetFavicon_UsesDefaultPalette(t *testing.T) {
	api := setupTestAPI(t)

	f := &model.PaletteFile{DefaultPalette: "yellowbrick"}
	if err := store.NewFileStore(api.path).Save(f); err != nil {
		t.Fatal(err)
	}
	if err := api.registry.Reload(); err != nil {
		t.Fatal(err)
	}

	rec := api.do(t, http.MethodGet, "/favicon.svg", nil)
	if !strings.Contains(rec.Body.String(), "#0272a2") {
		t.Errorf("favicon does not use the default palette: %s", rec.Body)
	}
}

func TestGetFavicon_ActivatesRequestedPalette(t *testing.T) {
	api := setupTestAPI(t)

	rec := api.do(t, http.MethodGet, "/favicon.svg?palette=set1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}
	if !strings.Contains(rec.Body.String(), "#e41a1c") {
		t.Errorf("favicon does not use set1: %s", rec.Body)
	}

	rec = api.do(t, http.MethodGet, "/favicon.svg?palette=nope", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown palette status = %d, want 404", rec.Code)
	}
}

func TestSession_EnvOverridesFile(t *testing.T) {
	api := setupTestAPI(t)
	t.Setenv("HUE_PALETTE", "set1")
	api.handler.env = config.LoadEnv()

	rec := api.do(t, http.MethodPost, "/api/v1/resolve", ResolveRequest{Format: "hex"})
	body := decode[paletteBody](t, rec)
	if body.Palette.Size != len(model.Palettes["set1"]) {
		t.Errorf("current cycle size = %d, want set1's", body.Palette.Size)
	}
}

func TestPaletteReloader(t *testing.T) {
	api := setupTestAPI(t)
	hub := NewWebSocketHub()
	client := &WebSocketClient{hub: hub, send: make(chan []byte, 10)}
	hub.addClient(client)

	reloader := &paletteReloader{registry: api.registry, hub: hub}

	content := "hue_schema = \"palettes/1\"\n[palettes]\nlive = [\"#123456\"]\n"
	testutil.WritePaletteFile(t, api.path, content)
	reloader.OnFileChange(FileChange{Type: FileChangeModified, Path: api.path})

	if !api.registry.Exists("live") {
		t.Error("registry not reloaded")
	}
	expectMessage(t, client, MessagePalettesChanged)

	// A broken file keeps the old palettes and reports the error.
	testutil.WritePaletteFile(t, api.path, "hue_schema = \"palettes/9\"\n")
	reloader.OnFileChange(FileChange{Type: FileChangeModified, Path: api.path})

	if !api.registry.Exists("live") {
		t.Error("previous palettes lost after failed reload")
	}
	expectMessage(t, client, MessagePalettesError)
}

func expectMessage(t *testing.T, client *WebSocketClient, msgType string) {
	t.Helper()
	select {
	case msg := <-client.send:
		var received WebSocketMessage
		if err := json.Unmarshal(msg, &received); err != nil {
			t.Fatal(err)
		}
		if received.Type != msgType {
			t.Errorf("Type = %q, want %q", received.Type, msgType)
		}
	case <-time.After(100 * time.Millisecond):
		t.Errorf("no %s message", msgType)
	}
}
