package service

import (
	"path/filepath"
	"testing"

	"github.com/amterp/hue/internal/store"
	"github.com/amterp/hue/testutil"
)

// setupDoctorTest writes content to a palette file in a temp dir.
func setupDoctorTest(t *testing.T, content string) (*DoctorService, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "palettes.toml")
	if content != "" {
		testutil.WritePaletteFile(t, path, content)
	}
	return NewDoctorService(path), path
}

func issueCodes(report *DiagnosticReport) map[string]int {
	codes := make(map[string]int)
	for _, issue := range report.Issues {
		codes[issue.Code]++
	}
	return codes
}

func TestDoctorService_Healthy(t *testing.T) {
	service, _ := setupDoctorTest(t, `hue_schema = "palettes/1"
default_palette = "brand"
code_palette = "accent"

[palettes]
brand = ["#ca0b03", "navy", "k"]
`)

	report, err := service.Diagnose()
	if err != nil {
		t.Fatalf("Diagnose failed: %v", err)
	}
	if len(report.Issues) != 0 {
		t.Errorf("expected no issues, got %+v", report.Issues)
	}
	if report.Palettes != 1 {
		t.Errorf("Palettes = %d", report.Palettes)
	}
}

func TestDoctorService_MissingFile(t *testing.T) {
	service, _ := setupDoctorTest(t, "")

	report, err := service.Diagnose()
	if err != nil {
		t.Fatal(err)
	}
	if report.HasErrors() || len(report.Issues) != 0 {
		t.Errorf("missing file should be healthy, got %+v", report.Issues)
	}
}

func TestDoctorService_Malformed(t *testing.T) {
	service, _ := setupDoctorTest(t, "this is = = not toml")

	report, err := service.Diagnose()
	if err != nil {
		t.Fatal(err)
	}
	if issueCodes(report)[CodeMalformedPaletteFile] != 1 || !report.HasErrors() {
		t.Errorf("expected malformed file error, got %+v", report.Issues)
	}

	// Fix refuses to touch it.
	fixed, err := service.Fix(report)
	if err != nil {
		t.Fatal(err)
	}
	if fixed.Summary.Fixed != 0 {
		t.Errorf("Fixed = %d", fixed.Summary.Fixed)
	}
}

func TestDoctorService_FindsEverything(t *testing.T) {
	service, _ := setupDoctorTest(t, `default_palette = "nope"
code_palette = "also-nope"

[palettes]
Yellowbrick = ["#ffffff"]
brand = ["#ffffff", "#ggg", "blurple"]
empty = []
`)

	report, err := service.Diagnose()
	if err != nil {
		t.Fatal(err)
	}

	codes := issueCodes(report)
	want := map[string]int{
		CodeSchemaMissing:         1,
		CodeNameCollision:         1,
		CodeInvalidColor:          2,
		CodeEmptyPalette:          1,
		CodeUnknownDefaultPalette: 1,
		CodeUnknownCodePalette:    1,
	}
	for code, n := range want {
		if codes[code] != n {
			t.Errorf("%s: got %d, want %d", code, codes[code], n)
		}
	}
	if report.Summary.Warnings != 2 || report.Summary.Errors != 5 {
		t.Errorf("summary = %+v", report.Summary)
	}
}

func TestDoctorService_Fix(t *testing.T) {
	service, path := setupDoctorTest(t, `default_palette = "nope"

[palettes]
brand = ["#ffffff", "#ggg"]
broken = ["bad"]
empty = []
`)

	report, err := service.Diagnose()
	if err != nil {
		t.Fatal(err)
	}

	fixed, err := service.Fix(report)
	if err != nil {
		t.Fatalf("Fix failed: %v", err)
	}
	if fixed.Summary.Fixed != 5 {
		t.Errorf("Fixed = %d, want 5", fixed.Summary.Fixed)
	}
	if len(fixed.Issues) != 0 {
		t.Errorf("remaining issues: %+v", fixed.Issues)
	}

	// The fixed file now passes strict loading.
	f, err := store.NewFileStore(path).Load()
	if err != nil {
		t.Fatalf("fixed file does not load: %v", err)
	}
	if f.DefaultPalette != "" {
		t.Errorf("default_palette = %q", f.DefaultPalette)
	}
	if got := f.Palettes["brand"]; len(got) != 1 || got[0] != "#ffffff" {
		t.Errorf("brand = %v", got)
	}
	if _, ok := f.Palettes["broken"]; ok {
		t.Error("palette with no valid colors should be removed")
	}
	if _, ok := f.Palettes["empty"]; ok {
		t.Error("empty palette should be removed")
	}

	again, err := service.Diagnose()
	if err != nil {
		t.Fatal(err)
	}
	if len(again.Issues) != 0 {
		t.Errorf("issues after fix: %+v", again.Issues)
	}
}
