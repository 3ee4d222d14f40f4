package version

import (
	"strings"
	"testing"
)

func TestFormatPaletteFileSchema(t *testing.T) {
	tests := []struct {
		version  int
		expected string
	}{
		{1, "palettes/1"},
		{2, "palettes/2"},
		{10, "palettes/10"},
	}
	for _, tt := range tests {
		got := FormatPaletteFileSchema(tt.version)
		if got != tt.expected {
			t.Errorf("FormatPaletteFileSchema(%d) = %q, want %q", tt.version, got, tt.expected)
		}
	}
}

func TestParsePaletteFileVersion(t *testing.T) {
	tests := []struct {
		schema    string
		expected  int
		expectErr bool
	}{
		{"palettes/1", 1, false},
		{"palettes/12", 12, false},
		{"global/1", 0, true},     // Wrong prefix
		{"palettes/", 0, true},    // Missing version
		{"palettes/abc", 0, true}, // Invalid version
		{"palettes/0", 0, true},   // Version must be >= 1
		{"palettes/-1", 0, true},  // Negative version
		{"", 0, true},             // Empty
	}
	for _, tt := range tests {
		got, err := ParsePaletteFileVersion(tt.schema)
		if tt.expectErr {
			if err == nil {
				t.Errorf("ParsePaletteFileVersion(%q) expected error, got %d", tt.schema, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParsePaletteFileVersion(%q) unexpected error: %v", tt.schema, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("ParsePaletteFileVersion(%q) = %d, want %d", tt.schema, got, tt.expected)
		}
	}
}

func TestMinHueVersionCompleteness(t *testing.T) {
	for v := 1; v <= CurrentPaletteFileVersion; v++ {
		key := FormatPaletteFileSchema(v)
		if _, ok := MinHueVersion[key]; !ok {
			t.Errorf("MinHueVersion missing entry for %s", key)
		}
	}
}

func TestInvalidPaletteFileSchema_FutureVersion(t *testing.T) {
	err := InvalidPaletteFileSchema("/tmp/palettes.toml", "palettes/99")

	sve, ok := err.(*SchemaVersionError)
	if !ok {
		t.Fatalf("expected *SchemaVersionError, got %T", err)
	}
	if sve.MinRequired != "a newer version" {
		t.Errorf("MinRequired = %q, want %q", sve.MinRequired, "a newer version")
	}
	if !strings.Contains(err.Error(), "requires hue >=") {
		t.Errorf("error should mention upgrade, got: %s", err.Error())
	}
}

func TestMissingPaletteFileSchema_Message(t *testing.T) {
	err := MissingPaletteFileSchema("/tmp/palettes.toml")
	if !strings.Contains(err.Error(), `hue_schema = "palettes/1"`) {
		t.Errorf("error should suggest the schema line, got: %s", err.Error())
	}
}
