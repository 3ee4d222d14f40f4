package plotstate

import (
	"testing"

	huerr "github.com/amterp/hue/internal/errors"
	"github.com/amterp/hue/internal/model"
)

func TestNew_Defaults(t *testing.T) {
	s := New()

	cycle := s.Cycle()
	if len(cycle) != len(DefaultCycle) {
		t.Fatalf("expected %d cycle colors, got %d", len(DefaultCycle), len(cycle))
	}
	if cycle[0].Hex() != "#1f77b4" {
		t.Errorf("first cycle color = %s", cycle[0].Hex())
	}

	b, ok := s.Code('b')
	if !ok || b.Hex() != "#0000ff" {
		t.Errorf("code b = %v (ok=%v), want #0000ff", b.Hex(), ok)
	}
	k, ok := s.CachedCode('k')
	if !ok || k.Hex() != "#000000" {
		t.Errorf("cached code k = %v (ok=%v), want #000000", k.Hex(), ok)
	}
}

func TestCycle_ReturnsCopy(t *testing.T) {
	s := New()

	cycle := s.Cycle()
	cycle[0] = model.Color{R: 1}

	if s.Cycle()[0] == cycle[0] {
		t.Error("mutating the returned cycle must not change the state")
	}

	input := []model.Color{{R: 0.5}}
	s.SetCycle(input)
	input[0] = model.Color{G: 1}
	if s.Cycle()[0] != (model.Color{R: 0.5}) {
		t.Error("SetCycle must copy its input")
	}
}

func TestSetCode_WritesBothViews(t *testing.T) {
	s := New()
	c := model.MustParseHex("#123456")

	if err := s.SetCode('m', c); err != nil {
		t.Fatalf("SetCode failed: %v", err)
	}

	if got, _ := s.Code('m'); got != c {
		t.Errorf("primary view = %v, want %v", got, c)
	}
	if got, _ := s.CachedCode('m'); got != c {
		t.Errorf("cache view = %v, want %v", got, c)
	}
}

func TestSetCode_Rejects(t *testing.T) {
	s := New()

	if err := s.SetCode('x', model.Color{}); !huerr.IsValidationError(err) {
		t.Errorf("expected validation error for code x, got %v", err)
	}
	if err := s.SetCode('b', model.Color{R: 2}); !huerr.IsInvalidColor(err) {
		t.Errorf("expected invalid color error, got %v", err)
	}
}

func TestCodes_Order(t *testing.T) {
	codes := New().Codes()

	var got string
	for _, cc := range codes {
		got += cc.Code
	}
	if got != "bgrmyck" {
		t.Errorf("code order = %q, want bgrmyck", got)
	}
}

func TestToRGB(t *testing.T) {
	s := New()

	tests := []struct {
		spec    string
		want    string
		wantErr bool
	}{
		{"#ca0b03", "#ca0b03", false},
		{"#CA0B03", "#ca0b03", false},
		{"#fff", "#ffffff", false},
		{"r", "#ff0000", false},
		{"red", "#ff0000", false},
		{"Navy", "#000080", false},
		{"#ca0b0", "", true},
		{"not-a-color", "", true},
		{"x", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := s.ToRGB(tt.spec)
		if tt.wantErr {
			if !huerr.IsInvalidColor(err) {
				t.Errorf("ToRGB(%q) expected invalid color error, got %v", tt.spec, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ToRGB(%q) unexpected error: %v", tt.spec, err)
			continue
		}
		if ToHex(got) != tt.want {
			t.Errorf("ToRGB(%q) = %s, want %s", tt.spec, ToHex(got), tt.want)
		}
	}
}

func TestToRGB_FollowsRemappedCodes(t *testing.T) {
	s := New()
	if err := s.SetCode('g', model.MustParseHex("#9fc377")); err != nil {
		t.Fatal(err)
	}

	got, err := s.ToRGB("g")
	if err != nil {
		t.Fatal(err)
	}
	if ToHex(got) != "#9fc377" {
		t.Errorf("ToRGB(g) = %s after remap, want #9fc377", ToHex(got))
	}
}

func TestValidSpec_AgreesWithToRGB(t *testing.T) {
	s := New()
	for _, spec := range []string{"#ca0b03", "#fff", "r", "k", "red", "Navy", "#ca0b0", "x", "", "not-a-color"} {
		_, err := s.ToRGB(spec)
		if got := ValidSpec(spec); got != (err == nil) {
			t.Errorf("ValidSpec(%q) = %v, but ToRGB error = %v", spec, got, err)
		}
	}
}
