package store

import (
	"testing"

	huerr "github.com/amterp/hue/internal/errors"
	"github.com/amterp/hue/internal/model"
)

func TestBuiltinStore_Lookup(t *testing.T) {
	s := NewBuiltinStore()

	tests := []struct {
		query     string
		wantName  string
		wantAlias string
		wantLen   int
	}{
		{"yellowbrick", "yellowbrick", "", 6},
		{"YELLOWBRICK", "yellowbrick", "", 6},
		{"accent-8", "Accent-8", "", 8},
		{"Accent-8", "Accent-8", "", 8},
		{"accent", "accent", "Accent-8", 8},
		{"Bold", "bold", "Set1-9", 9},
		{"reset", "reset", "", 7},
	}

	for _, tt := range tests {
		e, err := s.Lookup(tt.query)
		if err != nil {
			t.Errorf("Lookup(%q) failed: %v", tt.query, err)
			continue
		}
		if e.Name != tt.wantName || e.AliasOf != tt.wantAlias || !e.Builtin {
			t.Errorf("Lookup(%q) = %+v", tt.query, e)
		}
		if len(e.Colors) != tt.wantLen {
			t.Errorf("Lookup(%q) has %d colors, want %d", tt.query, len(e.Colors), tt.wantLen)
		}
	}
}

func TestBuiltinStore_LookupUnknown(t *testing.T) {
	_, err := NewBuiltinStore().Lookup("no-such-palette")
	if !huerr.IsUnknownPalette(err) {
		t.Errorf("expected unknown palette error, got %v", err)
	}
}

func TestBuiltinStore_LookupReturnsCopy(t *testing.T) {
	s := NewBuiltinStore()
	e, _ := s.Lookup("set1")
	e.Colors[0] = "#000000"

	if model.Palettes["set1"][0] == "#000000" {
		t.Fatal("Lookup must not expose the built-in table")
	}
}

func TestBuiltinStore_Names(t *testing.T) {
	names := NewBuiltinStore().Names()

	if len(names) != len(model.Palettes)+len(model.Aliases) {
		t.Errorf("got %d names, want %d", len(names), len(model.Palettes)+len(model.Aliases))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Fatalf("names not sorted at %d: %q > %q", i, names[i-1], names[i])
		}
	}
}
