package errors

import (
	"fmt"
	"testing"
)

func TestUnknownPalette_WrapsSentinel(t *testing.T) {
	err := fmt.Errorf("resolve: %w", UnknownPalette("not-a-real-palette"))

	if !IsUnknownPalette(err) {
		t.Fatalf("expected IsUnknownPalette to be true for %v", err)
	}
	if IsInvalidColor(err) {
		t.Error("unknown palette should not be an invalid color")
	}
	want := "resolve: 'not-a-real-palette' is not a recognized palette"
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
}

func TestInvalidColorError_Messages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"with source", InvalidColor("mine", "#zzzzzz"), `could not generate a palette for mine: invalid color "#zzzzzz"`},
		{"no source", InvalidColor("", "blurple"), `invalid color "blurple"`},
		{"empty", EmptyPalette("[]"), "could not generate a palette for []: no colors"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
			if !IsInvalidColor(tt.err) {
				t.Error("expected IsInvalidColor to be true")
			}
		})
	}
}

func TestValidationAndExists(t *testing.T) {
	if !IsValidationError(InvalidField("length", "must not be negative")) {
		t.Error("InvalidField should be a validation error")
	}
	if !IsAlreadyExists(PaletteAlreadyExists("mine")) {
		t.Error("PaletteAlreadyExists should be an already-exists error")
	}
	if IsAlreadyExists(InvalidField("x", "y")) {
		t.Error("validation error should not be an already-exists error")
	}
}
