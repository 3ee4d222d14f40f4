package prompt

import (
	"errors"
	"strings"
	"testing"
)

func TestKeepOrder(t *testing.T) {
	all := []string{"#ff0000", "#00ff00", "#0000ff", "#ff0000"}
	got := keepOrder(all, []string{"#0000ff", "#ff0000"})

	if strings.Join(got, ",") != "#ff0000,#0000ff" {
		t.Errorf("keepOrder = %v", got)
	}
}

func TestNoopPrompter(t *testing.T) {
	var p Prompter = NoopPrompter{}

	_, err := p.Select("Palette", []string{"a"})
	if !errors.Is(err, ErrNonInteractive) {
		t.Errorf("Select: %v", err)
	}
	if !strings.Contains(err.Error(), `"Palette"`) {
		t.Errorf("error should name the prompt: %v", err)
	}
	if _, err := p.Confirm("sure?", true); !errors.Is(err, ErrNonInteractive) {
		t.Errorf("Confirm: %v", err)
	}
	if _, err := p.Input("Name", ""); !errors.Is(err, ErrNonInteractive) {
		t.Errorf("Input: %v", err)
	}
	if _, err := p.SelectColors("colors", []string{"#fff"}); !errors.Is(err, ErrNonInteractive) {
		t.Errorf("SelectColors: %v", err)
	}
}
