package prompt

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// selectHeight caps the visible rows of a palette picker; there are
// hundreds of built-in palettes.
const selectHeight = 15

// HuhPrompter asks questions with charmbracelet/huh forms, one field per form.
type HuhPrompter struct {
	accessible bool
}

// NewHuhPrompter creates a prompter. Accessible mode swaps the TUI for
// plain line-based prompts.
func NewHuhPrompter(accessible bool) *HuhPrompter {
	return &HuhPrompter{accessible: accessible}
}

func (p *HuhPrompter) run(field huh.Field) error {
	return huh.NewForm(huh.NewGroup(field)).
		WithAccessible(p.accessible).
		WithShowHelp(false).
		Run()
}

func (p *HuhPrompter) Select(title string, options []string) (string, error) {
	var choice string
	field := huh.NewSelect[string]().
		Title(title).
		Options(huh.NewOptions(options...)...).
		Height(selectHeight).
		Value(&choice)
	err := p.run(field)
	return choice, err
}

// Input pre-fills the field with defaultValue.
func (p *HuhPrompter) Input(title string, defaultValue string) (string, error) {
	value := defaultValue
	err := p.run(huh.NewInput().Title(title).Value(&value))
	return value, err
}

func (p *HuhPrompter) Confirm(title string, defaultValue bool) (bool, error) {
	answer := defaultValue
	err := p.run(huh.NewConfirm().Title(title).Value(&answer))
	return answer, err
}

// SelectColors shows each color as a swatch next to its spec. Every color
// starts selected; the result keeps the input order.
func (p *HuhPrompter) SelectColors(title string, colors []string) ([]string, error) {
	result := append([]string(nil), colors...)

	opts := make([]huh.Option[string], len(colors))
	for i, c := range colors {
		opts[i] = huh.NewOption(swatchLabel(c), c).Selected(true)
	}

	field := huh.NewMultiSelect[string]().
		Title(title).
		Options(opts...).
		Value(&result)
	if err := p.run(field); err != nil {
		return nil, err
	}

	return keepOrder(colors, result), nil
}

func swatchLabel(spec string) string {
	swatch := lipgloss.NewStyle().
		Background(lipgloss.Color(spec)).
		Render("    ")
	return swatch + " " + spec
}

// keepOrder filters all down to the members of picked, in all's order.
func keepOrder(all, picked []string) []string {
	want := make(map[string]bool, len(picked))
	for _, c := range picked {
		want[c] = true
	}

	var out []string
	for _, c := range all {
		if want[c] {
			out = append(out, c)
			delete(want, c)
		}
	}
	return out
}
