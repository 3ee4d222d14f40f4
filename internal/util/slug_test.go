package util

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// Basic cases
		{"Brand", "brand"},
		{"My Brand", "my-brand"},
		{"Accent-8", "accent-8"},

		// Underscores are kept
		{"sns_deep", "sns_deep"},
		{"_private_", "private"},

		// Special characters
		{"Brand (v2)", "brand-v2"},
		{"Q3: report colors", "q3-report-colors"},
		{"ocean.dark", "ocean-dark"},

		// Multiple spaces/hyphens
		{"Multiple   spaces", "multiple-spaces"},
		{"Already--hyphenated", "already-hyphenated"},
		{"  Leading spaces", "leading-spaces"},
		{"Trailing spaces  ", "trailing-spaces"},

		// Unicode and accents
		{"Café au lait", "cafe-au-lait"},
		{"Crème brûlée", "creme-brulee"},

		// Edge cases
		{"", ""},
		{"   ", ""},
		{"---", ""},
		{"a", "a"},
		{"A", "a"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := Slugify(tt.input)
			if result != tt.expected {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestStripMarks(t *testing.T) {
	if got := stripMarks("Ångström Noël"); got != "Angstrom Noel" {
		t.Errorf("stripMarks = %q", got)
	}
}
