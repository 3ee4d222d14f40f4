package version

import (
	"fmt"
)

// SchemaVersionError indicates a schema version problem while reading a palette file.
type SchemaVersionError struct {
	FilePath    string // Path to the problematic file
	Found       string // What was found (e.g., "missing", "palettes/2")
	Expected    string // What was expected (e.g., "palettes/1")
	MinRequired string // Minimum hue version required (if upgrade needed)
}

func (e *SchemaVersionError) Error() string {
	if e.MinRequired != "" {
		return fmt.Sprintf(
			"palette file schema %s requires hue >= %s (file: %s, supports up to: %s)",
			e.Found, e.MinRequired, e.FilePath, e.Expected,
		)
	}
	if e.Found == "missing" {
		return fmt.Sprintf(
			"palette file has no hue_schema (file: %s). Add hue_schema = %q.",
			e.FilePath, e.Expected,
		)
	}
	return fmt.Sprintf(
		"palette file has invalid schema: found %s, expected %s (file: %s)",
		e.Found, e.Expected, e.FilePath,
	)
}

// MissingPaletteFileSchema creates an error for a palette file missing hue_schema.
func MissingPaletteFileSchema(path string) error {
	return &SchemaVersionError{
		FilePath: path,
		Found:    "missing",
		Expected: CurrentPaletteFileSchema(),
	}
}

// InvalidPaletteFileSchema creates an error for a palette file with an unsupported schema.
func InvalidPaletteFileSchema(path, found string) error {
	e := &SchemaVersionError{
		FilePath: path,
		Found:    found,
		Expected: CurrentPaletteFileSchema(),
	}
	// Check if it's a future version
	if v, err := ParsePaletteFileVersion(found); err == nil && v > CurrentPaletteFileVersion {
		if minHue, ok := MinHueVersion[found]; ok {
			e.MinRequired = minHue
		} else {
			e.MinRequired = "a newer version"
		}
	}
	return e
}
