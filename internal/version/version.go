package version

import (
	"fmt"
	"strconv"
	"strings"
)

// Current schema version - bump this when making breaking changes to palettes.toml.
//
// CHECKLIST when bumping a version:
//  1. Update the constant below
//  2. Add entry to MinHueVersion map (tested by TestMinHueVersionCompleteness)
//  3. Teach FileStore.Load to read the previous version
const CurrentPaletteFileVersion = 1

// PaletteFileSchemaPrefix prefixes the hue_schema value in palettes.toml.
const PaletteFileSchemaPrefix = "palettes/"

// MinHueVersion maps schema identifiers to the minimum hue version required.
// Used to provide helpful upgrade messages when encountering newer schemas.
var MinHueVersion = map[string]string{
	"palettes/1": "0.1.0",
}

// FormatPaletteFileSchema creates a schema string from a version number.
// Example: FormatPaletteFileSchema(1) returns "palettes/1"
func FormatPaletteFileSchema(v int) string {
	return fmt.Sprintf("%s%d", PaletteFileSchemaPrefix, v)
}

// ParsePaletteFileVersion extracts the version number from a schema string.
// Returns an error if the format is invalid.
func ParsePaletteFileVersion(schema string) (int, error) {
	if !strings.HasPrefix(schema, PaletteFileSchemaPrefix) {
		return 0, fmt.Errorf("invalid palette file schema format: %q (expected %sN)", schema, PaletteFileSchemaPrefix)
	}
	versionStr := strings.TrimPrefix(schema, PaletteFileSchemaPrefix)
	v, err := strconv.Atoi(versionStr)
	if err != nil {
		return 0, fmt.Errorf("invalid palette file schema version: %q", versionStr)
	}
	if v < 1 {
		return 0, fmt.Errorf("invalid palette file schema version: %d (must be >= 1)", v)
	}
	return v, nil
}

// CurrentPaletteFileSchema returns the current schema string.
func CurrentPaletteFileSchema() string {
	return FormatPaletteFileSchema(CurrentPaletteFileVersion)
}
