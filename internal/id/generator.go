package id

import (
	"strings"
	"time"

	fid "github.com/amterp/flexid"
)

// Generated names are short: a coarse tick keeps the time part small and
// two random characters separate palettes added within the same tick.
var generator = fid.MustNewGenerator(fid.NewConfig().
	WithEpoch(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)).
	WithTickSize(time.Second).
	WithNumRandomChars(2))

const namePrefix = "custom-"

// maxAttempts bounds retries when a generated name is already taken.
const maxAttempts = 8

// PaletteName returns a name for a palette added without one. Generated
// names are lower case so they survive slugging unchanged. taken reports
// whether a candidate is already in use; after maxAttempts collisions the
// last candidate is returned and the caller's uniqueness check decides.
func PaletteName(taken func(string) bool) string {
	var name string
	for range maxAttempts {
		name = namePrefix + strings.ToLower(generator.MustGenerate())
		if taken == nil || !taken(name) {
			break
		}
	}
	return name
}
