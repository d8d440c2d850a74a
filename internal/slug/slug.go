// Package slug derives URL-safe identifiers from display names. Append-mode
// imports use the slug to decide whether an incoming category matches an
// existing one, so generation must be deterministic.
package slug

import (
	"fmt"

	gslug "github.com/gosimple/slug"
)

// Generate transliterates name into a lowercase, hyphen-separated slug.
// Non-latin input (e.g. Chinese category names) is transliterated rather
// than stripped. Names that reduce to nothing fall back to "category".
func Generate(name string) string {
	s := gslug.Make(name)
	if s == "" {
		return "category"
	}
	return s
}

// Unique appends a numeric suffix until taken reports the slug as free.
// Used by admin category creation. Imports skip it: there, a same-slug
// category is a merge target, not a collision.
func Unique(name string, taken func(string) bool) string {
	base := Generate(name)
	if !taken(base) {
		return base
	}
	for i := 2; ; i++ {
		candidate := fmt.Sprintf("%s-%d", base, i)
		if !taken(candidate) {
			return candidate
		}
	}
}
