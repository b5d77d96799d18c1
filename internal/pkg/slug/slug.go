// Package slug derives URL-safe identifiers from content titles.
// The transform must match the one the legacy Node backend used so that
// links minted by the old deployment keep resolving.
package slug

import (
	"net/url"
	"strings"
	"unicode"
)

// Encode converts a title into its canonical slug: lowercase, strip
// everything outside [a-z0-9 -], collapse whitespace and hyphen runs into a
// single hyphen, trim leading/trailing hyphens. Total and deterministic; an
// all-symbol title yields "".
func Encode(title string) string {
	s := strings.ToLower(title)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteByte(' ')
		}
	}

	out := strings.Join(strings.Fields(b.String()), "-")
	for strings.Contains(out, "--") {
		out = strings.ReplaceAll(out, "--", "-")
	}
	return strings.Trim(out, "-")
}

// Decode heuristically reverses the slug transform for humanized-title
// lookups: hyphens become spaces and percent escapes are decoded. It is not
// an inverse of Encode; callers compare the result case-insensitively
// against stored titles.
func Decode(s string) string {
	spaced := strings.ReplaceAll(s, "-", " ")
	decoded, err := url.PathUnescape(spaced)
	if err != nil {
		return spaced
	}
	return decoded
}
