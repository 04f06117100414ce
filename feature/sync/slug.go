package sync

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var deaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify converts a title into a URL- and key-safe slug: accents stripped,
// lowercased, non-alphanumeric runs collapsed into single hyphens.
func Slugify(s string) string {
	if stripped, _, err := transform.String(deaccent, s); err == nil {
		s = stripped
	}
	s = strings.ToLower(s)

	var b strings.Builder
	lastHyphen := true // avoid a leading hyphen
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
