// Package slug derives URL-safe identifiers from free text.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const separator = '-'

// Make lower-cases s, strips accents and replaces every run of characters outside [a-z0-9]
// with a single dash. The result never starts or ends with a dash and may be empty.
func Make(s string) string {
	stripped, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), s)
	if err != nil {
		stripped = s
	}

	var builder strings.Builder

	pendingSeparator := false

	for _, r := range strings.ToLower(stripped) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingSeparator && builder.Len() > 0 {
				builder.WriteRune(separator)
			}

			builder.WriteRune(r)

			pendingSeparator = false

			continue
		}

		pendingSeparator = true
	}

	return builder.String()
}
