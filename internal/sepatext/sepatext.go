// Package sepatext folds arbitrary text into the restricted character set
// allowed for textual fields in SEPA payment messages.
package sepatext

import (
	"regexp"
	"strings"

	"github.com/gosimple/unidecode"
)

// German banking practice folds umlauts to digraphs, which unidecode does not
// do on its own. Applied before the generic transliteration.
var digraphs = strings.NewReplacer(
	"ä", "ae", "ö", "oe", "ü", "ue",
	"Ä", "Ae", "Ö", "Oe", "Ü", "Ue",
	"ß", "ss",
)

var conformantPattern = regexp.MustCompile(`^[A-Za-z0-9 /?:().,'+-]*$`)

// Transliterate maps accented and non-ASCII characters to their closest
// ASCII equivalents. It does not guarantee conformance: characters with no
// mapping survive and must be caught by Conformant.
func Transliterate(s string) string {
	return unidecode.Unidecode(digraphs.Replace(s))
}

// Conformant reports whether every character of s lies in the SEPA charset
// A-Za-z0-9 /?:().,'+- exactly. Non-conformant text is rejected by callers,
// never silently stripped.
func Conformant(s string) bool {
	return conformantPattern.MatchString(s)
}
