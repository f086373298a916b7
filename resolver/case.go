package resolver

import (
	"strings"
	"unicode"

	"github.com/golang-cz/textcase"
)

// Words splits an engine identifier into its words. Besides separators and
// lower-to-upper changes it breaks after an acronym that runs into a
// capitalized word ("HTTPRequest" is HTTP, Request) and before a digit run
// ("Physics2DServer" is Physics, 2D, Server).
func Words(s string) []string {
	runes := []rune(s)
	var (
		words []string
		cur   []rune
	)
	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = cur[:0]
		}
	}
	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			continue
		}
		if len(cur) > 0 {
			prev := cur[len(cur)-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			switch {
			case unicode.IsLower(prev) && unicode.IsUpper(r):
				flush()
			case unicode.IsLetter(prev) && unicode.IsDigit(r):
				flush()
			case unicode.IsUpper(r) && nextLower && (unicode.IsUpper(prev) || unicode.IsDigit(prev)):
				flush()
			}
		}
		cur = append(cur, r)
	}
	flush()
	return words
}

// lowerWords joins the words of s in lower snake case, the form textcase
// converts without reading case changes of its own.
func lowerWords(s string) string {
	words := Words(s)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, "_")
}

// SnakeCase converts an engine identifier to snake case,
// e.g. "HTTPRequest" becomes "http_request".
func SnakeCase(s string) string {
	return textcase.SnakeCase(lowerWords(s))
}

// PascalCase converts an engine identifier to an exported Go identifier,
// e.g. "SSAOQuality" becomes "SsaoQuality" and "get_node" becomes "GetNode".
func PascalCase(s string) string {
	return textcase.PascalCase(lowerWords(s))
}
