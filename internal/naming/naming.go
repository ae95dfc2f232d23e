package naming

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// initialisms maps lower-case words to their Go spelling.
var initialisms = map[string]string{
	"api":     "API",
	"http":    "HTTP",
	"id":      "ID",
	"json":    "JSON",
	"openapi": "OpenAPI",
	"uri":     "URI",
	"url":     "URL",
	"yaml":    "YAML",
}

// Words splits s into words on separators and case changes.
// Runs of upper-case letters stay together: "APIKey" -> "API", "Key".
func Words(s string) []string {
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

	runes := []rune(s)
	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			continue
		}
		if unicode.IsUpper(r) && len(cur) > 0 {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				flush()
			}
		}
		cur = append(cur, r)
	}
	flush()
	return words
}

// Exported builds an exported Go identifier from one or more names:
//
//	Exported("info", "contact", "url") // "InfoContactURL"
//	Exported("components.securitySchemes") // "ComponentsSecuritySchemes"
//
// A result that would start with a digit is prefixed with "N".
func Exported(names ...string) string {
	caser := cases.Title(language.English)

	var sb strings.Builder
	for _, name := range names {
		for _, w := range Words(name) {
			if init, ok := initialisms[strings.ToLower(w)]; ok {
				sb.WriteString(init)
				continue
			}
			if isUpper(w) && len([]rune(w)) > 1 {
				sb.WriteString(w)
				continue
			}
			sb.WriteString(caser.String(w))
		}
	}

	out := sb.String()
	if out != "" && unicode.IsDigit([]rune(out)[0]) {
		out = "N" + out
	}
	return out
}

// Unexported is like Exported with the leading word fully lower-cased:
// Unexported("openapi", "version") is "openapiVersion".
func Unexported(names ...string) string {
	var words []string
	for _, name := range names {
		words = append(words, Words(name)...)
	}
	if len(words) == 0 {
		return ""
	}
	first := strings.ToLower(words[0])
	if unicode.IsDigit([]rune(first)[0]) {
		first = "n" + first
	}
	return first + Exported(words[1:]...)
}

func isUpper(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) && !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}
