package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// sanitizeReplacer rewrites bracket, paren and punctuation runs before the
// final character filter. Order matters: "[]" must go before "[".
var sanitizeReplacer = strings.NewReplacer(
	"[]", "",
	"[", "_",
	"]", "",
	"(", "_",
	")", "",
	".", "_",
	"-", "_",
	" ", "_",
)

// SanitizeName reduces name to characters valid in an identifier.
// Examples:
//   - "pet-store" -> "pet_store"
//   - "Pet[]" -> "Pet"
//   - "io.k8s.Pod" -> "io_k8s_Pod"
//   - "$" -> "value"
func SanitizeName(name string) string {
	if name == "" {
		return name
	}

	if name == "$" {
		return "value"
	}

	replaced := sanitizeReplacer.Replace(name)

	var b strings.Builder

	b.Grow(len(replaced))

	for _, r := range replaced {
		if r == '_' || r < utf8.RuneSelf && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// Camelize joins the tokens of word into a camel-cased identifier.
// Existing capitals inside a token are preserved, so "XMLParser" and
// "PetStore" are returned unchanged in upper mode.
// Examples:
//   - Camelize("pet_store", false) -> "PetStore"
//   - Camelize("pet_store", true) -> "petStore"
//   - Camelize("petStore", false) -> "PetStore"
func Camelize(word string, lowerFirst bool) string {
	tokens := tokenizeCamelCase(word)
	if len(tokens) == 0 {
		return ""
	}

	var b strings.Builder

	b.Grow(len(word))

	for _, t := range tokens {
		b.WriteString(Capitalize(t))
	}

	out := b.String()
	if lowerFirst {
		out = lowerFirstRune(out)
	}

	return out
}

// Capitalize upper-cases the first rune of s.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}

	return string(unicode.ToUpper(r)) + s[size:]
}

func lowerFirstRune(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}

	return string(unicode.ToLower(r)) + s[size:]
}

// SanitizeTag converts an operation tag into the form used when naming API
// classes. A leading digit gets a "Class" prefix so the result is a valid
// identifier.
func SanitizeTag(tag string) string {
	out := Camelize(SanitizeName(tag), false)
	if r, _ := utf8.DecodeRuneInString(out); unicode.IsDigit(r) {
		out = "Class" + out
	}

	return out
}

// tokenizeCamelCase splits a CamelCase, camelCase or separated string into tokens.
// Examples:
//   - "OrderID" -> ["Order", "ID"]
//   - "pet_store" -> ["pet", "store"]
//   - "XMLParser" -> ["XML", "Parser"]
//   - "getHTTPResponse" -> ["get", "HTTP", "Response"]
func tokenizeCamelCase(s string) []string {
	if s == "" {
		return nil
	}

	var tokens []string

	var current strings.Builder

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}

			continue
		}

		if i > 0 && shouldStartNewToken(runes, i) && current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}

// shouldStartNewToken determines if a new token should start at position i.
func shouldStartNewToken(runes []rune, i int) bool {
	r := runes[i]
	prev := runes[i-1]
	isUpper := unicode.IsUpper(r)
	isPrevUpper := unicode.IsUpper(prev)

	// "petStore" -> split before 'S'
	if isUpper && !isPrevUpper && !isSeparator(prev) {
		return true
	}

	// "XMLParser" -> split before 'P'
	hasNextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])

	return isUpper && isPrevUpper && hasNextLower
}
