// Package names derives identifier-safe and human-readable forms from a
// free-form name typed by the user.
//
// Every function here is total: empty or symbol-only input yields a fixed
// fallback instead of an error.
package names

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// fallback forms used when the input has no usable characters
const (
	DefaultVariableName = "MyClass"
	DefaultIdentifier   = "my_class"
	DefaultLabel        = "My Class"
)

// Words splits s on separators, lower-to-upper case transitions, the end of
// an acronym (HTTPServer -> HTTP, Server) and letter/digit boundaries.
func Words(s string) []string {
	runes := []rune(s)
	words := make([]string, 0, 4)
	start := -1

	flush := func(end int) {
		if start >= 0 && end > start {
			words = append(words, string(runes[start:end]))
		}
		start = -1
	}

	for i, r := range runes {
		if !isWordRune(r) {
			flush(i)
			continue
		}
		if start < 0 {
			start = i
			continue
		}

		prev := runes[i-1]
		switch {
		case unicode.IsDigit(prev) != unicode.IsDigit(r):
			flush(i)
			start = i
		case unicode.IsLower(prev) && unicode.IsUpper(r):
			flush(i)
			start = i
		case unicode.IsUpper(prev) && unicode.IsUpper(r) && i+1 < len(runes) && unicode.IsLower(runes[i+1]):
			flush(i)
			start = i
		}
	}
	flush(len(runes))

	return words
}

// ValidVariableName returns input as a bare identifier matching
// [A-Za-z_][A-Za-z0-9_]*. Runs of illegal characters collapse to a single
// underscore and a leading digit gets an underscore prefix.
func ValidVariableName(input string) string {
	parts := strings.FieldsFunc(strings.TrimSpace(input), func(r rune) bool {
		return !isIdentRune(r)
	})
	if len(parts) == 0 {
		return DefaultVariableName
	}

	name := strings.Join(parts, "_")
	if name[0] >= '0' && name[0] <= '9' {
		name = "_" + name
	}
	return name
}

// LowerCaseUnderscores returns the words of input lower-cased and joined
// with underscores. Only ASCII letters and digits are kept so the result can
// be used as part of a dotted registration id.
func LowerCaseUnderscores(input string) string {
	lower := cases.Lower(language.Und)

	parts := make([]string, 0, 4)
	for _, word := range Words(input) {
		word = strings.Map(func(r rune) rune {
			if r < unicode.MaxASCII && isWordRune(r) {
				return r
			}
			return -1
		}, word)
		if word == "" {
			continue
		}
		parts = append(parts, lower.String(word))
	}

	if len(parts) == 0 {
		return DefaultIdentifier
	}
	return strings.Join(parts, "_")
}

// CapitalizedWords returns the words of input with each word capitalized,
// separated by single spaces.
func CapitalizedWords(input string) string {
	words := Words(input)
	if len(words) == 0 {
		return DefaultLabel
	}

	title := cases.Title(language.Und)
	for i, word := range words {
		words[i] = title.String(word)
	}
	return strings.Join(words, " ")
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isIdentRune(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}
