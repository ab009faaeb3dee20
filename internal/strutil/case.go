package strutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// titleWord capitalizes a single word without locale-specific tailoring.
// A Caser is stateful and not safe to share across goroutines, so one is
// built per call.
func titleWord(w string) string {
	return cases.Title(language.Und).String(strings.ToLower(w))
}

// splitWords breaks an identifier or phrase into its constituent words.
// Separators are underscores, hyphens, and whitespace; a lower-to-upper
// transition inside a run also starts a new word, so camelCase input
// splits without separators.
func splitWords(s string) []string {
	var words []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}

	var prev rune
	for _, r := range s {
		switch {
		case r == '_' || r == '-' || unicode.IsSpace(r):
			flush()
		case unicode.IsUpper(r) && unicode.IsLower(prev):
			flush()
			current.WriteRune(r)
		default:
			current.WriteRune(r)
		}
		prev = r
	}
	flush()
	return words
}

// ToCamel converts a string to camelCase.
func ToCamel(s string) string {
	words := splitWords(s)
	if len(words) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(strings.ToLower(words[0]))
	for _, word := range words[1:] {
		b.WriteString(titleWord(word))
	}
	return b.String()
}

// ToPascal converts a string to PascalCase.
func ToPascal(s string) string {
	var b strings.Builder
	for _, word := range splitWords(s) {
		b.WriteString(titleWord(word))
	}
	return b.String()
}

// ToSnake converts a string to snake_case.
func ToSnake(s string) string {
	return joinLower(s, "_")
}

// ToKebab converts a string to kebab-case.
func ToKebab(s string) string {
	return joinLower(s, "-")
}

// ToTitle converts a string to Title Case with single spaces between words.
func ToTitle(s string) string {
	words := splitWords(s)
	for i, word := range words {
		words[i] = titleWord(word)
	}
	return strings.Join(words, " ")
}

func joinLower(s, sep string) string {
	words := splitWords(s)
	for i, word := range words {
		words[i] = strings.ToLower(word)
	}
	return strings.Join(words, sep)
}
