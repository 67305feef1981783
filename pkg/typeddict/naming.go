package typeddict

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/seven7ty/typeshi/pkg/valuetree"
)

// NameHook derives a nested record's name from its path in the source tree.
type NameHook func(path valuetree.Path) string

// PascalName joins the path with underscores and converts the result to
// PascalCase, so ("user", "home_address") becomes "UserHomeAddress".
func PascalName(path valuetree.Path) string {
	return PascalCase(strings.Join(path, "_"))
}

// PascalCase capitalizes every underscore-separated word: its first rune
// is title-cased and the rest lower-cased. Spaces and hyphens inside a word
// are kept and do not start a new word.
func PascalCase(s string) string {
	title := cases.Title(language.Und)
	lower := cases.Lower(language.Und)
	var b strings.Builder
	for _, word := range strings.Split(s, "_") {
		if word == "" {
			continue
		}
		_, size := utf8.DecodeRuneInString(word)
		b.WriteString(title.String(word[:size]))
		b.WriteString(lower.String(word[size:]))
	}
	return b.String()
}
