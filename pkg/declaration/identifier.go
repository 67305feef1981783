package declaration

import (
	"fmt"
	"unicode"
)

// pythonKeywords cannot appear as field or class names in a class body.
var pythonKeywords = map[string]bool{
	"False": true, "None": true, "True": true, "and": true, "as": true,
	"assert": true, "async": true, "await": true, "break": true, "class": true,
	"continue": true, "def": true, "del": true, "elif": true, "else": true,
	"except": true, "finally": true, "for": true, "from": true, "global": true,
	"if": true, "import": true, "in": true, "is": true, "lambda": true,
	"nonlocal": true, "not": true, "or": true, "pass": true, "raise": true,
	"return": true, "try": true, "while": true, "with": true, "yield": true,
}

// IsIdentifier reports whether s can be written as a name in Python source:
// a letter or underscore followed by letters, digits, underscores or
// combining marks, and not a keyword.
func IsIdentifier(s string) bool {
	if s == "" || pythonKeywords[s] {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', unicode.IsLetter(r), unicode.Is(unicode.Nl, r):
		case i > 0 && (unicode.IsDigit(r) || unicode.In(r, unicode.Mn, unicode.Mc, unicode.Pc)):
		default:
			return false
		}
	}
	return true
}

func checkIdentifier(what, name string) error {
	if !IsIdentifier(name) {
		return fmt.Errorf("%w: %s %q", ErrInvalidIdentifier, what, name)
	}
	return nil
}
