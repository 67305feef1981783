package declaration

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// pyRepr renders a scalar the way Python's repr() does.
func pyRepr(v any) string {
	switch val := v.(type) {
	case nil:
		return "None"
	case bool:
		if val {
			return "True"
		}
		return "False"
	case string:
		return pyStringRepr(val)
	case *big.Int:
		return val.String()
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", val)
	case float64:
		return pyFloatRepr(val)
	case float32:
		return pyFloatRepr(float64(val))
	default:
		return fmt.Sprintf("%v", val)
	}
}

// pyFloatRepr switches to exponent notation outside 1e-4 <= |f| < 1e16,
// like Python's float repr.
func pyFloatRepr(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	exp := 0
	if f != 0 {
		exp = int(math.Floor(math.Log10(math.Abs(f))))
	}
	if exp < -4 || exp >= 16 {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// pyStringRepr quotes s with single quotes, or double quotes when s contains
// a single quote but no double quote.
func pyStringRepr(s string) string {
	quote := '\''
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		quote = '"'
	}

	var b strings.Builder
	b.WriteRune(quote)
	for _, r := range s {
		switch {
		case r == quote || r == '\\':
			b.WriteRune('\\')
			b.WriteRune(r)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		case unicode.IsPrint(r):
			b.WriteRune(r)
		case r < 0x100:
			fmt.Fprintf(&b, `\x%02x`, r)
		case r < 0x10000:
			fmt.Fprintf(&b, `\u%04x`, r)
		default:
			fmt.Fprintf(&b, `\U%08x`, r)
		}
	}
	b.WriteRune(quote)
	return b.String()
}

// splitWords cuts s into tokens of a word followed by the whitespace after
// it. Concatenating the tokens yields s.
func splitWords(s string) []string {
	var tokens []string
	start := 0
	inSpace, word := false, false
	for i, r := range s {
		space := unicode.IsSpace(r)
		if inSpace && !space && word {
			tokens = append(tokens, s[start:i])
			start = i
		}
		inSpace = space
		word = word || !space
	}
	if start < len(s) {
		tokens = append(tokens, s[start:])
	}
	return tokens
}

// wrapWords packs whole tokens of s into segments whose quoted form fits
// in width columns. A token wider than width gets a segment of its own.
func wrapWords(s string, width int) []string {
	var segments []string
	cur := ""
	for _, tok := range splitWords(s) {
		if cur != "" && utf8.RuneCountInString(pyStringRepr(cur+tok)) > width {
			segments = append(segments, cur)
			cur = tok
			continue
		}
		cur += tok
	}
	if cur != "" {
		segments = append(segments, cur)
	}
	return segments
}
