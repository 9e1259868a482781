package labelparser

import (
	"strings"
	"unicode"
)

const edgeSeparators = ",;:/-~& "

// sanitize narrows every present field to allowed characters and drops
// fields that end up empty.
func (p *Parser) sanitize(info ParsedCoffeeInfo) ParsedCoffeeInfo {
	var out ParsedCoffeeInfo
	for _, f := range Fields {
		if v := SanitizeValue(info.Get(f), p.punctuation); v != "" {
			out = out.With(f, v)
		}
	}
	return out
}

// SanitizeValue keeps letters, digits and the runes in punctuation; anything
// else becomes a space. Whitespace is collapsed and dangling separators are
// trimmed.
func SanitizeValue(v, punctuation string) string {
	v = strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r), unicode.IsMark(r), unicode.IsDigit(r):
			return r
		case strings.ContainsRune(punctuation, r):
			return r
		}
		return ' '
	}, v)
	v = strings.Join(strings.Fields(v), " ")
	return strings.Trim(v, edgeSeparators)
}
