package parser

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// accentFolder strips combining marks so "Código" and "Codigo" compare equal.
var accentFolder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// FoldHeader normalizes a column header for alias matching: trims,
// removes embedded whitespace, strips accents and lowercases.
func FoldHeader(name string) string {
	name = strings.TrimSpace(name)
	name = whitespaceRe.ReplaceAllString(name, "")
	if folded, _, err := transform.String(accentFolder, name); err == nil {
		name = folded
	}
	return strings.ToLower(name)
}

// ParseQuantity coerces a cell value to an integer quantity.
// Anything that is not a numeric literal resolves to 0.
func ParseQuantity(value string) int {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}
	if n, err := strconv.Atoi(value); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return int(f)
	}
	return 0
}
