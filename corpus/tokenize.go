package corpus

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Tokenize splits a sentence into words. The line is NFC normalized so
// composed and decomposed spellings of a word share an id, then split
// on runs of whitespace: consecutive, leading and trailing delimiters
// never produce empty words.
func Tokenize(line string) []string {
	return strings.Fields(norm.NFC.String(line))
}
