package sintaxis

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// classify tests word against every classified category of lx and
// tags numeric literals. It never fails: an unknown word yields a token
// with no categories.
func classify(lx *Lexicon, word string) WordToken {
	tok := WordToken{Word: word}
	for _, c := range classified {
		if lx.Contains(c, word) {
			tok.Categories = append(tok.Categories, c)
		}
	}
	if isNumeral(word) {
		tok.Categories = append(tok.Categories, Numeral)
	}
	return tok
}

// isNumeral reports whether the raw word is a decimal numeric literal.
func isNumeral(word string) bool {
	word = strings.TrimSpace(word)
	if word == "" {
		return false
	}
	f, err := strconv.ParseFloat(word, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return false
	}
	return !math.IsNaN(f)
}

// splitWords splits text into surface words on runs of whitespace.
func splitWords(text string) []string {
	return strings.Fields(text)
}
