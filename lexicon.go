package sintaxis

import (
	"fmt"
	"sort"
)

// Lexicon maps each category to its set of normalized forms.
//
// A Lexicon is filled by a LexiconSource, expanded once with the regular
// conjugations of its verbs and then frozen by the Analyzer that owns
// it. A frozen Lexicon is read-only and safe for concurrent lookups;
// Add is not safe for concurrent use.
type Lexicon struct {
	// forms maps category → set of Normalize(form).
	forms map[Category]map[string]struct{}

	expanded bool
	frozen   bool
}

// NewLexicon returns an empty, writable Lexicon.
func NewLexicon() *Lexicon {
	lx := &Lexicon{forms: make(map[Category]map[string]struct{}, len(lexical))}
	for _, c := range lexical {
		lx.forms[c] = make(map[string]struct{})
	}
	return lx
}

// Add inserts Normalize(word) into category c. Adding a form twice is a
// no-op.
func (lx *Lexicon) Add(c Category, word string) error {
	if lx.frozen {
		return ErrLexiconFrozen
	}
	set, ok := lx.forms[c]
	if !ok {
		return fmt.Errorf("add %q: %s is not a lexical category", word, c)
	}
	set[Normalize(word)] = struct{}{}
	return nil
}

// Contains reports whether word, once normalized, is a form of c.
func (lx *Lexicon) Contains(c Category, word string) bool {
	_, ok := lx.forms[c][Normalize(word)]
	return ok
}

// Words returns the sorted forms of category c.
func (lx *Lexicon) Words(c Category) []string {
	set := lx.forms[c]
	out := make([]string, 0, len(set))
	for w := range set {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of forms in category c.
func (lx *Lexicon) Len(c Category) int {
	return len(lx.forms[c])
}

// Total returns the number of forms across all categories.
func (lx *Lexicon) Total() int {
	n := 0
	for _, set := range lx.forms {
		n += len(set)
	}
	return n
}

// Stats returns the form count of every lexical category, keyed by label.
func (lx *Lexicon) Stats() map[string]int {
	out := make(map[string]int, len(lexical))
	for _, c := range lexical {
		out[c.String()] = len(lx.forms[c])
	}
	return out
}

// Frozen reports whether the lexicon rejects further additions.
func (lx *Lexicon) Frozen() bool {
	return lx.frozen
}

func (lx *Lexicon) freeze() {
	lx.frozen = true
}
