package sintaxis

import "fmt"

// Category is the grammatical category of a lexicon entry.
type Category int

const (
	Adjective Category = iota
	Adverb
	Preposition
	Noun
	Verb
	Pronoun
	Person
	Place
	// Article is consulted by the grammar but no lexicon source ever
	// populates it, so it is always empty.
	Article
	// Numeral is a pseudo-category: it is never stored in a lexicon and
	// is attached by the classifier to numeric literals.
	Numeral
)

// classified lists the categories tested by the classifier, in the order
// their labels appear in a WordToken.
var classified = [...]Category{
	Adjective,
	Adverb,
	Preposition,
	Noun,
	Verb,
	Pronoun,
	Person,
	Place,
}

// lexical lists every category a Lexicon can hold.
var lexical = [...]Category{
	Adjective,
	Adverb,
	Preposition,
	Noun,
	Verb,
	Pronoun,
	Person,
	Place,
	Article,
}

var categoryNames = map[Category]string{
	Adjective:   "adjective",
	Adverb:      "adverb",
	Preposition: "preposition",
	Noun:        "noun",
	Verb:        "verb",
	Pronoun:     "pronoun",
	Person:      "person",
	Place:       "place",
	Article:     "article",
	Numeral:     "numeral",
}

// sourceKeys maps each category to its key in the lexicon JSON document.
// Article has no key.
var sourceKeys = map[Category]string{
	Adjective:   "adjetivos",
	Adverb:      "adverbios",
	Place:       "lugares",
	Person:      "personas",
	Preposition: "preposiciones",
	Pronoun:     "pronombres",
	Noun:        "sustantivos",
	Verb:        "verbos",
}

// String returns the lowercase label of the category, e.g. "noun".
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// ParseCategory returns the category whose label is name.
func ParseCategory(name string) (Category, error) {
	for c, n := range categoryNames {
		if n == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown category %q", name)
}

// Categories returns the categories tested by the classifier.
func Categories() []Category {
	return append([]Category(nil), classified[:]...)
}

// LexicalCategories returns every category a Lexicon can hold.
func LexicalCategories() []Category {
	return append([]Category(nil), lexical[:]...)
}

// WordToken holds the classification of a single surface word.
type WordToken struct {
	// Word is the surface form as it appeared in the input.
	Word string
	// Categories lists every matching category in classification order,
	// followed by Numeral when Word is a numeric literal. Empty when the
	// word is unknown.
	Categories []Category
}

// Labels returns the category labels of the token.
func (t WordToken) Labels() []string {
	labels := make([]string, 0, len(t.Categories))
	for _, c := range t.Categories {
		labels = append(labels, c.String())
	}
	return labels
}

// Has reports whether the token was classified under c.
func (t WordToken) Has(c Category) bool {
	for _, got := range t.Categories {
		if got == c {
			return true
		}
	}
	return false
}

// Known reports whether at least one category matched.
func (t WordToken) Known() bool {
	return len(t.Categories) > 0
}
