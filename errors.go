package sintaxis

import (
	"errors"
	"fmt"
)

var (
	// ErrLexiconFormat indicates that lexicon data is absent, unparseable,
	// or not shaped as a mapping of category to stems.
	ErrLexiconFormat = errors.New("malformed lexicon")

	// ErrLexiconFrozen indicates an attempt to add a form after the
	// lexicon was handed to an Analyzer.
	ErrLexiconFrozen = errors.New("lexicon is frozen")

	// ErrGrammar is matched by every *GrammarViolation.
	ErrGrammar = errors.New("syntax error")
)

// GrammarViolation reports the nonterminal at which a sentence was
// rejected and the lookahead token at that point.
type GrammarViolation struct {
	// Nonterminal is the rule that failed: Sentence, Subject, Noun,
	// Article, Predicate or Verb. It is "End" when a valid prefix is
	// followed by unconsumed tokens.
	Nonterminal string
	// Token is the offending lookahead, empty at end of input.
	Token string
	// Position is the 0-based index of Token in the sentence, or the
	// token count when the input ended early.
	Position int
	// Sentence is the sentence being validated.
	Sentence string
}

func (e *GrammarViolation) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("syntax error: %s failed at end of input", e.Nonterminal)
	}
	return fmt.Sprintf("syntax error: %s failed at %q (token %d)", e.Nonterminal, e.Token, e.Position)
}

// Is makes errors.Is(err, ErrGrammar) true for violations.
func (e *GrammarViolation) Is(target error) bool {
	return target == ErrGrammar
}
