// Package sintaxis classifies Spanish words against a static lexicon and
// recognizes sentences of a minimal Subject-Predicate grammar.
//
// The lexicon is a finite set of stems per category; the regular present
// tense of every verb is generated once at load time. The grammar accepts
// (Article? Noun) Verb and a bare Verb.
package sintaxis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	lru "github.com/hashicorp/golang-lru"
)

// DefaultCacheSize is the default number of classified words kept in the
// classification cache.
const DefaultCacheSize = 4096

// Analyzer owns a frozen, expanded Lexicon and provides the public API.
// An Analyzer is safe for concurrent use.
type Analyzer struct {
	lexicon *Lexicon

	// cache maps raw word → WordToken. nil when caching is disabled.
	cache *lru.ARCCache

	policy Policy
	logger *slog.Logger
}

// Option configures an Analyzer.
type Option func(*Analyzer) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(a *Analyzer) error {
		if logger == nil {
			logger = slog.Default()
		}
		a.logger = logger
		return nil
	}
}

// WithCacheSize sets the classification cache size. Zero disables the
// cache.
func WithCacheSize(size int) Option {
	return func(a *Analyzer) error {
		if size < 0 {
			return fmt.Errorf("cache size must be >= 0 (got %d)", size)
		}
		if size == 0 {
			a.cache = nil
			return nil
		}
		cache, err := lru.NewARC(size)
		if err != nil {
			return err
		}
		a.cache = cache
		return nil
	}
}

// WithPolicy sets how ValidateText reacts to a rejected sentence.
// Default is AbortOnViolation.
func WithPolicy(p Policy) Option {
	return func(a *Analyzer) error {
		a.policy = p
		return nil
	}
}

// New loads the lexicon from src, expands its verbs and returns a
// ready-to-use Analyzer.
//
// A source failing with ErrLexiconFormat is not fatal: the failure is
// logged and the Analyzer starts with an empty lexicon. Any other load
// error is returned.
func New(ctx context.Context, src LexiconSource, opts ...Option) (*Analyzer, error) {
	cache, err := lru.NewARC(DefaultCacheSize)
	if err != nil {
		return nil, err
	}
	a := &Analyzer{
		cache:  cache,
		policy: AbortOnViolation,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}

	lx, err := src.Load(ctx)
	switch {
	case errors.Is(err, ErrLexiconFormat):
		a.logger.Warn("lexicon: falling back to empty lexicon", slog.Any("error", err))
		lx = NewLexicon()
	case err != nil:
		return nil, fmt.Errorf("load lexicon: %w", err)
	case lx == nil:
		lx = NewLexicon()
	}

	added, err := lx.expandVerbs()
	if err != nil {
		return nil, fmt.Errorf("expand verbs: %w", err)
	}
	lx.freeze()
	a.lexicon = lx

	a.logger.Debug("lexicon ready",
		slog.Int("forms", lx.Total()),
		slog.Int("conjugated", added),
	)
	return a, nil
}

// Lexicon returns the analyzer's frozen lexicon.
func (a *Analyzer) Lexicon() *Lexicon {
	return a.lexicon
}

// Classify returns every category word belongs to.
func (a *Analyzer) Classify(word string) WordToken {
	if a.cache == nil {
		return classify(a.lexicon, word)
	}
	if v, ok := a.cache.Get(word); ok {
		return v.(WordToken)
	}
	tok := classify(a.lexicon, word)
	a.cache.Add(word, tok)
	return tok
}

// AnalyseText splits text on whitespace and classifies each word.
func (a *Analyzer) AnalyseText(text string) []WordToken {
	words := splitWords(text)
	out := make([]WordToken, 0, len(words))
	for _, w := range words {
		out = append(out, a.Classify(w))
	}
	return out
}

// AnalysePhrase maps each surface word of text to its category labels.
// Repeated words appear once.
func (a *Analyzer) AnalysePhrase(text string) map[string][]string {
	out := make(map[string][]string)
	for _, tok := range a.AnalyseText(text) {
		out[tok.Word] = tok.Labels()
	}
	return out
}

// Conjugate returns the regular present forms of infinitive, nil when
// its ending is not recognised.
func (a *Analyzer) Conjugate(infinitive string) []string {
	return Conjugate(infinitive)
}

// Validate recognizes a single sentence. It returns nil when the
// sentence is accepted and a *GrammarViolation otherwise.
func (a *Analyzer) Validate(sentence string) error {
	return validate(a.lexicon, sentence, a.logger)
}
