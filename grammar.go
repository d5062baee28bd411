package sintaxis

import "log/slog"

// Accepted grammar:
//
//	Sentence  := Subject Predicate | Predicate
//	Subject   := Article Noun | Noun
//	Noun      := <noun> | <pronoun>
//	Predicate := Verb
//	Verb      := <verb>
//
// A Sentence must consume every token. Sentence only enters Subject on
// an article or a noun; a leading pronoun is rejected.

// parser is a recursive-descent recognizer over one TokenStream. Every
// rule validates the current lookahead of that stream.
type parser struct {
	lx       *Lexicon
	s        *TokenStream
	sentence string
	logger   *slog.Logger
}

// validate recognizes sentence against lx. It returns nil when the
// sentence is accepted and a *GrammarViolation otherwise.
func validate(lx *Lexicon, sentence string, logger *slog.Logger) error {
	p := &parser{
		lx:       lx,
		s:        NewTokenStream(sentence),
		sentence: sentence,
		logger:   logger,
	}
	p.s.Advance()

	if err := p.parseSentence(); err != nil {
		return err
	}
	if !p.s.AtEnd() {
		return p.fail("End")
	}
	return nil
}

func (p *parser) is(c Category) bool {
	return !p.s.AtEnd() && p.lx.Contains(c, p.s.Tok)
}

func (p *parser) fail(rule string) error {
	tok := p.s.Tok
	if p.s.AtEnd() {
		tok = ""
	}
	p.logger.Debug("grammar: rule failed",
		slog.String("rule", rule),
		slog.String("token", tok),
		slog.Int("position", p.s.Pos),
	)
	return &GrammarViolation{
		Nonterminal: rule,
		Token:       tok,
		Position:    p.s.Pos,
		Sentence:    p.sentence,
	}
}

// expect advances past the lookahead when it belongs to c.
func (p *parser) expect(c Category, rule string) error {
	if !p.is(c) {
		return p.fail(rule)
	}
	p.s.Advance()
	return nil
}

func (p *parser) parseSentence() error {
	switch {
	case p.is(Article) || p.is(Noun):
		if err := p.parseSubject(); err != nil {
			return err
		}
		return p.parsePredicate()
	case p.is(Verb):
		return p.parsePredicate()
	default:
		return p.fail("Sentence")
	}
}

func (p *parser) parseSubject() error {
	switch {
	case p.is(Article):
		p.logger.Debug("grammar: article", slog.String("token", p.s.Tok))
		if err := p.expect(Article, "Article"); err != nil {
			return err
		}
	case p.is(Noun) || p.is(Pronoun):
	default:
		return p.fail("Subject")
	}
	if err := p.checkNoun(); err != nil {
		return err
	}
	p.s.Advance()
	return nil
}

// checkNoun accepts a noun or pronoun lookahead without consuming it.
func (p *parser) checkNoun() error {
	if !p.is(Noun) && !p.is(Pronoun) {
		return p.fail("Noun")
	}
	p.logger.Debug("grammar: noun", slog.String("token", p.s.Tok))
	return nil
}

// parsePredicate accepts a bare verb. Objects and complements are not
// analysed.
func (p *parser) parsePredicate() error {
	if !p.is(Verb) {
		return p.fail("Predicate")
	}
	return p.expect(Verb, "Verb")
}
