package sintaxis

import "strings"

// End is the lookahead once every token has been consumed. Use AtEnd to
// test for it.
const End = "\x00END"

// TokenStream is a whitespace-delimited token sequence with a single
// materialized lookahead token. A TokenStream belongs to one validation
// run and is discarded afterwards.
type TokenStream struct {
	tokens []string
	next   int
	done   bool

	// Tok is the current lookahead, End once input is exhausted.
	Tok string
	// Pos is the index of Tok in the sequence.
	Pos int
}

// NewTokenStream splits the trimmed sentence on runs of whitespace and
// positions the cursor on the first token. Advance must be called once
// before Tok is meaningful.
func NewTokenStream(sentence string) *TokenStream {
	return &TokenStream{tokens: strings.Fields(strings.TrimSpace(sentence))}
}

// Advance moves the lookahead to the next token and returns it, or
// returns End once the sequence is exhausted.
func (s *TokenStream) Advance() string {
	if s.next >= len(s.tokens) {
		s.Tok = End
		s.Pos = len(s.tokens)
		s.done = true
		return End
	}
	s.Tok = s.tokens[s.next]
	s.Pos = s.next
	s.next++
	return s.Tok
}

// AtEnd reports whether the lookahead is the end-of-input sentinel.
func (s *TokenStream) AtEnd() bool {
	return s.done
}

// Len returns the number of tokens in the stream.
func (s *TokenStream) Len() int {
	return len(s.tokens)
}
