package store

import "errors"

var (
	// ErrClosed indicates that the store is closed.
	ErrClosed = errors.New("store is closed")

	// ErrExpandedLexicon indicates an attempt to import a lexicon that
	// an Analyzer already expanded and froze.
	ErrExpandedLexicon = errors.New("lexicon is already expanded")

	// ErrCorruptKey indicates a key that does not decode to a category
	// and a form.
	ErrCorruptKey = errors.New("corrupt lexicon key")
)
