package sintaxis

import (
	"context"
	"fmt"
	"os"

	"github.com/bytedance/sonic"
)

// LexiconSource produces an unexpanded Lexicon.
type LexiconSource interface {
	Load(ctx context.Context) (*Lexicon, error)
}

// JSONFile is a LexiconSource reading a JSON document from disk.
//
// The document is an object keyed by the category names adjetivos,
// adverbios, lugares, personas, preposiciones, pronombres, sustantivos
// and verbos. Each value is an object whose keys are the stems; values
// are ignored:
//
//	{"sustantivos": {"MARIA": 1}, "verbos": {"CORRER": 1}}
type JSONFile string

// Load reads and parses the file. A missing or malformed file yields an
// error wrapping ErrLexiconFormat.
func (f JSONFile) Load(ctx context.Context) (*Lexicon, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(string(f))
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrLexiconFormat, string(f), err)
	}
	lx, err := ParseLexicon(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", string(f), err)
	}
	return lx, nil
}

// ParseLexicon decodes a lexicon JSON document. A missing category key
// or a null value yields an empty category.
func ParseLexicon(data []byte) (*Lexicon, error) {
	var doc map[string]any
	if err := sonic.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLexiconFormat, err)
	}
	if doc == nil {
		return nil, fmt.Errorf("%w: document is empty", ErrLexiconFormat)
	}

	lx := NewLexicon()
	for _, c := range classified {
		key := sourceKeys[c]
		raw, ok := doc[key]
		if !ok || raw == nil {
			continue
		}
		stems, ok := raw.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: %q is %T, want object", ErrLexiconFormat, key, raw)
		}
		for stem := range stems {
			if err := lx.Add(c, stem); err != nil {
				return nil, err
			}
		}
	}
	return lx, nil
}

// MemorySource is a LexiconSource over in-memory word lists, keyed by
// category.
type MemorySource map[Category][]string

// Load builds a fresh Lexicon from the lists.
func (m MemorySource) Load(ctx context.Context) (*Lexicon, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	lx := NewLexicon()
	for c, words := range m {
		for _, w := range words {
			if err := lx.Add(c, w); err != nil {
				return nil, err
			}
		}
	}
	return lx, nil
}
