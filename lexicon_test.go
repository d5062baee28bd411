package sintaxis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexiconAddNormalizes(t *testing.T) {
	lx := NewLexicon()
	require.NoError(t, lx.Add(Noun, "niño"))
	require.NoError(t, lx.Add(Noun, "NIÑO"))
	require.NoError(t, lx.Add(Noun, "Nino"))

	assert.Equal(t, 1, lx.Len(Noun))
	assert.Equal(t, []string{"NINO"}, lx.Words(Noun))
	assert.True(t, lx.Contains(Noun, "niño"))
	assert.False(t, lx.Contains(Verb, "niño"))
}

func TestLexiconRejectsNumeral(t *testing.T) {
	lx := NewLexicon()
	assert.Error(t, lx.Add(Numeral, "42"))
}

func TestLexiconFrozen(t *testing.T) {
	lx := NewLexicon()
	require.NoError(t, lx.Add(Verb, "CORRER"))
	lx.freeze()

	assert.True(t, lx.Frozen())
	assert.ErrorIs(t, lx.Add(Verb, "CANTAR"), ErrLexiconFrozen)
	assert.Equal(t, 1, lx.Len(Verb))
}

func TestLexiconStats(t *testing.T) {
	lx := NewLexicon()
	require.NoError(t, lx.Add(Noun, "CASA"))
	require.NoError(t, lx.Add(Noun, "PERRO"))
	require.NoError(t, lx.Add(Place, "MADRID"))

	stats := lx.Stats()
	assert.Equal(t, 2, stats["noun"])
	assert.Equal(t, 1, stats["place"])
	assert.Equal(t, 0, stats["article"])
	assert.Len(t, stats, 9)
	assert.Equal(t, 3, lx.Total())
}

func TestLexiconWordsSorted(t *testing.T) {
	lx := NewLexicon()
	for _, w := range []string{"perro", "casa", "gato"} {
		require.NoError(t, lx.Add(Noun, w))
	}
	assert.Equal(t, []string{"CASA", "GATO", "PERRO"}, lx.Words(Noun))
	assert.Empty(t, lx.Words(Article))
}

func TestParseCategory(t *testing.T) {
	for _, c := range append(LexicalCategories(), Numeral) {
		got, err := ParseCategory(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
	_, err := ParseCategory("conjunction")
	assert.Error(t, err)
}

func TestCategoriesExcludeArticle(t *testing.T) {
	cats := Categories()
	assert.Len(t, cats, 8)
	assert.NotContains(t, cats, Article)
	assert.NotContains(t, cats, Numeral)
	assert.Contains(t, LexicalCategories(), Article)
}
