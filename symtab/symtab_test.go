package symtab_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tawesoft/corpus/v2/symtab"
)

func TestInternDedupes(t *testing.T) {
	var tab symtab.Table
	tab.Init()

	tok1, typ1 := tab.AddToken([]byte("Hello"), []byte("hello"))
	tok2, typ2 := tab.AddToken([]byte("Hello"), []byte("hello"))
	assert.Equal(t, tok1, tok2)
	assert.Equal(t, typ1, typ2)
	assert.Equal(t, 1, tab.NumTokens())
	assert.Equal(t, 1, tab.NumTypes())

	tok3, typ3 := tab.AddToken([]byte("HELLO"), []byte("hello"))
	assert.NotEqual(t, tok1, tok3)
	assert.Equal(t, typ1, typ3)
	assert.Equal(t, 2, tab.NumTokens())
	assert.Equal(t, 1, tab.NumTypes())
}

func TestClearResets(t *testing.T) {
	var tab symtab.Table
	tab.Init()
	tab.AddToken([]byte("a"), []byte("a"))
	tab.Clear()
	assert.Equal(t, 0, tab.NumTokens())
	assert.Equal(t, 0, tab.NumTypes())

	tok, _ := tab.AddToken([]byte("a"), []byte("a"))
	assert.Equal(t, 0, tok)
}

func TestTokensOfType(t *testing.T) {
	var tab symtab.Table
	tab.Init()

	tok1, typ1 := tab.AddToken([]byte("Hello"), []byte("hello"))
	tok2, typ2 := tab.AddToken([]byte("HELLO"), []byte("hello"))
	assert.Equal(t, typ1, typ2)
	assert.ElementsMatch(t, []int{tok1, tok2}, tab.TokensOfType(typ1))

	_, otherTyp := tab.AddToken([]byte("World"), []byte("world"))
	assert.ElementsMatch(t, []int{tok1, tok2}, tab.TokensOfType(typ1))
	assert.NotEqual(t, typ1, otherTyp)

	// re-adding an unchanged token/type pair must not duplicate the entry
	tab.AddToken([]byte("Hello"), []byte("hello"))
	assert.ElementsMatch(t, []int{tok1, tok2}, tab.TokensOfType(typ1))

	assert.Nil(t, tab.TokensOfType(9999))
}

func TestManyInsertsGrowTable(t *testing.T) {
	var tab symtab.Table
	tab.Init()
	for i := 0; i < 500; i++ {
		b := []byte{byte(i), byte(i >> 8)}
		tab.AddToken(b, b)
	}
	assert.Equal(t, 500, tab.NumTokens())
}
