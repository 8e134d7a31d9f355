// Package symtab implements the symbol table pairing: a token-keyed
// table and a type-keyed table, both hash-consed so repeated insertion
// of the same bytes returns the same dense id. Grounded on spec.md §4.5
// and backed by internal/htable's open-addressed table.
package symtab

import (
	"github.com/tawesoft/corpus/v2/internal/htable"
)

// entry is one interned byte string plus its hash, stored in a flat,
// append-only slice so ids are stable and dense.
type entry struct {
	bytes []byte
	hash  uint64
}

// bucket pairs an internal/htable.Table with the flat entry slice it
// indexes into, for one symbol table (tokens, or types).
type bucket struct {
	table   htable.Table
	entries []entry
}

func (b *bucket) hashOf(id int) uint64 {
	return b.entries[id].hash
}

func (b *bucket) intern(bytes []byte) int {
	h := hashBytes(bytes)
	if id, ok := b.table.Find(h, func(id int) bool {
		return string(b.entries[id].bytes) == string(bytes)
	}); ok {
		return id
	}
	id := len(b.entries)
	cp := make([]byte, len(bytes))
	copy(cp, bytes)
	b.entries = append(b.entries, entry{bytes: cp, hash: h})
	if err := b.table.EnsureCapacity(b.table.Len()+1, b.hashOf); err != nil {
		panic(err) // growth overflow is an internal invariant violation, not caller error
	}
	b.table.Add(h, id)
	return id
}

func (b *bucket) clear() {
	b.table.Clear()
	b.entries = b.entries[:0]
}

// hashBytes computes a 64-bit FNV-1a-style mix over p.
func hashBytes(p []byte) uint64 {
	const offset = 14695981039346656037
	const prime = 1099511628211
	h := uint64(offset)
	for _, c := range p {
		h ^= uint64(c)
		h *= prime
	}
	return h
}

// Type holds one interned type's bytes plus the token ids that fold to
// it.
type Type struct {
	Bytes    []byte
	TokenIDs []int
}

// Table pairs a token symbol table and a type symbol table, per spec.md
// §4.5: adding a token interns its computed type and records the
// token->type and type->tokens links both ways.
type Table struct {
	tokens     bucket
	types      bucket
	links      []int   // token id -> type id
	typeTokens [][]int // type id -> token ids that have ever folded to it
}

// Init prepares an empty Table for use.
func (t *Table) Init() {
	t.tokens.table.Init()
	t.types.table.Init()
}

// Clear drops every interned token and type, and their backing storage,
// in O(n).
func (t *Table) Clear() {
	t.tokens.clear()
	t.types.clear()
	t.links = t.links[:0]
	t.typeTokens = t.typeTokens[:0]
}

// AddToken interns tokenBytes (returning its token id, allocating a new
// one if not seen before), interns typeBytes as that token's type, and
// records the token<->type link in both directions. typeBytes is
// computed by the caller (typically with typemap.Map.Set) so this package
// stays independent of the folding pipeline.
func (t *Table) AddToken(tokenBytes []byte, typeBytes []byte) (tokenID int, typeID int) {
	tokenID = t.tokens.intern(tokenBytes)
	typeID = t.types.intern(typeBytes)

	for len(t.links) <= tokenID {
		t.links = append(t.links, -1)
	}
	prev := t.links[tokenID]
	t.links[tokenID] = typeID

	for len(t.typeTokens) <= typeID {
		t.typeTokens = append(t.typeTokens, nil)
	}
	if prev != typeID {
		t.typeTokens[typeID] = append(t.typeTokens[typeID], tokenID)
	}

	return tokenID, typeID
}

// InternType interns typeBytes as a type on its own, without an
// associated token, returning its (possibly pre-existing) type id. Used
// by filter's combination rules to anchor a combined type's id, and by
// filter's drop/select lists to resolve configured type strings to ids.
func (t *Table) InternType(typeBytes []byte) int {
	return t.types.intern(typeBytes)
}

// TokensOfType returns every token id that currently folds to type id.
func (t *Table) TokensOfType(typeID int) []int {
	if typeID < 0 || typeID >= len(t.typeTokens) {
		return nil
	}
	return t.typeTokens[typeID]
}

// TokenBytes returns the bytes interned for id.
func (t *Table) TokenBytes(id int) []byte {
	return t.tokens.entries[id].bytes
}

// TypeBytes returns the bytes interned for id.
func (t *Table) TypeBytes(id int) []byte {
	return t.types.entries[id].bytes
}

// TypeOfToken returns the type id a token was last interned against.
func (t *Table) TypeOfToken(tokenID int) (int, bool) {
	if tokenID < 0 || tokenID >= len(t.links) {
		return 0, false
	}
	id := t.links[tokenID]
	return id, id >= 0
}

// NumTokens returns the number of distinct interned tokens.
func (t *Table) NumTokens() int { return len(t.tokens.entries) }

// NumTypes returns the number of distinct interned types.
func (t *Table) NumTypes() int { return len(t.types.entries) }
