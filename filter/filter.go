// Package filter composes segmentation with type normalization and
// produces a deterministic stream of term identifiers, applying
// per-word-class drop flags, explicit drop/select lists, and
// longest-match combination rules. Grounded on spec.md §4.8.
package filter

import (
	"errors"

	"github.com/tawesoft/corpus/v2/internal/intset"
	"github.com/tawesoft/corpus/v2/internal/ptree"
	"github.com/tawesoft/corpus/v2/symtab"
	"github.com/tawesoft/corpus/v2/text/wordbreak"
)

// Term id sentinels, per spec.md §4.8.
const (
	Ignored  = -1
	Dropped  = -2
	Excluded = -3
)

// Options configures a Filter's policies. Drop, DropExceptions and
// Select hold normalized type strings (the same form typemap.Map.Set
// returns), resolved to type ids once at New.
type Options struct {
	DropLetter bool
	DropNumber bool
	DropPunct  bool
	DropSymbol bool

	IgnoreEmpty bool

	Drop           []string
	DropExceptions []string
	Select         []string
}

// Token is one normalized token as produced by the scanner + type map +
// symbol table, ready to be classified by the filter.
type Token struct {
	TypeID int
	Class  wordbreak.Class
	Start  int
	End    int
	Empty  bool // true if the normalized type is the empty string
}

// Emission is one term the filter has decided to emit, spanning the
// backing text from Start to End (a single token's range, or, for a
// fired combination rule, the concatenated range of every token it
// consumed). TypeID is the underlying type id the term was assigned
// for (the token's own type id, or a fired combination rule's combined
// type id) — this is what search.Search buffers and matches against a
// termset.Set, per spec.md §4.10; TermID is the filter's dense counting
// id and is not meaningful to search.
type Emission struct {
	TermID int
	TypeID int
	Start  int
	End    int
}

// Filter owns a combination tree, a term-id-per-type side table, and an
// error latch. It does not own the symbol table it anchors combined
// types in; callers pass a shared *symtab.Table.
type Filter struct {
	tab  *symtab.Table
	opts Options

	comb     ptree.Tree
	combType map[int]int // ptree node id -> combined type id, for terminal nodes

	termIDs  map[int]int // type id -> assigned term id (or a sentinel)
	nextTerm int

	dropSet          intset.Set
	dropExceptionSet intset.Set
	selectSet        intset.Set

	// longest-match walk state
	node          int
	pending       []Token
	longest       int // count of pending tokens consumed by the best terminal match so far, or -1
	longestTermID int
	longestTypeID int

	err error
}

// New builds a Filter backed by tab, resolving opts' string lists to
// type ids immediately.
func New(tab *symtab.Table, opts Options) *Filter {
	f := &Filter{
		tab:      tab,
		opts:     opts,
		combType: map[int]int{},
		termIDs:  map[int]int{},
		longest:  -1,
	}
	f.comb.Init()
	f.node = f.comb.Root()

	for _, s := range opts.Drop {
		f.dropSet.Add(tab.InternType([]byte(s)))
	}
	for _, s := range opts.DropExceptions {
		f.dropExceptionSet.Add(tab.InternType([]byte(s)))
	}
	for _, s := range opts.Select {
		f.selectSet.Add(tab.InternType([]byte(s)))
	}

	return f
}

// Err returns the filter's latched error, if any. Once set, every
// subsequent call is a no-op that returns the same error.
func (f *Filter) Err() error { return f.err }

// Clear discards every term id assignment and combination-walk state,
// but keeps the configured drop/select sets and combination rules.
func (f *Filter) Clear() {
	f.termIDs = map[int]int{}
	f.nextTerm = 0
	f.node = f.comb.Root()
	f.pending = nil
	f.longest = -1
	f.longestTermID = 0
	f.longestTypeID = 0
	f.err = nil
}

// AddCombination anchors a new combination rule: the token-type sequence
// seq maps to the combined type combinedTypeBytes. Any in-flight
// longest-match walk is left in place and resumes with the next Push.
// Returns the combined type's id.
func (f *Filter) AddCombination(seq []int, combinedTypeBytes []byte) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	if len(seq) == 0 {
		f.err = errors.New("filter: combination rule requires at least one type id")
		return 0, f.err
	}

	node := f.comb.Root()
	for _, typeID := range seq {
		id, err := f.comb.Add(node, typeID)
		if err != nil {
			f.err = err
			return 0, err
		}
		node = id
	}

	combinedTypeID := f.tab.InternType(combinedTypeBytes)
	f.combType[node] = combinedTypeID
	return combinedTypeID, nil
}

// Push feeds one normalized token into the filter, returning every
// Emission the push completes. A push into the middle of a combination
// match usually returns nothing until the walk resolves.
func (f *Filter) Push(tok Token) ([]Emission, error) {
	if f.err != nil {
		return nil, f.err
	}

	if child, ok := f.comb.Has(f.node, tok.TypeID); ok {
		f.node = child
		f.pending = append(f.pending, tok)
		if combinedTypeID, isTerminal := f.combType[child]; isTerminal {
			f.longest = len(f.pending)
			f.longestTypeID = combinedTypeID
			f.longestTermID = f.classify(combinedTypeID, tok.Class, tok.Empty)
		}
		return nil, nil
	}

	var out []Emission
	if len(f.pending) > 0 {
		committed, err := f.commitPending()
		if err != nil {
			return nil, err
		}
		out = append(out, committed...)
	}

	if child, ok := f.comb.Has(f.comb.Root(), tok.TypeID); ok {
		f.node = child
		f.pending = []Token{tok}
		f.longest = -1
		if combinedTypeID, isTerminal := f.combType[child]; isTerminal {
			f.longest = 1
			f.longestTypeID = combinedTypeID
			f.longestTermID = f.classify(combinedTypeID, tok.Class, tok.Empty)
		}
		return out, nil
	}

	termID := f.classify(tok.TypeID, tok.Class, tok.Empty)
	out = append(out, Emission{TermID: termID, TypeID: tok.TypeID, Start: tok.Start, End: tok.End})
	return out, nil
}

// Flush drains any tokens still buffered in an in-flight combination
// walk, as at end of stream.
func (f *Filter) Flush() ([]Emission, error) {
	if f.err != nil {
		return nil, f.err
	}
	if len(f.pending) == 0 {
		return nil, nil
	}
	return f.commitPending()
}

// commitPending resolves the current longest-match walk: if a terminal
// match was seen, emit it and restore the cursor to just past it;
// otherwise emit only the first buffered token and restore the cursor to
// just past it. Either way, any leftover buffered tokens are re-fed
// through Push since they may start a fresh combination of their own.
func (f *Filter) commitPending() ([]Emission, error) {
	pending := f.pending
	longest := f.longest

	f.pending = nil
	f.node = f.comb.Root()
	f.longest = -1

	var out []Emission
	var rest []Token
	if longest > 0 {
		matched := pending[:longest]
		out = append(out, Emission{
			TermID: f.longestTermID,
			TypeID: f.longestTypeID,
			Start:  matched[0].Start,
			End:    matched[len(matched)-1].End,
		})
		rest = pending[longest:]
	} else {
		first := pending[0]
		out = append(out, Emission{
			TermID: f.classify(first.TypeID, first.Class, first.Empty),
			TypeID: first.TypeID,
			Start:  first.Start,
			End:    first.End,
		})
		rest = pending[1:]
	}
	f.longestTermID = 0
	f.longestTypeID = 0

	for _, tok := range rest {
		ems, err := f.Push(tok)
		if err != nil {
			return out, err
		}
		out = append(out, ems...)
	}
	return out, nil
}

// classify returns typeID's assigned term id, computing and caching it
// on first sight.
func (f *Filter) classify(typeID int, class wordbreak.Class, empty bool) int {
	if id, ok := f.termIDs[typeID]; ok {
		return id
	}
	id := f.assign(typeID, class, empty)
	f.termIDs[typeID] = id
	return id
}

func (f *Filter) assign(typeID int, class wordbreak.Class, empty bool) int {
	if f.opts.IgnoreEmpty && empty {
		return Ignored
	}

	dropped := f.classDropped(class)
	if f.dropSet.Has(typeID) {
		dropped = true
	}
	if f.dropExceptionSet.Has(typeID) {
		dropped = false
	}
	if dropped {
		return Dropped
	}

	if f.selectSet.Len() > 0 && !f.selectSet.Has(typeID) {
		return Excluded
	}

	id := f.nextTerm
	f.nextTerm++
	return id
}

func (f *Filter) classDropped(class wordbreak.Class) bool {
	switch class {
	case wordbreak.Letter:
		return f.opts.DropLetter
	case wordbreak.Number:
		return f.opts.DropNumber
	case wordbreak.Punct:
		return f.opts.DropPunct
	case wordbreak.Symbol:
		return f.opts.DropSymbol
	}
	return false
}
