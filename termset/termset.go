// Package termset implements a set of non-empty type-id sequences, each
// with a dense term id, backed by a prefix tree so multi-token phrases
// can be probed a token at a time. Grounded on spec.md §4.9.
package termset

import (
	"errors"

	"github.com/tawesoft/corpus/v2/internal/ptree"
)

// Set is a prefix tree whose edges are type ids, with one term id per
// terminal node, plus a parallel buffer of the flat type-id sequence for
// every term (so a term's sequence can be reconstructed from its id).
type Set struct {
	tree     ptree.Tree
	termOf   map[int]int // ptree node id -> term id, for terminal nodes
	sequence [][]int     // term id -> its type-id sequence
}

// Init prepares an empty Set for use.
func (s *Set) Init() {
	s.tree.Init()
	s.termOf = map[int]int{}
	s.sequence = nil
}

// Clear removes every term.
func (s *Set) Clear() {
	s.Init()
}

func (s *Set) ensureInit() {
	if s.termOf == nil {
		s.Init()
	}
}

// Add ensures seq's path exists in the tree, allocating a new term id if
// the terminal node is new, and returns that term id. seq must be
// non-empty.
func (s *Set) Add(seq []int) (int, error) {
	s.ensureInit()
	if len(seq) == 0 {
		return 0, errors.New("termset: term sequence must be non-empty")
	}

	node := s.tree.Root()
	for _, typeID := range seq {
		id, err := s.tree.Add(node, typeID)
		if err != nil {
			return 0, err
		}
		node = id
	}

	if termID, ok := s.termOf[node]; ok {
		return termID, nil
	}

	termID := len(s.sequence)
	cp := make([]int, len(seq))
	copy(cp, seq)
	s.sequence = append(s.sequence, cp)
	s.termOf[node] = termID
	return termID, nil
}

// Has walks seq without mutating the tree, reporting the term id at its
// terminal node, if any.
func (s *Set) Has(seq []int) (int, bool) {
	s.ensureInit()
	if len(seq) == 0 {
		return 0, false
	}

	node := s.tree.Root()
	for _, typeID := range seq {
		next, ok := s.tree.Has(node, typeID)
		if !ok {
			return 0, false
		}
		node = next
	}
	termID, ok := s.termOf[node]
	return termID, ok
}

// Term reconstructs the type-id sequence for a term id returned by Add
// or Has.
func (s *Set) Term(id int) []int {
	return s.sequence[id]
}

// Len returns the number of distinct terms in the set.
func (s *Set) Len() int {
	return len(s.sequence)
}

// MaxLen returns the length of the longest sequence added so far, used
// by search to size its lookback buffer. It returns 0 for an empty set.
func (s *Set) MaxLen() int {
	max := 0
	for _, seq := range s.sequence {
		if len(seq) > max {
			max = len(seq)
		}
	}
	return max
}
