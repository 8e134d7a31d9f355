// Package intset implements a small set of non-negative integers, used
// by filter for drop/drop-exception/select membership
// tests where a full internal/htable.Table would be overkill.
package intset

// Set is a set of ints. The zero value is an empty, usable set.
type Set struct {
	m map[int]struct{}
}

// New returns a Set containing the given members.
func New(members ...int) Set {
	s := Set{m: make(map[int]struct{}, len(members))}
	for _, v := range members {
		s.m[v] = struct{}{}
	}
	return s
}

// Add inserts v into the set.
func (s *Set) Add(v int) {
	if s.m == nil {
		s.m = make(map[int]struct{})
	}
	s.m[v] = struct{}{}
}

// Has reports whether v is a member of the set.
func (s Set) Has(v int) bool {
	if s.m == nil {
		return false
	}
	_, ok := s.m[v]
	return ok
}

// Len returns the number of members.
func (s Set) Len() int {
	return len(s.m)
}

// Remove deletes v from the set, if present.
func (s *Set) Remove(v int) {
	if s.m == nil {
		return
	}
	delete(s.m, v)
}
