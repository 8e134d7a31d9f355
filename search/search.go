// Package search matches a filter's term-id stream against a termset.Set
// of type-id sequences, emitting non-overlapping (term id, text span)
// pairs. Grounded on spec.md §4.10.
//
// Callers should prefer PushEmission, which consumes a filter.Emission
// directly and applies the Dropped/Excluded/Ignored sentinel handling
// spec.md §4.10 requires: a Dropped or Excluded emission breaks (clears)
// any match in progress, and an Ignored emission attaches its span to the
// previously buffered token instead of starting a new buffer entry. Push
// is the lower-level primitive for callers that only ever feed it ordinary
// kept emissions.
package search

import (
	"github.com/tawesoft/corpus/v2/filter"
	"github.com/tawesoft/corpus/v2/termset"
)

// Match is one non-overlapping term match, spanning the concatenated
// range of the tokens it consumed.
type Match struct {
	TermID int
	Start  int
	End    int
}

type item struct {
	typeID     int
	start, end int
}

// Search maintains a lookback buffer of the most recent
// terms.MaxLen() type ids (and their backing spans) and probes terms
// longest-suffix-first after every push.
type Search struct {
	terms  *termset.Set
	maxLen int
	buf    []item
}

// New builds a Search over terms. terms.MaxLen() is read once; adding
// longer terms to the set after this call will not be reflected until
// Reset is called.
func New(terms *termset.Set) *Search {
	return &Search{terms: terms, maxLen: terms.MaxLen()}
}

// Push appends one (type id, span) pair produced by a filter and probes
// for a match. If a term matches, the buffer is cleared and the match is
// returned; otherwise the buffer is retained (capped to the longest term
// length) for future pushes to extend.
func (s *Search) Push(typeID, start, end int) (Match, bool) {
	s.buf = append(s.buf, item{typeID, start, end})
	limit := s.maxLen
	if limit < 1 {
		limit = 1 // an empty term set can never match; still bound the buffer
	}
	if len(s.buf) > limit {
		s.buf = s.buf[len(s.buf)-limit:]
	}

	for length := len(s.buf); length >= 1; length-- {
		suffix := s.buf[len(s.buf)-length:]
		seq := make([]int, length)
		for i, it := range suffix {
			seq[i] = it.typeID
		}
		if termID, ok := s.terms.Has(seq); ok {
			m := Match{TermID: termID, Start: suffix[0].start, End: suffix[length-1].end}
			s.buf = nil
			return m, true
		}
	}
	return Match{}, false
}

// Reset clears the lookback buffer and re-reads the term set's longest
// sequence length, for reuse against a fresh token stream.
func (s *Search) Reset() {
	s.buf = nil
	s.maxLen = s.terms.MaxLen()
}

// PushEmission feeds one filter.Emission into the search buffer. Dropped
// and Excluded emissions break any match in progress, per the ground
// truth's buffer_clear; Ignored emissions attach their span to the most
// recently buffered token instead of becoming a new buffer entry, per the
// ground truth's buffer_ignore (an Ignored emission at the very start of
// the buffer, with nothing to attach to, is simply discarded). Every other
// emission is pushed by its type id as usual.
func (s *Search) PushEmission(em filter.Emission) (Match, bool) {
	switch em.TermID {
	case filter.Dropped, filter.Excluded:
		s.buf = nil
		return Match{}, false
	case filter.Ignored:
		if n := len(s.buf); n > 0 {
			s.buf[n-1].end = em.End
		}
		return Match{}, false
	}
	return s.Push(em.TypeID, em.Start, em.End)
}
