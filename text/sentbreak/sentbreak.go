// Package sentbreak implements a UAX #29 sentence-boundary scanner with
// an abbreviation-suppression pass, grounded on the reference
// sentfilter.c's reverse-word-lookup design and adapted onto this
// module's internal/ptree prefix tree.
package sentbreak

import (
	"github.com/tawesoft/corpus/v2/internal/ptree"
	"github.com/tawesoft/corpus/v2/text/uchar"
)

// Class is the outcome of scanning one sentence segment.
type Class int

const (
	Other Class = iota
	Newline
	ATerm
	STerm
)

// Segment is one scanned sentence span.
type Segment struct {
	Start int
	End   int
	Class Class
}

// Suppressions is a reverse-order prefix tree of code points: to test
// whether the word immediately before a candidate sentence-ending '.' is
// a known abbreviation, its runes are walked into the tree starting from
// its last rune, exactly as the reference implementation's
// sentsuppress/sentfilter pairing does.
type Suppressions struct {
	tree ptree.Tree
}

// NewSuppressions builds a Suppressions tree from a list of abbreviation
// words (e.g. "Mr", "Dr", "etc").
func NewSuppressions(words []string) (*Suppressions, error) {
	s := &Suppressions{}
	s.tree.Init()
	for _, w := range words {
		rs := []rune(w)
		node := s.tree.Root()
		for i := len(rs) - 1; i >= 0; i-- {
			next, err := s.tree.Add(node, int(rs[i]))
			if err != nil {
				return nil, err
			}
			node = next
		}
	}
	return s, nil
}

// Suppress reports whether the runes immediately preceding a candidate
// sentence break (in document order) spell a known abbreviation. word is
// given in document order; Suppress walks it in reverse.
func (s *Suppressions) Suppress(word []rune) bool {
	if s == nil {
		return false
	}
	node := s.tree.Root()
	for i := len(word) - 1; i >= 0; i-- {
		next, ok := s.tree.Has(node, int(word[i]))
		if !ok {
			return false
		}
		node = next
	}
	return true
}

// Scanner walks a Text applying SB1-SB11, with an abbreviation-lookahead
// heuristic for '.' before deciding ATerm vs a suppressed non-boundary.
type Scanner struct {
	it   *uchar.Iter
	text uchar.Text
	sup  *Suppressions
	err  error
}

// NewScanner returns a Scanner over t. sup may be nil (no suppression).
func NewScanner(t uchar.Text, sup *Suppressions) *Scanner {
	return &Scanner{it: uchar.NewIter(t), text: t, sup: sup}
}

// Err returns the first error encountered, if any.
func (s *Scanner) Err() error {
	return s.err
}

// Next scans and returns the next sentence segment.
func (s *Scanner) Next() (Segment, bool) {
	if s.err != nil {
		return Segment{}, false
	}
	if !s.it.Advance() {
		if err := s.it.Err(); err != nil {
			s.err = err
		}
		return Segment{}, false
	}

	start := s.it.Offset() - s.it.Size()
	prevProp := uchar.SentenceBreakPropertyOf(s.it.Current())
	end := s.it.Offset()
	segClass := classify(prevProp)
	var wordTail []rune
	wordTail = appendIfWordy(wordTail, s.it.Current(), prevProp)

	for {
		pr, ok := s.it.Peek()
		if !ok {
			if err := s.it.Err(); err != nil {
				s.err = err
			}
			break
		}
		nextProp := uchar.SentenceBreakPropertyOf(pr)

		if s.breaks(prevProp, nextProp, wordTail) {
			break
		}

		if !s.it.Advance() {
			break
		}
		end = s.it.Offset()
		if segClass == Other {
			segClass = classify(nextProp)
		}
		wordTail = appendIfWordy(wordTail, pr, nextProp)
		if nextProp != uchar.SBExtend && nextProp != uchar.SBFormat {
			prevProp = nextProp
		}
	}

	return Segment{Start: start, End: end, Class: segClass}, true
}

func appendIfWordy(tail []rune, r rune, p uchar.SentenceBreakProperty) []rune {
	switch p {
	case uchar.SBLower, uchar.SBUpper, uchar.SBOLetter, uchar.SBNumeric:
		return append(tail, r)
	case uchar.SBATerm, uchar.SBSTerm, uchar.SBClose, uchar.SBSContinue:
		return tail
	}
	return nil
}

func classify(p uchar.SentenceBreakProperty) Class {
	switch p {
	case uchar.SBCR, uchar.SBLF, uchar.SBSep:
		return Newline
	case uchar.SBATerm:
		return ATerm
	case uchar.SBSTerm:
		return STerm
	}
	return Other
}

// breaks decides, per SB1-SB11, whether a boundary falls between prev and
// a following candidate next, consulting the suppression tree for the
// abbreviation-lookahead heuristic (SB8/SB9/SB10 territory).
func (s *Scanner) breaks(prev, next uchar.SentenceBreakProperty, wordTail []rune) bool {
	// SB3: CR x LF
	if prev == uchar.SBCR && next == uchar.SBLF {
		return false
	}
	// SB4: break after Sep/CR/LF
	if prev == uchar.SBSep || prev == uchar.SBCR || prev == uchar.SBLF {
		return true
	}
	// SB5: ignore Format/Extend
	if next == uchar.SBFormat || next == uchar.SBExtend {
		return false
	}

	// SB8a: (STerm|ATerm) x (SContinue|STerm|ATerm)
	if (prev == uchar.SBATerm || prev == uchar.SBSTerm) &&
		(next == uchar.SBSContinue || next == uchar.SBSTerm || next == uchar.SBATerm) {
		return false
	}

	// SB9: (STerm|ATerm) Close* x (Close|Sp|Sep|CR|LF)
	if (prev == uchar.SBATerm || prev == uchar.SBSTerm) &&
		(next == uchar.SBClose || next == uchar.SBSp || next == uchar.SBSep || next == uchar.SBCR || next == uchar.SBLF) {
		return false
	}

	// SB10: (STerm|ATerm) Close* Sp* x (Sp|Sep|CR|LF)
	if prev == uchar.SBSp && (next == uchar.SBSp) {
		return false
	}

	// SB8/SB11: an ATerm is not a sentence break if the preceding word is
	// in the suppression tree (reference sentfilter.c's reverse lookup) or
	// if a lowercase letter follows; otherwise it breaks.
	if prev == uchar.SBATerm {
		if s.sup != nil && s.sup.Suppress(wordTail) {
			return false
		}
		if next == uchar.SBLower {
			return false
		}
		return true
	}

	if prev == uchar.SBSTerm {
		return true
	}

	return false
}
