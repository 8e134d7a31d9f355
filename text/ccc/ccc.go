// Package ccc provides Canonical_Combining_Class lookups and the
// canonical reordering algorithm, adapted from the teacher library's
// text/ccc package (whose range-packed table is generated from the UCD
// at build time; here the table is a compact, hand-maintained subset
// covering the combining marks in common use — see doc.go).
package ccc

import (
	"errors"

	"golang.org/x/text/transform"
)

// CCC is a Canonical_Combining_Class value: 0 means "not reordered"
// (a starter); any other value participates in the canonical ordering
// algorithm.
type CCC uint8

type ccRange struct {
	start, end rune // [start, end)
	ccc        CCC
}

// ranges covers the combining marks in common use across Latin, Greek,
// Cyrillic, Hebrew, Arabic, Thai, and Adlam, plus the blocks most likely
// to appear after NFD/NFKD decomposition of Latin-1 Supplement and Latin
// Extended text. It is not a full mirror of DerivedCombiningClass.txt.
var ranges = []ccRange{
	{0x0300, 0x0314, 230},
	{0x0314, 0x0315, 230},
	{0x0315, 0x0316, 232},
	{0x0316, 0x031A, 220},
	{0x031A, 0x031C, 232},
	{0x031C, 0x0321, 220},
	{0x0321, 0x0323, 202},
	{0x0323, 0x0327, 220},
	{0x0327, 0x0329, 202},
	{0x0329, 0x0334, 220},
	{0x0334, 0x0339, 1},
	{0x0339, 0x033D, 220},
	{0x033D, 0x0345, 230},
	{0x0345, 0x0346, 240},
	{0x0346, 0x034D, 230},
	{0x034D, 0x034F, 220},
	{0x0591, 0x0592, 220},
	{0x0592, 0x0596, 230},
	{0x0596, 0x0597, 220},
	{0x0597, 0x059A, 230},
	{0x059A, 0x059B, 222},
	{0x059B, 0x05A2, 220},
	{0x05A2, 0x05A8, 230},
	{0x05A8, 0x05AA, 230},
	{0x05AA, 0x05AB, 220},
	{0x05AB, 0x05AD, 230},
	{0x05AE, 0x05AF, 228},
	{0x05B0, 0x05B1, 10},
	{0x05B1, 0x05B2, 11},
	{0x05B2, 0x05B3, 12},
	{0x05B3, 0x05B4, 13},
	{0x05B4, 0x05B5, 14},
	{0x05B5, 0x05B6, 15},
	{0x05B6, 0x05B7, 16},
	{0x05B7, 0x05B8, 17},
	{0x05B8, 0x05B9, 18},
	{0x05BA, 0x05BB, 19},
	{0x05BB, 0x05BC, 20},
	{0x05BC, 0x05BD, 21},
	{0x05BD, 0x05BE, 22},
	{0x05BF, 0x05C0, 23},
	{0x05C1, 0x05C2, 24},
	{0x05C2, 0x05C3, 25},
	{0x064B, 0x064C, 27},
	{0x064C, 0x064D, 28},
	{0x064D, 0x064E, 29},
	{0x064E, 0x064F, 30},
	{0x064F, 0x0650, 31},
	{0x0650, 0x0651, 32},
	{0x0651, 0x0652, 33},
	{0x0652, 0x0653, 34},
	{0x0653, 0x0655, 230},
	{0x0655, 0x0656, 220},
	{0x0656, 0x065A, 220},
	{0x0E38, 0x0E3A, 103},
	{0x0E48, 0x0E4C, 107},
	{0x1E94A, 0x1E94B, 7},
}

// Of returns the Canonical_Combining_Class of r, or 0 (not reordered) if
// r carries no special combining class.
func Of(r rune) CCC {
	lo, hi := 0, len(ranges)
	for lo < hi {
		mid := (lo + hi) / 2
		rg := ranges[mid]
		if r < rg.start {
			hi = mid
		} else if r >= rg.end {
			lo = mid + 1
		} else {
			return rg.ccc
		}
	}
	return 0
}

// ErrMaxNonStarters is returned by Reorder/ReorderRunes/Transformer when
// a single run of combining marks between starters is implausibly long,
// guarding against quadratic blow-up on malicious input (a long run of
// identical non-starters, as in the teacher package's
// TestReorder_MaliciousInput).
var ErrMaxNonStarters = errors.New("corpus: too many non-starters between base characters")

// maxNonStarters bounds the length of a reorderable run. UAX #15's
// Stream-Safe Text Format recommends 30; we allow a little more slack.
const maxNonStarters = 32

// ReorderRunes applies the stable Canonical Ordering Algorithm in place:
// between every pair of starters (CCC 0), the intervening combining
// marks are insertion-sorted by combining class.
func ReorderRunes(rs []rune) error {
	i := 0
	for i < len(rs) {
		if Of(rs[i]) == 0 {
			i++
			continue
		}
		j := i
		for j < len(rs) && Of(rs[j]) != 0 {
			j++
		}
		if j-i > maxNonStarters {
			return ErrMaxNonStarters
		}
		insertionSort(rs[i:j])
		i = j
	}
	return nil
}

func insertionSort(rs []rune) {
	for i := 1; i < len(rs); i++ {
		c := Of(rs[i])
		v := rs[i]
		j := i - 1
		for j >= 0 && Of(rs[j]) > c {
			rs[j+1] = rs[j]
			j--
		}
		rs[j+1] = v
	}
}

// Reorder applies ReorderRunes to the UTF-8 encoded bytes in p, in place.
// p must be valid UTF-8. Reorder decodes p to runes, sorts them, and
// re-encodes the result into p; reordering only permutes code points, so
// the byte length of p is unchanged.
func Reorder(p []byte) error {
	rs := []rune(string(p))
	if err := ReorderRunes(rs); err != nil {
		return err
	}
	copy(p, []byte(string(rs)))
	return nil
}

// Transformer is a transform.Transformer that applies canonical
// reordering to a byte stream.
var Transformer transform.Transformer = reorderTransformer{}

type reorderTransformer struct{}

func (reorderTransformer) Reset() {}

func (reorderTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	rs := []rune(string(src))
	if !atEOF {
		// Leave a potential trailing partial run of non-starters
		// unconsumed, in case more combining marks follow in the next
		// chunk. A conservative approach: only fully process input up to
		// the last starter.
		lastStarter := -1
		for i, r := range rs {
			if Of(r) == 0 {
				lastStarter = i
			}
		}
		if lastStarter < len(rs)-1 && lastStarter >= 0 {
			rs = rs[:lastStarter+1]
		} else if lastStarter < 0 {
			return 0, 0, transform.ErrShortSrc
		}
	}

	if err := ReorderRunes(rs); err != nil {
		return 0, 0, err
	}

	out := []byte(string(rs))
	if len(out) > len(dst) {
		return 0, 0, transform.ErrShortDst
	}
	copy(dst, out)

	consumed := 0
	for _, r := range rs {
		consumed += runeLen(r)
	}
	return len(out), consumed, nil
}

func runeLen(r rune) int {
	switch {
	case r < 0x80:
		return 1
	case r < 0x800:
		return 2
	case r < 0x10000:
		return 3
	default:
		return 4
	}
}
