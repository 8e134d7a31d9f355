// Package dm classifies and applies Unicode compatibility decompositions,
// adapted from the teacher library's text/dm package. Full canonical and
// compatibility decomposition of arbitrary text is delegated to
// golang.org/x/text/unicode/norm (see text/uchar.NFD/NFKD) — this package's
// job is the one norm does not expose: picking apart decomposition by its
// formatting tag, so callers can fold only the tags they want (e.g.
// NoBreak spaces but not Font variants).
package dm

import (
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// Type is a Unicode compatibility formatting tag, plus None (no
// decomposition) and Canonical (a canonical, untagged decomposition, such
// as a Hangul syllable or a precomposed Latin letter).
type Type int

const (
	None Type = iota
	Canonical
	Font
	NoBreak
	Initial
	Medial
	Final
	Isolated
	Circle
	Super
	Sub
	Vertical
	Wide
	Narrow
	Small
	Square
	Fraction
	Compat
)

// Map returns the decomposition of r and its formatting tag. If r has no
// entry in this package's table, ok is false.
func Map(r rune) (typ Type, to []rune, ok bool) {
	if hangulS := r - hangulSBase; hangulS >= 0 && hangulS < hangulSCount {
		return Canonical, hangulDecompose(r), true
	}
	if e, found := table[r]; found {
		return e.typ, e.to, true
	}
	return None, nil, false
}

// Hangul syllable algorithmic decomposition, per spec.md §4.1.
const (
	hangulSBase  = 0xAC00
	hangulLBase  = 0x1100
	hangulVBase  = 0x1161
	hangulTBase  = 0x11A7
	hangulLCount = 19
	hangulVCount = 21
	hangulTCount = 28
	hangulNCount = hangulVCount * hangulTCount
	hangulSCount = hangulLCount * hangulNCount
)

func hangulDecompose(s rune) []rune {
	sIndex := s - hangulSBase
	l := hangulLBase + sIndex/hangulNCount
	v := hangulVBase + (sIndex%hangulNCount)/hangulTCount
	t := sIndex % hangulTCount
	if t == 0 {
		return []rune{l, v}
	}
	return []rune{l, v, hangulTBase + t}
}

// CD is a Decomposer that folds only canonical (untagged) decompositions —
// Hangul syllables and any canonical singleton mappings in the table.
var CD = New(Canonical)

// KD is a Decomposer that folds every compatibility tag, as well as
// canonical decompositions — the full "compatibility decomposition" set.
var KD = New(
	Canonical, Font, NoBreak, Initial, Medial, Final, Isolated, Circle,
	Super, Sub, Vertical, Wide, Narrow, Small, Square, Fraction, Compat,
)

// Decomposer selects a set of formatting tags to fold against. The zero
// value selects nothing.
type Decomposer struct {
	types map[Type]bool
}

// New builds a Decomposer that folds exactly the given tags.
func New(types ...Type) Decomposer {
	d := Decomposer{types: make(map[Type]bool, len(types))}
	for _, t := range types {
		d.types[t] = true
	}
	return d
}

// Extend returns a Decomposer that also folds the given tags.
func (d Decomposer) Extend(types ...Type) Decomposer {
	nt := make(map[Type]bool, len(d.types)+len(types))
	for t := range d.types {
		nt[t] = true
	}
	for _, t := range types {
		nt[t] = true
	}
	return Decomposer{types: nt}
}

// Except returns a Decomposer that folds everything d does, except the
// given tags.
func (d Decomposer) Except(types ...Type) Decomposer {
	nt := make(map[Type]bool, len(d.types))
	for t := range d.types {
		nt[t] = true
	}
	for _, t := range types {
		delete(nt, t)
	}
	return Decomposer{types: nt}
}

// Map replaces r with its decomposition if r's tag is selected by d; it
// returns nil and ok=false otherwise. Since a decomposition may
// be more than one rune, the caller receives a slice.
func (d Decomposer) Map(r rune) (to []rune, ok bool) {
	typ, to, found := Map(r)
	if !found || !d.types[typ] {
		return nil, false
	}
	return to, true
}

// String applies d to every rune of s in turn (not recursively).
func (d Decomposer) String(s string) string {
	var b []rune
	for _, r := range s {
		if to, ok := d.Map(r); ok {
			b = append(b, to...)
		} else {
			b = append(b, r)
		}
	}
	return string(b)
}

// Transformer returns a transform.Transformer applying d to a byte stream.
func (d Decomposer) Transformer() transform.Transformer {
	return decomposeTransformer{d: d, filter: nil}
}

// TransformerWithFilter is like Transformer, but only folds runes for
// which filter returns true, leaving everything else — including runes
// whose tag is selected by d — untouched.
func (d Decomposer) TransformerWithFilter(filter func(rune) bool) transform.Transformer {
	return decomposeTransformer{d: d, filter: filter}
}

type decomposeTransformer struct {
	d      Decomposer
	filter func(rune) bool
}

func (decomposeTransformer) Reset() {}

func (t decomposeTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		r, size := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError && size <= 1 {
			if !atEOF && !utf8.FullRune(src[nSrc:]) {
				return nDst, nSrc, transform.ErrShortSrc
			}
			size = 1
		}

		out := []rune{r}
		if t.filter == nil || t.filter(r) {
			if mapped, ok := t.d.Map(r); ok {
				out = mapped
			}
		}

		enc := []byte(string(out))
		if nDst+len(enc) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		copy(dst[nDst:], enc)
		nDst += len(enc)
		nSrc += size
	}
	return nDst, nSrc, nil
}
