// Package typemap turns a token's raw bytes into its normalized "type":
// a folded, optionally stemmed, canonical representative that symtab
// dedupes tokens against. Grounded on spec.md §4.4.
package typemap

import (
	"github.com/tawesoft/corpus/v2/stem"
	"github.com/tawesoft/corpus/v2/text/ccc"
	"github.com/tawesoft/corpus/v2/text/uchar"
	"github.com/tawesoft/corpus/v2/text/wordbreak"
)

// Kind is a bitmask of folding behaviors a Map applies.
type Kind uint

const (
	MapCase Kind = 1 << iota
	MapCompat
	MapQuote
	MapDash
	RemoveControl
	RemoveWhitespace
	RemoveDefaultIgnorable
)

// asciiAction maps each ASCII byte to its replacement under MapCase: the
// lowercase letter for 'A'..'Z', the byte itself otherwise. Populated once
// at package init; non-ASCII input always falls through to the rune-level
// fold, ccc reordering and NFC/NFKC pipeline.
var asciiAction [128]int8

func init() {
	for i := 0; i < 128; i++ {
		asciiAction[i] = int8(i)
	}
	for c := 'A'; c <= 'Z'; c++ {
		asciiAction[c] = int8(c - 'A' + 'a')
	}
	asciiAction[0x09] = ' ' // not consulted: foldASCIIFastPath reads asciiAction only for 'A'..'Z'
}

// Map configures and applies the folding/stemming pipeline.
type Map struct {
	kind    Kind
	stemmer stem.Func
	// exceptions holds types that must never be passed to the stemmer
	// (the stem-exception set spec.md §4.4 refers to).
	exceptions map[string]bool
}

// New builds a Map with the given Kind flags and an optional stemmer
// (nil means no stemming).
func New(kind Kind, stemmer stem.Func) *Map {
	return &Map{kind: kind, stemmer: stemmer, exceptions: map[string]bool{}}
}

// AddException marks a type as exempt from stemming.
func (m *Map) AddException(typ string) {
	m.exceptions[typ] = true
}

// Set computes the normalized type for one token's raw bytes. wordClass
// is the token's word class, as classified by text/wordbreak, used to
// gate stemming to Letter tokens only.
func (m *Map) Set(raw []byte, escaped bool, wordClass wordbreak.Class) (string, error) {
	folded, err := m.fold(raw, escaped)
	if err != nil {
		return "", err
	}

	if wordClass != wordbreak.Letter || m.stemmer == nil || m.exceptions[folded] {
		return folded, nil
	}

	stemmed, changed := m.stemmer([]byte(folded))
	if !changed {
		return folded, nil
	}
	if wordCount(folded) != wordCount(string(stemmed)) {
		return folded, nil
	}
	return string(stemmed), nil
}

// wordCount is the internal word-count guard from spec.md §4.4: it counts
// maximal runs of letters/digits, which is what distinguishes "u.s" (2
// words) from "u." (1 word).
func wordCount(s string) int {
	n := 0
	inWord := false
	for _, r := range s {
		isWordRune := uchar.WordBreakPropertyOf(r) == uchar.WBALetter ||
			uchar.WordBreakPropertyOf(r) == uchar.WBHebrewLetter ||
			uchar.WordBreakPropertyOf(r) == uchar.WBNumeric
		if isWordRune && !inWord {
			n++
			inWord = true
		} else if !isWordRune {
			inWord = false
		}
	}
	return n
}

func (m *Map) fold(raw []byte, escaped bool) (string, error) {
	if allASCII(raw) && !escaped {
		return m.foldASCIIFastPath(raw), nil
	}

	txt, err := uchar.Make(raw, !escaped)
	if err != nil {
		return "", err
	}

	rs, err := decodeAll(txt)
	if err != nil {
		return "", err
	}

	rs = m.applyRuneFolds(rs)

	if err := ccc.ReorderRunes(rs); err != nil {
		return "", err
	}

	s := string(rs)
	if m.kind&MapCompat != 0 {
		s = uchar.NFKC(s)
	} else {
		s = uchar.NFC(s)
	}
	return s, nil
}

func decodeAll(t uchar.Text) ([]rune, error) {
	it := uchar.NewIter(t)
	var rs []rune
	for it.Advance() {
		rs = append(rs, it.Current())
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	return rs, nil
}

func (m *Map) applyRuneFolds(rs []rune) []rune {
	out := rs[:0]
	for _, r := range rs {
		if m.kind&RemoveDefaultIgnorable != 0 && uchar.DefaultIgnorable(r) {
			continue
		}
		if m.kind&RemoveControl != 0 && isControl(r) {
			continue
		}
		if m.kind&RemoveWhitespace != 0 && isWhitespace(r) {
			continue
		}
		if m.kind&MapCase != 0 {
			r = foldCaseRune(r)
		}
		if m.kind&MapQuote != 0 {
			r = foldQuoteRune(r)
		}
		if m.kind&MapDash != 0 {
			r = foldDashRune(r)
		}
		out = append(out, r)
	}
	return out
}

func isControl(r rune) bool {
	return r < 0x20 || (r >= 0x7F && r <= 0x9F)
}

func isWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f', 0xA0, 0x2028, 0x2029:
		return true
	}
	return false
}

func foldCaseRune(r rune) rune {
	s := uchar.Fold(string(r))
	rs := []rune(s)
	if len(rs) == 0 {
		return r
	}
	return rs[0]
}

func foldQuoteRune(r rune) rune {
	switch r {
	case 0x2018, 0x2019, 0x201A, 0x201B, 0x2039, 0x203A:
		return '\''
	case 0x201C, 0x201D, 0x201E, 0x201F, 0x00AB, 0x00BB:
		return '"'
	}
	return r
}

func foldDashRune(r rune) rune {
	if r == 0x2010 || r == 0x2011 || (r >= 0x2012 && r <= 0x2015) || r == 0x2212 {
		return '-'
	}
	return r
}

func allASCII(p []byte) bool {
	for _, b := range p {
		if b >= 0x80 {
			return false
		}
	}
	return true
}

func (m *Map) foldASCIIFastPath(raw []byte) string {
	out := make([]byte, 0, len(raw))
	for _, b := range raw {
		if m.kind&RemoveControl != 0 && (b < 0x20 || b == 0x7F) {
			continue
		}
		if m.kind&RemoveWhitespace != 0 && (b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f') {
			continue
		}
		c := b
		if m.kind&MapCase != 0 && c >= 'A' && c <= 'Z' {
			c = byte(asciiAction[c])
		}
		out = append(out, c)
	}
	return string(out)
}
