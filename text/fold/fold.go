// Package fold implements operations that map similar characters to a
// common target, so that pipeline normalization can ignore distinctions
// the caller doesn't care about. Adapted from the teacher library's
// text/fold package: same transformer catalogue and transform.Chain
// composition style, rewired onto this module's text/dm and a quote/dash
// fold pair this spec's type-kind flags need (see typemap.Kind).
//
// DISCLAIMER: several of these foldings are based on suggested foldings
// from withdrawn drafts of Unicode technical reports (UTR #25, UTR #30)
// and are not appropriate for secure contexts.
package fold

import (
	"unicode"

	"github.com/tawesoft/corpus/v2/text/dm"
	"github.com/tawesoft/corpus/v2/text/uchar"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Accents is a transformer that removes accents from Latin/Greek/Cyrillic
// characters.
var Accents = accents
var accents = transform.Chain(
	runes.If(runes.Predicate(func(r rune) bool {
		return unicode.In(r, unicode.Latin, unicode.Greek, unicode.Cyrillic)
	}), norm.NFD, nil),
	runes.Remove(runes.Predicate(func(r rune) bool {
		return unicode.Is(unicode.Mn, r)
	})),
)

// canonicalDuplicateSet holds code points with a legacy singleton
// canonical equivalent that only differs for historical reasons (e.g.
// Ohm sign => capital omega).
var canonicalDuplicateSet = map[rune]bool{
	0x0374: true, 0x037E: true, 0x0387: true, 0x1FBE: true,
	0x1FEF: true, 0x1FFD: true, 0x2000: true, 0x2001: true,
	0x2126: true, 0x212A: true, 0x212B: true,
}

// CanonicalDuplicates is a transformer that folds duplicate singletons
// (e.g. Ohm => Omega).
var CanonicalDuplicates = canonicalDuplicates
var canonicalDuplicates = runes.If(runes.Predicate(func(r rune) bool {
	if canonicalDuplicateSet[r] {
		return true
	}
	return r >= 0x2329 && r <= 0x232A
}), norm.NFD, nil)

// Dashes is a transformer that folds everything in Unicode class Pd
// ("dash punctuation") to hyphen-minus '-'.
var Dashes = dashes
var dashes = runes.Map(func(r rune) rune {
	if unicode.Is(unicode.Pd, r) {
		return 0x002D // Hyphen-Minus
	}
	return r
})

// Quotes is a transformer that folds curly/angled quotation marks to
// ASCII ' and ".
var Quotes = quotes
var quotes = runes.Map(func(r rune) rune {
	switch r {
	case 0x2018, 0x2019, 0x201A, 0x201B, 0x2039, 0x203A, 0x2032:
		return '\''
	case 0x201C, 0x201D, 0x201E, 0x201F, 0x00AB, 0x00BB, 0x2033:
		return '"'
	}
	return r
})

// GreekLetterforms is a transformer that folds alternative Greek
// letterforms e.g. 'ϐ' to 'β'.
var GreekLetterforms = greekLetterforms
var greekLetterforms = dm.KD.TransformerWithFilter(func(r rune) bool {
	switch {
	case r >= 0x03D0 && r <= 0x03D2:
		return true
	case r >= 0x03D5 && r <= 0x03D6:
		return true
	case r >= 0x03F0 && r <= 0x03F2:
		return true
	case r >= 0x03F4 && r <= 0x03F5:
		return true
	default:
		return false
	}
})

// Jamo applies text/dm's KD decomposer to the Hangul Compatibility Jamo
// block (U+3131..U+3183). text/dm's table has no entries for that block,
// so Jamo leaves its input unchanged.
var Jamo = jamo
var jamo = dm.KD.TransformerWithFilter(func(r rune) bool {
	return r >= 0x3131 && r <= 0x3183
})

// Math folds the Font-tagged entries of text/dm's table, outside
// U+FB20..U+FB28. That table holds one such entry (U+1D6D1, mathematical
// bold small pi); other font variants pass through unchanged.
var Math = math
var math = dm.New(dm.Font).TransformerWithFilter(func(r rune) bool {
	return r < 0xFB20 || r > 0xFB28
})

// NoBreak folding converts non-breaking space and non-breaking hyphens.
var NoBreak = dm.New(dm.NoBreak).Transformer()

// Positional folding maps the Arabic isolated, initial, medial and final
// presentation forms in text/dm's table to their base letters.
// Presentation-form ligatures are not folded.
var Positional = dm.New(dm.Initial, dm.Medial, dm.Final, dm.Isolated).Transformer()

// Space folding converts all spaces to a single 0x0020 space.
var Space = runes.Map(func(r rune) rune {
	if unicode.Is(unicode.Zs, r) {
		return 0x0020
	}
	return r
})

// Small folding converts small variant forms into normal forms.
var Small = dm.New(dm.Small).Transformer()

// DefaultIgnorable removes code points with the Default_Ignorable_Code_Point
// property (soft hyphen, format controls, variation selectors).
var DefaultIgnorable = runes.Remove(runes.Predicate(uchar.DefaultIgnorable))
