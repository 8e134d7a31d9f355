// Package uchar implements the Unicode character service: UTF-8
// validation against Unicode Table 3-7, escape-aware decoding, the
// borrowed-storage Text value type, and the normalization forms used by
// the rest of the pipeline.
//
// Full decomposition, composition, and case folding are delegated to
// [golang.org/x/text/unicode/norm] and [golang.org/x/text/cases] rather
// than re-derived from a hand-generated Unicode database: this package
// is not a general-purpose Unicode database (that is explicitly out of
// scope), only the thin validation/escape/property layer the rest of the
// pipeline needs on top of it.
package uchar

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Diagnostic reports a validation failure at a byte offset.
type Diagnostic struct {
	Offset int
	Err    error
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("corpus: invalid input at byte %d: %s", d.Offset, d.Err)
}

func (d *Diagnostic) Unwrap() error { return d.Err }

var errInvalidUTF8 = fmt.Errorf("invalid UTF-8 byte sequence")
var errSurrogate = fmt.Errorf("unpaired UTF-16 surrogate")
var errOverlong = fmt.Errorf("overlong UTF-8 encoding")

// Validate scans p and reports the byte offset of the first invalid
// sequence, enforcing exactly the Table 3-7 well-formedness rules: the
// permitted first byte is 00..7F | C2..DF | E0..F4; the legal range for
// the second byte depends on the first (E0 requires A0..BF, ED requires
// 80..9F, F0 requires 90..BF, F4 requires 80..8F, otherwise 80..BF);
// subsequent continuation bytes are 80..BF. This rejects surrogate
// halves and over-long encodings by construction, without a separate
// pass.
func Validate(p []byte) error {
	i := 0
	for i < len(p) {
		n, err := scanOne(p[i:])
		if err != nil {
			return &Diagnostic{Offset: i, Err: err}
		}
		i += n
	}
	return nil
}

// scanOne advances past exactly one code point at the front of p,
// returning its byte length, or an error if p does not begin with a
// valid encoding.
func scanOne(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, errInvalidUTF8
	}
	b0 := p[0]

	switch {
	case b0 <= 0x7F:
		return 1, nil

	case b0 >= 0xC2 && b0 <= 0xDF:
		if len(p) < 2 || !cont(p[1]) {
			return 0, errInvalidUTF8
		}
		return 2, nil

	case b0 == 0xE0:
		if len(p) < 3 || !in(p[1], 0xA0, 0xBF) || !cont(p[2]) {
			return 0, errOverlong
		}
		return 3, nil

	case b0 == 0xED:
		if len(p) < 3 || !in(p[1], 0x80, 0x9F) || !cont(p[2]) {
			return 0, errSurrogate
		}
		return 3, nil

	case b0 >= 0xE1 && b0 <= 0xEC, b0 >= 0xEE && b0 <= 0xEF:
		if len(p) < 3 || !cont(p[1]) || !cont(p[2]) {
			return 0, errInvalidUTF8
		}
		return 3, nil

	case b0 == 0xF0:
		if len(p) < 4 || !in(p[1], 0x90, 0xBF) || !cont(p[2]) || !cont(p[3]) {
			return 0, errOverlong
		}
		return 4, nil

	case b0 >= 0xF1 && b0 <= 0xF3:
		if len(p) < 4 || !cont(p[1]) || !cont(p[2]) || !cont(p[3]) {
			return 0, errInvalidUTF8
		}
		return 4, nil

	case b0 == 0xF4:
		if len(p) < 4 || !in(p[1], 0x80, 0x8F) || !cont(p[2]) || !cont(p[3]) {
			return 0, errInvalidUTF8
		}
		return 4, nil

	default:
		return 0, errInvalidUTF8
	}
}

func cont(b byte) bool     { return in(b, 0x80, 0xBF) }
func in(b, lo, hi byte) bool { return b >= lo && b <= hi }

// Decode reads a single rune from the front of p, returning the rune and
// its width in bytes. p must already be valid UTF-8 (see Validate); if
// not, Decode returns utf8.RuneError and a width of 1.
func Decode(p []byte) (rune, int) {
	return utf8.DecodeRune(p)
}

// Encode appends the UTF-8 encoding of r to dst and returns the result.
func Encode(dst []byte, r rune) []byte {
	return utf8.AppendRune(dst, r)
}

// flag bits packed into Text.attr, mirroring the reference struct text's
// TEXT_UTF8_BIT / TEXT_ESC_BIT / TEXT_SIZE_MASK packing.
const (
	flagNonASCII = uint64(1) << 63
	flagHasEscape = uint64(1) << 62
	sizeMask     = flagHasEscape - 1
)

// Text is an ordered sequence of bytes plus two flag bits (contains
// non-ASCII, contains an unresolved backslash escape), packed into one
// "size attribute" alongside the byte length. Text is a value type over
// borrowed storage: the caller owns the backing array and must keep it
// alive for as long as any Text or Token derived from it is in use.
type Text struct {
	Bytes []byte
	attr  uint64
}

// Make creates a Text over p, validating it as UTF-8 and scanning for
// backslash escapes unless noEscape is set. It does not resolve escapes;
// that happens lazily, during iteration.
func Make(p []byte, noEscape bool) (Text, error) {
	if err := Validate(p); err != nil {
		return Text{}, err
	}
	t := Text{Bytes: p}
	if uint64(len(p)) > sizeMask {
		return Text{}, fmt.Errorf("corpus: text size %d exceeds maximum", len(p))
	}
	t.attr = uint64(len(p))

	for _, b := range p {
		if b >= 0x80 {
			t.attr |= flagNonASCII
			break
		}
	}
	if !noEscape {
		for i := 0; i < len(p); i++ {
			if p[i] == '\\' {
				t.attr |= flagHasEscape
				break
			}
		}
	}
	return t, nil
}

// Size returns the encoded size of the text, in bytes.
func (t Text) Size() int { return int(t.attr & sizeMask) }

// IsASCII reports whether the text is known to decode to pure ASCII: it
// must be encoded in ASCII and have no escape that could decode to a
// non-ASCII code point.
func (t Text) IsASCII() bool {
	return t.attr&flagNonASCII == 0 && t.attr&flagHasEscape == 0
}

// HasEscape reports whether the text contains a backslash that should be
// interpreted as a JSON-style escape.
func (t Text) HasEscape() bool { return t.attr&flagHasEscape != 0 }

// String returns the raw (still-escaped) bytes of the text as a string.
func (t Text) String() string { return string(t.Bytes) }

// NFC, NFKC, NFD, NFKD apply the four Unicode normalization forms,
// delegating to golang.org/x/text/unicode/norm.
func NFC(s string) string  { return norm.NFC.String(s) }
func NFKC(s string) string { return norm.NFKC.String(s) }
func NFD(s string) string  { return norm.NFD.String(s) }
func NFKD(s string) string { return norm.NFKD.String(s) }

var caseFolder = cases.Fold()

// Fold applies full Unicode case folding.
func Fold(s string) string {
	return caseFolder.String(s)
}
