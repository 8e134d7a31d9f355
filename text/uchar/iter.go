package uchar

import (
	"fmt"
)

// Iter iterates over the code points of a Text in document order,
// resolving backslash escapes (\n \t \uXXXX, including UTF-16 surrogate
// pairs, plus \\ \" \/ \b \f \r) when the text's escape flag is set. It
// exposes a one-code-point look-ahead, as required by the word and
// sentence scanners.
type Iter struct {
	text Text
	pos  int // byte offset into text.Bytes of the next code point to decode

	cur     rune
	curSize int // number of raw input bytes the current code point consumed
	curErr  error
	started bool

	peeked   bool
	peekRune rune
	peekSize int
	peekErr  error
}

// NewIter returns an iterator over t, positioned before the first code
// point.
func NewIter(t Text) *Iter {
	return &Iter{text: t}
}

// Text returns the Text being iterated.
func (it *Iter) Text() Text { return it.text }

// Offset returns the current byte offset into the raw (still-escaped)
// input.
func (it *Iter) Offset() int { return it.pos }

// Current returns the most recently returned rune. Valid only after
// Advance has returned true at least once.
func (it *Iter) Current() rune { return it.cur }

// Size returns the number of raw (possibly escaped) input bytes the most
// recent Advance consumed.
func (it *Iter) Size() int { return it.curSize }

// Advance moves to the next code point, returning false at end of text or
// on a decode error (retrievable via Err).
func (it *Iter) Advance() bool {
	if it.peeked {
		it.cur, it.curSize, it.curErr = it.peekRune, it.peekSize, it.peekErr
		it.peeked = false
		it.started = true
		return it.curErr == nil && it.curSize > 0
	}

	r, sz, err := it.decodeAt(it.pos)
	it.cur, it.curSize, it.curErr = r, sz, err
	it.pos += sz
	it.started = true
	return err == nil && sz > 0
}

// Peek returns the rune that the next call to Advance would return,
// without consuming it.
func (it *Iter) Peek() (rune, bool) {
	if !it.peeked {
		r, sz, err := it.decodeAt(it.pos)
		it.peekRune, it.peekSize, it.peekErr = r, sz, err
		it.peeked = true
		it.pos += sz
	}
	return it.peekRune, it.peekErr == nil && it.peekSize > 0
}

// Err returns the error from the most recent Advance, if any. A decode
// error met by Peek is returned here once Advance reaches that code point.
func (it *Iter) Err() error { return it.curErr }

// decodeAt decodes one (possibly escaped) code point starting at byte
// offset pos in the raw input, returning the rune, the number of raw
// input bytes consumed, and an error.
func (it *Iter) decodeAt(pos int) (rune, int, error) {
	raw := it.text.Bytes
	if pos >= len(raw) {
		return 0, 0, nil
	}

	if it.text.HasEscape() && raw[pos] == '\\' {
		return decodeEscape(raw, pos)
	}

	r, sz := Decode(raw[pos:])
	return r, sz, nil
}

// decodeEscape decodes a single JSON-style backslash escape starting at
// raw[pos] (which must be '\\'), resolving UTF-16 surrogate pairs for
// \uXXXX\uXXXX sequences.
func decodeEscape(raw []byte, pos int) (rune, int, error) {
	if pos+1 >= len(raw) {
		return 0, 0, fmt.Errorf("corpus: truncated escape sequence")
	}
	switch raw[pos+1] {
	case '"':
		return '"', 2, nil
	case '\\':
		return '\\', 2, nil
	case '/':
		return '/', 2, nil
	case 'b':
		return '\b', 2, nil
	case 'f':
		return '\f', 2, nil
	case 'n':
		return '\n', 2, nil
	case 'r':
		return '\r', 2, nil
	case 't':
		return '\t', 2, nil
	case 'u':
		r1, n, err := hex4(raw, pos+2)
		if err != nil {
			return 0, 0, err
		}
		if r1 >= 0xD800 && r1 <= 0xDBFF {
			// possible high surrogate; look for a following low surrogate
			if pos+2+n+2 <= len(raw) && raw[pos+2+n] == '\\' && raw[pos+2+n+1] == 'u' {
				r2, n2, err2 := hex4(raw, pos+2+n+2)
				if err2 == nil && r2 >= 0xDC00 && r2 <= 0xDFFF {
					combined := 0x10000 + (r1-0xD800)*0x400 + (r2 - 0xDC00)
					return combined, 2 + n + 2 + n2, nil
				}
			}
			return 0, 0, fmt.Errorf("corpus: unpaired high surrogate escape")
		}
		if r1 >= 0xDC00 && r1 <= 0xDFFF {
			return 0, 0, fmt.Errorf("corpus: unpaired low surrogate escape")
		}
		return r1, 2 + n, nil
	default:
		return 0, 0, fmt.Errorf("corpus: invalid escape character %q", raw[pos+1])
	}
}

func hex4(raw []byte, pos int) (rune, int, error) {
	if pos+4 > len(raw) {
		return 0, 0, fmt.Errorf("corpus: truncated \\u escape")
	}
	var v rune
	for i := 0; i < 4; i++ {
		c := raw[pos+i]
		var d rune
		switch {
		case c >= '0' && c <= '9':
			d = rune(c - '0')
		case c >= 'a' && c <= 'f':
			d = rune(c-'a') + 10
		case c >= 'A' && c <= 'F':
			d = rune(c-'A') + 10
		default:
			return 0, 0, fmt.Errorf("corpus: invalid hex digit %q in \\u escape", c)
		}
		v = v*16 + d
	}
	return v, 4, nil
}
