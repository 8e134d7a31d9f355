// Package wordbreak implements a UAX #29 word-boundary scanner over a
// text/uchar.Text, grounded on the teacher library's css/tokenizer
// texture: an explicit Scanner struct with a synchronous Advance/Next
// method, no goroutines or channels.
package wordbreak

import (
	"github.com/tawesoft/corpus/v2/text/uchar"
)

// Class is the coarse word-class a token is bucketed into, by the
// word-break property of its first significant code point.
type Class int

const (
	None Class = iota
	Newline
	Letter
	Number
	Kana
	Ideo
	Mark
	Punct
	Symbol
	Space
)

// Token is one scanned word-boundary span, as a byte range [Start, End)
// into the original Text's raw (possibly escaped) bytes.
type Token struct {
	Start int
	End   int
	Class Class
}

// Scanner walks a Text applying WB1-WB16 to find word boundaries.
type Scanner struct {
	it  *uchar.Iter
	err error
}

// NewScanner returns a Scanner over t.
func NewScanner(t uchar.Text) *Scanner {
	return &Scanner{it: uchar.NewIter(t)}
}

// Err returns the first error encountered, if any.
func (s *Scanner) Err() error {
	return s.err
}

// Next scans and returns the next word-boundary token. ok is false at
// end of input or after the first error (see Err).
func (s *Scanner) Next() (Token, bool) {
	if s.err != nil {
		return Token{}, false
	}
	if !s.it.Advance() {
		if err := s.it.Err(); err != nil {
			s.err = err
		}
		return Token{}, false
	}

	start := s.it.Offset() - s.it.Size()
	firstProp := uchar.WordBreakPropertyOf(s.it.Current())
	prevProp := firstProp
	rawPrevProp := firstProp
	end := s.it.Offset()
	riRun := 0 // regional indicators since the last other significant code point
	if firstProp == uchar.WBRegionalIndicator {
		riRun = 1
	}

	for {
		pr, ok := s.it.Peek()
		if !ok {
			if err := s.it.Err(); err != nil {
				s.err = err
			}
			break
		}
		nextProp := uchar.WordBreakPropertyOf(pr)
		if breaks(prevProp, nextProp, rawPrevProp) {
			break
		}
		if nextProp == uchar.WBRegionalIndicator && riRun > 0 && riRun%2 == 0 {
			break // WB15/16: a complete pair of regional indicators ends the token
		}
		if !s.it.Advance() {
			break
		}
		end = s.it.Offset()
		rawPrevProp = nextProp
		if nextProp != uchar.WBFormat && nextProp != uchar.WBExtend && nextProp != uchar.WBZWJ {
			prevProp = nextProp
			if nextProp == uchar.WBRegionalIndicator {
				riRun++
			} else {
				riRun = 0
			}
		}
	}

	tok := Token{
		Start: start,
		End:   end,
		Class: classify(firstProp),
	}
	return tok, true
}

// breaks decides, per WB1-WB16, whether a boundary falls between a rune
// with word-break property prev and a following candidate rune with
// property next. rawPrev is the word-break property of the code point
// immediately preceding next (unlike prev, which is WB4-transparent and so
// never itself holds Format/Extend/ZWJ) — it exists purely so WB3c can see
// a true ZWJ predecessor even when the ZWJ was folded into the current
// token's context class.
func breaks(prev uchar.WordBreakProperty, next uchar.WordBreakProperty, rawPrev uchar.WordBreakProperty) bool {
	// WB3: CR x LF
	if prev == uchar.WBCR && next == uchar.WBLF {
		return false
	}
	// WB3a/b: break before/after Newline/CR/LF
	if prev == uchar.WBNewline || prev == uchar.WBCR || prev == uchar.WBLF {
		return true
	}
	if next == uchar.WBNewline || next == uchar.WBCR || next == uchar.WBLF {
		return true
	}
	// WB3c: ZWJ x Extended_Pictographic
	if rawPrev == uchar.WBZWJ && next == uchar.WBEBaseGAZ {
		return false
	}
	// WB3d: WSegSpace x WSegSpace
	if prev == uchar.WBWSegSpace && next == uchar.WBWSegSpace {
		return false
	}
	// WB4: Format/Extend/ZWJ never break on their own
	if next == uchar.WBFormat || next == uchar.WBExtend || next == uchar.WBZWJ {
		return false
	}

	// WB5: AHLetter x AHLetter
	if isAHLetter(prev) && isAHLetter(next) {
		return false
	}
	// WB6/WB7: AHLetter x (MidLetter|MidNumLetQ) AHLetter
	if isAHLetter(prev) && (next == uchar.WBMidLetter || next == uchar.WBMidNumLetQ) {
		return false
	}
	if (prev == uchar.WBMidLetter || prev == uchar.WBMidNumLetQ) && isAHLetter(next) {
		return false
	}
	// WB7a: Hebrew_Letter x Single_Quote
	if prev == uchar.WBHebrewLetter && next == uchar.WBMidNumLetQ {
		return false
	}
	// WB7b/c: Hebrew_Letter x Double_Quote Hebrew_Letter
	if prev == uchar.WBHebrewLetter && next == uchar.WBHebrewLetter {
		return false
	}
	// WB8: Numeric x Numeric
	if prev == uchar.WBNumeric && next == uchar.WBNumeric {
		return false
	}
	// WB9: AHLetter x Numeric
	if isAHLetter(prev) && next == uchar.WBNumeric {
		return false
	}
	// WB10: Numeric x AHLetter
	if prev == uchar.WBNumeric && isAHLetter(next) {
		return false
	}
	// WB11/12: Numeric x (MidNum|MidNumLetQ) Numeric
	if prev == uchar.WBNumeric && (next == uchar.WBMidNum || next == uchar.WBMidNumLetQ) {
		return false
	}
	if (prev == uchar.WBMidNum || prev == uchar.WBMidNumLetQ) && next == uchar.WBNumeric {
		return false
	}
	// WB13: Katakana x Katakana
	if prev == uchar.WBKatakana && next == uchar.WBKatakana {
		return false
	}
	// WB13a/b: (AHLetter|Numeric|Katakana|ExtendNumLet) x ExtendNumLet, and reverse
	if isExtendNumLetJoinable(prev) && next == uchar.WBExtendNumLet {
		return false
	}
	if prev == uchar.WBExtendNumLet && isExtendNumLetJoinable(next) {
		return false
	}
	// WB15/16: RI x RI. Next ends the token after each complete pair, so a
	// run of regional indicators splits into pairs.
	if prev == uchar.WBRegionalIndicator && next == uchar.WBRegionalIndicator {
		return false
	}

	return true
}

func isAHLetter(p uchar.WordBreakProperty) bool {
	return p == uchar.WBALetter || p == uchar.WBHebrewLetter
}

func isExtendNumLetJoinable(p uchar.WordBreakProperty) bool {
	switch p {
	case uchar.WBALetter, uchar.WBHebrewLetter, uchar.WBNumeric, uchar.WBKatakana, uchar.WBExtendNumLet:
		return true
	}
	return false
}

func classify(p uchar.WordBreakProperty) Class {
	switch p {
	case uchar.WBNewline, uchar.WBCR, uchar.WBLF:
		return Newline
	case uchar.WBALetter, uchar.WBHebrewLetter:
		return Letter
	case uchar.WBNumeric:
		return Number
	case uchar.WBKatakana:
		return Kana
	case uchar.WBExtend, uchar.WBFormat, uchar.WBZWJ:
		return Mark
	case uchar.WBWSegSpace:
		return Space
	case uchar.WBMidLetter, uchar.WBMidNum, uchar.WBMidNumLetQ:
		return Punct
	case uchar.WBEBase, uchar.WBEBaseGAZ, uchar.WBEModifier, uchar.WBRegionalIndicator:
		return Symbol
	}
	return None
}
