package wordbreak_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tawesoft/corpus/v2/text/uchar"
	"github.com/tawesoft/corpus/v2/text/wordbreak"
)

func scanAll(t *testing.T, s string) []string {
	txt, err := uchar.Make([]byte(s), true)
	if err != nil {
		t.Fatalf("Make: %v", err)
	}
	sc := wordbreak.NewScanner(txt)
	var out []string
	for {
		tok, ok := sc.Next()
		if !ok {
			break
		}
		out = append(out, s[tok.Start:tok.End])
	}
	if err := sc.Err(); err != nil {
		t.Fatalf("scan error: %v", err)
	}
	return out
}

func TestWords(t *testing.T) {
	assert.Equal(t, []string{"hello", " ", "world"}, scanAll(t, "hello world"))
	assert.Equal(t, []string{"don't"}, scanAll(t, "don't"))
	assert.Equal(t, []string{"3.14"}, scanAll(t, "3.14"))
	assert.Equal(t, []string{"U.S."}, scanAll(t, "U.S."))
}

func TestPunctuationBreaks(t *testing.T) {
	assert.Equal(t, []string{"hello", ",", " ", "world", "!"}, scanAll(t, "hello, world!"))
}

func TestZWJEmojiSequenceIsOneToken(t *testing.T) {
	// man ZWJ woman ZWJ girl: a single Extended_Pictographic x ZWJ x
	// Extended_Pictographic family emoji sequence, per WB3c. Must scan as
	// exactly one token, not break apart at each ZWJ.
	zwj := string(rune(0x200D))
	family := "\U0001F468" + zwj + "\U0001F469" + zwj + "\U0001F467"
	assert.Equal(t, []string{family}, scanAll(t, family))
}
