package dm

import "testing"

func TestMap_Hangul(t *testing.T) {
	// U+AC00 HANGUL SYLLABLE GA = L(0x1100) + V(0x1161), no trailing consonant.
	typ, to, ok := Map(0xAC00)
	if !ok || typ != Canonical {
		t.Fatalf("Map(0xAC00) ok=%v typ=%v, want Canonical", ok, typ)
	}
	want := []rune{0x1100, 0x1161}
	if len(to) != len(want) || to[0] != want[0] || to[1] != want[1] {
		t.Fatalf("Map(0xAC00) = %v, want %v", to, want)
	}

	// U+AC01 HANGUL SYLLABLE GAG has a trailing consonant.
	_, to, _ = Map(0xAC01)
	if len(to) != 3 {
		t.Fatalf("Map(0xAC01) = %v, want 3 runes", to)
	}
}

func TestMap_NoBreak(t *testing.T) {
	typ, to, ok := Map(0x00A0)
	if !ok || typ != NoBreak || string(to) != " " {
		t.Fatalf("Map(nbsp) = %v %q %v, want NoBreak ' '", typ, string(to), ok)
	}
}

func TestDecomposer_Except(t *testing.T) {
	d := New(NoBreak, Small).Except(Small)
	if _, ok := d.Map(0xFE50); ok {
		t.Fatalf("Except(Small) should not fold 0xFE50")
	}
	if to, ok := d.Map(0x00A0); !ok || string(to) != " " {
		t.Fatalf("Except(Small) should still fold NoBreak")
	}
}

func TestDecomposer_String(t *testing.T) {
	d := New(NoBreak)
	got := d.String("a b")
	if got != "a b" {
		t.Fatalf("String() = %q, want %q", got, "a b")
	}
}
