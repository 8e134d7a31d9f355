package dm

// mapping is one entry of the hand-maintained compatibility-decomposition
// table: a single code point with an explicit replacement sequence and
// the formatting tag that classifies it.
type mapping struct {
	from rune
	to   []rune
	typ  Type
}

// table is a practical subset of the UCD's compatibility decompositions,
// covering the formatting tags the rest of this module actually folds
// against (see text/fold): NoBreak spaces/hyphens, CJK/ASCII small-form
// punctuation, a representative sample of Arabic presentation forms, and
// superscript/subscript/fraction digits. It is not a full mirror of
// UnicodeData.txt's decomposition column — see doc.go.
var table = buildTable()

func buildTable() map[rune]mapping {
	m := make(map[rune]mapping, 256)
	add := func(from rune, typ Type, to ...rune) {
		m[from] = mapping{from: from, to: to, typ: typ}
	}

	// NoBreak: non-breaking space and hyphen variants fold to their
	// breaking equivalents.
	add(0x00A0, NoBreak, ' ')
	add(0x2007, NoBreak, ' ')
	add(0x202F, NoBreak, ' ')
	add(0x2011, NoBreak, '-')

	// Small: CJK small form variants, which mirror ASCII punctuation.
	smallForms := []struct {
		r    rune
		base rune
	}{
		{0xFE50, ','}, {0xFE52, '.'}, {0xFE54, ';'}, {0xFE55, ':'},
		{0xFE56, '?'}, {0xFE57, '!'}, {0xFE58, '-'}, {0xFE59, '('},
		{0xFE5A, ')'}, {0xFE5B, '{'}, {0xFE5C, '}'},
	}
	for _, s := range smallForms {
		add(s.r, Small, s.base)
	}

	// Super/Sub: superscript and subscript digits and common letters.
	superDigits := "0123456789"
	superCps := []rune{0x2070, 0x00B9, 0x00B2, 0x00B3, 0x2074, 0x2075, 0x2076, 0x2077, 0x2078, 0x2079}
	for i, cp := range superCps {
		add(cp, Super, rune(superDigits[i]))
	}
	add(0x207A, Super, '+')
	add(0x207B, Super, '-')
	add(0x207F, Super, 'n')
	add(0x00AA, Super, 'a')
	add(0x00BA, Super, 'o')

	subDigits := "0123456789"
	for i := 0; i < 10; i++ {
		add(rune(0x2080+i), Sub, rune(subDigits[i]))
	}
	add(0x208A, Sub, '+')
	add(0x208B, Sub, '-')

	// Fraction: common vulgar fractions.
	add(0x00BC, Fraction, '1', '⁄', '4')
	add(0x00BD, Fraction, '1', '⁄', '2')
	add(0x00BE, Fraction, '3', '⁄', '4')
	add(0x2153, Fraction, '1', '⁄', '3')
	add(0x2154, Fraction, '2', '⁄', '3')
	add(0x2155, Fraction, '1', '⁄', '5')

	// Initial/Medial/Final/Isolated: a representative sample of Arabic
	// presentation forms mapping back to their base letters.
	arabicForms := []struct {
		base                          rune
		isolated, final, initial, medial rune
	}{
		{0x0628, 0xFE8F, 0xFE90, 0xFE91, 0xFE92}, // beh
		{0x062A, 0xFE95, 0xFE96, 0xFE97, 0xFE98}, // teh
		{0x062C, 0xFE9D, 0xFE9E, 0xFE9F, 0xFEA0}, // jeem
		{0x0633, 0xFEB1, 0xFEB2, 0xFEB3, 0xFEB4}, // seen
		{0x0639, 0xFEC9, 0xFECA, 0xFECB, 0xFECC}, // ain
		{0x0645, 0xFEE1, 0xFEE2, 0xFEE3, 0xFEE4}, // meem
		{0x0646, 0xFEE5, 0xFEE6, 0xFEE7, 0xFEE8}, // noon
		{0x0647, 0xFEE9, 0xFEEA, 0xFEEB, 0xFEEC}, // heh
	}
	for _, f := range arabicForms {
		add(f.isolated, Isolated, f.base)
		add(f.final, Final, f.base)
		add(f.initial, Initial, f.base)
		add(f.medial, Medial, f.base)
	}

	// Compat: alternative Greek letterforms fold to their primary form
	// (text/fold.GreekLetterforms filters these out of the wider KD set).
	add(0x03D0, Compat, 0x03B2) // beta symbol -> beta
	add(0x03D1, Compat, 0x03B8) // theta symbol -> theta
	add(0x03D2, Compat, 0x03A5) // upsilon hook -> upsilon
	add(0x03D5, Compat, 0x03C6) // phi symbol -> phi
	add(0x03D6, Compat, 0x03C0) // pi symbol -> pi
	add(0x03F0, Compat, 0x03BA) // kappa symbol -> kappa
	add(0x03F1, Compat, 0x03C1) // rho symbol -> rho
	add(0x03F4, Compat, 0x0398) // capital theta symbol -> Theta
	add(0x03F5, Compat, 0x03B5) // lunate epsilon -> epsilon

	// Font: one Mathematical Alphanumeric Symbol, standing in
	// for the whole block's formulaic-but-hole-riddled layout (see
	// doc.go).
	add(0x1D6D1, Font, 0x03C0) // mathematical bold small pi -> pi

	return m
}
