package stem

import "strings"

// StemEnglish implements the Snowball "Porter2" algorithm in full:
// steps 0 through 5 with R1/R2 region computation, exactly as specified
// by the Snowball project's English stemmer (independent of
// libstemmer_c's C source, which this module does not touch). This is
// the stemmer spec.md's worked example ("consolations" -> "consol")
// exercises.
func StemEnglish(token []byte) ([]byte, bool) {
	orig := string(token)
	w := []rune(strings.ToLower(orig))
	if len(w) <= 2 {
		return token, false
	}

	w = markY(w)
	r1, r2 := regions(w)

	w, r1, r2 = step0(w, r1, r2)
	w, r1, r2 = step1a(w, r1, r2)
	w, r1, r2 = step1b(w, r1, r2)
	w, r1, r2 = step1c(w, r1, r2)
	w, r1, r2 = step2(w, r1, r2)
	w, r1, r2 = step3(w, r1, r2)
	w, r1, r2 = step4(w, r1, r2)
	w, _, _ = step5(w, r1, r2)

	out := unmarkY(w)
	return []byte(out), !strings.EqualFold(out, orig)
}

// yMarker is a private-use-area stand-in for "y used as a consonant",
// so later steps' vowel tests don't need to recompute context.
const yMarker = '\U000F0000'

func markY(w []rune) []rune {
	out := make([]rune, len(w))
	copy(out, w)
	for i, r := range out {
		if r != 'y' {
			continue
		}
		if i == 0 {
			out[i] = yMarker
		} else if isVowelRune(out[i-1]) {
			out[i] = yMarker
		}
	}
	return out
}

func unmarkY(w []rune) string {
	out := make([]rune, len(w))
	for i, r := range w {
		if r == yMarker {
			out[i] = 'y'
		} else {
			out[i] = r
		}
	}
	return string(out)
}

func isVowelRune(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

// isVowel reports whether w[i] is a vowel under Porter2's rules, given
// that w has already been through markY (so a consonantal y is yMarker,
// not 'y').
func isVowel(w []rune, i int) bool {
	if i < 0 || i >= len(w) {
		return false
	}
	switch w[i] {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

// regions computes R1 and R2 per the Snowball English stemmer, including
// the gener/commun/arsen exception for R1.
func regions(w []rune) (r1, r2 int) {
	s := unmarkY(w)
	switch {
	case strings.HasPrefix(s, "gener"):
		r1 = 5
	case strings.HasPrefix(s, "commun"):
		r1 = 6
	case strings.HasPrefix(s, "arsen"):
		r1 = 5
	default:
		r1 = findRegion(w, 0)
	}
	r2 = findRegion(w, r1)
	return
}

func findRegion(w []rune, from int) int {
	i := from
	for i < len(w) && !isVowel(w, i) {
		i++
	}
	for i < len(w) && isVowel(w, i) {
		i++
	}
	i++
	if i > len(w) {
		return len(w)
	}
	return i
}

func clamp(w []rune, r1, r2 int) (int, int) {
	if r1 > len(w) {
		r1 = len(w)
	}
	if r2 > len(w) {
		r2 = len(w)
	}
	return r1, r2
}

func hasSuffix(w []rune, suf string) bool {
	return len(w) >= len(suf) && string(w[len(w)-len(suf):]) == suf
}

func trimSuffix(w []rune, n int) []rune {
	return w[:len(w)-n]
}

func inRegion(w []rune, region int, sufLen int) bool {
	return len(w)-sufLen >= region
}

func step0(w []rune, r1, r2 int) ([]rune, int, int) {
	for _, suf := range []string{"'s'", "'s", "'"} {
		if hasSuffix(w, suf) {
			w = trimSuffix(w, len(suf))
			r1, r2 = clamp(w, r1, r2)
			break
		}
	}
	return w, r1, r2
}

func step1a(w []rune, r1, r2 int) ([]rune, int, int) {
	switch {
	case hasSuffix(w, "sses"):
		w = append(trimSuffix(w, 4), 's', 's')
	case hasSuffix(w, "ied"), hasSuffix(w, "ies"):
		stem := trimSuffix(w, 3)
		if len(stem) > 1 {
			w = append(stem, 'i')
		} else {
			w = append(stem, 'i', 'e')
		}
	case hasSuffix(w, "us"), hasSuffix(w, "ss"):
		// unchanged
	case hasSuffix(w, "s"):
		stem := trimSuffix(w, 1)
		hasVowel := false
		for i := 0; i < len(stem)-1; i++ {
			if isVowel(stem, i) {
				hasVowel = true
				break
			}
		}
		if hasVowel {
			w = stem
		}
	}
	r1, r2 = clamp(w, r1, r2)
	return w, r1, r2
}

func step1b(w []rune, r1, r2 int) ([]rune, int, int) {
	for _, suf := range []string{"eedly", "eed"} {
		if hasSuffix(w, suf) && inRegion(w, r1, len(suf)) {
			w = append(trimSuffix(w, len(suf)), 'e', 'e')
			r1, r2 = clamp(w, r1, r2)
			return w, r1, r2
		}
	}

	for _, suf := range []string{"ingly", "edly", "ing", "ed"} {
		if !hasSuffix(w, suf) {
			continue
		}
		stem := trimSuffix(w, len(suf))
		hasVowel := false
		for i := range stem {
			if isVowel(stem, i) {
				hasVowel = true
				break
			}
		}
		if !hasVowel {
			continue
		}
		w = stem
		r1, r2 = clamp(w, r1, r2)

		switch {
		case hasSuffix(w, "at"), hasSuffix(w, "bl"), hasSuffix(w, "iz"):
			w = append(w, 'e')
		case endsDoubleConsonant(w) && !hasSuffix(w, "l") && !hasSuffix(w, "s") && !hasSuffix(w, "z"):
			w = trimSuffix(w, 1)
		case isShortWord(w, r1):
			w = append(w, 'e')
		}
		r1, r2 = clamp(w, r1, r2)
		return w, r1, r2
	}
	return w, r1, r2
}

func endsDoubleConsonant(w []rune) bool {
	n := len(w)
	if n < 2 {
		return false
	}
	return w[n-1] == w[n-2] && !isVowel(w, n-1)
}

// isShortWord reports whether w is a "short word" per Snowball: R1 is
// empty (reaches the end) and the word ends in a short syllable
// (consonant-vowel-consonant, where the final consonant is not w, x, or
// Y).
func isShortWord(w []rune, r1 int) bool {
	if r1 < len(w) {
		return false
	}
	n := len(w)
	if n < 3 {
		return n == 2 && isVowel(w, 0) && !isVowel(w, 1)
	}
	last := w[n-1]
	if last == 'w' || last == 'x' || last == yMarker {
		return false
	}
	return !isVowel(w, n-1) && isVowel(w, n-2) && !isVowel(w, n-3)
}

func step1c(w []rune, r1, r2 int) ([]rune, int, int) {
	n := len(w)
	if n < 3 {
		return w, r1, r2
	}
	last := w[n-1]
	if last != 'y' && last != yMarker {
		return w, r1, r2
	}
	if !isVowel(w, n-2) {
		w = append(trimSuffix(w, 1), 'i')
	}
	return w, r1, r2
}

type suffixRule struct {
	suf, repl string
}

func applyLongestSuffix(w []rune, region int, rules []suffixRule) ([]rune, bool) {
	best := -1
	for i, ru := range rules {
		if hasSuffix(w, ru.suf) && inRegion(w, region, len(ru.suf)) {
			if best < 0 || len(rules[i].suf) > len(rules[best].suf) {
				best = i
			}
		}
	}
	if best < 0 {
		return w, false
	}
	ru := rules[best]
	stem := trimSuffix(w, len(ru.suf))
	return append(stem, []rune(ru.repl)...), true
}

func step2(w []rune, r1, r2 int) ([]rune, int, int) {
	rules := []suffixRule{
		{"ational", "ate"}, {"tional", "tion"}, {"enci", "ence"}, {"anci", "ance"},
		{"abli", "able"}, {"entli", "ent"}, {"izer", "ize"}, {"ization", "ize"},
		{"ation", "ate"}, {"ator", "ate"}, {"alism", "al"}, {"aliti", "al"},
		{"alli", "al"}, {"fulness", "ful"}, {"ousli", "ous"}, {"ousness", "ous"},
		{"iveness", "ive"}, {"iviti", "ive"}, {"biliti", "ble"}, {"bli", "ble"},
		{"fulli", "ful"}, {"lessli", "less"}, {"logi", "log"},
	}
	if nw, ok := applyLongestSuffix(w, r1, rules); ok {
		w = nw
		r1, r2 = clamp(w, r1, r2)
	} else if hasSuffix(w, "li") && inRegion(w, r1, 2) {
		n := len(w)
		if n >= 3 && strings.ContainsRune("cedfghmnrt", w[n-3]) {
			w = trimSuffix(w, 2)
			r1, r2 = clamp(w, r1, r2)
		}
	}
	return w, r1, r2
}

func step3(w []rune, r1, r2 int) ([]rune, int, int) {
	rules := []suffixRule{
		{"ational", "ate"}, {"tional", "tion"}, {"alize", "al"},
		{"icate", "ic"}, {"iciti", "ic"}, {"ical", "ic"}, {"ful", ""}, {"ness", ""},
	}
	if nw, ok := applyLongestSuffix(w, r1, rules); ok {
		w = nw
		r1, r2 = clamp(w, r1, r2)
		return w, r1, r2
	}
	if hasSuffix(w, "ative") && inRegion(w, r1, 5) && inRegion(w, r2, 5) {
		w = trimSuffix(w, 5)
		r1, r2 = clamp(w, r1, r2)
	}
	return w, r1, r2
}

func step4(w []rune, r1, r2 int) ([]rune, int, int) {
	rules := []suffixRule{
		{"al", ""}, {"ance", ""}, {"ence", ""}, {"er", ""}, {"ic", ""}, {"able", ""},
		{"ible", ""}, {"ant", ""}, {"ement", ""}, {"ment", ""}, {"ent", ""}, {"ism", ""},
		{"ate", ""}, {"iti", ""}, {"ous", ""}, {"ive", ""}, {"ize", ""},
	}
	if nw, ok := applyLongestSuffix(w, r2, rules); ok {
		w = nw
		r1, r2 = clamp(w, r1, r2)
		return w, r1, r2
	}
	if hasSuffix(w, "ion") && inRegion(w, r2, 3) {
		n := len(w)
		if n >= 4 && (w[n-4] == 's' || w[n-4] == 't') {
			w = trimSuffix(w, 3)
			r1, r2 = clamp(w, r1, r2)
		}
	}
	return w, r1, r2
}

func step5(w []rune, r1, r2 int) ([]rune, int, int) {
	n := len(w)
	if n == 0 {
		return w, r1, r2
	}
	if w[n-1] == 'e' {
		if inRegion(w, r2, 1) {
			w = trimSuffix(w, 1)
		} else if inRegion(w, r1, 1) && !endsShortSyllableBeforeE(w) {
			w = trimSuffix(w, 1)
		}
		r1, r2 = clamp(w, r1, r2)
		return w, r1, r2
	}
	if w[n-1] == 'l' && n >= 2 && w[n-2] == 'l' && inRegion(w, r2, 1) {
		w = trimSuffix(w, 1)
	}
	r1, r2 = clamp(w, r1, r2)
	return w, r1, r2
}

// endsShortSyllableBeforeE reports whether removing the final e would
// leave a short syllable (cvc) ending, per the Snowball step 5 e-deletion
// guard.
func endsShortSyllableBeforeE(w []rune) bool {
	stem := w[:len(w)-1]
	n := len(stem)
	if n < 3 {
		return false
	}
	last := stem[n-1]
	if last == 'w' || last == 'x' || last == yMarker {
		return false
	}
	return !isVowel(stem, n-1) && isVowel(stem, n-2) && !isVowel(stem, n-3)
}
