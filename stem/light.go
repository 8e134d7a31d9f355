package stem

import "strings"

// The stemmers in this file are simplified stand-ins, NOT full Snowball
// ports: each strips the single longest matching suffix from a short,
// hand-picked list of common inflectional endings for its language. They
// satisfy the Func contract and this package's stemming-guard invariant
// (ByName callers never see a nil Func for a recognized language), but a
// reader should not mistake them for the real Snowball grammars, which
// involve full region computation and multi-step suffix chains per
// language, as StemEnglish does for English.

func lightStrip(word []byte, suffixes []string, minStem int) ([]byte, bool) {
	s := strings.ToLower(string(word))
	best := ""
	for _, suf := range suffixes {
		if strings.HasSuffix(s, suf) && len(s)-len(suf) >= minStem && len(suf) > len(best) {
			best = suf
		}
	}
	if best == "" {
		return word, false
	}
	return []byte(s[:len(s)-len(best)]), true
}

func lightDanish(w []byte) ([]byte, bool) {
	return lightStrip(w, []string{"erne", "ernes", "ene", "en", "et", "ere", "est", "e", "s"}, 3)
}

func lightDutch(w []byte) ([]byte, bool) {
	return lightStrip(w, []string{"heden", "eren", "ene", "en", "se", "e", "s"}, 3)
}

func lightFinnish(w []byte) ([]byte, bool) {
	return lightStrip(w, []string{"jen", "iden", "ien", "ksi", "ssa", "sta", "lla", "lta", "na", "na", "t", "a", "ä"}, 3)
}

func lightFrench(w []byte) ([]byte, bool) {
	return lightStrip(w, []string{"issaient", "issement", "issons", "ions", "ent", "ais", "ait", "ées", "ée", "és", "er", "es", "e", "s"}, 3)
}

func lightGerman(w []byte) ([]byte, bool) {
	return lightStrip(w, []string{"ungen", "ung", "heit", "keit", "lich", "isch", "en", "er", "es", "e", "s"}, 3)
}

func lightHungarian(w []byte) ([]byte, bool) {
	return lightStrip(w, []string{"aiknak", "jaiknak", "oknak", "eknak", "nak", "nek", "ban", "ben", "ok", "ek", "ak", "k"}, 3)
}

func lightItalian(w []byte) ([]byte, bool) {
	return lightStrip(w, []string{"issimo", "issima", "amente", "mente", "izzare", "ando", "endo", "ato", "ata", "uto", "uta", "ire", "are", "ere", "i", "o", "a", "e"}, 3)
}

func lightNorwegian(w []byte) ([]byte, bool) {
	return lightStrip(w, []string{"ene", "ende", "enes", "heten", "heter", "er", "et", "en", "e", "a"}, 3)
}

func lightPortuguese(w []byte) ([]byte, bool) {
	return lightStrip(w, []string{"amente", "acao", "adora", "adores", "ista", "osos", "osas", "ar", "er", "ir", "os", "as", "o", "a"}, 3)
}

func lightRussian(w []byte) ([]byte, bool) {
	return lightStrip(w, []string{"ость", "ами", "ях", "ов", "ами", "его", "ему", "ой", "ый", "ая", "ое", "ы", "и", "а", "о"}, 3)
}

func lightSpanish(w []byte) ([]byte, bool) {
	return lightStrip(w, []string{"amente", "aciones", "adores", "ando", "iendo", "ar", "er", "ir", "os", "as", "o", "a"}, 3)
}

func lightSwedish(w []byte) ([]byte, bool) {
	return lightStrip(w, []string{"ernas", "ornas", "andes", "arna", "erna", "orna", "ande", "are", "ast", "en", "ar", "er", "at", "a", "e"}, 3)
}
