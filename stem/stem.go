// Package stem provides a stemmer function interface and a registry of
// per-language implementations, grounded on spec.md §6's description of
// the Snowball stemmer family as an external collaborator this module
// gives a concrete home to (english gets a full Porter2 implementation;
// the rest are labeled light stand-ins, see light.go).
package stem

import "fmt"

// Func stems a lowercase word, returning the stemmed bytes and whether
// stemming actually changed anything. Implementations must not mutate
// token in place.
type Func func(token []byte) (stem []byte, changed bool)

// None is the identity stemmer: it always reports no change.
func None(token []byte) ([]byte, bool) {
	return token, false
}

// ErrUnknownLanguage is returned by ByName for an unrecognized name.
type ErrUnknownLanguage struct {
	Name string
}

func (e ErrUnknownLanguage) Error() string {
	return fmt.Sprintf("stem: unknown language %q", e.Name)
}

// ByName returns the stemmer for one of the thirteen canonical Snowball
// language names. Only "english" is a complete Porter2 implementation;
// the others are light suffix-strippers (see light.go).
func ByName(name string) (Func, error) {
	switch name {
	case "english":
		return StemEnglish, nil
	case "danish":
		return lightDanish, nil
	case "dutch":
		return lightDutch, nil
	case "finnish":
		return lightFinnish, nil
	case "french":
		return lightFrench, nil
	case "german":
		return lightGerman, nil
	case "hungarian":
		return lightHungarian, nil
	case "italian":
		return lightItalian, nil
	case "norwegian":
		return lightNorwegian, nil
	case "portuguese":
		return lightPortuguese, nil
	case "russian":
		return lightRussian, nil
	case "spanish":
		return lightSpanish, nil
	case "swedish":
		return lightSwedish, nil
	case "none", "":
		return None, nil
	}
	return nil, ErrUnknownLanguage{Name: name}
}
