// Package suppress embeds per-language abbreviation lists for
// text/sentbreak.NewSuppressions: words that, followed by a period,
// must not be treated as a sentence terminator. Grounded on spec.md
// §4.3's suppression-list mechanism and the teacher's embedded-data-file
// convention.
package suppress

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/tawesoft/corpus/v2/must"
)

//go:embed lists/danish.txt
var danish string

//go:embed lists/dutch.txt
var dutch string

//go:embed lists/english.txt
var english string

//go:embed lists/finnish.txt
var finnish string

//go:embed lists/french.txt
var french string

//go:embed lists/german.txt
var german string

//go:embed lists/hungarian.txt
var hungarian string

//go:embed lists/italian.txt
var italian string

//go:embed lists/norwegian.txt
var norwegian string

//go:embed lists/portuguese.txt
var portuguese string

//go:embed lists/russian.txt
var russian string

//go:embed lists/spanish.txt
var spanish string

//go:embed lists/swedish.txt
var swedish string

var byName = map[string][]string{
	"danish":     must.Result(parse(danish)),
	"dutch":      must.Result(parse(dutch)),
	"english":    must.Result(parse(english)),
	"finnish":    must.Result(parse(finnish)),
	"french":     must.Result(parse(french)),
	"german":     must.Result(parse(german)),
	"hungarian":  must.Result(parse(hungarian)),
	"italian":    must.Result(parse(italian)),
	"norwegian":  must.Result(parse(norwegian)),
	"portuguese": must.Result(parse(portuguese)),
	"russian":    must.Result(parse(russian)),
	"spanish":    must.Result(parse(spanish)),
	"swedish":    must.Result(parse(swedish)),
}

func parse(data string) ([]string, error) {
	lines := strings.Split(data, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return out, nil
}

// List returns the abbreviation list embedded for a canonical language
// name, or an error if the name isn't recognised.
func List(name string) ([]string, error) {
	words, ok := byName[name]
	if !ok {
		return nil, fmt.Errorf("suppress: unknown language %q", name)
	}
	return words, nil
}

// Names returns every canonical language name with an embedded list.
func Names() []string {
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	return names
}
