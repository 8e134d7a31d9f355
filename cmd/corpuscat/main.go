// Command corpuscat runs the text-analytics pipeline over a JSON-Lines
// stream read from stdin, one of three ways: print word tokens, print
// sentences, or search a stream of phrases. It is the one concrete,
// runnable surface exercising corpusio, config, filter, and search
// together; not a general sub-command framework, just flag.FlagSet per
// sub-command, in the teacher's plain-stdlib-CLI idiom.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tawesoft/corpus/v2/config"
	"github.com/tawesoft/corpus/v2/corpusio"
	"github.com/tawesoft/corpus/v2/filter"
	"github.com/tawesoft/corpus/v2/search"
	"github.com/tawesoft/corpus/v2/symtab"
	"github.com/tawesoft/corpus/v2/termset"
	"github.com/tawesoft/corpus/v2/text/sentbreak"
	"github.com/tawesoft/corpus/v2/text/uchar"
	"github.com/tawesoft/corpus/v2/text/wordbreak"
	"github.com/tawesoft/corpus/v2/typemap"
)

func main() {
	os.Exit(doMain(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// doMain is separated out for the purpose of unit testing.
func doMain(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stderr)
		return 1
	}

	switch args[0] {
	case "tokens":
		return doTokens(args[1:], stdin, stdout, stderr)
	case "sentences":
		return doSentences(args[1:], stdin, stdout, stderr)
	case "search":
		return doSearch(args[1:], stdin, stdout, stderr)
	case "-h", "--help", "help":
		printUsage(stderr)
		return 0
	default:
		fmt.Fprintf(stderr, "corpuscat: unknown command %q\n", args[0])
		printUsage(stderr)
		return 1
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "usage: corpuscat <tokens|sentences|search> --field NAME [options] < records.jsonl")
}

func doTokens(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("tokens", flag.ContinueOnError)
	flags.SetOutput(stderr)
	field := flags.String("field", "text", "JSON field holding the text to tokenize")
	stemmer := flags.String("stemmer", "", "stemmer language name (default: none)")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	p, err := config.New(config.WithStemmer(*stemmer), config.WithTypeMap(typemap.MapCase))
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	m := p.TypeMapper()
	var tab symtab.Table
	tab.Init()

	scanner := corpusio.NewRecordScanner(stdin)
	out := bufio.NewWriter(stdout)
	defer out.Flush()

	for scanner.Scan() {
		record := scanner.Bytes()
		fields, err := corpusio.TextFields(record, *field)
		if err != nil {
			fmt.Fprintln(stderr, err)
			continue
		}
		if err := emitTokens(fields[0], m, &tab, out); err != nil {
			fmt.Fprintln(stderr, err)
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

func emitTokens(txt uchar.Text, m *typemap.Map, tab *symtab.Table, out *bufio.Writer) error {
	ws := wordbreak.NewScanner(txt)
	for {
		tok, ok := ws.Next()
		if !ok {
			break
		}
		raw := txt.Bytes[tok.Start:tok.End]
		typ, err := m.Set(raw, txt.HasEscape(), tok.Class)
		if err != nil {
			return err
		}
		tokenID, typeID := tab.AddToken(raw, []byte(typ))
		fmt.Fprintf(out, "%d\t%d\t%s\t%s\n", tokenID, typeID, raw, typ)
	}
	return ws.Err()
}

func doSentences(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("sentences", flag.ContinueOnError)
	flags.SetOutput(stderr)
	field := flags.String("field", "text", "JSON field holding the text to segment")
	abbrev := flags.String("suppress", "", "comma-separated abbreviations that don't end a sentence")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	var words []string
	if *abbrev != "" {
		words = strings.Split(*abbrev, ",")
	}
	sup, err := sentbreak.NewSuppressions(words)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	scanner := corpusio.NewRecordScanner(stdin)
	out := bufio.NewWriter(stdout)
	defer out.Flush()

	for scanner.Scan() {
		record := scanner.Bytes()
		fields, err := corpusio.TextFields(record, *field)
		if err != nil {
			fmt.Fprintln(stderr, err)
			continue
		}
		ss := sentbreak.NewScanner(fields[0], sup)
		for {
			seg, ok := ss.Next()
			if !ok {
				break
			}
			if seg.Class != sentbreak.ATerm && seg.Class != sentbreak.STerm && seg.Class != sentbreak.Other {
				continue
			}
			fmt.Fprintf(out, "%s\n", fields[0].Bytes[seg.Start:seg.End])
		}
		if err := ss.Err(); err != nil {
			fmt.Fprintln(stderr, err)
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

func doSearch(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("search", flag.ContinueOnError)
	flags.SetOutput(stderr)
	field := flags.String("field", "text", "JSON field holding the text to search")
	phrases := flags.String("phrases", "", "comma-separated space-joined phrases to search for, e.g. \"new york,los angeles\"")
	stopwords := flags.String("stopwords", "", "comma-separated stop-word language lists to drop, e.g. \"english,french\"")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	var configOpts []config.Option
	configOpts = append(configOpts, config.WithTypeMap(typemap.MapCase))
	if *stopwords != "" {
		configOpts = append(configOpts, config.WithStopWords(strings.Split(*stopwords, ",")...))
	}
	p, err := config.New(configOpts...)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	m := p.TypeMapper()
	var tab symtab.Table
	tab.Init()

	var terms termset.Set
	terms.Init()
	for _, phrase := range strings.Split(*phrases, ",") {
		phrase = strings.TrimSpace(phrase)
		if phrase == "" {
			continue
		}
		seq, err := phraseTypeIDs(phrase, m, &tab)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		if _, err := terms.Add(seq); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
	}

	f := p.NewFilter(&tab)
	se := search.New(&terms)

	scanner := corpusio.NewRecordScanner(stdin)
	out := bufio.NewWriter(stdout)
	defer out.Flush()

	for scanner.Scan() {
		record := scanner.Bytes()
		fields, err := corpusio.TextFields(record, *field)
		if err != nil {
			fmt.Fprintln(stderr, err)
			continue
		}
		if err := emitMatches(fields[0], m, &tab, f, se, out); err != nil {
			fmt.Fprintln(stderr, err)
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

func phraseTypeIDs(phrase string, m *typemap.Map, tab *symtab.Table) ([]int, error) {
	txt, err := uchar.Make([]byte(phrase), false)
	if err != nil {
		return nil, err
	}
	ws := wordbreak.NewScanner(txt)
	var seq []int
	for {
		tok, ok := ws.Next()
		if !ok {
			break
		}
		raw := txt.Bytes[tok.Start:tok.End]
		typ, err := m.Set(raw, false, tok.Class)
		if err != nil {
			return nil, err
		}
		_, typeID := tab.AddToken(raw, []byte(typ))
		seq = append(seq, typeID)
	}
	if err := ws.Err(); err != nil {
		return nil, err
	}
	return seq, nil
}

func emitMatches(txt uchar.Text, m *typemap.Map, tab *symtab.Table, f *filter.Filter, se *search.Search, out *bufio.Writer) error {
	ws := wordbreak.NewScanner(txt)
	for {
		tok, ok := ws.Next()
		if !ok {
			break
		}
		raw := txt.Bytes[tok.Start:tok.End]
		typ, err := m.Set(raw, txt.HasEscape(), tok.Class)
		if err != nil {
			return err
		}
		_, typeID := tab.AddToken(raw, []byte(typ))

		ems, err := f.Push(filter.Token{TypeID: typeID, Class: tok.Class, Start: tok.Start, End: tok.End})
		if err != nil {
			return err
		}
		for _, em := range ems {
			if match, ok := se.PushEmission(em); ok {
				fmt.Fprintf(out, "%d\t%s\n", match.TermID, txt.Bytes[match.Start:match.End])
			}
		}
	}
	if err := ws.Err(); err != nil {
		return err
	}
	flushed, err := f.Flush()
	if err != nil {
		return err
	}
	for _, em := range flushed {
		if match, ok := se.PushEmission(em); ok {
			fmt.Fprintf(out, "%d\t%s\n", match.TermID, txt.Bytes[match.Start:match.End])
		}
	}
	return nil
}
