// Package config assembles a Pipeline from functional options: the one
// place downstream code configures how tokens are typed, filtered, and
// searched, so no package above it carries global mutable state.
// Grounded on spec.md §9's dependency-injection preference.
package config

import (
	"fmt"

	"github.com/tawesoft/corpus/v2/filter"
	"github.com/tawesoft/corpus/v2/stem"
	"github.com/tawesoft/corpus/v2/stopwords"
	"github.com/tawesoft/corpus/v2/suppress"
	"github.com/tawesoft/corpus/v2/symtab"
	"github.com/tawesoft/corpus/v2/typemap"
)

// Diagnostic is one event a Pipeline reports through its LogFunc.
type Diagnostic struct {
	Level   string
	Message string
}

// LogFunc is a diagnostic sink stored on a Pipeline. The typemap.Map and
// filter.Filter a Pipeline builds do not call it.
type LogFunc func(Diagnostic)

// Pipeline is the fully resolved configuration for one text-analytics
// run: how tokens are normalized (TypeMap, Stemmer), which are dropped
// or excluded (Filter), which stop words feed the stemming exception set
// and filter drop list (StopWords), which abbreviations suppress a
// sentence break (Suppressions), and a combination/search term length
// (MaxTermLength, stored only: TypeMapper and NewFilter do not read it).
type Pipeline struct {
	TypeMap       typemap.Kind
	Filter        filter.Options
	Stemmer       string
	StopWords     []string
	Suppressions  []string
	MaxTermLength int
	Log           LogFunc

	stemmer stem.Func
}

// Option configures a Pipeline under construction.
type Option func(*Pipeline)

// WithTypeMap sets the folding behaviors typemap.Map applies.
func WithTypeMap(kind typemap.Kind) Option {
	return func(p *Pipeline) { p.TypeMap = kind }
}

// WithFilter sets the filter.Options a Pipeline's filter.Filter is built
// with.
func WithFilter(opts filter.Options) Option {
	return func(p *Pipeline) { p.Filter = opts }
}

// WithStemmer names the stemmer a Pipeline's typemap.Map applies (see
// stem.ByName for recognised names).
func WithStemmer(name string) Option {
	return func(p *Pipeline) { p.Stemmer = name }
}

// WithStopWords names a canonical stopwords language list (see
// stopwords.List) whose words are added to the Pipeline's filter drop
// list and stemming exception set.
func WithStopWords(names ...string) Option {
	return func(p *Pipeline) { p.StopWords = append(p.StopWords, names...) }
}

// WithSuppressions names a canonical suppress language list (see
// suppress.List) whose abbreviations suppress a sentence break.
func WithSuppressions(names ...string) Option {
	return func(p *Pipeline) { p.Suppressions = append(p.Suppressions, names...) }
}

// WithMaxTermLength sets Pipeline.MaxTermLength. No component built by
// the Pipeline reads it, so it does not limit how many tokens a
// combination rule or search term may span.
func WithMaxTermLength(n int) Option {
	return func(p *Pipeline) { p.MaxTermLength = n }
}

// WithLog installs a diagnostic sink. The default is a no-op.
func WithLog(fn LogFunc) Option {
	return func(p *Pipeline) { p.Log = fn }
}

// New builds a Pipeline from opts, resolving the named stemmer
// immediately so a bad name is reported at configuration time rather
// than at first use.
func New(opts ...Option) (*Pipeline, error) {
	p := &Pipeline{MaxTermLength: 4, Log: func(Diagnostic) {}}
	for _, opt := range opts {
		opt(p)
	}

	stemmer, err := stem.ByName(emptyToNone(p.Stemmer))
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	p.stemmer = stemmer

	return p, nil
}

func emptyToNone(name string) string {
	if name == "" {
		return "none"
	}
	return name
}

// TypeMapper builds the typemap.Map this Pipeline describes.
func (p *Pipeline) TypeMapper() *typemap.Map {
	m := typemap.New(p.TypeMap, p.stemmer)
	for _, lang := range p.StopWords {
		words, err := stopwords.List(lang)
		if err != nil {
			continue
		}
		for _, w := range words {
			m.AddException(w)
		}
	}
	return m
}

// NewFilter builds a filter.Filter backed by tab, folding this
// Pipeline's configured stop words into the filter's drop list.
func (p *Pipeline) NewFilter(tab *symtab.Table) *filter.Filter {
	opts := p.Filter
	for _, lang := range p.StopWords {
		words, err := stopwords.List(lang)
		if err != nil {
			continue
		}
		opts.Drop = append(opts.Drop, words...)
	}
	return filter.New(tab, opts)
}

// SuppressionWords flattens every configured suppress language list into
// one slice, suitable for text/sentbreak.NewSuppressions.
func (p *Pipeline) SuppressionWords() ([]string, error) {
	var out []string
	for _, lang := range p.Suppressions {
		words, err := suppress.List(lang)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		out = append(out, words...)
	}
	return out, nil
}
