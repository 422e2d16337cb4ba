package textanalysis

import (
	"sort"

	"golang.org/x/text/cases"

	"github.com/skrivehjelp/kit/pkg/stemmer"
)

// Analyzer turns raw document text into a word frequency report.
// It is immutable after construction and safe for concurrent use; the
// stopword set and stemmer it holds are treated as read-only.
type Analyzer struct {
	stopwords *Stopwords
	stemmer   stemmer.Stemmer
}

// Option configures an Analyzer during construction.
type Option func(*Analyzer)

// WithStopwords sets the stopword set. Tokens whose normalized form is
// in the set never reach the report.
func WithStopwords(s *Stopwords) Option {
	return func(a *Analyzer) {
		a.stopwords = s
	}
}

// WithStemmer sets the stemmer used to derive canonical keys.
// Defaults to stemmer.Identity, which groups by surface form.
func WithStemmer(s stemmer.Stemmer) Option {
	return func(a *Analyzer) {
		if s != nil {
			a.stemmer = s
		}
	}
}

// NewAnalyzer creates an Analyzer with the given options.
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{
		stemmer: stemmer.Identity,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze scans text and accumulates occurrence statistics per canonical
// key. Every token is case-folded, checked against the stopword set, and
// mapped through the stemmer; each surviving token contributes to exactly
// one key. The report is rebuilt from scratch on every call, never
// maintained incrementally.
//
// Empty or all-stopword input yields an empty report, not an error.
func (a *Analyzer) Analyze(text string) *Report {
	fold := cases.Fold()
	report := &Report{stats: make(map[string]*wordStats)}

	for token := range Tokenize(text) {
		normalized := fold.String(token.Text)
		if a.stopwords.Contains(normalized) {
			continue
		}
		key := a.stemmer.Stem(normalized)

		stats := report.stats[key]
		if stats == nil {
			stats = &wordStats{forms: make(map[string]struct{})}
			report.stats[key] = stats
		}
		stats.count++
		stats.positions = append(stats.positions, token.Pos)
		stats.forms[normalized] = struct{}{}
		report.total++
	}

	return report
}

// Report holds per-key occurrence statistics for one analyzed document.
// The zero value is an empty report.
type Report struct {
	stats map[string]*wordStats
	total int
}

type wordStats struct {
	count     int
	positions []int
	forms     map[string]struct{}
}

// Count returns how many surviving tokens mapped to key.
func (r *Report) Count(key string) int {
	if s := r.lookup(key); s != nil {
		return s.count
	}
	return 0
}

// Positions returns the rune offsets of every occurrence of key, in
// document order. The slice is a copy.
func (r *Report) Positions(key string) []int {
	if s := r.lookup(key); s != nil {
		return append([]int(nil), s.positions...)
	}
	return nil
}

// Forms returns how many distinct normalized surface forms were grouped
// under key. A value above one means the root appears under several
// inflections.
func (r *Report) Forms(key string) int {
	if s := r.lookup(key); s != nil {
		return len(s.forms)
	}
	return 0
}

// Keys returns every canonical key in the report, sorted.
func (r *Report) Keys() []string {
	if r == nil {
		return nil
	}
	keys := make([]string, 0, len(r.stats))
	for k := range r.stats {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of distinct canonical keys.
func (r *Report) Len() int {
	if r == nil {
		return 0
	}
	return len(r.stats)
}

// Total returns the number of tokens that survived stopword filtering.
// It always equals the sum of Count over all keys.
func (r *Report) Total() int {
	if r == nil {
		return 0
	}
	return r.total
}

// Overused returns the keys whose count exceeds threshold, sorted.
// The threshold is the caller's policy; the report only carries counts.
func (r *Report) Overused(threshold int) []string {
	if r == nil {
		return nil
	}
	var keys []string
	for k, s := range r.stats {
		if s.count > threshold {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

func (r *Report) lookup(key string) *wordStats {
	if r == nil {
		return nil
	}
	return r.stats[key]
}
