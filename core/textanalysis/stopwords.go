package textanalysis

import "golang.org/x/text/cases"

// Stopwords is an immutable set of word forms excluded from frequency
// analysis. Entries are case-folded on construction so membership checks
// match the analyzer's normalized tokens. The zero value and nil are
// both valid empty sets.
type Stopwords struct {
	words map[string]struct{}
}

// NewStopwords creates a stopword set from the given words.
func NewStopwords(words ...string) *Stopwords {
	fold := cases.Fold()
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[fold.String(w)] = struct{}{}
	}
	return &Stopwords{words: set}
}

// Contains reports whether the normalized word is in the set.
// The word is expected to be case-folded already; Contains does not
// fold it again.
func (s *Stopwords) Contains(word string) bool {
	if s == nil {
		return false
	}
	_, ok := s.words[word]
	return ok
}

// Len returns the number of words in the set.
func (s *Stopwords) Len() int {
	if s == nil {
		return 0
	}
	return len(s.words)
}
