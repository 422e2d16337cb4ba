package textanalysis

import "golang.org/x/text/cases"

// SynonymTable maps an overused word to an ordered list of suggested
// alternatives. Entry keys are case-folded at construction; lookups are
// exact-match on the folded surface form only. Synonym tables are
// hand-authored at the surface level, distinct from the stemmer's root
// forms, so no stemmed or fuzzy matching is attempted.
//
// The zero value and nil are valid empty tables.
type SynonymTable struct {
	entries map[string][]string
}

// NewSynonymTable creates a synonym table from the given entries.
// Suggestion order is preserved; it encodes presentation priority.
func NewSynonymTable(entries map[string][]string) *SynonymTable {
	fold := cases.Fold()
	table := make(map[string][]string, len(entries))
	for word, alternatives := range entries {
		table[fold.String(word)] = append([]string(nil), alternatives...)
	}
	return &SynonymTable{entries: table}
}

// Suggest returns the alternatives for word, case-folded exact match
// only. Words without an entry yield nil, never an error. The returned
// slice is a copy; callers may reorder it freely.
func (t *SynonymTable) Suggest(word string) []string {
	if t == nil {
		return nil
	}
	alternatives, ok := t.entries[cases.Fold().String(word)]
	if !ok {
		return nil
	}
	return append([]string(nil), alternatives...)
}

// Len returns the number of entries in the table.
func (t *SynonymTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}
