// Package textanalysis provides lightweight morphological analysis of
// student writing: tokenization, stopword filtering, stem-based word
// frequency counting, and synonym suggestions.
//
// The package backs repetition and word-variety feedback in a writing
// assistant. It is heuristic by design: good enough to flag an overused
// root across its inflections, with no ambition of full NLP accuracy.
//
// # Analyzing a Document
//
// Build an Analyzer once with the data tables for the document language,
// then analyze as often as needed:
//
//	import (
//		"github.com/skrivehjelp/kit/core/textanalysis"
//		"github.com/skrivehjelp/kit/pkg/stemmer"
//	)
//
//	analyzer := textanalysis.NewAnalyzer(
//		textanalysis.WithStopwords(textanalysis.NewStopwords("eg", "at", "det")),
//		textanalysis.WithStemmer(stemmer.Nynorsk()),
//	)
//
//	report := analyzer.Analyze("Eg meiner at eg meiner det")
//	report.Count("mein") // 2, both occurrences of "meiner"
//
// Reports are rebuilt on every call rather than maintained incrementally;
// student documents are short enough that a full re-scan is cheap, and it
// rules out stale-cache bugs entirely.
//
// # Repetition Feedback
//
// The report exposes counts; the overuse threshold is the caller's
// policy, typically tuned in the UI layer:
//
//	for _, key := range report.Overused(3) {
//		positions := report.Positions(key)
//		// highlight the occurrences
//	}
//
// Forms reports how many distinct surface forms were grouped under one
// root, which distinguishes "the same word six times" from "six
// inflections of one root".
//
// # Synonym Suggestions
//
// Synonym tables are hand-authored, flat, surface-form keyed data:
//
//	synonyms := textanalysis.NewSynonymTable(map[string][]string{
//		"bra": {"fin", "framifrå", "glimrande"},
//	})
//	synonyms.Suggest("Bra") // ["fin", "framifrå", "glimrande"]
//
// # Concurrency
//
// Analyzer, Stopwords, and SynonymTable are immutable after construction
// and safe to share across goroutines without locking. To change a data
// table, construct a new value and swap it in between calls.
package textanalysis
