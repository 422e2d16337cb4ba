// Package stemmer provides heuristic word stemming for frequency analysis.
//
// The package centers on the Stemmer interface: a deterministic, total
// mapping from an inflected word to its canonical root. Two families of
// implementations are included: Suffix, which strips endings from a
// hand-authored ordered suffix list, and Snowball, which wraps the
// Snowball stemming algorithm.
//
// # Suffix Stemming
//
// Suffix stemmers are built from an ordered list of endings. Matching is
// first-match-in-list, so the data author orders the list from most
// specific to least specific:
//
//	import "github.com/skrivehjelp/kit/pkg/stemmer"
//
//	s := stemmer.NewSuffix("ingar", "ing", "ar", "e")
//	s.Stem("skriving") // "skriv"
//	s.Stem("eg")       // "eg" (too short to touch)
//
// Ready-made lists for Norwegian are provided:
//
//	nn := stemmer.Nynorsk()
//	nn.Stem("skriving") // "skriv"
//
// # Snowball Stemming
//
// For callers that want algorithmic stemming behind the same interface:
//
//	en := stemmer.Snowball(stemmer.LanguageEnglish)
//	en.Stem("running") // "run"
//
// # Totality
//
// Every stemmer in this package accepts any string and returns some
// string; non-alphabetic input passes through rather than erroring.
// Callers are expected to lower-case words before stemming; stemmers do
// not fold case themselves.
package stemmer
