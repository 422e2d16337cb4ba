package stemmer

import (
	"github.com/kljensen/snowball"
)

// Languages accepted by Snowball.
const (
	LanguageEnglish   = "english"
	LanguageNorwegian = "norwegian"
	LanguageSwedish   = "swedish"
)

// Snowball returns a stemmer backed by the Snowball algorithm for the
// given language. It trades the predictability of a hand-authored suffix
// list for real algorithmic stemming, behind the same interface.
//
// Words the algorithm cannot handle (unsupported input, empty result)
// pass through unchanged, keeping the stemmer total.
func Snowball(language string) Stemmer {
	return Func(func(word string) string {
		stemmed, err := snowball.Stem(word, language, false)
		if err != nil || stemmed == "" {
			return word
		}
		return stemmed
	})
}
