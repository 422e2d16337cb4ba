package stemmer

import (
	"strings"
	"unicode/utf8"
)

// minWordLength is the shortest word the suffix stemmer will touch.
// Shorter words are almost always function words and stripping them
// produces garbage roots.
const minWordLength = 4

// Stemmer reduces an inflected word to its canonical root form.
// Implementations must be deterministic and total: any input string
// produces some output string, never an error.
type Stemmer interface {
	Stem(word string) string
}

// Func adapts a plain function to the Stemmer interface.
type Func func(word string) string

// Stem calls f.
func (f Func) Stem(word string) string { return f(word) }

// Identity returns every word unchanged. Useful as a default and in tests
// where grouping by surface form is the desired behavior.
var Identity Stemmer = Func(func(word string) string { return word })

// Suffix strips inflectional endings using an ordered suffix list.
//
// Matching is first-match-in-list: the list must be ordered from most
// specific to least specific by the data author, because the scan stops
// at the first suffix the word ends with. The list order is therefore a
// binding part of the data contract, not something Suffix enforces.
//
// Suffix is not idempotent across passes: a stripped word may itself end
// in another listed suffix, so stemming an already stemmed word can
// strip again. A single pass over the same input is deterministic, which
// is all the analyzer needs.
type Suffix struct {
	suffixes []string
}

// NewSuffix creates a suffix stemmer over the given ordered list.
// The list is copied; the caller may reuse its slice.
func NewSuffix(suffixes ...string) *Suffix {
	return &Suffix{suffixes: append([]string(nil), suffixes...)}
}

// Stem returns word with its first matching suffix removed.
//
// Words shorter than four runes are returned unchanged. A matching
// suffix is only stripped when the remaining stem keeps at least
// suffix length plus two runes, which guards against reducing a word
// to a near-empty root. The first suffix the word ends with decides
// the outcome either way; later, shorter suffixes are not retried.
func (s *Suffix) Stem(word string) string {
	if utf8.RuneCountInString(word) < minWordLength {
		return word
	}
	for _, suffix := range s.suffixes {
		rest, ok := strings.CutSuffix(word, suffix)
		if !ok {
			continue
		}
		if utf8.RuneCountInString(rest) >= utf8.RuneCountInString(suffix)+2 {
			return rest
		}
		return word
	}
	return word
}

// Suffixes returns a copy of the configured suffix list in scan order.
func (s *Suffix) Suffixes() []string {
	return append([]string(nil), s.suffixes...)
}
