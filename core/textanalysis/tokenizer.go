package textanalysis

import (
	"iter"
	"strings"
	"unicode"
)

// Token is a single word occurrence in the source text.
type Token struct {
	// Text is the surface form exactly as written.
	Text string
	// Pos is the rune offset of the first character in the source text.
	Pos int
}

// Tokenize returns a lazy sequence of word tokens in document order.
// The sequence is finite and restartable: ranging over it twice yields
// identical tokens.
//
// Word characters are Unicode letters, combining marks, and apostrophes;
// every other rune is a boundary. This keeps words with diacritics
// ("blåbær") and contracted forms ("d'you") whole while splitting on
// punctuation, digits, and whitespace.
func Tokenize(text string) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		var word strings.Builder
		start := 0
		pos := 0
		for _, r := range text {
			if isWordRune(r) {
				if word.Len() == 0 {
					start = pos
				}
				word.WriteRune(r)
			} else if word.Len() > 0 {
				if !yield(Token{Text: word.String(), Pos: start}) {
					return
				}
				word.Reset()
			}
			pos++
		}
		if word.Len() > 0 {
			yield(Token{Text: word.String(), Pos: start})
		}
	}
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.Is(unicode.Mn, r) || r == '\'' || r == '’'
}
