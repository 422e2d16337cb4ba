package textanalysis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skrivehjelp/kit/core/textanalysis"
)

func collect(text string) []textanalysis.Token {
	var tokens []textanalysis.Token
	for token := range textanalysis.Tokenize(text) {
		tokens = append(tokens, token)
	}
	return tokens
}

func TestTokenize(t *testing.T) {
	t.Run("splits on whitespace and punctuation", func(t *testing.T) {
		tokens := collect("Eg meiner, at eg meiner det.")
		words := make([]string, 0, len(tokens))
		for _, tok := range tokens {
			words = append(words, tok.Text)
		}
		assert.Equal(t, []string{"Eg", "meiner", "at", "eg", "meiner", "det"}, words)
	})

	t.Run("records rune offsets", func(t *testing.T) {
		tokens := collect("blåbær og eple")
		assert.Equal(t, []textanalysis.Token{
			{Text: "blåbær", Pos: 0},
			{Text: "og", Pos: 7},
			{Text: "eple", Pos: 10},
		}, tokens)
	})

	t.Run("keeps diacritics and apostrophes", func(t *testing.T) {
		tokens := collect("framifrå d'you")
		assert.Equal(t, "framifrå", tokens[0].Text)
		assert.Equal(t, "d'you", tokens[1].Text)
	})

	t.Run("digits are boundaries", func(t *testing.T) {
		tokens := collect("kap2del")
		assert.Len(t, tokens, 2)
		assert.Equal(t, "kap", tokens[0].Text)
		assert.Equal(t, "del", tokens[1].Text)
	})

	t.Run("empty and punctuation-only input yields nothing", func(t *testing.T) {
		assert.Empty(t, collect(""))
		assert.Empty(t, collect("  ... !?! 123 "))
	})

	t.Run("restartable", func(t *testing.T) {
		seq := textanalysis.Tokenize("same text twice")
		var first, second []textanalysis.Token
		for tok := range seq {
			first = append(first, tok)
		}
		for tok := range seq {
			second = append(second, tok)
		}
		assert.Equal(t, first, second)
	})

	t.Run("early break stops the sequence", func(t *testing.T) {
		var got []string
		for tok := range textanalysis.Tokenize("one two three") {
			got = append(got, tok.Text)
			if len(got) == 2 {
				break
			}
		}
		assert.Equal(t, []string{"one", "two"}, got)
	})
}
