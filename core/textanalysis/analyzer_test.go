package textanalysis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skrivehjelp/kit/core/textanalysis"
	"github.com/skrivehjelp/kit/pkg/stemmer"
)

func TestAnalyze(t *testing.T) {
	t.Run("counts with identity stemmer", func(t *testing.T) {
		analyzer := textanalysis.NewAnalyzer(
			textanalysis.WithStopwords(textanalysis.NewStopwords("eg", "at", "det")),
		)

		report := analyzer.Analyze("Eg meiner at eg meiner det")
		require.Equal(t, 1, report.Len())
		assert.Equal(t, 2, report.Count("meiner"))
		assert.Equal(t, []string{"meiner"}, report.Keys())
	})

	t.Run("case folds before stopword check", func(t *testing.T) {
		analyzer := textanalysis.NewAnalyzer(
			textanalysis.WithStopwords(textanalysis.NewStopwords("OG")),
		)

		report := analyzer.Analyze("og Og OG fjell")
		assert.Equal(t, 1, report.Total())
		assert.Equal(t, 1, report.Count("fjell"))
	})

	t.Run("groups inflections under one key", func(t *testing.T) {
		analyzer := textanalysis.NewAnalyzer(
			textanalysis.WithStemmer(stemmer.NewSuffix("ar", "a", "e")),
		)

		report := analyzer.Analyze("hytta hyttar Hytta")
		assert.Equal(t, 3, report.Count("hytt"))
		assert.Equal(t, 2, report.Forms("hytt"))
	})

	t.Run("records positions in document order", func(t *testing.T) {
		analyzer := textanalysis.NewAnalyzer()

		report := analyzer.Analyze("ord og ord")
		assert.Equal(t, []int{0, 7}, report.Positions("ord"))
		assert.Nil(t, report.Positions("absent"))
	})

	t.Run("partition law", func(t *testing.T) {
		stopwords := textanalysis.NewStopwords("eg", "og", "at")
		analyzer := textanalysis.NewAnalyzer(
			textanalysis.WithStopwords(stopwords),
			textanalysis.WithStemmer(stemmer.Nynorsk()),
		)

		text := "Eg skriv og skriv, og så les eg det eg har skrive."

		surviving := 0
		for token := range textanalysis.Tokenize(text) {
			if !stopwords.Contains(token.Text) { // all lower-case in this text except Eg
				surviving++
			}
		}
		// "Eg" folds into the stopword set too.
		surviving--

		report := analyzer.Analyze(text)
		sum := 0
		for _, key := range report.Keys() {
			sum += report.Count(key)
		}
		assert.Equal(t, report.Total(), sum)
		assert.Equal(t, surviving, report.Total())
	})

	t.Run("empty input yields empty report", func(t *testing.T) {
		report := textanalysis.NewAnalyzer().Analyze("")
		assert.Equal(t, 0, report.Len())
		assert.Equal(t, 0, report.Total())
		assert.Empty(t, report.Keys())
	})

	t.Run("all-stopword input yields empty report", func(t *testing.T) {
		analyzer := textanalysis.NewAnalyzer(
			textanalysis.WithStopwords(textanalysis.NewStopwords("eg", "og", "det")),
		)
		report := analyzer.Analyze("eg og det og eg")
		assert.Equal(t, 0, report.Len())
	})

	t.Run("rebuilt on every call", func(t *testing.T) {
		analyzer := textanalysis.NewAnalyzer()
		first := analyzer.Analyze("fjell fjord")
		second := analyzer.Analyze("fjell")
		assert.Equal(t, 1, first.Count("fjord"))
		assert.Equal(t, 0, second.Count("fjord"))
	})

	t.Run("zero value report is empty", func(t *testing.T) {
		var report textanalysis.Report
		assert.Equal(t, 0, report.Count("x"))
		assert.Equal(t, 0, report.Len())
		assert.Empty(t, report.Overused(0))
	})
}

func TestReportOverused(t *testing.T) {
	analyzer := textanalysis.NewAnalyzer()
	report := analyzer.Analyze("aa aa aa bb bb cc")

	t.Run("strictly above threshold", func(t *testing.T) {
		assert.Equal(t, []string{"aa"}, report.Overused(2))
		assert.Equal(t, []string{"aa", "bb"}, report.Overused(1))
	})

	t.Run("threshold zero flags everything", func(t *testing.T) {
		assert.Equal(t, []string{"aa", "bb", "cc"}, report.Overused(0))
	})

	t.Run("high threshold flags nothing", func(t *testing.T) {
		assert.Empty(t, report.Overused(10))
	})
}

func TestStopwords(t *testing.T) {
	t.Run("membership on folded form", func(t *testing.T) {
		set := textanalysis.NewStopwords("Eg", "OG")
		assert.True(t, set.Contains("eg"))
		assert.True(t, set.Contains("og"))
		assert.False(t, set.Contains("Eg")) // caller folds before checking
		assert.Equal(t, 2, set.Len())
	})

	t.Run("nil set is empty", func(t *testing.T) {
		var set *textanalysis.Stopwords
		assert.False(t, set.Contains("eg"))
		assert.Equal(t, 0, set.Len())
	})
}

func TestSynonymTable(t *testing.T) {
	table := textanalysis.NewSynonymTable(map[string][]string{
		"Bra":  {"fin", "framifrå", "glimrande"},
		"seie": {"hevde", "meine"},
	})

	t.Run("case folded exact match", func(t *testing.T) {
		assert.Equal(t, []string{"fin", "framifrå", "glimrande"}, table.Suggest("bra"))
		assert.Equal(t, []string{"fin", "framifrå", "glimrande"}, table.Suggest("BRA"))
	})

	t.Run("order is preserved", func(t *testing.T) {
		assert.Equal(t, []string{"hevde", "meine"}, table.Suggest("seie"))
	})

	t.Run("miss yields empty", func(t *testing.T) {
		assert.Empty(t, table.Suggest("ukjent"))
	})

	t.Run("no stemmed match", func(t *testing.T) {
		// "seier" would stem to the "seie" entry's neighborhood, but
		// synonym lookup is surface-form exact only.
		assert.Empty(t, table.Suggest("seier"))
	})

	t.Run("empty table", func(t *testing.T) {
		empty := textanalysis.NewSynonymTable(nil)
		assert.Empty(t, empty.Suggest("bra"))
		assert.Equal(t, 0, empty.Len())

		var nilTable *textanalysis.SynonymTable
		assert.Empty(t, nilTable.Suggest("bra"))
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		got := table.Suggest("bra")
		got[0] = "mutated"
		assert.Equal(t, []string{"fin", "framifrå", "glimrande"}, table.Suggest("bra"))
	})
}
