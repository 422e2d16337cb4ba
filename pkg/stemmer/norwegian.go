package stemmer

// Ready-made suffix lists for the two Norwegian written standards.
// Ordered most specific first; see Suffix for why order matters.
// These lists are deliberately shallow: they group the common noun,
// verb, and adjective inflections without attempting morphological
// correctness.

// Nynorsk returns a suffix stemmer for Norwegian Nynorsk.
func Nynorsk() *Suffix {
	return NewSuffix(
		"ingane",
		"ingar",
		"inga",
		"ingen",
		"ande",
		"ane",
		"ene",
		"ing",
		"ast",
		"ar",
		"er",
		"en",
		"et",
		"a",
		"e",
	)
}

// Bokmal returns a suffix stemmer for Norwegian Bokmål.
func Bokmal() *Suffix {
	return NewSuffix(
		"ingene",
		"ingen",
		"inger",
		"ende",
		"ene",
		"ing",
		"est",
		"er",
		"en",
		"et",
		"e",
	)
}
