package sanitizer

import (
	"html"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	htmlTagRegex     = regexp.MustCompile(`<[^>]*>`)
	whitespaceRegex  = regexp.MustCompile(`\s+`)
	zeroWidthRunes   = "​‌‍\uFEFF"
	smartApostrophes = strings.NewReplacer("’", "'", "ʼ", "'")
)

// CleanDocument prepares pasted or editor-produced text for analysis:
// tags are stripped, entities decoded, control and zero-width characters
// removed, smart apostrophes normalized, and whitespace collapsed.
func CleanDocument(s string) string {
	s = StripHTML(s)
	s = RemoveControlChars(s)
	s = RemoveZeroWidth(s)
	s = NormalizeApostrophes(s)
	return CollapseWhitespace(s)
}

// StripHTML removes tags and decodes entities for safe text extraction.
func StripHTML(s string) string {
	stripped := htmlTagRegex.ReplaceAllString(s, "")
	return html.UnescapeString(stripped)
}

// RemoveControlChars drops control characters while preserving common
// whitespace, which pasted rich-text content tends to carry.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			return -1
		}
		return r
	}, s)
}

// RemoveZeroWidth drops zero-width characters, invisible in the editor
// but word boundaries to a tokenizer.
func RemoveZeroWidth(s string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(zeroWidthRunes, r) {
			return -1
		}
		return r
	}, s)
}

// NormalizeApostrophes maps typographic apostrophes to the plain form so
// contracted words tokenize consistently regardless of the editor that
// produced them.
func NormalizeApostrophes(s string) string {
	return smartApostrophes.Replace(s)
}

// CollapseWhitespace reduces all whitespace runs to single spaces and
// trims the ends.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// MaxLength truncates to maxLen runes, handling Unicode properly.
func MaxLength(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxLen])
}
