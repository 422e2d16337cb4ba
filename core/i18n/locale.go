package i18n

import (
	"golang.org/x/text/language"
)

// MatchLocale picks the best locale from available for the given
// Accept-Language header. Quality values and region variants are handled
// by golang.org/x/text language matching ("nn-NO" matches an available
// "nn"). An empty or unusable header falls back to the first available
// locale, which callers should order by preference.
func MatchLocale(acceptLanguage string, available []string) string {
	if len(available) == 0 {
		return ""
	}
	if acceptLanguage == "" {
		return available[0]
	}

	tags := make([]language.Tag, 0, len(available))
	locales := make([]string, 0, len(available))
	for _, locale := range available {
		tag, err := language.Parse(locale)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		locales = append(locales, locale)
	}
	if len(tags) == 0 {
		return available[0]
	}

	matcher := language.NewMatcher(tags)
	_, index := language.MatchStrings(matcher, acceptLanguage)
	return locales[index]
}
