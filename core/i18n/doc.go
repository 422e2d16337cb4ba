// Package i18n resolves translation keys into display strings with
// locale fallback, placeholder interpolation, and grammatical-number
// selection.
//
// The package sits directly behind UI rendering, so its contract is
// "always render something": resolution is pure and total, never panics
// or returns an error, and reports problems through an injectable
// diagnostics hook instead.
//
// # Catalogs
//
// A Catalog holds the translation entries for one locale as a nested
// tree flattened into dot-notation keys. Leaves are either a plain
// template string or a pluralized {one, other} pair. The shape of every
// leaf is decided once at load time:
//
//	import "github.com/skrivehjelp/kit/core/i18n"
//
//	nn := i18n.NewCatalog("nn", map[string]any{
//		"editor": map[string]any{
//			"save":  "Lagre",
//			"words": map[string]any{"one": "{{count}} ord", "other": "{{count}} ord"},
//		},
//	})
//
// Catalogs also load from JSON or YAML files:
//
//	catalogs, err := i18n.LoadCatalogDir(localesFS, "locales")
//
// # Resolution
//
// A Resolver walks an explicit two-element locale chain: the active
// catalog first, then one fallback catalog. A key missing from both
// resolves to the key itself, which is visibly broken on purpose so
// content authors notice.
//
//	resolver := i18n.NewResolver(nn, nb)
//	resolver.Resolve("editor.save", nil)                       // "Lagre"
//	resolver.Resolve("editor.words", i18n.Params{"count": 1})  // "1 ord"
//	resolver.Resolve("editor.missing", nil)                    // "editor.missing"
//
// # Pluralization
//
// Only the one/other categories are modeled: a count of exactly 1
// selects one, any other finite count selects other, including 0,
// negatives, and fractions. This is the rule for English and both
// Norwegian standards, which is all the catalog data defines. A
// pluralized entry resolved without a count uses other.
//
// # Placeholders
//
// Templates use {{name}} placeholders, case-sensitive, matching
// [A-Za-z_][A-Za-z0-9_]*. Every occurrence of a bound placeholder is
// substituted; unbound placeholders stay intact in the output so the
// result still renders.
//
// # Diagnostics
//
// Resolution issues are a side channel, not errors. Install a handler to
// observe them; without one they are dropped silently:
//
//	resolver := i18n.NewResolver(nn, nb,
//		i18n.WithDiagnostics(i18n.LogDiagnostics(log)),
//	)
//
// Kinds: MissingTranslation (key absent everywhere), MissingCount
// (plural entry without a count), MissingParam (unbound placeholder),
// and InvalidEntry (malformed leaf, resolves to "" and signals corrupt
// catalog data).
//
// # Locale Negotiation
//
// MatchLocale picks the best available locale for an Accept-Language
// header using golang.org/x/text matching:
//
//	locale := i18n.MatchLocale(r.Header.Get("Accept-Language"), []string{"nn", "nb", "en"})
//
// # Concurrency
//
// Catalog and Resolver are immutable after construction and safe for
// concurrent use without locking. To update translations, build a new
// catalog (see Catalog.Merge) and swap in a new resolver between calls;
// catalogs are never mutated in place.
package i18n
