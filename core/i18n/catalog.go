package i18n

import (
	"maps"
	"sort"
)

// entryKind tags a catalog leaf with its shape, decided once at load
// time so resolution is a plain switch instead of per-call shape probing.
type entryKind int

const (
	entryPlain entryKind = iota
	entryPlural
	entryInvalid
)

type entry struct {
	kind  entryKind
	plain string
	one   string
	other string
}

// Catalog is the full set of translation entries for one locale.
// It is immutable after construction and safe for concurrent use.
//
// Entries are flattened into dot-notation keys at load time for O(1)
// lookups. Each leaf is either a plain template string or a pluralized
// pair of templates keyed by the one/other plural categories. A leaf of
// any other shape is kept as an invalid entry: resolving it yields an
// empty string plus an InvalidEntry diagnostic, the one condition
// treated as data corruption rather than ordinary missing content.
type Catalog struct {
	locale  string
	entries map[string]entry
}

// NewCatalog builds a catalog for the given locale from a nested tree of
// translation entries. Branch nodes are maps keyed by path segment; leaf
// nodes are template strings or {one, other} objects. The tree is
// validated and flattened here, never at resolve time.
func NewCatalog(locale string, tree map[string]any) *Catalog {
	c := &Catalog{
		locale:  locale,
		entries: make(map[string]entry),
	}
	c.flatten(tree, "")
	return c
}

// Locale returns the locale identifier this catalog was built for.
func (c *Catalog) Locale() string {
	if c == nil {
		return ""
	}
	return c.locale
}

// Len returns the number of leaf entries in the catalog.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// Keys returns every leaf key in the catalog, sorted.
func (c *Catalog) Keys() []string {
	if c == nil {
		return nil
	}
	keys := make([]string, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Has reports whether key resolves to a leaf in this catalog.
func (c *Catalog) Has(key string) bool {
	if c == nil {
		return false
	}
	_, ok := c.entries[key]
	return ok
}

func (c *Catalog) lookup(key string) (entry, bool) {
	if c == nil {
		return entry{}, false
	}
	e, ok := c.entries[key]
	return e, ok
}

func (c *Catalog) flatten(node map[string]any, prefix string) {
	for key, value := range node {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			c.entries[fullKey] = entry{kind: entryPlain, plain: v}
		case map[string]any:
			if e, ok := pluralEntry(v); ok {
				c.entries[fullKey] = e
			} else {
				c.flatten(v, fullKey)
			}
		case map[string]string:
			if e, ok := pluralEntry(stringMapToAny(v)); ok {
				c.entries[fullKey] = e
			} else {
				c.flatten(stringMapToAny(v), fullKey)
			}
		default:
			c.entries[fullKey] = entry{kind: entryInvalid}
		}
	}
}

// pluralEntry recognizes a {one, other} leaf. A map qualifies when its
// keys are exactly the two plural categories; both values must be plain
// strings, otherwise the leaf is invalid rather than a branch.
func pluralEntry(node map[string]any) (entry, bool) {
	if len(node) != 2 {
		return entry{}, false
	}
	oneVal, hasOne := node[PluralOne]
	otherVal, hasOther := node[PluralOther]
	if !hasOne || !hasOther {
		return entry{}, false
	}

	one, oneOK := oneVal.(string)
	other, otherOK := otherVal.(string)
	if !oneOK || !otherOK {
		return entry{kind: entryInvalid}, true
	}
	return entry{kind: entryPlural, one: one, other: other}, true
}

func stringMapToAny(m map[string]string) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Merge returns a new catalog containing this catalog's entries plus the
// given tree, with the tree winning on key conflicts. The receiver is
// left untouched; swapping the returned catalog in between calls is the
// supported way to update translations at runtime.
func (c *Catalog) Merge(tree map[string]any) *Catalog {
	merged := &Catalog{
		locale:  c.Locale(),
		entries: make(map[string]entry, c.Len()),
	}
	if c != nil {
		maps.Copy(merged.entries, c.entries)
	}
	merged.flatten(tree, "")
	return merged
}
