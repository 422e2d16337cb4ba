package i18n

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// Plural categories. Only the two-category one/other model is supported:
// a count of exactly 1 selects one, every other finite count (including
// 0, negatives, and fractions) selects other. This matches the English
// and Norwegian pluralization the catalogs are authored for; the full
// CLDR category set is deliberately out of scope.
const (
	PluralOne   = "one"
	PluralOther = "other"
)

// CountParam is the reserved parameter name that drives plural category
// selection. It is also available for interpolation like any other
// parameter.
const CountParam = "count"

// Params carries interpolation values for a single resolution. Values
// may be strings or numbers; anything else is stringified with its
// default formatting.
type Params map[string]any

// placeholderPattern matches {{identifier}} placeholders. Identifiers
// are case-sensitive.
var placeholderPattern = regexp.MustCompile(`\{\{([A-Za-z_][A-Za-z0-9_]*)\}\}`)

// Resolver resolves dotted translation keys against an explicit
// two-element locale chain: the active catalog first, then a single
// fallback catalog for keys the active one is missing. No catalog
// merging happens; the chain order is the visible contract.
//
// Resolution is pure and total: it always returns a string, never an
// error, and is deterministic for identical inputs. Issues are reported
// through the diagnostic handler as a side effect.
//
// A Resolver is immutable after construction and safe for concurrent
// use as long as the catalogs it holds are not mutated, which Catalog
// guarantees by construction.
type Resolver struct {
	chain  []*Catalog
	locale string
	onDiag DiagnosticHandler
}

// ResolverOption configures a Resolver during construction.
type ResolverOption func(*Resolver)

// WithDiagnostics sets the handler that receives resolution diagnostics.
// Without a handler, diagnostics are dropped silently and resolution
// still returns the best-effort string.
func WithDiagnostics(handler DiagnosticHandler) ResolverOption {
	return func(r *Resolver) {
		r.onDiag = handler
	}
}

// NewResolver creates a resolver over the active catalog with one
// optional fallback. Either catalog may be nil; a nil catalog simply
// never has keys.
func NewResolver(active, fallback *Catalog, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		chain:  []*Catalog{active, fallback},
		locale: active.Locale(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Locale returns the active locale identifier.
func (r *Resolver) Locale() string {
	return r.locale
}

// Resolve looks up key in the locale chain, selects the plural form when
// the entry is pluralized, and interpolates params into the template.
//
// A key found in neither catalog resolves to the key itself, visibly
// broken but non-fatal, plus a MissingTranslation diagnostic. An invalid
// entry resolves to an empty string plus an InvalidEntry diagnostic.
// Unbound placeholders stay intact in the output. User-facing text
// always renders; nothing here panics or errors.
func (r *Resolver) Resolve(key string, params Params) string {
	e, found := r.lookupChain(key)
	if !found {
		r.diag(Diagnostic{Kind: MissingTranslation, Locale: r.locale, Key: key})
		return key
	}

	var template string
	switch e.kind {
	case entryInvalid:
		r.diag(Diagnostic{Kind: InvalidEntry, Locale: r.locale, Key: key})
		return ""
	case entryPlural:
		count, ok := countValue(params)
		if !ok {
			r.diag(Diagnostic{Kind: MissingCount, Locale: r.locale, Key: key})
			template = e.other
		} else if count == 1 {
			template = e.one
		} else {
			template = e.other
		}
	default:
		template = e.plain
	}

	return r.interpolate(key, template, params)
}

func (r *Resolver) lookupChain(key string) (entry, bool) {
	for _, catalog := range r.chain {
		if e, ok := catalog.lookup(key); ok {
			return e, true
		}
	}
	return entry{}, false
}

// interpolate substitutes every bound {{name}} placeholder. Duplicate
// placeholders all receive the same substitution; each distinct unbound
// name is reported once.
func (r *Resolver) interpolate(key, template string, params Params) string {
	var missing map[string]struct{}

	result := placeholderPattern.ReplaceAllStringFunc(template, func(match string) string {
		name := match[2 : len(match)-2]
		if value, ok := params[name]; ok {
			return formatValue(value)
		}
		if _, seen := missing[name]; !seen {
			if missing == nil {
				missing = make(map[string]struct{})
			}
			missing[name] = struct{}{}
			r.diag(Diagnostic{Kind: MissingParam, Locale: r.locale, Key: key, Param: name})
		}
		return match
	})

	return result
}

func (r *Resolver) diag(d Diagnostic) {
	if r.onDiag != nil {
		r.onDiag(d)
	}
}

// countValue extracts the count parameter as a finite number. A missing
// count, a non-numeric value, or a non-finite float all report false and
// leave plural selection at the other form.
func countValue(params Params) (float64, bool) {
	v, ok := params[CountParam]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return finite(float64(n))
	case float64:
		return finite(n)
	default:
		return 0, false
	}
}

func finite(n float64) (float64, bool) {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

// formatValue stringifies a parameter value. Floats keep their shortest
// exact representation so a count of 2.5 renders as "2.5" and 2.0 as "2".
func formatValue(v any) string {
	switch n := v.(type) {
	case string:
		return n
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(n), 'f', -1, 32)
	default:
		return fmt.Sprintf("%v", n)
	}
}
