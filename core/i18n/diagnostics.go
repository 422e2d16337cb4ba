package i18n

import (
	"context"
	"log/slog"
)

// DiagnosticKind classifies a resolution issue.
type DiagnosticKind string

const (
	// MissingTranslation means the key was absent from both the active
	// and the fallback catalog. The caller saw the raw key, which is an
	// intentionally visible signal for content authors.
	MissingTranslation DiagnosticKind = "missing_translation"

	// MissingCount means a pluralized entry was resolved without a
	// count parameter; the other form was used.
	MissingCount DiagnosticKind = "missing_count"

	// MissingParam means the template referenced a placeholder with no
	// bound parameter; the placeholder was left intact.
	MissingParam DiagnosticKind = "missing_param"

	// InvalidEntry means the catalog leaf was neither a template string
	// nor a {one, other} object; an empty string was returned. Unlike
	// the other kinds this indicates corrupt catalog data.
	InvalidEntry DiagnosticKind = "invalid_entry"
)

// Diagnostic describes a single resolution issue. Diagnostics are a side
// channel: resolution always returns a best-effort string regardless.
type Diagnostic struct {
	Kind   DiagnosticKind
	Locale string // active locale of the resolver
	Key    string // requested translation key
	Param  string // placeholder name, set for MissingParam only
}

// DiagnosticHandler receives resolution diagnostics. Handlers must be
// safe for concurrent use; the resolver calls them synchronously from
// whatever goroutine invoked Resolve.
type DiagnosticHandler func(Diagnostic)

// LogDiagnostics returns a handler that reports diagnostics through the
// given slog logger. Missing content is logged at warn level, invalid
// entries at error level since they indicate corrupt catalog data.
func LogDiagnostics(log *slog.Logger) DiagnosticHandler {
	return func(d Diagnostic) {
		level := slog.LevelWarn
		if d.Kind == InvalidEntry {
			level = slog.LevelError
		}
		attrs := []any{
			slog.String("kind", string(d.Kind)),
			slog.String("locale", d.Locale),
			slog.String("key", d.Key),
		}
		if d.Param != "" {
			attrs = append(attrs, slog.String("param", d.Param))
		}
		log.Log(context.Background(), level, "translation issue", attrs...)
	}
}
