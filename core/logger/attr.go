package logger

import "log/slog"

// Attribute helpers return an empty Attr when given a zero value, so
// call sites can pass them unconditionally without nil checks.

// Component names the subsystem a record originates from.
func Component(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("component", name)
}

// Locale records the locale a resolution or analysis ran under.
func Locale(locale string) slog.Attr {
	if locale == "" {
		return slog.Attr{}
	}
	return slog.String("locale", locale)
}

// TranslationKey records the dotted key involved in a resolution.
func TranslationKey(key string) slog.Attr {
	if key == "" {
		return slog.Attr{}
	}
	return slog.String("translation_key", key)
}

// Document records the identifier of the document being analyzed.
func Document(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("document_id", id)
}

// Error creates an attribute for a single error under the key "error".
// Returns an empty Attr for nil errors.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}
