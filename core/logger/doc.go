// Package logger provides structured logging built on Go's standard
// slog package, plus attribute helpers for this module's domain.
//
// Create loggers with the factory function:
//
//	import "github.com/skrivehjelp/kit/core/logger"
//
//	log := logger.New(
//		logger.WithService("skrivehjelp"),
//		logger.WithJSON(),
//	)
//
//	log.Warn("translation missing",
//		logger.Component("i18n"),
//		logger.Locale("nn"),
//		logger.TranslationKey("editor.save"),
//	)
//
// Attribute helpers return an empty attribute for zero values, so they
// can be passed unconditionally:
//
//	log.Info("analysis done", logger.Error(err)) // no-op attr when err is nil
//
// The i18n diagnostics hook composes naturally with this package:
//
//	resolver := i18n.NewResolver(active, fallback,
//		i18n.WithDiagnostics(i18n.LogDiagnostics(log)),
//	)
package logger
