// Package sanitizer cleans editor-produced document text before
// analysis. Student documents arrive from a web editor and routinely
// carry HTML fragments, smart punctuation, and invisible characters from
// copy-paste; analyzing them raw skews word counts.
//
// CleanDocument is the usual entry point:
//
//	import (
//		"github.com/skrivehjelp/kit/core/sanitizer"
//		"github.com/skrivehjelp/kit/core/textanalysis"
//	)
//
//	text := sanitizer.CleanDocument(rawEditorContent)
//	report := analyzer.Analyze(text)
//
// The individual steps are exported for callers that need a different
// pipeline. All functions are pure and total: any string in, some
// string out, never an error.
package sanitizer
