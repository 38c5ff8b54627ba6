package diag

import (
	"github.com/HF-Foundation/HF-CLI/internal/source"
)

// Diagnostic is a failure reported by one pipeline stage.
type Diagnostic interface {
	error

	// Kind names the stage that produced the failure: "io",
	// "tokenize", "parse", or "codegen".
	Kind() string
}

// SourceContext is the capability of diagnostics that point into the
// source text. Renderers use it to draw a caret block; diagnostics
// without it render as a single message line.
type SourceContext interface {
	Diagnostic

	// Location is the zero-based position the failure starts at.
	Location() source.Location
	// Span is the extent of the failure from its location.
	Span() source.Span
	// Detail is the header text, without location information.
	Detail() string
}
