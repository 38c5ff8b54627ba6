// Package diag defines the failure types the compile pipeline can
// produce, one per stage.
//
// # Data model
//
// Every stage failure is its own concrete type: IOError, TokenizeError,
// ParseError, CodegenError. All of them satisfy Diagnostic; the two
// that point into source text (TokenizeError, ParseError) additionally
// satisfy SourceContext. Renderers switch on the SourceContext
// capability instead of matching concrete kinds, so no consumer needs
// an exhaustive match with unreachable branches.
//
// Diagnostics are immutable after construction. A diagnostic is built
// at the point a stage reports failure, rendered once, and then
// propagated as the per-file result; it never outlives the compile
// attempt that created it.
//
// # Scope
//
// Package diag performs no formatting and no IO. Rendering lives in
// internal/diagfmt; orchestration lives in internal/driver.
package diag
