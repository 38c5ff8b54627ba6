package diag

import (
	"fmt"

	"github.com/HF-Foundation/HF-CLI/internal/source"
)

var (
	_ Diagnostic    = (*IOError)(nil)
	_ SourceContext = (*TokenizeError)(nil)
	_ SourceContext = (*ParseError)(nil)
	_ Diagnostic    = (*CodegenError)(nil)
)

// IOError reports a failure to read source before any stage ran.
type IOError struct {
	path string
	err  error
}

// NewIOError wraps a filesystem error for the given input path.
func NewIOError(path string, err error) *IOError {
	return &IOError{path: path, err: err}
}

func (e *IOError) Kind() string { return "io" }

func (e *IOError) Error() string { return "io error: " + e.err.Error() }

func (e *IOError) Path() string { return e.path }

func (e *IOError) Unwrap() error { return e.err }

// TokenizeError reports a character the tokenizer cannot accept. Its
// span is always a single column wide.
type TokenizeError struct {
	ch  rune
	loc source.Location
}

// NewTokenizeError records an unexpected character at loc.
func NewTokenizeError(ch rune, loc source.Location) *TokenizeError {
	return &TokenizeError{ch: ch, loc: loc}
}

func (e *TokenizeError) Kind() string { return "tokenize" }

func (e *TokenizeError) Error() string {
	return fmt.Sprintf("tokenize error: %s at %d:%d", e.Detail(), e.loc.Line+1, e.loc.Col+1)
}

func (e *TokenizeError) Detail() string {
	return fmt.Sprintf("unexpected character %q", e.ch)
}

func (e *TokenizeError) Location() source.Location { return e.loc }

func (e *TokenizeError) Span() source.Span { return source.Single(1) }

// Char returns the offending character.
func (e *TokenizeError) Char() rune { return e.ch }

// ParseError reports a structural error found while building the
// syntax tree.
type ParseError struct {
	msg  string
	loc  source.Location
	span source.Span
}

// NewParseError records a parse failure covering span from loc.
func NewParseError(msg string, loc source.Location, span source.Span) *ParseError {
	return &ParseError{msg: msg, loc: loc, span: span}
}

func (e *ParseError) Kind() string { return "parse" }

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %s at %d:%d", e.msg, e.loc.Line+1, e.loc.Col+1)
}

func (e *ParseError) Detail() string { return e.msg }

func (e *ParseError) Location() source.Location { return e.loc }

func (e *ParseError) Span() source.Span { return e.span }

// CodegenError reports a failure producing the object artifact. It
// carries no source position; code generation failures are not tied to
// a single place in the input.
type CodegenError struct {
	msg string
}

// Codegenf formats a code generation failure message.
func Codegenf(format string, args ...any) *CodegenError {
	return &CodegenError{msg: fmt.Sprintf(format, args...)}
}

func (e *CodegenError) Kind() string { return "codegen" }

func (e *CodegenError) Error() string { return "codegen error: " + e.msg }

// Msg returns the bare message without the kind prefix.
func (e *CodegenError) Msg() string { return e.msg }
