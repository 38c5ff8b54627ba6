package token

import (
	"github.com/HF-Foundation/HF-CLI/internal/source"
)

// Kind identifies one of the eight operations of the language, or the
// end of input.
type Kind uint8

const (
	EOF Kind = iota
	// Inc increments the current cell (`+`).
	Inc
	// Dec decrements the current cell (`-`).
	Dec
	// Left moves the data pointer one cell left (`<`).
	Left
	// Right moves the data pointer one cell right (`>`).
	Right
	// Open starts a loop (`[`).
	Open
	// Close ends a loop (`]`).
	Close
	// Out writes the current cell to the output stream (`.`).
	Out
	// In reads one byte from the input stream into the current cell (`,`).
	In
)

func (k Kind) String() string {
	switch k {
	case EOF:
		return "eof"
	case Inc:
		return "inc"
	case Dec:
		return "dec"
	case Left:
		return "left"
	case Right:
		return "right"
	case Open:
		return "open"
	case Close:
		return "close"
	case Out:
		return "out"
	case In:
		return "in"
	}
	return "unknown"
}

// Rune returns the source character for the kind, or 0 for EOF.
func (k Kind) Rune() rune {
	switch k {
	case Inc:
		return '+'
	case Dec:
		return '-'
	case Left:
		return '<'
	case Right:
		return '>'
	case Open:
		return '['
	case Close:
		return ']'
	case Out:
		return '.'
	case In:
		return ','
	}
	return 0
}

// Token is a single scanned operation with its position.
type Token struct {
	Kind Kind
	Loc  source.Location
	Span source.Span
}

// IsOp reports whether the token is one of the eight operations.
func (t Token) IsOp() bool {
	return t.Kind != EOF
}
