package lexer

import (
	"github.com/HF-Foundation/HF-CLI/internal/diag"
	"github.com/HF-Foundation/HF-CLI/internal/source"
	"github.com/HF-Foundation/HF-CLI/internal/token"
)

// Lexer produces operation tokens from a source file. The scanner is
// strict: `#` starts a line comment, whitespace is insignificant, and
// every other non-operation character is a tokenize failure.
type Lexer struct {
	file   *source.File
	cursor Cursor
}

// New creates a lexer over the file's normalized content.
func New(file *source.File) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
	}
}

// Next returns the next significant token. After the end of input it
// always returns EOF.
func (lx *Lexer) Next() (token.Token, *diag.TokenizeError) {
	for !lx.cursor.EOF() {
		ch := lx.cursor.Peek()
		switch {
		case ch == '#':
			lx.skipComment()
		case isSpace(ch):
			lx.cursor.Bump()
		default:
			loc := lx.cursor.Loc()
			kind, ok := opKind(ch)
			if !ok {
				return token.Token{}, diag.NewTokenizeError(ch, loc)
			}
			lx.cursor.Bump()
			return token.Token{Kind: kind, Loc: loc, Span: source.Single(1)}, nil
		}
	}
	return token.Token{Kind: token.EOF, Loc: lx.cursor.Loc()}, nil
}

// Tokenize scans the whole file. On success the returned sequence ends
// with an EOF token carrying the position one past the last character;
// on failure the tokens scanned before the bad character come back
// alongside the error.
func Tokenize(file *source.File) ([]token.Token, *diag.TokenizeError) {
	lx := New(file)
	var tokens []token.Token
	for {
		tok, err := lx.Next()
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens, nil
		}
	}
}

// skipComment consumes up to, but not including, the line break so the
// cursor's line accounting stays in one place.
func (lx *Lexer) skipComment() {
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
}

func isSpace(ch rune) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func opKind(ch rune) (token.Kind, bool) {
	switch ch {
	case '+':
		return token.Inc, true
	case '-':
		return token.Dec, true
	case '<':
		return token.Left, true
	case '>':
		return token.Right, true
	case '[':
		return token.Open, true
	case ']':
		return token.Close, true
	case '.':
		return token.Out, true
	case ',':
		return token.In, true
	}
	return token.EOF, false
}
