package ast

import (
	"github.com/HF-Foundation/HF-CLI/internal/diag"
	"github.com/HF-Foundation/HF-CLI/internal/source"
	"github.com/HF-Foundation/HF-CLI/internal/token"
)

// BuildAST builds the syntax tree for an EOF-terminated token
// sequence. Bracket balance is the only structural rule: an unmatched
// `]` fails at its own position, an unclosed `[` fails at the bracket
// with a span reaching the end of input. When several brackets are
// left open, the innermost one is reported.
func BuildAST(tokens []token.Token) (*Program, *diag.ParseError) {
	prog := &Program{}
	var open []*Loop
	end := source.Location{}

	for _, tok := range tokens {
		end = tok.Loc
		switch tok.Kind {
		case token.Open:
			open = append(open, &Loop{Open: tok.Loc})
		case token.Close:
			if len(open) == 0 {
				return nil, diag.NewParseError("unmatched ']'", tok.Loc, source.Single(1))
			}
			loop := open[len(open)-1]
			open = open[:len(open)-1]
			loop.Close = tok.Loc
			appendNode(prog, open, loop)
		case token.EOF:
			// EOF carries the position one past the last character.
		default:
			appendNode(prog, open, &Op{Kind: tok.Kind, Loc: tok.Loc})
		}
	}

	if len(open) > 0 {
		at := open[len(open)-1].Open
		return nil, diag.NewParseError("unclosed '['", at, source.Between(at, end))
	}
	return prog, nil
}

func appendNode(prog *Program, open []*Loop, n Node) {
	if len(open) > 0 {
		top := open[len(open)-1]
		top.Body = append(top.Body, n)
		return
	}
	prog.Body = append(prog.Body, n)
}
