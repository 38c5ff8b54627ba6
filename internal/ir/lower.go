package ir

import (
	"github.com/HF-Foundation/HF-CLI/internal/ast"
	"github.com/HF-Foundation/HF-CLI/internal/token"
)

// FromAST lowers a syntax tree into IR. Lowering is total: every
// operation maps to exactly one instruction and every loop to one
// block, so there is no failure path at this layer.
func FromAST(prog *ast.Program) *Module {
	return &Module{Body: lowerBody(prog.Body)}
}

func lowerBody(nodes []ast.Node) []Node {
	if len(nodes) == 0 {
		return nil
	}
	out := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		switch n := n.(type) {
		case *ast.Op:
			out = append(out, lowerOp(n.Kind))
		case *ast.Loop:
			out = append(out, &Loop{Body: lowerBody(n.Body)})
		}
	}
	return out
}

func lowerOp(kind token.Kind) Instr {
	switch kind {
	case token.Inc:
		return Instr{Op: Add, Arg: 1}
	case token.Dec:
		return Instr{Op: Add, Arg: -1}
	case token.Left:
		return Instr{Op: Move, Arg: -1}
	case token.Right:
		return Instr{Op: Move, Arg: 1}
	case token.Out:
		return Instr{Op: Out}
	case token.In:
		return Instr{Op: In}
	}
	// The parser only emits the six non-bracket operations here.
	return Instr{}
}
