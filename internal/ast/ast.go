package ast

import (
	"github.com/HF-Foundation/HF-CLI/internal/source"
	"github.com/HF-Foundation/HF-CLI/internal/token"
)

// Node is one element of a program body: either a single operation or
// a bracketed loop.
type Node interface {
	node()
}

// Program is the root of a syntax tree.
type Program struct {
	Body []Node
}

// Op is a single non-loop operation. Kind is one of the operation
// token kinds; Open and Close never appear here.
type Op struct {
	Kind token.Kind
	Loc  source.Location
}

func (*Op) node() {}

// Loop is a bracketed body. Open and Close hold the bracket positions.
type Loop struct {
	Open  source.Location
	Close source.Location
	Body  []Node
}

func (*Loop) node() {}
