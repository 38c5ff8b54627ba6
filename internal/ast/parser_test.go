package ast

import (
	"testing"

	"github.com/HF-Foundation/HF-CLI/internal/diag"
	"github.com/HF-Foundation/HF-CLI/internal/lexer"
	"github.com/HF-Foundation/HF-CLI/internal/source"
	"github.com/HF-Foundation/HF-CLI/internal/token"
)

func parse(t *testing.T, text string) *Program {
	t.Helper()
	tokens, lexErr := lexer.Tokenize(source.NewVirtual("test.hf", []byte(text)))
	if lexErr != nil {
		t.Fatalf("Tokenize(%q) error = %v", text, lexErr)
	}
	prog, err := BuildAST(tokens)
	if err != nil {
		t.Fatalf("BuildAST(%q) error = %v", text, err)
	}
	return prog
}

func parseErr(t *testing.T, text string) *diag.ParseError {
	t.Helper()
	tokens, lexErr := lexer.Tokenize(source.NewVirtual("test.hf", []byte(text)))
	if lexErr != nil {
		t.Fatalf("Tokenize(%q) error = %v", text, lexErr)
	}
	_, err := BuildAST(tokens)
	if err == nil {
		t.Fatalf("BuildAST(%q) expected error", text)
	}
	return err
}

func TestBuildAST_FlatOps(t *testing.T) {
	prog := parse(t, "+-.,<>")
	want := []token.Kind{token.Inc, token.Dec, token.Out, token.In, token.Left, token.Right}
	if len(prog.Body) != len(want) {
		t.Fatalf("got %d nodes, want %d", len(prog.Body), len(want))
	}
	for i, kind := range want {
		op, ok := prog.Body[i].(*Op)
		if !ok {
			t.Fatalf("node[%d] is %T, want *Op", i, prog.Body[i])
		}
		if op.Kind != kind {
			t.Errorf("node[%d].Kind = %s, want %s", i, op.Kind, kind)
		}
	}
}

func TestBuildAST_Empty(t *testing.T) {
	prog := parse(t, "# just a comment\n")
	if len(prog.Body) != 0 {
		t.Errorf("got %d nodes, want 0", len(prog.Body))
	}
}

func TestBuildAST_Loop(t *testing.T) {
	prog := parse(t, "+[->+<]")
	if len(prog.Body) != 2 {
		t.Fatalf("got %d nodes, want 2", len(prog.Body))
	}
	loop, ok := prog.Body[1].(*Loop)
	if !ok {
		t.Fatalf("node[1] is %T, want *Loop", prog.Body[1])
	}
	if loop.Open != (source.Location{Line: 0, Col: 1}) {
		t.Errorf("Open = %v, want 0:1", loop.Open)
	}
	if loop.Close != (source.Location{Line: 0, Col: 6}) {
		t.Errorf("Close = %v, want 0:6", loop.Close)
	}
	if len(loop.Body) != 4 {
		t.Errorf("loop body has %d nodes, want 4", len(loop.Body))
	}
}

func TestBuildAST_NestedLoops(t *testing.T) {
	prog := parse(t, "[[+]]")
	outer, ok := prog.Body[0].(*Loop)
	if !ok {
		t.Fatalf("node[0] is %T, want *Loop", prog.Body[0])
	}
	if len(outer.Body) != 1 {
		t.Fatalf("outer body has %d nodes, want 1", len(outer.Body))
	}
	inner, ok := outer.Body[0].(*Loop)
	if !ok {
		t.Fatalf("outer.Body[0] is %T, want *Loop", outer.Body[0])
	}
	if len(inner.Body) != 1 {
		t.Errorf("inner body has %d nodes, want 1", len(inner.Body))
	}
}

func TestBuildAST_SiblingLoops(t *testing.T) {
	prog := parse(t, "[+][-]")
	if len(prog.Body) != 2 {
		t.Fatalf("got %d nodes, want 2", len(prog.Body))
	}
	for i, n := range prog.Body {
		if _, ok := n.(*Loop); !ok {
			t.Errorf("node[%d] is %T, want *Loop", i, n)
		}
	}
}

func TestBuildAST_UnmatchedClose(t *testing.T) {
	e := parseErr(t, "++]")
	if e.Detail() != "unmatched ']'" {
		t.Errorf("Detail() = %q", e.Detail())
	}
	if got := e.Location(); got != (source.Location{Line: 0, Col: 2}) {
		t.Errorf("Location() = %v, want 0:2", got)
	}
	if got := e.Span(); got != source.Single(1) {
		t.Errorf("Span() = %v, want single column", got)
	}
}

func TestBuildAST_UnclosedOpen(t *testing.T) {
	e := parseErr(t, "++[+")
	if e.Detail() != "unclosed '['" {
		t.Errorf("Detail() = %q", e.Detail())
	}
	if got := e.Location(); got != (source.Location{Line: 0, Col: 2}) {
		t.Errorf("Location() = %v, want 0:2", got)
	}
	// End of input sits at 0:4, two columns past the bracket.
	if got := e.Span(); got != (source.Span{LineDelta: 0, Width: 2}) {
		t.Errorf("Span() = %v, want +2", got)
	}
}

func TestBuildAST_UnclosedOpenMultiLine(t *testing.T) {
	e := parseErr(t, "++[\n+++\n--")
	if got := e.Location(); got != (source.Location{Line: 0, Col: 2}) {
		t.Errorf("Location() = %v, want 0:2", got)
	}
	// End of input is 2:2, so the span crosses two lines.
	if got := e.Span(); got != (source.Span{LineDelta: 2, Width: 2}) {
		t.Errorf("Span() = %v, want +2:2", got)
	}
}

func TestBuildAST_InnermostUnclosedReported(t *testing.T) {
	e := parseErr(t, "[\n[\n+")
	if got := e.Location(); got != (source.Location{Line: 1, Col: 0}) {
		t.Errorf("Location() = %v, want 1:0 (innermost bracket)", got)
	}
}
